package glob

import (
	"strings"

	"github.com/gobwas/glob"
)

// Filter keeps the names matching pattern, case-insensitively.
//
// An empty pattern keeps everything.
type Filter struct {
	pattern string
	g       glob.Glob
}

func NewFilter(pattern string) (*Filter, error) {
	if pattern == "" {
		return &Filter{}, nil
	}

	g, err := glob.Compile(strings.ToLower(pattern))
	if err != nil {
		return nil, err
	}

	return &Filter{pattern: pattern, g: g}, nil
}

func (f *Filter) Match(name string) bool {
	if f.g == nil {
		return true
	}
	return f.g.Match(strings.ToLower(name))
}
