package extract

import (
	"fmt"
	"regexp"
)

// NoMatchError means the pattern matched nothing in the searched text.
//
// The message carries both the pattern source and the text verbatim since it
// is shown to users as is.
type NoMatchError struct {
	Pattern string
	Text    string
}

func (e *NoMatchError) Error() string {
	return fmt.Sprintf(`no match for pattern "%s" in text "%s"`, e.Pattern, e.Text)
}

// NoCaptureGroupError means the pattern matched but has no group to return.
type NoCaptureGroupError struct {
	Pattern string
}

func (e *NoCaptureGroupError) Error() string {
	return fmt.Sprintf("pattern %q has no capture group", e.Pattern)
}

type InvalidPatternError struct {
	Pattern string
	Err     error
}

func (e *InvalidPatternError) Error() string {
	return fmt.Sprintf("invalid pattern %q: %v", e.Pattern, e.Err)
}

func (e *InvalidPatternError) Unwrap() error {
	return e.Err
}

// Extract returns the first capture group of the leftmost match of pattern in text.
//
// The captured value is returned untouched (no trim, no case folding).
func Extract(text string, pattern *regexp.Regexp) (string, error) {
	m := pattern.FindStringSubmatch(text)
	if m == nil {
		return "", &NoMatchError{Pattern: pattern.String(), Text: text}
	}
	if len(m) < 2 {
		return "", &NoCaptureGroupError{Pattern: pattern.String()}
	}

	return m[1], nil
}

// ExtractString is Extract for a pattern that is not compiled yet
func ExtractString(text string, pattern string) (string, error) {
	re, err := Compile(pattern)
	if err != nil {
		return "", err
	}

	return Extract(text, re)
}

func Compile(pattern string) (*regexp.Regexp, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &InvalidPatternError{Pattern: pattern, Err: err}
	}

	return re, nil
}
