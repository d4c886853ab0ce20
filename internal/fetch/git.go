package fetch

import (
	"context"
	"sort"
	"strings"

	"github.com/ImSingee/semver"
	"github.com/go-git/go-git/v5"
	gitconfig "github.com/go-git/go-git/v5/config"
	"github.com/go-git/go-git/v5/storage/memory"
)

// ListTags returns the tag names of a git remote without cloning it, newest first.
//
// Tags parsing as semver come first in descending version order, the rest follow
// in descending lexicographic order.
func ListTags(ctx context.Context, url string) ([]string, error) {
	remote := git.NewRemote(memory.NewStorage(), &gitconfig.RemoteConfig{
		Name: "origin",
		URLs: []string{url},
	})

	refs, err := remote.ListContext(ctx, &git.ListOptions{})
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(refs))
	tags := make([]string, 0, len(refs))
	for _, ref := range refs {
		if !ref.Name().IsTag() {
			continue
		}

		tag := strings.TrimSuffix(ref.Name().Short(), "^{}")
		if seen[tag] {
			continue
		}
		seen[tag] = true
		tags = append(tags, tag)
	}

	SortTags(tags)
	return tags, nil
}

// SortTags orders tags newest first in place
func SortTags(tags []string) {
	versions := make(map[string]*semver.Version, len(tags))
	for _, tag := range tags {
		if v, err := semver.NewVersion(tag); err == nil && v != nil {
			versions[tag] = v
		}
	}

	sort.SliceStable(tags, func(i, j int) bool {
		vi, vj := versions[tags[i]], versions[tags[j]]

		switch {
		case vi != nil && vj != nil:
			if c := vi.Compare(vj); c != 0 {
				return c > 0
			}
			return tags[i] > tags[j]
		case vi != nil:
			return true
		case vj != nil:
			return false
		default:
			return tags[i] > tags[j]
		}
	})
}
