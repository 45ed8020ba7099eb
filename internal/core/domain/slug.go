package domain

import (
	"strconv"

	"github.com/gosimple/slug"
)

const (
	fallbackSlug  = "list"
	maxSlugLength = 240
)

// SlugFromName derives the base slug of a task list name. Names that
// transliterate to nothing fall back to a fixed base.
func SlugFromName(name string) string {
	s := slug.Make(name)
	if len(s) > maxSlugLength {
		s = slug.Make(s[:maxSlugLength])
	}
	if s == "" {
		return fallbackSlug
	}
	return s
}

// SlugCandidate returns the n-th candidate for base: base itself for n == 0,
// then base-1, base-2, ...
func SlugCandidate(base string, n int) string {
	if n == 0 {
		return base
	}
	return base + "-" + strconv.Itoa(n)
}
