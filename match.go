package findup

import (
	"context"
	"slices"
)

// MatchNames returns a callback matching the first of names present
// among a directory's entries.
//
// All callbacks returned here share one code pointer, so two
// MatchNames callbacks with different names collide in a shared
// result cache; combine with WithoutResultCache when a Finder runs
// more than one of them.
func MatchNames(names ...string) Callback {
	return func(dir string, entries []string) (string, error) {
		for _, name := range names {
			if slices.Contains(entries, name) {
				return name, nil
			}
		}
		return "", nil
	}
}

// MatchNamesContext is MatchNames for the context-aware engine.
func MatchNamesContext(names ...string) ContextCallback {
	match := MatchNames(names...)
	return func(_ context.Context, dir string, entries []string) (string, error) {
		return match(dir, entries)
	}
}
