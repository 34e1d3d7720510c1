package findup

// CommonSkipDirs names directories that upward searches usually have
// no business entering: large dependency trees and version-control
// bookkeeping. It is not applied by default; pass it to WithSkipDirs
// to opt in.
var CommonSkipDirs = []string{
	"node_modules",
	"bower_components",
	"vendor",
	".git",
	".hg",
	".svn",
}

// Option configures a Finder.
type Option func(*Finder)

// WithCaches makes the Finder use caches instead of a private cache
// set, letting multiple Finders share memoized state.
func WithCaches(caches *Caches) Option {
	return func(f *Finder) {
		f.caches = caches
	}
}

// WithSkipDirs enables the early-exit heuristic: when the directory
// under examination has one of the given base names, the walk is
// abandoned and reports not-found without consulting the callback or
// any ancestor above it. This trades completeness for speed — a match
// higher up the tree will be missed.
func WithSkipDirs(names ...string) Option {
	return func(f *Finder) {
		for _, name := range names {
			f.skipDirs[name] = struct{}{}
		}
	}
}

// WithoutResultCache disables the final-result store for this Finder.
// Metadata and listing caching stay active. Use this when distinct
// callbacks share a code pointer (closures from one source location)
// and must not collide on memoized results.
func WithoutResultCache() Option {
	return func(f *Finder) {
		f.noResultCache = true
	}
}
