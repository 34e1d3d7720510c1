package findup

import "github.com/jakoblorz/go-findup/internal/lru"

// CacheCapacity is the fixed number of entries each of the three
// stores holds before insertion-order eviction kicks in.
const CacheCapacity = 100

// resultKey identifies one memoized locate outcome. The callback
// component is the callback's code pointer; see Caches for the
// collision hazard this implies.
type resultKey struct {
	start    string
	callback uintptr
}

// result is a memoized locate outcome. The zero value is the
// explicit "not found" marker.
type result struct {
	path  string
	found bool
}

// Caches bundles the three independent memoization stores consulted
// by a Finder: final locate results, per-path directory metadata, and
// per-directory entry listings. Each store evicts in insertion order
// at CacheCapacity, independently of the others.
//
// A Caches value is safe for concurrent use and can be shared across
// Finders to pool their memoization. Entries are never invalidated by
// filesystem changes: a file created after a "not found" was cached
// stays invisible until the entry is evicted.
//
// The result store keys callbacks by code pointer. Closures created
// at the same source location share one code pointer, so two closures
// capturing different state collide and return each other's answers.
// Use WithoutResultCache where that matters.
type Caches struct {
	results  *lru.Store[resultKey, result]
	metadata *lru.Store[string, bool]
	listings *lru.Store[string, []string]
}

// NewCaches creates an empty cache set.
func NewCaches() *Caches {
	return &Caches{
		results:  lru.New[resultKey, result](CacheCapacity),
		metadata: lru.New[string, bool](CacheCapacity),
		listings: lru.New[string, []string](CacheCapacity),
	}
}
