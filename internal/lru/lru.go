// Package lru provides a fixed-capacity store with insertion-order
// eviction. Unlike a classic LRU, reads do not refresh an entry's
// position: once the store is full, the entry inserted earliest is
// the one evicted, regardless of how often it has been read since.
package lru

import (
	"container/list"
	"sync"
)

// Store maps keys to values, holding at most capacity entries.
// It is safe for concurrent use.
type Store[K comparable, V any] struct {
	mu       sync.Mutex
	capacity int
	elements map[K]*list.Element
	order    *list.List // front = oldest insertion
}

type entry[K comparable, V any] struct {
	key   K
	value V
}

// New creates an empty store. capacity must be positive.
func New[K comparable, V any](capacity int) *Store[K, V] {
	if capacity <= 0 {
		panic("lru: capacity must be positive")
	}
	return &Store[K, V]{
		capacity: capacity,
		elements: make(map[K]*list.Element, capacity),
		order:    list.New(),
	}
}

// Get returns the value stored under key. The entry's eviction
// position is left untouched.
func (s *Store[K, V]) Get(key K) (V, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if el, ok := s.elements[key]; ok {
		return el.Value.(*entry[K, V]).value, true
	}
	var zero V
	return zero, false
}

// Set stores value under key. An existing key is updated in place,
// keeping its original insertion position. A new key evicts the
// oldest entry first when the store is at capacity.
func (s *Store[K, V]) Set(key K, value V) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if el, ok := s.elements[key]; ok {
		el.Value.(*entry[K, V]).value = value
		return
	}

	if s.order.Len() >= s.capacity {
		oldest := s.order.Front()
		s.order.Remove(oldest)
		delete(s.elements, oldest.Value.(*entry[K, V]).key)
	}

	s.elements[key] = s.order.PushBack(&entry[K, V]{key: key, value: value})
}

// Contains reports whether key is present without returning its value.
func (s *Store[K, V]) Contains(key K) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	_, ok := s.elements[key]
	return ok
}

// Len returns the number of entries currently stored.
func (s *Store[K, V]) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.order.Len()
}
