package lru_test

import (
	"fmt"
	"testing"

	"github.com/jakoblorz/go-findup/internal/lru"
	"github.com/stretchr/testify/require"
)

func TestStore_GetSet(t *testing.T) {
	s := lru.New[string, int](3)

	_, ok := s.Get("missing")
	require.False(t, ok)

	s.Set("a", 1)
	v, ok := s.Get("a")
	require.True(t, ok)
	require.Equal(t, 1, v)
	require.Equal(t, 1, s.Len())
}

func TestStore_EvictsOldestInsertion(t *testing.T) {
	s := lru.New[string, int](3)

	s.Set("a", 1)
	s.Set("b", 2)
	s.Set("c", 3)
	s.Set("d", 4)

	require.False(t, s.Contains("a"), "earliest-inserted key must be evicted")
	require.True(t, s.Contains("b"))
	require.True(t, s.Contains("c"))
	require.True(t, s.Contains("d"))
	require.Equal(t, 3, s.Len())
}

func TestStore_ReadsDoNotRefreshRecency(t *testing.T) {
	s := lru.New[string, int](2)

	s.Set("a", 1)
	s.Set("b", 2)

	// Reading "a" must not protect it from eviction.
	_, ok := s.Get("a")
	require.True(t, ok)

	s.Set("c", 3)
	require.False(t, s.Contains("a"))
	require.True(t, s.Contains("b"))
	require.True(t, s.Contains("c"))
}

func TestStore_UpdateKeepsPosition(t *testing.T) {
	s := lru.New[string, int](2)

	s.Set("a", 1)
	s.Set("b", 2)
	s.Set("a", 10)

	v, ok := s.Get("a")
	require.True(t, ok)
	require.Equal(t, 10, v)
	require.Equal(t, 2, s.Len())

	// "a" kept its original insertion slot, so it is still the oldest.
	s.Set("c", 3)
	require.False(t, s.Contains("a"))
	require.True(t, s.Contains("b"))
}

func TestStore_CapacityEnforcedStrictly(t *testing.T) {
	const capacity = 100
	s := lru.New[string, int](capacity)

	for i := 0; i <= capacity; i++ {
		s.Set(fmt.Sprintf("key-%03d", i), i)
	}

	require.Equal(t, capacity, s.Len())
	require.False(t, s.Contains("key-000"))
	require.True(t, s.Contains("key-001"))
	require.True(t, s.Contains(fmt.Sprintf("key-%03d", capacity)))
}

func TestNew_PanicsOnNonPositiveCapacity(t *testing.T) {
	require.Panics(t, func() { lru.New[string, int](0) })
}
