package cache

import (
	"strconv"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	c := New[string, int](100)
	require.NotNil(t, c)
	assert.Equal(t, 100, c.Capacity())
	assert.Zero(t, c.Len())

	assert.Equal(t, DefaultCapacity, New[string, int](0).Capacity())
	assert.Equal(t, DefaultCapacity, New[string, int](-3).Capacity())
}

func TestGetSet(t *testing.T) {
	c := New[string, int](10)

	c.Set("key1", 42)
	val, ok := c.Get("key1")
	assert.True(t, ok)
	assert.Equal(t, 42, val)

	_, ok = c.Get("missing")
	assert.False(t, ok)

	c.Set("key1", 7)
	val, _ = c.Get("key1")
	assert.Equal(t, 7, val)
	assert.Equal(t, 1, c.Len())
}

func TestEvictsLeastRecentlyUsed(t *testing.T) {
	c := New[int, string](3)
	c.Set(1, "a")
	c.Set(2, "b")
	c.Set(3, "c")

	_, _ = c.Get(1)
	c.Set(4, "d")

	_, ok := c.Get(2)
	assert.False(t, ok, "2 was the oldest entry")
	for _, k := range []int{1, 3, 4} {
		_, ok := c.Get(k)
		assert.True(t, ok, "key %d", k)
	}
	assert.Equal(t, 3, c.Len())
	assert.Equal(t, uint64(1), c.Stats().Evictions)
}

func TestGetOrCreate(t *testing.T) {
	c := New[string, int](10)
	calls := 0
	create := func() int {
		calls++
		return 99
	}

	assert.Equal(t, 99, c.GetOrCreate("k", create))
	assert.Equal(t, 99, c.GetOrCreate("k", create))
	assert.Equal(t, 1, calls)

	s := c.Stats()
	assert.Equal(t, uint64(1), s.Hits)
	assert.Equal(t, uint64(1), s.Misses)
	assert.InDelta(t, 0.5, s.HitRate, 1e-12)
}

func TestDeleteAndClear(t *testing.T) {
	c := New[string, int](10)
	c.Set("a", 1)
	c.Set("b", 2)

	assert.True(t, c.Delete("a"))
	assert.False(t, c.Delete("a"))
	assert.Equal(t, 1, c.Len())

	c.Clear()
	assert.Zero(t, c.Len())
	c.Set("c", 3)
	val, ok := c.Get("c")
	assert.True(t, ok)
	assert.Equal(t, 3, val)
}

func TestSingleEntryCapacity(t *testing.T) {
	c := New[int, int](1)
	for i := range 5 {
		c.Set(i, i)
		assert.Equal(t, 1, c.Len())
	}
	val, ok := c.Get(4)
	assert.True(t, ok)
	assert.Equal(t, 4, val)
}

func TestConcurrentAccess(t *testing.T) {
	c := New[string, int](64)
	var wg sync.WaitGroup
	for g := range 8 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := range 200 {
				key := strconv.Itoa((g*200 + i) % 100)
				c.GetOrCreate(key, func() int { return i })
				c.Get(key)
			}
		}()
	}
	wg.Wait()
	assert.LessOrEqual(t, c.Len(), 64)
}
