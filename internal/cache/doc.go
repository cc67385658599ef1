// Package cache provides a small generic LRU cache for memoizing pure
// computations such as color parsing and rate-curve sampling.
//
//	c := cache.New[string, int](100)
//	c.Set("key", 42)
//	value, ok := c.Get("key")
//
// A Cache is safe for concurrent use and must not be copied after
// creation (it contains a mutex).
package cache
