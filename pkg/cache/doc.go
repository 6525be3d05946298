// Package cache provides a small generic LRU cache.
//
// It backs the word-bank resolver's memoization of resolved word pools, and
// is generic over both key and value so it can serve any pure lookup.
//
//	c := cache.NewLRU[string, int](128)
//	c.Put("a", 1)
//	v, ok := c.Get("a")
package cache
