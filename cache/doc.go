// Package cache provides a small generic LRU cache.
//
// It backs the texture store: noise tiles are content-addressed by their
// generation inputs, so a cached entry never goes stale and eviction is the
// only removal path that matters.
//
//	c := cache.New[string, []byte](64)
//	c.Set("key", data)
//	data, ok := c.Get("key")
//
// Cache is safe for concurrent use and must not be copied after creation.
package cache
