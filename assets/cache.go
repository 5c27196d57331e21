package assets

import "fmt"

// Cache is a named lookup table with two ways to ask: MustGet for content
// the game cannot run without, and Get for content that may fall back to a
// placeholder.
type Cache[T any] struct {
	kind     string
	items    map[string]T
	fallback T
}

// NewCache returns an empty cache whose Get answers fallback for unknown keys.
func NewCache[T any](kind string, fallback T) *Cache[T] {
	return &Cache[T]{kind: kind, items: make(map[string]T), fallback: fallback}
}

// Put registers v under key, replacing any previous value.
func (c *Cache[T]) Put(key string, v T) {
	c.items[key] = v
}

// SetFallback replaces the value Get returns for unknown keys.
func (c *Cache[T]) SetFallback(v T) {
	c.fallback = v
}

// Has reports whether key is registered.
func (c *Cache[T]) Has(key string) bool {
	_, ok := c.items[key]
	return ok
}

// MustGet returns the value for key and panics if there is none.
func (c *Cache[T]) MustGet(key string) T {
	v, ok := c.items[key]
	if !ok {
		panic(fmt.Sprintf("%s %q not loaded", c.kind, key))
	}
	return v
}

// Get returns the value for key, or the fallback if there is none.
func (c *Cache[T]) Get(key string) T {
	if v, ok := c.items[key]; ok {
		return v
	}
	return c.fallback
}
