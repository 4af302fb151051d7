package cache

import (
	"sync"
	"time"
)

type entry[T any] struct {
	value     T
	expiresAt time.Time
}

// InMemory is a small TTL cache guarded by a mutex. Expired entries are
// dropped on read.
type InMemory[T any] struct {
	mu      sync.RWMutex
	entries map[string]entry[T]
}

func NewInMemory[T any]() *InMemory[T] {
	return &InMemory[T]{
		entries: make(map[string]entry[T]),
	}
}

func (c *InMemory[T]) Set(key string, value T, ttl time.Duration) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = entry[T]{
		value:     value,
		expiresAt: time.Now().Add(ttl),
	}
}

func (c *InMemory[T]) Get(key string) (T, bool) {
	c.mu.RLock()
	e, ok := c.entries[key]
	c.mu.RUnlock()

	if !ok {
		var zero T
		return zero, false
	}
	if time.Now().After(e.expiresAt) {
		c.Delete(key)
		var zero T
		return zero, false
	}
	return e.value, true
}

func (c *InMemory[T]) Delete(key string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.entries, key)
}

func (c *InMemory[T]) Clear() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries = make(map[string]entry[T])
}
