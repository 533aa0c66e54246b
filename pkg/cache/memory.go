package cache

import (
	"context"
	"time"

	"github.com/hashicorp/golang-lru/v2/expirable"
)

// Memory is an in-process LRU store. Entries are evicted when the store is
// full or, if ttl > 0, once they are older than ttl.
type Memory[V any] struct {
	lru *expirable.LRU[string, V]
}

// NewMemory creates a Memory store holding at most size entries.
// A ttl of zero keeps entries until they are evicted by size.
func NewMemory[V any](size int, ttl time.Duration) (*Memory[V], error) {
	if size <= 0 {
		return nil, ErrInvalidSize
	}
	return &Memory[V]{lru: expirable.NewLRU[string, V](size, nil, ttl)}, nil
}

func (m *Memory[V]) Get(_ context.Context, key string) (V, bool, error) {
	v, ok := m.lru.Get(key)
	return v, ok, nil
}

func (m *Memory[V]) Set(_ context.Context, key string, value V) error {
	m.lru.Add(key, value)
	return nil
}

func (m *Memory[V]) Delete(_ context.Context, key string) error {
	m.lru.Remove(key)
	return nil
}

func (m *Memory[V]) Flush(_ context.Context) error {
	m.lru.Purge()
	return nil
}

// Len returns the number of cached entries.
func (m *Memory[V]) Len() int {
	return m.lru.Len()
}
