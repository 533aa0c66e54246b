package cache

import "context"

// Noop is a Store that never holds anything.
type Noop[V any] struct{}

func (Noop[V]) Get(context.Context, string) (V, bool, error) {
	var zero V
	return zero, false, nil
}

func (Noop[V]) Set(context.Context, string, V) error { return nil }
func (Noop[V]) Delete(context.Context, string) error { return nil }
func (Noop[V]) Flush(context.Context) error          { return nil }
