// Package cache stores computed results keyed by their input.
//
// Three Store implementations are provided: Memory (a bounded LRU with
// optional expiry, backed by hashicorp/golang-lru), Redis (JSON values with a
// TTL, shared between processes) and Noop (caching disabled).
//
//	store, err := cache.NewMemory[Result](1024, 10*time.Minute)
//	key := cache.Key(input, strings.Join(delimiters, "\x00"))
//	if v, ok, _ := store.Get(ctx, key); ok {
//	    return v
//	}
package cache

import (
	"context"
	"crypto/sha256"
	"encoding/binary"
	"encoding/hex"
)

// Store is a key-value cache for values of type V.
// Get reports a miss with ok=false and a nil error.
type Store[V any] interface {
	Get(ctx context.Context, key string) (V, bool, error)
	Set(ctx context.Context, key string, value V) error
	Delete(ctx context.Context, key string) error
	Flush(ctx context.Context) error
}

// Key derives a fixed-length key from parts. Parts are length-prefixed so
// that ("ab", "c") and ("a", "bc") produce different keys.
func Key(parts ...string) string {
	h := sha256.New()
	var size [8]byte
	for _, p := range parts {
		binary.LittleEndian.PutUint64(size[:], uint64(len(p)))
		h.Write(size[:])
		h.Write([]byte(p))
	}
	return hex.EncodeToString(h.Sum(nil))
}
