package cache

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

// scanBatchSize bounds how many keys Flush asks for per SCAN round trip.
const scanBatchSize = 500

// Redis stores JSON-encoded values under prefix+key with a fixed TTL.
type Redis[V any] struct {
	client redis.UniversalClient
	prefix string
	ttl    time.Duration
}

// NewRedis creates a Redis store. A ttl of zero stores keys without expiry.
func NewRedis[V any](client redis.UniversalClient, prefix string, ttl time.Duration) (*Redis[V], error) {
	if client == nil {
		return nil, ErrNilClient
	}
	return &Redis[V]{client: client, prefix: prefix, ttl: ttl}, nil
}

func (r *Redis[V]) Get(ctx context.Context, key string) (V, bool, error) {
	var zero V

	data, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return zero, false, nil
	}
	if err != nil {
		return zero, false, errors.Join(ErrBackendFailed, err)
	}

	var v V
	if err := json.Unmarshal(data, &v); err != nil {
		return zero, false, errors.Join(ErrDecodeValue, err)
	}
	return v, true, nil
}

func (r *Redis[V]) Set(ctx context.Context, key string, value V) error {
	data, err := json.Marshal(value)
	if err != nil {
		return errors.Join(ErrEncodeValue, err)
	}
	if err := r.client.Set(ctx, r.prefix+key, data, r.ttl).Err(); err != nil {
		return errors.Join(ErrBackendFailed, err)
	}
	return nil
}

func (r *Redis[V]) Delete(ctx context.Context, key string) error {
	if err := r.client.Del(ctx, r.prefix+key).Err(); err != nil {
		return errors.Join(ErrBackendFailed, err)
	}
	return nil
}

// Flush deletes every key under the store's prefix.
func (r *Redis[V]) Flush(ctx context.Context) error {
	var cursor uint64
	for {
		keys, next, err := r.client.Scan(ctx, cursor, r.prefix+"*", scanBatchSize).Result()
		if err != nil {
			return errors.Join(ErrBackendFailed, err)
		}
		if len(keys) > 0 {
			if err := r.client.Del(ctx, keys...).Err(); err != nil {
				return errors.Join(ErrBackendFailed, err)
			}
		}
		if next == 0 {
			return nil
		}
		cursor = next
	}
}
