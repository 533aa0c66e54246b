package cache

import "errors"

var (
	ErrInvalidSize   = errors.New("cache size must be positive")
	ErrNilClient     = errors.New("redis client is nil")
	ErrEncodeValue   = errors.New("failed to encode cache value")
	ErrDecodeValue   = errors.New("failed to decode cache value")
	ErrBackendFailed = errors.New("cache backend operation failed")
)
