package cache

import (
	"context"
	"errors"
	"time"
)

// ErrCacheMiss is returned when a key is not present.
var ErrCacheMiss = errors.New("cache: key not found")

// Cache is the read-through cache used by the services. The backend is
// optional infrastructure; callers must behave correctly when every call
// misses or fails.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, expiration time.Duration) error
	Delete(ctx context.Context, key string) error
	GetJSON(ctx context.Context, key string, dest interface{}) error
	SetJSON(ctx context.Context, key string, value interface{}, expiration time.Duration) error
}
