// Package viewcache implements the cache-invalidation signal the mutation
// layer fires after every successful write. Rendered-route caches are keyed
// by path in Redis; invalidating a route deletes its key so the next read
// re-renders from the store.
package viewcache

import (
	"context"

	"github.com/redis/go-redis/v9"
)

const keyPrefix = "view:"

// Invalidator marks a named route's cached render as stale.
type Invalidator interface {
	Invalidate(ctx context.Context, path string) error
}

// Redis deletes the route's cache key.
type Redis struct {
	rdb *redis.Client
}

func NewRedis(rdb *redis.Client) *Redis {
	return &Redis{rdb: rdb}
}

func (r *Redis) Invalidate(ctx context.Context, path string) error {
	return r.rdb.Del(ctx, keyPrefix+path).Err()
}

// Noop satisfies Invalidator when no render cache is deployed.
type Noop struct{}

func (Noop) Invalidate(context.Context, string) error { return nil }

var (
	_ Invalidator = (*Redis)(nil)
	_ Invalidator = Noop{}
)
