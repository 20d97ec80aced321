package ports

import (
	"context"
	"errors"
	"strconv"
	"time"
)

// ErrCacheMiss is returned by QueryCache.Get when the key has no entry.
var ErrCacheMiss = errors.New("cache miss")

// QueryCache is the shared cache of backend responses, keyed by logical
// query identity ("products", "cart:<principal>", ...). Values are stored
// as JSON. Mutations invalidate the related keys; readers racing an
// invalidation may observe stale snapshots, which is accepted.
//
// The cache is an optimization only: implementations must never be treated
// as a source of truth, and callers degrade to direct backend reads when
// the cache errors.
type QueryCache interface {
	Get(ctx context.Context, key string, dest any) error
	Set(ctx context.Context, key string, value any, ttl time.Duration) error
	Invalidate(ctx context.Context, keys ...string) error
}

// Logical cache keys. Per-identity keys are derived with the *Key helpers.
const (
	KeyProducts  = "products"
	KeyBootstrap = "bootstrap"
)

func ProductKey(id int64) string         { return "product:" + strconv.FormatInt(id, 10) }
func CartKey(principal string) string    { return "cart:" + principal }
func PointsKey(principal string) string  { return "points:" + principal }
func ProfileKey(principal string) string { return "profile:" + principal }
func RoleKey(principal string) string    { return "role:" + principal }
