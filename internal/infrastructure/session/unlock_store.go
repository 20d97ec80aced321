// Package session persists the session-scoped admin-unlock flag. The flag
// is the only client-visible state besides the query cache: set when the
// local gate password is passed, cleared on logout, and expired with the
// session TTL either way.
package session

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/caffeinepub/ryk-cart/internal/core/ports"
)

const defaultTTL = 12 * time.Hour

// UnlockStore is the Redis-backed ports.UnlockStore.
type UnlockStore struct {
	client *redis.Client
	ttl    time.Duration
}

// compile-time check
var _ ports.UnlockStore = (*UnlockStore)(nil)

// NewUnlockStore creates an UnlockStore. A non-positive ttl falls back to
// the default session length.
func NewUnlockStore(client *redis.Client, ttl time.Duration) *UnlockStore {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &UnlockStore{client: client, ttl: ttl}
}

// IsUnlocked reports whether the identity's session has passed the gate.
func (s *UnlockStore) IsUnlocked(ctx context.Context, principal string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(principal)).Result()
	if err != nil {
		return false, fmt.Errorf("unlock check: %w", err)
	}
	return n > 0, nil
}

// SetUnlocked records that the identity passed the gate.
func (s *UnlockStore) SetUnlocked(ctx context.Context, principal string) error {
	if err := s.client.Set(ctx, s.key(principal), "1", s.ttl).Err(); err != nil {
		return fmt.Errorf("set unlock flag: %w", err)
	}
	return nil
}

// Clear drops the flag (logout or explicit re-lock).
func (s *UnlockStore) Clear(ctx context.Context, principal string) error {
	if err := s.client.Del(ctx, s.key(principal)).Err(); err != nil {
		return fmt.Errorf("clear unlock flag: %w", err)
	}
	return nil
}

func (s *UnlockStore) key(principal string) string {
	return "admin_unlock:" + principal
}
