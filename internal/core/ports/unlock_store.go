package ports

import "context"

// UnlockStore records, per identity session, whether the local admin
// password gate has been passed. This is the only client-visible persisted
// state besides the query cache; the flag is session-scoped and is cleared
// on logout.
type UnlockStore interface {
	IsUnlocked(ctx context.Context, principal string) (bool, error)
	SetUnlocked(ctx context.Context, principal string) error
	Clear(ctx context.Context, principal string) error
}
