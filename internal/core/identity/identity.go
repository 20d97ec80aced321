// Package identity carries the authenticated caller through request
// contexts. The identity session itself lives with the external provider;
// the gateway only validates the provider's token and propagates who is
// calling.
package identity

import (
	"context"

	"github.com/caffeinepub/ryk-cart/internal/core/domain"
)

type ctxKey struct{}

// Session is the per-request identity: the resolved caller plus the raw
// provider token, which the backend client forwards upstream.
type Session struct {
	Identity domain.Identity
	Token    string
}

// WithSession returns a context carrying the session.
func WithSession(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, ctxKey{}, s)
}

// FromContext returns the session attached to ctx, or a zero (anonymous)
// session when none was attached.
func FromContext(ctx context.Context) Session {
	s, _ := ctx.Value(ctxKey{}).(Session)
	return s
}

// Caller returns the identity attached to ctx. Anonymous when absent.
func Caller(ctx context.Context) domain.Identity {
	return FromContext(ctx).Identity
}
