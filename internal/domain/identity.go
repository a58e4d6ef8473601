package domain

import "context"

type contextKey string

// ContextKeyIdentity holds the authenticated Identity for a request.
const ContextKeyIdentity contextKey = "identity"

// Identity is the authenticated caller of a request.
type Identity struct {
	Subject string
	// Anonymous is set when authentication is disabled.
	Anonymous bool
}

// WithIdentity returns a context carrying id.
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, ContextKeyIdentity, id)
}

// IdentityFromContext returns the identity attached to ctx.
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	id, ok := ctx.Value(ContextKeyIdentity).(Identity)
	return id, ok
}
