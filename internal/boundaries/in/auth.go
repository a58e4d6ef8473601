package in

import (
	"context"

	"github.com/bnema/kestrel/internal/domain"
)

// AuthService authenticates registry clients.
type AuthService interface {
	// Enabled reports whether credentials are required at all.
	Enabled() bool
	// AllowAnonymousRead reports whether pulls may skip authentication.
	AllowAnonymousRead() bool
	Authenticate(ctx context.Context, username, password string) (domain.Identity, error)
}
