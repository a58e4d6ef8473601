// Package auth implements basic authentication for registry clients.
package auth

import (
	"context"
	"fmt"

	"golang.org/x/crypto/bcrypt"

	"github.com/bnema/kestrel/internal/boundaries/in"
	"github.com/bnema/kestrel/internal/domain"
	"github.com/bnema/kestrel/internal/logging"
)

// DefaultBcryptCost is the default cost for bcrypt hashing.
const DefaultBcryptCost = 12

// Ensure Service implements in.AuthService.
var _ in.AuthService = (*Service)(nil)

// Config holds the authentication configuration.
type Config struct {
	Enabled bool
	// AnonymousRead lets unauthenticated clients pull.
	AnonymousRead bool
	// Users maps usernames to bcrypt password hashes.
	Users map[string]string
}

// Service implements the AuthService interface.
type Service struct {
	config Config
	// dummyHash keeps unknown usernames as slow as wrong passwords.
	dummyHash []byte
}

// NewService creates a new auth service.
func NewService(config Config) *Service {
	dummy, _ := bcrypt.GenerateFromPassword([]byte("kestrel"), bcrypt.MinCost)
	return &Service{
		config:    config,
		dummyHash: dummy,
	}
}

// Enabled returns whether authentication is enabled.
func (s *Service) Enabled() bool {
	return s.config.Enabled
}

// AllowAnonymousRead reports whether pulls skip authentication.
func (s *Service) AllowAnonymousRead() bool {
	return !s.config.Enabled || s.config.AnonymousRead
}

// Authenticate checks a username and password against the configured users.
func (s *Service) Authenticate(ctx context.Context, username, password string) (domain.Identity, error) {
	ctx = logging.CtxWithFields(ctx, map[string]any{
		logging.FieldLayer:   "usecase",
		logging.FieldUseCase: "Authenticate",
		"username":           username,
	})
	log := logging.FromCtx(ctx)

	if !s.config.Enabled {
		return domain.Identity{Subject: username, Anonymous: true}, nil
	}

	hash, known := s.config.Users[username]
	if !known {
		hash = string(s.dummyHash)
	}
	// bcrypt comparison is constant-time
	err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password))
	if !known || err != nil {
		log.Debug().Bool("known_user", known).Msg("authentication failed")
		return domain.Identity{}, fmt.Errorf("%w: invalid credentials", domain.ErrUnauthenticated)
	}

	log.Debug().Msg("authentication successful")
	return domain.Identity{Subject: username}, nil
}

// GeneratePasswordHash generates a bcrypt hash for a password.
func GeneratePasswordHash(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), DefaultBcryptCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}
