package domain

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNotFoundVariantsWrapErrNotFound(t *testing.T) {
	for _, err := range []error{ErrBlobNotFound, ErrManifestNotFound, ErrUploadNotFound, ErrRepositoryNotFound} {
		assert.ErrorIs(t, err, ErrNotFound)
		assert.ErrorIs(t, fmt.Errorf("wrapped: %w", err), ErrNotFound)
	}
	assert.False(t, errors.Is(ErrBlobNotFound, ErrManifestNotFound))
	assert.Equal(t, "blob not found", ErrBlobNotFound.Error())
}

func TestIdentityFromContext(t *testing.T) {
	_, ok := IdentityFromContext(context.Background())
	assert.False(t, ok)

	ctx := WithIdentity(context.Background(), Identity{Subject: "admin"})
	id, ok := IdentityFromContext(ctx)
	require.True(t, ok)
	assert.Equal(t, "admin", id.Subject)

	ctx = context.WithValue(context.Background(), ContextKeyIdentity, "admin")
	_, ok = IdentityFromContext(ctx)
	assert.False(t, ok)
}

func TestParseDecision(t *testing.T) {
	d, err := ParseDecision("Allow")
	require.NoError(t, err)
	assert.Equal(t, DecisionAllow, d)

	d, err = ParseDecision(" deny ")
	require.NoError(t, err)
	assert.Equal(t, DecisionDeny, d)

	_, err = ParseDecision("maybe")
	assert.ErrorIs(t, err, ErrInvalidConfig)
}

func TestImageReference_String(t *testing.T) {
	ref := ImageReference{Host: "docker.io", Repository: "library/alpine", Tag: "3.20"}
	assert.Equal(t, "docker.io/library/alpine:3.20", ref.String())

	ref = ImageReference{Host: "ghcr.io", Repository: "org/app", Digest: "sha256:abc"}
	assert.Equal(t, "ghcr.io/org/app@sha256:abc", ref.String())
}

func TestProxyRegistries(t *testing.T) {
	regs := ProxyRegistries{
		{Alias: "docker", Host: "registry-1.docker.io"},
		{Alias: "ghcr", Host: "ghcr.io", Username: "bot", Password: "secret"},
	}
	require.NoError(t, regs.Validate())

	r, ok := regs.ByHost("index.docker.io")
	require.True(t, ok)
	assert.Equal(t, "docker", r.Alias)

	r, ok = regs.ByAlias("ghcr")
	require.True(t, ok)
	assert.True(t, r.HasCredentials())

	_, ok = regs.ByAlias("quay")
	assert.False(t, ok)
}

func TestProxyRegistries_ValidateErrors(t *testing.T) {
	tests := []struct {
		name string
		regs ProxyRegistries
	}{
		{"duplicate alias", ProxyRegistries{{Alias: "a", Host: "x"}, {Alias: "a", Host: "y"}}},
		{"bad alias", ProxyRegistries{{Alias: "A/B", Host: "x"}}},
		{"missing host", ProxyRegistries{{Alias: "a"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.regs.Validate(), ErrInvalidConfig)
		})
	}
}

func TestUploadState(t *testing.T) {
	assert.False(t, UploadInProgress.Terminal())
	assert.True(t, UploadExpired.Terminal())
	assert.Equal(t, "aborted", UploadAborted.String())
}
