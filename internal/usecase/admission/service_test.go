package admission

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/kestrel/internal/domain"
	"github.com/bnema/kestrel/internal/logging"
)

func testContext() context.Context {
	return logging.WithCtx(context.Background(), logging.Nop())
}

var testRegistries = domain.ProxyRegistries{
	{Alias: "docker", Host: "docker.io"},
	{Alias: "ghcr", Host: "ghcr.io"},
}

func TestService_Decide(t *testing.T) {
	svc := NewService(Config{}, domain.ValidationPolicy{
		Default: domain.DecisionAllow,
		Allow:   []string{"trow.test/"},
		Deny:    []string{"toto"},
	}, nil)

	tests := []struct {
		name  string
		image string
		want  domain.Decision
	}{
		{"deny prefix", "toto/image:v1", domain.DecisionDeny},
		{"allow prefix", "trow.test/app:v1", domain.DecisionAllow},
		{"default", "other/app:v1", domain.DecisionAllow},
		{"deny matches whole segment only", "totoro/image:v1", domain.DecisionAllow},
		{"deny matches bare name with tag", "toto:v1", domain.DecisionDeny},
		{"deny matches normalized form", "docker.io/toto/image", domain.DecisionDeny},
		{"malformed", "UPPER/Case:v1", domain.DecisionDeny},
		{"empty", "", domain.DecisionDeny},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.Decide(testContext(), tt.image)
			assert.Equal(t, tt.want, got.Decision)
			assert.NotEmpty(t, got.Reason)
		})
	}
}

func TestService_Decide_DenyOverridesAllow(t *testing.T) {
	svc := NewService(Config{}, domain.ValidationPolicy{
		Default: domain.DecisionAllow,
		Allow:   []string{"ghcr.io/acme"},
		Deny:    []string{"ghcr.io/acme/legacy"},
	}, nil)

	assert.Equal(t, domain.DecisionAllow, svc.Decide(testContext(), "ghcr.io/acme/app:1").Decision)
	assert.Equal(t, domain.DecisionDeny, svc.Decide(testContext(), "ghcr.io/acme/legacy:1").Decision)
	assert.Equal(t, domain.DecisionDeny, svc.Decide(testContext(), "ghcr.io/acme/legacy/worker@sha256:"+
		"0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef").Decision)
}

func TestService_Decide_DefaultDeny(t *testing.T) {
	svc := NewService(Config{}, domain.ValidationPolicy{
		Default: domain.DecisionDeny,
		Allow:   []string{"docker.io/library"},
	}, nil)

	// Familiar names are matched in their fully qualified form too.
	assert.Equal(t, domain.DecisionAllow, svc.Decide(testContext(), "alpine:3.20").Decision)
	assert.Equal(t, domain.DecisionDeny, svc.Decide(testContext(), "bitnami/redis").Decision)
	assert.False(t, svc.Decide(testContext(), "quay.io/app").Allowed())
}

func TestService_Decide_NoPolicy(t *testing.T) {
	svc := NewService(Config{}, domain.ValidationPolicy{}, nil)

	assert.True(t, svc.Decide(testContext(), "anything/at:all").Allowed())
	assert.False(t, svc.Decide(testContext(), "::bad").Allowed())
}

func TestService_Mutate(t *testing.T) {
	svc := NewService(
		Config{ServiceName: "registry.local:8443", ProxyPrefix: "f"},
		domain.ValidationPolicy{Default: domain.DecisionAllow, Deny: []string{"ghcr.io/evil"}},
		testRegistries,
	)
	const sha = "sha256:0123456789abcdef0123456789abcdef0123456789abcdef0123456789abcdef"

	tests := []struct {
		name    string
		image   string
		want    string
		changed bool
	}{
		{"docker hub familiar", "alpine:3.20", "registry.local:8443/f/docker/library/alpine:3.20", true},
		{"docker hub org", "docker.io/bitnami/redis:7", "registry.local:8443/f/docker/bitnami/redis:7", true},
		{"no tag", "ghcr.io/acme/app", "registry.local:8443/f/ghcr/acme/app", true},
		{"digest wins over tag", "ghcr.io/acme/app:1@" + sha, "registry.local:8443/f/ghcr/acme/app@" + sha, true},
		{"not proxied", "quay.io/acme/app:1", "quay.io/acme/app:1", false},
		{"already local", "registry.local:8443/myapp:1", "registry.local:8443/myapp:1", false},
		{"denied", "ghcr.io/evil/app:1", "ghcr.io/evil/app:1", false},
		{"malformed", "Not A Reference", "Not A Reference", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, changed := svc.Mutate(testContext(), tt.image)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.changed, changed)
		})
	}
}

func TestParseImage(t *testing.T) {
	ref, err := ParseImage("alpine")
	require.NoError(t, err)
	assert.Equal(t, "docker.io", ref.Host)
	assert.Equal(t, "library/alpine", ref.Repository)
	assert.Empty(t, ref.Tag)

	ref, err = ParseImage("localhost:5000/team/app:v2")
	require.NoError(t, err)
	assert.Equal(t, "localhost:5000", ref.Host)
	assert.Equal(t, "team/app", ref.Repository)
	assert.Equal(t, "v2", ref.Tag)

	_, err = ParseImage("bad//name")
	assert.ErrorIs(t, err, domain.ErrReferenceInvalid)
}

func TestHasSegmentPrefix(t *testing.T) {
	assert.True(t, hasSegmentPrefix("toto/image:v1", "toto"))
	assert.True(t, hasSegmentPrefix("trow.test/app", "trow.test/"))
	assert.True(t, hasSegmentPrefix("toto", "toto"))
	assert.False(t, hasSegmentPrefix("totoro/image", "toto"))
	assert.False(t, hasSegmentPrefix("Toto/image", "toto"))
	assert.False(t, hasSegmentPrefix("toto/image", ""))
}
