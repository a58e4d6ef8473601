package in

import (
	"context"

	"github.com/opencontainers/go-digest"

	"github.com/bnema/kestrel/internal/domain"
)

// ManifestService defines the contract for manifest storage operations
// shared by the registry facade and the proxy cache.
type ManifestService interface {
	PutManifest(ctx context.Context, manifest *domain.Manifest, opts domain.PutManifestOptions) (digest.Digest, error)
	GetManifest(ctx context.Context, name, reference string) (*domain.Manifest, error)
	DeleteManifest(ctx context.Context, name, reference string) error
	ListTags(ctx context.Context, name string) ([]string, error)
	ListRepositories(ctx context.Context, last string, n int) (domain.CatalogPage, error)
	ManifestHistory(ctx context.Context, name, reference string) ([]digest.Digest, error)

	// Rebuild replays every stored manifest into the blob reference counts.
	// It runs once; later calls return the first result.
	Rebuild(ctx context.Context) (int, error)
}
