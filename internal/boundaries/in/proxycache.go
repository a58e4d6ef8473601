package in

import (
	"context"
	"io"

	"github.com/opencontainers/go-digest"

	"github.com/bnema/kestrel/internal/domain"
)

// ProxyCacheService defines the contract for the pull-through cache.
type ProxyCacheService interface {
	// IsProxied reports whether name lives under the proxy namespace.
	IsProxied(name string) bool
	// ResolveManifest returns the local copy of a manifest, fetching it
	// from upstream on a miss.
	ResolveManifest(ctx context.Context, name, reference string) (*domain.Manifest, error)
	// ResolveBlob opens the local copy of a blob, fetching it from upstream
	// on a miss.
	ResolveBlob(ctx context.Context, name string, d digest.Digest) (io.ReadCloser, domain.BlobInfo, error)
}
