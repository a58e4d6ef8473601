package out

import (
	"context"
	"io"

	ocispec "github.com/opencontainers/image-spec/specs-go/v1"

	"github.com/bnema/kestrel/internal/domain"
)

// UpstreamRegistry fetches content from a remote registry.
type UpstreamRegistry interface {
	// ResolveManifest returns the descriptor a tag or digest points at.
	ResolveManifest(ctx context.Context, reg domain.ProxyRegistry, repository, reference string) (ocispec.Descriptor, error)
	// FetchManifest returns the descriptor and bytes of a manifest.
	FetchManifest(ctx context.Context, reg domain.ProxyRegistry, repository, reference string) (ocispec.Descriptor, []byte, error)
	// FetchBlob streams a blob.
	FetchBlob(ctx context.Context, reg domain.ProxyRegistry, repository string, desc ocispec.Descriptor) (io.ReadCloser, error)
}
