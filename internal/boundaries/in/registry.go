// Package in defines input ports (interfaces) for use cases.
// These interfaces define the contract between driving adapters (HTTP, CLI)
// and the business logic (use cases).
package in

import (
	"context"
	"io"
	"time"

	"github.com/opencontainers/go-digest"

	"github.com/bnema/kestrel/internal/domain"
)

// RegistryService defines the contract for container registry operations.
type RegistryService interface {
	// Manifest operations
	GetManifest(ctx context.Context, name, reference string) (*domain.Manifest, error)
	PutManifest(ctx context.Context, manifest *domain.Manifest) (digest.Digest, error)
	DeleteManifest(ctx context.Context, name, reference string) error
	ManifestHistory(ctx context.Context, name, reference string) ([]digest.Digest, error)

	// Blob operations
	GetBlob(ctx context.Context, name string, d digest.Digest) (io.ReadCloser, domain.BlobInfo, error)
	StatBlob(ctx context.Context, name string, d digest.Digest) (domain.BlobInfo, error)
	PutBlob(ctx context.Context, name string, d digest.Digest, data io.Reader, size int64) (domain.BlobInfo, error)
	MountBlob(ctx context.Context, name, from string, d digest.Digest) (domain.BlobInfo, error)
	DeleteBlob(ctx context.Context, name string, d digest.Digest) error

	// Upload operations
	StartUpload(ctx context.Context, name string) (domain.Upload, error)
	UploadStatus(ctx context.Context, name, uuid string) (domain.Upload, error)
	AppendBlobChunk(ctx context.Context, name, uuid string, offset int64, data io.Reader, size int64) (domain.Upload, error)
	FinishUpload(ctx context.Context, name, uuid string, d digest.Digest) (domain.BlobInfo, error)
	CancelUpload(ctx context.Context, name, uuid string) error

	// Tag and catalog operations
	ListTags(ctx context.Context, name string) ([]string, error)
	ListRepositories(ctx context.Context, last string, n int) (domain.CatalogPage, error)

	// Maintenance
	GarbageCollect(ctx context.Context, grace time.Duration) (domain.GCReport, error)
}
