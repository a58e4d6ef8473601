package out

import (
	"context"
	"io"
	"time"

	"github.com/opencontainers/go-digest"

	"github.com/bnema/kestrel/internal/domain"
)

// BlobStorage is the content-addressed blob store with upload sessions and
// repository-aware reference counting.
type BlobStorage interface {
	BeginUpload(ctx context.Context, name string) (domain.Upload, error)
	AppendChunk(ctx context.Context, uuid string, offset int64, r io.Reader) (int64, error)
	UploadStatus(ctx context.Context, uuid string) (domain.Upload, error)
	CompleteUpload(ctx context.Context, uuid string, expected digest.Digest) (domain.BlobInfo, error)
	AbortUpload(ctx context.Context, uuid string) error

	// PutBlob stores r as a complete blob for name, verifying it against expected.
	PutBlob(ctx context.Context, name string, expected digest.Digest, r io.Reader) (domain.BlobInfo, error)
	// MountBlob adds a reference for name to an already stored blob.
	MountBlob(ctx context.Context, name string, d digest.Digest) (domain.BlobInfo, error)

	// GetBlob opens a blob. The blob cannot be reclaimed until the reader is closed.
	GetBlob(ctx context.Context, d digest.Digest) (io.ReadCloser, domain.BlobInfo, error)
	StatBlob(ctx context.Context, d digest.Digest) (domain.BlobInfo, error)
	BlobExists(ctx context.Context, d digest.Digest) bool
	DeleteBlob(ctx context.Context, d digest.Digest, name string) error

	// HasClaim reports whether d is accessible from name through an upload,
	// a mount or a manifest reference.
	HasClaim(ctx context.Context, name string, d digest.Digest) bool
	// ClaimReference records that a manifest in name references d. It fails
	// with domain.ErrBlobNotFound unless name already holds a claim on d.
	ClaimReference(ctx context.Context, name string, d digest.Digest) error
	// AdoptReference is ClaimReference without the claim requirement, for
	// startup replay and proxy population.
	AdoptReference(ctx context.Context, name string, d digest.Digest) error
	// ReturnReference turns a manifest reference back into an upload claim.
	ReturnReference(ctx context.Context, name string, d digest.Digest) error
	// ReleaseReference drops a reference recorded by ClaimReference.
	ReleaseReference(ctx context.Context, name string, d digest.Digest) error

	PurgeExpiredUploads(ctx context.Context) int
	Sweep(ctx context.Context, grace time.Duration) (domain.GCReport, error)
}

// ManifestRecord is a stored manifest as the persistence layer sees it.
type ManifestRecord struct {
	Digest    digest.Digest
	MediaType string
	Data      []byte
}

// ManifestStorage persists manifest records, tag pointers and tag history.
type ManifestStorage interface {
	PutRecord(ctx context.Context, name string, rec ManifestRecord) error
	GetRecord(ctx context.Context, name string, d digest.Digest) (ManifestRecord, error)
	RecordExists(ctx context.Context, name string, d digest.Digest) bool
	DeleteRecord(ctx context.Context, name string, d digest.Digest) error
	WalkRecords(ctx context.Context, fn func(name string, rec ManifestRecord) error) error

	SetTag(ctx context.Context, name, tag string, d digest.Digest) error
	ResolveTag(ctx context.Context, name, tag string) (digest.Digest, error)
	DeleteTag(ctx context.Context, name, tag string) error
	ListTags(ctx context.Context, name string) ([]string, error)
	TagsFor(ctx context.Context, name string, d digest.Digest) ([]string, error)
	TagHistory(ctx context.Context, name, tag string, limit int) ([]digest.Digest, error)

	ListRepositories(ctx context.Context, last string, n int) (domain.CatalogPage, error)
	RepositoryExists(ctx context.Context, name string) bool
}
