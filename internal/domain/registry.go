package domain

import (
	"time"

	"github.com/opencontainers/go-digest"
)

// Manifest is a stored manifest document. Data holds the exact bytes the
// digest was computed over.
type Manifest struct {
	Name        string
	Reference   string
	ContentType string
	Data        []byte
	Digest      digest.Digest
	Annotations map[string]string
}

// BlobInfo describes a stored blob.
type BlobInfo struct {
	Digest    digest.Digest
	Size      int64
	CreatedAt time.Time
}

// UploadState is the lifecycle state of an upload session.
type UploadState int32

const (
	UploadInitiated UploadState = iota
	UploadInProgress
	UploadCompleted
	UploadAborted
	UploadExpired
)

func (s UploadState) String() string {
	switch s {
	case UploadInitiated:
		return "initiated"
	case UploadInProgress:
		return "uploading"
	case UploadCompleted:
		return "completed"
	case UploadAborted:
		return "aborted"
	case UploadExpired:
		return "expired"
	default:
		return "unknown"
	}
}

// Terminal reports whether the session can no longer accept data.
func (s UploadState) Terminal() bool {
	return s >= UploadCompleted
}

// Upload is a snapshot of an upload session.
type Upload struct {
	UUID         string
	Name         string
	Offset       int64
	State        UploadState
	StartedAt    time.Time
	LastActivity time.Time
}

// PutManifestOptions controls how a manifest write treats missing references.
type PutManifestOptions struct {
	// Populate is called for each referenced digest that is not present
	// locally. When nil, missing references fail the write.
	Populate func(ref ManifestReference) error
}

// ManifestReference is a content reference found inside a manifest.
type ManifestReference struct {
	Digest    digest.Digest
	MediaType string
	Size      int64
	// Manifest is true for index children that are manifests themselves.
	Manifest bool
}

// CatalogPage is one page of the repository catalog.
type CatalogPage struct {
	Repositories []string
	// Next is the cursor for the following page, empty on the last one.
	Next string
}

// GCReport summarizes a garbage collection sweep.
type GCReport struct {
	BlobsRemoved     int
	BytesReclaimed   int64
	UploadsPurged    int
	ManifestsScanned int
}
