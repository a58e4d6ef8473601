package domain

import (
	"errors"

	"github.com/bnema/kestrel/pkg/digestcodec"
)

// Domain errors represent business-level errors that can occur in the system.
// Adapters wrap them with fmt.Errorf("...: %w", err) and callers classify
// with errors.Is.
var (
	// Lookup errors
	ErrNotFound           = errors.New("not found")
	ErrBlobNotFound       = fmtNotFound("blob")
	ErrManifestNotFound   = fmtNotFound("manifest")
	ErrUploadNotFound     = fmtNotFound("upload")
	ErrRepositoryNotFound = fmtNotFound("repository")

	// Integrity errors
	ErrDigestMismatch             = errors.New("digest mismatch")
	ErrUpstreamIntegrityViolation = errors.New("upstream content does not match its digest")
	ErrUnsupportedAlgorithm       = digestcodec.ErrUnsupportedAlgorithm
	ErrInvalidDigest              = errors.New("invalid digest")

	// Upload errors
	ErrOffsetConflict    = errors.New("upload offset conflict")
	ErrSessionExpired    = errors.New("upload session expired")
	ErrSizeLimitExceeded = errors.New("size limit exceeded")
	ErrCapacityExceeded  = errors.New("too many concurrent upload sessions")

	// Manifest errors
	ErrManifestInvalid          = errors.New("manifest invalid")
	ErrManifestReferenceMissing = errors.New("manifest references unknown content")
	ErrNameInvalid              = errors.New("invalid repository name")
	ErrReferenceInvalid         = errors.New("invalid reference")

	// Proxy errors
	ErrUpstreamUnavailable = errors.New("upstream registry unavailable")
	ErrProxyNotConfigured  = errors.New("no proxy registry configured for alias")

	// Auth errors
	ErrUnauthenticated = errors.New("authentication required")

	// Config errors
	ErrInvalidConfig = errors.New("invalid configuration")
)

type notFoundError struct{ what string }

func (e notFoundError) Error() string { return e.what + " not found" }
func (e notFoundError) Unwrap() error { return ErrNotFound }

func fmtNotFound(what string) error { return notFoundError{what: what} }
