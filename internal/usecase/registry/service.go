// Package registry implements the container registry use case.
package registry

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/opencontainers/go-digest"

	"github.com/bnema/kestrel/internal/boundaries/in"
	"github.com/bnema/kestrel/internal/boundaries/out"
	"github.com/bnema/kestrel/internal/domain"
	"github.com/bnema/kestrel/internal/logging"
	"github.com/bnema/kestrel/pkg/validation"
)

// MaxCatalogPage bounds the number of repositories returned in one page.
const MaxCatalogPage = 1000

// Ensure Service implements in.RegistryService.
var _ in.RegistryService = (*Service)(nil)

// Config holds the request limits enforced before any store work.
type Config struct {
	// MaxManifestSize in bytes. Zero disables the check.
	MaxManifestSize int64
	// MaxBlobSize in bytes. Zero disables the check.
	MaxBlobSize int64
}

// Service implements the RegistryService interface.
type Service struct {
	cfg       Config
	manifests in.ManifestService
	blobs     out.BlobStorage
	proxy     in.ProxyCacheService
}

// NewService creates a new registry service. proxy may be nil when no
// upstream registries are configured.
func NewService(
	cfg Config,
	manifests in.ManifestService,
	blobs out.BlobStorage,
	proxy in.ProxyCacheService,
) *Service {
	return &Service{
		cfg:       cfg,
		manifests: manifests,
		blobs:     blobs,
		proxy:     proxy,
	}
}

// GetManifest retrieves a manifest by name and reference.
func (s *Service) GetManifest(ctx context.Context, name, reference string) (*domain.Manifest, error) {
	ctx = logging.CtxWithFields(ctx, map[string]any{
		logging.FieldLayer:   "usecase",
		logging.FieldUseCase: "GetManifest",
		"name":               name,
		"reference":          reference,
	})
	log := logging.FromCtx(ctx)

	if err := checkName(name); err != nil {
		return nil, err
	}

	var (
		manifest *domain.Manifest
		err      error
	)
	if s.proxied(name) {
		manifest, err = s.proxy.ResolveManifest(ctx, name, reference)
	} else {
		manifest, err = s.manifests.GetManifest(ctx, name, reference)
	}
	if err != nil {
		return nil, log.WrapErr(err, "failed to get manifest")
	}
	return manifest, nil
}

// PutManifest stores a manifest after checking its size.
func (s *Service) PutManifest(ctx context.Context, manifest *domain.Manifest) (digest.Digest, error) {
	ctx = logging.CtxWithFields(ctx, map[string]any{
		logging.FieldLayer:   "usecase",
		logging.FieldUseCase: "PutManifest",
		"name":               manifest.Name,
		"reference":          manifest.Reference,
		logging.FieldSize:    len(manifest.Data),
	})
	log := logging.FromCtx(ctx)

	if err := s.checkWrite(ctx, manifest.Name); err != nil {
		return "", err
	}
	if s.cfg.MaxManifestSize > 0 && int64(len(manifest.Data)) > s.cfg.MaxManifestSize {
		return "", fmt.Errorf("%w: manifest is %d bytes, limit is %d",
			domain.ErrSizeLimitExceeded, len(manifest.Data), s.cfg.MaxManifestSize)
	}

	d, err := s.manifests.PutManifest(ctx, manifest, domain.PutManifestOptions{})
	if err != nil {
		return "", log.WrapErr(err, "failed to store manifest")
	}
	return d, nil
}

// DeleteManifest removes a tag or a manifest revision. Proxied repositories
// may be evicted this way.
func (s *Service) DeleteManifest(ctx context.Context, name, reference string) error {
	ctx = logging.CtxWithFields(ctx, map[string]any{
		logging.FieldLayer:   "usecase",
		logging.FieldUseCase: "DeleteManifest",
		"name":               name,
		"reference":          reference,
	})
	log := logging.FromCtx(ctx)

	if err := requireIdentity(ctx); err != nil {
		return err
	}
	if err := checkName(name); err != nil {
		return err
	}

	if err := s.manifests.DeleteManifest(ctx, name, reference); err != nil {
		return log.WrapErr(err, "failed to delete manifest")
	}
	return nil
}

// ManifestHistory returns the digests a reference pointed to, most recent first.
func (s *Service) ManifestHistory(ctx context.Context, name, reference string) ([]digest.Digest, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	return s.manifests.ManifestHistory(ctx, name, reference)
}

// GetBlob opens a blob. Proxied repositories fetch missing blobs upstream.
func (s *Service) GetBlob(ctx context.Context, name string, d digest.Digest) (io.ReadCloser, domain.BlobInfo, error) {
	ctx = logging.CtxWithFields(ctx, map[string]any{
		logging.FieldLayer:   "usecase",
		logging.FieldUseCase: "GetBlob",
		"name":               name,
		"digest":             d.String(),
	})
	log := logging.FromCtx(ctx)

	if err := checkBlob(name, d); err != nil {
		return nil, domain.BlobInfo{}, err
	}

	var (
		rc   io.ReadCloser
		info domain.BlobInfo
		err  error
	)
	switch {
	case s.proxied(name):
		rc, info, err = s.proxy.ResolveBlob(ctx, name, d)
	case !s.blobs.HasClaim(ctx, name, d):
		err = fmt.Errorf("%w: %s", domain.ErrBlobNotFound, d)
	default:
		rc, info, err = s.blobs.GetBlob(ctx, d)
	}
	if err != nil {
		return nil, domain.BlobInfo{}, log.WrapErr(err, "failed to get blob")
	}
	return rc, info, nil
}

// StatBlob describes a blob without opening it.
func (s *Service) StatBlob(ctx context.Context, name string, d digest.Digest) (domain.BlobInfo, error) {
	if err := checkBlob(name, d); err != nil {
		return domain.BlobInfo{}, err
	}

	if !s.proxied(name) {
		if !s.blobs.HasClaim(ctx, name, d) {
			return domain.BlobInfo{}, fmt.Errorf("%w: %s", domain.ErrBlobNotFound, d)
		}
		return s.blobs.StatBlob(ctx, d)
	}

	info, err := s.blobs.StatBlob(ctx, d)
	if err == nil {
		return info, nil
	}

	rc, info, err := s.proxy.ResolveBlob(ctx, name, d)
	if err != nil {
		return domain.BlobInfo{}, err
	}
	_ = rc.Close()
	return info, nil
}

// PutBlob stores a complete blob in one request.
func (s *Service) PutBlob(ctx context.Context, name string, d digest.Digest, data io.Reader, size int64) (domain.BlobInfo, error) {
	ctx = logging.CtxWithFields(ctx, map[string]any{
		logging.FieldLayer:   "usecase",
		logging.FieldUseCase: "PutBlob",
		"name":               name,
		"digest":             d.String(),
		logging.FieldSize:    size,
	})
	log := logging.FromCtx(ctx)

	if err := s.checkWrite(ctx, name); err != nil {
		return domain.BlobInfo{}, err
	}
	if err := validation.ValidateDigest(d.String()); err != nil {
		return domain.BlobInfo{}, fmt.Errorf("%w: %v", domain.ErrInvalidDigest, err)
	}
	if err := s.checkBlobSize(size); err != nil {
		return domain.BlobInfo{}, err
	}

	info, err := s.blobs.PutBlob(ctx, name, d, data)
	if err != nil {
		return domain.BlobInfo{}, log.WrapErr(err, "failed to store blob")
	}
	log.Info().Msg("blob stored")
	return info, nil
}

// MountBlob makes a blob already stored for from available in name. from
// must hold a claim on the blob itself.
func (s *Service) MountBlob(ctx context.Context, name, from string, d digest.Digest) (domain.BlobInfo, error) {
	ctx = logging.CtxWithFields(ctx, map[string]any{
		logging.FieldLayer:   "usecase",
		logging.FieldUseCase: "MountBlob",
		"name":               name,
		"from":               from,
		"digest":             d.String(),
	})
	log := logging.FromCtx(ctx)

	if err := s.checkWrite(ctx, name); err != nil {
		return domain.BlobInfo{}, err
	}
	if err := checkBlob(from, d); err != nil {
		return domain.BlobInfo{}, err
	}
	if !s.blobs.HasClaim(ctx, from, d) {
		return domain.BlobInfo{}, fmt.Errorf("%w: %s is not available in %s", domain.ErrBlobNotFound, d, from)
	}

	info, err := s.blobs.MountBlob(ctx, name, d)
	if err != nil {
		return domain.BlobInfo{}, log.WrapErr(err, "failed to mount blob")
	}
	log.Info().Msg("blob mounted")
	return info, nil
}

// DeleteBlob releases the upload claim name holds on a blob.
func (s *Service) DeleteBlob(ctx context.Context, name string, d digest.Digest) error {
	ctx = logging.CtxWithFields(ctx, map[string]any{
		logging.FieldLayer:   "usecase",
		logging.FieldUseCase: "DeleteBlob",
		"name":               name,
		"digest":             d.String(),
	})
	log := logging.FromCtx(ctx)

	if err := requireIdentity(ctx); err != nil {
		return err
	}
	if err := checkBlob(name, d); err != nil {
		return err
	}

	if err := s.blobs.DeleteBlob(ctx, d, name); err != nil {
		return log.WrapErr(err, "failed to delete blob")
	}
	return nil
}

// StartUpload opens an upload session for name.
func (s *Service) StartUpload(ctx context.Context, name string) (domain.Upload, error) {
	ctx = logging.CtxWithFields(ctx, map[string]any{
		logging.FieldLayer:   "usecase",
		logging.FieldUseCase: "StartUpload",
		"name":               name,
	})
	log := logging.FromCtx(ctx)

	if err := s.checkWrite(ctx, name); err != nil {
		return domain.Upload{}, err
	}

	upload, err := s.blobs.BeginUpload(ctx, name)
	if err != nil {
		return domain.Upload{}, log.WrapErr(err, "failed to start blob upload")
	}

	log.Info().Str("uuid", upload.UUID).Msg("blob upload started")
	return upload, nil
}

// UploadStatus reports the progress of a session owned by name.
func (s *Service) UploadStatus(ctx context.Context, name, uuid string) (domain.Upload, error) {
	if err := checkName(name); err != nil {
		return domain.Upload{}, err
	}
	return s.session(ctx, name, uuid)
}

// AppendBlobChunk appends data at offset. A chunk at the wrong offset is
// rejected before anything else; one that would take the upload past the
// blob size limit aborts the session.
func (s *Service) AppendBlobChunk(ctx context.Context, name, uuid string, offset int64, data io.Reader, size int64) (domain.Upload, error) {
	ctx = logging.CtxWithFields(ctx, map[string]any{
		logging.FieldLayer:   "usecase",
		logging.FieldUseCase: "AppendBlobChunk",
		"name":               name,
		"uuid":               uuid,
		"offset":             offset,
		logging.FieldSize:    size,
	})
	log := logging.FromCtx(ctx)

	if err := requireIdentity(ctx); err != nil {
		return domain.Upload{}, err
	}
	if err := checkName(name); err != nil {
		return domain.Upload{}, err
	}
	current, err := s.session(ctx, name, uuid)
	if err != nil {
		return domain.Upload{}, err
	}
	// A stale offset must not abort a healthy session through the size check.
	if offset != current.Offset {
		return domain.Upload{}, fmt.Errorf("%w: expected offset %d, got %d", domain.ErrOffsetConflict, current.Offset, offset)
	}
	if size > 0 {
		if err := s.checkBlobSize(offset + size); err != nil {
			_ = s.blobs.AbortUpload(ctx, uuid)
			return domain.Upload{}, err
		}
	}

	newOffset, err := s.blobs.AppendChunk(ctx, uuid, offset, data)
	if err != nil {
		return domain.Upload{}, log.WrapErr(err, "failed to append chunk")
	}

	upload, err := s.blobs.UploadStatus(ctx, uuid)
	if err != nil {
		return domain.Upload{}, err
	}
	upload.Offset = newOffset
	return upload, nil
}

// FinishUpload verifies and publishes the session's data under d.
func (s *Service) FinishUpload(ctx context.Context, name, uuid string, d digest.Digest) (domain.BlobInfo, error) {
	ctx = logging.CtxWithFields(ctx, map[string]any{
		logging.FieldLayer:   "usecase",
		logging.FieldUseCase: "FinishUpload",
		"name":               name,
		"uuid":               uuid,
		"digest":             d.String(),
	})
	log := logging.FromCtx(ctx)

	if err := requireIdentity(ctx); err != nil {
		return domain.BlobInfo{}, err
	}
	if err := checkName(name); err != nil {
		return domain.BlobInfo{}, err
	}
	if err := validation.ValidateDigest(d.String()); err != nil {
		return domain.BlobInfo{}, fmt.Errorf("%w: %v", domain.ErrInvalidDigest, err)
	}
	if _, err := s.session(ctx, name, uuid); err != nil {
		return domain.BlobInfo{}, err
	}

	info, err := s.blobs.CompleteUpload(ctx, uuid, d)
	if err != nil {
		return domain.BlobInfo{}, log.WrapErr(err, "failed to finish blob upload")
	}

	log.Info().Int64(logging.FieldSize, info.Size).Msg("blob upload finished")
	return info, nil
}

// CancelUpload aborts a session owned by name.
func (s *Service) CancelUpload(ctx context.Context, name, uuid string) error {
	ctx = logging.CtxWithFields(ctx, map[string]any{
		logging.FieldLayer:   "usecase",
		logging.FieldUseCase: "CancelUpload",
		"name":               name,
		"uuid":               uuid,
	})
	log := logging.FromCtx(ctx)

	if err := requireIdentity(ctx); err != nil {
		return err
	}
	if err := checkName(name); err != nil {
		return err
	}
	if _, err := s.session(ctx, name, uuid); err != nil {
		return err
	}

	if err := s.blobs.AbortUpload(ctx, uuid); err != nil {
		return log.WrapErr(err, "failed to cancel blob upload")
	}

	log.Info().Msg("blob upload cancelled")
	return nil
}

// ListTags returns all tags for a repository.
func (s *Service) ListTags(ctx context.Context, name string) ([]string, error) {
	if err := checkName(name); err != nil {
		return nil, err
	}
	return s.manifests.ListTags(ctx, name)
}

// ListRepositories returns one page of the catalog.
func (s *Service) ListRepositories(ctx context.Context, last string, n int) (domain.CatalogPage, error) {
	if n <= 0 || n > MaxCatalogPage {
		n = MaxCatalogPage
	}
	return s.manifests.ListRepositories(ctx, last, n)
}

// GarbageCollect makes sure reference counts reflect every stored manifest,
// then reclaims unreferenced blobs older than grace and stale uploads.
func (s *Service) GarbageCollect(ctx context.Context, grace time.Duration) (domain.GCReport, error) {
	ctx = logging.CtxWithFields(ctx, map[string]any{
		logging.FieldLayer:   "usecase",
		logging.FieldUseCase: "GarbageCollect",
		"grace":              grace.String(),
	})
	log := logging.FromCtx(ctx)

	scanned, err := s.manifests.Rebuild(ctx)
	if err != nil {
		return domain.GCReport{}, log.WrapErr(err, "failed to rebuild reference counts")
	}

	report, err := s.blobs.Sweep(ctx, grace)
	report.ManifestsScanned = scanned
	if err != nil {
		return report, log.WrapErr(err, "garbage collection incomplete")
	}

	log.Info().
		Int("manifests", report.ManifestsScanned).
		Int("blobs_removed", report.BlobsRemoved).
		Int64("bytes_reclaimed", report.BytesReclaimed).
		Int("uploads_purged", report.UploadsPurged).
		Msg("garbage collection finished")
	return report, nil
}

func (s *Service) proxied(name string) bool {
	return s.proxy != nil && s.proxy.IsProxied(name)
}

// checkWrite admits mutations by an authenticated caller outside the proxy
// namespace.
func (s *Service) checkWrite(ctx context.Context, name string) error {
	if err := requireIdentity(ctx); err != nil {
		return err
	}
	if err := checkName(name); err != nil {
		return err
	}
	if s.proxied(name) {
		return fmt.Errorf("%w: %s is served by the proxy cache and is read-only", domain.ErrNameInvalid, name)
	}
	return nil
}

func (s *Service) checkBlobSize(size int64) error {
	if s.cfg.MaxBlobSize > 0 && size > s.cfg.MaxBlobSize {
		return fmt.Errorf("%w: blob is %d bytes, limit is %d", domain.ErrSizeLimitExceeded, size, s.cfg.MaxBlobSize)
	}
	return nil
}

// session returns the upload uuid, failing when it belongs to another repository.
func (s *Service) session(ctx context.Context, name, uuid string) (domain.Upload, error) {
	if err := validation.ValidateUUID(uuid); err != nil {
		return domain.Upload{}, fmt.Errorf("%w: %v", domain.ErrUploadNotFound, err)
	}
	upload, err := s.blobs.UploadStatus(ctx, uuid)
	if err != nil {
		return domain.Upload{}, err
	}
	if upload.Name != name {
		return domain.Upload{}, fmt.Errorf("%w: %s", domain.ErrUploadNotFound, uuid)
	}
	return upload, nil
}

func requireIdentity(ctx context.Context) error {
	if _, ok := domain.IdentityFromContext(ctx); !ok {
		return domain.ErrUnauthenticated
	}
	return nil
}

func checkName(name string) error {
	if err := validation.ValidateRepositoryName(name); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrNameInvalid, err)
	}
	return nil
}

func checkBlob(name string, d digest.Digest) error {
	if err := checkName(name); err != nil {
		return err
	}
	if err := validation.ValidateDigest(d.String()); err != nil {
		return fmt.Errorf("%w: %v", domain.ErrInvalidDigest, err)
	}
	return nil
}
