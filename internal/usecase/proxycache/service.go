// Package proxycache implements the pull-through cache for upstream registries.
package proxycache

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/opencontainers/go-digest"
	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
	"golang.org/x/sync/singleflight"

	"github.com/bnema/kestrel/internal/boundaries/in"
	"github.com/bnema/kestrel/internal/boundaries/out"
	"github.com/bnema/kestrel/internal/domain"
	"github.com/bnema/kestrel/internal/logging"
	"github.com/bnema/kestrel/pkg/digestcodec"
)

// DefaultPrefix is the first repository component of proxied repositories.
const DefaultPrefix = "f"

// Ensure Service implements in.ProxyCacheService.
var _ in.ProxyCacheService = (*Service)(nil)

// Config tunes the proxy cache.
type Config struct {
	// Prefix is the namespace proxied repositories live under.
	Prefix string
	// RefreshTags re-resolves tags upstream on every pull and falls back to
	// the local copy when the upstream cannot be reached.
	RefreshTags bool
	// FetchTimeout bounds a single upstream fetch. Zero disables the bound.
	FetchTimeout time.Duration
	// MaxManifestSize rejects larger upstream manifests. Zero disables the check.
	MaxManifestSize int64
}

// Service implements the ProxyCacheService interface.
type Service struct {
	cfg        Config
	registries domain.ProxyRegistries
	upstream   out.UpstreamRegistry
	manifests  in.ManifestService
	blobs      out.BlobStorage
	eventBus   out.EventPublisher

	flights singleflight.Group
}

// NewService creates a new proxy cache service.
func NewService(
	cfg Config,
	registries domain.ProxyRegistries,
	upstream out.UpstreamRegistry,
	manifests in.ManifestService,
	blobs out.BlobStorage,
	eventBus out.EventPublisher,
) *Service {
	if cfg.Prefix == "" {
		cfg.Prefix = DefaultPrefix
	}
	return &Service{
		cfg:        cfg,
		registries: registries,
		upstream:   upstream,
		manifests:  manifests,
		blobs:      blobs,
		eventBus:   eventBus,
	}
}

// IsProxied reports whether name lives under the proxy prefix.
func (s *Service) IsProxied(name string) bool {
	return strings.HasPrefix(name, s.cfg.Prefix+"/")
}

// route maps a local repository name onto its upstream registry and the
// repository path there.
func (s *Service) route(name string) (domain.ProxyRegistry, string, error) {
	parts := strings.SplitN(name, "/", 3)
	if len(parts) != 3 || parts[0] != s.cfg.Prefix {
		return domain.ProxyRegistry{}, "", fmt.Errorf("%w: %s", domain.ErrProxyNotConfigured, name)
	}
	reg, ok := s.registries.ByAlias(parts[1])
	if !ok {
		return domain.ProxyRegistry{}, "", fmt.Errorf("%w: %s", domain.ErrProxyNotConfigured, parts[1])
	}
	return reg, parts[2], nil
}

// ResolveManifest returns the cached manifest, fetching it on a miss.
func (s *Service) ResolveManifest(ctx context.Context, name, reference string) (*domain.Manifest, error) {
	ctx = logging.CtxWithFields(ctx, map[string]any{
		logging.FieldLayer:   "usecase",
		logging.FieldUseCase: "ResolveManifest",
		"name":               name,
		"reference":          reference,
	})
	log := logging.FromCtx(ctx)

	reg, repo, err := s.route(name)
	if err != nil {
		return nil, err
	}

	isTag := !strings.Contains(reference, ":")
	if isTag && s.cfg.RefreshTags {
		return s.refreshTag(ctx, reg, name, repo, reference)
	}

	local, err := s.manifests.GetManifest(ctx, name, reference)
	if err == nil {
		log.Debug().Msg("proxy cache hit")
		return local, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, err
	}

	return s.fetchManifest(ctx, reg, name, repo, reference)
}

// refreshTag asks the upstream where a tag points now. An unreachable
// upstream falls back to the local copy.
func (s *Service) refreshTag(ctx context.Context, reg domain.ProxyRegistry, name, repo, tag string) (*domain.Manifest, error) {
	log := logging.FromCtx(ctx)

	fetchCtx, cancel := s.fetchContext(ctx)
	desc, err := s.upstream.ResolveManifest(fetchCtx, reg, repo, tag)
	cancel()

	if err != nil {
		local, localErr := s.manifests.GetManifest(ctx, name, tag)
		if localErr == nil {
			log.Warn().Err(err).Msg("upstream unreachable, serving cached tag")
			return local, nil
		}
		return nil, upstreamError(err, domain.ErrManifestNotFound)
	}

	local, err := s.manifests.GetManifest(ctx, name, tag)
	if err == nil && local.Digest == desc.Digest {
		return local, nil
	}

	byDigest, err := s.manifests.GetManifest(ctx, name, desc.Digest.String())
	if err == nil {
		// Content is cached, only the tag moved.
		if _, err := s.manifests.PutManifest(ctx, &domain.Manifest{
			Name:        name,
			Reference:   tag,
			ContentType: byDigest.ContentType,
			Data:        byDigest.Data,
		}, domain.PutManifestOptions{}); err != nil {
			return nil, err
		}
		byDigest.Reference = tag
		return byDigest, nil
	}

	return s.fetchManifest(ctx, reg, name, repo, tag)
}

// fetchManifest downloads, verifies and stores a manifest and everything it
// references. Concurrent fetches of one reference share a single download.
func (s *Service) fetchManifest(ctx context.Context, reg domain.ProxyRegistry, name, repo, reference string) (*domain.Manifest, error) {
	key := "manifest:" + name + "@" + reference
	ch := s.flights.DoChan(key, func() (any, error) {
		return s.doFetchManifest(ctx, reg, name, repo, reference)
	})

	select {
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return nil, res.Err
		}
		m := *res.Val.(*domain.Manifest)
		return &m, nil
	}
}

func (s *Service) doFetchManifest(ctx context.Context, reg domain.ProxyRegistry, name, repo, reference string) (*domain.Manifest, error) {
	log := logging.FromCtx(ctx)

	fetchCtx, cancel := s.fetchContext(ctx)
	desc, data, err := s.upstream.FetchManifest(fetchCtx, reg, repo, reference)
	cancel()
	if err != nil {
		return nil, upstreamError(err, domain.ErrManifestNotFound)
	}

	if s.cfg.MaxManifestSize > 0 && int64(len(data)) > s.cfg.MaxManifestSize {
		return nil, fmt.Errorf("%w: upstream manifest is %d bytes", domain.ErrSizeLimitExceeded, len(data))
	}
	if err := verify(data, desc.Digest, reference); err != nil {
		log.Error().Err(err).Str("digest", desc.Digest.String()).Msg("upstream manifest rejected")
		return nil, err
	}

	manifest := &domain.Manifest{
		Name:        name,
		Reference:   reference,
		ContentType: desc.MediaType,
		Data:        data,
	}
	d, err := s.manifests.PutManifest(ctx, manifest, domain.PutManifestOptions{
		Populate: func(ref domain.ManifestReference) error {
			if ref.Manifest {
				_, err := s.fetchManifest(ctx, reg, name, repo, ref.Digest.String())
				return err
			}
			_, err := s.fetchBlob(ctx, reg, name, repo, ocispec.Descriptor{
				MediaType: ref.MediaType,
				Digest:    ref.Digest,
				Size:      ref.Size,
			})
			return err
		},
	})
	if err != nil {
		return nil, err
	}

	if s.eventBus != nil {
		if err := s.eventBus.Publish(domain.EventProxyFetched, domain.ProxyFetchedPayload{
			Alias:      reg.Alias,
			Repository: repo,
			Reference:  reference,
			Digest:     d,
		}); err != nil {
			log.Warn().Err(err).Msg("failed to publish proxy fetched event")
		}
	}

	log.Info().Str("digest", d.String()).Str("upstream", reg.Host).Msg("manifest cached from upstream")
	return manifest, nil
}

// ResolveBlob opens the cached blob, fetching it on a miss.
func (s *Service) ResolveBlob(ctx context.Context, name string, d digest.Digest) (io.ReadCloser, domain.BlobInfo, error) {
	ctx = logging.CtxWithFields(ctx, map[string]any{
		logging.FieldLayer:   "usecase",
		logging.FieldUseCase: "ResolveBlob",
		"name":               name,
		"digest":             d.String(),
	})

	rc, info, err := s.blobs.GetBlob(ctx, d)
	if err == nil {
		return rc, info, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return nil, domain.BlobInfo{}, err
	}

	reg, repo, err := s.route(name)
	if err != nil {
		return nil, domain.BlobInfo{}, err
	}

	if _, err := s.fetchBlob(ctx, reg, name, repo, ocispec.Descriptor{Digest: d}); err != nil {
		return nil, domain.BlobInfo{}, err
	}
	return s.blobs.GetBlob(ctx, d)
}

func (s *Service) fetchBlob(ctx context.Context, reg domain.ProxyRegistry, name, repo string, desc ocispec.Descriptor) (domain.BlobInfo, error) {
	if info, err := s.blobs.StatBlob(ctx, desc.Digest); err == nil {
		return info, nil
	}

	key := "blob:" + name + "@" + desc.Digest.String()
	ch := s.flights.DoChan(key, func() (any, error) {
		return s.doFetchBlob(ctx, reg, name, repo, desc)
	})

	select {
	case <-ctx.Done():
		return domain.BlobInfo{}, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, ctx.Err())
	case res := <-ch:
		if res.Err != nil {
			return domain.BlobInfo{}, res.Err
		}
		return res.Val.(domain.BlobInfo), nil
	}
}

func (s *Service) doFetchBlob(ctx context.Context, reg domain.ProxyRegistry, name, repo string, desc ocispec.Descriptor) (domain.BlobInfo, error) {
	log := logging.FromCtx(ctx)

	fetchCtx, cancel := s.fetchContext(ctx)
	defer cancel()

	rc, err := s.upstream.FetchBlob(fetchCtx, reg, repo, desc)
	if err != nil {
		return domain.BlobInfo{}, upstreamError(err, domain.ErrBlobNotFound)
	}
	defer rc.Close()

	info, err := s.blobs.PutBlob(fetchCtx, name, desc.Digest, rc)
	if err != nil {
		if errors.Is(err, domain.ErrDigestMismatch) {
			log.Error().Err(err).Str("digest", desc.Digest.String()).Msg("upstream blob rejected")
			return domain.BlobInfo{}, fmt.Errorf("%w: %v", domain.ErrUpstreamIntegrityViolation, err)
		}
		if fetchCtx.Err() != nil {
			return domain.BlobInfo{}, fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
		}
		return domain.BlobInfo{}, err
	}

	log.Debug().Str("digest", info.Digest.String()).Int64(logging.FieldSize, info.Size).Msg("blob cached from upstream")
	return info, nil
}

func (s *Service) fetchContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if s.cfg.FetchTimeout > 0 {
		return context.WithTimeout(ctx, s.cfg.FetchTimeout)
	}
	return context.WithCancel(ctx)
}

// verify checks upstream bytes against the descriptor digest and, for digest
// references, against the requested digest.
func verify(data []byte, d digest.Digest, reference string) error {
	if !digestcodec.Verify(data, d) {
		return fmt.Errorf("%w: content does not hash to %s", domain.ErrUpstreamIntegrityViolation, d)
	}
	if strings.Contains(reference, ":") && reference != d.String() {
		requested, err := digestcodec.Parse(reference)
		if err != nil || !digestcodec.Verify(data, requested) {
			return fmt.Errorf("%w: requested %s, upstream sent %s", domain.ErrUpstreamIntegrityViolation, reference, d)
		}
	}
	return nil
}

// upstreamError keeps integrity and availability errors and turns upstream
// not-found into notFound.
func upstreamError(err, notFound error) error {
	switch {
	case errors.Is(err, domain.ErrUpstreamIntegrityViolation):
		return err
	case errors.Is(err, domain.ErrNotFound):
		return fmt.Errorf("%w: %v", notFound, err)
	case errors.Is(err, domain.ErrUpstreamUnavailable):
		return err
	default:
		return fmt.Errorf("%w: %v", domain.ErrUpstreamUnavailable, err)
	}
}
