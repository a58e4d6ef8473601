// Package upstream implements the UpstreamRegistry port with oras-go.
package upstream

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	ocispec "github.com/opencontainers/image-spec/specs-go/v1"
	"oras.land/oras-go/v2/errdef"
	"oras.land/oras-go/v2/registry/remote"
	"oras.land/oras-go/v2/registry/remote/auth"
	"oras.land/oras-go/v2/registry/remote/errcode"
	"oras.land/oras-go/v2/registry/remote/retry"

	"github.com/bnema/kestrel/internal/boundaries/out"
	"github.com/bnema/kestrel/internal/domain"
	"github.com/bnema/kestrel/internal/logging"
)

// dockerHubAPIHost serves the registry API for docker.io.
const dockerHubAPIHost = "registry-1.docker.io"

// Ensure Client implements out.UpstreamRegistry.
var _ out.UpstreamRegistry = (*Client)(nil)

// Config tunes the upstream client.
type Config struct {
	UserAgent string
	// MaxManifestSize bounds manifest downloads. Zero keeps the oras default.
	MaxManifestSize int64
	// HTTPClient overrides the retrying default client.
	HTTPClient *http.Client
}

// Client fetches manifests and blobs from upstream registries.
type Client struct {
	cfg   Config
	cache auth.Cache
	log   logging.Logger
}

// NewClient creates an upstream client. Tokens are cached across calls.
func NewClient(cfg Config, log logging.Logger) *Client {
	if cfg.UserAgent == "" {
		cfg.UserAgent = "kestrel"
	}
	if cfg.HTTPClient == nil {
		cfg.HTTPClient = retry.DefaultClient
	}
	return &Client{
		cfg:   cfg,
		cache: auth.NewCache(),
		log:   log,
	}
}

func (c *Client) ResolveManifest(ctx context.Context, reg domain.ProxyRegistry, repository, reference string) (ocispec.Descriptor, error) {
	repo, err := c.repository(reg, repository)
	if err != nil {
		return ocispec.Descriptor{}, err
	}

	desc, err := repo.Resolve(ctx, reference)
	if err != nil {
		return ocispec.Descriptor{}, c.mapError(reg, repository, err)
	}
	return desc, nil
}

func (c *Client) FetchManifest(ctx context.Context, reg domain.ProxyRegistry, repository, reference string) (ocispec.Descriptor, []byte, error) {
	repo, err := c.repository(reg, repository)
	if err != nil {
		return ocispec.Descriptor{}, nil, err
	}

	desc, rc, err := repo.FetchReference(ctx, reference)
	if err != nil {
		return ocispec.Descriptor{}, nil, c.mapError(reg, repository, err)
	}
	defer rc.Close()

	data, err := io.ReadAll(io.LimitReader(rc, desc.Size+1))
	if err != nil {
		return ocispec.Descriptor{}, nil, fmt.Errorf("%w: reading manifest: %v", domain.ErrUpstreamUnavailable, err)
	}
	if int64(len(data)) != desc.Size {
		return ocispec.Descriptor{}, nil, fmt.Errorf("%w: manifest is %d bytes, descriptor says %d",
			domain.ErrUpstreamIntegrityViolation, len(data), desc.Size)
	}

	c.log.Debug().
		Str(logging.FieldLayer, "adapter").
		Str(logging.FieldAdapter, "upstream").
		Str(logging.FieldHost, reg.Host).
		Str("repository", repository).
		Str("reference", reference).
		Str("digest", desc.Digest.String()).
		Msg("manifest fetched")

	return desc, data, nil
}

// FetchBlob streams a blob. A descriptor without a size is resolved first.
func (c *Client) FetchBlob(ctx context.Context, reg domain.ProxyRegistry, repository string, desc ocispec.Descriptor) (io.ReadCloser, error) {
	repo, err := c.repository(reg, repository)
	if err != nil {
		return nil, err
	}

	blobs := repo.Blobs()
	if desc.Size <= 0 {
		resolved, err := blobs.Resolve(ctx, desc.Digest.String())
		if err != nil {
			return nil, c.mapError(reg, repository, err)
		}
		desc = resolved
	}

	rc, err := blobs.Fetch(ctx, desc)
	if err != nil {
		return nil, c.mapError(reg, repository, err)
	}
	return rc, nil
}

func (c *Client) repository(reg domain.ProxyRegistry, repository string) (*remote.Repository, error) {
	host := APIHost(reg.Host)
	repo, err := remote.NewRepository(host + "/" + UpstreamRepository(reg.Host, repository))
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrNameInvalid, err)
	}

	credential := auth.StaticCredential(host, auth.EmptyCredential)
	if reg.HasCredentials() {
		credential = auth.StaticCredential(host, auth.Credential{
			Username: reg.Username,
			Password: reg.Password,
		})
	}

	repo.PlainHTTP = reg.PlainHTTP
	repo.Client = &auth.Client{
		Client:     c.cfg.HTTPClient,
		Cache:      c.cache,
		Credential: credential,
		Header: http.Header{
			"User-Agent": []string{c.cfg.UserAgent},
		},
	}
	if c.cfg.MaxManifestSize > 0 {
		repo.MaxMetadataBytes = c.cfg.MaxManifestSize
	}
	return repo, nil
}

func (c *Client) mapError(reg domain.ProxyRegistry, repository string, err error) error {
	if errors.Is(err, errdef.ErrNotFound) {
		return fmt.Errorf("%w: %s/%s: %v", domain.ErrNotFound, reg.Host, repository, err)
	}
	var errResp *errcode.ErrorResponse
	if errors.As(err, &errResp) && errResp.StatusCode == http.StatusNotFound {
		return fmt.Errorf("%w: %s/%s: %v", domain.ErrNotFound, reg.Host, repository, err)
	}

	c.log.Warn().
		Str(logging.FieldLayer, "adapter").
		Str(logging.FieldAdapter, "upstream").
		Str(logging.FieldHost, reg.Host).
		Str("repository", repository).
		Err(err).
		Msg("upstream request failed")

	return fmt.Errorf("%w: %s: %v", domain.ErrUpstreamUnavailable, reg.Host, err)
}

// APIHost returns the host serving the registry API for host.
func APIHost(host string) string {
	h := domain.NormalizeHost(host)
	if h == "docker.io" {
		return dockerHubAPIHost
	}
	return strings.TrimSuffix(host, "/")
}

// UpstreamRepository expands single-component Docker Hub names into the
// library namespace.
func UpstreamRepository(host, repository string) string {
	if domain.NormalizeHost(host) == "docker.io" && !strings.Contains(repository, "/") {
		return "library/" + repository
	}
	return repository
}
