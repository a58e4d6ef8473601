// Package httpprober checks that upstream registries answer HTTP requests.
package httpprober

import (
	"context"
	"fmt"
	"net/http"
	"time"
)

// DefaultTimeout is the default timeout for HTTP probes.
const DefaultTimeout = 5 * time.Second

// Prober sends lightweight GET requests to registry API roots.
type Prober struct {
	client  *http.Client
	timeout time.Duration
}

// Option configures the Prober.
type Option func(*Prober)

// WithTimeout sets the probe timeout.
func WithTimeout(timeout time.Duration) Option {
	return func(p *Prober) {
		p.timeout = timeout
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(p *Prober) {
		p.client = client
	}
}

// New creates a new HTTP prober.
func New(opts ...Option) *Prober {
	p := &Prober{
		timeout: DefaultTimeout,
	}

	for _, opt := range opts {
		opt(p)
	}

	if p.client == nil {
		p.client = &http.Client{
			Timeout: p.timeout,
			// The API root answers directly; a redirect is reported as is.
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				return http.ErrUseLastResponse
			},
		}
	}

	return p
}

// Probe sends a GET request and returns the status code and the response
// time in milliseconds.
func (p *Prober) Probe(ctx context.Context, url string) (int, int64, error) {
	start := time.Now()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return 0, 0, fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("User-Agent", "kestrel-probe/1.0")

	resp, err := p.client.Do(req)
	elapsed := time.Since(start).Milliseconds()
	if err != nil {
		return 0, elapsed, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	return resp.StatusCode, elapsed, nil
}

// RegistryCheck returns a check reporting whether the registry at baseURL
// serves its /v2/ endpoint. An authentication challenge counts as reachable;
// server errors do not.
func (p *Prober) RegistryCheck(baseURL string) func(ctx context.Context) error {
	url := baseURL + "/v2/"
	return func(ctx context.Context) error {
		status, _, err := p.Probe(ctx, url)
		if err != nil {
			return err
		}
		if status >= http.StatusInternalServerError {
			return fmt.Errorf("%s answered %d", url, status)
		}
		return nil
	}
}
