package app

import (
	"context"
	"fmt"
	"net/http"
	"path/filepath"
	"time"

	"github.com/benbjohnson/clock"

	// Adapters - Input
	admissionhttp "github.com/bnema/kestrel/internal/adapters/in/http/admission"
	healthhttp "github.com/bnema/kestrel/internal/adapters/in/http/health"
	"github.com/bnema/kestrel/internal/adapters/in/http/middleware"
	registryhttp "github.com/bnema/kestrel/internal/adapters/in/http/registry"

	// Adapters - Output
	"github.com/bnema/kestrel/internal/adapters/out/eventbus"
	"github.com/bnema/kestrel/internal/adapters/out/filesystem"
	"github.com/bnema/kestrel/internal/adapters/out/httpprober"
	"github.com/bnema/kestrel/internal/adapters/out/ratelimit"
	"github.com/bnema/kestrel/internal/adapters/out/telemetry"
	"github.com/bnema/kestrel/internal/adapters/out/upstream"

	// Boundaries
	"github.com/bnema/kestrel/internal/boundaries/in"
	"github.com/bnema/kestrel/internal/boundaries/out"

	// Domain
	"github.com/bnema/kestrel/internal/domain"
	"github.com/bnema/kestrel/internal/logging"

	// Use cases
	"github.com/bnema/kestrel/internal/usecase/admission"
	"github.com/bnema/kestrel/internal/usecase/auth"
	"github.com/bnema/kestrel/internal/usecase/health"
	"github.com/bnema/kestrel/internal/usecase/manifests"
	"github.com/bnema/kestrel/internal/usecase/proxycache"
	"github.com/bnema/kestrel/internal/usecase/registry"
)

const (
	eventBufferSize    = 256
	limiterIdle        = 10 * time.Minute
	limiterPruneEvery  = time.Minute
	readinessTimeout   = 5 * time.Second
	defaultJanitorTick = 5 * time.Minute
)

// App holds the wired services of one registry instance.
type App struct {
	settings Settings
	log      logging.Logger
	clock    clock.Clock

	metrics  *telemetry.Metrics
	eventBus *eventbus.InMemory
	blobs    *filesystem.BlobStorage

	manifestSvc  *manifests.Service
	registrySvc  *registry.Service
	authSvc      *auth.Service
	admissionSvc *admission.Service
	healthSvc    *health.Service

	limiters []*ratelimit.MemoryStore
	handler  http.Handler
}

// New wires storage, use cases and HTTP handlers. Nothing runs until Start.
func New(s Settings, log logging.Logger) (*App, error) {
	a := &App{
		settings: s,
		log:      log,
		clock:    clock.New(),
		metrics:  telemetry.NewMetrics(),
	}

	a.eventBus = eventbus.NewInMemory(eventBufferSize, a.metrics, log)
	if err := a.eventBus.Subscribe(telemetry.NewEventRecorder(a.metrics)); err != nil {
		return nil, fmt.Errorf("failed to subscribe metrics recorder: %w", err)
	}

	if err := a.createStorage(); err != nil {
		return nil, err
	}

	a.authSvc = auth.NewService(auth.Config{
		Enabled:       s.AuthEnabled,
		AnonymousRead: s.AnonymousRead,
		Users:         s.Users,
	})

	policy := domain.ValidationPolicy{}
	if s.Policy != nil {
		policy = *s.Policy
	}
	a.admissionSvc = admission.NewService(admission.Config{
		ServiceName: s.ServiceName,
		ProxyPrefix: s.ProxyPrefix,
	}, policy, s.Registries)

	a.healthSvc = health.NewService(a.readinessChecks(), readinessTimeout)

	a.handler = a.createHTTPHandler()
	return a, nil
}

// createStorage creates the filesystem stores and the use cases on top of
// them.
func (a *App) createStorage() error {
	s := a.settings
	registryDir := filepath.Join(s.DataDir, "registry")

	blobs, err := filesystem.NewBlobStorage(registryDir, filesystem.BlobConfig{
		MaxBlobSize: s.MaxBlobSize,
		MaxSessions: s.MaxUploads,
		UploadTTL:   s.UploadTTL,
		Clock:       a.clock,
		Events:      a.eventBus,
	}, a.log)
	if err != nil {
		return a.log.WrapErr(err, "failed to create blob storage")
	}
	a.blobs = blobs

	manifestStore, err := filesystem.NewManifestStorage(registryDir, filesystem.ManifestConfig{
		HistoryLimit: s.HistoryLimit,
	}, a.log)
	if err != nil {
		return a.log.WrapErr(err, "failed to create manifest storage")
	}

	a.manifestSvc = manifests.NewService(blobs, manifestStore, a.eventBus)

	var proxySvc in.ProxyCacheService
	if len(s.Registries) > 0 {
		client := upstream.NewClient(upstream.Config{
			UserAgent:       "kestrel",
			MaxManifestSize: s.MaxManifestSize,
		}, a.log)
		proxySvc = proxycache.NewService(proxycache.Config{
			Prefix:          s.ProxyPrefix,
			RefreshTags:     s.RefreshTags,
			FetchTimeout:    s.FetchTimeout,
			MaxManifestSize: s.MaxManifestSize,
		}, s.Registries, client, a.manifestSvc, blobs, a.eventBus)
	}

	a.registrySvc = registry.NewService(registry.Config{
		MaxManifestSize: s.MaxManifestSize,
		MaxBlobSize:     s.MaxBlobSize,
	}, a.manifestSvc, blobs, proxySvc)

	return nil
}

// readinessChecks returns the storage check plus, when enabled, one check
// per upstream registry.
func (a *App) readinessChecks() map[string]health.Check {
	checks := map[string]health.Check{
		"storage": a.blobs.Ping,
	}
	if !a.settings.ProbeUpstreams {
		return checks
	}
	prober := httpprober.New(httpprober.WithTimeout(readinessTimeout))
	for _, r := range a.settings.Registries {
		checks["upstream/"+r.Alias] = prober.RegistryCheck(registryBaseURL(r))
	}
	return checks
}

// registryBaseURL returns the API base URL of an upstream registry.
func registryBaseURL(r domain.ProxyRegistry) string {
	host := r.Host
	if domain.NormalizeHost(host) == "docker.io" {
		host = "registry-1.docker.io"
	}
	scheme := "https"
	if r.PlainHTTP {
		scheme = "http"
	}
	return scheme + "://" + host
}

// createHTTPHandler mounts the registry API behind authentication and rate
// limiting, plus the admission webhooks and operational endpoints.
func (a *App) createHTTPHandler() http.Handler {
	s := a.settings
	trustedNets := middleware.ParseTrustedProxies(s.TrustedProxies)

	var global, perIP out.RateLimiter
	if s.RateLimitEnabled {
		globalStore := ratelimit.NewMemoryStore(s.GlobalRPS, s.RateLimitBurst, a.clock, a.log)
		perIPStore := ratelimit.NewMemoryStore(s.PerIPRPS, s.RateLimitBurst, a.clock, a.log)
		a.limiters = append(a.limiters, globalStore, perIPStore)
		global, perIP = globalStore, perIPStore
	}

	maxManifest := s.MaxManifestSize
	if maxManifest <= 0 {
		maxManifest = registryhttp.DefaultMaxManifestSize
	}
	registryMux := http.NewServeMux()
	registryhttp.NewHandler(a.registrySvc, maxManifest, a.log).RegisterRoutes(registryMux)

	mux := http.NewServeMux()
	mux.Handle("/v2/", middleware.Chain(
		middleware.RateLimit(global, perIP, trustedNets, a.log),
		middleware.RegistryAuth(a.authSvc, trustedNets, a.log),
	)(registryMux))
	admissionhttp.NewHandler(a.admissionSvc, a.metrics, a.log).RegisterRoutes(mux)
	healthhttp.NewHandler(a.healthSvc, a.metrics.Handler(), a.log).RegisterRoutes(mux)

	return middleware.Chain(
		middleware.PanicRecovery(a.log),
		middleware.RequestLogger(a.log, trustedNets, a.metrics),
		middleware.CIDRAllowlist(middleware.ParseTrustedProxies(s.AllowedCIDRs), trustedNets, a.log),
		middleware.CORS(s.CORSOrigins),
	)(mux)
}

// Handler returns the root HTTP handler.
func (a *App) Handler() http.Handler {
	return a.handler
}

// Registry returns the registry facade.
func (a *App) Registry() in.RegistryService {
	return a.registrySvc
}

// Start launches event delivery, rebuilds reference counts from stored
// manifests and starts the background maintenance loops. They stop when ctx
// is done.
func (a *App) Start(ctx context.Context) error {
	if err := a.eventBus.Start(); err != nil {
		return a.log.WrapErr(err, "failed to start event bus")
	}

	if _, err := a.manifestSvc.Rebuild(ctx); err != nil {
		return a.log.WrapErr(err, "failed to rebuild reference counts")
	}

	interval := a.settings.JanitorInterval
	if interval <= 0 {
		interval = defaultJanitorTick
	}
	go a.blobs.RunJanitor(ctx, interval)

	if len(a.limiters) > 0 {
		go a.pruneLimiters(ctx)
	}
	return nil
}

// Stop halts event delivery.
func (a *App) Stop() {
	if err := a.eventBus.Stop(); err != nil {
		a.log.Warn().Err(err).Msg("failed to stop event bus")
	}
}

// pruneLimiters drops idle rate limiter buckets until ctx is done.
func (a *App) pruneLimiters(ctx context.Context) {
	ticker := a.clock.Ticker(limiterPruneEvery)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			for _, l := range a.limiters {
				l.Prune(limiterIdle)
			}
		}
	}
}
