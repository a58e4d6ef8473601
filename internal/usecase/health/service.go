// Package health implements the readiness check use case.
package health

import (
	"context"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/bnema/kestrel/internal/boundaries/in"
	"github.com/bnema/kestrel/internal/domain"
	"github.com/bnema/kestrel/internal/logging"
)

// maxConcurrentProbes limits the number of checks running at once.
const maxConcurrentProbes = 10

// Check probes one dependency. A nil error means healthy.
type Check func(ctx context.Context) error

// Ensure Service implements in.HealthService.
var _ in.HealthService = (*Service)(nil)

// Service runs the registered readiness checks.
type Service struct {
	checks  map[string]Check
	timeout time.Duration
}

// NewService creates a health service. Each check gets at most timeout.
func NewService(checks map[string]Check, timeout time.Duration) *Service {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Service{checks: checks, timeout: timeout}
}

// Ready runs every check concurrently and reports healthy only when all of
// them pass.
func (s *Service) Ready(ctx context.Context) domain.HealthReport {
	ctx = logging.CtxWithFields(ctx, map[string]any{
		logging.FieldLayer:   "usecase",
		logging.FieldUseCase: "Ready",
	})
	log := logging.FromCtx(ctx)

	var (
		mu      sync.Mutex
		results = make([]domain.ComponentHealth, 0, len(s.checks))
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentProbes)
	for name, check := range s.checks {
		g.Go(func() error {
			cctx, cancel := context.WithTimeout(gctx, s.timeout)
			defer cancel()

			result := domain.ComponentHealth{Name: name, Healthy: true}
			if err := check(cctx); err != nil {
				result.Healthy = false
				result.Error = err.Error()
				log.Warn().Err(err).Str("component", name).Msg("readiness check failed")
			}

			mu.Lock()
			results = append(results, result)
			mu.Unlock()
			return nil
		})
	}
	_ = g.Wait()

	sort.Slice(results, func(i, j int) bool { return results[i].Name < results[j].Name })

	report := domain.HealthReport{Healthy: true, Components: results}
	for _, r := range results {
		if !r.Healthy {
			report.Healthy = false
		}
	}
	return report
}
