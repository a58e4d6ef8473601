// Package ratelimit provides rate limiter implementations.
package ratelimit

import (
	"context"
	"sync"
	"time"

	"github.com/benbjohnson/clock"
	"golang.org/x/time/rate"

	"github.com/bnema/kestrel/internal/boundaries/out"
	"github.com/bnema/kestrel/internal/logging"
)

// Ensure MemoryStore implements out.RateLimiter.
var _ out.RateLimiter = (*MemoryStore)(nil)

type limiterEntry struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

// MemoryStore keeps one token bucket per key in memory. Buckets unused for
// longer than the idle period are dropped by Prune.
type MemoryStore struct {
	mu       sync.Mutex
	limiters map[string]*limiterEntry
	limit    rate.Limit
	burst    int
	clock    clock.Clock
	log      logging.Logger
}

// NewMemoryStore creates a store allowing rps requests per second per key
// with the given burst.
func NewMemoryStore(rps float64, burst int, clk clock.Clock, log logging.Logger) *MemoryStore {
	if clk == nil {
		clk = clock.New()
	}
	return &MemoryStore{
		limiters: make(map[string]*limiterEntry),
		limit:    rate.Limit(rps),
		burst:    burst,
		clock:    clk,
		log:      log,
	}
}

// Allow reports whether one request for key may proceed now.
func (s *MemoryStore) Allow(ctx context.Context, key string) bool {
	return s.AllowN(ctx, key, 1)
}

// AllowN reports whether n requests for key may proceed now.
func (s *MemoryStore) AllowN(_ context.Context, key string, n int) bool {
	now := s.clock.Now()

	s.mu.Lock()
	e, ok := s.limiters[key]
	if !ok {
		e = &limiterEntry{limiter: rate.NewLimiter(s.limit, s.burst)}
		s.limiters[key] = e
	}
	e.lastSeen = now
	s.mu.Unlock()

	return e.limiter.AllowN(now, n)
}

// Prune drops buckets idle for at least idle and returns how many were dropped.
func (s *MemoryStore) Prune(idle time.Duration) int {
	cutoff := s.clock.Now().Add(-idle)

	s.mu.Lock()
	defer s.mu.Unlock()

	pruned := 0
	for key, e := range s.limiters {
		if !e.lastSeen.After(cutoff) {
			delete(s.limiters, key)
			pruned++
		}
	}
	if pruned > 0 {
		s.log.Debug().
			Str(logging.FieldLayer, "adapter").
			Str(logging.FieldAdapter, "ratelimit").
			Int("pruned", pruned).
			Int("remaining", len(s.limiters)).
			Msg("pruned idle rate limiters")
	}
	return pruned
}

// RunPruner prunes idle buckets every interval until ctx is done.
func (s *MemoryStore) RunPruner(ctx context.Context, interval, idle time.Duration) {
	ticker := s.clock.Ticker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Prune(idle)
		}
	}
}

// Len returns the number of tracked keys.
func (s *MemoryStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.limiters)
}
