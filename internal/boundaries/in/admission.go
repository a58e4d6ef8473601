package in

import (
	"context"

	"github.com/bnema/kestrel/internal/domain"
)

// AdmissionService decides whether images may run and rewrites proxied
// references. Both operations are total.
type AdmissionService interface {
	Decide(ctx context.Context, image string) domain.AdmissionResult
	// Mutate returns the rewritten reference and whether it changed.
	Mutate(ctx context.Context, image string) (string, bool)
}
