package in

import (
	"context"

	"github.com/bnema/kestrel/internal/domain"
)

// HealthService reports whether the registry can serve traffic.
type HealthService interface {
	Ready(ctx context.Context) domain.HealthReport
}
