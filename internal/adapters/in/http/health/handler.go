// Package health serves liveness, readiness and metrics endpoints.
package health

import (
	"encoding/json"
	"net/http"

	"github.com/bnema/kestrel/internal/boundaries/in"
	"github.com/bnema/kestrel/internal/logging"
)

// Handler serves the operational endpoints.
type Handler struct {
	healthSvc in.HealthService
	metrics   http.Handler
	log       logging.Logger
}

// NewHandler creates the health handler. metrics may be nil to leave
// /metrics unregistered.
func NewHandler(healthSvc in.HealthService, metrics http.Handler, log logging.Logger) *Handler {
	return &Handler{
		healthSvc: healthSvc,
		metrics:   metrics,
		log:       log,
	}
}

// RegisterRoutes registers the endpoints on the given mux.
func (h *Handler) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /healthz", h.handleLiveness)
	mux.HandleFunc("GET /readiness", h.handleReadiness)
	if h.metrics != nil {
		mux.Handle("GET /metrics", h.metrics)
	}
}

func (h *Handler) handleLiveness(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *Handler) handleReadiness(w http.ResponseWriter, r *http.Request) {
	report := h.healthSvc.Ready(r.Context())

	status := http.StatusOK
	if !report.Healthy {
		status = http.StatusServiceUnavailable
		h.log.Warn().
			Str(logging.FieldLayer, "adapter").
			Str(logging.FieldAdapter, "http").
			Str(logging.FieldHandler, "health").
			Msg("registry not ready")
	}
	writeJSON(w, status, report)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
