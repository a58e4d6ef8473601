// Package telemetry exposes Prometheus metrics for the registry.
package telemetry

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/bnema/kestrel/internal/boundaries/out"
	"github.com/bnema/kestrel/internal/domain"
)

const namespace = "kestrel"

// Metrics holds the registry's Prometheus collectors. Each instance owns its
// own registry so tests do not share state.
type Metrics struct {
	registry *prometheus.Registry

	// Registry content
	ManifestsPushed  prometheus.Counter
	ManifestsDeleted prometheus.Counter
	BlobsReclaimed   prometheus.Counter
	BytesReclaimed   prometheus.Counter

	// Proxy cache
	ProxyFetches *prometheus.CounterVec

	// Admission
	AdmissionDecisions *prometheus.CounterVec

	// HTTP
	HTTPRequests *prometheus.CounterVec
	HTTPDuration *prometheus.HistogramVec

	// Events
	EventsProcessed *prometheus.CounterVec
	EventsDropped   *prometheus.CounterVec
}

// NewMetrics creates and registers all collectors, including the Go runtime
// and process collectors.
func NewMetrics() *Metrics {
	m := &Metrics{
		registry: prometheus.NewRegistry(),
		ManifestsPushed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "registry", Name: "manifests_pushed_total",
			Help: "Manifests stored by push or proxy population.",
		}),
		ManifestsDeleted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "registry", Name: "manifests_deleted_total",
			Help: "Manifest tags and revisions deleted.",
		}),
		BlobsReclaimed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "storage", Name: "blobs_reclaimed_total",
			Help: "Blobs removed once nothing referenced them.",
		}),
		BytesReclaimed: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "storage", Name: "bytes_reclaimed_total",
			Help: "Bytes freed by blob reclamation.",
		}),
		ProxyFetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "proxy", Name: "fetches_total",
			Help: "Manifests fetched from upstream registries.",
		}, []string{"alias"}),
		AdmissionDecisions: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "admission", Name: "decisions_total",
			Help: "Admission webhook decisions per image.",
		}, []string{"webhook", "decision"}),
		HTTPRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "http", Name: "requests_total",
			Help: "HTTP requests by method and status code.",
		}, []string{"method", "code"}),
		HTTPDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace, Subsystem: "http", Name: "request_duration_seconds",
			Help:    "HTTP request latencies.",
			Buckets: prometheus.DefBuckets,
		}, []string{"method"}),
		EventsProcessed: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "events", Name: "processed_total",
			Help: "Events delivered to every subscribed handler.",
		}, []string{"event_type"}),
		EventsDropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace, Subsystem: "events", Name: "dropped_total",
			Help: "Events dropped because the bus was full.",
		}, []string{"event_type"}),
	}

	m.registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		m.ManifestsPushed,
		m.ManifestsDeleted,
		m.BlobsReclaimed,
		m.BytesReclaimed,
		m.ProxyFetches,
		m.AdmissionDecisions,
		m.HTTPRequests,
		m.HTTPDuration,
		m.EventsProcessed,
		m.EventsDropped,
	)
	return m
}

// Handler serves the metrics in the Prometheus exposition format.
func (m *Metrics) Handler() http.Handler {
	return promhttp.HandlerFor(m.registry, promhttp.HandlerOpts{Registry: m.registry})
}

// ObserveRequest records one served HTTP request.
func (m *Metrics) ObserveRequest(method string, status int, elapsed time.Duration) {
	m.HTTPRequests.WithLabelValues(method, strconv.Itoa(status)).Inc()
	m.HTTPDuration.WithLabelValues(method).Observe(elapsed.Seconds())
}

// ObserveAdmission records one admission decision.
func (m *Metrics) ObserveAdmission(webhook string, decision domain.Decision) {
	m.AdmissionDecisions.WithLabelValues(webhook, string(decision)).Inc()
}

// Ensure EventRecorder implements out.EventHandler.
var _ out.EventHandler = (*EventRecorder)(nil)

// EventRecorder turns domain events into counter increments.
type EventRecorder struct {
	metrics *Metrics
}

// NewEventRecorder creates an event handler feeding m.
func NewEventRecorder(m *Metrics) *EventRecorder {
	return &EventRecorder{metrics: m}
}

// CanHandle reports whether eventType is counted.
func (r *EventRecorder) CanHandle(eventType domain.EventType) bool {
	switch eventType {
	case domain.EventManifestPushed, domain.EventManifestDeleted,
		domain.EventBlobReclaimed, domain.EventProxyFetched:
		return true
	}
	return false
}

// Handle increments the counters matching event.
func (r *EventRecorder) Handle(_ context.Context, event domain.Event) error {
	switch p := event.Data.(type) {
	case domain.ManifestPushedPayload:
		r.metrics.ManifestsPushed.Inc()
	case domain.ManifestDeletedPayload:
		r.metrics.ManifestsDeleted.Inc()
	case domain.BlobReclaimedPayload:
		r.metrics.BlobsReclaimed.Inc()
		r.metrics.BytesReclaimed.Add(float64(p.Size))
	case domain.ProxyFetchedPayload:
		r.metrics.ProxyFetches.WithLabelValues(p.Alias).Inc()
	}
	return nil
}
