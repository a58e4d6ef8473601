package telemetry

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/kestrel/internal/domain"
)

func TestEventRecorder(t *testing.T) {
	m := NewMetrics()
	rec := NewEventRecorder(m)
	ctx := context.Background()

	events := []domain.Event{
		{Type: domain.EventManifestPushed, Data: domain.ManifestPushedPayload{Name: "app"}},
		{Type: domain.EventManifestPushed, Data: domain.ManifestPushedPayload{Name: "app"}},
		{Type: domain.EventManifestDeleted, Data: domain.ManifestDeletedPayload{Name: "app"}},
		{Type: domain.EventBlobReclaimed, Data: domain.BlobReclaimedPayload{Size: 512}},
		{Type: domain.EventProxyFetched, Data: domain.ProxyFetchedPayload{Alias: "docker"}},
	}
	for _, e := range events {
		require.True(t, rec.CanHandle(e.Type))
		require.NoError(t, rec.Handle(ctx, e))
	}

	assert.Equal(t, 2.0, testutil.ToFloat64(m.ManifestsPushed))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ManifestsDeleted))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.BlobsReclaimed))
	assert.Equal(t, 512.0, testutil.ToFloat64(m.BytesReclaimed))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.ProxyFetches.WithLabelValues("docker")))
	assert.False(t, rec.CanHandle(domain.EventType("unknown")))
}

func TestMetrics_Observe(t *testing.T) {
	m := NewMetrics()

	m.ObserveRequest(http.MethodGet, http.StatusOK, 10*time.Millisecond)
	m.ObserveRequest(http.MethodGet, http.StatusNotFound, time.Millisecond)
	m.ObserveAdmission("validate", domain.DecisionDeny)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "200")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.HTTPRequests.WithLabelValues("GET", "404")))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.AdmissionDecisions.WithLabelValues("validate", "Deny")))
}

func TestMetrics_Handler(t *testing.T) {
	m := NewMetrics()
	m.ManifestsPushed.Inc()

	rec := httptest.NewRecorder()
	m.Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/metrics", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), "kestrel_registry_manifests_pushed_total 1")
	assert.Contains(t, string(body), "go_goroutines")
}
