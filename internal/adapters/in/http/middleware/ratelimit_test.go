package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	outmocks "github.com/bnema/kestrel/internal/boundaries/out/mocks"
	"github.com/bnema/kestrel/internal/logging"
)

func TestRateLimit_NoLimiters(t *testing.T) {
	rec := httptest.NewRecorder()
	RateLimit(nil, nil, nil, logging.Nop())(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v2/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit_Allowed(t *testing.T) {
	global := outmocks.NewMockRateLimiter(t)
	perIP := outmocks.NewMockRateLimiter(t)
	global.EXPECT().Allow(mock.Anything, "global").Return(true)
	perIP.EXPECT().Allow(mock.Anything, "ip:192.0.2.1").Return(true)

	req := httptest.NewRequest(http.MethodGet, "/v2/", nil)
	req.RemoteAddr = "192.0.2.1:5000"
	rec := httptest.NewRecorder()
	RateLimit(global, perIP, nil, logging.Nop())(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestRateLimit_GlobalExceeded(t *testing.T) {
	global := outmocks.NewMockRateLimiter(t)
	perIP := outmocks.NewMockRateLimiter(t)
	global.EXPECT().Allow(mock.Anything, "global").Return(false)

	rec := httptest.NewRecorder()
	RateLimit(global, perIP, nil, logging.Nop())(okHandler()).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v2/", nil))

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
	assert.Contains(t, rec.Body.String(), "TOOMANYREQUESTS")
}

func TestRateLimit_PerClientUsesForwardedIP(t *testing.T) {
	perIP := outmocks.NewMockRateLimiter(t)
	perIP.EXPECT().Allow(mock.Anything, "ip:203.0.113.7").Return(false)

	req := httptest.NewRequest(http.MethodGet, "/v2/", nil)
	req.RemoteAddr = "10.0.0.1:5000"
	req.Header.Set("X-Forwarded-For", "203.0.113.7")
	rec := httptest.NewRecorder()
	RateLimit(nil, perIP, ParseTrustedProxies([]string{"10.0.0.0/8"}), logging.Nop())(okHandler()).ServeHTTP(rec, req)

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}
