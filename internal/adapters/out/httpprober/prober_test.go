package httpprober

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProbe(t *testing.T) {
	var gotAgent string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAgent = r.UserAgent()
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	status, _, err := New().Probe(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, http.StatusTeapot, status)
	assert.Equal(t, "kestrel-probe/1.0", gotAgent)
}

func TestProbe_DoesNotFollowRedirects(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/elsewhere", http.StatusFound)
	}))
	defer srv.Close()

	status, _, err := New().Probe(context.Background(), srv.URL)

	require.NoError(t, err)
	assert.Equal(t, http.StatusFound, status)
}

func TestRegistryCheck(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		wantErr bool
	}{
		{"open registry", http.StatusOK, false},
		{"auth challenge", http.StatusUnauthorized, false},
		{"server error", http.StatusBadGateway, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var path string
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				path = r.URL.Path
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			err := New().RegistryCheck(srv.URL)(context.Background())

			assert.Equal(t, "/v2/", path)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRegistryCheck_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	err := New(WithTimeout(time.Second)).RegistryCheck(url)(context.Background())

	assert.Error(t, err)
}
