package middleware

import (
	"encoding/json"
	"net/http"

	"github.com/bnema/kestrel/internal/adapters/dto"
	"github.com/bnema/kestrel/internal/boundaries/out"
	"github.com/bnema/kestrel/internal/logging"
)

// RateLimit rejects requests over the global or per-client limit with 429.
// Either limiter may be nil to skip that check.
func RateLimit(global, perIP out.RateLimiter, trustedNets TrustedNets, log logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if global == nil && perIP == nil {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if global != nil && !global.Allow(ctx, "global") {
				rateLimited(w, r, "global", log)
				return
			}

			if perIP != nil {
				ip := GetClientIP(r, trustedNets)
				if !perIP.Allow(ctx, "ip:"+ip) {
					rateLimited(w, r, "ip:"+ip, log)
					return
				}
			}

			next.ServeHTTP(w, r)
		})
	}
}

func rateLimited(w http.ResponseWriter, r *http.Request, key string, log logging.Logger) {
	log.Debug().
		Str(logging.FieldLayer, "adapter").
		Str(logging.FieldAdapter, "http").
		Str(logging.FieldMethod, r.Method).
		Str(logging.FieldPath, r.URL.Path).
		Str("key", key).
		Msg("rate limit exceeded")

	w.Header().Set("Retry-After", "1")
	sendRegistryError(w, http.StatusTooManyRequests, "TOOMANYREQUESTS", "rate limit exceeded")
}

// sendRegistryError sends a Docker Registry V2 formatted error response.
func sendRegistryError(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Docker-Distribution-API-Version", "registry/2.0")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(dto.RegistryErrorResponse{
		Errors: []dto.RegistryErrorItem{{
			Code:    code,
			Message: message,
		}},
	})
}
