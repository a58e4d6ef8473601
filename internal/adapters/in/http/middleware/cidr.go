package middleware

import (
	"net/http"

	"github.com/bnema/kestrel/internal/logging"
)

// localhostNets are always allowed so the node can pull from itself.
var localhostNets = ParseTrustedProxies([]string{"127.0.0.0/8", "::1"})

// CIDRAllowlist restricts access to clients in allowedNets. An empty list
// disables the check.
func CIDRAllowlist(allowedNets, trustedNets TrustedNets, log logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		if len(allowedNets) == 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientIP := GetClientIP(r, trustedNets)
			if localhostNets.Contains(clientIP) || allowedNets.Contains(clientIP) {
				next.ServeHTTP(w, r)
				return
			}

			log.Warn().
				Str(logging.FieldLayer, "adapter").
				Str(logging.FieldAdapter, "http").
				Str(logging.FieldMethod, r.Method).
				Str(logging.FieldPath, r.URL.Path).
				Str(logging.FieldClientIP, clientIP).
				Msg("access denied by CIDR allowlist")

			sendRegistryError(w, http.StatusForbidden, "DENIED", "access denied")
		})
	}
}
