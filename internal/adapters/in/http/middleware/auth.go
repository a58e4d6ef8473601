package middleware

import (
	"net/http"

	"github.com/bnema/kestrel/internal/boundaries/in"
	"github.com/bnema/kestrel/internal/domain"
	"github.com/bnema/kestrel/internal/logging"
)

const basicChallenge = `Basic realm="kestrel"`

// RegistryAuth authenticates registry clients with HTTP basic auth and
// places the resulting identity in the request context.
//
// With authentication disabled every request carries an anonymous identity.
// With anonymous read enabled, GET and HEAD requests without credentials
// pass through with no identity; the registry service refuses mutations
// from such requests.
func RegistryAuth(authSvc in.AuthService, trustedNets TrustedNets, log logging.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()

			if !authSvc.Enabled() {
				next.ServeHTTP(w, r.WithContext(domain.WithIdentity(ctx, domain.Identity{Anonymous: true})))
				return
			}

			username, password, ok := r.BasicAuth()
			if !ok {
				if authSvc.AllowAnonymousRead() && isRead(r.Method) {
					next.ServeHTTP(w, r)
					return
				}
				sendUnauthorized(w, r, trustedNets, log, "no credentials provided")
				return
			}

			id, err := authSvc.Authenticate(ctx, username, password)
			if err != nil {
				sendUnauthorized(w, r, trustedNets, log, "authentication failed")
				return
			}

			log.Debug().
				Str(logging.FieldLayer, "adapter").
				Str(logging.FieldAdapter, "http").
				Str("subject", id.Subject).
				Str(logging.FieldMethod, r.Method).
				Str(logging.FieldPath, r.URL.Path).
				Msg("registry client authenticated")

			next.ServeHTTP(w, r.WithContext(domain.WithIdentity(ctx, id)))
		})
	}
}

func isRead(method string) bool {
	return method == http.MethodGet || method == http.MethodHead
}

// sendUnauthorized sends a 401 registry error with a basic auth challenge.
func sendUnauthorized(w http.ResponseWriter, r *http.Request, trustedNets TrustedNets, log logging.Logger, reason string) {
	log.Warn().
		Str(logging.FieldLayer, "adapter").
		Str(logging.FieldAdapter, "http").
		Str(logging.FieldMethod, r.Method).
		Str(logging.FieldPath, r.URL.Path).
		Str(logging.FieldClientIP, GetClientIP(r, trustedNets)).
		Str("reason", reason).
		Msg("unauthorized registry access attempt")

	w.Header().Set("WWW-Authenticate", basicChallenge)
	sendRegistryError(w, http.StatusUnauthorized, "UNAUTHORIZED", "authentication required")
}
