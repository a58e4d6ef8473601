package app

import (
	"fmt"
	"io"
)

const mebibyte = 1 << 20

// WriteSummary prints the startup banner: limits, the hostname used by the
// mutating webhook, the validation policy and the proxy registries.
func WriteSummary(w io.Writer, s Settings, version string) {
	fmt.Fprintf(w, "Starting Kestrel %s on %s\n", version, s.Addr)
	fmt.Fprintf(w, "\nMaximum blob size: %s\n", mebibytes(s.MaxBlobSize))
	fmt.Fprintf(w, "Maximum manifest size: %s\n", mebibytes(s.MaxManifestSize))
	fmt.Fprintf(w, "\nHostname of this registry (for the MutatingWebhook): %q\n", s.ServiceName)

	if s.Policy != nil {
		fmt.Fprintln(w, "Image validation webhook configured:")
		fmt.Fprintf(w, "  Default action: %s\n", s.Policy.Default)
		fmt.Fprintf(w, "  Allowed prefixes: %q\n", s.Policy.Allow)
		fmt.Fprintf(w, "  Denied prefixes: %q\n", s.Policy.Deny)
	} else {
		fmt.Fprintln(w, "Image validation webhook not configured")
	}

	if len(s.Registries) > 0 {
		fmt.Fprintln(w, "Proxy registries configured:")
		for _, r := range s.Registries {
			fmt.Fprintf(w, "  - %s: %s\n", r.Alias, r.Host)
		}
	} else {
		fmt.Fprintln(w, "Proxy registries not configured")
	}

	if len(s.CORSOrigins) > 0 {
		fmt.Fprintf(w, "Cross-Origin Resource Sharing (CORS) requests are allowed from %q\n", s.CORSOrigins)
	}
	if s.AuthEnabled {
		fmt.Fprintf(w, "Basic authentication enabled for %d user(s), anonymous pulls: %t\n", len(s.Users), s.AnonymousRead)
	}
}

func mebibytes(n int64) string {
	if n <= 0 {
		return "unlimited"
	}
	return fmt.Sprintf("%d Mebibytes", n/mebibyte)
}
