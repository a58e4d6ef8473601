package middleware

import (
	"net"
	"net/http"
	"strings"
)

// TrustedNets is a parsed list of networks.
type TrustedNets []*net.IPNet

// ParseTrustedProxies converts a list of IP addresses and CIDR ranges to
// networks. Single IPs become /32 or /128 blocks; unparsable entries are
// skipped.
func ParseTrustedProxies(proxies []string) TrustedNets {
	var nets TrustedNets
	for _, proxy := range proxies {
		if _, ipNet, err := net.ParseCIDR(proxy); err == nil {
			nets = append(nets, ipNet)
			continue
		}
		if ip := net.ParseIP(proxy); ip != nil {
			bits := 32
			if ip.To4() == nil {
				bits = 128
			}
			nets = append(nets, &net.IPNet{IP: ip, Mask: net.CIDRMask(bits, bits)})
		}
	}
	return nets
}

// Contains reports whether ip belongs to one of the networks.
func (n TrustedNets) Contains(ip string) bool {
	if len(n) == 0 {
		return false
	}
	parsed := net.ParseIP(ip)
	if parsed == nil {
		return false
	}
	for _, ipNet := range n {
		if ipNet.Contains(parsed) {
			return true
		}
	}
	return false
}

// GetClientIP extracts the client IP address from the request.
// X-Forwarded-For and X-Real-IP are only honored when the direct peer is a
// trusted proxy.
func GetClientIP(r *http.Request, trustedNets TrustedNets) string {
	remoteIP, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		remoteIP = r.RemoteAddr
	}

	if trustedNets.Contains(remoteIP) {
		if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
			first, _, _ := strings.Cut(xff, ",")
			return strings.TrimSpace(first)
		}
		if xri := r.Header.Get("X-Real-IP"); xri != "" {
			return strings.TrimSpace(xri)
		}
	}

	return remoteIP
}
