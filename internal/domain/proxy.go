package domain

import (
	"fmt"
	"regexp"
	"strings"
)

var aliasRegex = regexp.MustCompile(`^[a-z0-9]+(?:[._-][a-z0-9]+)*$`)

// ProxyRegistry maps a local alias onto an upstream registry.
type ProxyRegistry struct {
	Alias    string `yaml:"alias" mapstructure:"alias"`
	Host     string `yaml:"host" mapstructure:"host"`
	Username string `yaml:"username,omitempty" mapstructure:"username"`
	Password string `yaml:"password,omitempty" mapstructure:"password"`
	// PlainHTTP talks to the upstream without TLS.
	PlainHTTP bool `yaml:"plain_http,omitempty" mapstructure:"plain_http"`
}

// HasCredentials reports whether a username is configured.
func (p ProxyRegistry) HasCredentials() bool {
	return p.Username != ""
}

// ProxyRegistries is the immutable set of configured upstreams.
type ProxyRegistries []ProxyRegistry

// dockerHubHosts all name the same upstream.
var dockerHubHosts = map[string]bool{
	"docker.io":            true,
	"index.docker.io":      true,
	"registry-1.docker.io": true,
}

// NormalizeHost lowercases host and folds the Docker Hub aliases onto docker.io.
func NormalizeHost(host string) string {
	h := strings.ToLower(strings.TrimSuffix(host, "/"))
	if dockerHubHosts[h] {
		return "docker.io"
	}
	return h
}

// Validate checks aliases are unique path components and hosts are set.
func (p ProxyRegistries) Validate() error {
	seen := make(map[string]bool, len(p))
	for _, r := range p {
		if !aliasRegex.MatchString(r.Alias) {
			return fmt.Errorf("%w: proxy alias %q is not a valid repository component", ErrInvalidConfig, r.Alias)
		}
		if seen[r.Alias] {
			return fmt.Errorf("%w: duplicate proxy alias %q", ErrInvalidConfig, r.Alias)
		}
		if strings.TrimSpace(r.Host) == "" {
			return fmt.Errorf("%w: proxy alias %q has no host", ErrInvalidConfig, r.Alias)
		}
		seen[r.Alias] = true
	}
	return nil
}

// ByAlias returns the registry configured under alias.
func (p ProxyRegistries) ByAlias(alias string) (ProxyRegistry, bool) {
	for _, r := range p {
		if r.Alias == alias {
			return r, true
		}
	}
	return ProxyRegistry{}, false
}

// ByHost returns the first registry whose host matches host.
func (p ProxyRegistries) ByHost(host string) (ProxyRegistry, bool) {
	want := NormalizeHost(host)
	for _, r := range p {
		if NormalizeHost(r.Host) == want {
			return r, true
		}
	}
	return ProxyRegistry{}, false
}
