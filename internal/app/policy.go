package app

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/bnema/kestrel/internal/domain"
)

// validationDocument is the image validation file format.
//
//	default: Deny
//	allow: [kestrel.kube-public/, k8s.gcr.io/]
//	deny: [docker.io/]
type validationDocument struct {
	Default string   `yaml:"default"`
	Allow   []string `yaml:"allow"`
	Deny    []string `yaml:"deny"`
}

// loadProxyRegistries reads the proxy document, a YAML list of
// {alias, host, username, password}, and appends the inline entries.
func loadProxyRegistries(path string, inline []domain.ProxyRegistry) (domain.ProxyRegistries, error) {
	var registries domain.ProxyRegistries
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("could not read proxy config %s: %w", path, err)
		}
		if err := yaml.Unmarshal(data, &registries); err != nil {
			return nil, fmt.Errorf("%w: could not parse proxy config %s: %v", domain.ErrInvalidConfig, path, err)
		}
	}
	registries = append(registries, inline...)

	if err := registries.Validate(); err != nil {
		return nil, err
	}
	return registries, nil
}

// loadValidationPolicy reads the validation document when path is set,
// otherwise builds the policy from the inline values. It returns nil when
// neither is configured.
func loadValidationPolicy(path, def string, allow, deny []string) (*domain.ValidationPolicy, error) {
	doc := validationDocument{Default: def, Allow: allow, Deny: deny}
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("could not read validation config %s: %w", path, err)
		}
		doc = validationDocument{}
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("%w: could not parse validation config %s: %v", domain.ErrInvalidConfig, path, err)
		}
	}

	if doc.Default == "" && len(doc.Allow) == 0 && len(doc.Deny) == 0 {
		return nil, nil
	}

	policy := &domain.ValidationPolicy{
		Default: domain.DecisionAllow,
		Allow:   doc.Allow,
		Deny:    doc.Deny,
	}
	if doc.Default != "" {
		d, err := domain.ParseDecision(doc.Default)
		if err != nil {
			return nil, err
		}
		policy.Default = d
	}
	return policy, nil
}
