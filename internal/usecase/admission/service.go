// Package admission implements the image admission policy used by the
// cluster webhooks.
package admission

import (
	"context"
	"fmt"
	"strings"

	"github.com/distribution/reference"

	"github.com/bnema/kestrel/internal/boundaries/in"
	"github.com/bnema/kestrel/internal/domain"
	"github.com/bnema/kestrel/internal/logging"
)

// Ensure Service implements in.AdmissionService.
var _ in.AdmissionService = (*Service)(nil)

// Config describes how allowed images are rewritten onto the proxy cache.
type Config struct {
	// ServiceName is the address clients use to reach this registry.
	ServiceName string
	// ProxyPrefix is the first repository component of proxied repositories.
	ProxyPrefix string
}

// Service implements the AdmissionService interface.
type Service struct {
	cfg        Config
	policy     domain.ValidationPolicy
	registries domain.ProxyRegistries
}

// NewService creates an admission service. A policy without a default
// action admits everything that is not denied.
func NewService(cfg Config, policy domain.ValidationPolicy, registries domain.ProxyRegistries) *Service {
	if policy.Default == "" {
		policy.Default = domain.DecisionAllow
	}
	return &Service{
		cfg:        cfg,
		policy:     policy,
		registries: registries,
	}
}

// Decide evaluates deny prefixes, then allow prefixes, then the default
// action. Unparsable references are always denied.
func (s *Service) Decide(ctx context.Context, image string) domain.AdmissionResult {
	ctx = logging.CtxWithFields(ctx, map[string]any{
		logging.FieldLayer:   "usecase",
		logging.FieldUseCase: "Decide",
		"image":              image,
	})
	log := logging.FromCtx(ctx)

	result := s.decide(image)
	log.Debug().Str("decision", string(result.Decision)).Str("reason", result.Reason).Msg("admission decided")
	return result
}

func (s *Service) decide(image string) domain.AdmissionResult {
	named, err := reference.ParseNormalizedNamed(image)
	if err != nil {
		return domain.AdmissionResult{
			Decision: domain.DecisionDeny,
			Reason:   fmt.Sprintf("invalid image reference %q: %v", image, err),
		}
	}

	forms := candidates(image, named)
	if prefix, ok := matchAny(s.policy.Deny, forms); ok {
		return domain.AdmissionResult{
			Decision: domain.DecisionDeny,
			Reason:   fmt.Sprintf("image %s matches deny prefix %q", image, prefix),
		}
	}
	if prefix, ok := matchAny(s.policy.Allow, forms); ok {
		return domain.AdmissionResult{
			Decision: domain.DecisionAllow,
			Reason:   fmt.Sprintf("image %s matches allow prefix %q", image, prefix),
		}
	}
	return domain.AdmissionResult{
		Decision: s.policy.Default,
		Reason:   fmt.Sprintf("image %s matches no rule, default action is %s", image, s.policy.Default),
	}
}

// Mutate rewrites an admitted image hosted on a proxied upstream so that it
// is pulled through this registry. Anything else is returned unchanged.
func (s *Service) Mutate(ctx context.Context, image string) (string, bool) {
	ctx = logging.CtxWithFields(ctx, map[string]any{
		logging.FieldLayer:   "usecase",
		logging.FieldUseCase: "Mutate",
		"image":              image,
	})
	log := logging.FromCtx(ctx)

	if !s.decide(image).Allowed() {
		return image, false
	}

	ref, err := ParseImage(image)
	if err != nil {
		return image, false
	}
	if s.cfg.ServiceName != "" && strings.EqualFold(ref.Host, s.cfg.ServiceName) {
		return image, false
	}
	reg, ok := s.registries.ByHost(ref.Host)
	if !ok {
		return image, false
	}

	rewritten := domain.ImageReference{
		Host:       s.cfg.ServiceName,
		Repository: s.cfg.ProxyPrefix + "/" + reg.Alias + "/" + ref.Repository,
	}
	if ref.Digest != "" {
		rewritten.Digest = ref.Digest
	} else {
		rewritten.Tag = ref.Tag
	}

	out := rewritten.String()
	log.Info().Str("rewritten", out).Str("alias", reg.Alias).Msg("image routed through proxy cache")
	return out, true
}

// ParseImage parses an image reference, filling in the Docker Hub host for
// familiar names.
func ParseImage(image string) (domain.ImageReference, error) {
	named, err := reference.ParseNormalizedNamed(image)
	if err != nil {
		return domain.ImageReference{}, fmt.Errorf("%w: %v", domain.ErrReferenceInvalid, err)
	}

	ref := domain.ImageReference{
		Host:       reference.Domain(named),
		Repository: reference.Path(named),
	}
	if tagged, ok := named.(reference.Tagged); ok {
		ref.Tag = tagged.Tag()
	}
	if digested, ok := named.(reference.Digested); ok {
		ref.Digest = digested.Digest()
	}
	return ref, nil
}

// candidates are the spellings a prefix may be written against: the image as
// given, its familiar form and its fully qualified form.
func candidates(image string, named reference.Named) []string {
	forms := []string{image}
	for _, f := range []string{reference.FamiliarString(named), named.String()} {
		if f != forms[len(forms)-1] && f != image {
			forms = append(forms, f)
		}
	}
	return forms
}

func matchAny(prefixes, forms []string) (string, bool) {
	for _, p := range prefixes {
		for _, f := range forms {
			if hasSegmentPrefix(f, p) {
				return p, true
			}
		}
	}
	return "", false
}

// hasSegmentPrefix reports whether prefix matches s up to a path segment
// boundary. The tag and digest separators also end a segment.
func hasSegmentPrefix(s, prefix string) bool {
	if prefix == "" || !strings.HasPrefix(s, prefix) {
		return false
	}
	if len(s) == len(prefix) || strings.HasSuffix(prefix, "/") {
		return true
	}
	switch s[len(prefix)] {
	case '/', ':', '@':
		return true
	}
	return false
}
