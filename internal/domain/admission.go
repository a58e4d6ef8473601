package domain

import (
	"fmt"
	"strings"

	"github.com/opencontainers/go-digest"
)

// Decision is the outcome of an admission check.
type Decision string

const (
	DecisionAllow Decision = "Allow"
	DecisionDeny  Decision = "Deny"
)

// ParseDecision accepts "Allow" or "Deny" in any case.
func ParseDecision(s string) (Decision, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "allow":
		return DecisionAllow, nil
	case "deny":
		return DecisionDeny, nil
	default:
		return "", fmt.Errorf("%w: default action must be Allow or Deny, got %q", ErrInvalidConfig, s)
	}
}

// ValidationPolicy is the image admission policy. It is built once at
// startup and never mutated.
type ValidationPolicy struct {
	Default Decision
	Allow   []string
	Deny    []string
}

// AdmissionResult is a decision with a human readable reason.
type AdmissionResult struct {
	Decision Decision
	Reason   string
}

// Allowed reports whether the result admits the image.
func (r AdmissionResult) Allowed() bool {
	return r.Decision == DecisionAllow
}

// ImageReference is a parsed image reference. At most one of Tag and Digest
// is set by the parser; both may be set when the source carried both.
type ImageReference struct {
	// Host is the registry host, "docker.io" when the reference had none.
	Host string
	// Repository is the path below the host.
	Repository string
	Tag        string
	Digest     digest.Digest
}

// String renders host/repository followed by :tag and/or @digest.
func (r ImageReference) String() string {
	var b strings.Builder
	if r.Host != "" {
		b.WriteString(r.Host)
		b.WriteByte('/')
	}
	b.WriteString(r.Repository)
	if r.Tag != "" {
		b.WriteByte(':')
		b.WriteString(r.Tag)
	}
	if r.Digest != "" {
		b.WriteByte('@')
		b.WriteString(r.Digest.String())
	}
	return b.String()
}
