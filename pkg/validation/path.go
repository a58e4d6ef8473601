// Package validation provides input validation for names that end up as
// filesystem paths. Everything that reaches the storage layer passes through
// here first.
package validation

import (
	"fmt"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/bnema/kestrel/pkg/digestcodec"
)

// A repository path component: lowercase alphanumerics joined by a single
// '.', a single '_', a double '__' or any run of '-'.
var segmentRegex = regexp.MustCompile(`^[a-z0-9]+(?:(?:[._]|__|[-]*)[a-z0-9]+)*$`)

// Tags: up to 128 characters, first one a word character.
var tagRegex = regexp.MustCompile(`^[a-zA-Z0-9_][a-zA-Z0-9._-]{0,127}$`)

// Upload session identifiers are server generated UUIDs.
var uuidRegex = regexp.MustCompile(`^[0-9a-f]{8}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{4}-[0-9a-f]{12}$`)

const (
	// MaxRepositoryNameLength is the maximum allowed length for repository names.
	MaxRepositoryNameLength = 256
	// MaxRepositorySegments is the maximum number of '/' separated components.
	MaxRepositorySegments = 5
)

// ValidateRepositoryName validates a repository name of 1 to 5 components.
func ValidateRepositoryName(name string) error {
	if name == "" {
		return fmt.Errorf("repository name cannot be empty")
	}

	if len(name) > MaxRepositoryNameLength {
		return fmt.Errorf("repository name too long: %d chars (max %d)", len(name), MaxRepositoryNameLength)
	}

	if strings.Contains(name, "..") {
		return fmt.Errorf("repository name contains path traversal sequence")
	}

	segments := strings.Split(name, "/")
	if len(segments) > MaxRepositorySegments {
		return fmt.Errorf("repository name has %d components (max %d)", len(segments), MaxRepositorySegments)
	}

	for _, seg := range segments {
		if !segmentRegex.MatchString(seg) {
			return fmt.Errorf("invalid repository name format: component %q must contain only lowercase letters, digits, and separators (., _, __, -)", seg)
		}
	}

	return nil
}

// ValidateTag validates a tag.
func ValidateTag(tag string) error {
	if tag == "" {
		return fmt.Errorf("tag cannot be empty")
	}
	if !tagRegex.MatchString(tag) {
		return fmt.Errorf("invalid tag format: %q", tag)
	}
	return nil
}

// ValidateReference validates a manifest reference, which is either a tag or a digest.
func ValidateReference(reference string) error {
	if reference == "" {
		return fmt.Errorf("reference cannot be empty")
	}

	if strings.Contains(reference, "..") {
		return fmt.Errorf("reference contains path traversal sequence")
	}

	if strings.Contains(reference, ":") {
		return ValidateDigest(reference)
	}

	if !tagRegex.MatchString(reference) {
		return fmt.Errorf("invalid reference format: must be a valid tag or digest")
	}

	return nil
}

// ValidateDigest validates a content digest (sha256 or sha512).
func ValidateDigest(digest string) error {
	if digest == "" {
		return fmt.Errorf("digest cannot be empty")
	}

	if _, err := digestcodec.Parse(digest); err != nil {
		return fmt.Errorf("invalid digest: %w", err)
	}

	return nil
}

// IsDigest reports whether s is a valid digest.
func IsDigest(s string) bool {
	return ValidateDigest(s) == nil
}

// ValidateUUID validates a blob upload UUID.
func ValidateUUID(uuid string) error {
	if uuid == "" {
		return fmt.Errorf("UUID cannot be empty")
	}

	if !uuidRegex.MatchString(uuid) {
		return fmt.Errorf("invalid UUID format")
	}

	return nil
}

// ValidatePath cleans a relative path and rejects traversal or absolute paths.
func ValidatePath(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("path cannot be empty")
	}

	cleanPath := filepath.Clean(path)

	if strings.Contains(cleanPath, "..") {
		return "", fmt.Errorf("path traversal not allowed")
	}

	if filepath.IsAbs(cleanPath) {
		return "", fmt.Errorf("absolute paths not allowed")
	}

	return cleanPath, nil
}

// ValidatePathWithinRoot checks that fullPath stays inside rootDir after cleaning.
func ValidatePathWithinRoot(rootDir, fullPath string) error {
	cleanRoot := filepath.Clean(rootDir)
	cleanPath := filepath.Clean(fullPath)

	if !strings.HasPrefix(cleanPath, cleanRoot+string(filepath.Separator)) && cleanPath != cleanRoot {
		return fmt.Errorf("path escapes root directory")
	}

	return nil
}
