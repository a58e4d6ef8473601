// Package digestcodec computes, parses and verifies content digests.
//
// sha256 is the canonical algorithm. sha512 is accepted everywhere a digest
// is parsed. Any other algorithm is rejected with ErrUnsupportedAlgorithm.
package digestcodec

import (
	_ "crypto/sha256"
	_ "crypto/sha512"
	"errors"
	"fmt"
	"hash"
	"strings"

	"github.com/opencontainers/go-digest"
)

var (
	// ErrUnsupportedAlgorithm is returned for digests whose algorithm is not sha256 or sha512.
	ErrUnsupportedAlgorithm = errors.New("unsupported digest algorithm")
	// ErrInvalidFormat is returned for strings that are not algorithm:hex.
	ErrInvalidFormat = errors.New("invalid digest format")
)

// Canonical is the algorithm used when computing new digests.
const Canonical = digest.SHA256

// Supported reports whether alg can be used by the registry.
func Supported(alg digest.Algorithm) bool {
	return alg == digest.SHA256 || alg == digest.SHA512
}

// Compute returns the canonical digest of data.
func Compute(data []byte) digest.Digest {
	return Canonical.FromBytes(data)
}

// ComputeWith returns the digest of data using alg.
func ComputeWith(alg digest.Algorithm, data []byte) (digest.Digest, error) {
	if !Supported(alg) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, alg)
	}
	return alg.FromBytes(data), nil
}

// Verify reports whether data hashes to d. Malformed or unsupported digests never verify.
func Verify(data []byte, d digest.Digest) bool {
	if _, err := Parse(d.String()); err != nil {
		return false
	}
	v := d.Verifier()
	_, _ = v.Write(data)
	return v.Verified()
}

// Parse validates s and returns it as a digest.
func Parse(s string) (digest.Digest, error) {
	alg, hex, ok := strings.Cut(s, ":")
	if !ok || alg == "" || hex == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidFormat, s)
	}
	if !Supported(digest.Algorithm(alg)) {
		return "", fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, alg)
	}
	d := digest.Digest(s)
	if err := d.Validate(); err != nil {
		return "", fmt.Errorf("%w: %v", ErrInvalidFormat, err)
	}
	return d, nil
}

// Digester accumulates written bytes into a digest. Upload sessions keep one
// per session so the final digest is known without re-reading the data.
type Digester struct {
	alg  digest.Algorithm
	hash hash.Hash
	size int64
}

// NewDigester returns a Digester for alg.
func NewDigester(alg digest.Algorithm) (*Digester, error) {
	if !Supported(alg) {
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedAlgorithm, alg)
	}
	return &Digester{alg: alg, hash: alg.Hash()}, nil
}

// Write implements io.Writer.
func (d *Digester) Write(p []byte) (int, error) {
	n, err := d.hash.Write(p)
	d.size += int64(n)
	return n, err
}

// Size returns the number of bytes hashed so far.
func (d *Digester) Size() int64 { return d.size }

// Digest returns the digest of everything written so far.
func (d *Digester) Digest() digest.Digest {
	return digest.NewDigest(d.alg, d.hash)
}
