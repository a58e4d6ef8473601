package digestcodec

import (
	"strings"
	"testing"

	"github.com/opencontainers/go-digest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompute_RoundTrip(t *testing.T) {
	inputs := [][]byte{
		{},
		[]byte("hello"),
		[]byte(strings.Repeat("layer", 10000)),
	}

	for _, data := range inputs {
		d := Compute(data)
		assert.True(t, Verify(data, d))

		parsed, err := Parse(d.String())
		require.NoError(t, err)
		assert.Equal(t, d, parsed)
	}
}

func TestCompute_EmptyIsWellKnown(t *testing.T) {
	assert.Equal(t,
		"sha256:e3b0c44298fc1c149afbf4c8996fb92427ae41e4649b934ca495991b7852b855",
		Compute(nil).String())
}

func TestVerify_Mismatch(t *testing.T) {
	d := Compute([]byte("a"))
	assert.False(t, Verify([]byte("b"), d))
}

func TestVerify_Sha512(t *testing.T) {
	d, err := ComputeWith(digest.SHA512, []byte("hello"))
	require.NoError(t, err)
	assert.True(t, Verify([]byte("hello"), d))
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  error
	}{
		{"no colon", "abc", ErrInvalidFormat},
		{"empty hex", "sha256:", ErrInvalidFormat},
		{"short hex", "sha256:abc", ErrInvalidFormat},
		{"uppercase hex", "sha256:" + strings.Repeat("A", 64), ErrInvalidFormat},
		{"md5", "md5:d41d8cd98f00b204e9800998ecf8427e", ErrUnsupportedAlgorithm},
		{"sha384", "sha384:" + strings.Repeat("a", 96), ErrUnsupportedAlgorithm},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse(tt.input)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestVerify_UnsupportedNeverVerifies(t *testing.T) {
	assert.False(t, Verify([]byte("x"), digest.Digest("md5:9dd4e461268c8034f5c8564e155c67a6")))
}

func TestDigester_MatchesCompute(t *testing.T) {
	dg, err := NewDigester(Canonical)
	require.NoError(t, err)

	_, _ = dg.Write([]byte("hel"))
	_, _ = dg.Write([]byte("lo"))

	assert.Equal(t, Compute([]byte("hello")), dg.Digest())
	assert.Equal(t, int64(5), dg.Size())
}

func TestNewDigester_Unsupported(t *testing.T) {
	_, err := NewDigester(digest.SHA384)
	assert.ErrorIs(t, err, ErrUnsupportedAlgorithm)
}
