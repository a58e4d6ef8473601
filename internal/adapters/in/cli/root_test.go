package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRootCmd_Subcommands(t *testing.T) {
	cmd := NewRootCmd()

	var names []string
	for _, c := range cmd.Commands() {
		names = append(names, c.Name())
	}

	assert.Subset(t, names, []string{"serve", "check-config", "gc", "hash-password", "version"})
}

func TestVersionCmd(t *testing.T) {
	SetVersionInfo("v0.4.0", "abc123", "")
	t.Cleanup(func() { Version, Commit = "dev", "unknown" })

	out, err := execute(t, "version")
	require.NoError(t, err)
	assert.Contains(t, out, "Kestrel v0.4.0")
	assert.Contains(t, out, "Commit: abc123")
	assert.Contains(t, out, "Build Date: unknown")

	out, err = execute(t, "version", "--short")
	require.NoError(t, err)
	assert.Equal(t, "v0.4.0\n", out)
}

func TestCheckConfigCmd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kestrel.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  data_dir: "+dir+"\nproxy:\n  registries:\n    - {alias: docker, host: docker.io}\n"), 0o600))

	out, err := execute(t, "check-config", "--config", path)
	require.NoError(t, err)
	assert.Contains(t, out, "  - docker: docker.io")
	assert.True(t, strings.HasSuffix(out, "Dry run, exiting.\n"))
}

func TestCheckConfigCmd_Invalid(t *testing.T) {
	path := filepath.Join(t.TempDir(), "kestrel.yaml")
	require.NoError(t, os.WriteFile(path, []byte("registry:\n  max_blob_size: huge\n"), 0o600))

	_, err := execute(t, "check-config", "--config", path)
	assert.Error(t, err)
}

func TestGCCmd_EmptyStore(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kestrel.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  data_dir: "+dir+"\n"), 0o600))

	out, err := execute(t, "gc", "--config", path, "--grace", "0s")
	require.NoError(t, err)
	assert.Contains(t, out, "Blobs removed: 0")
}

func TestRunHashPassword(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runHashPassword(&out, "s3cret"))

	hash := strings.TrimSpace(out.String())
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(hash), []byte("s3cret")))

	assert.Error(t, runHashPassword(&out, ""))
}
