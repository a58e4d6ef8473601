package logging

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	dec := json.NewDecoder(buf)
	for dec.More() {
		var m map[string]any
		require.NoError(t, dec.Decode(&m))
		out = append(out, m)
	}
	return out
}

func TestCtxWithFields_PropagatesFields(t *testing.T) {
	var buf bytes.Buffer
	ctx := WithCtx(context.Background(), NewWithWriter("debug", &buf))

	ctx = CtxWithFields(ctx, map[string]any{FieldLayer: "usecase", "name": "library/alpine"})
	ctx = CtxWithFields(ctx, map[string]any{FieldUseCase: "GetManifest"})
	log := FromCtx(ctx)
	log.Info().Msg("hello")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "usecase", lines[0][FieldLayer])
	assert.Equal(t, "GetManifest", lines[0][FieldUseCase])
	assert.Equal(t, "library/alpine", lines[0]["name"])
	assert.Equal(t, "hello", lines[0]["message"])
}

func TestFromCtx_DefaultWhenMissing(t *testing.T) {
	l := FromCtx(context.Background())
	assert.NotNil(t, l.Logger)
}

func TestWrapErr(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("info", &buf)
	sentinel := errors.New("boom")

	err := l.WrapErr(sentinel, "failed to store blob")

	assert.ErrorIs(t, err, sentinel)
	assert.Equal(t, "failed to store blob: boom", err.Error())
	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "error", lines[0]["level"])
}

func TestNewWithWriter_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter("warn", &buf)
	l.Info().Msg("dropped")
	l.Warn().Msg("kept")

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	assert.Equal(t, "kept", lines[0]["message"])
}

func TestNewWithFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "kestrel.log")
	l, cleanup, err := NewWithFile(Config{Level: "info", Format: "json"}, FileConfig{
		Enabled: true,
		Path:    path,
		MaxSize: 1,
	})
	require.NoError(t, err)
	defer cleanup()

	l.Info().Msg("to file")
	assert.FileExists(t, path)
}
