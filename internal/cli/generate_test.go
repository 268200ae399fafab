package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/upcast/internal/gen"
	"github.com/roach88/upcast/internal/relation"
)

func TestGenerateStdout(t *testing.T) {
	out, _, err := execute(NewGenerateCommand(&RootOptions{Format: "text"}))
	require.NoError(t, err)

	want, err := gen.Generate(relation.MustDefault(), gen.Options{})
	require.NoError(t, err)
	assert.Equal(t, string(want), out)
}

func TestGenerateFileThenCheck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "upcast_gen.go")
	rootOpts := &RootOptions{Format: "text"}

	out, _, err := execute(NewGenerateCommand(rootOpts), "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "✓ Generated "+path+" from facts.cue (9 facts)")

	written, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(written), "DO NOT EDIT")

	out, _, err = execute(NewGenerateCommand(rootOpts), "-o", path, "--check")
	require.NoError(t, err)
	assert.Contains(t, out, "is up to date")
}

func TestGenerateCheckStale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "upcast_gen.go")
	require.NoError(t, os.WriteFile(path, []byte("package upcast\n"), 0o644))

	out, _, err := execute(NewGenerateCommand(&RootOptions{Format: "text"}), "-o", path, "--check")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, ErrCodeStale)
	assert.ErrorIs(t, err, gen.ErrStale)
}

func TestGenerateCheckRequiresOutput(t *testing.T) {
	_, _, err := execute(NewGenerateCommand(&RootOptions{Format: "text"}), "--check")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, err.Error(), ErrCodeInvalidArgs)
}

func TestGeneratePackageFlag(t *testing.T) {
	out, _, err := execute(NewGenerateCommand(&RootOptions{Format: "text"}), "--package", "widen")
	require.NoError(t, err)
	assert.Contains(t, out, "\npackage widen\n")
}

func TestGenerateCustomFacts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "small.cue")
	require.NoError(t, os.WriteFile(path, []byte(`facts: [{from: "int8", to: "int16"}]`), 0o644))

	out, _, err := execute(NewGenerateCommand(&RootOptions{Format: "text", Facts: path}))
	require.NoError(t, err)
	assert.Contains(t, out, "// Code generated by upcastgen from small.cue. DO NOT EDIT.")
	assert.Contains(t, out, "func Int8ToInt16(v int8) int16 {")
	assert.NotContains(t, out, "Uint8ToUint16")
}

func TestGenerateInvalidFacts(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.cue")
	require.NoError(t, os.WriteFile(path, []byte(badFacts), 0o644))

	_, _, err := execute(NewGenerateCommand(&RootOptions{Format: "text", Facts: path}))
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
}

func TestGenerateJSONSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.go")
	out, _, err := execute(NewGenerateCommand(&RootOptions{Format: "json"}), "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, `"status":"ok"`)
	assert.Contains(t, out, `"facts":9`)
}
