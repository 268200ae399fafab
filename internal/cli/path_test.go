package cli

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestPathText(t *testing.T) {
	out, _, err := execute(NewPathCommand(&RootOptions{Format: "text"}), "uint8", "uint64")
	require.NoError(t, err)
	assert.Equal(t, "uint8 → uint16 → uint32 → uint64\n", out)
}

func TestPathReflexive(t *testing.T) {
	out, _, err := execute(NewPathCommand(&RootOptions{Format: "text"}), "float32", "float32")
	require.NoError(t, err)
	assert.Equal(t, "float32\n", out)
}

func TestPathJSONGolden(t *testing.T) {
	out, _, err := execute(NewPathCommand(&RootOptions{Format: "json"}), "uint8", "float64")
	require.NoError(t, err)
	newGolden(t).Assert(t, "path_uint8_float64", []byte(out))
}

func TestPathYAML(t *testing.T) {
	out, _, err := execute(NewPathCommand(&RootOptions{Format: "yaml"}), "int64", "float32")
	require.NoError(t, err)

	var resp struct {
		Status string `yaml:"status"`
		Data   struct {
			From string   `yaml:"from"`
			To   string   `yaml:"to"`
			Path []string `yaml:"path"`
		} `yaml:"data"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.Equal(t, "int64", resp.Data.From)
	assert.Equal(t, []string{"int64", "float32"}, resp.Data.Path)
}

func TestPathNoWidening(t *testing.T) {
	tests := []struct {
		from, to string
	}{
		{"uint64", "uint32"},
		{"int32", "uint32"},
		{"float64", "float32"},
		{"float32", "int64"},
	}
	for _, tt := range tests {
		t.Run(tt.from+"_"+tt.to, func(t *testing.T) {
			out, _, err := execute(NewPathCommand(&RootOptions{Format: "text"}), tt.from, tt.to)
			require.Error(t, err)
			assert.Equal(t, ExitFailure, GetExitCode(err))
			assert.Contains(t, err.Error(), ErrCodeNoPath)
			assert.Contains(t, out, "no widening path from "+tt.from+" to "+tt.to)
		})
	}
}

func TestPathNoWideningJSON(t *testing.T) {
	out, _, err := execute(NewPathCommand(&RootOptions{Format: "json"}), "uint64", "uint32")
	require.Error(t, err)

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "error", resp.Status)
	require.NotNil(t, resp.Error)
	assert.Equal(t, ErrCodeNoPath, resp.Error.Code)
}

func TestPathUnknownKind(t *testing.T) {
	out, _, err := execute(NewPathCommand(&RootOptions{Format: "text"}), "int", "int64")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Contains(t, out, ErrCodeInvalidArgs)
}

func TestPathVerbose(t *testing.T) {
	out, errOut, err := execute(NewPathCommand(&RootOptions{Format: "json", Verbose: true}), "int8", "int16")
	require.NoError(t, err)
	assert.Contains(t, errOut, "Using embedded fact table facts.cue")
	assert.Contains(t, errOut, "in 1 step(s)")

	var resp CLIResponse
	require.NoError(t, json.Unmarshal([]byte(out), &resp), "verbose logs must not corrupt JSON")
}
