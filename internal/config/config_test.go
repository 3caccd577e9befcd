package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var envKeys = []string{
	"LOG_LEVEL", "LOG_FORMAT", "DEEP_CHAIN_DEPTH",
	"SUGGEST_PREVIEW_ROWS", "SUGGEST_MAX_LOOKUP_ENTRIES", "SUGGEST_MIN_CONFIDENCE",
}

// clearEnv unsets every config variable for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()

	for _, k := range envKeys {
		if v, ok := os.LookupEnv(k); ok {
			require.NoError(t, os.Unsetenv(k))
			t.Cleanup(func() { os.Setenv(k, v) })
		}
	}
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("")
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, FormatConsole, cfg.Log.Format)
	assert.Equal(t, 4, cfg.Analysis.DeepChainDepth)
	assert.Equal(t, 10, cfg.Suggest.PreviewRows)
	assert.Equal(t, 10, cfg.Suggest.MaxLookupEntries)
	assert.InDelta(t, 0.0, cfg.Suggest.MinConfidence, 1e-9)
}

func TestLoad_MissingFileFallsBackToEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("DEEP_CHAIN_DEPTH", "6")

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.yaml"))
	require.NoError(t, err)

	assert.Equal(t, 6, cfg.Analysis.DeepChainDepth)
}

func TestLoad_EnvOverridesYAML(t *testing.T) {
	clearEnv(t)

	path := writeConfig(t, `
log:
  level: debug
  format: json
analysis:
  deep_chain_depth: 3
suggest:
  preview_rows: 50
  min_confidence: 0.5
`)

	t.Setenv("SUGGEST_PREVIEW_ROWS", "25")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, FormatJSON, cfg.Log.Format)
	assert.Equal(t, 3, cfg.Analysis.DeepChainDepth)
	assert.Equal(t, 25, cfg.Suggest.PreviewRows, "env wins over yaml")
	assert.Equal(t, 10, cfg.Suggest.MaxLookupEntries, "default fills unset keys")
	assert.InDelta(t, 0.5, cfg.Suggest.MinConfidence, 1e-9)
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
	}{
		{
			name:    "zero depth",
			yaml:    "analysis:\n  deep_chain_depth: 0\n",
			wantErr: "deep_chain_depth",
		},
		{
			name:    "negative preview rows",
			yaml:    "suggest:\n  preview_rows: -1\n",
			wantErr: "preview_rows",
		},
		{
			name:    "confidence above one",
			yaml:    "suggest:\n  min_confidence: 1.5\n",
			wantErr: "min_confidence",
		},
		{
			name:    "unknown format",
			yaml:    "log:\n  format: xml\n",
			wantErr: "log.format",
		},
		{
			name:    "malformed yaml",
			yaml:    "analysis: [\n",
			wantErr: "failed to read",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			clearEnv(t)

			_, err := Load(writeConfig(t, tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestValidate_CollectsAllErrors(t *testing.T) {
	cfg := &Config{
		Log:      LogConfig{Level: "info", Format: "xml"},
		Analysis: AnalysisConfig{DeepChainDepth: 0},
		Suggest:  SuggestConfig{PreviewRows: 10, MaxLookupEntries: 0},
	}

	err := cfg.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "log.format")
	assert.Contains(t, err.Error(), "deep_chain_depth")
	assert.Contains(t, err.Error(), "max_lookup_entries")
}
