package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jsimmons/lax/pkg/errors"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "lax.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, FormatText, cfg.TokenFormat)
	assert.Equal(t, DiagnosticsConsole, cfg.Diagnostics)
}

func TestLoad_Valid(t *testing.T) {
	path := writeConfig(t, `
prompt: ">> "
log_level: debug
token_format: json
diagnostics: log
`)

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, ">> ", cfg.Prompt)
	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, FormatJSON, cfg.TokenFormat)
	assert.Equal(t, DiagnosticsLog, cfg.Diagnostics)
	// Unset fields keep their defaults
	assert.Equal(t, Default().HistoryFile, cfg.HistoryFile)
}

func TestLoad_NotFound(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), nil)
	require.Error(t, err)

	var lerr *errors.Error
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, errors.ErrCodeConfigNotFound, lerr.Code)
}

func TestLoad_UnknownField(t *testing.T) {
	path := writeConfig(t, "promt: \"oops> \"\n")

	_, err := Load(path, nil)
	require.Error(t, err)

	var lerr *errors.Error
	require.True(t, errors.As(err, &lerr))
	assert.Equal(t, errors.ErrCodeConfigParseError, lerr.Code)
}

func TestLoad_InvalidValues(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{name: "bad log level", content: "log_level: loud\n"},
		{name: "bad token format", content: "token_format: xml\n"},
		{name: "bad diagnostics", content: "diagnostics: syslog\n"},
		{name: "empty prompt", content: "prompt: \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := Load(path, nil)
			require.Error(t, err)

			var lerr *errors.Error
			require.True(t, errors.As(err, &lerr))
			assert.Equal(t, errors.ErrCodeConfigValidation, lerr.Code)
		})
	}
}
