package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfigFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "conf.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJson_Overlay(t *testing.T) {
	path := writeConfigFile(t, `{
		"api_base_url": "https://json.example.com/api",
		"request_timeout": "7s",
		"startup_strategy": "validate",
		"offline": true
	}`)
	resetArgs(t, "-c", path)

	cfg := LoadConfig()

	assert.Equal(t, "https://json.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, 7*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "validate", cfg.StartupStrategy)
	assert.True(t, cfg.Offline)
}

func TestParseJson_MissingFieldsKeepDefaults(t *testing.T) {
	path := writeConfigFile(t, `{"api_base_url": "https://json.example.com/api"}`)
	resetArgs(t, "-c", path)

	cfg := LoadConfig()

	assert.Equal(t, "https://json.example.com/api", cfg.APIBaseURL)
	assert.Equal(t, 10*time.Second, cfg.RequestTimeout)
	assert.Equal(t, "tokens.json", cfg.TokenFile)
}

func TestParseJson_NoFlagNoFile(t *testing.T) {
	resetArgs(t)
	cfg := LoadConfig()
	assert.Equal(t, "http://localhost:8000/api", cfg.APIBaseURL)
}

func TestParseJson_BadFilePanics(t *testing.T) {
	path := writeConfigFile(t, `{broken`)
	resetArgs(t, "-c", path)

	assert.Panics(t, func() { LoadConfig() })
}
