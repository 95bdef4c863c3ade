package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o700))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
}

func TestLoadDefaultsWithoutFiles(t *testing.T) {
	home := t.TempDir()

	_, settings, err := Load(Options{Home: home})
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:8080/api", settings.API.BaseURL)
	assert.Equal(t, 30*time.Second, settings.API.Timeout)
	assert.True(t, settings.API.IncludeCredentials)
	assert.Equal(t, "/auth/login", settings.API.LoginPath)
	assert.Equal(t, "warn", settings.LogLevel)
	assert.Equal(t, filepath.Join(home, ".portal", "session.toml"), settings.SessionPath)
	assert.Equal(t, filepath.Join(home, ".portal", "secrets"), settings.SecretsDir)
	assert.Equal(t, SecretsBackendChain, settings.SecretsBackend)
	assert.False(t, settings.Metrics)
}

func TestLoadReadsConfigFileAndEnvOverrides(t *testing.T) {
	home := t.TempDir()
	writeFile(t, filepath.Join(home, ".portal", "config.toml"), `
[api]
base_url = "https://portal.example.com/api"
timeout = "5s"
rate_limit = 4.5

[log]
level = "debug"
format = "json"
`)
	t.Setenv("PORTAL_LOG_LEVEL", "error")

	v, settings, err := Load(Options{Home: home})
	require.NoError(t, err)

	assert.Equal(t, "https://portal.example.com/api", settings.API.BaseURL)
	assert.Equal(t, 5*time.Second, settings.API.Timeout)
	assert.InDelta(t, 4.5, settings.API.RateLimit, 0.0001)
	assert.Equal(t, "error", settings.LogLevel)
	assert.Equal(t, "json", settings.LogFormat)
	assert.Equal(t, settings.SessionPath, v.GetString(KeySessionPath))
}

func TestLoadBaseURLFromEnvironment(t *testing.T) {
	t.Setenv("PORTAL_API_BASE_URL", "http://127.0.0.1:9999/api")

	_, settings, err := Load(Options{Home: t.TempDir()})
	require.NoError(t, err)
	assert.Equal(t, "http://127.0.0.1:9999/api", settings.API.BaseURL)
}

func TestLoadReadsDotEnvInPortalDir(t *testing.T) {
	home := t.TempDir()
	writeFile(t, filepath.Join(home, ".portal", ".env"), "PORTAL_SECRETS_BACKEND=file\n")
	t.Cleanup(func() { _ = os.Unsetenv("PORTAL_SECRETS_BACKEND") })

	_, settings, err := Load(Options{Home: home})
	require.NoError(t, err)
	assert.Equal(t, SecretsBackendFile, settings.SecretsBackend)
}

func TestLoadRejectsUnknownSecretsBackend(t *testing.T) {
	home := t.TempDir()
	writeFile(t, filepath.Join(home, ".portal", "config.toml"), "[secrets]\nbackend = \"vault\"\n")

	_, _, err := Load(Options{Home: home})
	require.ErrorContains(t, err, "unsupported secrets backend")
}

func TestLoadRejectsMalformedConfig(t *testing.T) {
	home := t.TempDir()
	path := filepath.Join(home, "custom.toml")
	writeFile(t, path, "[api\nbase_url = ")

	_, _, err := Load(Options{Home: home, ConfigFile: path})
	require.ErrorContains(t, err, "read config")
}
