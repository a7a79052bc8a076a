package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{EnvAPIURL, EnvWebSocketURL, EnvDBPath, EnvTranslationsDir, EnvRequestTimeout, EnvRequestsPerSecond} {
		t.Setenv(key, "")
	}
}

func TestLoad_MissingFileUsesDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "absent.toml"))
	require.NoError(t, err)
	assert.Equal(t, DefaultAPIURL, cfg.API.BaseURL)
	assert.Empty(t, cfg.API.WebSocketURL)
	assert.Empty(t, cfg.Database.Path)
	assert.Zero(t, cfg.API.RequestsPerSecond)

	timeout, err := cfg.API.RequestTimeout()
	require.NoError(t, err)
	assert.Zero(t, timeout)
}

func TestLoad_File(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "medconsult.toml")
	require.NoError(t, os.WriteFile(path, []byte(`
[api]
base_url = "https://consult.example.org"
timeout = "45s"
requests_per_second = 4

[database]
path = "/tmp/consult.db"

[i18n]
translations_dir = "/opt/medconsult/i18n"
`), 0644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "https://consult.example.org", cfg.API.BaseURL)
	assert.Equal(t, 4.0, cfg.API.RequestsPerSecond)
	assert.Equal(t, "/tmp/consult.db", cfg.Database.Path)
	assert.Equal(t, "/opt/medconsult/i18n", cfg.I18n.TranslationsDir)

	timeout, err := cfg.API.RequestTimeout()
	require.NoError(t, err)
	assert.Equal(t, 45*time.Second, timeout)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "medconsult.toml")
	require.NoError(t, os.WriteFile(path, []byte("[api]\nbase_url = \"http://file\"\n"), 0644))

	t.Setenv(EnvAPIURL, "http://env:9000")
	t.Setenv(EnvWebSocketURL, "ws://env:9001")
	t.Setenv(EnvRequestsPerSecond, "2.5")
	t.Setenv(EnvRequestTimeout, "5s")

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "http://env:9000", cfg.API.BaseURL)
	assert.Equal(t, "ws://env:9001", cfg.API.WebSocketURL)
	assert.Equal(t, 2.5, cfg.API.RequestsPerSecond)
	assert.Equal(t, "5s", cfg.API.Timeout)
}

func TestLoad_InvalidValues(t *testing.T) {
	clearEnv(t)
	absent := filepath.Join(t.TempDir(), "absent.toml")

	t.Setenv(EnvRequestsPerSecond, "fast")
	_, err := Load(absent)
	assert.Error(t, err)

	t.Setenv(EnvRequestsPerSecond, "")
	t.Setenv(EnvRequestTimeout, "soon")
	_, err = Load(absent)
	assert.Error(t, err)
}

func TestLoad_MalformedFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "medconsult.toml")
	require.NoError(t, os.WriteFile(path, []byte("[api\nbase_url ="), 0644))

	_, err := Load(path)
	assert.Error(t, err)
}
