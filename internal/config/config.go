// Package config loads the desktop client settings: a TOML file, then the
// project .env file, then MEDCONSULT_* environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"medconsult/internal/utils"
)

const (
	DefaultConfigPath = "medconsult.toml"
	DefaultAPIURL     = "http://localhost:8000"
)

// Environment variables that override the file. EnvConfigPath names the
// file itself.
const (
	EnvConfigPath        = "MEDCONSULT_CONFIG"
	EnvAPIURL            = "MEDCONSULT_API_URL"
	EnvWebSocketURL      = "MEDCONSULT_WS_URL"
	EnvDBPath            = "MEDCONSULT_DB_PATH"
	EnvTranslationsDir   = "MEDCONSULT_TRANSLATIONS_DIR"
	EnvRequestTimeout    = "MEDCONSULT_REQUEST_TIMEOUT"
	EnvRequestsPerSecond = "MEDCONSULT_REQUESTS_PER_SECOND"
)

type Config struct {
	API      APIConfig      `toml:"api"`
	Database DatabaseConfig `toml:"database"`
	I18n     I18nConfig     `toml:"i18n"`
}

type APIConfig struct {
	BaseURL string `toml:"base_url"`
	// WebSocketURL is derived from BaseURL when empty.
	WebSocketURL string `toml:"websocket_url"`
	// Timeout is a Go duration such as "30s". Empty means no timeout.
	Timeout           string  `toml:"timeout"`
	RequestsPerSecond float64 `toml:"requests_per_second"`
}

type DatabaseConfig struct {
	// Path is the sqlite file. Empty uses the per-user data directory.
	Path string `toml:"path"`
}

type I18nConfig struct {
	// TranslationsDir holds optional JSON translation overlays.
	TranslationsDir string `toml:"translations_dir"`
}

// RequestTimeout parses API.Timeout.
func (c APIConfig) RequestTimeout() (time.Duration, error) {
	if strings.TrimSpace(c.Timeout) == "" {
		return 0, nil
	}
	d, err := time.ParseDuration(strings.TrimSpace(c.Timeout))
	if err != nil {
		return 0, fmt.Errorf("invalid api timeout %q: %w", c.Timeout, err)
	}
	if d < 0 {
		return 0, fmt.Errorf("invalid api timeout %q: must not be negative", c.Timeout)
	}
	return d, nil
}

// Load reads the TOML config at path (a missing file is fine), loads the
// project .env file when present and applies environment overrides.
func Load(path string) (Config, error) {
	cfg := Config{
		API: APIConfig{BaseURL: DefaultAPIURL},
	}

	if path == "" {
		path = DefaultConfigPath
	}
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return cfg, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return cfg, err
	}

	// Variables already set in the environment win over .env.
	_ = utils.LoadEnv()

	if err := applyEnv(&cfg); err != nil {
		return cfg, err
	}
	if _, err := cfg.API.RequestTimeout(); err != nil {
		return cfg, err
	}
	if cfg.API.RequestsPerSecond < 0 {
		return cfg, fmt.Errorf("invalid requests per second %v: must not be negative", cfg.API.RequestsPerSecond)
	}
	return cfg, nil
}

func applyEnv(cfg *Config) error {
	setString(&cfg.API.BaseURL, EnvAPIURL)
	setString(&cfg.API.WebSocketURL, EnvWebSocketURL)
	setString(&cfg.API.Timeout, EnvRequestTimeout)
	setString(&cfg.Database.Path, EnvDBPath)
	setString(&cfg.I18n.TranslationsDir, EnvTranslationsDir)

	if v, ok := lookup(EnvRequestsPerSecond); ok {
		rps, err := strconv.ParseFloat(v, 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvRequestsPerSecond, v, err)
		}
		cfg.API.RequestsPerSecond = rps
	}
	return nil
}

func setString(dst *string, key string) {
	if v, ok := lookup(key); ok {
		*dst = v
	}
}

func lookup(key string) (string, bool) {
	v, ok := os.LookupEnv(key)
	v = strings.TrimSpace(v)
	return v, ok && v != ""
}
