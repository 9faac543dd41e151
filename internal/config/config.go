package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config represents the archon configuration.
type Config struct {
	Provider               string        `yaml:"provider" json:"provider"`
	Model                  string        `yaml:"model" json:"model"`
	Format                 string        `yaml:"format" json:"format"`
	ProviderTimeoutSeconds int           `yaml:"providerTimeoutSeconds" json:"providerTimeoutSeconds"`
	Server                 ServerConfig  `yaml:"server" json:"server"`
	Cache                  CacheConfig   `yaml:"cache" json:"cache"`
	Privacy                PrivacyConfig `yaml:"privacy" json:"privacy"`
	Log                    LogConfig     `yaml:"log" json:"log"`
}

// ServerConfig controls the HTTP server.
type ServerConfig struct {
	Addr        string `yaml:"addr" json:"addr"`
	FrontendURL string `yaml:"frontendUrl" json:"frontendUrl"`
}

// CacheConfig controls the completion cache.
type CacheConfig struct {
	Enabled    bool `yaml:"enabled" json:"enabled"`
	Size       int  `yaml:"size" json:"size"`
	TTLSeconds int  `yaml:"ttlSeconds" json:"ttlSeconds"`
}

// PrivacyConfig controls redaction of prompt text.
type PrivacyConfig struct {
	RedactSecrets bool `yaml:"redactSecrets" json:"redactSecrets"`
}

// LogConfig controls structured logging.
type LogConfig struct {
	Level  string `yaml:"level" json:"level"`
	Format string `yaml:"format" json:"format"`
}

// Default returns a Config with all defaults applied.
func Default() Config {
	return Config{
		Provider:               "groq",
		Model:                  "llama-3.3-70b-versatile",
		Format:                 "text",
		ProviderTimeoutSeconds: 300,
		Server: ServerConfig{
			Addr:        ":3001",
			FrontendURL: "http://localhost:3000",
		},
		Cache: CacheConfig{
			Enabled:    false,
			Size:       128,
			TTLSeconds: 3600,
		},
		Privacy: PrivacyConfig{RedactSecrets: true},
		Log:     LogConfig{Level: "info", Format: "text"},
	}
}

// ProviderTimeout returns the per-call provider deadline. Zero disables it.
func (c Config) ProviderTimeout() time.Duration {
	if c.ProviderTimeoutSeconds <= 0 {
		return 0
	}
	return time.Duration(c.ProviderTimeoutSeconds) * time.Second
}

// CacheTTL returns the cache entry lifetime.
func (c Config) CacheTTL() time.Duration {
	return time.Duration(c.Cache.TTLSeconds) * time.Second
}

// Validate checks enumerated fields.
func (c Config) Validate() error {
	switch c.Format {
	case "text", "json", "markdown", "md":
	default:
		return fmt.Errorf("invalid format %q (want text, json or markdown)", c.Format)
	}
	switch strings.ToLower(c.Log.Level) {
	case "debug", "info", "warn", "warning", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q (want text or json)", c.Log.Format)
	}
	if c.Server.Addr == "" {
		return errors.New("server address is empty")
	}
	return nil
}

// ConfigDir returns the platform-appropriate config directory for archon.
func ConfigDir() (string, error) {
	if xdg := os.Getenv("XDG_CONFIG_HOME"); xdg != "" {
		return filepath.Join(xdg, "archon"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot determine home directory: %w", err)
	}
	switch runtime.GOOS {
	case "darwin":
		return filepath.Join(home, "Library", "Application Support", "archon"), nil
	case "windows":
		if appData := os.Getenv("APPDATA"); appData != "" {
			return filepath.Join(appData, "archon"), nil
		}
		return filepath.Join(home, "AppData", "Roaming", "archon"), nil
	default:
		return filepath.Join(home, ".config", "archon"), nil
	}
}

// ConfigPath returns the full path to the config file.
func ConfigPath() (string, error) {
	dir, err := ConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.yaml"), nil
}

// LoadFile returns defaults overlaid with the config file. Keys absent from
// the file keep their default, so an explicit false is honored. A missing
// file is not an error.
func LoadFile() (Config, error) {
	cfg := Default()
	path, err := ConfigPath()
	if err != nil {
		return cfg, err
	}
	if err := mergeFile(&cfg, path); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func mergeFile(dst *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("reading config file: %w", err)
	}
	if err := yaml.Unmarshal(data, dst); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	return nil
}

// Save writes the config to the config file.
func Save(cfg Config) error {
	path, err := ConfigPath()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating config directory: %w", err)
	}
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("marshaling config: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// LoadDotEnv loads KEY=VALUE pairs from path into the process environment.
// Variables that are already set win. A missing file is ignored.
func LoadDotEnv(path string) error {
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}
	return nil
}

// Load builds the effective config by merging: defaults <- file <- env <- overrides.
// The overrides map comes from CLI flags (only non-zero values should be set).
func Load(overrides map[string]string) (Config, error) {
	cfg, err := LoadFile()
	if err != nil {
		return Config{}, err
	}
	if err := mergeEnv(&cfg); err != nil {
		return Config{}, err
	}
	if err := mergeOverrides(&cfg, overrides); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func mergeEnv(cfg *Config) error {
	if v := os.Getenv("ARCHON_PROVIDER"); v != "" {
		cfg.Provider = v
	}
	if v := os.Getenv("ARCHON_MODEL"); v != "" {
		cfg.Model = v
	}
	if v := os.Getenv("ARCHON_FORMAT"); v != "" {
		cfg.Format = v
	}
	if v := os.Getenv("PORT"); v != "" {
		if _, err := strconv.Atoi(v); err != nil {
			return fmt.Errorf("PORT must be a number: %w", err)
		}
		cfg.Server.Addr = ":" + v
	}
	if v := os.Getenv("FRONTEND_URL"); v != "" {
		cfg.Server.FrontendURL = v
	}
	if v := os.Getenv("ARCHON_LOG_LEVEL"); v != "" {
		cfg.Log.Level = v
	}
	if v := os.Getenv("ARCHON_LOG_FORMAT"); v != "" {
		cfg.Log.Format = v
	}
	if v := os.Getenv("ARCHON_PROVIDER_TIMEOUT"); v != "" {
		n, err := parseSeconds(v)
		if err != nil {
			return fmt.Errorf("ARCHON_PROVIDER_TIMEOUT: %w", err)
		}
		cfg.ProviderTimeoutSeconds = n
	}
	if v := os.Getenv("ARCHON_CACHE_ENABLED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("ARCHON_CACHE_ENABLED must be a boolean: %w", err)
		}
		cfg.Cache.Enabled = b
	}
	if v := os.Getenv("ARCHON_REDACT_SECRETS"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("ARCHON_REDACT_SECRETS must be a boolean: %w", err)
		}
		cfg.Privacy.RedactSecrets = b
	}
	return nil
}

// parseSeconds accepts a plain number of seconds or a Go duration string.
func parseSeconds(v string) (int, error) {
	if n, err := strconv.Atoi(v); err == nil {
		return n, nil
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return 0, fmt.Errorf("want seconds or a duration like 90s: %q", v)
	}
	return int(d / time.Second), nil
}

func mergeOverrides(cfg *Config, overrides map[string]string) error {
	for key, v := range overrides {
		if v == "" {
			continue
		}
		if err := SetField(cfg, key, v); err != nil {
			return err
		}
	}
	return nil
}

// Keys lists the keys accepted by SetField.
var Keys = []string{
	"provider", "model", "format", "providerTimeoutSeconds",
	"server.addr", "server.frontendUrl",
	"cache.enabled", "cache.size", "cache.ttlSeconds",
	"privacy.redactSecrets",
	"log.level", "log.format",
}

// SetField sets a single config field by key name. Returns error if key is unknown.
func SetField(cfg *Config, key, value string) error {
	switch key {
	case "provider":
		cfg.Provider = value
	case "model":
		cfg.Model = value
	case "format":
		cfg.Format = value
	case "providerTimeoutSeconds":
		n, err := parseSeconds(value)
		if err != nil {
			return fmt.Errorf("providerTimeoutSeconds: %w", err)
		}
		cfg.ProviderTimeoutSeconds = n
	case "server.addr", "addr":
		cfg.Server.Addr = value
	case "server.frontendUrl", "frontendUrl":
		cfg.Server.FrontendURL = value
	case "cache.enabled":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("cache.enabled must be a boolean: %w", err)
		}
		cfg.Cache.Enabled = b
	case "cache.size":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("cache.size must be an integer: %w", err)
		}
		cfg.Cache.Size = n
	case "cache.ttlSeconds":
		n, err := strconv.Atoi(value)
		if err != nil {
			return fmt.Errorf("cache.ttlSeconds must be an integer: %w", err)
		}
		cfg.Cache.TTLSeconds = n
	case "privacy.redactSecrets":
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("privacy.redactSecrets must be a boolean: %w", err)
		}
		cfg.Privacy.RedactSecrets = b
	case "log.level":
		cfg.Log.Level = value
	case "log.format":
		cfg.Log.Format = value
	default:
		return fmt.Errorf("unknown config key: %s", key)
	}
	return nil
}
