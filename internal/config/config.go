// Package config handles global client configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

// Config represents configuration stored in ~/.config/vidu/config.yml.
// Environment variables (VIDU_API_KEY, VIDU_BASE_URL) take precedence over
// the file.
type Config struct {
	APIKey              string `yaml:"api_key,omitempty"`
	BaseURL             string `yaml:"base_url,omitempty"`
	DownloadDir         string `yaml:"download_dir,omitempty"`
	TimeoutSeconds      int    `yaml:"timeout_seconds,omitempty"`
	PollIntervalSeconds int    `yaml:"poll_interval_seconds,omitempty"`
}

const (
	// ConfigDir is the directory name under XDG_CONFIG_HOME.
	ConfigDir = "vidu"
	// ConfigFile is the config file name.
	ConfigFile = "config.yml"
	// HistoryDBFile is the download ledger database file name.
	HistoryDBFile = "downloads.db"
)

// Waiting defaults and ceiling, in seconds.
const (
	DefaultTimeoutSeconds      = 300
	MaxTimeoutSeconds          = 1800
	DefaultPollIntervalSeconds = 3
)

// configCache caches the loaded config.
var configCache *Config

// Path returns the path to the config file. Respects XDG_CONFIG_HOME,
// defaults to ~/.config/vidu/config.yml.
func Path() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return filepath.Join(configHome, ConfigDir, ConfigFile)
}

// HistoryDBPath returns the path to the download ledger database.
func HistoryDBPath() string {
	p := Path()
	if p == "" {
		return ""
	}
	return filepath.Join(filepath.Dir(p), HistoryDBFile)
}

// Load loads the configuration file. Returns an empty config (not an
// error) if the file doesn't exist.
func Load() (*Config, error) {
	if configCache != nil {
		return configCache, nil
	}

	path := Path()
	if path == "" {
		return &Config{}, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("reading config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	configCache = &cfg
	return &cfg, nil
}

// ResetCache clears the cached config. Useful for testing.
func ResetCache() {
	configCache = nil
}

// Validate checks ranges that would otherwise fail much later.
func (c *Config) Validate() error {
	if c.TimeoutSeconds < 0 || c.TimeoutSeconds > MaxTimeoutSeconds {
		return fmt.Errorf("timeout_seconds must be between 0 and %d", MaxTimeoutSeconds)
	}
	if c.PollIntervalSeconds < 0 {
		return fmt.Errorf("poll_interval_seconds must not be negative")
	}
	return nil
}

// GetAPIKey returns the API key, preferring the VIDU_API_KEY environment
// variable over the config file.
func GetAPIKey() string {
	if key := os.Getenv("VIDU_API_KEY"); key != "" {
		return key
	}
	cfg, _ := Load()
	return cfg.APIKey
}

// GetBaseURL returns the API base URL, preferring the VIDU_BASE_URL
// environment variable. Empty means the client default.
func GetBaseURL() string {
	if u := os.Getenv("VIDU_BASE_URL"); u != "" {
		return u
	}
	cfg, _ := Load()
	return cfg.BaseURL
}

// GetDownloadDir returns the configured download directory, defaulting to
// ./downloads.
func GetDownloadDir() string {
	cfg, _ := Load()
	if cfg.DownloadDir != "" {
		return cfg.DownloadDir
	}
	return "downloads"
}

// GetTimeout returns the wait timeout as a duration.
func GetTimeout() time.Duration {
	cfg, _ := Load()
	seconds := cfg.TimeoutSeconds
	if seconds == 0 {
		seconds = DefaultTimeoutSeconds
	}
	return time.Duration(seconds) * time.Second
}

// GetPollInterval returns the poll interval as a duration.
func GetPollInterval() time.Duration {
	cfg, _ := Load()
	seconds := cfg.PollIntervalSeconds
	if seconds == 0 {
		seconds = DefaultPollIntervalSeconds
	}
	return time.Duration(seconds) * time.Second
}
