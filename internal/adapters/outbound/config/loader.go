// Package config loads client configuration from defaults, an
// optional .facturo.yaml file and FACTURO_* environment variables,
// in that order of precedence (environment wins).
package config

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"
)

const (
	envPrefix = "facturo"
	fileName  = ".facturo.yaml"
)

// Config holds everything the client needs to reach the billing API
// and write its artifacts.
type Config struct {
	APIURL         string        `envconfig:"API_URL"`
	RequestTimeout time.Duration `envconfig:"REQUEST_TIMEOUT"`
	DownloadDir    string        `envconfig:"DOWNLOAD_DIR"`
	LogFile        string        `envconfig:"LOG_FILE"`
	LogFormat      string        `envconfig:"LOG_FORMAT"`
	LogLevel       string        `envconfig:"LOG_LEVEL"`
}

// Default returns the configuration used when nothing is overridden.
func Default() Config {
	return Config{
		APIURL:         "http://localhost:8001",
		RequestTimeout: 30 * time.Second,
		DownloadDir:    ".",
		LogFormat:      "text",
		LogLevel:       "info",
	}
}

// Load resolves the effective configuration. A .facturo.yaml in the
// working directory takes precedence over one in the home directory;
// environment variables override both.
func Load() (Config, error) {
	cfg := Default()

	if path, ok := findFile(); ok {
		if err := overlayFile(&cfg, path); err != nil {
			return Config{}, err
		}
	}

	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("reading environment: %w", err)
	}

	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// LoadFile resolves configuration from an explicit file, still letting
// the environment override.
func LoadFile(path string) (Config, error) {
	cfg := Default()
	if err := overlayFile(&cfg, path); err != nil {
		return Config{}, err
	}
	if err := envconfig.Process(envPrefix, &cfg); err != nil {
		return Config{}, fmt.Errorf("reading environment: %w", err)
	}
	if err := cfg.validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func findFile() (string, bool) {
	if wd, err := os.Getwd(); err == nil {
		p := filepath.Join(wd, fileName)
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
	}
	if home, err := os.UserHomeDir(); err == nil {
		p := filepath.Join(home, fileName)
		if _, err := os.Stat(p); err == nil {
			return p, true
		}
	}
	return "", false
}

// fileConfig mirrors Config for the YAML file, with the timeout as a
// duration string so the file stays human-editable.
type fileConfig struct {
	APIURL         string `yaml:"api_url"`
	RequestTimeout string `yaml:"request_timeout"`
	DownloadDir    string `yaml:"download_dir"`
	LogFile        string `yaml:"log_file"`
	LogFormat      string `yaml:"log_format"`
	LogLevel       string `yaml:"log_level"`
}

// overlayFile applies the values present in the file; absent fields
// keep their current values.
func overlayFile(cfg *Config, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}

	var fc fileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	if fc.APIURL != "" {
		cfg.APIURL = fc.APIURL
	}
	if fc.RequestTimeout != "" {
		d, err := time.ParseDuration(fc.RequestTimeout)
		if err != nil {
			return fmt.Errorf("invalid request_timeout in %s: %w", path, err)
		}
		cfg.RequestTimeout = d
	}
	if fc.DownloadDir != "" {
		cfg.DownloadDir = fc.DownloadDir
	}
	if fc.LogFile != "" {
		cfg.LogFile = fc.LogFile
	}
	if fc.LogFormat != "" {
		cfg.LogFormat = fc.LogFormat
	}
	if fc.LogLevel != "" {
		cfg.LogLevel = fc.LogLevel
	}
	return nil
}

func (c Config) validate() error {
	u, err := url.Parse(c.APIURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("invalid api url %q", c.APIURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("invalid api url %q: scheme must be http or https", c.APIURL)
	}
	if c.RequestTimeout <= 0 {
		return errors.New("request timeout must be positive")
	}
	switch c.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid log format %q: must be text or json", c.LogFormat)
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("invalid log level %q", c.LogLevel)
	}
	return nil
}

// Level converts the configured log level for slog handlers.
func (c Config) Level() slog.Level {
	switch c.LogLevel {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
