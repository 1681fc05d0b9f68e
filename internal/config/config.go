// Package config loads and validates courier configuration from TOML.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

//go:embed sample_config.toml
var sampleConfig string

// Logging contains configuration for log output.
type Logging struct {
	Level  string `toml:"level"`
	Format string `toml:"format"`
}

// Notify contains defaults for the notification dispatcher.
type Notify struct {
	// Channels is the default channel set used when none are given on the
	// command line.
	Channels []string `toml:"channels"`
}

// Report contains defaults for the reporting pipeline.
type Report struct {
	Format       string `toml:"format"`
	Delivery     string `toml:"delivery"`
	Recipient    string `toml:"recipient"`
	CloudBaseURL string `toml:"cloud_base_url"`
}

// Config is the root configuration for courier.
type Config struct {
	Logging Logging `toml:"logging"`
	Notify  Notify  `toml:"notify"`
	Report  Report  `toml:"report"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Logging: Logging{
			Level:  "info",
			Format: "",
		},
		Notify: Notify{
			Channels: []string{"email"},
		},
		Report: Report{
			Format:       "pdf",
			Delivery:     "email",
			Recipient:    "admin@company.com",
			CloudBaseURL: "https://cloud.company.com/reports",
		},
	}
}

// DefaultPath returns the conventional config file location.
func DefaultPath() (string, error) {
	base, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("resolve user config dir: %w", err)
	}
	return filepath.Join(base, "courier", "config.toml"), nil
}

// Load reads the config at path, falling back to defaults when the file
// does not exist. An empty path resolves to DefaultPath.
func Load(path string) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		resolved, err := DefaultPath()
		if err != nil {
			return nil, err
		}
		path = resolved
	}

	cfg := Default()
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return &cfg, nil
		}
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config %s: %w", path, err)
	}
	return &cfg, nil
}

// Validate checks the configuration for values that cannot be acted on.
func (c *Config) Validate() error {
	switch strings.ToLower(strings.TrimSpace(c.Logging.Level)) {
	case "", "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("logging.level: unsupported value %q", c.Logging.Level)
	}
	switch strings.ToLower(strings.TrimSpace(c.Logging.Format)) {
	case "", "console", "json":
	default:
		return fmt.Errorf("logging.format: unsupported value %q", c.Logging.Format)
	}
	if len(c.Notify.Channels) == 0 {
		return errors.New("notify.channels: at least one channel is required")
	}
	for _, channel := range c.Notify.Channels {
		if strings.TrimSpace(channel) == "" {
			return errors.New("notify.channels: empty channel key")
		}
	}
	if strings.TrimSpace(c.Report.Recipient) == "" {
		return errors.New("report.recipient: value is required")
	}
	if strings.TrimSpace(c.Report.CloudBaseURL) == "" {
		return errors.New("report.cloud_base_url: value is required")
	}
	return nil
}

// WriteSample writes the annotated sample config to path, creating parent
// directories as needed. It refuses to overwrite an existing file.
func WriteSample(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config already exists at %s", path)
	} else if !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("stat config %s: %w", path, err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("create config dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(sampleConfig), 0o644); err != nil {
		return fmt.Errorf("write config %s: %w", path, err)
	}
	return nil
}

// Sample returns the embedded sample configuration text.
func Sample() string {
	return sampleConfig
}
