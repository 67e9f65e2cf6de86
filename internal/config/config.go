// Package config loads pane-tracker configuration from file and environment.
//
// Precedence (highest to lowest):
//  1. Environment variables (PANE_TRACKER_*)
//  2. Config file
//  3. Built-in defaults
//
// Config file search order:
//  1. .pane-tracker.yaml in current directory
//  2. ~/.config/pane-tracker/config.yaml
//
// The export paths under /tmp are not configurable: other tools rely on them.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)


// Config holds all pane-tracker configuration.
type Config struct {
	// Host
	Mux    string `yaml:"mux" validate:"omitempty,oneof=zellij tmux"`
	Socket string `yaml:"socket"`

	// SymlinkSkipPrefix suppresses name symlinks for panes whose sanitized
	// title starts with it. Nil means "use the multiplexer's default";
	// an explicit empty string disables suppression.
	SymlinkSkipPrefix *string `yaml:"symlink_skip_prefix"`

	// Logging
	LogLevel  string `yaml:"log_level" validate:"oneof=debug info warn error"`
	LogFormat string `yaml:"log_format" validate:"oneof=text json"`

	// Command executor
	Workers        int    `yaml:"workers" validate:"min=1,max=64"`
	QueueSize      int    `yaml:"queue_size" validate:"min=1"`
	CommandTimeout string `yaml:"command_timeout"` // Go duration string, e.g. "10s"

	// Inbound notifications
	MaxPayloadBytes int `yaml:"max_payload_bytes" validate:"min=1024"`

	// Watch view
	Refresh string `yaml:"refresh"` // Go duration string; "0"/"off" disables auto-refresh
	Theme   string `yaml:"theme" validate:"oneof=dark light"`

	// OTEL
	OTELEndpoint string `yaml:"otel_endpoint" validate:"omitempty,url"`
	OTELHeaders  string `yaml:"otel_headers"` // Comma-separated key=value pairs

	// Parsed durations (not from YAML, set after loading)
	CommandTimeoutDuration time.Duration `yaml:"-"`
	RefreshDuration        time.Duration `yaml:"-"`

	// ConfigFile is the path to the config file that was loaded (empty if none).
	ConfigFile string `yaml:"-"`
}

// Defaults returns a Config with all default values.
func Defaults() *Config {
	return &Config{
		LogLevel:        "info",
		LogFormat:       "text",
		Workers:         4,
		QueueSize:       256,
		CommandTimeout:  "10s",
		MaxPayloadBytes: 256 * 1024,
		Refresh:         "2s",
		Theme:           "dark",
	}
}

// Load reads configuration from file and environment variables.
// Environment variables always override file values.
func Load() (*Config, error) {
	cfg := Defaults()

	if path, data, err := findConfigFile(); err == nil {
		if err := cfg.applyFile(path, data); err != nil {
			return nil, err
		}
	}

	mergeEnv(cfg)

	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// LoadFile reads configuration from an explicit path, then applies the
// environment. A missing file is an error.
func LoadFile(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}
	cfg := Defaults()
	if err := cfg.applyFile(path, data); err != nil {
		return nil, err
	}
	mergeEnv(cfg)
	if err := cfg.finish(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// SkipPrefix resolves the symlink suppression prefix against the
// multiplexer's own default.
func (c *Config) SkipPrefix(muxDefault string) string {
	if c.SymlinkSkipPrefix != nil {
		return *c.SymlinkSkipPrefix
	}
	return muxDefault
}

func (c *Config) applyFile(path string, data []byte) error {
	var fileCfg Config
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return fmt.Errorf("parsing config file %s: %w", path, err)
	}
	c.ConfigFile = path
	mergeFile(c, &fileCfg)
	return nil
}

func (c *Config) finish() error {
	if err := Validate(c); err != nil {
		return err
	}

	var err error
	c.CommandTimeoutDuration, err = parseDurationOrDisable(c.CommandTimeout, 10*time.Second)
	if err != nil {
		return fmt.Errorf("invalid command timeout %q: %w", c.CommandTimeout, err)
	}
	if c.CommandTimeoutDuration == 0 {
		return fmt.Errorf("command timeout cannot be disabled")
	}
	c.RefreshDuration, err = parseDurationOrDisable(c.Refresh, 2*time.Second)
	if err != nil {
		return fmt.Errorf("invalid refresh interval %q: %w", c.Refresh, err)
	}
	return nil
}

// findConfigFile searches for a config file and returns its path and contents.
func findConfigFile() (string, []byte, error) {
	if data, err := os.ReadFile(".pane-tracker.yaml"); err == nil {
		return ".pane-tracker.yaml", data, nil
	}

	if home, err := os.UserHomeDir(); err == nil {
		path := filepath.Join(home, ".config", "pane-tracker", "config.yaml")
		if data, err := os.ReadFile(path); err == nil {
			return path, data, nil
		}
	}

	return "", nil, fmt.Errorf("no config file found")
}

// mergeFile applies non-zero file values onto cfg.
func mergeFile(cfg *Config, file *Config) {
	if file.Mux != "" {
		cfg.Mux = file.Mux
	}
	if file.Socket != "" {
		cfg.Socket = file.Socket
	}
	if file.SymlinkSkipPrefix != nil {
		cfg.SymlinkSkipPrefix = file.SymlinkSkipPrefix
	}
	if file.LogLevel != "" {
		cfg.LogLevel = file.LogLevel
	}
	if file.LogFormat != "" {
		cfg.LogFormat = file.LogFormat
	}
	if file.Workers > 0 {
		cfg.Workers = file.Workers
	}
	if file.QueueSize > 0 {
		cfg.QueueSize = file.QueueSize
	}
	if file.CommandTimeout != "" {
		cfg.CommandTimeout = file.CommandTimeout
	}
	if file.MaxPayloadBytes > 0 {
		cfg.MaxPayloadBytes = file.MaxPayloadBytes
	}
	if file.Refresh != "" {
		cfg.Refresh = file.Refresh
	}
	if file.Theme != "" {
		cfg.Theme = file.Theme
	}
	if file.OTELEndpoint != "" {
		cfg.OTELEndpoint = file.OTELEndpoint
	}
	if file.OTELHeaders != "" {
		cfg.OTELHeaders = file.OTELHeaders
	}
}

// mergeEnv applies environment variables onto cfg. Env always wins.
func mergeEnv(cfg *Config) {
	if v := os.Getenv("PANE_TRACKER_MUX"); v != "" {
		cfg.Mux = v
	}
	if v := os.Getenv("PANE_TRACKER_SOCKET"); v != "" {
		cfg.Socket = v
	}
	if v, ok := os.LookupEnv("PANE_TRACKER_SYMLINK_SKIP_PREFIX"); ok {
		cfg.SymlinkSkipPrefix = &v
	}
	if v := os.Getenv("PANE_TRACKER_LOG_LEVEL"); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := os.Getenv("PANE_TRACKER_LOG_FORMAT"); v != "" {
		cfg.LogFormat = strings.ToLower(v)
	}
	if v := os.Getenv("PANE_TRACKER_WORKERS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Workers = n
		}
	}
	if v := os.Getenv("PANE_TRACKER_QUEUE_SIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.QueueSize = n
		}
	}
	if v := os.Getenv("PANE_TRACKER_COMMAND_TIMEOUT"); v != "" {
		cfg.CommandTimeout = v
	}
	if v := os.Getenv("PANE_TRACKER_REFRESH"); v != "" {
		cfg.Refresh = v
	}
	if v := os.Getenv("PANE_TRACKER_THEME"); v != "" {
		cfg.Theme = v
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"); v != "" {
		cfg.OTELEndpoint = v
	}
	if v := os.Getenv("OTEL_EXPORTER_OTLP_HEADERS"); v != "" {
		cfg.OTELHeaders = v
	}
}

// parseDurationOrDisable parses a duration string. "0", "off", "disable" return 0.
// Empty string returns the fallback value.
func parseDurationOrDisable(s string, fallback time.Duration) (time.Duration, error) {
	if s == "" {
		return fallback, nil
	}
	if s == "0" || s == "off" || s == "disable" {
		return 0, nil
	}
	return time.ParseDuration(s)
}
