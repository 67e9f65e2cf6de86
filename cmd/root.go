package cmd

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/theslyprofessor/zellij-pane-tracker/internal/config"
	"github.com/theslyprofessor/zellij-pane-tracker/internal/events"
	"github.com/theslyprofessor/zellij-pane-tracker/internal/logging"
	"github.com/theslyprofessor/zellij-pane-tracker/internal/mux"
)

// Version is injected at build time with -ldflags "-X ...cmd.Version=v1.2.3".
var Version = "dev"

var (
	// Global flags.
	flagMux       string
	flagConfig    string
	flagLogLevel  string
	flagLogFormat string
	flagSocket    string
)

var rootCmd = &cobra.Command{
	Use:   "pane-tracker",
	Short: "Track terminal multiplexer pane names and publish them as files",
	Long: `pane-tracker keeps a live table of pane names and running commands for a
zellij (or tmux) session and republishes it under /tmp:

  /tmp/zj-pane-names.json   name snapshot, rewritten on every pane change
  /tmp/zj-pane-<N>.txt      content dump of terminal pane N
  /tmp/zj-<name>.txt        symlink to the dump of the pane called <name>
  /tmp/zj-panes-info.json   per-pane metadata, written on a capture request

The host pushes pane manifests to the daemon ("pane-tracker run") over a unix
socket, using "pane-tracker notify".`,
	SilenceUsage: true,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagMux, "mux", "", "terminal multiplexer: zellij, tmux (default: config, then auto-detect)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", envOrDefault("PANE_TRACKER_CONFIG", ""), "path to a config file (default: .pane-tracker.yaml, then ~/.config/pane-tracker/config.yaml)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "", "log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFormat, "log-format", "", "log format: text, json")
	rootCmd.PersistentFlags().StringVar(&flagSocket, "socket", "", "unix datagram socket the daemon listens on")
}

// loadConfig loads the configuration and applies command-line overrides,
// which win over both file and environment.
func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if flagConfig != "" {
		cfg, err = config.LoadFile(flagConfig)
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	if flagMux != "" {
		cfg.Mux = flagMux
	}
	if flagLogLevel != "" {
		cfg.LogLevel = flagLogLevel
	}
	if flagLogFormat != "" {
		cfg.LogFormat = flagLogFormat
	}
	if flagSocket != "" {
		cfg.Socket = flagSocket
	}
	if err := config.Validate(cfg); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}
	return cfg, nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	return logging.New(cfg.LogLevel, cfg.LogFormat, os.Stderr)
}

// getMultiplexer returns the configured or auto-detected multiplexer.
func getMultiplexer(cfg *config.Config) (mux.Multiplexer, error) {
	if cfg.Mux != "" {
		return mux.FromName(cfg.Mux)
	}
	return mux.Detect()
}

func socketPath(cfg *config.Config) string {
	if cfg.Socket != "" {
		return cfg.Socket
	}
	return events.DefaultSocketPath()
}

func envOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
