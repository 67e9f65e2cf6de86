package cmd

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/theslyprofessor/zellij-pane-tracker/internal/events"
	"github.com/theslyprofessor/zellij-pane-tracker/internal/executor"
	telem "github.com/theslyprofessor/zellij-pane-tracker/internal/otel"
	"github.com/theslyprofessor/zellij-pane-tracker/internal/tracker"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the tracker daemon",
	Long: `Run the tracker daemon in the foreground.

The daemon listens on a unix datagram socket for pane_update and capture
notifications, keeps the pane name table current and republishes it under
/tmp. It stops on SIGINT or SIGTERM after draining queued commands.

Configuration is loaded from .pane-tracker.yaml or environment variables.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDaemon(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runDaemon(parent context.Context) error {
	if parent == nil {
		parent = context.Background()
	}
	ctx, stop := signal.NotifyContext(parent, os.Interrupt, syscall.SIGTERM)
	defer stop()

	cfg, err := loadConfig()
	if err != nil {
		return err
	}
	logger := newLogger(cfg)
	if cfg.ConfigFile != "" {
		logger.Info("config loaded", "path", cfg.ConfigFile)
	}

	// Wire build version into OTEL service metadata
	telem.Version = Version

	tel, err := telem.Init(ctx, telem.OTELConfig{
		Endpoint: cfg.OTELEndpoint,
		Headers:  cfg.OTELHeaders,
	})
	if err != nil {
		logger.Warn("otel init failed", "error", err)
	}
	var metrics *telem.Metrics
	if tel != nil {
		defer tel.Shutdown(context.Background())
		metrics = tel.Metrics
	}

	m, err := getMultiplexer(cfg)
	if err != nil {
		return fmt.Errorf("no supported terminal multiplexer found: %w", err)
	}

	shell := executor.NewShell(executor.ShellConfig{
		Workers:   cfg.Workers,
		QueueSize: cfg.QueueSize,
		Timeout:   cfg.CommandTimeoutDuration,
		Logger:    logger,
		Metrics:   metrics,
	})
	defer shell.Close()

	skip := cfg.SkipPrefix(m.DefaultTitlePrefix())
	t := tracker.New(tracker.Options{
		Executor: shell,
		Dumper:   m,
		Symlink:  tracker.SkipPrefix(skip),
		Logger:   logger,
		Metrics:  metrics,
	})

	notes := make(chan events.Notification, 16)
	collector := events.NewCollector(notes, socketPath(cfg))
	collector.MaxPayloadBytes = cfg.MaxPayloadBytes
	collector.Logger = logger
	collector.Metrics = metrics
	if err := collector.Start(ctx); err != nil {
		return fmt.Errorf("notification collector: %w", err)
	}

	logger.Info("pane tracker started",
		"mux", m.Name(),
		"socket", collector.SocketPath(),
		"symlink_skip_prefix", skip,
		"workers", cfg.Workers,
		"otel", tel.Enabled(),
	)

	err = t.Run(ctx, notes)
	<-collector.Done()
	logger.Info("pane tracker stopped")
	if err != nil && ctx.Err() != nil {
		return nil
	}
	return err
}
