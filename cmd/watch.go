package cmd

import (
	"github.com/spf13/cobra"

	"github.com/theslyprofessor/zellij-pane-tracker/internal/config"
	"github.com/theslyprofessor/zellij-pane-tracker/internal/model"
	"github.com/theslyprofessor/zellij-pane-tracker/internal/ui"
)

var flagTheme string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Interactive view of tracked panes",
	Long: `Show the tracked panes in a terminal UI, re-reading the published files
every refresh interval (config "refresh", default 2s).

Keys: c capture all panes, r refresh, q quit, up/down move.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		w := &ui.Watch{
			SnapshotPath:    model.SnapshotPath,
			InfoPath:        model.InfoPath,
			RefreshInterval: cfg.RefreshDuration,
			ThemeName:       themeName(cfg),
			SocketPath:      socketPath(cfg),
		}
		return w.Run()
	},
}

func init() {
	watchCmd.Flags().StringVar(&flagTheme, "theme", "", "color theme: dark, light (default: config)")
	rootCmd.AddCommand(watchCmd)
}

func themeName(cfg *config.Config) string {
	if flagTheme != "" {
		return flagTheme
	}
	return cfg.Theme
}
