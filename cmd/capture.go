package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var captureCmd = &cobra.Command{
	Use:   "capture <index>",
	Short: "Print the current content of a pane",
	Long: `Print the current content of terminal pane <index> to stdout.

For zellij the index is the terminal pane id (as in terminal_<index>); for
tmux it is the pane id without the "%" sigil.

Unlike the daemon's dumps this runs synchronously and reports failures.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		index, err := strconv.Atoi(args[0])
		if err != nil || index < 0 {
			return fmt.Errorf("invalid pane index %q", args[0])
		}

		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		m, err := getMultiplexer(cfg)
		if err != nil {
			return err
		}

		content, err := m.CapturePane(cmd.Context(), index)
		if err != nil {
			return fmt.Errorf("failed to capture pane %d: %w", index, err)
		}

		fmt.Fprint(cmd.OutOrStdout(), content)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(captureCmd)
}
