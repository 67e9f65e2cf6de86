package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/theslyprofessor/zellij-pane-tracker/internal/events"
	"github.com/theslyprofessor/zellij-pane-tracker/internal/model"
)

var flagManifestFile string

var notifyCmd = &cobra.Command{
	Use:   "notify",
	Short: "Send a notification to the running daemon",
	Long: `Send a notification datagram to the daemon started with "pane-tracker run".

Hosts call this on every pane change (pane-update) and when the user asks
for a full capture (capture).`,
}

var notifyPaneUpdateCmd = &cobra.Command{
	Use:   "pane-update",
	Short: "Send a pane manifest",
	Long: `Send a pane manifest read from --file, or from stdin when --file is "-" or
unset. The manifest is the host's pane list grouped by tab:

  {"panes": {"0": [{"id": 1, "title": "editor", "is_plugin": false, ...}]}}`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		var r io.Reader = cmd.InOrStdin()
		if flagManifestFile != "" && flagManifestFile != "-" {
			f, err := os.Open(flagManifestFile)
			if err != nil {
				return fmt.Errorf("open manifest: %w", err)
			}
			defer f.Close()
			r = f
		}

		var m model.Manifest
		if err := json.NewDecoder(r).Decode(&m); err != nil {
			return fmt.Errorf("decode manifest: %w", err)
		}
		return events.Send(socketPath(cfg), events.PaneUpdate(m))
	},
}

var notifyCaptureCmd = &cobra.Command{
	Use:   "capture",
	Short: "Request a full capture",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		return events.Send(socketPath(cfg), events.CaptureRequest())
	},
}

func init() {
	notifyPaneUpdateCmd.Flags().StringVarP(&flagManifestFile, "file", "f", "", `manifest file ("-" for stdin)`)
	notifyCmd.AddCommand(notifyPaneUpdateCmd, notifyCaptureCmd)
	rootCmd.AddCommand(notifyCmd)
}
