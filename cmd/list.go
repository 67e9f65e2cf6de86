package cmd

import (
	"github.com/spf13/cobra"

	"github.com/theslyprofessor/zellij-pane-tracker/internal/model"
	"github.com/theslyprofessor/zellij-pane-tracker/internal/ui"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List tracked panes",
	Long: `List the panes the daemon last published, one per line:

  terminal_1 -> editor (nvim)

Commands are the ones the daemon last saw running; panes without one show
"shell".`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := ui.Load(model.SnapshotPath, model.InfoPath)
		if err != nil {
			return err
		}
		return ui.WriteList(cmd.OutOrStdout(), st.Rows)
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
