package cmd

import (
	"github.com/spf13/cobra"
)

var configEditorCmd = &cobra.Command{
	Use:   "editor",
	Short: "Manage custom editors",
	Long: `Commands for managing custom editors.

Custom editors are added to the list of editors offered when opening a
project.

Available Commands:
  add       Add a new custom editor
  remove    Remove a custom editor
  list      List all editors (default + custom)

Examples:
  opnr config editor add --name "My Editor" --command myeditor
  opnr config editor remove "My Editor"
  opnr config editor list`,
	Run: func(cmd *cobra.Command, args []string) {
		_ = cmd.Help()
	},
}

func init() {
	configCmd.AddCommand(configEditorCmd)
}
