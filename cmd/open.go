package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/opnr/internal/cli"
	"github.com/inovacc/opnr/internal/core"
	"github.com/inovacc/opnr/internal/store"
	"github.com/spf13/cobra"
)

var (
	openEditor    string
	openNewWindow bool
)

var openCmd = &cobra.Command{
	Use:   "open [path]",
	Short: "Open a project in your configured editor",
	Long: `Open a project in your configured editor.

With no arguments an interactive picker is shown over the scanned projects.
With a path argument the directory is opened directly, bypassing the scan.

Press 'c' in the picker to copy the highlighted project path to the clipboard.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db := store.GetDB()
		cfg := core.LoadConfig(db)

		if len(args) == 1 {
			project, err := core.ProjectFromPath(args[0])
			if err != nil {
				return err
			}

			return core.OpenProject(db, cfg, project, openEditor, openNewWindow)
		}

		m := cli.NewProjectList("Projects", core.Projects(db, cfg))

		finalModel, err := tea.NewProgram(m).Run()
		if err != nil {
			return err
		}

		selected := finalModel.(cli.ProjectListModel).Selected()
		if selected == nil {
			return nil
		}

		if err := core.OpenProject(db, cfg, *selected, openEditor, openNewWindow); err != nil {
			return err
		}

		fmt.Printf("✓ Opened %s\n", selected.Path)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(openCmd)
	openCmd.Flags().StringVarP(&openEditor, "editor", "e", "", "Editor command to use instead of the configured default")
	openCmd.Flags().BoolVarP(&openNewWindow, "new-window", "n", false, "Open in a new editor window")
}
