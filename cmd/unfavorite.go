package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/opnr/internal/cli"
	"github.com/inovacc/opnr/internal/core"
	"github.com/inovacc/opnr/internal/store"
	"github.com/spf13/cobra"
)

var unfavoriteCmd = &cobra.Command{
	Use:   "unfavorite [path]",
	Short: "Remove a project from favorites",
	Long: `Remove a project from favorites. With no arguments an interactive
picker is shown over the current favorites.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db := store.GetDB()

		if len(args) == 1 {
			if err := core.UnfavoriteProject(db, args[0]); err != nil {
				return err
			}

			fmt.Printf("✓ Removed %s from favorites\n", args[0])

			return nil
		}

		m := cli.NewProjectList("Unfavorite a project", core.FavoriteProjects(db))

		finalModel, err := tea.NewProgram(m).Run()
		if err != nil {
			return err
		}

		selected := finalModel.(cli.ProjectListModel).Selected()
		if selected == nil {
			return nil
		}

		if err := core.UnfavoriteProject(db, selected.Path); err != nil {
			return err
		}

		fmt.Printf("✓ Removed %s from favorites\n", selected.Path)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(unfavoriteCmd)
}
