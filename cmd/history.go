package cmd

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/inovacc/opnr/internal/cli"
	"github.com/inovacc/opnr/internal/core"
	"github.com/inovacc/opnr/internal/model"
	"github.com/inovacc/opnr/internal/recent"
	"github.com/inovacc/opnr/internal/store"
	"github.com/spf13/cobra"
)

var historyClear bool

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recently opened projects",
	Long: `Display recently opened projects, most recent first. Enter re-opens
the selected project. Use --clear to wipe the history.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		db := store.GetDB()

		if historyClear {
			if err := recent.NewHistory[model.Project](db, store.KeyProjectHist).Clear(); err != nil {
				return err
			}

			fmt.Println("✓ History cleared")

			return nil
		}

		m := cli.NewProjectList("Recently opened", core.HistoryProjects(db))

		finalModel, err := tea.NewProgram(m).Run()
		if err != nil {
			return err
		}

		selected := finalModel.(cli.ProjectListModel).Selected()
		if selected == nil {
			return nil
		}

		return core.OpenProject(db, core.LoadConfig(db), *selected, "", false)
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
	historyCmd.Flags().BoolVar(&historyClear, "clear", false, "Clear the open history")
}
