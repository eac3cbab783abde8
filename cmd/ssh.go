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
	sshEditor    string
	sshNewWindow bool
	sshFavorite  bool
)

var sshCmd = &cobra.Command{
	Use:   "ssh [user@host[:port]]",
	Short: "Open a remote host in your editor over SSH",
	Long: `Open a remote development host in your editor over SSH.

With no arguments an interactive picker is shown over previously used and
favorited hosts. With a user@host[:port] argument the host is opened
directly and recorded in the host history.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db := store.GetDB()
		cfg := core.LoadConfig(db)

		if len(args) == 1 {
			h, err := core.ParseHost(args[0])
			if err != nil {
				return err
			}

			if sshFavorite {
				if err := core.FavoriteHost(db, h); err != nil {
					return err
				}
			}

			return core.OpenHost(db, cfg, h, sshEditor, sshNewWindow)
		}

		hosts := core.Hosts(db)
		if len(hosts) == 0 {
			return fmt.Errorf("no known hosts yet; run 'opnr ssh user@host' first")
		}

		m := cli.NewHostList("SSH hosts", hosts)

		finalModel, err := tea.NewProgram(m).Run()
		if err != nil {
			return err
		}

		selected := finalModel.(cli.HostListModel).Selected()
		if selected == nil {
			return nil
		}

		return core.OpenHost(db, cfg, *selected, sshEditor, sshNewWindow)
	},
}

func init() {
	rootCmd.AddCommand(sshCmd)
	sshCmd.Flags().StringVarP(&sshEditor, "editor", "e", "", "Editor command to use instead of the configured default")
	sshCmd.Flags().BoolVarP(&sshNewWindow, "new-window", "n", false, "Open in a new editor window")
	sshCmd.Flags().BoolVar(&sshFavorite, "favorite", false, "Also mark the host as favorite")
}
