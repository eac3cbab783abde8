package cmd

import (
	"fmt"
	"os"

	"github.com/inovacc/opnr/internal/core"
	"github.com/inovacc/opnr/internal/store"
	"github.com/spf13/cobra"
)

var clonesCmd = &cobra.Command{
	Use:   "clones",
	Short: "List repositories cloned through opnr",
	RunE: func(cmd *cobra.Command, args []string) error {
		repos := core.ClonedRepos(store.GetDB())

		if len(repos) == 0 {
			_, _ = fmt.Fprintln(os.Stdout, "No cloned repositories yet. Use 'opnr clone <url>' to add one.")

			return nil
		}

		for _, r := range repos {
			branch := ""
			if r.Branch != "" {
				branch = " [" + r.Branch + "]"
			}

			_, _ = fmt.Fprintf(os.Stdout, "%s%s\n  %s\n  cloned %s\n", r.URL, branch, r.Path, r.ClonedAt.Format("2006-01-02 15:04"))
		}

		return nil
	},
}

func init() {
	rootCmd.AddCommand(clonesCmd)
}
