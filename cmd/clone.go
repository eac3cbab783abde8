package cmd

import (
	"fmt"

	"github.com/inovacc/opnr/internal/core"
	"github.com/inovacc/opnr/internal/store"
	"github.com/spf13/cobra"
)

var (
	cloneBranch string
	cloneForce  bool
	cloneNoOpen bool
)

var cloneCmd = &cobra.Command{
	Use:   "clone <url> [destination]",
	Short: "Clone a Git repository",
	Long: `Clone a Git repository and register it. Supports https, http, git, ssh
and git@ URLs.

If no destination is specified, the repository is cloned into the default
clone directory from the configuration. A stored provider token for the URL's
host is embedded into the clone URL automatically.

Use --force to remove an existing target directory and re-clone.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		db := store.GetDB()
		cfg := core.LoadConfig(db)

		opts := core.CloneOptions{
			Branch: cloneBranch,
			Force:  cloneForce,
		}
		if len(args) == 2 {
			opts.Dest = args[1]
		}

		project, err := core.Clone(cmd.Context(), db, cfg, args[0], opts)
		if err != nil {
			return err
		}

		fmt.Printf("✓ Cloned into %s\n", project.Path)

		if cloneNoOpen {
			return nil
		}

		if err := core.OpenProject(db, cfg, project, "", false); err != nil {
			return err
		}

		fmt.Printf("✓ Opened %s\n", project.Path)

		return nil
	},
}

func init() {
	rootCmd.AddCommand(cloneCmd)
	cloneCmd.Flags().StringVarP(&cloneBranch, "branch", "b", "", "Branch to check out after cloning")
	cloneCmd.Flags().BoolVarP(&cloneForce, "force", "f", false, "Remove an existing target directory and re-clone")
	cloneCmd.Flags().BoolVar(&cloneNoOpen, "no-open", false, "Skip opening the cloned project in the editor")
}
