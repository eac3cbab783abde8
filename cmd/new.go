package cmd

import (
	"fmt"

	"github.com/inovacc/opnr/internal/core"
	"github.com/inovacc/opnr/internal/store"
	"github.com/spf13/cobra"
)

var (
	newDir    string
	newGit    bool
	newNoOpen bool
)

var newCmd = &cobra.Command{
	Use:   "new <name>",
	Short: "Scaffold a new project",
	Long: `Create a new project directory with a starter README and .gitignore.

The project is created under the default clone directory unless --dir is
given. Use --git to initialize a Git repository in it.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		db := store.GetDB()
		cfg := core.LoadConfig(db)

		opts := core.NewProjectOptions{
			Dir:     newDir,
			InitGit: newGit,
		}

		project, err := core.NewProject(cmd.Context(), cfg, args[0], opts)
		if err != nil {
			return err
		}

		fmt.Printf("✓ Created %s\n", project.Path)

		if newNoOpen {
			return nil
		}

		return core.OpenProject(db, cfg, project, "", false)
	},
}

func init() {
	rootCmd.AddCommand(newCmd)
	newCmd.Flags().StringVarP(&newDir, "dir", "d", "", "Parent directory for the new project")
	newCmd.Flags().BoolVar(&newGit, "git", false, "Initialize a Git repository")
	newCmd.Flags().BoolVar(&newNoOpen, "no-open", false, "Skip opening the new project in the editor")
}
