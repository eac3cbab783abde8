// Package scaffold creates new project directories with starter files.
package scaffold

import (
	"context"
	"embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/inovacc/opnr/internal/git"
)

//go:embed templates/README.md.tmpl templates/gitignore.tmpl
var templatesFS embed.FS

// Options configures project creation.
type Options struct {
	// Name is the project directory name. Validated before any I/O.
	Name string

	// ParentDir is the directory the project is created under.
	ParentDir string

	// InitGit runs `git init` in the new directory.
	InitGit bool
}

// ValidateName rejects names that are empty or would escape the parent
// directory. Runs before any filesystem access.
func ValidateName(name string) error {
	name = strings.TrimSpace(name)

	if name == "" {
		return fmt.Errorf("project name is required")
	}

	if strings.ContainsAny(name, `/\`) || name == "." || name == ".." {
		return fmt.Errorf("invalid project name: %q", name)
	}

	return nil
}

// Create builds the project directory with a README and .gitignore and
// returns its path. The target must not already exist.
func Create(ctx context.Context, opts Options) (string, error) {
	if err := ValidateName(opts.Name); err != nil {
		return "", err
	}

	name := strings.TrimSpace(opts.Name)
	dir := filepath.Join(opts.ParentDir, name)

	if _, err := os.Stat(dir); err == nil {
		return "", fmt.Errorf("directory already exists: %s", dir)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("creating project directory: %w", err)
	}

	if err := writeReadme(dir, name); err != nil {
		return "", err
	}

	if err := writeGitignore(dir); err != nil {
		return "", err
	}

	if opts.InitGit {
		if err := git.NewClient().Init(ctx, dir); err != nil {
			return "", err
		}
	}

	return dir, nil
}

func writeReadme(dir, name string) error {
	tmpl, err := template.ParseFS(templatesFS, "templates/README.md.tmpl")
	if err != nil {
		return err
	}

	f, err := os.Create(filepath.Join(dir, "README.md"))
	if err != nil {
		return fmt.Errorf("creating README.md: %w", err)
	}
	defer func() { _ = f.Close() }()

	return tmpl.Execute(f, struct{ Name string }{Name: name})
}

func writeGitignore(dir string) error {
	data, err := templatesFS.ReadFile("templates/gitignore.tmpl")
	if err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), data, 0644); err != nil {
		return fmt.Errorf("creating .gitignore: %w", err)
	}

	return nil
}
