package core

import (
	"context"
	"os"
	"path/filepath"

	"github.com/inovacc/opnr/internal/model"
	"github.com/inovacc/opnr/internal/scaffold"
)

// NewProjectOptions configures project creation.
type NewProjectOptions struct {
	// Dir overrides the default parent directory.
	Dir string

	// InitGit runs `git init` in the new project.
	InitGit bool
}

// NewProject scaffolds a project under the default clone directory (or the
// override) and returns its entry. Name validation happens before any I/O.
func NewProject(ctx context.Context, cfg model.Config, name string, opts NewProjectOptions) (model.Project, error) {
	if err := scaffold.ValidateName(name); err != nil {
		return model.Project{}, err
	}

	parent := opts.Dir
	if parent == "" {
		parent = cfg.DefaultCloneDir
	}

	parent = model.ExpandHome(parent)

	if err := os.MkdirAll(parent, os.ModePerm); err != nil {
		return model.Project{}, err
	}

	dir, err := scaffold.Create(ctx, scaffold.Options{
		Name:      name,
		ParentDir: parent,
		InitGit:   opts.InitGit,
	})
	if err != nil {
		return model.Project{}, err
	}

	p := model.Project{
		ID:   dir,
		Name: filepath.Base(dir),
		Path: dir,
		Kind: model.KindLocal,
	}

	if info, err := os.Stat(dir); err == nil {
		p.SizeBytes = info.Size()
		p.LastModified = info.ModTime()
	}

	return p, nil
}
