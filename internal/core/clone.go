package core

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/inovacc/opnr/internal/git"
	"github.com/inovacc/opnr/internal/giturl"
	"github.com/inovacc/opnr/internal/model"
	"github.com/inovacc/opnr/internal/store"
)

// CloneOptions configures the clone operation.
type CloneOptions struct {
	// Dest overrides the default clone directory.
	Dest string

	// Branch checks out a specific branch after cloning.
	Branch string

	// Force removes an existing target directory before cloning.
	Force bool
}

// PrepareClonePath validates the URL and determines the target path for
// cloning. All validation happens before any clone I/O.
func PrepareClonePath(cfg model.Config, rawURL string, opts CloneOptions) (*url.URL, string, error) {
	if !giturl.IsURL(rawURL) {
		return nil, "", &ValidationError{Field: "repository URL", Reason: rawURL}
	}

	u, err := giturl.Parse(rawURL)
	if err != nil {
		return nil, "", &ValidationError{Field: "repository URL", Reason: err.Error()}
	}

	name := giturl.RepoName(u)
	if name == "" {
		return nil, "", &ValidationError{Field: "repository URL", Reason: "missing repository name"}
	}

	pathStr := opts.Dest
	if pathStr == "" {
		pathStr = cfg.DefaultCloneDir
	}

	pathStr = model.ExpandHome(pathStr)

	if pathStr == "." || pathStr == "./" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, "", err
		}

		pathStr = wd
	}

	if err := os.MkdirAll(pathStr, os.ModePerm); err != nil {
		return nil, "", err
	}

	absPath, err := filepath.Abs(pathStr)
	if err != nil {
		return nil, "", err
	}

	savePath := filepath.Join(absPath, name)

	if info, err := os.Stat(savePath); err == nil && info.IsDir() {
		if !opts.Force {
			return nil, "", &PathCollisionError{Path: savePath}
		}

		if err := os.RemoveAll(savePath); err != nil {
			return nil, "", err
		}
	}

	return u, savePath, nil
}

// Clone runs the external git client against the prepared path, embedding
// the configured access token for the URL's provider. On failure nothing
// is recorded: no registry entry, no history.
func Clone(ctx context.Context, kv store.Store, cfg model.Config, rawURL string, opts CloneOptions) (model.Project, error) {
	u, savePath, err := PrepareClonePath(cfg, rawURL, opts)
	if err != nil {
		return model.Project{}, err
	}

	cloneURL := giturl.WithToken(u, cfg.Tokens[u.Hostname()])

	if err := git.NewClient().Clone(ctx, cloneURL.String(), savePath, opts.Branch); err != nil {
		return model.Project{}, err
	}

	if err := SaveClonedRepo(kv, u, savePath, opts.Branch); err != nil {
		return model.Project{}, err
	}

	p := model.Project{
		ID:           savePath,
		Name:         filepath.Base(savePath),
		Path:         savePath,
		Kind:         model.KindRemote,
		GitRemoteURL: u.String(),
		ClonedAt:     time.Now(),
	}

	if info, err := os.Stat(savePath); err == nil {
		p.SizeBytes = info.Size()
		p.LastModified = info.ModTime()
	}

	return p, nil
}
