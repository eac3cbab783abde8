package core

import (
	"log"
	"os"
	"path/filepath"

	"github.com/inovacc/opnr/internal/cache"
	"github.com/inovacc/opnr/internal/launch"
	"github.com/inovacc/opnr/internal/model"
	"github.com/inovacc/opnr/internal/recent"
	"github.com/inovacc/opnr/internal/scanner"
	"github.com/inovacc/opnr/internal/store"
)

// Projects returns the scanned project list, served from the cache when a
// fresh record exists, decorated with favorites membership and last access
// times for display.
func Projects(kv store.Store, cfg model.Config) []model.Project {
	sc := ScanConfigFrom(cfg)
	c := cache.New(kv, sc)

	projects, ok := c.Get()
	if !ok {
		projects = scanner.Scan(sc)

		if err := c.Set(projects); err != nil {
			log.Printf("failed to cache scan results: %v", err)
		}
	}

	return decorate(kv, projects)
}

// Refresh invalidates the cache and rescans.
func Refresh(kv store.Store, cfg model.Config) []model.Project {
	if err := cache.New(kv, ScanConfigFrom(cfg)).Invalidate(); err != nil {
		log.Printf("failed to invalidate cache: %v", err)
	}

	return Projects(kv, cfg)
}

// FavoriteProjects returns the favorites list decorated with access times.
func FavoriteProjects(kv store.Store) []model.Project {
	return decorate(kv, recent.NewFavorites[model.Project](kv, store.KeyProjectFavs).List())
}

// HistoryProjects returns the history list, most recent first.
func HistoryProjects(kv store.Store) []model.Project {
	favs := recent.NewFavorites[model.Project](kv, store.KeyProjectFavs)

	entries := recent.NewHistory[model.Project](kv, store.KeyProjectHist).List()
	for i := range entries {
		entries[i].Favorite = favs.IsFavorite(entries[i].ID)
	}

	return entries
}

func decorate(kv store.Store, projects []model.Project) []model.Project {
	favs := recent.NewFavorites[model.Project](kv, store.KeyProjectFavs)
	hist := recent.NewHistory[model.Project](kv, store.KeyProjectHist)

	accessed := make(map[string]model.Project)

	for _, h := range hist.List() {
		accessed[h.ID] = h
	}

	for i := range projects {
		projects[i].Favorite = favs.IsFavorite(projects[i].ID)

		if h, ok := accessed[projects[i].ID]; ok {
			projects[i].LastAccessed = h.LastAccessed
		}
	}

	return projects
}

// ProjectFromPath builds a Project for an explicitly given directory,
// bypassing the scanner.
func ProjectFromPath(path string) (model.Project, error) {
	path = model.ExpandHome(path)

	abs, err := filepath.Abs(path)
	if err != nil {
		return model.Project{}, err
	}

	info, err := os.Stat(abs)
	if err != nil {
		return model.Project{}, err
	}

	if !info.IsDir() {
		return model.Project{}, &NotADirectoryError{Path: abs}
	}

	return model.Project{
		ID:           abs,
		Name:         filepath.Base(abs),
		Path:         abs,
		Kind:         model.KindLocal,
		SizeBytes:    info.Size(),
		LastModified: info.ModTime(),
	}, nil
}

// OpenProject launches the editor against the project and records the
// access in history. A failed launch records nothing.
func OpenProject(kv store.Store, cfg model.Config, p model.Project, editorCmd string, newWindow bool) error {
	editor := editorCmd
	if editor == "" {
		editor = cfg.Editor
	}

	if !launch.IsInstalled(editor) {
		return &EditorNotInstalledError{Command: editor}
	}

	if err := launch.Open(editor, p.Path, newWindow || cfg.OpenInNewWindow); err != nil {
		return err
	}

	if err := recent.NewHistory[model.Project](kv, store.KeyProjectHist).Add(p); err != nil {
		log.Printf("failed to record history: %v", err)
	}

	return nil
}
