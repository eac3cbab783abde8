package core

import (
	"path/filepath"

	"github.com/inovacc/opnr/internal/model"
	"github.com/inovacc/opnr/internal/recent"
	"github.com/inovacc/opnr/internal/store"
)

// FavoriteProject adds the directory to the favorites list. Adding an
// already-favorite path is a no-op.
func FavoriteProject(kv store.Store, path string) error {
	p, err := ProjectFromPath(path)
	if err != nil {
		return err
	}

	return recent.NewFavorites[model.Project](kv, store.KeyProjectFavs).Add(p)
}

// UnfavoriteProject removes the directory from the favorites list.
func UnfavoriteProject(kv store.Store, path string) error {
	abs, err := filepath.Abs(model.ExpandHome(path))
	if err != nil {
		return err
	}

	return recent.NewFavorites[model.Project](kv, store.KeyProjectFavs).Remove(abs)
}

// IsFavorite reports favorites membership for a project path.
func IsFavorite(kv store.Store, path string) bool {
	return recent.NewFavorites[model.Project](kv, store.KeyProjectFavs).IsFavorite(path)
}
