package core

import (
	"encoding/json"
	"net/url"
	"time"

	"github.com/google/uuid"
	"github.com/inovacc/opnr/internal/model"
	"github.com/inovacc/opnr/internal/store"
)

// SaveClonedRepo records a completed clone in the registry. Records with a
// duplicate URL or path are left untouched.
func SaveClonedRepo(kv store.Store, u *url.URL, path, branch string) error {
	repos := ClonedRepos(kv)

	for _, r := range repos {
		if r.URL == u.String() || r.Path == path {
			return nil
		}
	}

	repos = append(repos, model.Repository{
		UID:      uuid.New().String(),
		URL:      u.String(),
		Path:     path,
		Branch:   branch,
		ClonedAt: time.Now(),
	})

	data, err := json.Marshal(repos)
	if err != nil {
		return err
	}

	return kv.Put(store.KeyCloneRegistry, data)
}

// ClonedRepos returns all registry records. A missing or corrupt slot reads
// as empty.
func ClonedRepos(kv store.Store) []model.Repository {
	data, err := kv.Get(store.KeyCloneRegistry)
	if err != nil || data == nil {
		return nil
	}

	var repos []model.Repository

	if err := json.Unmarshal(data, &repos); err != nil {
		return nil
	}

	return repos
}
