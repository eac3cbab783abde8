// Package store provides the persistent key-value storage used by the app.
//
// Every persisted state slot (config, project favorites/history, host
// favorites/history, scan cache, clone registry) is one named key holding a
// JSON payload. Keeping the capability surface this small lets the backend
// (bbolt or SQLite) be swapped without touching any caller.
package store

import (
	"os"
	"path/filepath"
	"sync"

	"github.com/inovacc/opnr/internal/params"
)

// Store is the key-value capability used by all persistence in the app.
// Get returns (nil, nil) for a missing key.
type Store interface {
	Get(key string) ([]byte, error)
	Put(key string, value []byte) error
	Delete(key string) error
	Close() error
}

// Well-known slot names.
const (
	KeyConfig        = "config"
	KeyProjectHist   = "projects:history"
	KeyProjectFavs   = "projects:favorites"
	KeyHostHist      = "hosts:history"
	KeyHostFavs      = "hosts:favorites"
	KeyCloneRegistry = "repos:registry"
)

var (
	once sync.Once
	db   Store
)

// GetDB returns the initialized database store. The backend defaults to
// SQLite; set OPNR_STORE=bolt to use bbolt instead.
func GetDB() Store {
	once.Do(lazyInit)

	return db
}

func lazyInit() {
	instance, err := initDB()
	if err != nil {
		panic(err)
	}

	db = instance
}

func initDB() (Store, error) {
	if os.Getenv("OPNR_STORE") == "bolt" {
		return NewBolt(filepath.Join(params.AppdataDir, "opnr.bolt"))
	}

	return NewSQLite(filepath.Join(params.AppdataDir, "opnr.db"))
}
