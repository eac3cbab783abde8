// Package cache memoizes scan results so repeated opens do not re-walk the
// disk. One record is kept per scan configuration, expiring after 24 hours
// or on explicit invalidation.
package cache

import (
	"encoding/json"
	"time"

	"github.com/inovacc/opnr/internal/model"
	"github.com/inovacc/opnr/internal/scanner"
	"github.com/inovacc/opnr/internal/store"
)

// TTL is how long a stored scan result remains valid.
const TTL = 24 * time.Hour

type record struct {
	Projects  []model.Project `json:"projects"`
	WrittenAt time.Time       `json:"written_at"`
}

// Cache is a time-boxed slot for one scan configuration's project list.
type Cache struct {
	kv  store.Store
	key string
	ttl time.Duration

	// now is swapped out in tests
	now func() time.Time
}

// New returns the cache slot for the given scan configuration.
func New(kv store.Store, cfg scanner.Config) *Cache {
	return &Cache{
		kv:  kv,
		key: "cache:" + cfg.Hash(),
		ttl: TTL,
		now: time.Now,
	}
}

// Get returns the stored project list, or false when no record exists, the
// record is older than the TTL, or the payload cannot be decoded.
// The list is returned verbatim; it is not re-validated against the disk.
func (c *Cache) Get() ([]model.Project, bool) {
	data, err := c.kv.Get(c.key)
	if err != nil || data == nil {
		return nil, false
	}

	var rec record

	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, false
	}

	if c.now().Sub(rec.WrittenAt) > c.ttl {
		return nil, false
	}

	return rec.Projects, true
}

// Set overwrites the record unconditionally, stamped with the current time.
func (c *Cache) Set(projects []model.Project) error {
	data, err := json.Marshal(record{
		Projects:  projects,
		WrittenAt: c.now(),
	})
	if err != nil {
		return err
	}

	return c.kv.Put(c.key, data)
}

// Invalidate removes the record.
func (c *Cache) Invalidate() error {
	return c.kv.Delete(c.key)
}
