// Package recent tracks previously opened entries: a most-recent-first
// history with a fixed cap, and an insertion-ordered favorites list.
//
// Both lists persist denormalized copies of their entries in one JSON slot
// of the key-value store; later filesystem changes do not rewrite stored
// copies. Reads and writes are plain sequential KV operations, so two
// concurrent add operations can race and drop one update. That is an
// accepted limitation for a single-user interactive tool.
package recent

import (
	"encoding/json"
	"time"

	"github.com/inovacc/opnr/internal/store"
)

// HistoryCap bounds how many entries history keeps.
const HistoryCap = 50

// Entry is an item the lists can hold. Key identifies the entry for
// deduplication; WithAccessTime returns a copy stamped for history.
type Entry[T any] interface {
	Key() string
	WithAccessTime(t time.Time) T
}

// History is a most-recent-first list with dedup by key and a fixed cap.
type History[T Entry[T]] struct {
	kv   store.Store
	slot string
	cap  int

	now func() time.Time
}

// NewHistory returns the history list stored under the given slot.
func NewHistory[T Entry[T]](kv store.Store, slot string) *History[T] {
	return &History[T]{kv: kv, slot: slot, cap: HistoryCap, now: time.Now}
}

// List returns the entries, most recent first. A missing or corrupt slot
// reads as empty.
func (h *History[T]) List() []T {
	return load[T](h.kv, h.slot)
}

// Add records an access: any existing entry with the same key is removed,
// a copy stamped with the current time is prepended, and the list is
// truncated to the cap.
func (h *History[T]) Add(e T) error {
	entries := load[T](h.kv, h.slot)

	kept := make([]T, 0, len(entries)+1)
	kept = append(kept, e.WithAccessTime(h.now()))

	for _, x := range entries {
		if x.Key() == e.Key() {
			continue
		}

		kept = append(kept, x)
	}

	if len(kept) > h.cap {
		kept = kept[:h.cap]
	}

	return save(h.kv, h.slot, kept)
}

// Remove drops the entry with the given key, if present.
func (h *History[T]) Remove(key string) error {
	entries := load[T](h.kv, h.slot)

	kept := entries[:0]

	for _, x := range entries {
		if x.Key() != key {
			kept = append(kept, x)
		}
	}

	return save(h.kv, h.slot, kept)
}

// Clear empties the list.
func (h *History[T]) Clear() error {
	return h.kv.Delete(h.slot)
}

// Favorites is an insertion-ordered list with idempotent adds and no cap.
type Favorites[T Entry[T]] struct {
	kv   store.Store
	slot string
}

// NewFavorites returns the favorites list stored under the given slot.
func NewFavorites[T Entry[T]](kv store.Store, slot string) *Favorites[T] {
	return &Favorites[T]{kv: kv, slot: slot}
}

// List returns the entries in insertion order. A missing or corrupt slot
// reads as empty.
func (f *Favorites[T]) List() []T {
	return load[T](f.kv, f.slot)
}

// Add appends the entry unless one with the same key already exists.
func (f *Favorites[T]) Add(e T) error {
	entries := load[T](f.kv, f.slot)

	for _, x := range entries {
		if x.Key() == e.Key() {
			return nil
		}
	}

	return save(f.kv, f.slot, append(entries, e))
}

// Remove drops the entry with the given key, if present.
func (f *Favorites[T]) Remove(key string) error {
	entries := load[T](f.kv, f.slot)

	kept := entries[:0]

	for _, x := range entries {
		if x.Key() != key {
			kept = append(kept, x)
		}
	}

	return save(f.kv, f.slot, kept)
}

// Clear empties the list.
func (f *Favorites[T]) Clear() error {
	return f.kv.Delete(f.slot)
}

// IsFavorite reports current membership; it is derived, not stored state.
func (f *Favorites[T]) IsFavorite(key string) bool {
	for _, x := range load[T](f.kv, f.slot) {
		if x.Key() == key {
			return true
		}
	}

	return false
}

func load[T any](kv store.Store, slot string) []T {
	data, err := kv.Get(slot)
	if err != nil || data == nil {
		return nil
	}

	var entries []T

	if err := json.Unmarshal(data, &entries); err != nil {
		// corrupt state reads as empty
		return nil
	}

	return entries
}

func save[T any](kv store.Store, slot string, entries []T) error {
	data, err := json.Marshal(entries)
	if err != nil {
		return err
	}

	return kv.Put(slot, data)
}
