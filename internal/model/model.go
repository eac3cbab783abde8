package model

import (
	"fmt"
	"time"
)

// Kind distinguishes how a project reached the machine.
type Kind string

const (
	// KindLocal is a project found on disk by the scanner or created locally.
	KindLocal Kind = "local"

	// KindRemote is a project that was cloned from a remote repository.
	KindRemote Kind = "remote"
)

// Project is a directory the tool can open in an editor.
//
// ID is always identical to Path; two projects with equal paths are the
// same logical project. History and favorites store a copy of the entry as
// it looked at the time of the action.
type Project struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Path         string    `json:"path"`
	Kind         Kind      `json:"kind"`
	SizeBytes    int64     `json:"size_bytes,omitempty"`
	LastModified time.Time `json:"last_modified"`
	GitRemoteURL string    `json:"git_remote_url,omitempty"`
	ClonedAt     time.Time `json:"cloned_at"`
	LastAccessed time.Time `json:"last_accessed"`

	// Favorite is derived from favorites membership at display time,
	// never persisted on the entry itself.
	Favorite bool `json:"-"`
}

// Key returns the identity used for deduplication in history/favorites.
func (p Project) Key() string {
	return p.ID
}

// WithAccessTime returns a copy stamped with the given access time.
func (p Project) WithAccessTime(t time.Time) Project {
	p.LastAccessed = t

	return p
}

// Host identifies a remote development target reachable over ssh.
type Host struct {
	User         string    `json:"user"`
	Host         string    `json:"host"`
	Port         int       `json:"port"`
	LastAccessed time.Time `json:"last_accessed"`

	Favorite bool `json:"-"`
}

// Authority renders the host as user@host:port, omitting the default port.
func (h Host) Authority() string {
	if h.Port != 0 && h.Port != 22 {
		return fmt.Sprintf("%s@%s:%d", h.User, h.Host, h.Port)
	}

	return fmt.Sprintf("%s@%s", h.User, h.Host)
}

// Key returns the identity used for deduplication in history/favorites.
func (h Host) Key() string {
	return h.Authority()
}

// WithAccessTime returns a copy stamped with the given access time.
func (h Host) WithAccessTime(t time.Time) Host {
	h.LastAccessed = t

	return h
}

// Repository is a registry record of a completed clone.
type Repository struct {
	UID      string    `json:"uid"`
	URL      string    `json:"url"`
	Path     string    `json:"path"`
	Branch   string    `json:"branch,omitempty"`
	ClonedAt time.Time `json:"cloned_at"`
}
