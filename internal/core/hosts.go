package core

import (
	"log"
	"strconv"
	"strings"

	"github.com/inovacc/opnr/internal/launch"
	"github.com/inovacc/opnr/internal/model"
	"github.com/inovacc/opnr/internal/recent"
	"github.com/inovacc/opnr/internal/store"
)

// ParseHost parses "user@host" or "user@host:port" into a Host. Every
// validation failure is reported before any I/O happens.
func ParseHost(s string) (model.Host, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return model.Host{}, &ValidationError{Field: "host", Reason: "empty"}
	}

	user, rest, ok := strings.Cut(s, "@")
	if !ok || user == "" {
		return model.Host{}, &ValidationError{Field: "host", Reason: "expected user@host"}
	}

	host, portStr, hasPort := strings.Cut(rest, ":")
	if host == "" {
		return model.Host{}, &ValidationError{Field: "host", Reason: "missing host name"}
	}

	h := model.Host{User: user, Host: host}

	if hasPort {
		port, err := strconv.Atoi(portStr)
		if err != nil || port < 1 || port > 65535 {
			return model.Host{}, &ValidationError{Field: "port", Reason: portStr}
		}

		h.Port = port
	}

	return h, nil
}

// Hosts returns remote targets for display: history first (most recent
// first), then favorites not in history, decorated with membership.
func Hosts(kv store.Store) []model.Host {
	favs := recent.NewFavorites[model.Host](kv, store.KeyHostFavs)

	seen := make(map[string]struct{})

	var out []model.Host

	for _, h := range recent.NewHistory[model.Host](kv, store.KeyHostHist).List() {
		h.Favorite = favs.IsFavorite(h.Key())
		seen[h.Key()] = struct{}{}
		out = append(out, h)
	}

	for _, h := range favs.List() {
		if _, ok := seen[h.Key()]; ok {
			continue
		}

		h.Favorite = true
		out = append(out, h)
	}

	return out
}

// FavoriteHost adds a remote target to the host favorites list.
func FavoriteHost(kv store.Store, h model.Host) error {
	return recent.NewFavorites[model.Host](kv, store.KeyHostFavs).Add(h)
}

// UnfavoriteHost removes a remote target from the host favorites list.
func UnfavoriteHost(kv store.Store, h model.Host) error {
	return recent.NewFavorites[model.Host](kv, store.KeyHostFavs).Remove(h.Key())
}

// OpenHost launches the editor against an ssh remote target and records the
// access in host history. A failed launch records nothing.
func OpenHost(kv store.Store, cfg model.Config, h model.Host, editorCmd string, newWindow bool) error {
	editor := editorCmd
	if editor == "" {
		editor = cfg.Editor
	}

	if !launch.IsInstalled(editor) {
		return &EditorNotInstalledError{Command: editor}
	}

	if err := launch.OpenRemote(editor, h, newWindow || cfg.OpenInNewWindow); err != nil {
		return err
	}

	if err := recent.NewHistory[model.Host](kv, store.KeyHostHist).Add(h); err != nil {
		log.Printf("failed to record host history: %v", err)
	}

	return nil
}
