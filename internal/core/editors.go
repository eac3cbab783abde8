package core

import (
	"fmt"

	"github.com/inovacc/opnr/internal/model"
	"github.com/inovacc/opnr/internal/store"
)

// AddCustomEditor adds a custom editor to the configuration.
func AddCustomEditor(kv store.Store, editor model.Editor) error {
	if editor.Name == "" {
		return &ValidationError{Field: "name", Reason: "editor name is required"}
	}

	if editor.Command == "" {
		return &ValidationError{Field: "command", Reason: "editor command is required"}
	}

	cfg := LoadConfig(kv)

	for _, e := range cfg.CustomEditors {
		if e.Name == editor.Name {
			return fmt.Errorf("editor %q already exists", editor.Name)
		}

		if e.Command == editor.Command {
			return fmt.Errorf("editor with command %q already exists as %q", editor.Command, e.Name)
		}
	}

	cfg.CustomEditors = append(cfg.CustomEditors, editor)

	return SaveConfig(kv, cfg)
}

// RemoveCustomEditor removes a custom editor from the configuration.
func RemoveCustomEditor(kv store.Store, name string) error {
	cfg := LoadConfig(kv)

	found := false
	kept := make([]model.Editor, 0, len(cfg.CustomEditors))

	for _, e := range cfg.CustomEditors {
		if e.Name == name {
			found = true

			continue
		}

		kept = append(kept, e)
	}

	if !found {
		return fmt.Errorf("editor %q not found in custom editors", name)
	}

	cfg.CustomEditors = kept

	return SaveConfig(kv, cfg)
}

// SetToken stores an access token for a hosting provider host.
func SetToken(kv store.Store, host, token string) error {
	if host == "" {
		return &ValidationError{Field: "host", Reason: "host is required"}
	}

	if token == "" {
		return &ValidationError{Field: "token", Reason: "token is required"}
	}

	cfg := LoadConfig(kv)
	cfg.Tokens[host] = token

	return SaveConfig(kv, cfg)
}

// RemoveToken deletes the stored token for a host.
func RemoveToken(kv store.Store, host string) error {
	cfg := LoadConfig(kv)

	if _, ok := cfg.Tokens[host]; !ok {
		return fmt.Errorf("no token stored for %q", host)
	}

	delete(cfg.Tokens, host)

	return SaveConfig(kv, cfg)
}
