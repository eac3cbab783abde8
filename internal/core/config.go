package core

import (
	"encoding/json"
	"fmt"

	"github.com/inovacc/opnr/internal/model"
	"github.com/inovacc/opnr/internal/scanner"
	"github.com/inovacc/opnr/internal/store"
)

// LoadConfig reads the persisted configuration. A missing or corrupt slot
// yields the defaults.
func LoadConfig(kv store.Store) model.Config {
	data, err := kv.Get(store.KeyConfig)
	if err != nil || data == nil {
		return model.DefaultConfig()
	}

	var cfg model.Config

	if err := json.Unmarshal(data, &cfg); err != nil {
		return model.DefaultConfig()
	}

	if cfg.Tokens == nil {
		cfg.Tokens = map[string]string{}
	}

	return cfg
}

// SaveConfig persists the configuration.
func SaveConfig(kv store.Store, cfg model.Config) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}

	if err := kv.Put(store.KeyConfig, data); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	return nil
}

// ScanConfigFrom derives the scanner configuration from the app config.
func ScanConfigFrom(cfg model.Config) scanner.Config {
	roots := make([]string, 0, len(cfg.RootPaths))

	for _, r := range cfg.RootPaths {
		roots = append(roots, model.ExpandHome(r))
	}

	return scanner.Config{
		RootPaths:         roots,
		MaxDepth:          cfg.ScanDepth,
		ExclusionPatterns: cfg.ExclusionPatterns,
	}
}
