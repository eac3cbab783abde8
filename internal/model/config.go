package model

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/inovacc/opnr/internal/application"
)

// DefaultScanDepth is used when the configured depth is missing or unparsable.
const DefaultScanDepth = 3

// Editor represents a custom editor configuration.
type Editor struct {
	// Name is the display name of the editor (e.g., "VS Code")
	Name string `json:"name"`

	// Command is the executable command (e.g., "code")
	Command string `json:"command"`

	// Icon is an optional icon for display
	Icon string `json:"icon,omitempty"`
}

// Config holds the application configuration
type Config struct {
	// RootPaths are the directories the scanner starts from
	RootPaths []string `json:"root_paths"`

	// ScanDepth is the maximum directory depth descended from each root
	ScanDepth int `json:"scan_depth"`

	// ExclusionPatterns are case-insensitive substrings; matching folder
	// names are pruned from traversal entirely
	ExclusionPatterns []string `json:"exclusion_patterns"`

	// DefaultCloneDir is the default directory where repositories are cloned
	// and new projects are created
	DefaultCloneDir string `json:"default_clone_dir"`

	// Editor is the default editor to open projects with
	Editor string `json:"editor"`

	// CustomEditors is a list of user-defined editors
	CustomEditors []Editor `json:"custom_editors,omitempty"`

	// Tokens maps a hosting provider host (e.g. "github.com") to an
	// access token embedded into clone URLs
	Tokens map[string]string `json:"tokens,omitempty"`

	// OpenInNewWindow requests a fresh editor window on every open
	OpenInNewWindow bool `json:"open_in_new_window"`
}

// DefaultConfig returns a Config with sensible defaults
func DefaultConfig() Config {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		homeDir = "."
	}

	return Config{
		RootPaths:         []string{homeDir},
		ScanDepth:         DefaultScanDepth,
		ExclusionPatterns: []string{"node_modules", ".cache"},
		DefaultCloneDir:   filepath.Join(homeDir, application.AppName),
		Editor:            "code",
		Tokens:            map[string]string{},
	}
}

// ParsePaths splits a comma-separated path list, expanding a leading "~"
// to the user home directory. Empty segments are dropped.
func ParsePaths(s string) []string {
	var out []string

	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		out = append(out, ExpandHome(p))
	}

	return out
}

// ParseDepth parses a scan depth, falling back to DefaultScanDepth when the
// value is unparsable or negative.
func ParseDepth(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 0 {
		return DefaultScanDepth
	}

	return n
}

// ParsePatterns splits a comma-separated exclusion list, trimming whitespace.
func ParsePatterns(s string) []string {
	var out []string

	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}

		out = append(out, p)
	}

	return out
}

// ExpandHome replaces a leading "~" with the user home directory.
func ExpandHome(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") || strings.HasPrefix(p, `~\`) {
		home, err := os.UserHomeDir()
		if err == nil {
			return filepath.Join(home, p[1:])
		}
	}

	return p
}
