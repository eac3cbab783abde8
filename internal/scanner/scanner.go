// Package scanner locates project directories beneath a set of root paths.
//
// A directory counts as a project when it directly contains a known marker
// (version-control metadata or a build manifest). A directory whose children
// include projects is a container and is never reported itself, so monorepo
// roots resolve to their member projects. Traversal is bounded by a maximum
// depth and prunes any folder whose name matches an exclusion pattern.
package scanner

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/inovacc/opnr/internal/model"
)

// Config describes one scan invocation. It is immutable for its duration.
type Config struct {
	// RootPaths are the absolute directories traversal starts from.
	RootPaths []string

	// MaxDepth is the number of directory levels descended from each root.
	// Zero evaluates the roots themselves only.
	MaxDepth int

	// ExclusionPatterns are case-insensitive substrings matched against
	// folder names; matching subtrees are pruned entirely.
	ExclusionPatterns []string
}

// Hash returns a stable digest of the configuration, used as the cache key
// so a changed root set, depth, or exclusion list misses naturally.
func (c Config) Hash() string {
	h := sha256.New()

	for _, p := range c.RootPaths {
		_, _ = io.WriteString(h, filepath.Clean(p))
		_, _ = io.WriteString(h, "\x00")
	}

	_, _ = fmt.Fprintf(h, "depth=%d\x00", c.MaxDepth)

	for _, p := range c.ExclusionPatterns {
		_, _ = io.WriteString(h, strings.ToLower(strings.TrimSpace(p)))
		_, _ = io.WriteString(h, "\x00")
	}

	return hex.EncodeToString(h.Sum(nil))
}

// Scan walks every configured root and returns the projects found.
// Filesystem errors never abort a scan; unreadable entries are skipped.
func Scan(cfg Config) []model.Project {
	w := &walker{
		cfg:     cfg,
		visited: make(map[string]struct{}),
	}

	var out []model.Project

	for _, root := range cfg.RootPaths {
		w.walk(filepath.Clean(root), 0, &out)
	}

	return out
}

type walker struct {
	cfg Config

	// visited holds canonical paths already entered during this scan,
	// guarding against symlink cycles and overlapping roots.
	visited map[string]struct{}
}

func (w *walker) walk(dir string, depth int, out *[]model.Project) {
	if depth > w.cfg.MaxDepth {
		return
	}

	if IsExcluded(filepath.Base(dir), w.cfg.ExclusionPatterns) {
		return
	}

	if real, err := filepath.EvalSymlinks(dir); err == nil {
		if _, seen := w.visited[real]; seen {
			return
		}

		w.visited[real] = struct{}{}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		// unreadable directories are skipped silently
		return
	}

	var children []string

	for _, e := range entries {
		isDir := e.IsDir()

		if !isDir && e.Type()&os.ModeSymlink != 0 {
			// follow directory symlinks; the visited set stops cycles
			if info, err := os.Stat(filepath.Join(dir, e.Name())); err == nil && info.IsDir() {
				isDir = true
			}
		}

		if !isDir {
			continue
		}

		if IsExcluded(e.Name(), w.cfg.ExclusionPatterns) {
			continue
		}

		children = append(children, filepath.Join(dir, e.Name()))
	}

	// A directory holding project subdirectories is a container and yields
	// to its children, even when it carries a marker of its own.
	container := false

	for _, child := range children {
		if IsProject(child) {
			container = true

			break
		}
	}

	if !container && IsProject(dir) {
		*out = append(*out, w.project(dir))

		// projects are leaves of the walk
		return
	}

	if depth < w.cfg.MaxDepth {
		for _, child := range children {
			w.walk(child, depth+1, out)
		}
	}
}

func (w *walker) project(dir string) model.Project {
	p := model.Project{
		ID:   dir,
		Name: filepath.Base(dir),
		Path: dir,
		Kind: model.KindLocal,
	}

	if info, err := os.Stat(dir); err == nil {
		p.SizeBytes = info.Size()
		p.LastModified = info.ModTime()
	}

	if t, ok := LatestModification(dir, w.cfg.ExclusionPatterns, RecencyDepth); ok {
		p.LastModified = t
	}

	p.GitRemoteURL = remoteURL(dir)

	return p
}
