package scanner

import (
	"os"
	"path/filepath"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// markers are the names whose presence directly inside a directory makes it
// a project root. IDE configuration folders (.idea, .vscode) are deliberately
// absent; they show up in far too many non-project directories.
var markers = []string{
	".git",
	".svn",
	".hg",
	"package.json",
	"go.mod",
	"Cargo.toml",
	"pyproject.toml",
	"requirements.txt",
	"pom.xml",
	"build.gradle",
	"build.gradle.kts",
	"Gemfile",
	"composer.json",
	"mix.exs",
	"CMakeLists.txt",
	"Makefile",
}

// IsProject reports whether dir directly contains any project marker.
// The existence checks are independent reads and run concurrently; a check
// that fails (permissions included) simply counts as "marker absent".
func IsProject(dir string) bool {
	var (
		g     errgroup.Group
		found atomic.Bool
	)

	for _, m := range markers {
		marker := filepath.Join(dir, m)

		g.Go(func() error {
			if _, err := os.Lstat(marker); err == nil {
				found.Store(true)
			}

			return nil
		})
	}

	_ = g.Wait()

	return found.Load()
}
