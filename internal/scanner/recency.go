package scanner

import (
	"os"
	"path/filepath"
	"time"
)

// RecencyDepth bounds how deep LatestModification looks by default. It is
// independent of, and usually shallower than, the outer scan depth.
const RecencyDepth = 2

// LatestModification returns the newest modification time among the entries
// under root, down to maxDepth levels, skipping excluded folders. The second
// return value is false when the subtree is empty or entirely unreadable.
//
// The value is display metadata only; errors on individual entries are
// swallowed and traversal continues with siblings.
func LatestModification(root string, patterns []string, maxDepth int) (time.Time, bool) {
	var (
		latest time.Time
		found  bool
	)

	var visit func(dir string, depth int)

	visit = func(dir string, depth int) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return
		}

		for _, e := range entries {
			if e.IsDir() && IsExcluded(e.Name(), patterns) {
				continue
			}

			info, err := e.Info()
			if err != nil {
				continue
			}

			found = true

			if t := info.ModTime(); t.After(latest) {
				latest = t
			}

			if e.IsDir() && depth < maxDepth {
				visit(filepath.Join(dir, e.Name()), depth+1)
			}
		}
	}

	visit(root, 0)

	return latest, found
}
