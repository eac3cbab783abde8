package scanner

import "strings"

// IsExcluded reports whether a folder name matches any exclusion pattern.
// Matching is a case-folded substring test, so a pattern like "node_modules"
// also catches vendored nested copies.
func IsExcluded(name string, patterns []string) bool {
	folded := strings.ToLower(name)

	for _, p := range patterns {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}

		if strings.Contains(folded, p) {
			return true
		}
	}

	return false
}
