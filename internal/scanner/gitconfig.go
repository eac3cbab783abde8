package scanner

import (
	"path/filepath"

	"gopkg.in/ini.v1"
)

// remoteURL reads the origin remote URL from dir/.git/config, or the first
// remote when origin is absent. Returns "" for anything that is not a git
// repository or cannot be parsed.
func remoteURL(dir string) string {
	cfg, err := ini.Load(filepath.Join(dir, ".git", "config"))
	if err != nil {
		return ""
	}

	if sec, err := cfg.GetSection(`remote "origin"`); err == nil {
		return sec.Key("url").String()
	}

	for _, sec := range cfg.Sections() {
		if sec.HasKey("url") && sec.HasKey("fetch") {
			return sec.Key("url").String()
		}
	}

	return ""
}
