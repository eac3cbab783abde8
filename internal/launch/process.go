package launch

import (
	"strings"

	"github.com/google/gops/goprocess"
)

// Running reports whether a process matching the editor command is already
// alive. Used to decide whether a first open still needs a new window.
func Running(command string) bool {
	needle := strings.ToLower(command)

	for _, proc := range goprocess.FindAll() {
		if strings.Contains(strings.ToLower(proc.Exec), needle) ||
			strings.Contains(strings.ToLower(proc.Path), needle) {
			return true
		}
	}

	return false
}
