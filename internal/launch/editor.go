// Package launch starts an external editor against a local path or a remote
// ssh target. The editor is assumed to be a launchable program on PATH; the
// tool never implements any editing itself.
package launch

import (
	"fmt"
	"os/exec"

	"github.com/inovacc/opnr/internal/model"
)

// EditorInfo represents editor information for display.
type EditorInfo struct {
	Name    string
	Command string
	Icon    string
}

// DefaultEditors is a list of common editors to check for.
var DefaultEditors = []EditorInfo{
	{Name: "VS Code", Command: "code", Icon: "󰨞"},
	{Name: "Cursor", Command: "cursor", Icon: "󰨞"},
	{Name: "Vim", Command: "vim", Icon: ""},
	{Name: "Neovim", Command: "nvim", Icon: ""},
	{Name: "GoLand", Command: "goland", Icon: ""},
	{Name: "IntelliJ IDEA", Command: "idea", Icon: ""},
	{Name: "WebStorm", Command: "webstorm", Icon: ""},
	{Name: "PyCharm", Command: "pycharm", Icon: ""},
	{Name: "Sublime Text", Command: "subl", Icon: ""},
	{Name: "Nano", Command: "nano", Icon: ""},
	{Name: "Emacs", Command: "emacs", Icon: ""},
	{Name: "Helix", Command: "hx", Icon: ""},
	{Name: "Zed", Command: "zed", Icon: ""},
}

// AllEditors returns the default editors followed by the user's custom ones.
func AllEditors(custom []model.Editor) []EditorInfo {
	all := make([]EditorInfo, len(DefaultEditors), len(DefaultEditors)+len(custom))
	copy(all, DefaultEditors)

	for _, e := range custom {
		all = append(all, EditorInfo{Name: e.Name, Command: e.Command, Icon: e.Icon})
	}

	return all
}

// InstalledEditors filters AllEditors down to commands found on PATH.
func InstalledEditors(custom []model.Editor) []EditorInfo {
	var installed []EditorInfo

	for _, e := range AllEditors(custom) {
		if IsInstalled(e.Command) {
			installed = append(installed, e)
		}
	}

	return installed
}

// IsInstalled checks if the given editor command is available in PATH.
func IsInstalled(editor string) bool {
	_, err := exec.LookPath(editor)

	return err == nil
}

// Args builds the argument list for opening path, optionally in a new window.
func Args(path string, newWindow bool) []string {
	if newWindow {
		return []string{"--new-window", path}
	}

	return []string{path}
}

// RemoteArgs builds the argument list for opening an ssh remote target.
func RemoteArgs(h model.Host, newWindow bool) []string {
	args := []string{"--remote", "ssh-remote+" + h.Authority()}

	if newWindow {
		args = append([]string{"--new-window"}, args...)
	}

	return args
}

// Open starts the editor detached against the given path.
func Open(editor, path string, newWindow bool) error {
	cmd := exec.Command(editor, Args(path, newWindow)...)

	if err := cmd.Start(); err != nil {
		return &EditorError{Command: editor, err: err}
	}

	return nil
}

// OpenRemote starts the editor detached against an ssh remote target.
func OpenRemote(editor string, h model.Host, newWindow bool) error {
	cmd := exec.Command(editor, RemoteArgs(h, newWindow)...)

	if err := cmd.Start(); err != nil {
		return &EditorError{Command: editor, err: err}
	}

	return nil
}

// EditorError indicates the editor process could not be started.
type EditorError struct {
	Command string
	err     error
}

func (e *EditorError) Error() string {
	return fmt.Sprintf("failed to open editor %s: %v", e.Command, e.err)
}

func (e *EditorError) Unwrap() error {
	return e.err
}
