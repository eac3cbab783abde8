package core

import "fmt"

// EditorNotInstalledError indicates the requested editor is not on PATH.
type EditorNotInstalledError struct {
	Command string
}

func (e *EditorNotInstalledError) Error() string {
	return fmt.Sprintf("editor %q is not installed", e.Command)
}

// NotADirectoryError indicates a project path that is a regular file.
type NotADirectoryError struct {
	Path string
}

func (e *NotADirectoryError) Error() string {
	return fmt.Sprintf("not a directory: %s", e.Path)
}

// PathCollisionError indicates the clone target already exists.
type PathCollisionError struct {
	Path string
}

func (e *PathCollisionError) Error() string {
	return fmt.Sprintf("directory already exists: %s (use --force to remove and re-clone)", e.Path)
}

// ValidationError is a pre-I/O rejection of user input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
