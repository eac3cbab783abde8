// Package git shells out to the system git binary. The tool never speaks
// the git protocol itself; cloning and repository setup are delegated here.
package git

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Client wraps invocations of the external git executable.
type Client struct {
	GitPath string
	Stderr  io.Writer
	Stdout  io.Writer
}

// NewClient creates a new git client resolving git from PATH.
func NewClient() *Client {
	gitPath, _ := exec.LookPath("git")

	return &Client{
		GitPath: gitPath,
		Stderr:  os.Stderr,
		Stdout:  os.Stdout,
	}
}

// Available reports whether a git executable was found.
func (c *Client) Available() bool {
	return c.GitPath != ""
}

func (c *Client) command(ctx context.Context, dir string, args ...string) *exec.Cmd {
	cmd := exec.CommandContext(ctx, c.GitPath, args...)

	if dir != "" {
		cmd.Dir = dir
	}

	return cmd
}

// Clone clones cloneURL into targetPath, optionally checking out branch.
func (c *Client) Clone(ctx context.Context, cloneURL, targetPath, branch string) error {
	if !c.Available() {
		return &GitError{err: fmt.Errorf("git executable not found in PATH")}
	}

	args := []string{"clone"}
	if branch != "" {
		args = append(args, "--branch", branch)
	}

	args = append(args, cloneURL, targetPath)

	output, err := c.command(ctx, "", args...).CombinedOutput()
	if err != nil {
		return &GitError{
			Stderr: string(output),
			err:    err,
		}
	}

	return nil
}

// Init initializes a fresh repository in dir.
func (c *Client) Init(ctx context.Context, dir string) error {
	if !c.Available() {
		return &GitError{err: fmt.Errorf("git executable not found in PATH")}
	}

	output, err := c.command(ctx, dir, "init").CombinedOutput()
	if err != nil {
		return &GitError{
			Stderr: string(output),
			err:    err,
		}
	}

	return nil
}

// RemoteURL returns the URL of the given remote in dir.
func (c *Client) RemoteURL(ctx context.Context, dir, remote string) (string, error) {
	output, err := c.command(ctx, dir, "remote", "get-url", remote).Output()
	if err != nil {
		return "", fmt.Errorf("failed to get remote URL: %w", err)
	}

	return strings.TrimSpace(string(output)), nil
}

// GitError represents a git command error
type GitError struct {
	Stderr string
	err    error
}

func (e *GitError) Error() string {
	if e.Stderr == "" {
		return fmt.Errorf("git command failed: %w", e.err).Error()
	}

	return fmt.Sprintf("git command failed: %s", strings.TrimSpace(e.Stderr))
}

func (e *GitError) Unwrap() error {
	return e.err
}
