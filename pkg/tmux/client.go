package tmux

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	vexec "github.com/vmux-dev/vmux/internal/exec"
)

// LocatorFormat is the format string passed to window/split creation so
// tmux reports back the full locator of the new pane:
// <session>:<window>.<pane>$<pane-id>.
const LocatorFormat = "#{session_name}:#{window_index}.#{pane_index}$#{pane_id}"

// EnvTmux is the environment variable that marks a process as running
// inside a tmux client.
const EnvTmux = "TMUX"

// Common errors detected from tmux stderr.
var (
	ErrNoServer        = errors.New("no tmux server running")
	ErrSessionNotFound = errors.New("tmux session not found")
)

// Client wraps a tmux binary.
type Client struct {
	bin  string
	exec vexec.CommandExecutor
}

// Option configures a Client.
type Option func(*Client)

// WithBinary sets the tmux binary path. Defaults to "tmux".
func WithBinary(path string) Option {
	return func(c *Client) { c.bin = path }
}

// WithExecutor sets the command executor. Defaults to the process-wide
// executor from the exec package.
func WithExecutor(e vexec.CommandExecutor) Option {
	return func(c *Client) { c.exec = e }
}

// NewClient creates a tmux client.
func NewClient(opts ...Option) *Client {
	c := &Client{bin: "tmux", exec: vexec.Default()}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// InsideTmux reports whether the current process runs inside a tmux
// client, i.e. whether $TMUX is set.
func (c *Client) InsideTmux() bool {
	return os.Getenv(EnvTmux) != ""
}

// run executes a tmux command and returns trimmed stdout.
func (c *Client) run(ctx context.Context, args ...string) (string, error) {
	stdout, stderr, err := c.exec.Run(ctx, c.bin, args...)
	if err != nil {
		return "", c.wrapError(err, string(stderr), args)
	}
	return strings.TrimSpace(string(stdout)), nil
}

// wrapError converts tmux failures into sentinel errors where the
// stderr text identifies a known condition.
func (c *Client) wrapError(err error, stderr string, args []string) error {
	stderr = strings.TrimSpace(stderr)

	if strings.Contains(stderr, "no server running") ||
		strings.Contains(stderr, "error connecting to") ||
		strings.Contains(stderr, "server exited unexpectedly") {
		return ErrNoServer
	}
	if strings.Contains(stderr, "session not found") ||
		strings.Contains(stderr, "can't find session") {
		return ErrSessionNotFound
	}

	if stderr != "" {
		return fmt.Errorf("tmux %s: %s", args[0], stderr)
	}
	return fmt.Errorf("tmux %s: %w", args[0], err)
}

// CreateOptions configures window and split creation.
type CreateOptions struct {
	// Dir is the start directory for the new pane (-c). Empty inherits
	// the tmux default.
	Dir string

	// Command runs as the new pane's initial process. tmux passes a
	// single trailing argument through the user's shell, so the command
	// must already be shell-quoted. Empty starts a plain shell.
	Command string

	// After inserts the new window immediately after the current one
	// (-a) instead of at the next free index.
	After bool
}

// NewWindow creates a window in the current session and returns the new
// pane's locator in LocatorFormat.
func (c *Client) NewWindow(ctx context.Context, o CreateOptions) (string, error) {
	args := []string{"new-window", "-P", "-F", LocatorFormat}
	if o.After {
		args = append(args, "-a")
	}
	if o.Dir != "" {
		args = append(args, "-c", o.Dir)
	}
	if o.Command != "" {
		args = append(args, o.Command)
	}
	return c.run(ctx, args...)
}

// SplitWindow splits the current pane and returns the new pane's locator
// in LocatorFormat. vertical selects a top/bottom split (-v); otherwise
// the panes end up side by side (-h).
func (c *Client) SplitWindow(ctx context.Context, vertical bool, o CreateOptions) (string, error) {
	direction := "-h"
	if vertical {
		direction = "-v"
	}
	args := []string{"split-window", direction, "-P", "-F", LocatorFormat}
	if o.Dir != "" {
		args = append(args, "-c", o.Dir)
	}
	if o.Command != "" {
		args = append(args, o.Command)
	}
	return c.run(ctx, args...)
}

// ListPaneIDs returns the pane ids (%N) of every pane on the server.
// A missing server is reported as an empty list, not an error.
func (c *Client) ListPaneIDs(ctx context.Context) ([]string, error) {
	out, err := c.run(ctx, "list-panes", "-a", "-F", "#{pane_id}")
	if errors.Is(err, ErrNoServer) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	if out == "" {
		return nil, nil
	}
	return strings.Split(out, "\n"), nil
}

// SendKeys sends synthetic keystrokes to a pane. Each key is a tmux key
// name ("Escape", "Enter") or a literal string typed as-is.
func (c *Client) SendKeys(ctx context.Context, target string, keys ...string) error {
	args := append([]string{"send-keys", "-t", target}, keys...)
	_, err := c.run(ctx, args...)
	return err
}

// SelectPane focuses a pane, bringing its window to the foreground
// first so the selection is actually visible.
func (c *Client) SelectPane(ctx context.Context, target string) error {
	window := target
	if i := strings.LastIndexByte(target, '.'); i >= 0 {
		window = target[:i]
	}
	if _, err := c.run(ctx, "select-window", "-t", window); err != nil {
		return err
	}
	_, err := c.run(ctx, "select-pane", "-t", target)
	return err
}

// GetEnv reads a variable from the current session's tmux environment.
// An unset variable is returned as an empty string, not an error.
func (c *Client) GetEnv(ctx context.Context, name string) (string, error) {
	stdout, stderr, err := c.exec.Run(ctx, c.bin, "show-environment", name)
	if err != nil {
		// tmux reports unset variables on stderr; absence is a valid state.
		if strings.Contains(string(stderr), "unknown variable") {
			return "", nil
		}
		return "", c.wrapError(err, string(stderr), []string{"show-environment"})
	}
	out := strings.TrimSpace(string(stdout))
	if i := strings.IndexByte(out, '='); i >= 0 {
		return out[i+1:], nil
	}
	return "", nil
}

// SetEnv writes a variable into the current session's tmux environment.
func (c *Client) SetEnv(ctx context.Context, name, value string) error {
	_, err := c.run(ctx, "set-environment", name, value)
	return err
}
