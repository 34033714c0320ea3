// Package editor opens files in a persistent editor instance living in
// a tmux pane. The Launcher decides between reusing a live instance and
// creating a fresh one; the Dispatcher types file-open commands into an
// instance that already exists.
package editor

import (
	"context"
	"strings"

	"github.com/vmux-dev/vmux/internal/session"
	"github.com/vmux-dev/vmux/pkg/tmux"
)

// SplitAction selects where a newly created editor pane goes.
type SplitAction int

const (
	// SplitNone opens the editor in a new window.
	SplitNone SplitAction = iota
	// SplitTab opens a new window inserted right after the current one.
	SplitTab
	// SplitHorizontal puts the editor beside the current pane.
	SplitHorizontal
	// SplitVertical puts the editor below the current pane.
	SplitVertical
)

func (a SplitAction) String() string {
	switch a {
	case SplitTab:
		return "tab"
	case SplitHorizontal:
		return "horizontal"
	case SplitVertical:
		return "vertical"
	default:
		return "window"
	}
}

// Registry is the session registry surface the editor workflow needs.
type Registry interface {
	Lookup(ctx context.Context, name string) (session.PaneLocator, bool, error)
	Register(ctx context.Context, name string, loc session.PaneLocator, workDir string) error
	IsLive(ctx context.Context, name string) (bool, error)
	LastWorkingDir(ctx context.Context, name string) (string, error)
}

// Multiplexer is the tmux client surface the editor workflow needs.
type Multiplexer interface {
	NewWindow(ctx context.Context, o tmux.CreateOptions) (string, error)
	SplitWindow(ctx context.Context, vertical bool, o tmux.CreateOptions) (string, error)
	SendKeys(ctx context.Context, target string, keys ...string) error
	SelectPane(ctx context.Context, target string) error
}

// editorCommand builds the shell command that runs the editor with the
// initial files on its command line. Seeding the command line avoids a
// round of per-file keystroke injection on first launch.
func editorCommand(editor string, files []string) string {
	parts := make([]string, 0, len(files)+1)
	parts = append(parts, editor)
	for _, f := range files {
		parts = append(parts, shellQuote(f))
	}
	return strings.Join(parts, " ")
}

// shellQuote single-quotes s for the POSIX shell tmux hands the
// creation command to.
func shellQuote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", `'\''`) + "'"
}
