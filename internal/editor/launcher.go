package editor

import (
	"context"
	"fmt"

	"github.com/vmux-dev/vmux/internal/logger"
	"github.com/vmux-dev/vmux/internal/session"
	"github.com/vmux-dev/vmux/pkg/tmux"
)

// Launcher ensures a named session has a live editor pane.
type Launcher struct {
	reg    Registry
	mux    Multiplexer
	editor string
}

// NewLauncher creates a Launcher that runs the given editor command in
// panes it creates.
func NewLauncher(reg Registry, mux Multiplexer, editor string) *Launcher {
	return &Launcher{reg: reg, mux: mux, editor: editor}
}

// Result reports what EnsureOpen did.
type Result struct {
	// Created is true when a new editor pane was spawned. False means
	// an existing live pane was selected and the caller should route
	// file-open commands into it instead.
	Created bool
	Locator session.PaneLocator
}

// EnsureOpen makes sure name is bound to a live editor pane.
//
// A live session is selected as-is and reported with Created=false; the
// split action applies only when a pane is actually created, never to
// an existing one (changing layout under a running editor would be more
// surprising than ignoring the flag). A session that is unregistered,
// or whose pane has been closed behind our back, gets a fresh pane
// running the editor with files pre-seeded on its command line, and the
// registry entry is written (or overwritten) to match.
//
// The liveness check and the creation are two separate tmux calls, so
// two concurrent invocations can each create a pane for the same name;
// the registry then reflects whichever registration landed last. This
// race is accepted: invocations are short-lived and human-driven.
func (l *Launcher) EnsureOpen(ctx context.Context, name string, split SplitAction, files []string, workDir string) (Result, error) {
	live, err := l.reg.IsLive(ctx, name)
	if err != nil {
		return Result{}, err
	}

	if live {
		loc, ok, err := l.reg.Lookup(ctx, name)
		if err != nil {
			return Result{}, err
		}
		if !ok {
			// Entry vanished between the liveness check and the lookup;
			// fall through to creation.
			return l.create(ctx, name, split, files, workDir)
		}
		logger.Debug("reusing editor pane", "session", name, "pane", loc.String())
		if err := l.mux.SelectPane(ctx, loc.Target()); err != nil {
			return Result{}, err
		}
		return Result{Created: false, Locator: loc}, nil
	}

	return l.create(ctx, name, split, files, workDir)
}

func (l *Launcher) create(ctx context.Context, name string, split SplitAction, files []string, workDir string) (Result, error) {
	opts := tmux.CreateOptions{
		Dir:     workDir,
		Command: editorCommand(l.editor, files),
	}

	var raw string
	var err error
	switch split {
	case SplitHorizontal:
		raw, err = l.mux.SplitWindow(ctx, false, opts)
	case SplitVertical:
		raw, err = l.mux.SplitWindow(ctx, true, opts)
	case SplitTab:
		opts.After = true
		raw, err = l.mux.NewWindow(ctx, opts)
	default:
		raw, err = l.mux.NewWindow(ctx, opts)
	}
	if err != nil {
		return Result{}, fmt.Errorf("create editor pane: %w", err)
	}

	loc, err := session.ParseLocator(raw)
	if err != nil {
		return Result{}, fmt.Errorf("unexpected creation response: %w", err)
	}

	if err := l.reg.Register(ctx, name, loc, workDir); err != nil {
		return Result{}, err
	}
	logger.Info("created editor pane", "session", name, "pane", loc.String(), "split", split.String())
	return Result{Created: true, Locator: loc}, nil
}
