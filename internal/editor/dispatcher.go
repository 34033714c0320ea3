package editor

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/vmux-dev/vmux/internal/logger"
	"github.com/vmux-dev/vmux/internal/pathutil"
)

// Dispatcher routes file-open commands into an already-running editor
// pane via synthetic keystrokes.
type Dispatcher struct {
	reg Registry
	mux Multiplexer
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(reg Registry, mux Multiplexer) *Dispatcher {
	return &Dispatcher{reg: reg, mux: mux}
}

// OpenFiles types one file-open command per file into the pane bound to
// name. All files but the last become background buffers (:badd); the
// last becomes the active buffer (:edit). Callers must only invoke this
// after confirming the session is live.
//
// File arguments are interpreted relative to invokeDir, then translated
// into the frame of the directory the editor was launched from, so a
// path typed in one shell resolves to the same file inside an editor
// that was started somewhere else.
func (d *Dispatcher) OpenFiles(ctx context.Context, name, invokeDir string, files []string) error {
	if len(files) == 0 {
		return nil
	}

	loc, ok, err := d.reg.Lookup(ctx, name)
	if err != nil {
		return err
	}
	if !ok {
		return fmt.Errorf("session %q has no registered pane", name)
	}

	refDir, err := d.reg.LastWorkingDir(ctx, name)
	if err != nil {
		return err
	}
	if refDir == "" {
		refDir = invokeDir
	}

	// Clear any half-typed command-line state before injecting ours.
	if err := d.mux.SendKeys(ctx, loc.Target(), "Escape"); err != nil {
		return err
	}

	for i, file := range files {
		abs := file
		if !filepath.IsAbs(abs) {
			abs = filepath.Join(invokeDir, file)
		}
		rel, err := pathutil.Rel(refDir, abs)
		if err != nil {
			return fmt.Errorf("translate %s: %w", file, err)
		}

		command := ":badd"
		if i == len(files)-1 {
			command = ":edit"
		}
		logger.Debug("dispatching file", "session", name, "command", command, "path", rel)
		if err := d.mux.SendKeys(ctx, loc.Target(), commandKeys(command, rel)...); err != nil {
			return err
		}
	}
	return nil
}
