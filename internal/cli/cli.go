// Package cli wires the open-or-route workflow behind the command-line
// surface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vmux-dev/vmux/internal/config"
	"github.com/vmux-dev/vmux/internal/editor"
	"github.com/vmux-dev/vmux/internal/logger"
	"github.com/vmux-dev/vmux/internal/paths"
	"github.com/vmux-dev/vmux/internal/session"
	"github.com/vmux-dev/vmux/internal/store"
	"github.com/vmux-dev/vmux/pkg/tmux"
)

// ErrNotInTmux is returned when the tool is invoked outside a tmux
// session. Everything this tool does targets the surrounding tmux
// server, so there is nothing useful to do without one.
var ErrNotInTmux = errors.New("not inside a tmux session (is tmux running?)")

var (
	sessionFlag    string
	tabFlag        bool
	verticalFlag   bool
	horizontalFlag bool
	debugFlag      bool
)

var rootCmd = &cobra.Command{
	Use:   "vmux [flags] [file ...]",
	Short: "Open files in a persistent editor pane inside tmux",
	Long: `vmux keeps one editor instance per named session alive in a tmux pane.
The first invocation for a session opens the editor in a new window; later
invocations route file-open commands into the already-running instance, so
files opened from anywhere land in the same editor.`,
	RunE:          runOpen,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	flags := rootCmd.Flags()
	flags.StringVarP(&sessionFlag, "session", "s", "", "session name (defaults to the last-used session)")
	flags.BoolVarP(&tabFlag, "tab", "t", false, "open the editor in a new tab")
	flags.BoolVarP(&verticalFlag, "vertical", "v", false, "open the editor in a vertical split")
	flags.BoolVarP(&horizontalFlag, "horizontal", "h", false, "open the editor in a horizontal split")
	flags.BoolVar(&debugFlag, "debug", false, "enable debug logging")
}

// Execute runs the root command.
func Execute(version string) error {
	rootCmd.Version = version
	return rootCmd.Execute()
}

func splitAction() editor.SplitAction {
	switch {
	case tabFlag:
		return editor.SplitTab
	case verticalFlag:
		return editor.SplitVertical
	case horizontalFlag:
		return editor.SplitHorizontal
	default:
		return editor.SplitNone
	}
}

func runOpen(cmd *cobra.Command, args []string) error {
	initLogging()
	defer logger.Close()

	return open(cmd.Context(), splitAction(), args)
}

// initLogging is best-effort: an unopenable log file must not break the
// workflow.
func initLogging() {
	logger.SetDebug(debugFlag)
	if path, err := paths.LogFilePath(); err == nil {
		_ = logger.Init(path)
	}
}

// open is the whole workflow: resolve the target session, make sure it
// has a live editor pane, and route the files into it when the pane
// already existed.
func open(ctx context.Context, split editor.SplitAction, files []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	tmuxBin, err := cfg.ResolveTmux()
	if err != nil {
		return err
	}
	editorBin, err := cfg.ResolveEditor()
	if err != nil {
		return err
	}

	client := tmux.NewClient(tmux.WithBinary(tmuxBin))
	if !client.InsideTmux() {
		return ErrNotInTmux
	}

	reg := session.NewRegistry(store.New(client), client)

	name, err := resolveSessionName(ctx, reg, cfg)
	if err != nil {
		return err
	}

	workDir, err := os.Getwd()
	if err != nil {
		return fmt.Errorf("determine working directory: %w", err)
	}

	launcher := editor.NewLauncher(reg, client, editorBin)
	res, err := launcher.EnsureOpen(ctx, name, split, files, workDir)
	if err != nil {
		return err
	}

	if !res.Created {
		dispatcher := editor.NewDispatcher(reg, client)
		if err := dispatcher.OpenFiles(ctx, name, workDir, files); err != nil {
			return err
		}
	}

	return reg.SetLastUsed(ctx, name)
}

// resolveSessionName picks the session to target: the explicit -s flag
// (or VMUX_SESSION), else the session used last time, else the
// configured default.
func resolveSessionName(ctx context.Context, reg *session.Registry, cfg *config.Config) (string, error) {
	if sessionFlag != "" {
		return sessionFlag, nil
	}
	if env := os.Getenv(config.EnvSession); env != "" {
		return env, nil
	}
	last, err := reg.LastUsed(ctx)
	if err != nil {
		return "", err
	}
	if last != "" {
		return last, nil
	}
	return cfg.Session(), nil
}
