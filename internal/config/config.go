// Package config loads tool configuration from the config file and the
// environment. Environment variables win over the file; the file wins
// over built-in defaults.
package config

import (
	"fmt"
	"os"
	"os/exec"

	"gopkg.in/yaml.v3"

	"github.com/vmux-dev/vmux/internal/paths"
)

// Environment overrides.
const (
	// EnvEditor overrides the editor binary. Falls back to $EDITOR.
	EnvEditor = "VMUX_EDITOR"
	// EnvTmux overrides the tmux binary.
	EnvTmux = "VMUX_TMUX"
	// EnvSession overrides the default session name.
	EnvSession = "VMUX_SESSION"
)

// Built-in defaults.
const (
	defaultEditor  = "vim"
	defaultTmux    = "tmux"
	defaultSession = "default"
)

// Config holds the tool configuration.
type Config struct {
	// Editor is the editor binary launched in new panes.
	Editor string `yaml:"editor,omitempty"`

	// Tmux is the tmux binary used for all multiplexer calls.
	Tmux string `yaml:"tmux,omitempty"`

	// DefaultSession is the session name used when neither -s nor a
	// last-used session is available.
	DefaultSession string `yaml:"default_session,omitempty"`
}

// Load reads the config file, or returns defaults if it doesn't exist.
func Load() (*Config, error) {
	path, err := paths.ConfigFilePath()
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Editor:         defaultEditor,
		Tmux:           defaultTmux,
		DefaultSession: defaultSession,
	}

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, err
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	cfg.fillDefaults()
	return cfg, nil
}

// fillDefaults restores defaults for fields the file left empty.
func (c *Config) fillDefaults() {
	if c.Editor == "" {
		c.Editor = defaultEditor
	}
	if c.Tmux == "" {
		c.Tmux = defaultTmux
	}
	if c.DefaultSession == "" {
		c.DefaultSession = defaultSession
	}
}

// MissingToolError indicates a required binary was not found in PATH.
type MissingToolError struct {
	Tool  string
	Cause error
}

func (e *MissingToolError) Error() string {
	return fmt.Sprintf("%s not found in PATH", e.Tool)
}

func (e *MissingToolError) Unwrap() error {
	return e.Cause
}

// ResolveEditor returns the editor binary to launch, honoring
// VMUX_EDITOR, then EDITOR, then the config file. The binary must
// resolve in PATH.
func (c *Config) ResolveEditor() (string, error) {
	name := c.Editor
	if env := os.Getenv("EDITOR"); env != "" {
		name = env
	}
	if env := os.Getenv(EnvEditor); env != "" {
		name = env
	}
	return lookup(name)
}

// ResolveTmux returns the tmux binary to use, honoring VMUX_TMUX over
// the config file. The binary must resolve in PATH.
func (c *Config) ResolveTmux() (string, error) {
	name := c.Tmux
	if env := os.Getenv(EnvTmux); env != "" {
		name = env
	}
	return lookup(name)
}

// Session returns the default session name, honoring VMUX_SESSION.
func (c *Config) Session() string {
	if env := os.Getenv(EnvSession); env != "" {
		return env
	}
	return c.DefaultSession
}

func lookup(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", &MissingToolError{Tool: name, Cause: err}
	}
	return path, nil
}
