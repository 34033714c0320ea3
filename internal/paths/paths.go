// Package paths provides centralized path resolution for vmux's files.
//
// vmux follows the XDG Base Directory Specification when the XDG
// variables are set:
//
//   - Config (XDG_CONFIG_HOME): config.yaml — user settings
//   - State (XDG_STATE_HOME): vmux.log — transient log output
//
// Resolution order:
//  1. If ~/.vmux/ exists → use the legacy flat layout (everything there)
//  2. If XDG env vars are set → use the XDG layout
//  3. Fresh install, no XDG vars → default to ~/.vmux/
package paths

import (
	"os"
	"path/filepath"
	"sync"
)

var (
	mu       sync.Mutex
	resolved *resolvedPaths
)

type resolvedPaths struct {
	configDir string
	stateDir  string
}

// resolve computes the path layout once and caches it.
func resolve() (*resolvedPaths, error) {
	mu.Lock()
	defer mu.Unlock()

	if resolved != nil {
		return resolved, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return nil, err
	}

	legacyDir := filepath.Join(home, ".vmux")

	// 1. If ~/.vmux/ exists, keep using it.
	if info, err := os.Stat(legacyDir); err == nil && info.IsDir() {
		resolved = &resolvedPaths{configDir: legacyDir, stateDir: legacyDir}
		return resolved, nil
	}

	// 2. Check XDG env vars.
	xdgConfig := os.Getenv("XDG_CONFIG_HOME")
	xdgState := os.Getenv("XDG_STATE_HOME")

	if xdgConfig != "" || xdgState != "" {
		if xdgConfig == "" {
			xdgConfig = filepath.Join(home, ".config")
		}
		if xdgState == "" {
			xdgState = filepath.Join(home, ".local", "state")
		}
		resolved = &resolvedPaths{
			configDir: filepath.Join(xdgConfig, "vmux"),
			stateDir:  filepath.Join(xdgState, "vmux"),
		}
		return resolved, nil
	}

	// 3. Fresh install, no XDG — default to the legacy layout.
	resolved = &resolvedPaths{configDir: legacyDir, stateDir: legacyDir}
	return resolved, nil
}

// ConfigFilePath returns the full path to config.yaml.
func ConfigFilePath() (string, error) {
	r, err := resolve()
	if err != nil {
		return "", err
	}
	return filepath.Join(r.configDir, "config.yaml"), nil
}

// LogFilePath returns the full path to the log file.
func LogFilePath() (string, error) {
	r, err := resolve()
	if err != nil {
		return "", err
	}
	return filepath.Join(r.stateDir, "vmux.log"), nil
}

// Reset clears the cached path resolution. Intended for testing only.
func Reset() {
	mu.Lock()
	defer mu.Unlock()
	resolved = nil
}
