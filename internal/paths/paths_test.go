package paths

import (
	"os"
	"path/filepath"
	"testing"
)

// setHome points the resolver at a fresh fake home directory.
func setHome(t *testing.T) string {
	t.Helper()
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_STATE_HOME", "")
	Reset()
	t.Cleanup(Reset)
	return home
}

func TestFreshInstallDefaultsToLegacy(t *testing.T) {
	home := setHome(t)

	cfg, err := ConfigFilePath()
	if err != nil {
		t.Fatalf("ConfigFilePath: %v", err)
	}
	want := filepath.Join(home, ".vmux", "config.yaml")
	if cfg != want {
		t.Errorf("ConfigFilePath = %q, want %q", cfg, want)
	}
}

func TestXDGLayout(t *testing.T) {
	home := setHome(t)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "cfg"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(home, "state"))
	Reset()

	cfg, err := ConfigFilePath()
	if err != nil {
		t.Fatalf("ConfigFilePath: %v", err)
	}
	if want := filepath.Join(home, "cfg", "vmux", "config.yaml"); cfg != want {
		t.Errorf("ConfigFilePath = %q, want %q", cfg, want)
	}

	logPath, err := LogFilePath()
	if err != nil {
		t.Fatalf("LogFilePath: %v", err)
	}
	if want := filepath.Join(home, "state", "vmux", "vmux.log"); logPath != want {
		t.Errorf("LogFilePath = %q, want %q", logPath, want)
	}
}

func TestXDGPartialFallsBackToDefaults(t *testing.T) {
	home := setHome(t)
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "cfg"))
	Reset()

	logPath, err := LogFilePath()
	if err != nil {
		t.Fatalf("LogFilePath: %v", err)
	}
	if want := filepath.Join(home, ".local", "state", "vmux", "vmux.log"); logPath != want {
		t.Errorf("LogFilePath = %q, want %q", logPath, want)
	}
}

func TestLegacyDirWinsOverXDG(t *testing.T) {
	home := setHome(t)
	if err := os.MkdirAll(filepath.Join(home, ".vmux"), 0o755); err != nil {
		t.Fatalf("MkdirAll: %v", err)
	}
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(home, "cfg"))
	Reset()

	cfg, err := ConfigFilePath()
	if err != nil {
		t.Fatalf("ConfigFilePath: %v", err)
	}
	if want := filepath.Join(home, ".vmux", "config.yaml"); cfg != want {
		t.Errorf("ConfigFilePath = %q, want %q", cfg, want)
	}
}
