package session

import (
	"context"
	"errors"
	"slices"

	"github.com/vmux-dev/vmux/internal/logger"
)

// Store key patterns. The registry derives per-session keys from the
// session name; the last-used pointer is a single shared slot.
const (
	paneKeyPrefix = "pane_"
	dirKeyPrefix  = "dir_"
	lastUsedKey   = "last_session"
)

// KV is the subset of the store used by the registry.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
}

// PaneLister enumerates the panes currently alive on the tmux server.
type PaneLister interface {
	ListPaneIDs(ctx context.Context) ([]string, error)
}

// Registry maps session names to pane locators and the working
// directory recorded when each session was created.
//
// The backing store is shared, mutable, process-external state: every
// read may race with a write from a concurrent invocation, and entries
// outlive the panes they point at. Callers must treat lookups as hints
// and verify liveness before acting on them.
type Registry struct {
	kv    KV
	panes PaneLister
}

// NewRegistry creates a Registry over the given store and pane lister.
func NewRegistry(kv KV, panes PaneLister) *Registry {
	return &Registry{kv: kv, panes: panes}
}

// Lookup returns the recorded locator for name. The second return is
// false when no entry exists or the stored value fails to parse; a
// corrupt entry behaves exactly like a missing one and is overwritten
// by the next Register.
func (r *Registry) Lookup(ctx context.Context, name string) (PaneLocator, bool, error) {
	raw, err := r.kv.Get(ctx, paneKeyPrefix+name)
	if err != nil {
		return PaneLocator{}, false, err
	}
	if raw == "" {
		return PaneLocator{}, false, nil
	}
	loc, err := ParseLocator(raw)
	if err != nil {
		var parseErr *ParseError
		if errors.As(err, &parseErr) {
			logger.Debug("ignoring malformed registry entry", "session", name, "value", raw)
			return PaneLocator{}, false, nil
		}
		return PaneLocator{}, false, err
	}
	return loc, true, nil
}

// Register records the locator and working directory for name,
// replacing any previous entry.
func (r *Registry) Register(ctx context.Context, name string, loc PaneLocator, workDir string) error {
	if err := r.kv.Set(ctx, paneKeyPrefix+name, loc.String()); err != nil {
		return err
	}
	return r.kv.Set(ctx, dirKeyPrefix+name, workDir)
}

// IsLive reports whether name has a registered pane that still exists
// on the server. The stored locator is never trusted on its own; the
// pane id must appear in the live pane listing, which guards against
// entries orphaned by a window closed behind our back.
func (r *Registry) IsLive(ctx context.Context, name string) (bool, error) {
	loc, ok, err := r.Lookup(ctx, name)
	if err != nil || !ok {
		return false, err
	}
	ids, err := r.panes.ListPaneIDs(ctx)
	if err != nil {
		return false, err
	}
	return slices.Contains(ids, loc.PaneID), nil
}

// LastWorkingDir returns the working directory recorded when name was
// created, or empty if none was stored.
func (r *Registry) LastWorkingDir(ctx context.Context, name string) (string, error) {
	return r.kv.Get(ctx, dirKeyPrefix+name)
}

// LastUsed returns the most recently used session name, or empty if no
// invocation has recorded one yet.
func (r *Registry) LastUsed(ctx context.Context) (string, error) {
	return r.kv.Get(ctx, lastUsedKey)
}

// SetLastUsed records name as the most recently used session. Written
// on every invocation so a bare "vmux file" keeps targeting the
// session the user touched last.
func (r *Registry) SetLastUsed(ctx context.Context, name string) error {
	return r.kv.Set(ctx, lastUsedKey, name)
}
