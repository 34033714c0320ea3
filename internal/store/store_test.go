package store

import (
	"context"
	"testing"
)

// fakeEnv records environment writes in memory.
type fakeEnv struct {
	vars map[string]string
}

func (f *fakeEnv) GetEnv(ctx context.Context, name string) (string, error) {
	return f.vars[name], nil
}

func (f *fakeEnv) SetEnv(ctx context.Context, name, value string) error {
	f.vars[name] = value
	return nil
}

func TestSetGetRoundTrip(t *testing.T) {
	env := &fakeEnv{vars: map[string]string{}}
	s := New(env)
	ctx := context.Background()

	if err := s.Set(ctx, "pane_proj", "dev:3.0$%7"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	got, err := s.Get(ctx, "pane_proj")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got != "dev:3.0$%7" {
		t.Errorf("Get = %q, want %q", got, "dev:3.0$%7")
	}
}

func TestKeysAreNamespaced(t *testing.T) {
	env := &fakeEnv{vars: map[string]string{}}
	s := New(env)

	if err := s.Set(context.Background(), "last_session", "proj"); err != nil {
		t.Fatalf("Set: %v", err)
	}
	if _, ok := env.vars["_vmux_last_session"]; !ok {
		t.Errorf("expected namespaced key _vmux_last_session, got %v", env.vars)
	}
}

func TestGetMissingKey(t *testing.T) {
	s := New(&fakeEnv{vars: map[string]string{}})

	got, err := s.Get(context.Background(), "pane_nope")
	if err != nil {
		t.Fatalf("Get on missing key should not error, got %v", err)
	}
	if got != "" {
		t.Errorf("Get = %q, want empty", got)
	}
}
