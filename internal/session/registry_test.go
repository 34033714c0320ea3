package session

import (
	"context"
	"testing"
)

// fakeKV is an in-memory stand-in for the tmux environment store.
type fakeKV struct {
	vars map[string]string
}

func newFakeKV() *fakeKV {
	return &fakeKV{vars: map[string]string{}}
}

func (f *fakeKV) Get(ctx context.Context, key string) (string, error) {
	return f.vars[key], nil
}

func (f *fakeKV) Set(ctx context.Context, key, value string) error {
	f.vars[key] = value
	return nil
}

// fakeLister reports a fixed set of live pane ids.
type fakeLister struct {
	ids []string
}

func (f *fakeLister) ListPaneIDs(ctx context.Context) ([]string, error) {
	return f.ids, nil
}

func TestLookupAbsent(t *testing.T) {
	r := NewRegistry(newFakeKV(), &fakeLister{})

	_, ok, err := r.Lookup(context.Background(), "proj")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if ok {
		t.Error("expected no entry for unregistered session")
	}
}

func TestRegisterThenLookup(t *testing.T) {
	r := NewRegistry(newFakeKV(), &fakeLister{})
	ctx := context.Background()
	loc := PaneLocator{Session: "dev", Window: 3, Pane: 0, PaneID: "%7"}

	if err := r.Register(ctx, "proj", loc, "/home/u/proj"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	got, ok, err := r.Lookup(ctx, "proj")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if !ok {
		t.Fatal("expected entry after Register")
	}
	if got != loc {
		t.Errorf("Lookup = %+v, want %+v", got, loc)
	}

	dir, err := r.LastWorkingDir(ctx, "proj")
	if err != nil {
		t.Fatalf("LastWorkingDir: %v", err)
	}
	if dir != "/home/u/proj" {
		t.Errorf("LastWorkingDir = %q, want %q", dir, "/home/u/proj")
	}
}

func TestLookupMalformedEntry(t *testing.T) {
	kv := newFakeKV()
	kv.vars["pane_proj"] = "not a locator"
	r := NewRegistry(kv, &fakeLister{})

	_, ok, err := r.Lookup(context.Background(), "proj")
	if err != nil {
		t.Fatalf("Lookup on corrupt entry should self-heal, got %v", err)
	}
	if ok {
		t.Error("corrupt entry should behave like a missing one")
	}
}

func TestIsLive(t *testing.T) {
	tests := []struct {
		name    string
		liveIDs []string
		want    bool
	}{
		{name: "pane alive", liveIDs: []string{"%0", "%7"}, want: true},
		{name: "pane gone", liveIDs: []string{"%0", "%3"}, want: false},
		{name: "no panes at all", liveIDs: nil, want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRegistry(newFakeKV(), &fakeLister{ids: tt.liveIDs})
			ctx := context.Background()
			loc := PaneLocator{Session: "dev", Window: 3, Pane: 0, PaneID: "%7"}
			if err := r.Register(ctx, "proj", loc, "/home/u/proj"); err != nil {
				t.Fatalf("Register: %v", err)
			}

			live, err := r.IsLive(ctx, "proj")
			if err != nil {
				t.Fatalf("IsLive: %v", err)
			}
			if live != tt.want {
				t.Errorf("IsLive = %v, want %v", live, tt.want)
			}
		})
	}
}

func TestIsLiveUnregistered(t *testing.T) {
	r := NewRegistry(newFakeKV(), &fakeLister{ids: []string{"%7"}})

	live, err := r.IsLive(context.Background(), "proj")
	if err != nil {
		t.Fatalf("IsLive: %v", err)
	}
	if live {
		t.Error("unregistered session must not be live")
	}
}

func TestLastUsedPointer(t *testing.T) {
	r := NewRegistry(newFakeKV(), &fakeLister{})
	ctx := context.Background()

	name, err := r.LastUsed(ctx)
	if err != nil {
		t.Fatalf("LastUsed: %v", err)
	}
	if name != "" {
		t.Errorf("LastUsed on fresh store = %q, want empty", name)
	}

	if err := r.SetLastUsed(ctx, "proj"); err != nil {
		t.Fatalf("SetLastUsed: %v", err)
	}
	name, err = r.LastUsed(ctx)
	if err != nil {
		t.Fatalf("LastUsed: %v", err)
	}
	if name != "proj" {
		t.Errorf("LastUsed = %q, want %q", name, "proj")
	}
}

func TestStaleEntryOverwritten(t *testing.T) {
	r := NewRegistry(newFakeKV(), &fakeLister{})
	ctx := context.Background()

	old := PaneLocator{Session: "dev", Window: 3, Pane: 0, PaneID: "%7"}
	if err := r.Register(ctx, "proj", old, "/old"); err != nil {
		t.Fatalf("Register: %v", err)
	}
	fresh := PaneLocator{Session: "dev", Window: 5, Pane: 0, PaneID: "%9"}
	if err := r.Register(ctx, "proj", fresh, "/new"); err != nil {
		t.Fatalf("Register: %v", err)
	}

	got, ok, err := r.Lookup(ctx, "proj")
	if err != nil || !ok {
		t.Fatalf("Lookup: ok=%v err=%v", ok, err)
	}
	if got != fresh {
		t.Errorf("Lookup = %+v, want replacement %+v", got, fresh)
	}
	dir, _ := r.LastWorkingDir(ctx, "proj")
	if dir != "/new" {
		t.Errorf("LastWorkingDir = %q, want %q", dir, "/new")
	}
}
