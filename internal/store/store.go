// Package store persists small string values across invocations by
// writing them into the tmux session environment. Values survive as
// long as the tmux session does and are isolated per session by tmux
// itself.
package store

import "context"

// keyPrefix namespaces every variable this tool writes so it cannot
// collide with the user's own tmux environment.
const keyPrefix = "_vmux_"

// EnvClient is the subset of the tmux client used for persistence.
type EnvClient interface {
	GetEnv(ctx context.Context, name string) (string, error)
	SetEnv(ctx context.Context, name, value string) error
}

// Store is a namespaced key-value view of the tmux session environment.
type Store struct {
	env EnvClient
}

// New creates a Store backed by the given tmux environment client.
func New(env EnvClient) *Store {
	return &Store{env: env}
}

// Set persists value under the namespaced key.
func (s *Store) Set(ctx context.Context, key, value string) error {
	return s.env.SetEnv(ctx, keyPrefix+key, value)
}

// Get retrieves the value stored under key. A key that was never set
// returns an empty string; absence is an expected state, not an error.
func (s *Store) Get(ctx context.Context, key string) (string, error) {
	return s.env.GetEnv(ctx, keyPrefix+key)
}
