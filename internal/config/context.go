package config

import (
	"context"
	"errors"
)

type storeKey struct{}

// ErrNoStore means the command ran without the root command loading the config.
var ErrNoStore = errors.New("configuration not loaded")

// WithStore returns a copy of ctx carrying s.
func WithStore(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, storeKey{}, s)
}

// FromContext returns the Store attached by WithStore.
func FromContext(ctx context.Context) (*Store, error) {
	s, ok := ctx.Value(storeKey{}).(*Store)
	if !ok || s == nil {
		return nil, ErrNoStore
	}
	return s, nil
}
