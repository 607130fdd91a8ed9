package store

import (
	"context"
)

type storeContextKey struct{}

// NewContext returns a copy of ctx carrying the store
func NewContext(ctx context.Context, s *Store) context.Context {
	return context.WithValue(ctx, storeContextKey{}, s)
}

// FromContext returns the store stored in ctx, or nil if none is present
func FromContext(ctx context.Context) *Store {
	s, _ := ctx.Value(storeContextKey{}).(*Store)
	return s
}
