// Package prefs persists small client preferences, such as the remembered
// login email, in the local SQLite store.
package prefs

import (
	"context"
)

// Repository is a key/value store of preferences. Get returns (nil, nil)
// for an absent key.
type Repository interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Clear(ctx context.Context) error
}
