package store

import (
	"context"
	"errors"
)

// ErrNotFound is returned by Get when no document is stored under the key.
var ErrNotFound = errors.New("store: key not found")

// Store holds JSON documents under string keys. Every write replaces the whole
// document; concurrent writers race and the last one wins.
type Store interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte) error
	// Delete removes the key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	Ping(ctx context.Context) error
	Close() error
}
