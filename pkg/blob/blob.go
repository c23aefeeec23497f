// Package blob provides whole-value persistence keyed by name. Every save
// rewrites the complete blob; there are no partial updates.
package blob

import (
	"context"
	"errors"
)

// ErrNoBlob is returned by Load when nothing has been stored under the key.
var ErrNoBlob = errors.New("no blob stored")

// Store persists opaque blobs under fixed keys.
type Store interface {
	Load(ctx context.Context, key string) ([]byte, error)
	Save(ctx context.Context, key string, data []byte) error
	Close() error
}
