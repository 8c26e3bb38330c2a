// Package storage defines the key-value persistence capability injected into
// the record stores and the usage counter, plus its Redis and in-memory
// backends. Values are opaque UTF-8 blobs; the stores own their key spaces
// exclusively.
package storage

import (
	"context"
	"errors"
)

// ErrNotFound is returned when a key has no stored value.
var ErrNotFound = errors.New("storage: key not found")

// KV is the persistence capability. There is no locking or versioning:
// concurrent writers race and the last write wins.
type KV interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key, value string) error
	Delete(ctx context.Context, key string) error
}
