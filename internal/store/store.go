// Package store provides the typed repositories over the pipe-delimited
// table blobs: links, members, and the append-only access log. Each
// repository is a full-blob reader/writer; mutations rewrite the whole table
// atomically and the last write wins.
package store

import (
	"context"
	"errors"

	"github.com/pmlaogao/portal/internal/logger"
	"github.com/pmlaogao/portal/internal/storage"
)

// Store bundles the three record repositories over one KV backend.
type Store struct {
	Links   *LinkRepo
	Members *MemberRepo
	Logs    *LogRepo
}

// New creates the repositories over kv.
func New(kv storage.KV, log logger.Logger) *Store {
	return &Store{
		Links:   &LinkRepo{kv: kv, log: log, seed: seedLinks},
		Members: &MemberRepo{kv: kv, log: log},
		Logs:    &LogRepo{kv: kv, log: log},
	}
}

// loadRaw fetches a table blob, falling back to seed when the key is absent.
// Missing state is not an error: a fresh deployment serves the seed.
func loadRaw(ctx context.Context, kv storage.KV, key, seed string) (string, error) {
	raw, err := kv.Get(ctx, key)
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return seed, nil
		}
		return "", err
	}
	return raw, nil
}
