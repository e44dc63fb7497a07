package ports

import "context"

// KeyValueStore is a minimal blob store. The workout history is serialized
// as a single JSON blob under one fixed key; list semantics (ordering,
// truncation) live in the recorder, not the store.
type KeyValueStore interface {
	// Get returns the value for key, with found=false when the key is absent
	Get(ctx context.Context, key string) (value string, found bool, err error)

	Set(ctx context.Context, key, value string) error

	Remove(ctx context.Context, key string) error

	Close() error
}
