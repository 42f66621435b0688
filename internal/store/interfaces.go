package store

import "context"

// ConfigStore is the persisted key-value configuration destination. A key is
// either absent or holds exactly one string value; writes are last-write-wins.
//
// The store is a scoped resource: it is opened for a single top-level
// operation and must be closed on every exit path, including failure.
type ConfigStore interface {
	// Get returns the stored value for key. ok is false when key is absent.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set stores value under key, overwriting any previous value.
	Set(ctx context.Context, key, value string) error
	// Keys returns all stored keys in ascending lexicographic order.
	Keys(ctx context.Context) ([]string, error)
	// RemoveAll deletes every stored key.
	RemoveAll(ctx context.Context) error
	// Close flushes and releases the store.
	Close() error
}
