package repositories

import "context"

// KVStore is the storage port: a string-keyed, string-valued store with
// whole-value reads and last-writer-wins writes. The profile and audit
// repositories are built on top of it, so the aggregation and projection logic
// can be tested against an in-memory implementation.
type KVStore interface {
	// Get returns the stored value for key. It returns apperrors.ErrNotFound
	// (wrapped) when the key has never been written.
	Get(ctx context.Context, key string) (string, error)

	// Set writes value under key, replacing any previous value.
	Set(ctx context.Context, key string, value string) error

	// Delete removes key. Deleting an absent key is not an error.
	Delete(ctx context.Context, key string) error

	// Clear removes every key. Used by the full local-data wipe.
	Clear(ctx context.Context) error
}
