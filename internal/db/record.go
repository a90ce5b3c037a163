// Package db provides the persistent record store: a keyed map of
// JSON-serializable values with Mongo-backed and in-memory implementations.
package db

import "context"

// RecordStore is the storage capability the rest of the service depends on.
// Values round-trip through JSON exactly; Get reports presence through its
// bool so an absent key is not an error. Implementations wrap failures as
// *apperr.StorageError and must not clobber existing state on a failed
// write.
type RecordStore interface {
	// Get decodes the value stored under key into out. It returns false
	// when the key is absent, leaving out untouched.
	Get(ctx context.Context, key string, out interface{}) (bool, error)
	// Set stores value under key, replacing any previous value.
	Set(ctx context.Context, key string, value interface{}) error
	// Remove deletes key. Removing an absent key is a no-op.
	Remove(ctx context.Context, key string) error
}
