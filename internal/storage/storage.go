package storage

import "context"

// System defines the record storage operations interface. Implementations
// handle the underlying mechanism while providing a consistent API for
// storing and retrieving serialized records.
type System interface {
	// Store saves data at the specified key. If the key already exists,
	// its contents are overwritten. Writes are atomic: a reader never
	// observes a partially written record.
	// Returns ErrInvalidKey if the key is empty or contains path traversal.
	Store(ctx context.Context, key string, data []byte) error

	// Retrieve returns the data stored at the specified key.
	// Returns ErrNotFound if the key does not exist.
	// Returns ErrInvalidKey if the key is malformed.
	Retrieve(ctx context.Context, key string) ([]byte, error)

	// Delete removes the data at the specified key.
	// Returns nil if the key does not exist (idempotent).
	// Returns ErrInvalidKey if the key is malformed.
	Delete(ctx context.Context, key string) error

	// List returns all keys with the given extension, relative to the
	// storage root. Used to rebuild in-memory indexes at startup.
	List(ctx context.Context, ext string) ([]string, error)

	// Validate checks if a key exists and is accessible.
	// Returns (true, nil) if the key exists and is readable.
	// Returns (false, nil) if the key does not exist.
	// Returns (false, error) for permission or system errors.
	Validate(ctx context.Context, key string) (bool, error)
}
