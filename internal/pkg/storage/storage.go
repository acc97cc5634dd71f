package storage

import (
	"context"
	"io"
)

// Storage abstracts where uploaded documents live. The local backend is the
// only implementation today; the interface keeps services independent of the
// backing store.
type Storage interface {
	// Save writes the file under the given key and returns the stored key.
	Save(ctx context.Context, r io.Reader, key string) (string, error)

	// Open retrieves a stored file for reading.
	Open(ctx context.Context, key string) (io.ReadCloser, error)

	// Delete removes a stored file. Deleting a missing file is not an error.
	Delete(ctx context.Context, key string) error

	// URL returns a publicly reachable URL for the stored file.
	URL(key string) string

	// Exists reports whether a file is stored under the key.
	Exists(ctx context.Context, key string) (bool, error)
}
