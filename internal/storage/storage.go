package storage

import (
	"context"
	"io"
)

// BlobStore defines the capability for storing uploaded product images.
// Store writes the blob under a generated key derived from the suggested
// extension and returns that key. Remove deletes a previously stored blob.
type BlobStore interface {
	Store(ctx context.Context, r io.Reader, ext string) (key string, err error)
	Remove(ctx context.Context, key string) error
}
