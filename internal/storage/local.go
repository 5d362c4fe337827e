package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStore implements BlobStore on a local filesystem directory.
type LocalStore struct {
	dir string
}

// NewLocalStore creates the storage directory if needed and returns a store
// rooted at it.
func NewLocalStore(dir string) (*LocalStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}
	return &LocalStore{dir: dir}, nil
}

// Store writes the blob to a file named <uuid>.<ext>. UUID naming keeps
// concurrent uploads from clobbering each other.
func (s *LocalStore) Store(ctx context.Context, r io.Reader, ext string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	key := uuid.NewString() + normalizeExt(ext)

	f, err := os.Create(filepath.Join(s.dir, key))
	if err != nil {
		return "", fmt.Errorf("failed to create blob file: %w", err)
	}

	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write blob file: %w", err)
	}

	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to close blob file: %w", err)
	}

	return key, nil
}

// Remove deletes a stored blob by key. Removing a missing blob is not an error.
func (s *LocalStore) Remove(_ context.Context, key string) error {
	// Keys are bare filenames; strip any path to keep deletes inside the dir.
	key = filepath.Base(key)
	if key == "." || key == string(filepath.Separator) {
		return fmt.Errorf("invalid blob key %q", key)
	}

	if err := os.Remove(filepath.Join(s.dir, key)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove blob file: %w", err)
	}
	return nil
}

func normalizeExt(ext string) string {
	ext = strings.TrimSpace(strings.ToLower(ext))
	if ext == "" {
		return ""
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}
	return ext
}
