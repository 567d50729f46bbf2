// Package file implements a local-disk storage backend: one JSON file per
// key under a state directory. It is the default backend and the closest
// analog to the browser's per-origin local storage.
package file

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	apperrors "github.com/JuanoBQ/eCommerce-Template-sub001/pkg/errors"
)

// Backend stores each key as <dir>/<key>.json.
type Backend struct {
	dir string
}

// New creates a file backend rooted at dir, creating the directory if needed.
func New(dir string) (*Backend, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create state dir: %w", err)
	}
	return &Backend{dir: dir}, nil
}

// Dir returns the state directory.
func (b *Backend) Dir() string {
	return b.dir
}

// Load reads the blob stored under key.
func (b *Backend) Load(ctx context.Context, key string) ([]byte, error) {
	data, err := os.ReadFile(b.path(key))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, apperrors.NotFound("state", key)
		}
		return nil, fmt.Errorf("read state file: %w", err)
	}
	return data, nil
}

// Save writes the blob under key. The write goes to a temp file first and is
// renamed into place, so readers never observe a partially written file.
func (b *Backend) Save(ctx context.Context, key string, data []byte) error {
	path := b.path(key)

	tmp, err := os.CreateTemp(b.dir, key+"-*.tmp")
	if err != nil {
		return fmt.Errorf("create temp state file: %w", err)
	}

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return fmt.Errorf("write state file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("close state file: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return fmt.Errorf("replace state file: %w", err)
	}

	return nil
}

// Delete removes the file stored under key.
func (b *Backend) Delete(ctx context.Context, key string) error {
	if err := os.Remove(b.path(key)); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove state file: %w", err)
	}
	return nil
}

func (b *Backend) path(key string) string {
	return filepath.Join(b.dir, key+".json")
}
