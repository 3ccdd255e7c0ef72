// Package filestore keeps each collection as one JSON array on disk.
//
// Files are always rewritten whole. Writes go to a temp file in the same directory and
// are renamed over the target.
package filestore

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"workorder_invoicing/internal/usecase/interfaces"
)

type jsonFile[T any] struct {
	path string
	// missingIsEmpty makes a missing file read as an empty collection instead of
	// ErrStorageUnavailable.
	missingIsEmpty bool

	mu sync.RWMutex
}

func newJSONFile[T any](path string, missingIsEmpty bool) *jsonFile[T] {
	return &jsonFile[T]{path: path, missingIsEmpty: missingIsEmpty}
}

func (f *jsonFile[T]) read(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f.mu.RLock()
	raw, err := os.ReadFile(f.path)
	f.mu.RUnlock()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && f.missingIsEmpty {
			return []T{}, nil
		}
		return nil, fmt.Errorf("%w: read %s: %v", interfaces.ErrStorageUnavailable, f.path, err)
	}

	if len(bytes.TrimSpace(raw)) == 0 && f.missingIsEmpty {
		return []T{}, nil
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, fmt.Errorf("%w: decode %s: %v", interfaces.ErrMalformedData, f.path, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (f *jsonFile[T]) write(ctx context.Context, items []T) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if items == nil {
		items = []T{}
	}

	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return fmt.Errorf("%w: encode %s: %v", interfaces.ErrMalformedData, f.path, err)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	dir := filepath.Dir(f.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("%w: create dir %s: %v", interfaces.ErrStorageUnavailable, dir, err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(f.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("%w: create temp file: %v", interfaces.ErrStorageUnavailable, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	if _, err := tmp.Write(append(b, '\n')); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: write %s: %v", interfaces.ErrStorageUnavailable, tmpName, err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return fmt.Errorf("%w: sync %s: %v", interfaces.ErrStorageUnavailable, tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("%w: close %s: %v", interfaces.ErrStorageUnavailable, tmpName, err)
	}
	if err := os.Rename(tmpName, f.path); err != nil {
		return fmt.Errorf("%w: replace %s: %v", interfaces.ErrStorageUnavailable, f.path, err)
	}
	return nil
}
