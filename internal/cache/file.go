package cache

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/caiogeraldes/wttr/internal/observability"
)

// FileStore implements Store on a single file whose modification time marks
// its age. There is no locking: concurrent invocations may race, and one
// run's stale removal can delete a file another run just wrote.
type FileStore struct {
	path    string
	refresh time.Duration
	now     func() time.Time
}

// NewFileStore creates a store at path. The parent directory must already
// exist; the store never creates it.
func NewFileStore(path string, refresh time.Duration) *FileStore {
	return &FileStore{path: path, refresh: refresh, now: time.Now}
}

// Path returns the cache file location.
func (s *FileStore) Path() string {
	return s.path
}

// ReadIfFresh implements Store.ReadIfFresh.
func (s *FileStore) ReadIfFresh(ctx context.Context) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}

	info, err := os.Stat(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("%w: stat %s: %w", ErrCacheIO, s.path, err)
	}

	if s.now().Sub(info.ModTime()) > s.refresh {
		if err := os.Remove(s.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return "", false, fmt.Errorf("%w: remove stale %s: %w", ErrCacheIO, s.path, err)
		}
		observability.CacheLookupsTotal.WithLabelValues("stale").Inc()
		return "", false, nil
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", false, fmt.Errorf("%w: read %s: %w", ErrCacheIO, s.path, err)
	}
	return string(data), true, nil
}

// Write implements Store.Write. Content goes to a temporary file in the same
// directory which is then renamed over the cache path, so readers never see a
// partial record.
func (s *FileStore) Write(ctx context.Context, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	dir := filepath.Dir(s.path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(s.path)+"-*")
	if err != nil {
		return fmt.Errorf("%w: create %s: %w", ErrCacheIO, s.path, err)
	}
	tmpName := tmp.Name()

	if _, err := tmp.WriteString(content); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: write %s: %w", ErrCacheIO, s.path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: close %s: %w", ErrCacheIO, s.path, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("%w: rename %s: %w", ErrCacheIO, s.path, err)
	}
	return nil
}
