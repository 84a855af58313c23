package cache

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

const record = `{"area":"London","temp":10,"sens":8,"max":12,"min":5,"code":113,"winddir16Point":"N","windspeed":14}`

func writeCacheFile(t *testing.T, path, content string, age time.Duration) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	mtime := time.Now().Add(-age)
	if err := os.Chtimes(path, mtime, mtime); err != nil {
		t.Fatalf("Chtimes: %v", err)
	}
}

// TestFileStore_ReadIfFresh_Fresh verifies that a file younger than the window
// is returned unchanged and left in place.
func TestFileStore_ReadIfFresh_Fresh(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wttr.json")
	writeCacheFile(t, path, record, 10*time.Minute)
	s := NewFileStore(path, RefreshWindow)

	got, ok, err := s.ReadIfFresh(context.Background())
	if err != nil {
		t.Fatalf("ReadIfFresh() error = %v", err)
	}
	if !ok {
		t.Fatal("ReadIfFresh() ok = false, want true")
	}
	if got != record {
		t.Errorf("ReadIfFresh() = %q, want %q", got, record)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("fresh cache file should not be removed: %v", err)
	}
}

// TestFileStore_ReadIfFresh_Stale verifies that a file older than the window
// yields nothing and is deleted.
func TestFileStore_ReadIfFresh_Stale(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wttr.json")
	writeCacheFile(t, path, record, RefreshWindow+time.Minute)
	s := NewFileStore(path, RefreshWindow)

	got, ok, err := s.ReadIfFresh(context.Background())
	if err != nil {
		t.Fatalf("ReadIfFresh() error = %v", err)
	}
	if ok || got != "" {
		t.Errorf("ReadIfFresh() = (%q, %v), want empty miss", got, ok)
	}
	if _, err := os.Stat(path); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("stale cache file should be deleted, stat err = %v", err)
	}
}

func TestFileStore_ReadIfFresh_Boundary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "wttr.json")
	writeCacheFile(t, path, record, 0)
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("Stat: %v", err)
	}
	s := NewFileStore(path, RefreshWindow)
	s.now = func() time.Time { return info.ModTime().Add(RefreshWindow) }

	if _, ok, err := s.ReadIfFresh(context.Background()); err != nil || !ok {
		t.Errorf("ReadIfFresh() at exactly the window = (%v, %v), want fresh", ok, err)
	}
}

func TestFileStore_ReadIfFresh_Missing(t *testing.T) {
	s := NewFileStore(filepath.Join(t.TempDir(), "wttr.json"), RefreshWindow)

	_, ok, err := s.ReadIfFresh(context.Background())
	if err != nil {
		t.Fatalf("ReadIfFresh() error = %v, want nil for missing file", err)
	}
	if ok {
		t.Error("ReadIfFresh() ok = true, want false for missing file")
	}
}

// TestFileStore_ReadIfFresh_IOError verifies that non-not-found failures are
// surfaced as ErrCacheIO.
func TestFileStore_ReadIfFresh_IOError(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wttr.json")
	// A directory at the cache path stats fine but cannot be read as a file.
	if err := os.Mkdir(path, 0o755); err != nil {
		t.Fatalf("Mkdir: %v", err)
	}
	s := NewFileStore(path, RefreshWindow)

	_, _, err := s.ReadIfFresh(context.Background())
	if !errors.Is(err, ErrCacheIO) {
		t.Fatalf("ReadIfFresh() error = %v, want %v", err, ErrCacheIO)
	}
}

func TestFileStore_Write(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "wttr.json")
	s := NewFileStore(path, RefreshWindow)
	ctx := context.Background()

	if err := s.Write(ctx, "old content that is longer"); err != nil {
		t.Fatalf("Write() error = %v", err)
	}
	if err := s.Write(ctx, record); err != nil {
		t.Fatalf("Write() overwrite error = %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile: %v", err)
	}
	if string(data) != record {
		t.Errorf("cache content = %q, want %q", data, record)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir: %v", err)
	}
	if len(entries) != 1 {
		t.Errorf("expected only the cache file in dir, got %d entries", len(entries))
	}

	got, ok, err := s.ReadIfFresh(ctx)
	if err != nil || !ok || got != record {
		t.Errorf("ReadIfFresh() after Write = (%q, %v, %v)", got, ok, err)
	}
}

// TestFileStore_Write_MissingDir verifies the store does not create the cache
// directory and reports the failure as ErrCacheIO.
func TestFileStore_Write_MissingDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing", "wttr.json")
	s := NewFileStore(path, RefreshWindow)

	err := s.Write(context.Background(), record)
	if !errors.Is(err, ErrCacheIO) {
		t.Fatalf("Write() error = %v, want %v", err, ErrCacheIO)
	}
	if _, err := os.Stat(filepath.Dir(path)); !errors.Is(err, os.ErrNotExist) {
		t.Error("Write() should not create the cache directory")
	}
}

func TestFileStore_Path(t *testing.T) {
	s := NewFileStore("/tmp/x/wttr.json", RefreshWindow)
	if s.Path() != "/tmp/x/wttr.json" {
		t.Errorf("Path() = %q", s.Path())
	}
}
