package cache

import (
	"context"
	"errors"
	"time"
)

// RefreshWindow is how long a cached record stays fresh.
const RefreshWindow = 3600 * time.Second

// ErrCacheIO wraps filesystem failures on the cache path other than not-found.
var ErrCacheIO = errors.New("cache i/o failed")

// Store holds the single extracted weather record between invocations.
// ReadIfFresh returns (content, true, nil) when a fresh entry exists and
// ("", false, nil) when there is none or it was stale. Stale entries are
// removed as a side effect.
type Store interface {
	ReadIfFresh(ctx context.Context) (string, bool, error)
	Write(ctx context.Context, content string) error
}

// InMemoryStore implements Store with a single in-process entry.
// Not thread-safe; use with single goroutine or external synchronization.
type InMemoryStore struct {
	content   string
	writtenAt time.Time
	present   bool
	refresh   time.Duration
	now       func() time.Time
}

// NewInMemoryStore creates an empty store. now may be nil to use time.Now.
func NewInMemoryStore(refresh time.Duration, now func() time.Time) *InMemoryStore {
	if now == nil {
		now = time.Now
	}
	return &InMemoryStore{refresh: refresh, now: now}
}

// ReadIfFresh implements Store.ReadIfFresh.
func (s *InMemoryStore) ReadIfFresh(ctx context.Context) (string, bool, error) {
	if err := ctx.Err(); err != nil {
		return "", false, err
	}
	if !s.present {
		return "", false, nil
	}
	if s.now().Sub(s.writtenAt) > s.refresh {
		s.present = false
		s.content = ""
		return "", false, nil
	}
	return s.content, true, nil
}

// Write implements Store.Write.
func (s *InMemoryStore) Write(ctx context.Context, content string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.content = content
	s.writtenAt = s.now()
	s.present = true
	return nil
}

// Backdate moves the stored entry's write time into the past by age.
func (s *InMemoryStore) Backdate(age time.Duration) {
	s.writtenAt = s.writtenAt.Add(-age)
}

// Present reports whether an entry is stored, fresh or not.
func (s *InMemoryStore) Present() bool {
	return s.present
}
