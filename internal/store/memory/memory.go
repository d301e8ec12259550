// Package memory keeps the mood history in process memory.
package memory

import (
	"context"
	"sync"

	"github.com/moodlog/internal/mood"
	"github.com/moodlog/internal/store"
)

// Store 是进程内的心情历史，重启后数据丢失，适用于测试与演示
type Store struct {
	mu      sync.RWMutex
	entries []mood.Entry
}

var _ store.Store = (*Store)(nil)

// NewStore optionally seeds the history, oldest first.
func NewStore(seed ...mood.Entry) *Store {
	return &Store{entries: append([]mood.Entry(nil), seed...)}
}

// Load returns a copy of the full history.
func (s *Store) Load(ctx context.Context) ([]mood.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	cloned := make([]mood.Entry, len(s.entries))
	copy(cloned, s.entries)
	return cloned, nil
}

// Append adds entry at the end of the history.
func (s *Store) Append(ctx context.Context, entry mood.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries = append(s.entries, entry)
	return nil
}

// Recent returns the newest n entries, newest first.
func (s *Store) Recent(ctx context.Context, n int) ([]mood.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()

	return store.Newest(s.entries, n), nil
}

// Len reports the number of stored entries.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.entries)
}
