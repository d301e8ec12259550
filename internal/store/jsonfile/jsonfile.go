// Package jsonfile stores the mood history as a single JSON array on disk.
package jsonfile

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/moodlog/internal/mood"
	"github.com/moodlog/internal/store"
)

// Store 以整文件读写的方式维护心情历史。
// 默认在进程内串行化 Append 的读-改-写流程；WithoutLocking 关闭该保护。
type Store struct {
	path    string
	locking bool
	mu      sync.Mutex

	// afterLoad runs between the load and save halves of Append.
	afterLoad func()
}

// Option 调整 Store 的行为
type Option func(*Store)

// WithoutLocking disables the Append mutex. Two overlapping appends then read the
// same history and the later save silently drops the earlier entry.
func WithoutLocking() Option {
	return func(s *Store) {
		s.locking = false
	}
}

// New 构造指向 path 的 JSON 文件存储，文件在首次写入时创建
func New(path string, opts ...Option) *Store {
	s := &Store{path: path, locking: true}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ store.Store = (*Store)(nil)

// Path returns the backing file path.
func (s *Store) Path() string {
	return s.path
}

// Load 读取完整历史；文件不存在或为空时返回空切片
func (s *Store) Load(ctx context.Context) ([]mood.Entry, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return s.read()
}

// Append 读取完整历史、追加 entry 并整体写回
func (s *Store) Append(ctx context.Context, entry mood.Entry) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if s.locking {
		s.mu.Lock()
		defer s.mu.Unlock()
	}

	history, err := s.read()
	if err != nil {
		return err
	}
	if s.afterLoad != nil {
		s.afterLoad()
	}

	history = append(history, entry)
	return s.write(history)
}

// Recent 返回最新的 n 条记录，最新在前
func (s *Store) Recent(ctx context.Context, n int) ([]mood.Entry, error) {
	history, err := s.Load(ctx)
	if err != nil {
		return nil, err
	}
	return store.Newest(history, n), nil
}

func (s *Store) read() ([]mood.Entry, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, os.ErrNotExist) {
		return []mood.Entry{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read mood history %s: %w", s.path, err)
	}
	if len(bytes.TrimSpace(data)) == 0 {
		return []mood.Entry{}, nil
	}

	var history []mood.Entry
	if err := json.Unmarshal(data, &history); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", store.ErrCorrupt, s.path, err)
	}
	if history == nil {
		history = []mood.Entry{}
	}
	return history, nil
}

func (s *Store) write(history []mood.Entry) error {
	if err := ensureParentDir(s.path); err != nil {
		return fmt.Errorf("create mood history dir: %w", err)
	}

	data, err := json.MarshalIndent(history, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal mood history: %w", err)
	}

	// 先写临时文件再 rename，避免写到一半的文件被读到
	tmp, err := os.CreateTemp(filepath.Dir(s.path), filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		_ = os.Remove(tmpPath)
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("replace mood history: %w", err)
	}
	return nil
}

func ensureParentDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}

	info, err := os.Stat(dir)
	if err == nil {
		if !info.IsDir() {
			return errors.New("mood history parent is not a directory")
		}
		return nil
	}

	if os.IsNotExist(err) {
		return os.MkdirAll(dir, 0o755)
	}

	return err
}
