// Package sqlstore keeps the mood history as an append-only sqlite table.
package sqlstore

import (
	"context"
	"fmt"

	"github.com/moodlog/internal/db"
	"github.com/moodlog/internal/mood"
	"github.com/moodlog/internal/store"
	"gorm.io/gorm"
)

// Store 每次 Append 只插入一行，因此不存在整表读-改-写的丢失更新问题
type Store struct {
	db *gorm.DB
}

var _ store.Store = (*Store)(nil)

// New 构造基于 gorm 的存储，调用方负责完成迁移
func New(gdb *gorm.DB) *Store {
	return &Store{db: gdb}
}

// Load returns every row ordered by insertion.
func (s *Store) Load(ctx context.Context) ([]mood.Entry, error) {
	var rows []db.MoodEntry
	if err := s.db.WithContext(ctx).Order("id ASC").Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("load mood entries: %w", err)
	}
	return toEntries(rows), nil
}

// Append inserts entry as a new row.
func (s *Store) Append(ctx context.Context, entry mood.Entry) error {
	row := db.MoodEntry{
		Mood:      entry.Mood,
		Emoji:     entry.Emoji,
		Note:      entry.Note,
		Timestamp: entry.Timestamp,
	}
	if err := s.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("append mood entry: %w", err)
	}
	return nil
}

// Recent returns the newest n rows, newest first.
func (s *Store) Recent(ctx context.Context, n int) ([]mood.Entry, error) {
	if n <= 0 {
		return []mood.Entry{}, nil
	}

	var rows []db.MoodEntry
	if err := s.db.WithContext(ctx).Order("id DESC").Limit(n).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list recent mood entries: %w", err)
	}
	return toEntries(rows), nil
}

func toEntries(rows []db.MoodEntry) []mood.Entry {
	entries := make([]mood.Entry, 0, len(rows))
	for _, row := range rows {
		entries = append(entries, mood.Entry{
			Mood:      row.Mood,
			Emoji:     row.Emoji,
			Note:      row.Note,
			Timestamp: row.Timestamp,
		})
	}
	return entries
}
