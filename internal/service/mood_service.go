package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/moodlog/internal/mood"
	"github.com/moodlog/internal/store"
)

const (
	// DefaultRecentLimit 首页展示的记录条数
	DefaultRecentLimit = 10
	// MaxNoteRunes 限制备注长度
	MaxNoteRunes = 2000
)

var (
	// ErrMoodMissing 在提交中缺少心情时返回
	ErrMoodMissing = errors.New("mood is required")
	// ErrMoodInvalid 在心情不属于预设分类时返回
	ErrMoodInvalid = errors.New("invalid mood")
	// ErrNoteTooLong 在备注超过 MaxNoteRunes 时返回
	ErrNoteTooLong = errors.New("note is too long")
)

// MoodService 负责心情记录的校验、创建与查询
// 持久化细节由注入的 store.Store 决定，handler 与 CLI 共用
type MoodService struct {
	store       store.Store
	now         func() time.Time
	recentLimit int
}

// MoodInput 定义一次心情提交的原始输入
type MoodInput struct {
	Mood string
	Note string
}

// NewMoodService 构造 MoodService，recentLimit<=0 时使用 DefaultRecentLimit
func NewMoodService(st store.Store, recentLimit int) *MoodService {
	if recentLimit <= 0 {
		recentLimit = DefaultRecentLimit
	}
	return &MoodService{store: st, now: time.Now, recentLimit: recentLimit}
}

// WithClock 允许在测试中固定时间
func (s *MoodService) WithClock(now func() time.Time) *MoodService {
	if now == nil {
		return s
	}
	s.now = now
	return s
}

// RecentLimit returns the number of entries Recent yields at most.
func (s *MoodService) RecentLimit() int {
	return s.recentLimit
}

// Record 校验输入并追加一条记录
func (s *MoodService) Record(ctx context.Context, input MoodInput) (*mood.Entry, error) {
	if strings.TrimSpace(input.Mood) == "" {
		return nil, ErrMoodMissing
	}

	m, err := mood.Parse(input.Mood)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrMoodInvalid, err)
	}

	if utf8.RuneCountInString(strings.TrimSpace(input.Note)) > MaxNoteRunes {
		return nil, fmt.Errorf("%w: limit is %d characters", ErrNoteTooLong, MaxNoteRunes)
	}

	entry := mood.NewEntry(m, input.Note, s.now())
	if err := s.store.Append(ctx, entry); err != nil {
		return nil, fmt.Errorf("record mood: %w", err)
	}
	return &entry, nil
}

// Recent 返回最新的记录，最新在前，最多 recentLimit 条
func (s *MoodService) Recent(ctx context.Context) ([]mood.Entry, error) {
	return s.RecentN(ctx, s.recentLimit)
}

// RecentN 返回最新的 n 条记录，n 被限制在 [1, recentLimit]
func (s *MoodService) RecentN(ctx context.Context, n int) ([]mood.Entry, error) {
	if n <= 0 || n > s.recentLimit {
		n = s.recentLimit
	}

	entries, err := s.store.Recent(ctx, n)
	if err != nil {
		return nil, fmt.Errorf("list recent moods: %w", err)
	}
	return entries, nil
}

// History 返回完整历史，最旧在前
func (s *MoodService) History(ctx context.Context) ([]mood.Entry, error) {
	entries, err := s.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load mood history: %w", err)
	}
	return entries, nil
}
