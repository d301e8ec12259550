// Package store defines the durable mood history and helpers shared by its backends.
package store

import (
	"context"
	"errors"

	"github.com/moodlog/internal/mood"
)

// ErrCorrupt 表示持久化内容无法解析为心情记录序列
var ErrCorrupt = errors.New("mood history is corrupt")

// Store 是心情历史的持久化抽象，记录按写入顺序（最旧在前）保存
type Store interface {
	// Load returns the full history oldest first. Storage that was never written
	// yields an empty slice.
	Load(ctx context.Context) ([]mood.Entry, error)
	// Append adds entry to the end of the history.
	Append(ctx context.Context, entry mood.Entry) error
	// Recent returns at most n entries newest first.
	Recent(ctx context.Context, n int) ([]mood.Entry, error)
}

// Newest 返回 history 中最后 n 条记录的倒序副本；n<=0 时返回空切片
func Newest(history []mood.Entry, n int) []mood.Entry {
	if n <= 0 || len(history) == 0 {
		return []mood.Entry{}
	}
	if n > len(history) {
		n = len(history)
	}

	result := make([]mood.Entry, 0, n)
	for i := len(history) - 1; i >= len(history)-n; i-- {
		result = append(result, history[i])
	}
	return result
}
