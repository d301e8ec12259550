package sqlstore

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/moodlog/internal/db"
	"github.com/moodlog/internal/mood"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupSQLStore(t *testing.T) *Store {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	// shared-cache 内存库并发写会返回 table locked，测试中串行化连接
	sqlDB.SetMaxOpenConns(1)

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	t.Cleanup(func() {
		sqlDB.Close()
	})

	return New(gdb)
}

func TestLoadEmpty(t *testing.T) {
	s := setupSQLStore(t)

	history, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}
	if history == nil || len(history) != 0 {
		t.Fatalf("expected empty non-nil history, got %#v", history)
	}
}

func TestAppendLoadRecent(t *testing.T) {
	s := setupSQLStore(t)
	ctx := context.Background()

	for i := 1; i <= 15; i++ {
		entry := mood.Entry{Mood: "amazing", Emoji: "😄", Note: fmt.Sprintf("entry %d", i), Timestamp: "2025-05-01 08:00:00"}
		if err := s.Append(ctx, entry); err != nil {
			t.Fatalf("Append %d: %v", i, err)
		}
	}

	history, err := s.Load(ctx)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(history) != 15 {
		t.Fatalf("expected 15 entries, got %d", len(history))
	}
	for i, entry := range history {
		if want := fmt.Sprintf("entry %d", i+1); entry.Note != want {
			t.Fatalf("position %d: expected %q, got %q", i, want, entry.Note)
		}
	}

	recent, err := s.Recent(ctx, 10)
	if err != nil {
		t.Fatalf("Recent: %v", err)
	}
	if len(recent) != 10 {
		t.Fatalf("expected 10 entries, got %d", len(recent))
	}
	for i, entry := range recent {
		if want := fmt.Sprintf("entry %d", 15-i); entry.Note != want {
			t.Fatalf("position %d: expected %q, got %q", i, want, entry.Note)
		}
	}

	if none, _ := s.Recent(ctx, 0); len(none) != 0 {
		t.Fatalf("expected no entries for n=0, got %d", len(none))
	}
}

func TestConcurrentAppendsAreAllKept(t *testing.T) {
	s := setupSQLStore(t)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := s.Append(context.Background(), mood.Entry{Mood: "okay", Note: fmt.Sprintf("writer %d", i)}); err != nil {
				t.Errorf("Append %d: %v", i, err)
			}
		}(i)
	}
	wg.Wait()

	history, err := s.Load(context.Background())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(history) != 10 {
		t.Fatalf("expected 10 entries, got %d", len(history))
	}
}
