package service

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/moodlog/internal/config"
	"github.com/moodlog/internal/store/jsonfile"
	"github.com/moodlog/internal/store/memory"
	"github.com/moodlog/internal/store/sqlstore"
)

func TestOpenStoreBackends(t *testing.T) {
	dir := t.TempDir()

	jsonStore, cleanup, err := OpenStore(config.AppConfig{StoreBackend: config.BackendJSON, DataFile: filepath.Join(dir, "moods.json"), StoreLocking: true})
	if err != nil {
		t.Fatalf("json backend: %v", err)
	}
	cleanup()
	if _, ok := jsonStore.(*jsonfile.Store); !ok {
		t.Fatalf("expected *jsonfile.Store, got %T", jsonStore)
	}

	memStore, cleanup, err := OpenStore(config.AppConfig{StoreBackend: config.BackendMemory})
	if err != nil {
		t.Fatalf("memory backend: %v", err)
	}
	cleanup()
	if _, ok := memStore.(*memory.Store); !ok {
		t.Fatalf("expected *memory.Store, got %T", memStore)
	}

	sqlStore, cleanup, err := OpenStore(config.AppConfig{StoreBackend: config.BackendSQLite, DatabasePath: filepath.Join(dir, "moods.db")})
	if err != nil {
		t.Fatalf("sqlite backend: %v", err)
	}
	defer cleanup()
	if _, ok := sqlStore.(*sqlstore.Store); !ok {
		t.Fatalf("expected *sqlstore.Store, got %T", sqlStore)
	}

	svc := NewMoodService(sqlStore, 10)
	if _, err := svc.Record(context.Background(), MoodInput{Mood: "amazing"}); err != nil {
		t.Fatalf("Record through sqlite backend: %v", err)
	}
	history, err := svc.History(context.Background())
	if err != nil || len(history) != 1 {
		t.Fatalf("expected one stored entry, got %d (err=%v)", len(history), err)
	}
}

func TestOpenStoreUnknownBackend(t *testing.T) {
	if _, _, err := OpenStore(config.AppConfig{StoreBackend: "redis"}); !errors.Is(err, config.ErrUnknownBackend) {
		t.Fatalf("expected ErrUnknownBackend, got %v", err)
	}
}
