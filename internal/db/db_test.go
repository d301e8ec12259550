package db

import (
	"path/filepath"
	"testing"
)

func TestInitCreatesParentDirAndTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "moodlog.db")

	if err := Init(path); err != nil {
		t.Fatalf("Init returned error: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := DB.DB(); err == nil {
			sqlDB.Close()
		}
		DB = nil
	})

	if !DB.Migrator().HasTable(&MoodEntry{}) {
		t.Fatal("expected mood_entries table to exist")
	}
}
