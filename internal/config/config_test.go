package config

import (
	"errors"
	"os"
	"testing"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"LISTEN_ADDR", "PORT", "GIN_MODE", "STORE_BACKEND", "DATA_FILE",
		"STORE_LOCKING", "DATABASE_PATH", "SESSION_SECRET", "RECENT_LIMIT",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.ListenAddr != ":8080" {
		t.Fatalf("unexpected listen addr %q", cfg.ListenAddr)
	}
	if cfg.StoreBackend != BackendJSON {
		t.Fatalf("unexpected backend %q", cfg.StoreBackend)
	}
	if cfg.DataFile != "mood_data.json" {
		t.Fatalf("unexpected data file %q", cfg.DataFile)
	}
	if cfg.RecentLimit != 10 {
		t.Fatalf("unexpected recent limit %d", cfg.RecentLimit)
	}
	if cfg.GinMode != "release" {
		t.Fatalf("unexpected gin mode %q", cfg.GinMode)
	}
}

func TestLoadOverrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("PORT", "9000")
	t.Setenv("STORE_BACKEND", " SQLite ")
	t.Setenv("DATABASE_PATH", "/tmp/moods.db")
	t.Setenv("STORE_LOCKING", "false")
	t.Setenv("RECENT_LIMIT", "5")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load returned error: %v", err)
	}

	if cfg.ListenAddr != ":9000" {
		t.Fatalf("expected listen addr derived from port, got %q", cfg.ListenAddr)
	}
	if cfg.StoreBackend != BackendSQLite {
		t.Fatalf("expected sqlite backend, got %q", cfg.StoreBackend)
	}
	if cfg.DatabasePath != "/tmp/moods.db" {
		t.Fatalf("unexpected database path %q", cfg.DatabasePath)
	}
	if cfg.StoreLocking {
		t.Fatal("expected locking to be disabled")
	}
	if cfg.RecentLimit != 5 {
		t.Fatalf("unexpected recent limit %d", cfg.RecentLimit)
	}
}

func TestLoadRejectsUnknownBackend(t *testing.T) {
	clearEnv(t)
	t.Setenv("STORE_BACKEND", "redis")

	if _, err := Load(); !errors.Is(err, ErrUnknownBackend) {
		t.Fatalf("expected ErrUnknownBackend, got %v", err)
	}
}
