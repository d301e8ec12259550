package config

import (
	"errors"
	"fmt"
	"io/fs"
	"strings"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

const (
	// BackendJSON 使用单个 JSON 文件保存历史
	BackendJSON = "json"
	// BackendSQLite 使用 sqlite 追加日志表
	BackendSQLite = "sqlite"
	// BackendMemory 仅保存在进程内存中
	BackendMemory = "memory"

	defaultRecentLimit = 10
)

// ErrUnknownBackend 在 STORE_BACKEND 取值不受支持时返回
var ErrUnknownBackend = errors.New("unknown store backend")

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr    string `env:"LISTEN_ADDR"`
	Port          string `env:"PORT" envDefault:"8080"`
	GinMode       string `env:"GIN_MODE" envDefault:"release"`
	StoreBackend  string `env:"STORE_BACKEND" envDefault:"json"`
	DataFile      string `env:"DATA_FILE" envDefault:"mood_data.json"`
	StoreLocking  bool   `env:"STORE_LOCKING" envDefault:"true"`
	DatabasePath  string `env:"DATABASE_PATH" envDefault:"moodlog.db"`
	SessionSecret string `env:"SESSION_SECRET" envDefault:"moodlog-dev-secret"`
	RecentLimit   int    `env:"RECENT_LIMIT" envDefault:"10"`
}

// Load 先读取可选的 .env 文件，再从环境变量解析配置，并为缺失项提供默认值。
func Load() (AppConfig, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return AppConfig{}, fmt.Errorf("load .env: %w", err)
	}

	var cfg AppConfig
	if err := env.Parse(&cfg); err != nil {
		return AppConfig{}, fmt.Errorf("parse env: %w", err)
	}

	cfg.Port = withDefault(cfg.Port, "8080")
	cfg.ListenAddr = withDefault(cfg.ListenAddr, fmt.Sprintf(":%s", cfg.Port))
	cfg.GinMode = withDefault(cfg.GinMode, "release")
	cfg.StoreBackend = strings.ToLower(withDefault(cfg.StoreBackend, BackendJSON))
	cfg.DataFile = withDefault(cfg.DataFile, "mood_data.json")
	cfg.DatabasePath = withDefault(cfg.DatabasePath, "moodlog.db")
	cfg.SessionSecret = withDefault(cfg.SessionSecret, "moodlog-dev-secret")
	if cfg.RecentLimit <= 0 {
		cfg.RecentLimit = defaultRecentLimit
	}

	switch cfg.StoreBackend {
	case BackendJSON, BackendSQLite, BackendMemory:
	default:
		return AppConfig{}, fmt.Errorf("%w: %s", ErrUnknownBackend, cfg.StoreBackend)
	}

	return cfg, nil
}

func withDefault(value, fallback string) string {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return fallback
	}
	return trimmed
}
