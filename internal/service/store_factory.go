package service

import (
	"fmt"

	"github.com/moodlog/internal/config"
	"github.com/moodlog/internal/db"
	"github.com/moodlog/internal/store"
	"github.com/moodlog/internal/store/jsonfile"
	"github.com/moodlog/internal/store/memory"
	"github.com/moodlog/internal/store/sqlstore"
)

// OpenStore 根据配置选择存储后端，返回的 cleanup 需在退出前调用
func OpenStore(cfg config.AppConfig) (store.Store, func(), error) {
	switch cfg.StoreBackend {
	case config.BackendJSON, "":
		var opts []jsonfile.Option
		if !cfg.StoreLocking {
			opts = append(opts, jsonfile.WithoutLocking())
		}
		return jsonfile.New(cfg.DataFile, opts...), func() {}, nil
	case config.BackendSQLite:
		if err := db.Init(cfg.DatabasePath); err != nil {
			return nil, nil, fmt.Errorf("init database: %w", err)
		}
		gdb := db.DB
		cleanup := func() {
			if sqlDB, err := gdb.DB(); err == nil {
				sqlDB.Close()
			}
		}
		return sqlstore.New(gdb), cleanup, nil
	case config.BackendMemory:
		return memory.NewStore(), func() {}, nil
	default:
		return nil, nil, fmt.Errorf("%w: %s", config.ErrUnknownBackend, cfg.StoreBackend)
	}
}
