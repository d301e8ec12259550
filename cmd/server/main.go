package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/moodlog/internal/config"
	"github.com/moodlog/internal/handler"
	"github.com/moodlog/internal/router"
	"github.com/moodlog/internal/service"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	// 初始化存储
	st, cleanup, err := service.OpenStore(cfg)
	if err != nil {
		log.Fatalf("failed to open %s store: %v", cfg.StoreBackend, err)
	}
	defer cleanup()

	if cfg.StoreBackend == config.BackendJSON && !cfg.StoreLocking {
		log.Printf("[mood] STORE_LOCKING=false: concurrent saves may overwrite each other")
	}

	moods := service.NewMoodService(st, cfg.RecentLimit)

	// 设置并运行 Gin 服务器
	r, err := router.SetupRouter(handler.NewAPI(moods), cfg.SessionSecret)
	if err != nil {
		log.Fatalf("failed to set up router: %v", err)
	}
	log.Printf("[mood] listening on %s with %s store", cfg.ListenAddr, cfg.StoreBackend)
	if err := r.Run(cfg.ListenAddr); err != nil {
		log.Fatalf("failed to run server: %v", err)
	}
}
