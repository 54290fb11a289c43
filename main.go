// @title 就活エージェントマッチング API
// @version 1.0
// @description スワイプ診断の回答と連絡先を受け付けるリード獲得サーバー。

// @host localhost:8080
// @BasePath /api

package main

import (
	"flag"
	"log"

	"jobmatch_backend/internal/app"
	"jobmatch_backend/internal/config"
	"jobmatch_backend/pkg/configwatcher"
	"jobmatch_backend/pkg/logger"

	"go.uber.org/zap"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "run database migration and exit")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.MigrateOnly = *migrateOnly

	application := app.NewApp(cfg)
	defer logger.Sync()

	if *migrateOnly {
		log.Println("Database migration completed, exiting")
		return
	}

	go configwatcher.WatchConfig("configs/config.yaml", func(newCfg *config.Config) {
		logger.Log.Info("Config reloaded",
			zap.Strings("corsOrigins", newCfg.CORS.AllowedOrigins),
			zap.String("mailMode", newCfg.Mail.Mode))
	})

	application.Run()
}
