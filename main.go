// @title Talkify API
// @version 1.0
// @description Türkçe konuşanlar için İngilizce öğrenme platformunun backend servisi.

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @securityDefinitions.apikey AdminKey
// @in header
// @name X-Admin-Key

package main

import (
	"flag"
	"log"

	"talkify_backend/internal/app"
	"talkify_backend/internal/config"
	"talkify_backend/pkg/logger"
)

func main() {
	migrateOnly := flag.Bool("migrate-only", false, "yalnızca veritabanı migrasyonlarını çalıştır ve çık")
	migrate := flag.Bool("migrate", false, "açılışta migrasyonları zorla çalıştır (release modunda da)")
	flag.Parse()

	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	cfg.ForceMigrate = *migrate || *migrateOnly
	cfg.MigrateOnly = *migrateOnly

	application, err := app.NewApp(cfg)
	if err != nil {
		log.Fatalf("Failed to start application: %v", err)
	}
	defer logger.Log.Sync()

	if *migrateOnly {
		logger.Log.Info("Migrations applied, exiting")
		return
	}

	application.Run()
}
