package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/nmakarov/levelup/internal/api"
	"github.com/nmakarov/levelup/internal/config"
	"github.com/nmakarov/levelup/internal/db"
	"github.com/nmakarov/levelup/internal/services"
)

func main() {
	configPath := os.Getenv("LEVELUP_CONFIG")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("config init failed: %v", err)
	}

	location, err := cfg.Location()
	if err != nil {
		log.Fatalf("timezone init failed: %v", err)
	}

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatalf("database init failed: %v", err)
	}

	template := cfg.TemplateTasks()
	if template == nil {
		template = services.DefaultTemplate()
	}

	repositories := db.NewRepositories(database)
	checklist := services.NewChecklistService(repositories.DayRecords, template, location, cfg.HistoryKeepDays)
	handler := api.NewHandler(checklist)

	app := fiber.New(fiber.Config{
		AppName:               "LevelUp",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(logger.New())
	app.Use(compress.New())

	api.RegisterRoutes(app, handler)

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Printf("server shutdown failed: %v", err)
		}
	}()

	log.Printf("LevelUp listening on http://0.0.0.0:%s (db: %s, tz: %s)", cfg.Port, cfg.DBPath, location.String())
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}
