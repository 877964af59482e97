package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"promessas-api/internal/adapters/cache"
	"promessas-api/internal/adapters/http/middleware"
	"promessas-api/internal/adapters/http/routes"
	"promessas-api/internal/adapters/persistence/models"
	"promessas-api/internal/config"

	"github.com/gofiber/fiber/v2"

	_ "promessas-api/docs" // Swagger docs
)

// @title Promessas API
// @version 1.0
// @description Candidatos, cargos, eleições e promessas de campanha.

// @contact.name API Support

// @BasePath /api/v1
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Failed to connect to database: %v", err)
	}
	defer config.CloseDatabase()

	if err := models.AutoMigrate(db); err != nil {
		log.Fatalf("❌ Failed to auto migrate: %v", err)
	}
	log.Println("✅ Database migration completed")

	if cfg.SeedData {
		if err := config.NewSeeder(db, cfg).Run(); err != nil {
			log.Printf("⚠️ Warning: Failed to seed reference data: %v", err)
		}
	}

	// Cache backend: Redis when REDIS_URL answers, in-process otherwise
	startCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	appCache := cache.New(cache.NewStore(startCtx, cfg.Cache.RedisURL, cfg.Cache.SweepInterval))
	cancel()
	defer appCache.Close()
	log.Printf("✅ Cache ready [backend: %s]", appCache.Backend())

	// Create Fiber app
	app := fiber.New(fiber.Config{
		AppName:      "Promessas API v1.0",
		ErrorHandler: middleware.CustomErrorHandler,
	})

	middleware.Setup(app, cfg)
	routes.Setup(app, db, appCache, cfg)

	// Graceful shutdown
	go gracefulShutdown(app)

	log.Printf("🚀 Server starting on port %s [MODE: %s]", cfg.Port, cfg.AppMode)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("❌ Failed to start server: %v", err)
	}
}

// gracefulShutdown handles graceful shutdown
func gracefulShutdown(app *fiber.App) {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")
	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		log.Printf("❌ Error during shutdown: %v", err)
	}
	log.Println("✅ Server stopped gracefully")
}
