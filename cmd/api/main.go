package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/joho/godotenv"

	"github.com/LeeFlannery/dashboard-playground/internal/application/usecases"
	"github.com/LeeFlannery/dashboard-playground/internal/infrastructure/config"
	"github.com/LeeFlannery/dashboard-playground/internal/infrastructure/database"
	"github.com/LeeFlannery/dashboard-playground/internal/infrastructure/scheduler"
	"github.com/LeeFlannery/dashboard-playground/internal/interfaces/http/middleware"
	"github.com/LeeFlannery/dashboard-playground/internal/interfaces/http/routes"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️ No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("❌ Error loading configuration: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, err := database.SetupSnapshotStore(ctx, cfg)
	if err != nil {
		log.Fatalf("❌ Error setting up snapshot store: %v", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			log.Printf("⚠️ Error closing snapshot store: %v", err)
		}
	}()

	dashboardUseCase := usecases.NewDashboardUseCase(store.Repository, usecases.DashboardOptions{
		SnapshotTTL: cfg.SnapshotTTL,
		DefaultSeed: cfg.MockSeed,
	})

	jobs := scheduler.New()
	if err := jobs.SchedulePrune(cfg.PruneSchedule, dashboardUseCase); err != nil {
		log.Fatalf("❌ Error scheduling snapshot pruning: %v", err)
	}
	jobs.Start()
	log.Printf("⏰ Scheduler started with %d job(s) (%s)", jobs.Entries(), cfg.PruneSchedule)
	defer func() {
		<-jobs.Stop().Done()
	}()

	app := fiber.New(fiber.Config{
		Prefork:      false,
		BodyLimit:    1 * 1024 * 1024,
		ReadTimeout:  5 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	})

	middleware.SetupMiddlewares(app, cfg.CORSAllowOrigins)
	routes.SetupRoutes(app, dashboardUseCase, middleware.NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst))

	go func() {
		<-ctx.Done()
		log.Println("🛑 Shutting down server...")
		if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
			log.Printf("⚠️ Error during shutdown: %v", err)
		}
	}()

	log.Printf("🚀 Server is running on port %s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Printf("❌ Server stopped: %v", err)
	}
}
