package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/api"
	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/config"
	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/database"
	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/repository"
	"github.com/mfolkers/Investment-Return-Ledger-Backend/internal/service"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Open database connection
	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer db.Close()

	log.Printf("Connected to database: %s", cfg.Database.Path)

	// Apply schema migrations
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to migrate database: %v", err)
	}

	// Create repositories
	assetRepo := repository.NewAssetRepository(db)
	entryRepo := repository.NewEntryRepository(db)

	// Create services
	systemService := service.NewSystemService(db)
	assetService := service.NewAssetService(assetRepo)
	entryService := service.NewEntryService(db, entryRepo, assetRepo, cfg.Ledger.Mode)
	auditService := service.NewAuditService(assetRepo, entryRepo)

	log.Printf("Ledger mode: %s", cfg.Ledger.Mode)

	// Schedule the periodic consistency audit when configured
	if cfg.Ledger.AuditSchedule != "" {
		scheduler := cron.New()
		if _, err := scheduler.AddFunc(cfg.Ledger.AuditSchedule, auditService.RunScheduled); err != nil {
			log.Fatalf("Invalid audit schedule %q: %v", cfg.Ledger.AuditSchedule, err)
		}
		scheduler.Start()
		defer scheduler.Stop()

		log.Printf("Scheduled ledger audit: %s", cfg.Ledger.AuditSchedule)
	}

	// Create router
	router := api.NewRouter(systemService, assetService, entryService, auditService, cfg)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		log.Printf("Starting server on %s", cfg.Server.Addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Println("Shutting down server...")

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := server.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server exited")
}
