package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"personalityai-service/internal/infrastructure/config"
	"personalityai-service/internal/infrastructure/oauth"
	"personalityai-service/internal/infrastructure/persistence"
	"personalityai-service/internal/interface/gemini"
	"personalityai-service/internal/interface/notifier"
	recordRepo "personalityai-service/internal/interface/repository"
	"personalityai-service/internal/interface/rest"
	"personalityai-service/internal/usecase"
	"personalityai-service/pkg/logger"
	"personalityai-service/pkg/metrics"

	domainRepo "personalityai-service/internal/domain/repository"

	"github.com/gin-gonic/gin"
)

func main() {
	// Create logger
	log := logger.NewLogger()
	log.Info("Starting PersonalityAI Service")

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal("Failed to load config", "error", err)
	}

	// Set up context with cancellation
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Set up the snapshot store
	var snaps domainRepo.SnapshotStore
	switch cfg.StorageDriver {
	case config.StorageSQLite:
		log.Info("Opening SQLite snapshot store", "path", cfg.SQLitePath)
		db, err := persistence.NewSQLiteDB(cfg.SQLitePath)
		if err != nil {
			log.Fatal("Failed to open SQLite database", "error", err)
		}
		snaps, err = recordRepo.NewGormSnapshotStore(db)
		if err != nil {
			log.Fatal("Failed to set up snapshot store", "error", err)
		}
	default:
		log.Info("Opening file snapshot store", "dir", cfg.DataDir)
		snaps, err = recordRepo.NewFileSnapshotStore(cfg.DataDir)
		if err != nil {
			log.Fatal("Failed to set up snapshot store", "error", err)
		}
	}

	// Hydrate the record store
	store, err := recordRepo.NewMemoryRecordStore(ctx, snaps, log)
	if err != nil {
		log.Fatal("Failed to hydrate record store", "error", err)
	}

	// Set up the notification channel
	var notify domainRepo.Notifier
	if cfg.NotifierDriver == config.NotifierGmail {
		gmailOAuth := oauth.NewGmailOAuth(
			cfg.GmailClientID,
			cfg.GmailClientSecret,
			cfg.GmailRefreshToken,
			log,
		)
		notify, err = notifier.NewGmailNotifier(ctx, gmailOAuth.GetTokenSource(ctx), cfg.NotifyFrom, log)
		if err != nil {
			log.Fatal("Failed to create Gmail notifier", "error", err)
		}
		log.Info("Using Gmail notification channel", "from", cfg.NotifyFrom)
	} else {
		notify = notifier.NewLogNotifier(log)
		log.Info("Using secure-log notification channel")
	}

	// Set up metrics and usecases
	m := metrics.NewMetrics("personalityai")
	lifecycle := usecase.NewLifecycleManager(store, notify, m, log)

	screeningClient := gemini.NewClient(cfg.GeminiBaseURL, cfg.GeminiAPIKey, cfg.GeminiModel, cfg.GeminiTimeout, log)
	screening := usecase.NewScreeningService(screeningClient, m, log)

	// Set up HTTP server
	gin.SetMode(gin.ReleaseMode)
	handler := rest.NewHandler(store, lifecycle, screening, log)
	router := rest.NewRouter(handler)

	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	// Start HTTP server in a goroutine
	go func() {
		log.Info("Starting HTTP server", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("HTTP server error", "error", err)
		}
	}()

	// Wait for interrupt signal
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	sig := <-sigChan
	log.Info("Received signal", "signal", sig)

	// Graceful shutdown
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("HTTP server shutdown error", "error", err)
	}

	cancel() // Cancel the context to stop all goroutines

	log.Info("PersonalityAI Service stopped")
}
