package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	communityapp "github.com/cargolink/backend/internal/application/community"
	directoryapp "github.com/cargolink/backend/internal/application/directory"
	feedbackapp "github.com/cargolink/backend/internal/application/feedback"
	identityapp "github.com/cargolink/backend/internal/application/identity"
	insightapp "github.com/cargolink/backend/internal/application/insight"
	quizapp "github.com/cargolink/backend/internal/application/quiz"
	surchargeapp "github.com/cargolink/backend/internal/application/surcharge"
	trackingapp "github.com/cargolink/backend/internal/application/tracking"
	"github.com/cargolink/backend/internal/domain/carrier"
	"github.com/cargolink/backend/internal/infrastructure/auth"
	"github.com/cargolink/backend/internal/infrastructure/cache"
	"github.com/cargolink/backend/internal/infrastructure/config"
	"github.com/cargolink/backend/internal/infrastructure/logger"
	"github.com/cargolink/backend/internal/infrastructure/persistence"
	"github.com/cargolink/backend/internal/infrastructure/telemetry"
	"github.com/cargolink/backend/internal/interfaces/http/handler"
	"github.com/cargolink/backend/internal/interfaces/http/router"
)

var version = "dev"

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic("Failed to load configuration: " + err.Error())
	}

	// Initialize logger
	log := logger.New(logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
		Output: cfg.Log.Output,
	})
	defer func() {
		_ = log.Sync()
	}()

	log.Info("Starting CargoLink backend",
		zap.String("app", cfg.App.Name),
		zap.String("env", cfg.App.Env),
		zap.String("port", cfg.App.Port),
		zap.String("version", version),
	)

	// Tracing
	tracerProvider, err := telemetry.NewTracerProvider(context.Background(), cfg.Telemetry, log)
	if err != nil {
		log.Fatal("Failed to initialize tracing", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tracerProvider.Shutdown(ctx); err != nil {
			log.Error("Error shutting down tracer provider", zap.Error(err))
		}
	}()

	// Database connection with zap-backed GORM logger
	gormLog := logger.NewGormLogger(log, logger.MapGormLogLevel(cfg.Log.Level))
	db, err := persistence.NewDatabaseWithLogger(&cfg.Database, gormLog)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Error closing database", zap.Error(err))
		}
	}()
	log.Info("Database connected")

	// View dedup store (Redis when configured, in-memory otherwise)
	dedupStore := cache.NewViewDedupStore(cfg.Redis, log)
	defer func() {
		if err := dedupStore.Close(); err != nil {
			log.Error("Error closing view dedup store", zap.Error(err))
		}
	}()

	// Repositories
	insightRepo := persistence.NewGormInsightRepository(db.DB)
	postRepo := persistence.NewGormPostRepository(db.DB)
	commentRepo := persistence.NewGormCommentRepository(db.DB)
	feedbackRepo := persistence.NewGormFeedbackRepository(db.DB)
	surchargeRepo := persistence.NewGormSurchargeRepository(db.DB)
	editorRepo := persistence.NewGormEditorRepository(db.DB)

	// Application services
	carrierDir := carrier.DefaultDirectory()
	trackingService := trackingapp.NewService(carrierDir, log)
	directoryService := directoryapp.NewService(carrierDir)
	quizService := quizapp.NewService(log)
	insightService := insightapp.NewService(insightRepo, dedupStore, cfg.View.DedupTTL, log)
	communityService := communityapp.NewService(postRepo, commentRepo, dedupStore, cfg.View.DedupTTL, log)
	feedbackService := feedbackapp.NewService(feedbackRepo, log)
	surchargeService := surchargeapp.NewService(surchargeRepo, log)

	jwtService := auth.NewJWTService(cfg.JWT)
	authService := identityapp.NewAuthService(editorRepo, jwtService, log)

	// HTTP handlers and router
	handlers := router.Handlers{
		System:    handler.NewSystemHandler(db, version),
		Tracking:  handler.NewTrackingHandler(trackingService),
		Carrier:   handler.NewCarrierHandler(directoryService),
		Quiz:      handler.NewQuizHandler(quizService),
		Auth:      handler.NewAuthHandler(authService),
		Insight:   handler.NewInsightHandler(insightService),
		Community: handler.NewCommunityHandler(communityService),
		Feedback:  handler.NewFeedbackHandler(feedbackService),
		Surcharge: handler.NewSurchargeHandler(surchargeService),
	}
	engine := router.New(cfg, log, jwtService, handlers)

	srv := &http.Server{
		Addr:           ":" + cfg.App.Port,
		Handler:        engine,
		ReadTimeout:    cfg.HTTP.ReadTimeout,
		WriteTimeout:   cfg.HTTP.WriteTimeout,
		IdleTimeout:    cfg.HTTP.IdleTimeout,
		MaxHeaderBytes: cfg.HTTP.MaxHeaderBytes,
	}

	go func() {
		log.Info("Server starting", zap.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Fatal("Server forced to shutdown", zap.Error(err))
	}

	log.Info("Server exited gracefully")
}
