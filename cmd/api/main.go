package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	pkgvalidator "github.com/minutesdev/meeting-minutes/pkg/validator"

	"github.com/minutesdev/meeting-minutes/internal/adapter/handler"
	"github.com/minutesdev/meeting-minutes/internal/infrastructure/store"
	"github.com/minutesdev/meeting-minutes/internal/usecase/minutes"
	"github.com/minutesdev/meeting-minutes/internal/usecase/session"
	"github.com/minutesdev/meeting-minutes/internal/usecase/summary"
	"github.com/minutesdev/meeting-minutes/internal/usecase/transcription"
	pkgai "github.com/minutesdev/meeting-minutes/pkg/ai"
	"github.com/minutesdev/meeting-minutes/pkg/config"
)

// @title           Meeting Minutes API
// @version         1.0
// @description     API for transcribing meeting audio and generating meeting minutes

// @host      localhost:8080
// @BasePath  /v1

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize Echo instance
	e := echo.New()

	// Register validator for request validation
	e.Validator = pkgvalidator.New()

	// Configure Echo
	e.HideBanner = true
	e.HidePort = false

	// Custom logger format
	e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
		Format: "${time_rfc3339} | ${status} | ${method} ${uri} | ${latency_human}\n",
	}))

	// Recover from panics
	e.Use(middleware.Recover())

	// CORS middleware
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: cfg.Server.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept},
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize speech recognition backend
	log.Println("🎙️  Initializing speech recognition client...")
	speechClient := pkgai.NewSpeechClient(&cfg.Assembly)
	transcriber := transcription.NewAdapter(speechClient, cfg.Assembly.MinConfidence, os.TempDir(), logger)

	// Select the summarization strategy once at startup
	var strategy summary.Strategy
	if cfg.SummaryBackendConfigured() {
		log.Println("🤖 Using AI summarization backend")
		strategy = summary.NewAIStrategy(pkgai.NewGroqClient(&cfg.Groq), logger)
	} else {
		log.Println("📝 No summarization backend configured, using extractive fallback")
		strategy = summary.Extractive{}
	}

	// Initialize session service
	log.Println("⚙️  Initializing session service...")
	exports := store.NewArtifactStore(cfg.Session.ExportTTL)
	sessionService := session.NewService(
		transcriber,
		minutes.NewComposer(strategy),
		exports,
		logger,
	)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	sessionHandler := handler.NewSessionHandler(sessionService, logger)
	router := handler.NewRouter(cfg, sessionHandler)
	router.Setup(e)

	// Start server
	go func() {
		addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
		log.Printf("🚀 Starting server on %s", addr)
		log.Printf("📝 Environment: %s", cfg.Server.Environment)
		log.Printf("🔗 Health check: http://%s/health", addr)

		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Println("🛑 Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), time.Duration(cfg.Server.ShutdownTimeout)*time.Second)
	defer cancel()

	if err := e.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	log.Println("✅ Server stopped gracefully")
}
