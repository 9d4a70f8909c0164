package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	sentrygin "github.com/getsentry/sentry-go/gin"
	"github.com/gin-contrib/gzip"
	_ "github.com/joho/godotenv/autoload"

	"github.com/Mbenve9198/bdr-tool-api/internal/clients/backend"
	"github.com/Mbenve9198/bdr-tool-api/internal/clients/similarweb"
	"github.com/Mbenve9198/bdr-tool-api/internal/config"
	"github.com/Mbenve9198/bdr-tool-api/internal/handlers"
	"github.com/Mbenve9198/bdr-tool-api/internal/jobs"
	"github.com/Mbenve9198/bdr-tool-api/internal/middleware"
	"github.com/Mbenve9198/bdr-tool-api/internal/services"
	"github.com/Mbenve9198/bdr-tool-api/pkg/logger"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Initialize logger
	logger.Setup(cfg.Environment)

	// Initialize Sentry when DSN is configured
	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			TracesSampleRate: 0.2,
			Environment:      cfg.Environment,
		}); err != nil {
			logger.Error("Sentry initialization failed", "error", err)
		} else {
			logger.Info("Sentry initialized")
		}
	}

	if cfg.OpenAIAPIKey == "" {
		logger.Warn("Assistant disabled: OPENAI_API_KEY not set. Chat requests will fail until it is configured.")
	}

	// Set Gin mode
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Initialize outbound clients
	provider := similarweb.NewClient(cfg.AnalyticsBaseURL, cfg.AnalyticsAPIKey, cfg.AnalyticsTimeout)
	backendAPI := backend.NewClient(cfg.BackendBaseURL, cfg.BackendTimeout)

	// Initialize background worker
	worker := jobs.NewWorker(cfg.WorkerCount)
	logger.Info("Started background worker", "goroutines", cfg.WorkerCount)

	// Initialize services
	svcs, err := services.NewServices(provider, backendAPI, worker, cfg)
	if err != nil {
		logger.Error("Failed to initialize services", "error", err)
		os.Exit(1)
	}

	// Initialize handlers
	h := handlers.NewHandlers(svcs)

	// Setup router
	router := setupRouter(h, cfg)

	// Create HTTP server. The write timeout must cover the slowest
	// upstream: a provider analysis can take up to AnalyticsTimeout.
	server := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.AnalyticsTimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("Server starting", "port", cfg.Port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("Failed to start server", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Info("Shutting down server...")

	// Create context with timeout for shutdown
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Shutdown HTTP server
	if err := server.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", "error", err)
	}

	// Shutdown background worker
	worker.Shutdown()
	logger.Info("Background worker stopped")

	// Flush Sentry events before exit
	if cfg.SentryDSN != "" {
		sentry.Flush(5 * time.Second)
	}

	logger.Info("Server exited gracefully")
}

func setupRouter(h *handlers.Handlers, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Global middleware
	if cfg.SentryDSN != "" {
		router.Use(sentrygin.New(sentrygin.Options{Repanic: true}))
	}
	router.Use(gin.Recovery())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	// Chat streams SSE; gzip would buffer the event chunks
	router.Use(gzip.Gzip(gzip.DefaultCompression, gzip.WithExcludedPaths([]string{"/api/v1/chat"})))

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		// Health check
		v1.GET("/health", h.Health.Index)

		// Traffic analysis
		v1.POST("/traffic/analyze", h.Analysis.Analyze)
		v1.GET("/config/check", h.Analysis.ConfigCheck)

		// Knowledge base
		knowledge := v1.Group("/knowledge-base")
		{
			knowledge.GET("", h.Knowledge.List)
			knowledge.POST("", h.Knowledge.Create)
			knowledge.GET("/stats", h.Knowledge.Stats)
			knowledge.GET("/:id", h.Knowledge.Get)
			knowledge.PUT("/:id", h.Knowledge.Update)
			knowledge.DELETE("/:id", h.Knowledge.Delete)
		}

		// Prospects
		prospects := v1.Group("/prospects")
		{
			prospects.GET("", h.Prospect.List)
			prospects.POST("", h.Prospect.Create)
			prospects.GET("/:id", h.Prospect.Get)
			prospects.PUT("/:id/status", h.Prospect.ChangeStatus)
			prospects.GET("/:id/export", h.Prospect.Export)
			prospects.GET("/:id/brief", h.Prospect.Brief)
		}

		// Assistant
		v1.POST("/chat", h.Chat.Chat)

		// Background jobs
		v1.GET("/jobs/status", h.Job.Status)
	}

	return router
}
