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

	pkgvalidator "github.com/interview-coach-team/interview-analyzer/pkg/validator"

	"github.com/interview-coach-team/interview-analyzer/internal/adapter/handler"
	"github.com/interview-coach-team/interview-analyzer/internal/adapter/repository"
	"github.com/interview-coach-team/interview-analyzer/internal/infrastructure/cache"
	"github.com/interview-coach-team/interview-analyzer/internal/infrastructure/database"
	"github.com/interview-coach-team/interview-analyzer/internal/infrastructure/storage"
	"github.com/interview-coach-team/interview-analyzer/internal/usecase/interview"
	"github.com/interview-coach-team/interview-analyzer/internal/usecase/prosody"
	"github.com/interview-coach-team/interview-analyzer/internal/usecase/scoring"
	"github.com/interview-coach-team/interview-analyzer/internal/usecase/semantic"
	"github.com/interview-coach-team/interview-analyzer/internal/usecase/speech"
	pkgai "github.com/interview-coach-team/interview-analyzer/pkg/ai"
	"github.com/interview-coach-team/interview-analyzer/pkg/config"
)

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
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodPatch},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))

	// Initialize dependencies
	log.Println("🔧 Initializing dependencies...")

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	// Initialize Database
	log.Println("📦 Connecting to database...")
	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.CloseDB(db)

	// Run AutoMigrate only when explicitly enabled in config.
	// Production deployments should manage schema via sql-migrate.
	if cfg.Database.AutoMigrate {
		if cfg.Server.Environment == "production" {
			log.Fatalf("AutoMigrate is enabled in production. Disable DB_AUTO_MIGRATE or manage schema with sql-migrate.")
		}
		log.Println("🔄 Running GORM AutoMigrate (development only) ...")
		if err := database.AutoMigrate(db); err != nil {
			log.Fatalf("Failed to run AutoMigrate: %v", err)
		}
	} else {
		log.Println("🔄 Skipping GORM AutoMigrate; use sql-migrate for schema migrations in CI/CD/production")
	}

	// Initialize object storage for recordings
	log.Println("📦 Connecting to object storage...")
	audioStorage, err := storage.NewMinIOClient(&cfg.Storage)
	if err != nil {
		log.Fatalf("Failed to connect to object storage: %v", err)
	}

	// Initialize embedding cache (Redis when configured, in-process otherwise)
	var embeddingCache pkgai.EmbeddingCache
	if cfg.Redis.Host != "" {
		log.Println("📦 Connecting to Redis...")
		redisCache, err := cache.NewRedisEmbeddingCache(cfg, logger)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		defer redisCache.Close()
		embeddingCache = redisCache
	} else {
		log.Println("📦 Redis not configured, using in-process embedding cache")
		embeddingCache = cache.NewMemoryEmbeddingCache(time.Duration(cfg.Redis.TTLHours) * time.Hour)
	}

	// Initialize AI collaborators
	log.Println("🤖 Initializing AI components...")
	embedder := pkgai.NewOpenAIEmbedder(&cfg.OpenAI, embeddingCache, logger)
	transcriber := pkgai.NewTranscriptionClient(&cfg.Assembly)
	if !transcriber.Ready() {
		log.Println("⚠️  AssemblyAI key missing, interview processing will be unavailable")
	}

	// Initialize repositories
	log.Println("⚙️  Initializing repositories...")
	interviewRepo := repository.NewInterviewRepository(db)
	reportRepo := repository.NewReportRepository(db)
	transcriptRepo := repository.NewTranscriptRepository(db)

	// Initialize analysis services
	log.Println("🧠 Initializing analysis services...")
	semanticSvc := semantic.NewService(embedder, &cfg.Analysis, logger)
	speechSvc := speech.NewService(&cfg.Analysis, logger)
	prosodySvc := prosody.NewService(&cfg.Analysis, logger)
	scorer := scoring.NewScorer(&cfg.Analysis)
	synthesizer := scoring.NewSynthesizer(&cfg.Analysis)

	// Initialize interview pipeline service
	log.Println("🎙️  Initializing interview service...")
	interviewSvc := interview.NewService(
		interviewRepo,
		reportRepo,
		transcriptRepo,
		audioStorage,
		transcriber,
		semanticSvc,
		speechSvc,
		prosodySvc,
		scorer,
		synthesizer,
		logger,
	)

	// Initialize handlers
	log.Println("🚀 Initializing handlers...")
	analysisHandler := handler.NewAnalysis(semanticSvc, speechSvc, prosodySvc, scorer, synthesizer, logger)
	interviewHandler := handler.NewInterview(interviewSvc, logger)

	// Setup router with handlers
	log.Println("🛣️  Setting up routes...")
	router := handler.NewRouter(cfg, analysisHandler, interviewHandler)
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
