package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-jobmatch-backend/config"
	_ "go-jobmatch-backend/docs" // Important for Swagger
	"go-jobmatch-backend/internal/delivery/http/middleware"
	v1 "go-jobmatch-backend/internal/delivery/http/v1"
	"go-jobmatch-backend/internal/repository/postgres"
	"go-jobmatch-backend/internal/usecase"
	"go-jobmatch-backend/internal/wizard"
	"go-jobmatch-backend/pkg/auth"
	"go-jobmatch-backend/pkg/database"
	"go-jobmatch-backend/pkg/logger"
	"go-jobmatch-backend/pkg/redis"
	"go-jobmatch-backend/pkg/storage"

	"github.com/go-playground/validator/v10"
)

// @title           Job Match Profile API
// @version         1.0
// @description     Backend for the multi-step profile completion flows of a two-sided job marketplace.
// @host            localhost:8080
// @BasePath        /v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting job match backend", "port", cfg.Port)

	// 3. Setup Database
	dbPool, err := database.NewPostgresConnection(cfg.DBUrl)
	if err != nil {
		logger.Log.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer dbPool.Close()

	// 4. Setup Redis (rate limiting; in-memory fallback when absent)
	if err := redis.Initialize(redis.Config{URL: cfg.UpstashRedisURL, Password: cfg.UpstashRedisPassword}); err != nil {
		logger.Log.Warn("Redis unavailable, rate limiting falls back to in-memory", "error", err)
	}
	defer redis.Close()
	middleware.ConfigureRateLimits(cfg.RateLimitWindowSeconds, cfg.RateLimitGlobalThreshold, cfg.RateLimitUploadThreshold)

	// 5. Setup Repositories
	profileRepo := postgres.NewProfileRepository(dbPool)
	candidateRepo := postgres.NewCandidateProfileRepository(dbPool)
	companyRepo := postgres.NewCompanyRepository(dbPool)

	// 6. Setup Object Storage
	store := storage.New(cfg.SupabaseUrl, cfg.SupabaseServiceKey)
	if !store.IsConfigured() {
		logger.Log.Warn("Object storage not configured - flow file uploads will fail")
	}

	// 7. Setup UseCases
	validate := validator.New()
	manager := wizard.NewManager(cfg.FlowSessionTTL)
	authUC := usecase.NewAuthUsecase(profileRepo)
	flowUC := usecase.NewFlowUsecase(manager, candidateRepo, profileRepo, companyRepo, store, validate)
	completionUC := usecase.NewCompletionUsecase(candidateRepo, profileRepo, companyRepo)
	profileUC := usecase.NewProfileUsecase(profileRepo, validate)
	candidateUC := usecase.NewCandidateUsecase(candidateRepo, profileRepo)
	companyUC := usecase.NewCompanyUsecase(companyRepo)

	// 8. Setup Auth Provider (JWKS)
	jwksURL := cfg.SupabaseUrl + "/auth/v1/.well-known/jwks.json"
	jwksProvider := auth.NewProvider(jwksURL)

	// 9. Setup Router
	router := v1.NewRouter(v1.RouterDeps{
		AuthUC:       authUC,
		FlowUC:       flowUC,
		CompletionUC: completionUC,
		ProfileUC:    profileUC,
		CandidateUC:  candidateUC,
		CompanyUC:    companyUC,
		JWKSProvider: jwksProvider,
		Config:       cfg,
	})

	// 10. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
