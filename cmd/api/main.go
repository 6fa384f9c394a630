package main

// @title Listing Marketplace API
// @version 1.0.0
// @description Backend for a real-estate listing marketplace. Handles listing submissions (validation, address geocoding, image uploads, document storage), listing reads and account authentication.

// @contact.name API Support
// @contact.email support@listing-marketplace.com

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	_ "github.com/listing-marketplace/docs"
	"github.com/listing-marketplace/internal/config"
	httpDelivery "github.com/listing-marketplace/internal/delivery/http"
	"github.com/listing-marketplace/internal/delivery/http/handler"
	"github.com/listing-marketplace/internal/infrastructure/opencage"
	"github.com/listing-marketplace/internal/pkg/logger"
	"github.com/listing-marketplace/internal/pkg/token"
	"github.com/listing-marketplace/internal/repository/cache"
	"github.com/listing-marketplace/internal/repository/hdfs"
	"github.com/listing-marketplace/internal/repository/mongo"
	"github.com/listing-marketplace/internal/repository/postgres"
	redisRepo "github.com/listing-marketplace/internal/repository/redis"
	"github.com/listing-marketplace/internal/usecase"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Listing Marketplace API")
	log.Info("Configuration loaded",
		zap.String("env", cfg.Server.Env),
		zap.String("server_addr", cfg.GetServerAddr()),
	)

	// 3. Connect to PostgreSQL (accounts)
	db, err := postgres.New(&cfg.Postgres, log)
	if err != nil {
		log.Fatal("Failed to connect to PostgreSQL", zap.Error(err))
	}
	defer func() {
		if err := db.Close(); err != nil {
			log.Error("Failed to close PostgreSQL connection", zap.Error(err))
		}
	}()
	log.Info("PostgreSQL connected")

	// 4. Connect to MongoDB (listings)
	mongoDB, err := mongo.New(&cfg.Mongo, log)
	if err != nil {
		log.Fatal("Failed to connect to MongoDB", zap.Error(err))
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := mongoDB.Close(ctx); err != nil {
			log.Error("Failed to close MongoDB connection", zap.Error(err))
		}
	}()
	log.Info("MongoDB connected")

	// 5. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()
	log.Info("Redis connected")

	// 6. Connect to HDFS (listing images)
	storageRepo, err := hdfs.NewStorageRepository(&cfg.Storage, log)
	if err != nil {
		log.Fatal("Failed to connect to HDFS", zap.Error(err))
	}

	// 7. Health checks
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)

	if err := db.Health(ctx); err != nil {
		cancel()
		log.Fatal("PostgreSQL health check failed", zap.Error(err))
	}
	if err := mongoDB.Health(ctx); err != nil {
		cancel()
		log.Fatal("MongoDB health check failed", zap.Error(err))
	}
	if err := redisClient.Health(ctx); err != nil {
		cancel()
		log.Fatal("Redis health check failed", zap.Error(err))
	}
	cancel()

	log.Info("All connections healthy")

	// 8. Initialize repositories
	listingRepo := mongo.NewListingRepository(mongoDB, log)
	userRepo := postgres.NewUserRepository(db, log)
	cacheRepo := cache.NewCacheRepository(redisClient)
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)
	geocoder := opencage.NewClient(&cfg.Geocoder, log)

	log.Info("Repositories initialized")

	// 9. Initialize use cases
	tokens := token.NewManager(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	submitUC := usecase.NewSubmitListingUseCase(
		listingRepo,
		storageRepo,
		geocoder,
		cacheRepo,
		streamRepo,
		log,
		cfg.Upload.MaxImages,
	)
	listingUC := usecase.NewListingUseCase(listingRepo, cacheRepo, log, cfg.Cache.ListingCacheTTL)
	authUC := usecase.NewAuthUseCase(userRepo, tokens, log, cfg.Auth.BcryptCost)

	// 10. Initialize handlers
	listingHandler := handler.NewListingHandler(submitUC, listingUC, log)
	authHandler := handler.NewAuthHandler(authUC, log)

	// 11. Initialize HTTP server
	server := httpDelivery.NewServer(cfg, log, tokens, listingHandler, authHandler)

	// 12. Start the server
	go func() {
		if err := server.Start(); err != nil {
			log.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// 13. Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutdown signal received")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Error("Server shutdown failed", zap.Error(err))
	}

	log.Info("Server stopped")
}
