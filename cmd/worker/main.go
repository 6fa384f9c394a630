package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"go.uber.org/zap"

	"github.com/listing-marketplace/internal/config"
	"github.com/listing-marketplace/internal/pkg/logger"
	"github.com/listing-marketplace/internal/repository/cache"
	"github.com/listing-marketplace/internal/repository/hdfs"
	redisRepo "github.com/listing-marketplace/internal/repository/redis"
	"github.com/listing-marketplace/internal/worker"
	"github.com/listing-marketplace/internal/worker/storage"
)

func main() {
	// 1. Load configuration
	cfg, err := config.Load()
	if err != nil {
		panic(fmt.Sprintf("Failed to load config: %v", err))
	}

	// Check if worker is enabled
	if !cfg.Worker.Enabled {
		fmt.Println("Worker is disabled in configuration. Set WORKER_ENABLED=true to enable.")
		os.Exit(0)
	}

	// 2. Initialize logger
	log, err := logger.New(cfg.Log.Level)
	if err != nil {
		panic(fmt.Sprintf("Failed to initialize logger: %v", err))
	}
	defer log.Sync()

	log.Info("Starting Storage Cleanup Worker")
	log.Info("Configuration loaded",
		zap.String("consumer_group", cfg.Worker.ConsumerGroup),
		zap.Int("max_batch_size", cfg.Worker.MaxBatchSize))

	// 3. Connect to Redis
	redisClient, err := cache.NewRedis(&cfg.Redis, log)
	if err != nil {
		log.Fatal("Failed to connect to Redis", zap.Error(err))
	}
	defer func() {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close Redis connection", zap.Error(err))
		}
	}()

	// 4. Connect to HDFS
	storageRepo, err := hdfs.NewStorageRepository(&cfg.Storage, log)
	if err != nil {
		log.Fatal("Failed to connect to HDFS", zap.Error(err))
	}

	// 5. Initialize repositories
	streamRepo := redisRepo.NewStreamRepository(redisClient.Client(), log)

	// 6. Initialize workers
	cleanupWorker := storage.NewCleanupWorker(
		streamRepo,
		storageRepo,
		cfg.Worker.ConsumerGroup,
		cfg.Worker.MaxBatchSize,
		log,
	)

	manager := worker.NewWorkerManager(log)
	manager.Register(cleanupWorker)

	// 7. Start workers
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := manager.Start(ctx); err != nil {
		log.Fatal("Failed to start workers", zap.Error(err))
	}

	// 8. Wait for shutdown signal
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutdown signal received")

	if err := manager.Stop(); err != nil {
		log.Error("Workers shutdown failed", zap.Error(err))
	}

	log.Info("Worker stopped")
}
