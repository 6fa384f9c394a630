package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"go.uber.org/zap"

	"github.com/listing-marketplace/internal/domain"
	"github.com/listing-marketplace/internal/domain/repository"
	"github.com/listing-marketplace/internal/worker"
)

const emptyQueueSleep = 100 * time.Millisecond

// CleanupWorker removes orphaned blobs left behind by failed submissions.
// Events arrive on the storage cleanup stream published by the upload stage.
type CleanupWorker struct {
	*worker.BaseWorker
	streamRepo   repository.StreamRepository
	storageRepo  repository.StorageRepository
	consumerName string
	maxBatchSize int
}

// NewCleanupWorker creates a new CleanupWorker
func NewCleanupWorker(
	streamRepo repository.StreamRepository,
	storageRepo repository.StorageRepository,
	consumerGroup string,
	maxBatchSize int,
	logger *zap.Logger,
) *CleanupWorker {
	hostname, _ := os.Hostname()
	consumerName := fmt.Sprintf("%s-%d", hostname, os.Getpid())

	return &CleanupWorker{
		BaseWorker:   worker.NewBaseWorker("storage-cleanup", consumerGroup, logger),
		streamRepo:   streamRepo,
		storageRepo:  storageRepo,
		consumerName: consumerName,
		maxBatchSize: maxBatchSize,
	}
}

// Start runs the consume loop
func (w *CleanupWorker) Start(ctx context.Context) error {
	logger := w.Logger()
	logger.Info("Starting CleanupWorker",
		zap.String("consumer_group", w.ConsumerGroup()),
		zap.String("consumer_name", w.consumerName),
		zap.Int("max_batch_size", w.maxBatchSize))

	if err := w.streamRepo.CreateConsumerGroup(ctx, domain.StreamStorageCleanup, w.ConsumerGroup()); err != nil {
		logger.Error("Failed to create consumer group", zap.Error(err))
		return fmt.Errorf("failed to create consumer group: %w", err)
	}

	for {
		select {
		case <-w.StopChan():
			logger.Info("Worker stopped")
			return nil

		case <-ctx.Done():
			logger.Info("Context cancelled")
			return ctx.Err()

		default:
			processed, err := w.ProcessBatch(ctx)
			if err != nil {
				logger.Error("Failed to process batch", zap.Error(err))
				time.Sleep(time.Second)
				continue
			}

			if processed == 0 {
				time.Sleep(emptyQueueSleep)
			}
		}
	}
}

// ProcessBatch reads one batch of cleanup events and deletes the named
// objects. Returns how many messages were read.
func (w *CleanupWorker) ProcessBatch(ctx context.Context) (int, error) {
	logger := w.Logger()

	messages, err := w.streamRepo.ConsumeBatch(
		ctx,
		domain.StreamStorageCleanup,
		w.ConsumerGroup(),
		w.consumerName,
		w.maxBatchSize,
	)
	if err != nil {
		return 0, fmt.Errorf("failed to consume batch: %w", err)
	}

	if len(messages) == 0 {
		return 0, nil
	}

	logger.Info("Processing cleanup batch", zap.Int("message_count", len(messages)))

	for _, msg := range messages {
		var event domain.OrphanedUploadEvent
		if err := json.Unmarshal([]byte(msg.Data), &event); err != nil {
			logger.Warn("Failed to parse message, skipping",
				zap.String("message_id", msg.ID),
				zap.Error(err))
			// ACK the broken message so it does not wedge the group
			_ = w.streamRepo.AckMessage(ctx, domain.StreamStorageCleanup, w.ConsumerGroup(), msg.ID)
			continue
		}

		if w.deleteObjects(ctx, &event) {
			if err := w.streamRepo.AckMessage(ctx, domain.StreamStorageCleanup, w.ConsumerGroup(), msg.ID); err != nil {
				logger.Warn("Failed to ack message",
					zap.String("message_id", msg.ID),
					zap.Error(err))
			}
		}
		// Unacked messages stay pending and get retried
	}

	return len(messages), nil
}

// deleteObjects removes every object named by the event. Returns true when
// all deletes succeeded and the message may be acknowledged.
func (w *CleanupWorker) deleteObjects(ctx context.Context, event *domain.OrphanedUploadEvent) bool {
	logger := w.Logger()
	ok := true

	for _, name := range event.ObjectNames {
		if err := w.storageRepo.Delete(ctx, name); err != nil {
			logger.Error("Failed to delete orphaned object",
				zap.String("object", name),
				zap.String("user_ref", event.UserRef),
				zap.Error(err))
			ok = false
			continue
		}

		logger.Info("Orphaned object removed",
			zap.String("object", name),
			zap.String("user_ref", event.UserRef))
	}

	return ok
}
