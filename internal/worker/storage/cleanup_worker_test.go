package storage_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/listing-marketplace/internal/domain"
	"github.com/listing-marketplace/internal/domain/repository"
	"github.com/listing-marketplace/internal/worker/storage"
)

// MockStreamRepository is a mock of StreamRepository
type MockStreamRepository struct {
	mock.Mock
}

func (m *MockStreamRepository) CreateConsumerGroup(ctx context.Context, stream, group string) error {
	args := m.Called(ctx, stream, group)
	return args.Error(0)
}

func (m *MockStreamRepository) ConsumeBatch(ctx context.Context, stream, group, consumer string, maxCount int) ([]domain.StreamMessage, error) {
	args := m.Called(ctx, stream, group, consumer, maxCount)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.StreamMessage), args.Error(1)
}

func (m *MockStreamRepository) AckMessage(ctx context.Context, stream, group, messageID string) error {
	args := m.Called(ctx, stream, group, messageID)
	return args.Error(0)
}

func (m *MockStreamRepository) PublishToStream(ctx context.Context, stream string, data interface{}) error {
	args := m.Called(ctx, stream, data)
	return args.Error(0)
}

// MockStorageRepository is a mock of StorageRepository
type MockStorageRepository struct {
	mock.Mock
}

func (m *MockStorageRepository) Upload(ctx context.Context, objectName string, content io.Reader, size int64, progress repository.ProgressFunc) (string, error) {
	args := m.Called(ctx, objectName, content, size, progress)
	return args.String(0), args.Error(1)
}

func (m *MockStorageRepository) Delete(ctx context.Context, objectName string) error {
	args := m.Called(ctx, objectName)
	return args.Error(0)
}

func cleanupMessage(t *testing.T, id string, objects ...string) domain.StreamMessage {
	t.Helper()
	data, err := json.Marshal(domain.OrphanedUploadEvent{
		UserRef:     "user-1",
		ObjectNames: objects,
		FailedAt:    time.Now().UTC(),
	})
	assert.NoError(t, err)
	return domain.StreamMessage{ID: id, Data: string(data)}
}

func TestCleanupWorker_ProcessBatch(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("deletes every named object and acks", func(t *testing.T) {
		streamRepo := &MockStreamRepository{}
		storageRepo := &MockStorageRepository{}
		w := storage.NewCleanupWorker(streamRepo, storageRepo, "storage-cleanup-workers", 20, logger)

		msg := cleanupMessage(t, "1-0", "user-1-a.jpg-x", "user-1-b.jpg-y")
		streamRepo.On("ConsumeBatch", ctx, domain.StreamStorageCleanup, "storage-cleanup-workers", mock.Anything, 20).
			Return([]domain.StreamMessage{msg}, nil)
		storageRepo.On("Delete", ctx, "user-1-a.jpg-x").Return(nil)
		storageRepo.On("Delete", ctx, "user-1-b.jpg-y").Return(nil)
		streamRepo.On("AckMessage", ctx, domain.StreamStorageCleanup, "storage-cleanup-workers", "1-0").Return(nil)

		processed, err := w.ProcessBatch(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 1, processed)
		storageRepo.AssertExpectations(t)
		streamRepo.AssertExpectations(t)
	})

	t.Run("failed delete leaves the message pending", func(t *testing.T) {
		streamRepo := &MockStreamRepository{}
		storageRepo := &MockStorageRepository{}
		w := storage.NewCleanupWorker(streamRepo, storageRepo, "storage-cleanup-workers", 20, logger)

		msg := cleanupMessage(t, "2-0", "user-1-a.jpg-x")
		streamRepo.On("ConsumeBatch", ctx, domain.StreamStorageCleanup, "storage-cleanup-workers", mock.Anything, 20).
			Return([]domain.StreamMessage{msg}, nil)
		storageRepo.On("Delete", ctx, "user-1-a.jpg-x").Return(errors.New("namenode unavailable"))

		processed, err := w.ProcessBatch(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 1, processed)
		streamRepo.AssertNotCalled(t, "AckMessage", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("broken message is acked and skipped", func(t *testing.T) {
		streamRepo := &MockStreamRepository{}
		storageRepo := &MockStorageRepository{}
		w := storage.NewCleanupWorker(streamRepo, storageRepo, "storage-cleanup-workers", 20, logger)

		msg := domain.StreamMessage{ID: "3-0", Data: "not json"}
		streamRepo.On("ConsumeBatch", ctx, domain.StreamStorageCleanup, "storage-cleanup-workers", mock.Anything, 20).
			Return([]domain.StreamMessage{msg}, nil)
		streamRepo.On("AckMessage", ctx, domain.StreamStorageCleanup, "storage-cleanup-workers", "3-0").Return(nil)

		processed, err := w.ProcessBatch(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 1, processed)
		storageRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
		streamRepo.AssertExpectations(t)
	})

	t.Run("empty queue", func(t *testing.T) {
		streamRepo := &MockStreamRepository{}
		storageRepo := &MockStorageRepository{}
		w := storage.NewCleanupWorker(streamRepo, storageRepo, "storage-cleanup-workers", 20, logger)

		streamRepo.On("ConsumeBatch", ctx, domain.StreamStorageCleanup, "storage-cleanup-workers", mock.Anything, 20).
			Return([]domain.StreamMessage{}, nil)

		processed, err := w.ProcessBatch(ctx)

		assert.NoError(t, err)
		assert.Equal(t, 0, processed)
	})
}

func TestCleanupWorker_StopIsIdempotent(t *testing.T) {
	w := storage.NewCleanupWorker(&MockStreamRepository{}, &MockStorageRepository{}, "g", 20, zap.NewNop())

	assert.Equal(t, "storage-cleanup", w.Name())
	assert.NoError(t, w.Stop())
	assert.NoError(t, w.Stop())
	assert.True(t, w.IsStopped())
}
