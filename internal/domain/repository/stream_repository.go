package repository

import (
	"context"

	"github.com/listing-marketplace/internal/domain"
)

// StreamRepository defines Redis Stream operations for background work.
type StreamRepository interface {
	// CreateConsumerGroup creates the consumer group, creating the stream
	// if needed. Safe to call when the group already exists.
	CreateConsumerGroup(ctx context.Context, stream, group string) error

	// ConsumeBatch reads up to maxCount pending messages without blocking.
	ConsumeBatch(ctx context.Context, stream, group, consumer string, maxCount int) ([]domain.StreamMessage, error)

	// AckMessage acknowledges one processed message.
	AckMessage(ctx context.Context, stream, group, messageID string) error

	// PublishToStream serializes data as JSON and appends it to the stream.
	PublishToStream(ctx context.Context, stream string, data interface{}) error
}
