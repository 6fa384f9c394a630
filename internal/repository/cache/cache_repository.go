package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/listing-marketplace/internal/domain"
	"github.com/listing-marketplace/internal/domain/repository"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

type cacheRepository struct {
	client *redis.Client
	logger *zap.Logger
}

func NewCacheRepository(redis *Redis) repository.CacheRepository {
	return &cacheRepository{
		client: redis.Client(),
		logger: redis.logger,
	}
}

func (r *cacheRepository) Get(ctx context.Context, key string) ([]byte, error) {
	val, err := r.client.Get(ctx, key).Bytes()
	if err == redis.Nil {
		return nil, nil // Cache miss
	}
	if err != nil {
		r.logger.Error("Failed to get from cache", zap.String("key", key), zap.Error(err))
		return nil, fmt.Errorf("cache get error: %w", err)
	}

	r.logger.Debug("Cache hit", zap.String("key", key))
	return val, nil
}

func (r *cacheRepository) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	err := r.client.Set(ctx, key, value, ttl).Err()
	if err != nil {
		r.logger.Error("Failed to set cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache set error: %w", err)
	}

	r.logger.Debug("Cache set", zap.String("key", key), zap.Duration("ttl", ttl))
	return nil
}

func (r *cacheRepository) Delete(ctx context.Context, key string) error {
	err := r.client.Del(ctx, key).Err()
	if err != nil {
		r.logger.Error("Failed to delete from cache", zap.String("key", key), zap.Error(err))
		return fmt.Errorf("cache delete error: %w", err)
	}

	r.logger.Debug("Cache deleted", zap.String("key", key))
	return nil
}

func listingKey(id string) string {
	return fmt.Sprintf("listing:%s", id)
}

// GetListing returns a cached listing detail document or nil on a miss
func (r *cacheRepository) GetListing(ctx context.Context, id string) (*domain.Listing, error) {
	data, err := r.Get(ctx, listingKey(id))
	if err != nil {
		return nil, err
	}
	if data == nil {
		return nil, nil // Cache miss
	}

	var listing domain.Listing
	if err := json.Unmarshal(data, &listing); err != nil {
		r.logger.Error("Failed to unmarshal listing from cache", zap.Error(err))
		return nil, fmt.Errorf("unmarshal listing: %w", err)
	}

	return &listing, nil
}

// SetListing caches a listing detail document
func (r *cacheRepository) SetListing(ctx context.Context, id string, listing *domain.Listing, ttl time.Duration) error {
	data, err := json.Marshal(listing)
	if err != nil {
		r.logger.Error("Failed to marshal listing", zap.Error(err))
		return fmt.Errorf("marshal listing: %w", err)
	}

	return r.Set(ctx, listingKey(id), data, ttl)
}

// InvalidateListing drops the cached detail after an edit
func (r *cacheRepository) InvalidateListing(ctx context.Context, id string) error {
	return r.Delete(ctx, listingKey(id))
}
