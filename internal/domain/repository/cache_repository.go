package repository

import (
	"context"
	"time"

	"github.com/listing-marketplace/internal/domain"
)

// CacheRepository defines cache operations for listing reads.
type CacheRepository interface {
	// Get returns the cached value or nil on a miss.
	Get(ctx context.Context, key string) ([]byte, error)

	// Set stores a value with a TTL.
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// Delete removes a key.
	Delete(ctx context.Context, key string) error

	// GetListing returns a cached listing or nil on a miss.
	GetListing(ctx context.Context, id string) (*domain.Listing, error)

	// SetListing caches a listing detail document.
	SetListing(ctx context.Context, id string, listing *domain.Listing, ttl time.Duration) error

	// InvalidateListing drops the cached detail after an edit.
	InvalidateListing(ctx context.Context, id string) error
}
