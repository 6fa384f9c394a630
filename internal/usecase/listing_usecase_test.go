package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"go.uber.org/zap"

	"github.com/listing-marketplace/internal/domain"
	apperrors "github.com/listing-marketplace/internal/pkg/errors"
	"github.com/listing-marketplace/internal/usecase"
	"github.com/listing-marketplace/internal/usecase/dto"
)

func TestListingUseCase_GetListing(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()
	ttl := 5 * time.Minute

	t.Run("cache hit skips the document store", func(t *testing.T) {
		listings := &MockListingRepository{}
		cache := &MockCacheRepository{}
		uc := usecase.NewListingUseCase(listings, cache, logger, ttl)

		cached := &domain.Listing{Name: "Sunny two bedroom flat", UserRef: "user-1"}
		cache.On("GetListing", ctx, "listing-1").Return(cached, nil)

		got, err := uc.GetListing(ctx, "listing-1")

		assert.NoError(t, err)
		assert.Equal(t, cached, got)
		listings.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	t.Run("cache miss reads the store and fills the cache", func(t *testing.T) {
		listings := &MockListingRepository{}
		cache := &MockCacheRepository{}
		uc := usecase.NewListingUseCase(listings, cache, logger, ttl)

		stored := &domain.Listing{Name: "Sunny two bedroom flat"}
		cache.On("GetListing", ctx, "listing-1").Return(nil, nil)
		listings.On("GetByID", ctx, "listing-1").Return(stored, nil)
		cache.On("SetListing", ctx, "listing-1", stored, ttl).Return(nil)

		got, err := uc.GetListing(ctx, "listing-1")

		assert.NoError(t, err)
		assert.Equal(t, stored, got)
		cache.AssertExpectations(t)
	})

	t.Run("cache failure degrades to a store read", func(t *testing.T) {
		listings := &MockListingRepository{}
		cache := &MockCacheRepository{}
		uc := usecase.NewListingUseCase(listings, cache, logger, ttl)

		stored := &domain.Listing{Name: "Sunny two bedroom flat"}
		cache.On("GetListing", ctx, "listing-1").Return(nil, errors.New("connection refused"))
		listings.On("GetByID", ctx, "listing-1").Return(stored, nil)
		cache.On("SetListing", ctx, "listing-1", stored, ttl).Return(errors.New("connection refused"))

		got, err := uc.GetListing(ctx, "listing-1")

		assert.NoError(t, err)
		assert.Equal(t, stored, got)
	})

	t.Run("unknown listing", func(t *testing.T) {
		listings := &MockListingRepository{}
		cache := &MockCacheRepository{}
		uc := usecase.NewListingUseCase(listings, cache, logger, ttl)

		cache.On("GetListing", ctx, "gone").Return(nil, nil)
		listings.On("GetByID", ctx, "gone").Return(nil, nil)

		_, err := uc.GetListing(ctx, "gone")

		assert.ErrorIs(t, err, apperrors.ErrListingNotFound)
	})

	t.Run("empty id", func(t *testing.T) {
		listings := &MockListingRepository{}
		cache := &MockCacheRepository{}
		uc := usecase.NewListingUseCase(listings, cache, logger, ttl)

		_, err := uc.GetListing(ctx, "")

		assert.ErrorIs(t, err, apperrors.ErrInvalidRequest)
	})
}

func TestListingUseCase_ListByType(t *testing.T) {
	logger := zap.NewNop()
	ctx := context.Background()

	t.Run("valid type with default limit", func(t *testing.T) {
		listings := &MockListingRepository{}
		cache := &MockCacheRepository{}
		uc := usecase.NewListingUseCase(listings, cache, logger, time.Minute)

		stored := []*domain.Listing{{Name: "first"}, {Name: "second"}}
		listings.On("ListByType", ctx, domain.ListingTypeRent, 20).Return(stored, nil)

		resp, err := uc.ListByType(ctx, &dto.ListListingsRequest{Type: "rent"})

		assert.NoError(t, err)
		assert.Equal(t, 2, resp.Total)
		assert.Equal(t, stored, resp.Listings)
	})

	t.Run("limit is capped", func(t *testing.T) {
		listings := &MockListingRepository{}
		cache := &MockCacheRepository{}
		uc := usecase.NewListingUseCase(listings, cache, logger, time.Minute)

		listings.On("ListByType", ctx, domain.ListingTypeSell, 100).Return([]*domain.Listing{}, nil)

		_, err := uc.ListByType(ctx, &dto.ListListingsRequest{Type: "sell", Limit: 500})

		assert.NoError(t, err)
		listings.AssertExpectations(t)
	})

	t.Run("unknown type", func(t *testing.T) {
		listings := &MockListingRepository{}
		cache := &MockCacheRepository{}
		uc := usecase.NewListingUseCase(listings, cache, logger, time.Minute)

		_, err := uc.ListByType(ctx, &dto.ListListingsRequest{Type: "lease"})

		assert.ErrorIs(t, err, apperrors.ErrInvalidRequest)
		listings.AssertNotCalled(t, "ListByType", mock.Anything, mock.Anything, mock.Anything)
	})
}
