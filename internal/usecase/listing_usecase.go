package usecase

import (
	"context"
	"time"

	"go.uber.org/zap"

	"github.com/listing-marketplace/internal/domain"
	"github.com/listing-marketplace/internal/domain/repository"
	"github.com/listing-marketplace/internal/pkg/errors"
	"github.com/listing-marketplace/internal/usecase/dto"
)

const (
	defaultListLimit = 20
	maxListLimit     = 100
)

// ListingUseCase serves listing reads: the detail view behind the listing
// page and the category browse. Detail reads go through a cache-aside layer.
type ListingUseCase struct {
	listingRepo repository.ListingRepository
	cacheRepo   repository.CacheRepository
	logger      *zap.Logger
	cacheTTL    time.Duration
}

// NewListingUseCase creates a new ListingUseCase
func NewListingUseCase(
	listingRepo repository.ListingRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *ListingUseCase {
	return &ListingUseCase{
		listingRepo: listingRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
		cacheTTL:    cacheTTL,
	}
}

// GetListing returns the full listing document by identifier. Cache failures
// degrade to a document-store read rather than failing the request.
func (uc *ListingUseCase) GetListing(ctx context.Context, id string) (*domain.Listing, error) {
	if id == "" {
		return nil, errors.ErrInvalidRequest
	}

	if cached, err := uc.cacheRepo.GetListing(ctx, id); err != nil {
		uc.logger.Warn("Listing cache read failed",
			zap.String("listing_id", id),
			zap.Error(err))
	} else if cached != nil {
		return cached, nil
	}

	listing, err := uc.listingRepo.GetByID(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to get listing",
			zap.String("listing_id", id),
			zap.Error(err))
		return nil, errors.ErrInternalServer
	}
	if listing == nil {
		return nil, errors.ErrListingNotFound
	}

	if err := uc.cacheRepo.SetListing(ctx, id, listing, uc.cacheTTL); err != nil {
		uc.logger.Warn("Listing cache write failed",
			zap.String("listing_id", id),
			zap.Error(err))
	}

	return listing, nil
}

// ListByType returns listings of one transaction kind, newest first.
func (uc *ListingUseCase) ListByType(ctx context.Context, req *dto.ListListingsRequest) (*dto.ListListingsResponse, error) {
	listingType := domain.ListingType(req.Type)
	if !listingType.Valid() {
		return nil, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"type": req.Type,
		})
	}

	limit := req.Limit
	if limit <= 0 {
		limit = defaultListLimit
	}
	if limit > maxListLimit {
		limit = maxListLimit
	}

	listings, err := uc.listingRepo.ListByType(ctx, listingType, limit)
	if err != nil {
		uc.logger.Error("Failed to list listings",
			zap.String("type", req.Type),
			zap.Error(err))
		return nil, errors.ErrInternalServer
	}

	return &dto.ListListingsResponse{
		Listings: listings,
		Total:    len(listings),
	}, nil
}
