package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/listing-marketplace/internal/domain"
	"github.com/listing-marketplace/internal/domain/repository"
	"github.com/listing-marketplace/internal/pkg/errors"
	"github.com/listing-marketplace/internal/pkg/utils"
	"github.com/listing-marketplace/internal/usecase/dto"
)

// SubmitListingUseCase runs the listing submission pipeline: validate,
// resolve location, upload images, commit the document. Control flows
// strictly forward; every failure is terminal for the attempt and leaves the
// caller free to resubmit.
type SubmitListingUseCase struct {
	listingRepo repository.ListingRepository
	storageRepo repository.StorageRepository
	geocoder    repository.GeocoderRepository
	cacheRepo   repository.CacheRepository
	streamRepo  repository.StreamRepository
	logger      *zap.Logger
	maxImages   int
}

// NewSubmitListingUseCase creates a new SubmitListingUseCase
func NewSubmitListingUseCase(
	listingRepo repository.ListingRepository,
	storageRepo repository.StorageRepository,
	geocoder repository.GeocoderRepository,
	cacheRepo repository.CacheRepository,
	streamRepo repository.StreamRepository,
	logger *zap.Logger,
	maxImages int,
) *SubmitListingUseCase {
	if maxImages <= 0 {
		maxImages = domain.MaxListingImages
	}
	return &SubmitListingUseCase{
		listingRepo: listingRepo,
		storageRepo: storageRepo,
		geocoder:    geocoder,
		cacheRepo:   cacheRepo,
		streamRepo:  streamRepo,
		logger:      logger,
		maxImages:   maxImages,
	}
}

// Create inserts a new listing and returns its generated identifier.
func (uc *SubmitListingUseCase) Create(ctx context.Context, draft *domain.ListingDraft, progress domain.ProgressFunc) (*dto.SubmitListingResponse, error) {
	return uc.submit(ctx, "", draft, progress)
}

// Edit replaces an existing listing in place. Ownership is confirmed before
// geocoding, uploads or writes happen.
func (uc *SubmitListingUseCase) Edit(ctx context.Context, id string, draft *domain.ListingDraft, progress domain.ProgressFunc) (*dto.SubmitListingResponse, error) {
	if id == "" {
		return nil, errors.ErrInvalidRequest
	}
	return uc.submit(ctx, id, draft, progress)
}

func (uc *SubmitListingUseCase) submit(ctx context.Context, editID string, draft *domain.ListingDraft, progress domain.ProgressFunc) (*dto.SubmitListingResponse, error) {
	// Stage 1: form invariants, before any collaborator is touched
	if err := uc.validate(draft); err != nil {
		return nil, err
	}

	// Edit path: ownership gate precedes every network side effect
	if editID != "" {
		existing, err := uc.listingRepo.GetByID(ctx, editID)
		if err != nil {
			uc.logger.Error("Failed to load listing for ownership check",
				zap.String("listing_id", editID),
				zap.Error(err))
			return nil, errors.ErrPersistenceFailed
		}
		if existing == nil {
			return nil, errors.ErrListingNotFound
		}
		if existing.UserRef != draft.UserRef {
			uc.logger.Warn("Edit rejected: submitter does not own listing",
				zap.String("listing_id", editID),
				zap.String("owner", existing.UserRef),
				zap.String("submitter", draft.UserRef))
			return nil, errors.ErrNotOwner
		}
	}

	// Stage 2: location resolution gates the uploads
	geo, location, err := uc.resolveLocation(ctx, draft)
	if err != nil {
		return nil, err
	}

	// Stage 3: concurrent per-file uploads, joined before the commit
	imgURLs, err := uc.uploadImages(ctx, draft, progress)
	if err != nil {
		return nil, err
	}

	// Stage 4: assemble and write the record
	listing := buildListing(draft, geo, location, imgURLs)

	if editID != "" {
		if err := uc.listingRepo.Replace(ctx, editID, listing); err != nil {
			uc.logger.Error("Failed to replace listing",
				zap.String("listing_id", editID),
				zap.Error(err))
			return nil, errors.ErrPersistenceFailed
		}

		// Stale cached detail is worse than a miss
		if err := uc.cacheRepo.InvalidateListing(ctx, editID); err != nil {
			uc.logger.Warn("Failed to invalidate listing cache",
				zap.String("listing_id", editID),
				zap.Error(err))
		}

		uc.logger.Info("Listing updated",
			zap.String("listing_id", editID),
			zap.Int("image_count", len(imgURLs)))

		return &dto.SubmitListingResponse{ID: editID, Type: string(listing.Type)}, nil
	}

	id, err := uc.listingRepo.Insert(ctx, listing)
	if err != nil {
		uc.logger.Error("Failed to insert listing", zap.Error(err))
		return nil, errors.ErrPersistenceFailed
	}

	uc.logger.Info("Listing created",
		zap.String("listing_id", id),
		zap.String("type", string(listing.Type)),
		zap.Int("image_count", len(imgURLs)))

	return &dto.SubmitListingResponse{ID: id, Type: string(listing.Type)}, nil
}

// validate checks the submission invariants in order: pricing first, then
// the image bound. Failures are synchronous with zero side effects.
func (uc *SubmitListingUseCase) validate(draft *domain.ListingDraft) error {
	if draft.Offer && draft.DiscountedPrice >= draft.RegularPrice {
		return errors.ErrInvalidPricing.WithDetails(map[string]interface{}{
			"regular_price":    draft.RegularPrice,
			"discounted_price": draft.DiscountedPrice,
		})
	}

	if len(draft.Images) > uc.maxImages {
		return errors.ErrTooManyImages.WithDetails(map[string]interface{}{
			"image_count": len(draft.Images),
			"max_images":  uc.maxImages,
		})
	}

	return nil
}

// resolveLocation maps the draft to coordinates and a display location.
// With geocoding disabled the explicit coordinates and the raw address are
// used verbatim and no network call is made.
func (uc *SubmitListingUseCase) resolveLocation(ctx context.Context, draft *domain.ListingDraft) (domain.GeoLocation, string, error) {
	if !draft.GeocodingEnabled {
		if !utils.ValidateCoordinates(draft.Latitude, draft.Longitude) {
			return domain.GeoLocation{}, "", errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
				"latitude":  draft.Latitude,
				"longitude": draft.Longitude,
			})
		}
		return domain.GeoLocation{Lat: draft.Latitude, Lng: draft.Longitude}, draft.Address, nil
	}

	matches, err := uc.geocoder.Forward(ctx, draft.Address)
	if err != nil {
		uc.logger.Error("Geocoding request failed",
			zap.String("address", draft.Address),
			zap.Error(err))
		return domain.GeoLocation{}, "", errors.ErrAddressNotFound.WithDetails(map[string]interface{}{
			"address": draft.Address,
		})
	}

	if len(matches) == 0 {
		uc.logger.Info("Address produced no geocoding matches",
			zap.String("address", draft.Address))
		return domain.GeoLocation{}, "", errors.ErrAddressNotFound.WithDetails(map[string]interface{}{
			"address": draft.Address,
		})
	}

	// First ranked match wins; absent coordinates stay at 0
	first := matches[0]
	return domain.GeoLocation{Lat: first.Lat, Lng: first.Lng}, first.Formatted, nil
}

// uploadImages fans out one upload per file and joins them. The result
// preserves input order: position i holds the URL of file i, position 0 is
// the cover image. Any single failure fails the stage as one unit; blobs
// that already landed are handed to the cleanup stream instead of being
// rolled back inline.
func (uc *SubmitListingUseCase) uploadImages(ctx context.Context, draft *domain.ListingDraft, progress domain.ProgressFunc) ([]string, error) {
	n := len(draft.Images)
	if n == 0 {
		return []string{}, nil
	}

	urls := make([]string, n)
	objectNames := make([]string, n)
	uploadErrs := make([]error, n)

	var wg sync.WaitGroup
	for i, img := range draft.Images {
		// Owner + original name + random suffix: no collisions even for
		// identical file names within one submission
		objectName := fmt.Sprintf("%s-%s-%s", draft.UserRef, img.Name, uuid.NewString())
		objectNames[i] = objectName

		wg.Add(1)
		go func(i int, img domain.ImageFile, objectName string) {
			defer wg.Done()

			url, err := uc.storageRepo.Upload(ctx, objectName, img.Content, img.Size, func(transferred, total int64) {
				if progress != nil {
					progress(domain.UploadProgress{
						Index:       i,
						FileName:    img.Name,
						Transferred: transferred,
						Total:       total,
					})
				}
			})

			urls[i] = url
			uploadErrs[i] = err
		}(i, img, objectName)
	}
	wg.Wait()

	var failed []string
	var orphaned []string
	for i, err := range uploadErrs {
		if err != nil {
			uc.logger.Error("Image upload failed",
				zap.String("file", draft.Images[i].Name),
				zap.String("object", objectNames[i]),
				zap.Error(err))
			failed = append(failed, draft.Images[i].Name)
			continue
		}
		orphaned = append(orphaned, objectNames[i])
	}

	if len(failed) == 0 {
		return urls, nil
	}

	// Best effort: the blobs that did land are orphaned now, let the
	// cleanup worker remove them
	if len(orphaned) > 0 && uc.streamRepo != nil {
		event := domain.OrphanedUploadEvent{
			UserRef:     draft.UserRef,
			ObjectNames: orphaned,
			FailedAt:    time.Now().UTC(),
		}
		if err := uc.streamRepo.PublishToStream(ctx, domain.StreamStorageCleanup, event); err != nil {
			uc.logger.Warn("Failed to publish orphaned upload event",
				zap.Int("orphaned_count", len(orphaned)),
				zap.Error(err))
		}
	}

	return nil, errors.ErrUploadFailed.WithDetails(map[string]interface{}{
		"failed_files": failed,
	})
}

// buildListing assembles the persisted record. The raw file list and raw
// address are dropped; discountedPrice is zeroed (and thus omitted from the
// document) when the listing carries no offer.
func buildListing(draft *domain.ListingDraft, geo domain.GeoLocation, location string, imgURLs []string) *domain.Listing {
	listing := &domain.Listing{
		Type:         draft.Type,
		Name:         draft.Name,
		Bedrooms:     draft.Bedrooms,
		Bathrooms:    draft.Bathrooms,
		Parking:      draft.Parking,
		Furnished:    draft.Furnished,
		Offer:        draft.Offer,
		RegularPrice: draft.RegularPrice,
		ImgUrls:      imgURLs,
		GeoLocation:  geo,
		Location:     location,
		UserRef:      draft.UserRef,
	}

	// The field is stored iff the listing carries an offer, even at 0
	if draft.Offer {
		discounted := draft.DiscountedPrice
		listing.DiscountedPrice = &discounted
	}

	return listing
}
