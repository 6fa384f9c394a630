package repository

import (
	"context"

	"github.com/listing-marketplace/internal/domain"
)

// ListingRepository defines document-store operations on listings.
type ListingRepository interface {
	// Insert stores a new listing, assigns the identifier and the write
	// timestamp, and returns the generated identifier.
	Insert(ctx context.Context, listing *domain.Listing) (string, error)

	// Replace overwrites the listing at id with a fresh write timestamp.
	Replace(ctx context.Context, id string, listing *domain.Listing) error

	// GetByID returns the listing or nil when it does not exist.
	GetByID(ctx context.Context, id string) (*domain.Listing, error)

	// ListByType returns listings of one transaction kind, newest first.
	ListByType(ctx context.Context, listingType domain.ListingType, limit int) ([]*domain.Listing, error)
}
