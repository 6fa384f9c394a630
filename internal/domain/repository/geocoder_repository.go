package repository

import (
	"context"

	"github.com/listing-marketplace/internal/domain"
)

// GeocoderRepository defines the forward-geocoding provider contract.
type GeocoderRepository interface {
	// Forward resolves a free-text address to zero or more ranked matches.
	// An empty result is not an error; callers decide how to treat it.
	Forward(ctx context.Context, address string) ([]domain.GeocodeMatch, error)
}
