package repository

import (
	"context"

	"github.com/listing-marketplace/internal/domain"
)

// UserRepository defines account storage operations.
type UserRepository interface {
	// Create stores a new user.
	Create(ctx context.Context, user *domain.User) error

	// GetByEmail returns the user or nil when no account matches.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// GetByID returns the user or nil when no account matches.
	GetByID(ctx context.Context, id string) (*domain.User, error)
}
