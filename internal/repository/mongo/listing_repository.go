package mongo

import (
	"context"
	"fmt"
	"time"

	"github.com/listing-marketplace/internal/domain"
	"github.com/listing-marketplace/internal/domain/repository"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const listingsCollection = "listings"

type listingRepository struct {
	collection *mongo.Collection
	logger     *zap.Logger
}

// NewListingRepository creates the MongoDB-backed listing repository
func NewListingRepository(db *DB, logger *zap.Logger) repository.ListingRepository {
	return &listingRepository{
		collection: db.Collection(listingsCollection),
		logger:     logger,
	}
}

// Insert stores a new listing. The identifier and the write timestamp are
// assigned here, not by the caller.
func (r *listingRepository) Insert(ctx context.Context, listing *domain.Listing) (string, error) {
	listing.ID = primitive.NewObjectID()
	listing.Timestamp = time.Now().UTC()

	if _, err := r.collection.InsertOne(ctx, listing); err != nil {
		r.logger.Error("Failed to insert listing", zap.Error(err))
		return "", fmt.Errorf("insert listing: %w", err)
	}

	r.logger.Debug("Listing inserted",
		zap.String("id", listing.ID.Hex()),
		zap.String("type", string(listing.Type)))

	return listing.ID.Hex(), nil
}

// Replace overwrites the stored listing in full. The previous timestamp is
// not carried over.
func (r *listingRepository) Replace(ctx context.Context, id string, listing *domain.Listing) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return fmt.Errorf("invalid listing id %q: %w", id, err)
	}

	listing.ID = oid
	listing.Timestamp = time.Now().UTC()

	result, err := r.collection.ReplaceOne(ctx, bson.M{"_id": oid}, listing)
	if err != nil {
		r.logger.Error("Failed to replace listing",
			zap.String("id", id),
			zap.Error(err))
		return fmt.Errorf("replace listing: %w", err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("listing %q not found", id)
	}

	r.logger.Debug("Listing replaced", zap.String("id", id))
	return nil
}

func (r *listingRepository) GetByID(ctx context.Context, id string) (*domain.Listing, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, nil // malformed id cannot match any document
	}

	var listing domain.Listing
	err = r.collection.FindOne(ctx, bson.M{"_id": oid}).Decode(&listing)
	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		r.logger.Error("Failed to get listing",
			zap.String("id", id),
			zap.Error(err))
		return nil, fmt.Errorf("get listing: %w", err)
	}

	return &listing, nil
}

func (r *listingRepository) ListByType(ctx context.Context, listingType domain.ListingType, limit int) ([]*domain.Listing, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "timestamp", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.collection.Find(ctx, bson.M{"type": listingType}, opts)
	if err != nil {
		r.logger.Error("Failed to list listings",
			zap.String("type", string(listingType)),
			zap.Error(err))
		return nil, fmt.Errorf("list listings: %w", err)
	}
	defer cursor.Close(ctx)

	var listings []*domain.Listing
	if err := cursor.All(ctx, &listings); err != nil {
		return nil, fmt.Errorf("decode listings: %w", err)
	}

	return listings, nil
}
