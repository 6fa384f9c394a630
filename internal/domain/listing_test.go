package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

func TestListingType_Valid(t *testing.T) {
	assert.True(t, ListingTypeSell.Valid())
	assert.True(t, ListingTypeRent.Valid())
	assert.False(t, ListingType("lease").Valid())
	assert.False(t, ListingType("").Valid())
}

func TestListing_DiscountedPriceOmittedWithoutOffer(t *testing.T) {
	listing := Listing{
		Type:         ListingTypeRent,
		Name:         "Quiet two bedroom flat",
		Offer:        false,
		RegularPrice: 1200,
	}

	data, err := bson.Marshal(listing)
	require.NoError(t, err)

	var doc bson.M
	require.NoError(t, bson.Unmarshal(data, &doc))

	_, present := doc["discountedPrice"]
	assert.False(t, present, "discountedPrice must not be persisted when offer is false")
	assert.Equal(t, float64(1200), doc["regularPrice"])
}

func TestListing_ZeroDiscountedPricePersistedWithOffer(t *testing.T) {
	discounted := 0.0
	listing := Listing{
		Type:            ListingTypeRent,
		Name:            "Quiet two bedroom flat",
		Offer:           true,
		RegularPrice:    1200,
		DiscountedPrice: &discounted,
	}

	data, err := bson.Marshal(listing)
	require.NoError(t, err)

	var doc bson.M
	require.NoError(t, bson.Unmarshal(data, &doc))

	val, present := doc["discountedPrice"]
	assert.True(t, present, "discountedPrice must be persisted when offer is true")
	assert.Equal(t, float64(0), val)
}

func TestUploadProgress_Fraction(t *testing.T) {
	p := UploadProgress{Transferred: 512, Total: 2048}
	assert.InDelta(t, 0.25, p.Fraction(), 1e-9)

	unknown := UploadProgress{Transferred: 512, Total: 0}
	assert.Equal(t, 0.0, unknown.Fraction())
}
