package dto

import "github.com/listing-marketplace/internal/domain"

// SubmitListingRequest - scalar form fields of a create/edit submission.
// Image files travel separately as multipart parts.
type SubmitListingRequest struct {
	Type             string  `json:"type" form:"type" validate:"required,oneof=sell rent"`
	Name             string  `json:"name" form:"name" validate:"required,min=10,max=32"`
	Bedrooms         int     `json:"bedrooms" form:"bedrooms" validate:"required,min=1,max=50"`
	Bathrooms        int     `json:"bathrooms" form:"bathrooms" validate:"required,min=1,max=50"`
	Parking          bool    `json:"parking" form:"parking"`
	Furnished        bool    `json:"furnished" form:"furnished"`
	Address          string  `json:"address" form:"address" validate:"required"`
	Offer            bool    `json:"offer" form:"offer"`
	RegularPrice     float64 `json:"regularPrice" form:"regularPrice" validate:"required,gt=0"`
	DiscountedPrice  float64 `json:"discountedPrice" form:"discountedPrice" validate:"omitempty,gt=0"`
	GeocodingEnabled bool    `json:"geocodingEnabled" form:"geocodingEnabled"`
	Latitude         float64 `json:"latitude" form:"latitude" validate:"omitempty,min=-90,max=90"`
	Longitude        float64 `json:"longitude" form:"longitude" validate:"omitempty,min=-180,max=180"`
}

// ToDraft converts the request into the domain draft for the given owner.
func (r *SubmitListingRequest) ToDraft(userRef string, images []domain.ImageFile) *domain.ListingDraft {
	return &domain.ListingDraft{
		Type:             domain.ListingType(r.Type),
		Name:             r.Name,
		Bedrooms:         r.Bedrooms,
		Bathrooms:        r.Bathrooms,
		Parking:          r.Parking,
		Furnished:        r.Furnished,
		Address:          r.Address,
		Offer:            r.Offer,
		RegularPrice:     r.RegularPrice,
		DiscountedPrice:  r.DiscountedPrice,
		Images:           images,
		GeocodingEnabled: r.GeocodingEnabled,
		Latitude:         r.Latitude,
		Longitude:        r.Longitude,
		UserRef:          userRef,
	}
}

// SubmitListingResponse - result of a successful submission, enough for the
// client to navigate to the listing page.
type SubmitListingResponse struct {
	ID   string `json:"id"`
	Type string `json:"type"`
}

// ListListingsRequest - category browse query
type ListListingsRequest struct {
	Type  string `json:"type" validate:"required,oneof=sell rent"`
	Limit int    `json:"limit" validate:"omitempty,min=1,max=100"`
}

// ListListingsResponse - category browse result, newest first
type ListListingsResponse struct {
	Listings []*domain.Listing `json:"listings"`
	Total    int               `json:"total"`
}
