package domain

import (
	"io"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// ListingType - transaction kind of a listing
type ListingType string

const (
	ListingTypeSell ListingType = "sell"
	ListingTypeRent ListingType = "rent"
)

func (t ListingType) Valid() bool {
	return t == ListingTypeSell || t == ListingTypeRent
}

// MaxListingImages - upper bound on images per listing
const MaxListingImages = 6

// GeoLocation - resolved coordinates of a listing. Coordinates the provider
// omitted stay at 0 instead of failing the submission.
type GeoLocation struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// Listing - the persisted record. DiscountedPrice is written iff the offer
// flag is set, a zero price included; ImgUrls keep the upload input order,
// index 0 is the cover.
type Listing struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"id"`
	Type            ListingType        `bson:"type" json:"type"`
	Name            string             `bson:"name" json:"name"`
	Bedrooms        int                `bson:"bedrooms" json:"bedrooms"`
	Bathrooms       int                `bson:"bathrooms" json:"bathrooms"`
	Parking         bool               `bson:"parking" json:"parking"`
	Furnished       bool               `bson:"furnished" json:"furnished"`
	Offer           bool               `bson:"offer" json:"offer"`
	RegularPrice    float64            `bson:"regularPrice" json:"regularPrice"`
	DiscountedPrice *float64           `bson:"discountedPrice,omitempty" json:"discountedPrice,omitempty"`
	ImgUrls         []string           `bson:"imgUrls" json:"imgUrls"`
	GeoLocation     GeoLocation        `bson:"geoLocation" json:"geoLocation"`
	Location        string             `bson:"location" json:"location"`
	UserRef         string             `bson:"userRef" json:"userRef"`
	Timestamp       time.Time          `bson:"timestamp" json:"timestamp"`
}

// ImageFile - a single image received with the submission, streamed to blob
// storage without buffering the whole file.
type ImageFile struct {
	Name    string
	Size    int64
	Content io.Reader
}

// ListingDraft - transient submission input as it arrives from the form.
// Latitude/Longitude are used only when GeocodingEnabled is false.
type ListingDraft struct {
	Type             ListingType
	Name             string
	Bedrooms         int
	Bathrooms        int
	Parking          bool
	Furnished        bool
	Address          string
	Offer            bool
	RegularPrice     float64
	DiscountedPrice  float64
	Images           []ImageFile
	GeocodingEnabled bool
	Latitude         float64
	Longitude        float64
	UserRef          string
}

// GeocodeMatch - one ranked result from the forward-geocoding provider.
type GeocodeMatch struct {
	Lat       float64
	Lng       float64
	Formatted string
}

// UploadProgress - fraction of one file transferred so far. Informational
// only; no functional decision is made on it.
type UploadProgress struct {
	Index       int
	FileName    string
	Transferred int64
	Total       int64
}

// Fraction returns transferred/total in [0,1], 0 when the size is unknown.
func (p UploadProgress) Fraction() float64 {
	if p.Total <= 0 {
		return 0
	}
	return float64(p.Transferred) / float64(p.Total)
}

// ProgressFunc receives per-file upload progress events.
type ProgressFunc func(p UploadProgress)
