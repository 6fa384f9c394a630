package errors

import "net/http"

// Submission pipeline failures. All of them are terminal for the attempt:
// nothing is retried and the caller may resubmit after correcting input.
var (
	ErrInvalidPricing = New(
		"INVALID_PRICING",
		"Discounted price must be less than regular price",
		http.StatusBadRequest,
	)

	ErrTooManyImages = New(
		"TOO_MANY_IMAGES",
		"A listing can have at most 6 images",
		http.StatusBadRequest,
	)

	ErrAddressNotFound = New(
		"ADDRESS_NOT_FOUND",
		"Address could not be geocoded",
		http.StatusBadRequest,
	)

	ErrUploadFailed = New(
		"UPLOAD_FAILED",
		"Image upload failed",
		http.StatusBadGateway,
	)

	ErrNotOwner = New(
		"NOT_OWNER",
		"Listing belongs to another user",
		http.StatusForbidden,
	)

	ErrPersistenceFailed = New(
		"PERSISTENCE_FAILED",
		"Listing could not be saved",
		http.StatusInternalServerError,
	)
)

var (
	ErrListingNotFound = New(
		"LISTING_NOT_FOUND",
		"Listing not found",
		http.StatusNotFound,
	)

	ErrInvalidCredentials = New(
		"INVALID_CREDENTIALS",
		"Invalid email or password",
		http.StatusUnauthorized,
	)

	ErrEmailTaken = New(
		"EMAIL_TAKEN",
		"Email is already registered",
		http.StatusConflict,
	)

	ErrUnauthorized = New(
		"UNAUTHORIZED",
		"Authentication required",
		http.StatusUnauthorized,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
