package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/listing-marketplace/internal/delivery/http/middleware"
	"github.com/listing-marketplace/internal/domain"
	"github.com/listing-marketplace/internal/pkg/errors"
	"github.com/listing-marketplace/internal/pkg/utils"
	"github.com/listing-marketplace/internal/pkg/validator"
	"github.com/listing-marketplace/internal/usecase"
	"github.com/listing-marketplace/internal/usecase/dto"
)

// ListingHandler - handler for listing submissions and reads
type ListingHandler struct {
	submitUC  *usecase.SubmitListingUseCase
	listingUC *usecase.ListingUseCase
	logger    *zap.Logger
}

// NewListingHandler - creates a new ListingHandler
func NewListingHandler(submitUC *usecase.SubmitListingUseCase, listingUC *usecase.ListingUseCase, logger *zap.Logger) *ListingHandler {
	return &ListingHandler{
		submitUC:  submitUC,
		listingUC: listingUC,
		logger:    logger,
	}
}

// Create godoc
// @Summary Create a listing
// @Description Validates the submission, resolves the address to coordinates, uploads the images and stores the listing document. The whole submission fails as one unit; nothing is stored on failure.
// @Tags Listings
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param type formData string true "Transaction kind" Enums(sell, rent)
// @Param name formData string true "Listing title (10-32 characters)"
// @Param bedrooms formData int true "Bedroom count"
// @Param bathrooms formData int true "Bathroom count"
// @Param address formData string true "Free-text address"
// @Param regularPrice formData number true "Regular price"
// @Param discountedPrice formData number false "Discounted price, requires offer=true"
// @Param offer formData bool false "Listing carries a discount"
// @Param parking formData bool false "Parking spot"
// @Param furnished formData bool false "Furnished"
// @Param geocodingEnabled formData bool false "Resolve the address via the geocoder" default(true)
// @Param latitude formData number false "Explicit latitude when geocoding is disabled"
// @Param longitude formData number false "Explicit longitude when geocoding is disabled"
// @Param images formData file true "Listing images, at most 6, first file is the cover"
// @Success 201 {object} utils.SuccessResponse{data=dto.SubmitListingResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 401 {object} utils.ErrorResponse
// @Failure 502 {object} utils.ErrorResponse
// @Router /api/v1/listings [post]
func (h *ListingHandler) Create(c *fiber.Ctx) error {
	draft, cleanup, err := h.parseSubmission(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	defer cleanup()

	resp, err := h.submitUC.Create(c.Context(), draft, h.progressLogger())
	if err != nil {
		return utils.SendError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(utils.SuccessResponse{Data: resp})
}

// Edit godoc
// @Summary Edit a listing
// @Description Replaces an existing listing in place. Only the owner may edit; ownership is checked before any geocoding or upload work starts.
// @Tags Listings
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param id path string true "Listing identifier"
// @Param type formData string true "Transaction kind" Enums(sell, rent)
// @Param name formData string true "Listing title (10-32 characters)"
// @Param bedrooms formData int true "Bedroom count"
// @Param bathrooms formData int true "Bathroom count"
// @Param address formData string true "Free-text address"
// @Param regularPrice formData number true "Regular price"
// @Param discountedPrice formData number false "Discounted price, requires offer=true"
// @Param offer formData bool false "Listing carries a discount"
// @Param parking formData bool false "Parking spot"
// @Param furnished formData bool false "Furnished"
// @Param geocodingEnabled formData bool false "Resolve the address via the geocoder" default(true)
// @Param latitude formData number false "Explicit latitude when geocoding is disabled"
// @Param longitude formData number false "Explicit longitude when geocoding is disabled"
// @Param images formData file true "Replacement images, at most 6, first file is the cover"
// @Success 200 {object} utils.SuccessResponse{data=dto.SubmitListingResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 403 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/listings/{id} [put]
func (h *ListingHandler) Edit(c *fiber.Ctx) error {
	draft, cleanup, err := h.parseSubmission(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	defer cleanup()

	resp, err := h.submitUC.Edit(c.Context(), c.Params("id"), draft, h.progressLogger())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, resp, nil)
}

// GetByID godoc
// @Summary Get a listing
// @Description Returns the full listing document for the listing page.
// @Tags Listings
// @Produce json
// @Param id path string true "Listing identifier"
// @Success 200 {object} utils.SuccessResponse{data=domain.Listing}
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/listings/{id} [get]
func (h *ListingHandler) GetByID(c *fiber.Ctx) error {
	listing, err := h.listingUC.GetListing(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, listing, nil)
}

// ListByType godoc
// @Summary Browse listings by category
// @Description Returns listings of one transaction kind, newest first.
// @Tags Listings
// @Produce json
// @Param type query string true "Transaction kind" Enums(sell, rent)
// @Param limit query int false "Maximum results" default(20)
// @Success 200 {object} utils.SuccessResponse{data=dto.ListListingsResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Router /api/v1/listings [get]
func (h *ListingHandler) ListByType(c *fiber.Ctx) error {
	req := dto.ListListingsRequest{
		Type:  c.Query("type"),
		Limit: c.QueryInt("limit", 0),
	}

	result, err := h.listingUC.ListByType(c.Context(), &req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// parseSubmission reads the scalar form fields and opens the image parts.
// The returned cleanup closes every opened file and is safe to call always.
func (h *ListingHandler) parseSubmission(c *fiber.Ctx) (*domain.ListingDraft, func(), error) {
	noop := func() {}

	var req dto.SubmitListingRequest
	if err := c.BodyParser(&req); err != nil {
		return nil, noop, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"body": err.Error(),
		})
	}

	if err := validator.Validate(&req); err != nil {
		return nil, noop, err
	}

	form, err := c.MultipartForm()
	if err != nil {
		return nil, noop, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"body": "expected multipart form data",
		})
	}

	files := form.File["images"]
	images := make([]domain.ImageFile, 0, len(files))
	closers := make([]func() error, 0, len(files))
	cleanup := func() {
		for _, closeFile := range closers {
			_ = closeFile()
		}
	}

	for _, fh := range files {
		f, err := fh.Open()
		if err != nil {
			cleanup()
			return nil, noop, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
				"images": "could not read uploaded file " + fh.Filename,
			})
		}
		closers = append(closers, f.Close)
		images = append(images, domain.ImageFile{
			Name:    fh.Filename,
			Size:    fh.Size,
			Content: f,
		})
	}

	return req.ToDraft(middleware.UserID(c), images), cleanup, nil
}

// progressLogger reports per-file upload progress into the request log.
func (h *ListingHandler) progressLogger() domain.ProgressFunc {
	return func(p domain.UploadProgress) {
		h.logger.Debug("Upload progress",
			zap.Int("index", p.Index),
			zap.String("file", p.FileName),
			zap.Float64("fraction", p.Fraction()),
		)
	}
}
