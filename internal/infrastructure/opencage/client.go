package opencage

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/listing-marketplace/internal/config"
	"github.com/listing-marketplace/internal/domain"
	"github.com/listing-marketplace/internal/domain/repository"
	"go.uber.org/zap"
)

type client struct {
	httpClient *http.Client
	baseURL    string
	apiKey     string
	logger     *zap.Logger
}

// NewClient creates a forward-geocoding client for the OpenCage API
func NewClient(cfg *config.GeocoderConfig, logger *zap.Logger) repository.GeocoderRepository {
	return &client{
		httpClient: &http.Client{
			Timeout: time.Duration(cfg.RequestTimeout) * time.Second,
		},
		baseURL: cfg.BaseURL,
		apiKey:  cfg.APIKey,
		logger:  logger,
	}
}

// forwardResponse mirrors the OpenCage response shape. Both the create and
// edit flows go through this one contract; coordinates missing from a result
// decode to 0.
type forwardResponse struct {
	Results []struct {
		Geometry struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"geometry"`
		Formatted string `json:"formatted"`
	} `json:"results"`
}

// Forward resolves a free-text address to ranked coordinate matches
func (c *client) Forward(ctx context.Context, address string) ([]domain.GeocodeMatch, error) {
	if address == "" {
		return nil, fmt.Errorf("address cannot be empty")
	}

	reqURL := fmt.Sprintf("%s/geocode/v1/json?key=%s&q=%s",
		c.baseURL,
		c.apiKey,
		url.QueryEscape(address),
	)

	c.logger.Debug("Calling geocoding API",
		zap.String("address", address))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if err != nil {
		c.logger.Error("Failed to create request", zap.Error(err))
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Error("Failed to execute request", zap.Error(err))
		return nil, fmt.Errorf("failed to execute request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		c.logger.Error("Geocoding API returned error",
			zap.Int("status_code", resp.StatusCode),
			zap.String("body", string(body)))
		return nil, fmt.Errorf("geocoding API error: status %d, body: %s", resp.StatusCode, string(body))
	}

	var fwdResp forwardResponse
	if err := json.NewDecoder(resp.Body).Decode(&fwdResp); err != nil {
		c.logger.Error("Failed to decode response", zap.Error(err))
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}

	matches := make([]domain.GeocodeMatch, 0, len(fwdResp.Results))
	for _, r := range fwdResp.Results {
		matches = append(matches, domain.GeocodeMatch{
			Lat:       r.Geometry.Lat,
			Lng:       r.Geometry.Lng,
			Formatted: r.Formatted,
		})
	}

	c.logger.Debug("Geocoding API call successful",
		zap.String("address", address),
		zap.Int("match_count", len(matches)))

	return matches, nil
}
