package opencage

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/listing-marketplace/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestClient_Forward(t *testing.T) {
	logger := zap.NewNop()

	t.Run("successful request", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "test_key", r.URL.Query().Get("key"))
			assert.Equal(t, "Brigade Road, Bangalore", r.URL.Query().Get("q"))

			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{
				"results": [
					{
						"geometry": {"lat": 12.9715, "lng": 77.6070},
						"formatted": "Brigade Road, Bengaluru, Karnataka, India"
					},
					{
						"geometry": {"lat": 12.9616, "lng": 77.6044},
						"formatted": "Brigade Road, Shanthala Nagar, Bengaluru, India"
					}
				]
			}`))
		}))
		defer server.Close()

		cfg := &config.GeocoderConfig{
			BaseURL:        server.URL,
			APIKey:         "test_key",
			RequestTimeout: 10,
		}

		client := NewClient(cfg, logger)

		matches, err := client.Forward(context.Background(), "Brigade Road, Bangalore")
		require.NoError(t, err)
		require.Len(t, matches, 2)
		assert.Equal(t, 12.9715, matches[0].Lat)
		assert.Equal(t, 77.6070, matches[0].Lng)
		assert.Equal(t, "Brigade Road, Bengaluru, Karnataka, India", matches[0].Formatted)
	})

	t.Run("zero matches", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"results": []}`))
		}))
		defer server.Close()

		cfg := &config.GeocoderConfig{
			BaseURL:        server.URL,
			APIKey:         "test_key",
			RequestTimeout: 10,
		}

		client := NewClient(cfg, logger)

		matches, err := client.Forward(context.Background(), "Unknown Place")
		require.NoError(t, err)
		assert.Empty(t, matches)
	})

	t.Run("missing coordinates default to zero", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"results": [{"formatted": "Somewhere"}]}`))
		}))
		defer server.Close()

		cfg := &config.GeocoderConfig{
			BaseURL:        server.URL,
			APIKey:         "test_key",
			RequestTimeout: 10,
		}

		client := NewClient(cfg, logger)

		matches, err := client.Forward(context.Background(), "Somewhere")
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, 0.0, matches[0].Lat)
		assert.Equal(t, 0.0, matches[0].Lng)
		assert.Equal(t, "Somewhere", matches[0].Formatted)
	})

	t.Run("empty address", func(t *testing.T) {
		cfg := &config.GeocoderConfig{
			BaseURL:        "https://api.opencagedata.com",
			APIKey:         "test_key",
			RequestTimeout: 10,
		}

		client := NewClient(cfg, logger)

		matches, err := client.Forward(context.Background(), "")
		assert.Error(t, err)
		assert.Nil(t, matches)
		assert.Contains(t, err.Error(), "cannot be empty")
	})

	t.Run("api error response", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusPaymentRequired)
			w.Write([]byte(`{"status":{"code":402,"message":"quota exceeded"}}`))
		}))
		defer server.Close()

		cfg := &config.GeocoderConfig{
			BaseURL:        server.URL,
			APIKey:         "test_key",
			RequestTimeout: 10,
		}

		client := NewClient(cfg, logger)

		matches, err := client.Forward(context.Background(), "Brigade Road")
		assert.Error(t, err)
		assert.Nil(t, matches)
		assert.Contains(t, err.Error(), "status 402")
	})
}
