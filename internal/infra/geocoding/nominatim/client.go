// Package nominatim implements the domain Geocoder against the Nominatim
// address-search API.
package nominatim

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"locator/config"
	"locator/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// Params defines the required parameters
type Params struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
}

// Client issues one search request per lookup. Nominatim's usage policy
// requires an identifying User-Agent; anonymous or default clients are
// rejected or rate-limited.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
	logger     *slog.Logger
}

// NewClient creates a Nominatim geocoding client.
func NewClient(params Params) service.Geocoder {
	return &Client{
		baseURL:   params.Config.Geocoder.BaseURL,
		userAgent: params.Config.Geocoder.UserAgent,
		httpClient: &http.Client{
			Timeout: params.Config.Geocoder.Timeout,
		},
		logger: params.Logger,
	}
}

// Geocode resolves a free-text address into coordinates, taking the first
// match only. Every failure mode collapses into service.ErrNoMatch: the
// caller only needs to know whether coordinates exist. The underlying cause
// is logged here so operators can still tell a provider outage from a bad
// address.
func (c *Client) Geocode(ctx context.Context, address string) (*service.Coordinates, error) {
	params := url.Values{
		"q":      {address},
		"format": {"json"},
		"limit":  {"1"},
	}
	fullURL := c.baseURL + "/search?" + params.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return nil, errors.Wrap(err, "create geocode request")
	}
	req.Header.Set("User-Agent", c.userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("Geocode request failed", slog.Any("error", err))

		return nil, service.ErrNoMatch
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.logger.Warn("Geocode request returned non-success status",
			slog.Int("status", resp.StatusCode),
		)

		return nil, service.ErrNoMatch
	}

	// Nominatim returns a JSON array with lat/lon as string fields.
	var results []searchResult
	if err := json.NewDecoder(resp.Body).Decode(&results); err != nil {
		c.logger.Warn("Geocode response decode failed", slog.Any("error", err))

		return nil, service.ErrNoMatch
	}

	if len(results) == 0 {
		return nil, service.ErrNoMatch
	}

	first := results[0]
	lat, latErr := strconv.ParseFloat(first.Lat, 64)
	lon, lonErr := strconv.ParseFloat(first.Lon, 64)
	if latErr != nil || lonErr != nil {
		c.logger.Warn("Geocode result has unparsable coordinates",
			slog.String("lat", first.Lat),
			slog.String("lon", first.Lon),
		)

		return nil, service.ErrNoMatch
	}

	return &service.Coordinates{
		Latitude:  lat,
		Longitude: lon,
	}, nil
}

// searchResult is the subset of the Nominatim search response we consume.
type searchResult struct {
	Lat string `json:"lat"`
	Lon string `json:"lon"`
}
