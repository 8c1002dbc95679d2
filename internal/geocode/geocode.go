package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"io.mapleapps.campquest/internal/camp"
)

const (
	defaultBaseURL = "https://maps.googleapis.com/maps/api/geocode/json"
	cacheKeyPrefix = "geocode:"
	// failedLookup marks an address we will not retry.
	failedLookup = "null"
	// pacingDelay is inserted after every pacingBatchSize uncached lookups.
	pacingDelay     = 100 * time.Millisecond
	pacingBatchSize = 5
)

// Client resolves street addresses to coordinates via the Google Maps
// geocoding API, caching every outcome in Redis keyed by address. A failed
// lookup is cached as a permanent miss and never re-attempted.
type Client struct {
	httpClient *http.Client
	redis      *redis.Client
	logger     *zap.SugaredLogger
	apiKey     string
	baseURL    string
}

// NewClient creates a geocoding client. baseURL overrides the Maps endpoint
// when non-empty (tests point it at a local server).
func NewClient(apiKey string, redisClient *redis.Client, logger *zap.SugaredLogger, baseURL string) *Client {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &Client{
		httpClient: &http.Client{Timeout: 10 * time.Second},
		redis:      redisClient,
		logger:     logger,
		apiKey:     apiKey,
		baseURL:    baseURL,
	}
}

type geocodeResponse struct {
	Status  string `json:"status"`
	Results []struct {
		Geometry struct {
			Location camp.LatLng `json:"location"`
		} `json:"geometry"`
	} `json:"results"`
}

// Geocode returns the coordinates for an address, or nil when the address
// cannot be resolved. Results, including failures, come from the Redis
// cache on repeat calls. The boolean reports whether the network was hit.
func (c *Client) Geocode(ctx context.Context, address string) (*camp.LatLng, bool) {
	if coords, hit := c.cached(ctx, address); hit {
		return coords, false
	}

	coords := c.fetch(ctx, address)
	c.store(ctx, address, coords)
	return coords, true
}

// GeocodeBatch resolves a list of addresses, pausing briefly after every
// fifth uncached lookup to stay under the API's rate limits. Addresses that
// fail to resolve are absent from the result.
func (c *Client) GeocodeBatch(ctx context.Context, addresses []string) map[string]camp.LatLng {
	resolved := make(map[string]camp.LatLng)
	apiCalls := 0
	cacheHits := 0

	for _, address := range addresses {
		if _, done := resolved[address]; done {
			continue
		}
		coords, hitNetwork := c.Geocode(ctx, address)
		if hitNetwork {
			apiCalls++
			if apiCalls%pacingBatchSize == 0 {
				select {
				case <-ctx.Done():
					return resolved
				case <-time.After(pacingDelay):
				}
			}
		} else {
			cacheHits++
		}
		if coords != nil {
			resolved[address] = *coords
		}
	}

	if cacheHits > 0 || apiCalls > 0 {
		c.logger.Infow("geocoding batch finished",
			"cache_hits", cacheHits,
			"api_calls", apiCalls,
			"resolved", len(resolved),
		)
	}
	return resolved
}

func (c *Client) cached(ctx context.Context, address string) (*camp.LatLng, bool) {
	value, err := c.redis.Get(ctx, cacheKeyPrefix+address).Result()
	if err != nil {
		return nil, false
	}
	if value == failedLookup {
		return nil, true
	}
	var coords camp.LatLng
	if err := json.Unmarshal([]byte(value), &coords); err != nil {
		return nil, false
	}
	return &coords, true
}

func (c *Client) store(ctx context.Context, address string, coords *camp.LatLng) {
	value := failedLookup
	if coords != nil {
		encoded, err := json.Marshal(coords)
		if err != nil {
			return
		}
		value = string(encoded)
	}
	if err := c.redis.Set(ctx, cacheKeyPrefix+address, value, 0).Err(); err != nil {
		c.logger.Warnw("failed to cache geocode result", "address", address, "error", err)
	}
}

func (c *Client) fetch(ctx context.Context, address string) *camp.LatLng {
	requestURL := fmt.Sprintf("%s?address=%s&key=%s", c.baseURL, url.QueryEscape(address), c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, requestURL, nil)
	if err != nil {
		c.logger.Errorw("failed to build geocode request", "address", address, "error", err)
		return nil
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Errorw("geocoding request failed", "address", address, "error", err)
		return nil
	}
	defer resp.Body.Close()

	var decoded geocodeResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		c.logger.Errorw("failed to decode geocode response", "address", address, "error", err)
		return nil
	}

	if decoded.Status == "OVER_QUERY_LIMIT" {
		c.logger.Warnw("geocoding quota exceeded", "address", address)
		return nil
	}
	if len(decoded.Results) == 0 {
		return nil
	}

	coords := decoded.Results[0].Geometry.Location
	return &coords
}

// FullAddress joins a session location into the address string used as the
// cache key.
func FullAddress(location camp.Location) string {
	return fmt.Sprintf("%s, %s, %s, Canada", location.Address, location.City, location.Province)
}
