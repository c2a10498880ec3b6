package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/clubhub-app/clubhub/internal/domain/common/errorz"
	"github.com/clubhub-app/clubhub/pkg/logger/types"
)

const maxPlacesQueryLength = 200

// placesCache holds raw autocomplete responses keyed by normalized
// query for a fixed TTL.
type placesCache interface {
	Get(ctx context.Context, query string) (string, error)
	Set(ctx context.Context, query, payload string, ttl time.Duration) error
}

// PlacesService proxies the Google Places Autocomplete API behind a
// cache. It carries no business logic; it only keeps API traffic (and
// billing) down.
type PlacesService struct {
	cache  placesCache
	client *http.Client
	logger *types.Logger

	apiKey   string
	baseURL  string
	cacheTTL time.Duration
}

func NewPlacesService(cache placesCache, logger *types.Logger, apiKey, baseURL string, cacheTTL time.Duration) *PlacesService {
	if baseURL == "" {
		baseURL = "https://maps.googleapis.com/maps/api/place/autocomplete/json"
	}
	return &PlacesService{
		cache:    cache,
		client:   &http.Client{Timeout: 10 * time.Second},
		logger:   logger,
		apiKey:   apiKey,
		baseURL:  baseURL,
		cacheTTL: cacheTTL,
	}
}

// Autocomplete returns the raw predictions payload for a location query.
// Blank queries short-circuit to an empty prediction list; oversized
// ones are rejected before they reach the API.
func (s *PlacesService) Autocomplete(ctx context.Context, query string) (json.RawMessage, error) {
	if strings.TrimSpace(query) == "" {
		return json.RawMessage(`{"predictions":[]}`), nil
	}
	if len(query) > maxPlacesQueryLength {
		return nil, fmt.Errorf("%w: query too long", errorz.ErrValidation)
	}

	key := NormalizePlacesQuery(query)
	if cached, err := s.cache.Get(ctx, key); err == nil {
		return json.RawMessage(cached), nil
	}

	payload, err := s.fetch(ctx, query)
	if err != nil {
		return nil, err
	}

	if err = s.cache.Set(ctx, key, string(payload), s.cacheTTL); err != nil {
		s.logger.Errorf("failed to cache places response: %v", err)
	}
	return payload, nil
}

// NormalizePlacesQuery produces the cache key: queries differing only in
// case or surrounding whitespace share an entry.
func NormalizePlacesQuery(query string) string {
	return strings.ToLower(strings.TrimSpace(query))
}

func (s *PlacesService) fetch(ctx context.Context, query string) (json.RawMessage, error) {
	params := url.Values{}
	params.Set("input", query)
	params.Set("key", s.apiKey)
	params.Set("types", "establishment|geocode")

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("places api returned status %d: %s", resp.StatusCode, body)
	}
	return body, nil
}
