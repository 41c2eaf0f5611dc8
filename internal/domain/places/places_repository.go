package places

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/ecosort/ecosort-api/internal/types"
)

// Directory service response statuses we act on. Any other non-OK status
// is treated as a valid empty result, not a failure.
const (
	statusOK            = "OK"
	statusZeroResults   = "ZERO_RESULTS"
	statusRequestDenied = "REQUEST_DENIED"
)

const defaultBaseURL = "https://maps.googleapis.com/maps/api/place"

// Repository is the directory-service access layer.
type Repository interface {
	// SearchNearby issues a nearby-search for query around origin.
	// An empty slice with a nil error is a valid "nothing found".
	SearchNearby(ctx context.Context, query string, origin types.Coordinates, radiusMeters int) ([]types.PlaceResult, error)

	// GetDetails fetches phone/website/open-now for one place by id.
	GetDetails(ctx context.Context, placeID string) (*types.PlaceDetails, error)
}

// HTTPRepository talks the Places-style nearby-search protocol.
type HTTPRepository struct {
	apiKey  string
	baseURL string
	client  *http.Client
	logger  *slog.Logger
}

func NewHTTPRepository(apiKey, baseURL string, logger *slog.Logger) *HTTPRepository {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	return &HTTPRepository{
		apiKey:  apiKey,
		baseURL: baseURL,
		client:  &http.Client{Timeout: 10 * time.Second},
		logger:  logger,
	}
}

type nearbySearchResponse struct {
	Status  string       `json:"status"`
	Results []placeEntry `json:"results"`
}

type placeEntry struct {
	PlaceID  string `json:"place_id"`
	Name     string `json:"name"`
	Vicinity string `json:"vicinity"`
	Geometry struct {
		Location struct {
			Lat float64 `json:"lat"`
			Lng float64 `json:"lng"`
		} `json:"location"`
	} `json:"geometry"`
	Rating       *float64 `json:"rating,omitempty"`
	OpeningHours *struct {
		OpenNow *bool `json:"open_now"`
	} `json:"opening_hours,omitempty"`
	Types []string `json:"types,omitempty"`
}

type placeDetailsResponse struct {
	Status string `json:"status"`
	Result struct {
		Name                 string `json:"name"`
		FormattedPhoneNumber string `json:"formatted_phone_number"`
		Website              string `json:"website"`
		OpeningHours         *struct {
			OpenNow *bool `json:"open_now"`
		} `json:"opening_hours,omitempty"`
	} `json:"result"`
}

func (r *HTTPRepository) SearchNearby(ctx context.Context, query string, origin types.Coordinates, radiusMeters int) ([]types.PlaceResult, error) {
	if r.apiKey == "" {
		return nil, types.ErrCredentialMissing
	}

	params := url.Values{}
	params.Set("location", fmt.Sprintf("%.6f,%.6f", origin.Latitude, origin.Longitude))
	params.Set("radius", strconv.Itoa(radiusMeters))
	params.Set("type", "establishment")
	params.Set("keyword", query)
	params.Set("key", r.apiKey)

	var payload nearbySearchResponse
	if err := r.getJSON(ctx, r.baseURL+"/nearbysearch/json?"+params.Encode(), &payload); err != nil {
		return nil, err
	}

	switch payload.Status {
	case statusOK:
		results := make([]types.PlaceResult, 0, len(payload.Results))
		for _, entry := range payload.Results {
			results = append(results, mapPlaceEntry(entry))
		}
		return results, nil
	case statusRequestDenied:
		return nil, fmt.Errorf("%w: nearby search for %q", types.ErrDirectoryDenied, query)
	default:
		// ZERO_RESULTS and every other non-denied status: nothing found.
		r.logger.DebugContext(ctx, "Nearby search returned no results",
			slog.String("status", payload.Status),
			slog.String("query", query))
		return []types.PlaceResult{}, nil
	}
}

func (r *HTTPRepository) GetDetails(ctx context.Context, placeID string) (*types.PlaceDetails, error) {
	if r.apiKey == "" {
		return nil, types.ErrCredentialMissing
	}

	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", "name,formatted_phone_number,website,opening_hours")
	params.Set("key", r.apiKey)

	var payload placeDetailsResponse
	if err := r.getJSON(ctx, r.baseURL+"/details/json?"+params.Encode(), &payload); err != nil {
		return nil, err
	}

	switch payload.Status {
	case statusOK:
		details := &types.PlaceDetails{
			Name:        payload.Result.Name,
			PhoneNumber: payload.Result.FormattedPhoneNumber,
			Website:     payload.Result.Website,
		}
		if payload.Result.OpeningHours != nil {
			details.OpenNow = payload.Result.OpeningHours.OpenNow
		}
		return details, nil
	case statusRequestDenied:
		return nil, fmt.Errorf("%w: details for %q", types.ErrDirectoryDenied, placeID)
	default:
		return nil, fmt.Errorf("%w: place %q", types.ErrNotFound, placeID)
	}
}

func (r *HTTPRepository) getJSON(ctx context.Context, fullURL string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, fullURL, nil)
	if err != nil {
		return fmt.Errorf("%w: %v", types.ErrDirectoryUnavailable, err)
	}

	resp, err := r.client.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", types.ErrDirectoryUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: unexpected status %d", types.ErrDirectoryUnavailable, resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("%w: malformed response: %v", types.ErrDirectoryUnavailable, err)
	}
	return nil
}

func mapPlaceEntry(entry placeEntry) types.PlaceResult {
	result := types.PlaceResult{
		ID:      entry.PlaceID,
		Name:    entry.Name,
		Address: entry.Vicinity,
		Coordinates: types.Coordinates{
			Latitude:  entry.Geometry.Location.Lat,
			Longitude: entry.Geometry.Location.Lng,
		},
		Rating: entry.Rating,
		Types:  entry.Types,
		Source: types.SourceDirectory,
	}
	if entry.OpeningHours != nil {
		result.OpenNow = entry.OpeningHours.OpenNow
	}
	return result
}
