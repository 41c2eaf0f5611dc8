package geocode

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/ecosort/ecosort-api/internal/types"
)

// FallbackCoordinates is used whenever the caller's position cannot be
// resolved. A usable (if geographically wrong) result is preferred over a
// hard failure in the search pipeline.
var FallbackCoordinates = types.Coordinates{Latitude: 37.7749, Longitude: -122.4194}

const defaultEndpoint = "http://ip-api.com/json/"

// Provider resolves the caller's current coordinates.
type Provider interface {
	Locate(ctx context.Context) (types.Coordinates, error)
}

// HTTPProvider resolves coordinates through an IP-geolocation lookup.
type HTTPProvider struct {
	endpoint string
	client   *http.Client
}

func NewHTTPProvider(endpoint string) *HTTPProvider {
	if endpoint == "" {
		endpoint = defaultEndpoint
	}
	return &HTTPProvider{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 5 * time.Second},
	}
}

func (p *HTTPProvider) Locate(ctx context.Context) (types.Coordinates, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, p.endpoint, nil)
	if err != nil {
		return types.Coordinates{}, fmt.Errorf("failed to build geolocation request: %w", err)
	}

	resp, err := p.client.Do(req)
	if err != nil {
		return types.Coordinates{}, fmt.Errorf("geolocation lookup failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return types.Coordinates{}, fmt.Errorf("geolocation lookup returned status %d", resp.StatusCode)
	}

	var payload struct {
		Status string  `json:"status"`
		Lat    float64 `json:"lat"`
		Lon    float64 `json:"lon"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return types.Coordinates{}, fmt.Errorf("failed to parse geolocation response: %w", err)
	}
	if payload.Status != "success" {
		return types.Coordinates{}, fmt.Errorf("geolocation lookup rejected: %s", payload.Status)
	}

	return types.Coordinates{Latitude: payload.Lat, Longitude: payload.Lon}, nil
}

// StaticProvider always reports the same position. Used when geolocation
// is disabled by configuration.
type StaticProvider struct {
	coords types.Coordinates
}

func NewStaticProvider(coords types.Coordinates) *StaticProvider {
	return &StaticProvider{coords: coords}
}

func (p *StaticProvider) Locate(_ context.Context) (types.Coordinates, error) {
	return p.coords, nil
}

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	// CurrentCoordinates resolves the caller's position. It never fails:
	// any provider error is logged and the fixed fallback pair returned.
	CurrentCoordinates(ctx context.Context) types.Coordinates
}

type ServiceImpl struct {
	provider Provider
	logger   *slog.Logger
}

func NewServiceImpl(provider Provider, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		provider: provider,
		logger:   logger,
	}
}

func (s *ServiceImpl) CurrentCoordinates(ctx context.Context) types.Coordinates {
	l := s.logger.With(slog.String("method", "CurrentCoordinates"))

	coords, err := s.provider.Locate(ctx)
	if err != nil {
		l.WarnContext(ctx, "Position lookup failed, using fallback coordinates", slog.Any("error", err))
		return FallbackCoordinates
	}

	l.DebugContext(ctx, "Resolved caller coordinates",
		slog.Float64("latitude", coords.Latitude),
		slog.Float64("longitude", coords.Longitude))
	return coords
}
