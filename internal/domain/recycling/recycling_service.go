package recycling

import (
	"context"
	"fmt"
	"log/slog"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/ecosort/ecosort-api/internal/domain/geocode"
	"github.com/ecosort/ecosort-api/internal/domain/places"
	"github.com/ecosort/ecosort-api/internal/types"
)

const defaultRadiusMeters = 10000

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	// FindDropOffLocations runs the full pipeline: build a search phrase
	// from the classification, resolve an origin, search the directory
	// (degrading to mock data on failure), annotate distances, and apply
	// the acceptance filter. The caller always receives some list,
	// possibly mock-sourced, possibly empty.
	FindDropOffLocations(ctx context.Context, req types.SearchLocationsRequest) (*types.SearchLocationsResponse, error)

	// GetLocationDetails fetches the secondary detail fields for one
	// place by id.
	GetLocationDetails(ctx context.Context, placeID string) (*types.PlaceDetails, error)
}

type ServiceImpl struct {
	places   places.Service
	geocoder geocode.Service
	logger   *slog.Logger
}

func NewServiceImpl(placesSvc places.Service, geocoder geocode.Service, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		places:   placesSvc,
		geocoder: geocoder,
		logger:   logger,
	}
}

func (s *ServiceImpl) FindDropOffLocations(ctx context.Context, req types.SearchLocationsRequest) (*types.SearchLocationsResponse, error) {
	l := s.logger.With(slog.String("method", "FindDropOffLocations"))
	ctx, span := otel.Tracer("RecyclingService").Start(ctx, "FindDropOffLocations", trace.WithAttributes(
		attribute.String("category", req.Classification.Category),
	))
	defer span.End()

	query := BuildSearchTerm(req.Classification.Category, req.Classification.RecyclingCode)

	var origin types.Coordinates
	if req.Origin != nil {
		origin = *req.Origin
	} else {
		origin = s.geocoder.CurrentCoordinates(ctx)
	}

	radius := req.RadiusMeters
	if radius <= 0 {
		radius = defaultRadiusMeters
	}

	results, err := s.places.FindNearby(ctx, query, origin, radius)
	if err != nil {
		// The places service degrades to mock data on every transport
		// path; an error here is a programming fault, not a network one.
		l.ErrorContext(ctx, "Nearby search failed", slog.Any("error", err))
		return nil, fmt.Errorf("failed to find nearby locations: %w", err)
	}

	accepted := make([]types.PlaceResult, 0, len(results))
	for _, place := range results {
		if LocationAcceptsMaterial(place, req.Classification) {
			accepted = append(accepted, place)
		}
	}

	if req.IncludeDetails {
		accepted = s.places.EnrichDetails(ctx, accepted)
	}

	l.InfoContext(ctx, "Drop-off search completed",
		slog.String("query", query),
		slog.Int("result_count", len(accepted)),
		slog.Int("filtered_out", len(results)-len(accepted)))

	return &types.SearchLocationsResponse{
		Query:   query,
		Origin:  origin,
		Results: accepted,
	}, nil
}

func (s *ServiceImpl) GetLocationDetails(ctx context.Context, placeID string) (*types.PlaceDetails, error) {
	l := s.logger.With(slog.String("method", "GetLocationDetails"))

	details, err := s.places.GetDetails(ctx, placeID)
	if err != nil {
		l.WarnContext(ctx, "Detail lookup failed", slog.String("place_id", placeID), slog.Any("error", err))
		return nil, err
	}
	if details == nil {
		return nil, fmt.Errorf("%w: place %q", types.ErrNotFound, placeID)
	}
	return details, nil
}
