package places

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"github.com/patrickmn/go-cache"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/sync/errgroup"

	"github.com/ecosort/ecosort-api/internal/types"
	"github.com/ecosort/ecosort-api/pkg/observability"
)

// detailLookupLimit bounds the concurrent per-result detail fan-out.
const detailLookupLimit = 4

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	// FindNearby runs a directory search and returns distance-annotated
	// results ordered nearest-first. It never returns a transport error:
	// on credential-missing, denial, or transport failure it serves the
	// deterministic mock results instead.
	FindNearby(ctx context.Context, query string, origin types.Coordinates, radiusMeters int) ([]types.PlaceResult, error)

	// GetDetails fetches the secondary detail fields for one place.
	// Returns (nil, nil) when the lookup fails outright.
	GetDetails(ctx context.Context, placeID string) (*types.PlaceDetails, error)

	// EnrichDetails merges detail lookups into a result set. Detail
	// fields win on conflict with search-result fields.
	EnrichDetails(ctx context.Context, results []types.PlaceResult) []types.PlaceResult
}

type ServiceImpl struct {
	repo   Repository
	mock   Repository
	cache  *cache.Cache
	logger *slog.Logger
}

func NewServiceImpl(repo, mock Repository, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		repo:   repo,
		mock:   mock,
		cache:  cache.New(10*time.Minute, 30*time.Minute),
		logger: logger,
	}
}

func (s *ServiceImpl) FindNearby(ctx context.Context, query string, origin types.Coordinates, radiusMeters int) ([]types.PlaceResult, error) {
	l := s.logger.With(slog.String("method", "FindNearby"))
	ctx, span := otel.Tracer("PlacesService").Start(ctx, "FindNearby", trace.WithAttributes(
		attribute.String("query", query),
		attribute.Int("radius_meters", radiusMeters),
	))
	defer span.End()

	cacheKey := fmt.Sprintf("nearby:%.4f:%.4f:%d:%s", origin.Latitude, origin.Longitude, radiusMeters, query)
	if cached, found := s.cache.Get(cacheKey); found {
		if results, ok := cached.([]types.PlaceResult); ok {
			l.DebugContext(ctx, "Serving nearby search from cache", slog.String("query", query))
			return results, nil
		}
	}

	results, err := s.repo.SearchNearby(ctx, query, origin, radiusMeters)
	if err != nil {
		reason := fallbackReason(err)
		observability.DirectoryFallbacks.WithLabelValues(reason).Inc()
		if errors.Is(err, types.ErrCredentialMissing) {
			l.DebugContext(ctx, "Directory credential not configured, serving mock results")
		} else {
			l.WarnContext(ctx, "Directory search failed, serving mock results",
				slog.String("reason", reason),
				slog.Any("error", err))
		}
		results, _ = s.mock.SearchNearby(ctx, query, origin, radiusMeters)
	}

	for i := range results {
		results[i].DistanceKm = HaversineKm(
			origin.Latitude, origin.Longitude,
			results[i].Coordinates.Latitude, results[i].Coordinates.Longitude,
		)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].DistanceKm < results[j].DistanceKm
	})

	s.cache.Set(cacheKey, results, cache.DefaultExpiration)

	l.InfoContext(ctx, "Nearby search completed",
		slog.String("query", query),
		slog.Int("count", len(results)))
	return results, nil
}

func (s *ServiceImpl) GetDetails(ctx context.Context, placeID string) (*types.PlaceDetails, error) {
	l := s.logger.With(slog.String("method", "GetDetails"))

	cacheKey := "details:" + placeID
	if cached, found := s.cache.Get(cacheKey); found {
		if details, ok := cached.(*types.PlaceDetails); ok {
			return details, nil
		}
	}

	details, err := s.repo.GetDetails(ctx, placeID)
	if errors.Is(err, types.ErrCredentialMissing) {
		details, err = s.mock.GetDetails(ctx, placeID)
	}
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return nil, fmt.Errorf("failed to get place details: %w", err)
		}
		// Detail failures yield an absent result, never an error.
		l.WarnContext(ctx, "Detail lookup failed", slog.String("place_id", placeID), slog.Any("error", err))
		return nil, nil
	}

	s.cache.Set(cacheKey, details, cache.DefaultExpiration)
	return details, nil
}

func (s *ServiceImpl) EnrichDetails(ctx context.Context, results []types.PlaceResult) []types.PlaceResult {
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(detailLookupLimit)

	// Each lookup writes only its own slot, so no locking is needed.
	for i := range results {
		g.Go(func() error {
			details, err := s.GetDetails(ctx, results[i].ID)
			if err != nil || details == nil {
				return nil
			}
			mergeDetails(&results[i], details)
			return nil
		})
	}
	_ = g.Wait()
	return results
}

// mergeDetails applies detail fields onto a search result; detail values
// win on conflict.
func mergeDetails(result *types.PlaceResult, details *types.PlaceDetails) {
	if details.Name != "" {
		result.Name = details.Name
	}
	if details.PhoneNumber != "" {
		result.PhoneNumber = details.PhoneNumber
	}
	if details.Website != "" {
		result.Website = details.Website
	}
	if details.OpenNow != nil {
		result.OpenNow = details.OpenNow
	}
}

func fallbackReason(err error) string {
	switch {
	case errors.Is(err, types.ErrCredentialMissing):
		return "credential_missing"
	case errors.Is(err, types.ErrDirectoryDenied):
		return "denied"
	case errors.Is(err, types.ErrDirectoryUnavailable):
		return "unavailable"
	default:
		return "unknown"
	}
}
