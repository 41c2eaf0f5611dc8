package places

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/ecosort/ecosort-api/internal/types"
)

// MockDirectoryRepository is a mock implementation of Repository
type MockDirectoryRepository struct {
	mock.Mock
}

func (m *MockDirectoryRepository) SearchNearby(ctx context.Context, query string, origin types.Coordinates, radiusMeters int) ([]types.PlaceResult, error) {
	args := m.Called(ctx, query, origin, radiusMeters)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]types.PlaceResult), args.Error(1)
}

func (m *MockDirectoryRepository) GetDetails(ctx context.Context, placeID string) (*types.PlaceDetails, error) {
	args := m.Called(ctx, placeID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*types.PlaceDetails), args.Error(1)
}

func setupPlacesServiceTest(repo Repository) *ServiceImpl {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewServiceImpl(repo, NewMockRepository(), logger)
}

var testOrigin = types.Coordinates{Latitude: 37.7749, Longitude: -122.4194}

func TestFindNearby_CredentialMissingServesDeterministicMocks(t *testing.T) {
	mockRepo := new(MockDirectoryRepository)
	mockRepo.On("SearchNearby", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, types.ErrCredentialMissing)
	service := setupPlacesServiceTest(mockRepo)
	ctx := context.Background()

	first, err := service.FindNearby(ctx, "plastic recycling center", testOrigin, 10000)
	require.NoError(t, err)
	require.Len(t, first, 3)

	for _, place := range first {
		assert.Equal(t, types.SourceMock, place.Source)
		assert.GreaterOrEqual(t, place.DistanceKm, 0.0)
		assert.InDelta(t, testOrigin.Latitude, place.Coordinates.Latitude, 0.03)
		assert.InDelta(t, testOrigin.Longitude, place.Coordinates.Longitude, 0.03)
		assert.Contains(t, place.Name, "Plastic")
	}

	// Ordered nearest-first.
	for i := 1; i < len(first); i++ {
		assert.LessOrEqual(t, first[i-1].DistanceKm, first[i].DistanceKm)
	}

	// Deterministic across repeated calls with identical inputs.
	second, err := service.FindNearby(ctx, "plastic recycling center", testOrigin, 10000)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestFindNearby_RequestDeniedFallsBackToMocks(t *testing.T) {
	mockRepo := new(MockDirectoryRepository)
	mockRepo.On("SearchNearby", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, types.ErrDirectoryDenied).Once()
	service := setupPlacesServiceTest(mockRepo)

	results, err := service.FindNearby(context.Background(), "glass recycling center", testOrigin, 10000)
	require.NoError(t, err)
	require.Len(t, results, 3)
	assert.Equal(t, "mock-glass-1", results[0].ID)
	mockRepo.AssertExpectations(t)
}

func TestFindNearby_TransportFailureFallsBackToMocks(t *testing.T) {
	mockRepo := new(MockDirectoryRepository)
	mockRepo.On("SearchNearby", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return(nil, types.ErrDirectoryUnavailable).Once()
	service := setupPlacesServiceTest(mockRepo)

	results, err := service.FindNearby(context.Background(), "metal recycling center", testOrigin, 10000)
	require.NoError(t, err)
	require.Len(t, results, 3)
	for _, place := range results {
		assert.Equal(t, types.SourceMock, place.Source)
	}
}

func TestFindNearby_ZeroResultsIsEmptyNotFallback(t *testing.T) {
	mockRepo := new(MockDirectoryRepository)
	mockRepo.On("SearchNearby", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]types.PlaceResult{}, nil).Once()
	service := setupPlacesServiceTest(mockRepo)

	results, err := service.FindNearby(context.Background(), "paper recycling center", testOrigin, 10000)
	require.NoError(t, err)
	assert.Empty(t, results)
	mockRepo.AssertExpectations(t)
}

func TestFindNearby_SuccessAnnotatesAndSortsByDistance(t *testing.T) {
	far := types.PlaceResult{
		ID:          "place-far",
		Name:        "Far Recycling",
		Coordinates: types.Coordinates{Latitude: 37.9, Longitude: -122.5},
		Source:      types.SourceDirectory,
	}
	near := types.PlaceResult{
		ID:          "place-near",
		Name:        "Near Recycling",
		Coordinates: types.Coordinates{Latitude: 37.78, Longitude: -122.42},
		Source:      types.SourceDirectory,
	}

	mockRepo := new(MockDirectoryRepository)
	mockRepo.On("SearchNearby", mock.Anything, mock.Anything, mock.Anything, mock.Anything).
		Return([]types.PlaceResult{far, near}, nil).Once()
	service := setupPlacesServiceTest(mockRepo)

	results, err := service.FindNearby(context.Background(), "recycling center", testOrigin, 10000)
	require.NoError(t, err)
	require.Len(t, results, 2)
	assert.Equal(t, "place-near", results[0].ID)
	assert.Equal(t, "place-far", results[1].ID)
	assert.Greater(t, results[1].DistanceKm, results[0].DistanceKm)
	assert.Greater(t, results[0].DistanceKm, 0.0)
}

func TestGetDetails_FailureYieldsAbsentResult(t *testing.T) {
	mockRepo := new(MockDirectoryRepository)
	mockRepo.On("GetDetails", mock.Anything, "place-1").
		Return(nil, types.ErrDirectoryUnavailable).Once()
	service := setupPlacesServiceTest(mockRepo)

	details, err := service.GetDetails(context.Background(), "place-1")
	require.NoError(t, err)
	assert.Nil(t, details)
}

func TestGetDetails_CredentialMissingUsesMockDetail(t *testing.T) {
	mockRepo := new(MockDirectoryRepository)
	mockRepo.On("GetDetails", mock.Anything, "mock-plastic-1").
		Return(nil, types.ErrCredentialMissing).Once()
	service := setupPlacesServiceTest(mockRepo)

	details, err := service.GetDetails(context.Background(), "mock-plastic-1")
	require.NoError(t, err)
	require.NotNil(t, details)
	assert.NotEmpty(t, details.PhoneNumber)
	assert.NotNil(t, details.OpenNow)
}

func TestEnrichDetails_MergesWithDetailsWinning(t *testing.T) {
	openBefore := false
	openAfter := true
	mockRepo := new(MockDirectoryRepository)
	mockRepo.On("GetDetails", mock.Anything, "place-1").
		Return(&types.PlaceDetails{
			Name:        "Official Name",
			PhoneNumber: "(415) 555-0100",
			Website:     "https://official.example.com",
			OpenNow:     &openAfter,
		}, nil).Once()
	mockRepo.On("GetDetails", mock.Anything, "place-2").
		Return(nil, types.ErrDirectoryUnavailable).Once()
	service := setupPlacesServiceTest(mockRepo)

	results := []types.PlaceResult{
		{ID: "place-1", Name: "Listing Name", PhoneNumber: "old", OpenNow: &openBefore},
		{ID: "place-2", Name: "Untouched", Website: "https://kept.example.com"},
	}

	enriched := service.EnrichDetails(context.Background(), results)
	require.Len(t, enriched, 2)

	// Details win on conflict.
	assert.Equal(t, "Official Name", enriched[0].Name)
	assert.Equal(t, "(415) 555-0100", enriched[0].PhoneNumber)
	assert.Equal(t, "https://official.example.com", enriched[0].Website)
	assert.True(t, *enriched[0].OpenNow)

	// Failed lookup leaves search fields intact.
	assert.Equal(t, "Untouched", enriched[1].Name)
	assert.Equal(t, "https://kept.example.com", enriched[1].Website)
	mockRepo.AssertExpectations(t)
}
