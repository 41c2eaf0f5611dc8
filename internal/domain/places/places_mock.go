package places

import (
	"context"
	"fmt"
	"strings"

	"github.com/ecosort/ecosort-api/internal/types"
)

// MockRepository synthesizes directory results anchored near the supplied
// origin. Output is fully deterministic: identical query and origin give
// byte-identical results, so tests can assert exact values. It backs the
// credential-free mode and every transport-failure fallback.
type MockRepository struct{}

func NewMockRepository() *MockRepository {
	return &MockRepository{}
}

// mockSites are the fixed offsets and naming templates for the three
// synthesized places. Offsets stay within ±0.03 degrees of the origin.
var mockSites = [3]struct {
	dLat, dLng float64
	nameFmt    string
	address    string
	rating     float64
}{
	{0.01, 0.01, "%s Recycling Center", "120 Green Way", 4.5},
	{-0.02, 0.015, "%s Recycling Depot", "455 Cedar Ave", 4.2},
	{0.025, -0.03, "City %s Drop-Off", "78 Harbor Rd", 3.9},
}

func (m *MockRepository) SearchNearby(_ context.Context, query string, origin types.Coordinates, _ int) ([]types.PlaceResult, error) {
	keyword := dominantMaterial(query)
	title := strings.ToUpper(keyword[:1]) + keyword[1:]

	results := make([]types.PlaceResult, 0, len(mockSites))
	for i, site := range mockSites {
		rating := site.rating
		results = append(results, types.PlaceResult{
			ID:      fmt.Sprintf("mock-%s-%d", keyword, i+1),
			Name:    fmt.Sprintf(site.nameFmt, title),
			Address: site.address,
			Coordinates: types.Coordinates{
				Latitude:  origin.Latitude + site.dLat,
				Longitude: origin.Longitude + site.dLng,
			},
			Rating: &rating,
			Types:  []string{"recycling_center", "establishment"},
			Source: types.SourceMock,
		})
	}
	return results, nil
}

func (m *MockRepository) GetDetails(_ context.Context, placeID string) (*types.PlaceDetails, error) {
	if !strings.HasPrefix(placeID, "mock-") {
		return nil, fmt.Errorf("%w: place %q", types.ErrNotFound, placeID)
	}
	openNow := true
	return &types.PlaceDetails{
		PhoneNumber: "(415) 555-0142",
		Website:     "https://example.com/recycling",
		OpenNow:     &openNow,
	}, nil
}

// dominantMaterial picks the material keyword a search phrase is about.
// Checked in fixed order so the result is stable for phrases naming more
// than one material.
func dominantMaterial(query string) string {
	q := strings.ToLower(query)
	for _, keyword := range []string{"plastic", "glass", "paper", "metal"} {
		if strings.Contains(q, keyword) {
			return keyword
		}
	}
	return "general"
}
