package recycling

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ecosort/ecosort-api/internal/types"
)

func TestBuildSearchTerm(t *testing.T) {
	tests := []struct {
		name     string
		material string
		code     string
		want     string
	}{
		{"plastic with code", "plastic", "#1 PET", "#1 PET plastic recycling center"},
		{"plastic without code", "plastic", "", "plastic recycling center"},
		{"glass", "glass", "", "glass recycling center"},
		{"paper", "paper", "", "paper recycling center"},
		{"metal", "metal", "", "metal recycling center"},
		{"electronics uses fixed phrase", "electronics", "", "e-waste recycling center"},
		{"hazardous uses disposal suffix", "hazardous", "", "hazardous waste disposal"},
		{"unknown material falls through", "styrofoam", "", "styrofoam recycling center"},
		{"empty material", "", "", "recycling center"},
		{"code ignored for non-plastic", "glass", "#1 PET", "glass recycling center"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, BuildSearchTerm(tt.material, tt.code))
		})
	}
}

func TestBuildSearchTermCaseInsensitive(t *testing.T) {
	assert.Equal(t, BuildSearchTerm("glass", ""), BuildSearchTerm("Glass", ""))
	assert.Equal(t, BuildSearchTerm("plastic", "#1 PET"), BuildSearchTerm("PLASTIC", "#1 PET"))
}

func TestLocationAcceptsMaterial(t *testing.T) {
	classificationFor := func(category string) types.ScanClassification {
		return types.ScanClassification{ItemName: "item", Category: category}
	}

	t.Run("no type metadata is always accepted", func(t *testing.T) {
		place := types.PlaceResult{Name: "Joe's Diner", Address: "1 Main St"}
		for _, category := range []string{"plastic", "glass", "unobtanium", ""} {
			assert.True(t, LocationAcceptsMaterial(place, classificationFor(category)),
				"category %q should default-accept", category)
		}
	})

	t.Run("recycling type accepts every known category", func(t *testing.T) {
		place := types.PlaceResult{
			Name:  "Somewhere",
			Types: []string{"recycling_center"},
		}
		for category := range materialKeywords {
			assert.True(t, LocationAcceptsMaterial(place, classificationFor(category)),
				"category %q should accept a recycling_center", category)
		}
	})

	t.Run("type matching is case-insensitive", func(t *testing.T) {
		place := types.PlaceResult{Name: "Somewhere", Types: []string{"Recycling_Center"}}
		assert.True(t, LocationAcceptsMaterial(place, classificationFor("plastic")))
	})

	t.Run("keyword in name rescues irrelevant types", func(t *testing.T) {
		place := types.PlaceResult{
			Name:  "GreenCo Recycling",
			Types: []string{"restaurant"},
		}
		assert.True(t, LocationAcceptsMaterial(place, classificationFor("plastic")))
	})

	t.Run("keyword in address rescues irrelevant types", func(t *testing.T) {
		place := types.PlaceResult{
			Name:    "GreenCo",
			Address: "5 Glass Works Rd",
			Types:   []string{"restaurant"},
		}
		assert.True(t, LocationAcceptsMaterial(place, classificationFor("glass")))
	})

	t.Run("irrelevant place with no keywords is rejected", func(t *testing.T) {
		place := types.PlaceResult{
			Name:    "Joe's Diner",
			Address: "1 Main St",
			Types:   []string{"restaurant"},
		}
		assert.False(t, LocationAcceptsMaterial(place, classificationFor("plastic")))
	})

	t.Run("unknown category needs generic recycling keyword", func(t *testing.T) {
		diner := types.PlaceResult{
			Name:    "Joe's Diner",
			Address: "1 Main St",
			Types:   []string{"restaurant"},
		}
		assert.False(t, LocationAcceptsMaterial(diner, classificationFor("unobtanium")))

		recycler := types.PlaceResult{
			Name:    "City Recycle Point",
			Address: "1 Main St",
			Types:   []string{"restaurant"},
		}
		assert.True(t, LocationAcceptsMaterial(recycler, classificationFor("unobtanium")))
	})
}
