package recycling

import (
	"strings"

	a "github.com/petar-dambovaliev/aho-corasick"

	"github.com/ecosort/ecosort-api/internal/types"
)

// BuildSearchTerm maps a material classification and optional sub-code to
// a directory-search phrase. Matching on material is case-insensitive and
// the result is never empty.
func BuildSearchTerm(material, recyclingCode string) string {
	normalized := strings.ToLower(strings.TrimSpace(material))

	switch normalized {
	case "plastic":
		if code := strings.TrimSpace(recyclingCode); code != "" {
			return code + " plastic recycling center"
		}
		return "plastic recycling center"
	case "glass":
		return "glass recycling center"
	case "paper":
		return "paper recycling center"
	case "metal":
		return "metal recycling center"
	case "electronics":
		return "e-waste recycling center"
	case "hazardous":
		return "hazardous waste disposal"
	case "":
		return "recycling center"
	default:
		return normalized + " recycling center"
	}
}

// Place types that suggest a location handles recyclables.
var recyclingTypes = map[string]bool{
	"recycling_center":        true,
	"waste_management":        true,
	"point_of_interest":       true,
	"establishment":           true,
	"local_government_office": true,
	"storage":                 true,
	"store":                   true,
}

// Per-material keywords matched as case-insensitive substrings against a
// place's name and address.
var materialKeywords = map[string][]string{
	"plastic":     {"plastic", "pet", "hdpe", "pp", "pvc", "recycling"},
	"glass":       {"glass", "bottle", "recycling"},
	"paper":       {"paper", "cardboard", "recycling"},
	"metal":       {"metal", "scrap", "aluminum", "steel", "recycling"},
	"electronics": {"electronic", "e-waste", "ewaste", "computer", "recycling"},
	"hazardous":   {"hazardous", "chemical", "disposal", "waste"},
	"battery":     {"battery", "batteries", "recycling"},
	"textile":     {"textile", "clothing", "donation", "recycling"},
	"organic":     {"compost", "organic", "green waste"},
	"cardboard":   {"cardboard", "paper", "recycling"},
	"aluminum":    {"aluminum", "can", "metal", "recycling"},
	"steel":       {"steel", "metal", "scrap", "recycling"},
	"copper":      {"copper", "metal", "scrap", "recycling"},
}

// Aho-Corasick matchers for the keyword tables, built once. Substring
// matching is deliberate: the keyword lists are matched anywhere inside a
// place's name or address.
var (
	materialMatchers = func() map[string]a.AhoCorasick {
		matchers := make(map[string]a.AhoCorasick, len(materialKeywords))
		for material, keywords := range materialKeywords {
			builder := a.NewAhoCorasickBuilder(a.Opts{
				AsciiCaseInsensitive: true,
			})
			matchers[material] = builder.Build(keywords)
		}
		return matchers
	}()

	genericBuilder = a.NewAhoCorasickBuilder(a.Opts{
		AsciiCaseInsensitive: true,
	})
	genericMatcher = genericBuilder.Build([]string{"recycling", "recycle"})
)

// LocationAcceptsMaterial estimates whether a place plausibly accepts the
// classified material. Places with no type metadata are always accepted:
// absence of metadata cannot disprove acceptance, and the resulting
// over-inclusion of uncategorized places is intentional. False negatives
// remain possible when a legitimate recycler's listing lacks both type
// metadata and recognizable keywords.
func LocationAcceptsMaterial(place types.PlaceResult, classification types.ScanClassification) bool {
	if len(place.Types) == 0 {
		return true
	}

	hasRecyclingType := false
	for _, placeType := range place.Types {
		if recyclingTypes[strings.ToLower(placeType)] {
			hasRecyclingType = true
			break
		}
	}

	haystack := place.Name + " " + place.Address
	if matcher, known := materialMatchers[strings.ToLower(classification.Category)]; known {
		return hasRecyclingType || matcherHits(matcher, haystack)
	}
	return hasRecyclingType || matcherHits(genericMatcher, haystack)
}

func matcherHits(matcher a.AhoCorasick, haystack string) bool {
	iter := matcher.Iter(haystack)
	return iter.Next() != nil
}
