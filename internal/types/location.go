package types

// Coordinates is a latitude/longitude pair in decimal degrees.
type Coordinates struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// PlaceResult is one drop-off location candidate from the directory
// service (or its mock fallback). Fields other than the detail fields
// (PhoneNumber, Website, OpenNow) are never mutated after mapping;
// detail lookups merge in on top and win on conflict.
type PlaceResult struct {
	ID          string      `json:"id"`
	Name        string      `json:"name"`
	Address     string      `json:"address"`
	DistanceKm  float64     `json:"distance_km"`
	Rating      *float64    `json:"rating,omitempty"`
	OpenNow     *bool       `json:"open_now,omitempty"`
	PhoneNumber string      `json:"phone_number,omitempty"`
	Website     string      `json:"website,omitempty"`
	Coordinates Coordinates `json:"coordinates"`
	Types       []string    `json:"types,omitempty"`
	Source      string      `json:"source,omitempty"` // "directory" or "mock"
}

// PlaceDetails is the partial result of a secondary detail lookup.
type PlaceDetails struct {
	Name        string `json:"name,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	Website     string `json:"website,omitempty"`
	OpenNow     *bool  `json:"open_now,omitempty"`
}

// SearchLocationsRequest is the find-locations request body.
type SearchLocationsRequest struct {
	Classification ScanClassification `json:"classification"`
	Origin         *Coordinates       `json:"origin,omitempty"`
	RadiusMeters   int                `json:"radius_meters,omitempty"`
	IncludeDetails bool               `json:"include_details,omitempty"`
}

// SearchLocationsResponse is the distance-ordered location list handed
// back to the UI layer.
type SearchLocationsResponse struct {
	Query   string        `json:"query"`
	Origin  Coordinates   `json:"origin"`
	Results []PlaceResult `json:"results"`
}

// Source values for PlaceResult.
const (
	SourceDirectory = "directory"
	SourceMock      = "mock"
)
