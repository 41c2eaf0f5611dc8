package types

// ScanClassification is the vision service's verdict for a photographed
// item. The classifier itself is an external collaborator; its output
// arrives fully formed and is held only for the duration of one
// find-locations request.
type ScanClassification struct {
	ItemName      string       `json:"item_name"`
	Recyclable    bool         `json:"recyclable"`
	Category      string       `json:"category"`
	RecyclingCode string       `json:"recycling_code,omitempty"`
	Instructions  string       `json:"instructions,omitempty"`
	Impact        ImpactDetail `json:"impact"`
}

// ImpactDetail carries free-form magnitude+unit strings as produced by
// the classifier (e.g. "0.5 kg CO2", "2 liters").
type ImpactDetail struct {
	CO2Saved   string `json:"co2_saved"`
	WaterSaved string `json:"water_saved"`
}
