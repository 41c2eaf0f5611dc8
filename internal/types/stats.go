package types

import (
	"time"

	"github.com/google/uuid"
)

// RecordScanRequest records one completed scan against a user.
type RecordScanRequest struct {
	UserID         uuid.UUID          `json:"user_id"`
	Classification ScanClassification `json:"classification"`
}

// UserRecyclingStats are aggregate totals for one user. The store behind
// them is in-memory only; totals reset on process restart.
type UserRecyclingStats struct {
	UserID          uuid.UUID      `json:"user_id"`
	ItemsScanned    int            `json:"items_scanned"`
	ItemsRecyclable int            `json:"items_recyclable"`
	ByCategory      map[string]int `json:"by_category"`
	CO2SavedKg      float64        `json:"co2_saved_kg"`
	WaterSavedL     float64        `json:"water_saved_l"`
	LastScanAt      time.Time      `json:"last_scan_at"`
}
