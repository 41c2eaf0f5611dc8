package stats

import (
	"context"
	"fmt"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/ecosort/ecosort-api/internal/types"
)

type Repository interface {
	RecordScan(ctx context.Context, userID uuid.UUID, classification types.ScanClassification) (*types.UserRecyclingStats, error)
	GetUserStats(ctx context.Context, userID uuid.UUID) (*types.UserRecyclingStats, error)
}

// MemoryRepository is the in-memory statistics store. It is owned by
// whoever constructs it and guarded by a single mutex; totals do not
// survive a restart.
type MemoryRepository struct {
	mu     sync.Mutex
	byUser map[uuid.UUID]*types.UserRecyclingStats
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byUser: make(map[uuid.UUID]*types.UserRecyclingStats),
	}
}

func (r *MemoryRepository) RecordScan(_ context.Context, userID uuid.UUID, classification types.ScanClassification) (*types.UserRecyclingStats, error) {
	if userID == uuid.Nil {
		return nil, fmt.Errorf("%w: user id is required", types.ErrBadRequest)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.byUser[userID]
	if !ok {
		stats = &types.UserRecyclingStats{
			UserID:     userID,
			ByCategory: make(map[string]int),
		}
		r.byUser[userID] = stats
	}

	stats.ItemsScanned++
	if classification.Recyclable {
		stats.ItemsRecyclable++
	}
	if category := strings.ToLower(strings.TrimSpace(classification.Category)); category != "" {
		stats.ByCategory[category]++
	}
	stats.CO2SavedKg += impactMagnitude(classification.Impact.CO2Saved)
	stats.WaterSavedL += impactMagnitude(classification.Impact.WaterSaved)
	stats.LastScanAt = time.Now()

	return copyStats(stats), nil
}

func (r *MemoryRepository) GetUserStats(_ context.Context, userID uuid.UUID) (*types.UserRecyclingStats, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.byUser[userID]
	if !ok {
		return nil, fmt.Errorf("%w: no stats for user %s", types.ErrNotFound, userID)
	}
	return copyStats(stats), nil
}

func copyStats(stats *types.UserRecyclingStats) *types.UserRecyclingStats {
	out := *stats
	out.ByCategory = make(map[string]int, len(stats.ByCategory))
	for category, count := range stats.ByCategory {
		out.ByCategory[category] = count
	}
	return &out
}

// impactMagnitude parses the leading magnitude out of a free-form
// "0.5 kg CO2" style impact string. Unrecognized strings contribute zero.
func impactMagnitude(impact string) float64 {
	fields := strings.Fields(impact)
	if len(fields) == 0 {
		return 0
	}
	value, err := strconv.ParseFloat(fields[0], 64)
	if err != nil || value < 0 {
		return 0
	}
	return value
}
