package stats

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/ecosort/ecosort-api/internal/types"
)

var _ Service = (*ServiceImpl)(nil)

type Service interface {
	RecordScan(ctx context.Context, userID uuid.UUID, classification types.ScanClassification) (*types.UserRecyclingStats, error)
	GetUserStats(ctx context.Context, userID uuid.UUID) (*types.UserRecyclingStats, error)
}

type ServiceImpl struct {
	repo   Repository
	logger *slog.Logger
}

func NewService(repo Repository, logger *slog.Logger) *ServiceImpl {
	return &ServiceImpl{
		repo:   repo,
		logger: logger,
	}
}

func (s *ServiceImpl) RecordScan(ctx context.Context, userID uuid.UUID, classification types.ScanClassification) (*types.UserRecyclingStats, error) {
	l := s.logger.With(slog.String("method", "RecordScan"))

	stats, err := s.repo.RecordScan(ctx, userID, classification)
	if err != nil {
		l.ErrorContext(ctx, "Failed to record scan", "error", err)
		return nil, err
	}

	l.InfoContext(ctx, "Recorded scan",
		slog.String("user_id", userID.String()),
		slog.String("category", classification.Category),
		slog.Int("items_scanned", stats.ItemsScanned))
	return stats, nil
}

func (s *ServiceImpl) GetUserStats(ctx context.Context, userID uuid.UUID) (*types.UserRecyclingStats, error) {
	l := s.logger.With(slog.String("method", "GetUserStats"))

	stats, err := s.repo.GetUserStats(ctx, userID)
	if err != nil {
		l.WarnContext(ctx, "Failed to get user stats", "error", err)
		return nil, err
	}

	return stats, nil
}
