package harvest

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/krishiraksha/KrishiRaksha_Go/internal/crops"
	"github.com/krishiraksha/KrishiRaksha_Go/internal/domain"
	"github.com/krishiraksha/KrishiRaksha_Go/internal/logger"
	"github.com/krishiraksha/KrishiRaksha_Go/internal/metrics"
	"github.com/krishiraksha/KrishiRaksha_Go/internal/repository"
)

// Service defines the harvest planning feature interface
type Service interface {
	Calculate(ctx context.Context, userID string, inputs domain.HarvestInputs) (*domain.HarvestResult, error)
	GetUserHistory(ctx context.Context, userID string, limit int) ([]domain.HarvestCalculation, error)
	GetRecentByCrop(ctx context.Context, cropType string, limit int) ([]domain.HarvestCalculation, error)
}

// CropCatalog is the subset of the crop catalog the service needs for metric labels
type CropCatalog interface {
	Has(name string) bool
}

type service struct {
	repo    repository.Harvest
	catalog CropCatalog
	planner *Planner
	clock   func() time.Time
}

// NewService creates a new harvest service. repo may be nil, in which case
// calculations are not persisted and history lookups return empty results.
func NewService(repo repository.Harvest, catalog CropCatalog, clock func() time.Time) Service {
	if clock == nil {
		clock = time.Now
	}
	return &service{
		repo:    repo,
		catalog: catalog,
		planner: NewPlanner(),
		clock:   clock,
	}
}

// Calculate runs the planner on inputs and stores the run for the user
func (s *service) Calculate(ctx context.Context, userID string, inputs domain.HarvestInputs) (*domain.HarvestResult, error) {
	log := logger.FromContext(ctx)

	inputs.CropType = crops.Normalize(inputs.CropType)
	now := s.clock()
	result := s.planner.Calculate(inputs, now)

	s.recordMetrics(inputs.CropType, result)
	log.Info("Harvest calculated",
		"crop", inputs.CropType,
		"optimal_days", result.OptimalDays,
		"expected_profit", result.ExpectedProfit,
		"confidence", result.Confidence)

	if s.repo == nil {
		return result, nil
	}

	calc := &domain.HarvestCalculation{
		ID:        uuid.NewString(),
		UserID:    userID,
		CropType:  inputs.CropType,
		Inputs:    inputs,
		Result:    *result,
		CreatedAt: now,
	}
	if err := s.repo.SaveCalculation(ctx, calc); err != nil {
		log.Error("Failed to save harvest calculation", "error", err, "crop", inputs.CropType)
	}

	return result, nil
}

// GetUserHistory returns a user's past calculations, newest first
func (s *service) GetUserHistory(ctx context.Context, userID string, limit int) ([]domain.HarvestCalculation, error) {
	if userID == "" {
		return nil, fmt.Errorf("%w: user id is required", domain.ErrInvalidInput)
	}
	if s.repo == nil {
		return []domain.HarvestCalculation{}, nil
	}

	history, err := s.repo.GetUserHistory(ctx, userID, clampLimit(limit, DefaultHistoryLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to get harvest history: %w", err)
	}
	return history, nil
}

// GetRecentByCrop returns the latest calculations for a crop type, newest first
func (s *service) GetRecentByCrop(ctx context.Context, cropType string, limit int) ([]domain.HarvestCalculation, error) {
	cropType = crops.Normalize(cropType)
	if cropType == "" {
		return nil, fmt.Errorf("%w: crop type is required", domain.ErrInvalidInput)
	}
	if s.repo == nil {
		return []domain.HarvestCalculation{}, nil
	}

	recent, err := s.repo.GetRecentByCrop(ctx, cropType, clampLimit(limit, DefaultRecentLimit))
	if err != nil {
		return nil, fmt.Errorf("failed to get recent calculations: %w", err)
	}
	return recent, nil
}

func (s *service) recordMetrics(cropType string, result *domain.HarvestResult) {
	label := metrics.CropOther
	if s.catalog != nil && s.catalog.Has(cropType) {
		label = cropType
	}
	metrics.HarvestCalculations.WithLabelValues(label).Inc()
	metrics.HarvestOptimalDays.Observe(float64(result.OptimalDays))
	metrics.HarvestConfidence.Observe(float64(result.Confidence))
}

func clampLimit(limit, def int) int {
	if limit <= 0 {
		return def
	}
	if limit > MaxHistoryLimit {
		return MaxHistoryLimit
	}
	return limit
}
