package repository

import (
	"context"

	"github.com/krishiraksha/KrishiRaksha_Go/internal/domain"
)

// Harvest persists harvest planning runs
type Harvest interface {
	SaveCalculation(ctx context.Context, calc *domain.HarvestCalculation) error
	// GetUserHistory returns a user's calculations, newest first
	GetUserHistory(ctx context.Context, userID string, limit int) ([]domain.HarvestCalculation, error)
	// GetRecentByCrop returns the latest calculations for a crop type, newest first
	GetRecentByCrop(ctx context.Context, cropType string, limit int) ([]domain.HarvestCalculation, error)
}
