package repository

import (
	"context"
	"time"

	"github.com/krishiraksha/KrishiRaksha_Go/internal/domain"
)

// Market persists market price observations
type Market interface {
	InsertPrice(ctx context.Context, price *domain.MarketPrice) error
	// LatestPrices returns the newest observations for a crop, newest first
	LatestPrices(ctx context.Context, crop string, limit int) ([]domain.MarketPrice, error)
	// PricesSince returns observations recorded at or after since, oldest first
	PricesSince(ctx context.Context, crop string, since time.Time) ([]domain.MarketPrice, error)
}
