package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/krishiraksha/KrishiRaksha_Go/internal/domain"
)

const (
	priceColumns = `price_id, crop, market, city, state, price, unit, currency, source, recorded_at`

	insertPriceSQL = `
		INSERT INTO market_prices (` + priceColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	latestPricesSQL = `SELECT ` + priceColumns + ` FROM market_prices
		WHERE crop = $1 ORDER BY recorded_at DESC LIMIT $2`

	pricesSinceSQL = `SELECT ` + priceColumns + ` FROM market_prices
		WHERE crop = $1 AND recorded_at >= $2 ORDER BY recorded_at ASC`
)

// MarketRepository implements repository.Market
type MarketRepository struct {
	db *pgxpool.Pool
}

// NewMarketRepository creates a new MarketRepository
func NewMarketRepository(db *pgxpool.Pool) *MarketRepository {
	return &MarketRepository{db: db}
}

// InsertPrice stores one price observation
func (r *MarketRepository) InsertPrice(ctx context.Context, p *domain.MarketPrice) error {
	_, err := r.db.Exec(ctx, insertPriceSQL,
		p.ID, p.Crop, p.Market, p.City, p.State, p.Price, p.Unit, p.Currency, p.Source, p.RecordedAt)
	if err != nil {
		return wrapDBError("failed to insert price", err)
	}
	return nil
}

// LatestPrices returns the newest observations for a crop
func (r *MarketRepository) LatestPrices(ctx context.Context, crop string, limit int) ([]domain.MarketPrice, error) {
	rows, err := r.db.Query(ctx, latestPricesSQL, crop, limitOrDefault(limit))
	if err != nil {
		return nil, wrapDBError("failed to query latest prices", err)
	}
	return collectPrices(rows)
}

// PricesSince returns observations at or after since, oldest first
func (r *MarketRepository) PricesSince(ctx context.Context, crop string, since time.Time) ([]domain.MarketPrice, error) {
	rows, err := r.db.Query(ctx, pricesSinceSQL, crop, since)
	if err != nil {
		return nil, wrapDBError("failed to query price history", err)
	}
	return collectPrices(rows)
}

func collectPrices(rows pgx.Rows) ([]domain.MarketPrice, error) {
	prices, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.MarketPrice, error) {
		var p domain.MarketPrice
		err := row.Scan(&p.ID, &p.Crop, &p.Market, &p.City, &p.State, &p.Price,
			&p.Unit, &p.Currency, &p.Source, &p.RecordedAt)
		return p, err
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanRows, err)
	}
	return prices, nil
}
