package postgres

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/krishiraksha/KrishiRaksha_Go/internal/domain"
)

const (
	insertCalculationSQL = `
		INSERT INTO harvest_calculations
			(calculation_id, user_id, crop_type, inputs, result, optimal_days, expected_profit, confidence, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	selectCalculationColumns = `
		SELECT calculation_id, user_id, crop_type, inputs, result, created_at
		FROM harvest_calculations`

	userHistorySQL = selectCalculationColumns + `
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	recentByCropSQL = selectCalculationColumns + `
		WHERE crop_type = $1
		ORDER BY created_at DESC
		LIMIT $2`
)

// HarvestRepository implements repository.Harvest
type HarvestRepository struct {
	db *pgxpool.Pool
}

// NewHarvestRepository creates a new HarvestRepository
func NewHarvestRepository(db *pgxpool.Pool) *HarvestRepository {
	return &HarvestRepository{db: db}
}

// SaveCalculation stores one planning run. Inputs and result are kept as JSONB;
// the headline numbers are mirrored into columns for reporting.
func (r *HarvestRepository) SaveCalculation(ctx context.Context, calc *domain.HarvestCalculation) error {
	inputs, err := json.Marshal(calc.Inputs)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToEncode, err)
	}
	result, err := json.Marshal(calc.Result)
	if err != nil {
		return fmt.Errorf("%s: %w", ErrMsgFailedToEncode, err)
	}

	_, err = r.db.Exec(ctx, insertCalculationSQL,
		calc.ID,
		nullableText(calc.UserID),
		calc.CropType,
		inputs,
		result,
		calc.Result.OptimalDays,
		calc.Result.ExpectedProfit,
		calc.Result.Confidence,
		calc.CreatedAt,
	)
	if err != nil {
		return wrapDBError("failed to save harvest calculation", err)
	}
	return nil
}

// GetUserHistory returns a user's calculations, newest first
func (r *HarvestRepository) GetUserHistory(ctx context.Context, userID string, limit int) ([]domain.HarvestCalculation, error) {
	rows, err := r.db.Query(ctx, userHistorySQL, userID, limitOrDefault(limit))
	if err != nil {
		return nil, wrapDBError("failed to query harvest history", err)
	}
	return collectCalculations(rows)
}

// GetRecentByCrop returns the latest calculations for a crop type, newest first
func (r *HarvestRepository) GetRecentByCrop(ctx context.Context, cropType string, limit int) ([]domain.HarvestCalculation, error) {
	rows, err := r.db.Query(ctx, recentByCropSQL, cropType, limitOrDefault(limit))
	if err != nil {
		return nil, wrapDBError("failed to query recent calculations", err)
	}
	return collectCalculations(rows)
}

func collectCalculations(rows pgx.Rows) ([]domain.HarvestCalculation, error) {
	calcs, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (domain.HarvestCalculation, error) {
		var (
			calc           domain.HarvestCalculation
			userID         pgtype.Text
			inputs, result []byte
		)
		if err := row.Scan(&calc.ID, &userID, &calc.CropType, &inputs, &result, &calc.CreatedAt); err != nil {
			return calc, err
		}
		calc.UserID = userID.String
		if err := json.Unmarshal(inputs, &calc.Inputs); err != nil {
			return calc, fmt.Errorf("%s: %w", ErrMsgFailedToDecode, err)
		}
		if err := json.Unmarshal(result, &calc.Result); err != nil {
			return calc, fmt.Errorf("%s: %w", ErrMsgFailedToDecode, err)
		}
		return calc, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToScanRows, err)
	}
	return calcs, nil
}
