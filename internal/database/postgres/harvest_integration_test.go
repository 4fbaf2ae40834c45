package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishiraksha/KrishiRaksha_Go/internal/domain"
	"github.com/krishiraksha/KrishiRaksha_Go/internal/harvest"
)

func newCalculation(userID, crop string, at time.Time) *domain.HarvestCalculation {
	inputs := domain.HarvestInputs{
		CropType:           crop,
		CurrentMaturity:    70,
		PestInfestation:    15,
		CurrentMarketPrice: 2500,
		ExpectedYield:      50,
	}
	return &domain.HarvestCalculation{
		ID:        uuid.NewString(),
		UserID:    userID,
		CropType:  crop,
		Inputs:    inputs,
		Result:    *harvest.NewPlanner().Calculate(inputs, at),
		CreatedAt: at,
	}
}

func TestHarvestRepository_RoundTrip(t *testing.T) {
	pool := requirePool(t)
	repo := NewHarvestRepository(pool)
	ctx := context.Background()

	base := time.Date(2026, 2, 1, 10, 0, 0, 0, time.UTC)
	for i := 0; i < 3; i++ {
		require.NoError(t, repo.SaveCalculation(ctx, newCalculation("farmer-1", "wheat", base.Add(time.Duration(i)*time.Hour))))
	}
	require.NoError(t, repo.SaveCalculation(ctx, newCalculation("", "wheat", base.Add(5*time.Hour))))
	require.NoError(t, repo.SaveCalculation(ctx, newCalculation("farmer-2", "rice", base)))

	history, err := repo.GetUserHistory(ctx, "farmer-1", 2)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.True(t, history[0].CreatedAt.Equal(base.Add(2*time.Hour)), "newest first")
	assert.Equal(t, "farmer-1", history[0].UserID)
	assert.Len(t, history[0].Result.Scenarios, harvest.HorizonDays+1)
	assert.Equal(t, 70.0, history[0].Inputs.CurrentMaturity)

	recent, err := repo.GetRecentByCrop(ctx, "wheat", 10)
	require.NoError(t, err)
	require.Len(t, recent, 4)
	assert.Empty(t, recent[0].UserID, "anonymous run is the newest")

	none, err := repo.GetUserHistory(ctx, "nobody", 10)
	require.NoError(t, err)
	assert.NotNil(t, none)
	assert.Empty(t, none)
}
