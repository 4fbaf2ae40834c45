package harvest

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/krishiraksha/KrishiRaksha_Go/internal/crops"
	"github.com/krishiraksha/KrishiRaksha_Go/internal/domain"
	"github.com/krishiraksha/KrishiRaksha_Go/mocks"
)

func fixedClock() time.Time { return testNow }

func testCatalog() *crops.Catalog {
	return crops.NewCatalog([]domain.Crop{{Name: "wheat", DisplayName: "Wheat"}})
}

func TestService_Calculate_PersistsRun(t *testing.T) {
	repo := mocks.NewMockHarvestRepository(t)
	svc := NewService(repo, testCatalog(), fixedClock)

	var saved *domain.HarvestCalculation
	repo.On("SaveCalculation", mock.Anything, mock.AnythingOfType("*domain.HarvestCalculation")).
		Run(func(args mock.Arguments) { saved = args.Get(1).(*domain.HarvestCalculation) }).
		Return(nil)

	inputs := baselineInputs()
	inputs.CropType = "  WHEAT "
	result, err := svc.Calculate(context.Background(), "farmer-1", inputs)
	require.NoError(t, err)

	require.NotNil(t, saved)
	assert.NotEmpty(t, saved.ID)
	assert.Equal(t, "farmer-1", saved.UserID)
	assert.Equal(t, "wheat", saved.CropType)
	assert.Equal(t, "wheat", saved.Inputs.CropType)
	assert.Equal(t, testNow, saved.CreatedAt)
	assert.Equal(t, *result, saved.Result)
	assert.Len(t, result.Scenarios, HorizonDays+1)
}

func TestService_Calculate_SaveFailureStillReturnsResult(t *testing.T) {
	repo := mocks.NewMockHarvestRepository(t)
	svc := NewService(repo, testCatalog(), fixedClock)

	repo.On("SaveCalculation", mock.Anything, mock.Anything).Return(errors.New("connection refused"))

	result, err := svc.Calculate(context.Background(), "", baselineInputs())
	require.NoError(t, err)
	assert.Equal(t, 0, result.OptimalDays)
}

func TestService_Calculate_NoRepository(t *testing.T) {
	svc := NewService(nil, nil, fixedClock)

	result, err := svc.Calculate(context.Background(), "", baselineInputs())
	require.NoError(t, err)
	assert.Equal(t, testNow, result.OptimalDate)

	history, err := svc.GetUserHistory(context.Background(), "farmer-1", 5)
	require.NoError(t, err)
	assert.Empty(t, history)
}

func TestService_GetUserHistory_Limits(t *testing.T) {
	tests := []struct {
		name  string
		limit int
		want  int
	}{
		{"default", 0, DefaultHistoryLimit},
		{"negative", -3, DefaultHistoryLimit},
		{"explicit", 25, 25},
		{"capped", 500, MaxHistoryLimit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := mocks.NewMockHarvestRepository(t)
			svc := NewService(repo, nil, fixedClock)

			repo.On("GetUserHistory", mock.Anything, "farmer-1", tt.want).
				Return([]domain.HarvestCalculation{{ID: "a"}}, nil)

			history, err := svc.GetUserHistory(context.Background(), "farmer-1", tt.limit)
			require.NoError(t, err)
			assert.Len(t, history, 1)
		})
	}
}

func TestService_GetUserHistory_RequiresUser(t *testing.T) {
	svc := NewService(mocks.NewMockHarvestRepository(t), nil, fixedClock)

	_, err := svc.GetUserHistory(context.Background(), "", 10)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestService_GetRecentByCrop(t *testing.T) {
	repo := mocks.NewMockHarvestRepository(t)
	svc := NewService(repo, nil, fixedClock)

	repo.On("GetRecentByCrop", mock.Anything, "rice", DefaultRecentLimit).
		Return([]domain.HarvestCalculation{{ID: "a"}, {ID: "b"}}, nil).Once()
	repo.On("GetRecentByCrop", mock.Anything, "onion", 3).
		Return(nil, errors.New("boom")).Once()

	recent, err := svc.GetRecentByCrop(context.Background(), "Rice", 0)
	require.NoError(t, err)
	assert.Len(t, recent, 2)

	_, err = svc.GetRecentByCrop(context.Background(), "onion", 3)
	assert.Error(t, err)

	_, err = svc.GetRecentByCrop(context.Background(), "   ", 3)
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
