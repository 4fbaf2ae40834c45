package handler

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }

func validHarvestRequest() CalculateHarvestRequest {
	return CalculateHarvestRequest{
		CropType:           "wheat",
		CurrentMaturity:    floatPtr(70),
		PestInfestation:    floatPtr(15),
		CurrentMarketPrice: floatPtr(2500),
		ExpectedYield:      floatPtr(50),
	}
}

func TestValidator_HarvestRequest(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name      string
		mutate    func(*CalculateHarvestRequest)
		wantField string
		wantMsg   string
	}{
		{"valid", func(*CalculateHarvestRequest) {}, "", ""},
		{"zero maturity is allowed", func(r *CalculateHarvestRequest) { r.CurrentMaturity = floatPtr(0) }, "", ""},
		{"custom rates", func(r *CalculateHarvestRequest) {
			r.GrowthRate = floatPtr(3)
			r.PestDamageRate = floatPtr(0)
		}, "", ""},
		{"missing crop", func(r *CalculateHarvestRequest) { r.CropType = "" }, "cropType", "This field is required"},
		{"missing maturity", func(r *CalculateHarvestRequest) { r.CurrentMaturity = nil }, "currentMaturity", "This field is required"},
		{"maturity above 100", func(r *CalculateHarvestRequest) { r.CurrentMaturity = floatPtr(101) }, "currentMaturity", "Must be at most 100"},
		{"negative pest", func(r *CalculateHarvestRequest) { r.PestInfestation = floatPtr(-1) }, "pestInfestation", "Must be at least 0"},
		{"zero price", func(r *CalculateHarvestRequest) { r.CurrentMarketPrice = floatPtr(0) }, "currentMarketPrice", "Must be greater than 0"},
		{"zero yield", func(r *CalculateHarvestRequest) { r.ExpectedYield = floatPtr(0) }, "expectedYield", "Must be greater than 0"},
		{"growth rate too high", func(r *CalculateHarvestRequest) { r.GrowthRate = floatPtr(150) }, "growthRate", "Must be at most 100"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := validHarvestRequest()
			tt.mutate(&req)

			err := v.ValidateStruct(req)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			fields := FormatValidationError(err)
			assert.Equal(t, tt.wantMsg, fields[tt.wantField])
		})
	}
}

func TestValidator_EventType(t *testing.T) {
	v := GetValidator()

	type eventTypeOnly struct {
		EventType string `json:"eventType" validate:"event_type"`
	}

	for _, value := range []string{"", "planting", "Harvest", "other"} {
		assert.NoError(t, v.ValidateStruct(eventTypeOnly{EventType: value}), value)
	}

	err := v.ValidateStruct(eventTypeOnly{EventType: "weeding"})
	require.Error(t, err)
	assert.Equal(t, "Invalid event type", FormatValidationError(err)["eventType"])
}

func TestFormatValidationError_NonValidatorError(t *testing.T) {
	assert.Nil(t, FormatValidationError(nil))
	assert.Equal(t, map[string]string{"error": "Invalid request format"}, FormatValidationError(errors.New("boom")))
}
