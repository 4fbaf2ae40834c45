package handler

import (
	"net/http"

	"github.com/krishiraksha/KrishiRaksha_Go/internal/domain"
	"github.com/krishiraksha/KrishiRaksha_Go/internal/harvest"
	"github.com/krishiraksha/KrishiRaksha_Go/internal/logger"
)

// CalculateHarvestRequest is the body of a harvest planning request.
// Required numbers are pointers so that an explicit 0 is distinguishable from a missing field.
type CalculateHarvestRequest struct {
	CropType           string   `json:"cropType" validate:"required,max=50"`
	CurrentMaturity    *float64 `json:"currentMaturity" validate:"required,min=0,max=100"`
	PestInfestation    *float64 `json:"pestInfestation" validate:"required,min=0,max=100"`
	CurrentMarketPrice *float64 `json:"currentMarketPrice" validate:"required,gt=0,lte=10000000"`
	ExpectedYield      *float64 `json:"expectedYield" validate:"required,gt=0,lte=10000000"`
	GrowthRate         *float64 `json:"growthRate,omitempty" validate:"omitempty,min=0,max=100"`
	PestDamageRate     *float64 `json:"pestDamageRate,omitempty" validate:"omitempty,min=0,max=100"`
}

func (r CalculateHarvestRequest) toInputs() domain.HarvestInputs {
	return domain.HarvestInputs{
		CropType:           r.CropType,
		CurrentMaturity:    *r.CurrentMaturity,
		PestInfestation:    *r.PestInfestation,
		CurrentMarketPrice: *r.CurrentMarketPrice,
		ExpectedYield:      *r.ExpectedYield,
		GrowthRate:         r.GrowthRate,
		PestDamageRate:     r.PestDamageRate,
	}
}

// CalculateHarvestResponse is the harvest plan with a success flag
type CalculateHarvestResponse struct {
	Success bool `json:"success"`
	*domain.HarvestResult
}

// HarvestHandler handles harvest planning requests
type HarvestHandler struct {
	harvestSvc harvest.Service
}

// NewHarvestHandler creates a new harvest handler
func NewHarvestHandler(harvestSvc harvest.Service) *HarvestHandler {
	return &HarvestHandler{harvestSvc: harvestSvc}
}

// Calculate handles the harvest planning endpoint
// @Summary Calculate optimal harvest timing
// @Description Simulates harvesting on each of the next 30 days and recommends the most profitable day
// @Tags harvest
// @Accept json
// @Produce json
// @Param user_id query string false "User ID to attach the calculation to"
// @Param request body CalculateHarvestRequest true "Current crop state"
// @Success 200 {object} CalculateHarvestResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/harvest/calculate [post]
func (h *HarvestHandler) Calculate(w http.ResponseWriter, r *http.Request) {
	var req CalculateHarvestRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Calculate harvest"); err != nil {
		return
	}

	userID := GetOptionalQueryParam(r, "user_id", "")
	result, err := h.harvestSvc.Calculate(r.Context(), userID, req.toInputs())
	if err != nil {
		respondServiceError(w, r, "Calculate harvest", err)
		return
	}

	logger.FromContext(r.Context()).Info("Harvest plan calculated",
		"crop", req.CropType,
		"optimal_days", result.OptimalDays,
		"confidence", result.Confidence)

	respondJSON(w, http.StatusOK, CalculateHarvestResponse{Success: true, HarvestResult: result})
}

// History returns a user's stored calculations
// @Summary Harvest calculation history
// @Description Returns the user's calculations, newest first
// @Tags harvest
// @Produce json
// @Param user_id query string true "User ID"
// @Param limit query int false "Maximum results (default 10, max 50)"
// @Success 200 {object} DataResponse
// @Failure 400 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/harvest/history [get]
func (h *HarvestHandler) History(w http.ResponseWriter, r *http.Request) {
	userID, ok := GetQueryParam(r, w, "user_id")
	if !ok {
		return
	}
	limit, ok := GetIntQueryParam(r, w, "limit")
	if !ok {
		return
	}

	history, err := h.harvestSvc.GetUserHistory(r.Context(), userID, limit)
	if err != nil {
		respondServiceError(w, r, "Get harvest history", err)
		return
	}
	respondJSON(w, http.StatusOK, listResponse(history))
}

// Recent returns the latest calculations for a crop
// @Summary Recent calculations for a crop
// @Tags harvest
// @Produce json
// @Param crop path string true "Crop type"
// @Param limit query int false "Maximum results (default 5, max 50)"
// @Success 200 {object} DataResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/harvest/recent/{crop} [get]
func (h *HarvestHandler) Recent(w http.ResponseWriter, r *http.Request) {
	crop, ok := GetPathParam(r, w, "crop")
	if !ok {
		return
	}
	limit, ok := GetIntQueryParam(r, w, "limit")
	if !ok {
		return
	}

	recent, err := h.harvestSvc.GetRecentByCrop(r.Context(), crop, limit)
	if err != nil {
		respondServiceError(w, r, "Get recent calculations", err)
		return
	}
	respondJSON(w, http.StatusOK, listResponse(recent))
}
