package handler

import (
	"net/http"
	"time"

	"github.com/krishiraksha/KrishiRaksha_Go/internal/domain"
	"github.com/krishiraksha/KrishiRaksha_Go/internal/market"
)

// RecordPriceRequest is one market price observation.
// Unit, currency and source fall back to quintal, INR and "Manual Entry".
type RecordPriceRequest struct {
	Crop      string     `json:"crop" validate:"required,max=50"`
	Market    string     `json:"market" validate:"required,max=100"`
	City      string     `json:"city" validate:"max=100"`
	State     string     `json:"state" validate:"max=100"`
	Price     *float64   `json:"price" validate:"required,gte=0"`
	Unit      string     `json:"unit" validate:"omitempty,oneof=quintal kg ton"`
	Currency  string     `json:"currency" validate:"omitempty,oneof=INR USD"`
	Source    string     `json:"source" validate:"max=100"`
	Timestamp *time.Time `json:"timestamp"`
}

func (r RecordPriceRequest) toPrice() *domain.MarketPrice {
	p := &domain.MarketPrice{
		Crop:     r.Crop,
		Market:   r.Market,
		City:     r.City,
		State:    r.State,
		Price:    *r.Price,
		Unit:     r.Unit,
		Currency: r.Currency,
		Source:   r.Source,
	}
	if r.Timestamp != nil {
		p.RecordedAt = *r.Timestamp
	}
	return p
}

// MarketHandler handles market price requests
type MarketHandler struct {
	marketSvc market.Service
}

// NewMarketHandler creates a new market handler
func NewMarketHandler(marketSvc market.Service) *MarketHandler {
	return &MarketHandler{marketSvc: marketSvc}
}

// Record stores a price observation
// @Summary Record market price
// @Tags market
// @Accept json
// @Produce json
// @Param request body RecordPriceRequest true "Price observation"
// @Success 201 {object} DataResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/market-prices [post]
func (h *MarketHandler) Record(w http.ResponseWriter, r *http.Request) {
	var req RecordPriceRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Record price"); err != nil {
		return
	}

	price, err := h.marketSvc.RecordPrice(r.Context(), req.toPrice())
	if err != nil {
		respondServiceError(w, r, "Record price", err)
		return
	}
	respondJSON(w, http.StatusCreated, DataResponse{
		Success: true,
		Message: MsgPriceRecordedSuccess,
		Data:    price,
	})
}

// Latest returns the newest prices for a crop
// @Summary Latest market prices
// @Tags market
// @Produce json
// @Param crop path string true "Crop"
// @Param limit query int false "Maximum results (default 10, max 100)"
// @Success 200 {object} DataResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/market-prices/{crop} [get]
func (h *MarketHandler) Latest(w http.ResponseWriter, r *http.Request) {
	crop, ok := GetPathParam(r, w, "crop")
	if !ok {
		return
	}
	limit, ok := GetIntQueryParam(r, w, "limit")
	if !ok {
		return
	}

	prices, err := h.marketSvc.LatestPrices(r.Context(), crop, limit)
	if err != nil {
		respondServiceError(w, r, "Latest prices", err)
		return
	}
	respondJSON(w, http.StatusOK, listResponse(prices))
}

// History returns the daily price trend for a crop
// @Summary Market price trend
// @Tags market
// @Produce json
// @Param crop path string true "Crop"
// @Param days query int false "Window in days (default 30, max 365)"
// @Success 200 {object} DataResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/market-prices/{crop}/history [get]
func (h *MarketHandler) History(w http.ResponseWriter, r *http.Request) {
	crop, ok := GetPathParam(r, w, "crop")
	if !ok {
		return
	}
	days, ok := GetIntQueryParam(r, w, "days")
	if !ok {
		return
	}

	trend, err := h.marketSvc.PriceTrend(r.Context(), crop, days)
	if err != nil {
		respondServiceError(w, r, "Price trend", err)
		return
	}
	respondJSON(w, http.StatusOK, listResponse(trend))
}

// Markets returns the average and latest price per market for a crop
// @Summary Prices by market
// @Tags market
// @Produce json
// @Param crop path string true "Crop"
// @Success 200 {object} DataResponse
// @Failure 500 {object} ErrorResponse
// @Router /api/v1/market-prices/{crop}/markets [get]
func (h *MarketHandler) Markets(w http.ResponseWriter, r *http.Request) {
	crop, ok := GetPathParam(r, w, "crop")
	if !ok {
		return
	}

	averages, err := h.marketSvc.AverageByMarket(r.Context(), crop)
	if err != nil {
		respondServiceError(w, r, "Average by market", err)
		return
	}
	respondJSON(w, http.StatusOK, listResponse(averages))
}
