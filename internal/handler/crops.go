package handler

import (
	"net/http"

	"github.com/krishiraksha/KrishiRaksha_Go/internal/domain"
)

// CropLister provides the crop catalog
type CropLister interface {
	List() []domain.Crop
}

// HandleListCrops returns the crop catalog
// @Summary List crops
// @Description Crops offered by the planner, with season and typical cycle length
// @Tags crops
// @Produce json
// @Success 200 {object} DataResponse
// @Router /api/v1/crops [get]
func HandleListCrops(catalog CropLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		respondJSON(w, http.StatusOK, listResponse(catalog.List()))
	}
}
