package bootstrap

import (
	"fmt"
	"log/slog"

	"github.com/krishiraksha/KrishiRaksha_Go/internal/config"
	"github.com/krishiraksha/KrishiRaksha_Go/internal/crops"
	"github.com/krishiraksha/KrishiRaksha_Go/internal/validation"
)

// LoadCropCatalog reads the crop catalog after validating it against its schema
func LoadCropCatalog(cfg *config.Config) (*crops.Catalog, error) {
	catalog, err := crops.Load(cfg.CropCatalogPath, cfg.CropSchemaPath, validation.NewSchemaValidator())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedLoadCropCatalog, err)
	}
	slog.Info(LogMsgCropCatalogLoaded, "path", cfg.CropCatalogPath, "crops", len(catalog.List()))
	return catalog, nil
}
