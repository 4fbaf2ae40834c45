package crops

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/krishiraksha/KrishiRaksha_Go/internal/domain"
	"github.com/krishiraksha/KrishiRaksha_Go/internal/validation"
)

// Catalog is the read-only list of crops offered to farmers
type Catalog struct {
	crops  []domain.Crop
	byName map[string]domain.Crop
}

type catalogFile struct {
	Crops []domain.Crop `json:"crops"`
}

// Load reads the catalog at dataPath after validating it against schemaPath
func Load(dataPath, schemaPath string, v validation.SchemaValidator) (*Catalog, error) {
	if err := v.ValidateFile(dataPath, schemaPath); err != nil {
		return nil, fmt.Errorf("invalid crop catalog: %w", err)
	}

	raw, err := os.ReadFile(dataPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read crop catalog: %w", err)
	}

	var file catalogFile
	if err := json.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("failed to parse crop catalog: %w", err)
	}

	return NewCatalog(file.Crops), nil
}

// NewCatalog builds a catalog from crops; names are normalized and later duplicates win
func NewCatalog(crops []domain.Crop) *Catalog {
	c := &Catalog{byName: make(map[string]domain.Crop, len(crops))}
	for _, crop := range crops {
		crop.Name = Normalize(crop.Name)
		if _, dup := c.byName[crop.Name]; !dup {
			c.crops = append(c.crops, crop)
		} else {
			for i := range c.crops {
				if c.crops[i].Name == crop.Name {
					c.crops[i] = crop
				}
			}
		}
		c.byName[crop.Name] = crop
	}
	return c
}

// List returns the catalog in file order
func (c *Catalog) List() []domain.Crop {
	out := make([]domain.Crop, len(c.crops))
	copy(out, c.crops)
	return out
}

// Get looks up a crop by (unnormalized) name
func (c *Catalog) Get(name string) (domain.Crop, error) {
	crop, ok := c.byName[Normalize(name)]
	if !ok {
		return domain.Crop{}, fmt.Errorf("%w: %s", domain.ErrCropNotFound, name)
	}
	return crop, nil
}

// Has reports whether name is in the catalog
func (c *Catalog) Has(name string) bool {
	_, ok := c.byName[Normalize(name)]
	return ok
}

// DisplayName returns the catalog display name, or a title-cased name for unknown crops
func (c *Catalog) DisplayName(name string) string {
	if crop, ok := c.byName[Normalize(name)]; ok && crop.DisplayName != "" {
		return crop.DisplayName
	}
	return cases.Title(language.English).String(Normalize(name))
}

// Normalize trims and lower-cases a crop name so lookups and storage agree
func Normalize(name string) string {
	return cases.Lower(language.Und).String(strings.TrimSpace(name))
}
