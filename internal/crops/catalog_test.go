package crops

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/krishiraksha/KrishiRaksha_Go/internal/domain"
	"github.com/krishiraksha/KrishiRaksha_Go/internal/validation"
)

func TestNormalize(t *testing.T) {
	assert.Equal(t, "wheat", Normalize("  Wheat "))
	assert.Equal(t, "sugarcane", Normalize("SUGARCANE"))
	assert.Equal(t, "", Normalize("   "))
}

func TestNewCatalog_Lookup(t *testing.T) {
	c := NewCatalog([]domain.Crop{
		{Name: "Wheat", DisplayName: "Wheat", Season: "rabi", CycleDays: 120},
		{Name: "rice", DisplayName: "Rice", Season: "kharif", CycleDays: 135},
	})

	assert.True(t, c.Has("WHEAT"))
	assert.False(t, c.Has("barley"))

	crop, err := c.Get(" rice ")
	require.NoError(t, err)
	assert.Equal(t, 135, crop.CycleDays)

	_, err = c.Get("barley")
	assert.ErrorIs(t, err, domain.ErrCropNotFound)

	assert.Equal(t, "Rice", c.DisplayName("rice"))
	assert.Equal(t, "Pearl Millet", c.DisplayName("pearl millet"))
}

func TestNewCatalog_DuplicateReplaces(t *testing.T) {
	c := NewCatalog([]domain.Crop{
		{Name: "onion", DisplayName: "Onion", CycleDays: 100},
		{Name: "maize", DisplayName: "Maize", CycleDays: 100},
		{Name: "Onion", DisplayName: "Red Onion", CycleDays: 130},
	})

	list := c.List()
	require.Len(t, list, 2)
	assert.Equal(t, "onion", list[0].Name)
	assert.Equal(t, "Red Onion", list[0].DisplayName)
	assert.Equal(t, 130, list[0].CycleDays)
}

func TestList_ReturnsCopy(t *testing.T) {
	c := NewCatalog([]domain.Crop{{Name: "cotton", DisplayName: "Cotton"}})
	list := c.List()
	list[0].DisplayName = "changed"
	assert.Equal(t, "Cotton", c.List()[0].DisplayName)
}

func TestLoad_RepositoryCatalog(t *testing.T) {
	root := filepath.Join("..", "..")
	c, err := Load(
		filepath.Join(root, "configs", "crops.json"),
		filepath.Join(root, "configs", "schemas", "crops.schema.json"),
		validation.NewSchemaValidator(),
	)
	require.NoError(t, err)

	assert.Len(t, c.List(), 12)
	assert.True(t, c.Has("groundnut"))
	assert.Equal(t, "Chickpea", c.DisplayName("chickpea"))
}

func TestLoad_RejectsInvalidCatalog(t *testing.T) {
	dir := t.TempDir()
	data := filepath.Join(dir, "crops.json")
	require.NoError(t, os.WriteFile(data, []byte(`{"crops": [{"name": "wheat", "displayName": "Wheat", "season": "winter", "cycleDays": 120}]}`), 0o644))

	_, err := Load(data, filepath.Join("..", "..", "configs", "schemas", "crops.schema.json"), validation.NewSchemaValidator())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid crop catalog")
}
