package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/asset-inventory/internal/models"
)

func TestInMemoryCatalogRepository(t *testing.T) {
	r := NewInMemoryCatalogRepository()

	require.NoError(t, r.AddBrand("Dell"))
	require.NoError(t, r.AddBrand("Dell"))
	require.NoError(t, r.AddModel("HP", "EliteBook 840"))
	require.NoError(t, r.AddModel("Dell", "Latitude 5420"))
	require.NoError(t, r.AddLocation(models.LocationSedes, "Matriz"))
	require.NoError(t, r.AddLocation(models.LocationExterno, "Campo"))

	c, err := r.Get()
	require.NoError(t, err)
	assert.Equal(t, []string{"Dell", "HP"}, c.Brands)
	assert.Equal(t, []string{"EliteBook 840"}, c.ModelsByBrand["HP"])
	assert.Equal(t, []string{"Matriz"}, c.Locations.Sedes)
	assert.Equal(t, []string{"Campo"}, c.Locations.Externo)

	assert.ErrorIs(t, r.AddLocation("luna", "Base"), ErrInvalidLocationKind)
	assert.ErrorIs(t, r.AddBrand("  "), ErrEmptyCatalogValue)
	assert.ErrorIs(t, r.RemoveModel("HP", "Pavilion"), ErrCatalogEntryNotFound)

	require.NoError(t, r.RemoveBrand("HP"))
	require.NoError(t, r.RemoveLocation(models.LocationExterno, "Campo"))

	c, err = r.Get()
	require.NoError(t, err)
	assert.Equal(t, []string{"Dell"}, c.Brands)
	assert.NotContains(t, c.ModelsByBrand, "HP")
	assert.Empty(t, c.Locations.Externo)
}

func TestInMemoryCatalogRepository_GetReturnsCopy(t *testing.T) {
	r := NewInMemoryCatalogRepository()
	require.NoError(t, r.AddModel("Dell", "OptiPlex"))

	c, _ := r.Get()
	c.ModelsByBrand["Dell"][0] = "changed"
	c.Brands[0] = "changed"

	again, _ := r.Get()
	assert.Equal(t, "OptiPlex", again.ModelsByBrand["Dell"][0])
	assert.Equal(t, "Dell", again.Brands[0])
}

func TestInMemoryCatalogRepository_SharedBehaviour(t *testing.T) {
	testCatalogRepository(t, NewInMemoryCatalogRepository())
}
