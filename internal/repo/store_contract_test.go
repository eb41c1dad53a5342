package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/asset-inventory/internal/models"
)

// testAssetRepository runs the behaviour every AssetRepository backend shares.
// r must start empty.
func testAssetRepository(t *testing.T, r AssetRepository) {
	t.Helper()

	full := models.Asset{
		Resguardo: "R-001", FullName: "Ana Ruiz", Department: "TI", Position: "Analista",
		Email: "ana@example.com", Extension: "101", Location: "Matriz", DeviceType: "Laptop",
		Brand: "Dell", Model: "Latitude 5420", PCName: "TI-ANA", SerialNumber: "SN-1",
		IPAddress: "10.0.0.7", IPType: models.IPTypeStatic, Status: models.StatusActive,
		Price: 1200.5, PurchaseDate: "2024-01-10", LastMtto: "2025-01-10", NextMtto: "2025-07-10",
		WarrantyEndDate: "2026-01-10", Warranty: "24",
	}
	a, err := r.Create(full)
	require.NoError(t, err)
	require.NotEmpty(t, a.ID)
	full.ID = a.ID

	got, err := r.GetByID(a.ID)
	require.NoError(t, err)
	assert.Equal(t, full, got)

	b, err := r.Create(models.Asset{Brand: "HP"})
	require.NoError(t, err)
	c, err := r.Create(models.Asset{Brand: "Lenovo", SerialNumber: "SN-3"})
	require.NoError(t, err)

	all, err := r.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{a.ID, b.ID, c.ID}, []string{all[0].ID, all[1].ID, all[2].ID})

	bySerial, err := r.GetBySerial("SN-3")
	require.NoError(t, err)
	assert.Equal(t, c.ID, bySerial.ID)
	_, err = r.GetBySerial("")
	assert.ErrorIs(t, err, ErrAssetNotFound)

	_, err = r.Create(models.Asset{SerialNumber: "SN-1"})
	assert.ErrorIs(t, err, ErrDuplicatedValueUnique)
	_, err = r.Create(models.Asset{})
	require.NoError(t, err, "empty serial numbers never collide")

	c.SerialNumber = "SN-1"
	_, err = r.Update(c)
	assert.ErrorIs(t, err, ErrDuplicatedValueUnique)

	b.Status = models.StatusMaintenance
	_, err = r.Update(b)
	require.NoError(t, err)
	all, err = r.GetAll()
	require.NoError(t, err)
	assert.Equal(t, b.ID, all[1].ID, "update keeps the position")
	assert.Equal(t, models.StatusMaintenance, all[1].Status)

	_, err = r.Update(models.Asset{ID: "missing"})
	assert.ErrorIs(t, err, ErrAssetNotFound)

	require.NoError(t, r.Delete(a.ID))
	_, err = r.GetByID(a.ID)
	assert.ErrorIs(t, err, ErrAssetNotFound)
	assert.ErrorIs(t, r.Delete(a.ID), ErrAssetNotFound)

	all, err = r.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, b.ID, all[0].ID)
}

// testCatalogRepository runs the behaviour every CatalogRepository backend shares.
// r must start empty.
func testCatalogRepository(t *testing.T, r CatalogRepository) {
	t.Helper()

	require.NoError(t, r.AddBrand("Dell"))
	require.NoError(t, r.AddBrand("Dell"))
	require.NoError(t, r.AddModel("HP", "EliteBook 840"))
	require.NoError(t, r.AddModel("Dell", "Latitude 5420"))
	require.NoError(t, r.AddLocation(models.LocationSedes, "Matriz"))
	require.NoError(t, r.AddLocation(models.LocationExterno, "Campo"))

	c, err := r.Get()
	require.NoError(t, err)
	assert.Equal(t, []string{"Dell", "HP"}, c.Brands)
	assert.Equal(t, []string{"Latitude 5420"}, c.ModelsByBrand["Dell"])
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
