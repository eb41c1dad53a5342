package repo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rogerio-castellano/asset-inventory/internal/models"
)

func TestInMemoryAssetRepository_CRUDKeepsOrder(t *testing.T) {
	r := NewInMemoryAssetRepository()

	a, err := r.Create(models.Asset{ID: "ignored", Brand: "Dell", SerialNumber: "SN-1"})
	require.NoError(t, err)
	assert.NotEqual(t, "ignored", a.ID)
	assert.NotEmpty(t, a.ID)

	b, err := r.Create(models.Asset{Brand: "HP"})
	require.NoError(t, err)
	c, err := r.Create(models.Asset{Brand: "Lenovo"})
	require.NoError(t, err)

	all, err := r.GetAll()
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []string{a.ID, b.ID, c.ID}, []string{all[0].ID, all[1].ID, all[2].ID})

	b.Status = models.StatusMaintenance
	_, err = r.Update(b)
	require.NoError(t, err)

	all, _ = r.GetAll()
	assert.Equal(t, b.ID, all[1].ID)
	assert.Equal(t, models.StatusMaintenance, all[1].Status)

	require.NoError(t, r.Delete(a.ID))
	_, err = r.GetByID(a.ID)
	assert.ErrorIs(t, err, ErrAssetNotFound)
	assert.ErrorIs(t, r.Delete(a.ID), ErrAssetNotFound)

	_, err = r.Update(models.Asset{ID: "missing"})
	assert.ErrorIs(t, err, ErrAssetNotFound)
}

func TestInMemoryAssetRepository_SerialUnique(t *testing.T) {
	r := NewInMemoryAssetRepository()

	first, err := r.Create(models.Asset{SerialNumber: "ABC"})
	require.NoError(t, err)
	_, err = r.Create(models.Asset{SerialNumber: "ABC"})
	assert.ErrorIs(t, err, ErrDuplicatedValueUnique)

	_, err = r.Create(models.Asset{})
	require.NoError(t, err)
	_, err = r.Create(models.Asset{})
	require.NoError(t, err, "empty serial numbers never collide")

	other, err := r.Create(models.Asset{SerialNumber: "XYZ"})
	require.NoError(t, err)
	other.SerialNumber = "ABC"
	_, err = r.Update(other)
	assert.ErrorIs(t, err, ErrDuplicatedValueUnique)

	found, err := r.GetBySerial("ABC")
	require.NoError(t, err)
	assert.Equal(t, first.ID, found.ID)

	_, err = r.GetBySerial("")
	assert.ErrorIs(t, err, ErrAssetNotFound)
}

func TestInMemoryAssetRepository_GetAllReturnsCopy(t *testing.T) {
	r := NewInMemoryAssetRepository()
	_, _ = r.Create(models.Asset{Brand: "Dell"})

	all, _ := r.GetAll()
	all[0].Brand = "changed"

	again, _ := r.GetAll()
	assert.Equal(t, "Dell", again[0].Brand)
}

func TestInMemoryAssetRepository_SharedBehaviour(t *testing.T) {
	testAssetRepository(t, NewInMemoryAssetRepository())
}
