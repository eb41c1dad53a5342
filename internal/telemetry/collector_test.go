package telemetry

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/rogerio-castellano/asset-inventory/internal/models"
	"github.com/rogerio-castellano/asset-inventory/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingRepo struct {
	repo.AssetRepository
}

func (failingRepo) GetAll() ([]models.Asset, error) {
	return nil, errors.New("storage down")
}

func newTestCollector(t *testing.T) *Collector {
	t.Helper()
	r := repo.NewInMemoryAssetRepository()
	for _, a := range []models.Asset{
		{Status: models.StatusActive, Price: 1000, NextMtto: "2025-01-01", WarrantyEndDate: "2025-06-10"},
		{Status: models.StatusActive, Price: 500, NextMtto: "2025-06-05"},
		{Status: models.StatusRetired, Price: 250},
		{Status: "Prestado"},
	} {
		_, err := r.Create(a)
		require.NoError(t, err)
	}
	c := NewCollector(r)
	c.now = func() time.Time { return time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC) }
	return c
}

func TestCollector_Gauges(t *testing.T) {
	c := newTestCollector(t)

	expected := `
# HELP inventory_assets_total Number of assets in the inventory.
# TYPE inventory_assets_total gauge
inventory_assets_total 4
# HELP inventory_value_total Summed purchase price of every asset.
# TYPE inventory_value_total gauge
inventory_value_total 1750
`
	err := testutil.CollectAndCompare(c, strings.NewReader(expected), "inventory_assets_total", "inventory_value_total")
	assert.NoError(t, err)
}

func TestCollector_StatusAndBuckets(t *testing.T) {
	c := newTestCollector(t)

	expected := `
# HELP inventory_assets_by_status Number of assets per recognized status.
# TYPE inventory_assets_by_status gauge
inventory_assets_by_status{status="Activo"} 2
inventory_assets_by_status{status="Baja"} 1
inventory_assets_by_status{status="Cancelado"} 0
inventory_assets_by_status{status="Mantenimiento"} 0
inventory_assets_by_status{status="Para piezas"} 0
# HELP inventory_maintenance_bucket Number of assets per maintenance due bucket.
# TYPE inventory_maintenance_bucket gauge
inventory_maintenance_bucket{bucket="due30"} 0
inventory_maintenance_bucket{bucket="due7"} 1
inventory_maintenance_bucket{bucket="due90"} 0
inventory_maintenance_bucket{bucket="later"} 0
inventory_maintenance_bucket{bucket="overdue"} 1
inventory_maintenance_bucket{bucket="unscheduled"} 2
`
	err := testutil.CollectAndCompare(c, strings.NewReader(expected), "inventory_assets_by_status", "inventory_maintenance_bucket")
	assert.NoError(t, err)
}

func TestCollector_RegistersCleanly(t *testing.T) {
	reg := prometheus.NewPedanticRegistry()
	require.NoError(t, reg.Register(newTestCollector(t)))

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Len(t, families, 5)
}

func TestCollector_RepositoryErrorFailsScrape(t *testing.T) {
	reg := prometheus.NewRegistry()
	require.NoError(t, reg.Register(NewCollector(failingRepo{})))

	_, err := reg.Gather()
	assert.Error(t, err)
}
