package metrics

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/rogerio-castellano/asset-inventory/internal/models"
)

func TestSummarize(t *testing.T) {
	records := []models.Asset{
		{Status: models.StatusActive, Price: 1000, Warranty: "12", WarrantyEndDate: ref.Add(10 * day).Format(time.RFC3339)},
		{Status: models.StatusActive, Price: 500, NextMtto: ref.Add(-day).Format(time.RFC3339)},
		{Status: models.StatusMaintenance, Price: 300, Warranty: "0"},
		{Status: models.StatusRetired, Warranty: "abc", WarrantyEndDate: ref.Add(25 * day).Format(time.RFC3339)},
		{Status: "Extraviado"},
	}

	s := Summarize(records, ref)
	assert.Equal(t, 5, s.Total)
	assert.Equal(t, 2, s.Active)
	assert.Equal(t, 1, s.InMaintenance)
	assert.Equal(t, 1, s.Retired)
	assert.Equal(t, 1, s.UnderWarranty)
	assert.Equal(t, 1800.0, s.TotalValue)
	assert.Equal(t, 360.0, s.AverageValue)
	assert.Equal(t, 1, s.MaintenanceOverdue)
	assert.Equal(t, 2, s.WarrantyExpiring30)
	assert.Equal(t, 4, sumCounts(s.ByStatus))
}

func TestSummarize_Empty(t *testing.T) {
	s := Summarize(nil, ref)
	assert.Equal(t, 0, s.Total)
	assert.Equal(t, 0.0, s.AverageValue)
	assert.NotNil(t, s.ByStatus)
}

func TestNetworkSummary(t *testing.T) {
	catalog := models.NewCatalog()
	catalog.Locations.Sedes = []string{"Matriz", "Sucursal Norte"}
	catalog.Locations.Externo = []string{"Campo"}

	records := []models.Asset{
		{Location: "Matriz", IPAddress: "10.0.0.5", IPType: models.IPTypeStatic},
		{Location: "Sucursal Norte", IPAddress: "10.0.1.8"},
		{Location: "Campo"},
		{Location: "Oficina Temporal", IPType: models.IPTypeDHCP},
		{},
	}

	n := NetworkSummary(records, catalog)
	assert.Equal(t, 2, n.Sedes)
	assert.Equal(t, 1, n.Externo)
	assert.Equal(t, 2, n.Unlisted)
	assert.Equal(t, map[string]int{models.IPTypeDHCP: 4, models.IPTypeStatic: 1}, n.ByIPType)
	assert.Equal(t, 2, n.WithIP)
}
