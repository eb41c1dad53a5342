package metrics

import (
	"time"

	"github.com/rogerio-castellano/asset-inventory/internal/models"
)

// Summary is the KPI card set every dashboard shows.
type Summary struct {
	Total              int            `json:"total"`
	ByStatus           map[string]int `json:"by_status"`
	Active             int            `json:"active"`
	InMaintenance      int            `json:"in_maintenance"`
	Retired            int            `json:"retired"`
	UnderWarranty      int            `json:"under_warranty"`
	TotalValue         float64        `json:"total_value"`
	AverageValue       float64        `json:"average_value"`
	MaintenanceOverdue int            `json:"maintenance_overdue"`
	WarrantyExpiring30 int            `json:"warranty_expiring_30"`
}

func Summarize(records []models.Asset, ref time.Time) Summary {
	byStatus := CountByStatus(records)

	underWarranty := 0
	for _, r := range records {
		if r.UnderWarranty() {
			underWarranty++
		}
	}

	w := WarrantyBuckets(records, ref).Counts()
	return Summary{
		Total:              len(records),
		ByStatus:           byStatus,
		Active:             byStatus[models.StatusActive],
		InMaintenance:      byStatus[models.StatusMaintenance],
		Retired:            byStatus[models.StatusRetired],
		UnderWarranty:      underWarranty,
		TotalValue:         TotalValue(records),
		AverageValue:       AverageValue(records),
		MaintenanceOverdue: len(MaintenanceBuckets(records, ref).Overdue),
		WarrantyExpiring30: w.Within15 + w.Within30,
	}
}

// Network summarizes where equipment sits and how it gets its address.
type Network struct {
	Sedes    int            `json:"sedes"`
	Externo  int            `json:"externo"`
	Unlisted int            `json:"unlisted"`
	ByIPType map[string]int `json:"by_ip_type"`
	WithIP   int            `json:"with_ip"`
}

// NetworkSummary groups records by the catalog's location kind and counts IP
// assignment types, an empty ipType counting as DHCP.
func NetworkSummary(records []models.Asset, catalog models.Catalog) Network {
	n := Network{ByIPType: map[string]int{}}
	for _, r := range records {
		switch catalog.LocationKind(r.Location) {
		case models.LocationSedes:
			n.Sedes++
		case models.LocationExterno:
			n.Externo++
		default:
			n.Unlisted++
		}
		n.ByIPType[r.EffectiveIPType()]++
		if r.IPAddress != "" {
			n.WithIP++
		}
	}
	return n
}
