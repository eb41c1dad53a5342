package metrics

import (
	"strings"
	"time"

	"github.com/rogerio-castellano/asset-inventory/internal/models"
)

const day = 24 * time.Hour

var dateLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	"2006-01-02",
	"02/01/2006",
}

// ParseDate reads the date formats the inventory forms and imports produce.
// Values without a zone are taken as UTC. ok is false for empty or unreadable input.
func ParseDate(s string) (t time.Time, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range dateLayouts {
		if parsed, err := time.Parse(layout, s); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}

// MaintenanceReport partitions records by how soon their next maintenance is due.
type MaintenanceReport struct {
	Overdue     []models.Asset `json:"overdue"`
	DueWeek     []models.Asset `json:"due7"`
	DueMonth    []models.Asset `json:"due30"`
	DueQuarter  []models.Asset `json:"due90"`
	Later       []models.Asset `json:"later"`
	Unscheduled []models.Asset `json:"unscheduled"`
}

type MaintenanceCounts struct {
	Overdue     int `json:"overdue"`
	DueWeek     int `json:"due7"`
	DueMonth    int `json:"due30"`
	DueQuarter  int `json:"due90"`
	Later       int `json:"later"`
	Unscheduled int `json:"unscheduled"`
}

func (m MaintenanceReport) Counts() MaintenanceCounts {
	return MaintenanceCounts{
		Overdue:     len(m.Overdue),
		DueWeek:     len(m.DueWeek),
		DueMonth:    len(m.DueMonth),
		DueQuarter:  len(m.DueQuarter),
		Later:       len(m.Later),
		Unscheduled: len(m.Unscheduled),
	}
}

// MaintenanceBuckets places each record in exactly one bucket by comparing
// nextMtto with ref. A date equal to ref is not overdue; upper bounds are
// inclusive.
func MaintenanceBuckets(records []models.Asset, ref time.Time) MaintenanceReport {
	rep := MaintenanceReport{
		Overdue:     []models.Asset{},
		DueWeek:     []models.Asset{},
		DueMonth:    []models.Asset{},
		DueQuarter:  []models.Asset{},
		Later:       []models.Asset{},
		Unscheduled: []models.Asset{},
	}

	week, month, quarter := ref.Add(7*day), ref.Add(30*day), ref.Add(90*day)
	for _, r := range records {
		next, ok := ParseDate(r.NextMtto)
		switch {
		case !ok:
			rep.Unscheduled = append(rep.Unscheduled, r)
		case next.Before(ref):
			rep.Overdue = append(rep.Overdue, r)
		case !next.After(week):
			rep.DueWeek = append(rep.DueWeek, r)
		case !next.After(month):
			rep.DueMonth = append(rep.DueMonth, r)
		case !next.After(quarter):
			rep.DueQuarter = append(rep.DueQuarter, r)
		default:
			rep.Later = append(rep.Later, r)
		}
	}
	return rep
}

// WarrantyReport partitions records by how soon their warranty ends.
type WarrantyReport struct {
	Expired  []models.Asset `json:"expired"`
	// Within15 covers 0 <= days <= 15, so a warranty ending exactly at ref
	// lands here rather than in Expired.
	Within15 []models.Asset `json:"within15"`
	Within30 []models.Asset `json:"within30"`
	Within60 []models.Asset `json:"within60"`
	Later    []models.Asset `json:"later"`
	None     []models.Asset `json:"none"`
}

type WarrantyCounts struct {
	Expired  int `json:"expired"`
	Within15 int `json:"within15"`
	Within30 int `json:"within30"`
	Within60 int `json:"within60"`
	Later    int `json:"later"`
	None     int `json:"none"`
}

func (w WarrantyReport) Counts() WarrantyCounts {
	return WarrantyCounts{
		Expired:  len(w.Expired),
		Within15: len(w.Within15),
		Within30: len(w.Within30),
		Within60: len(w.Within60),
		Later:    len(w.Later),
		None:     len(w.None),
	}
}

// daysUntil is the fractional number of days from ref to t, without calendar rounding.
func daysUntil(t, ref time.Time) float64 {
	return float64(t.Sub(ref)) / float64(day)
}

// WarrantyBuckets places each record in exactly one bucket by the distance in
// days from ref to warrantyEndDate. An end strictly before ref is expired;
// otherwise the smallest window that holds the distance wins. An end equal to
// ref is still covered, and lands in Within15.
func WarrantyBuckets(records []models.Asset, ref time.Time) WarrantyReport {
	rep := WarrantyReport{
		Expired:  []models.Asset{},
		Within15: []models.Asset{},
		Within30: []models.Asset{},
		Within60: []models.Asset{},
		Later:    []models.Asset{},
		None:     []models.Asset{},
	}

	for _, r := range records {
		end, ok := ParseDate(r.WarrantyEndDate)
		if !ok {
			rep.None = append(rep.None, r)
			continue
		}
		if end.Before(ref) {
			rep.Expired = append(rep.Expired, r)
			continue
		}
		switch diff := daysUntil(end, ref); {
		case diff <= 15:
			rep.Within15 = append(rep.Within15, r)
		case diff <= 30:
			rep.Within30 = append(rep.Within30, r)
		case diff <= 60:
			rep.Within60 = append(rep.Within60, r)
		default:
			rep.Later = append(rep.Later, r)
		}
	}
	return rep
}
