package metrics

import (
	"cmp"
	"slices"
	"strconv"
	"strings"

	"github.com/rogerio-castellano/asset-inventory/internal/models"
)

// Filter selects records. Empty keys are ignored; the rest must all match.
type Filter struct {
	Location   string `json:"location,omitempty"`
	Department string `json:"department,omitempty"`
	Brand      string `json:"brand,omitempty"`
	Status     string `json:"status,omitempty"`
	// SearchText matches case-insensitively inside fullName, serialNumber or brand.
	SearchText string `json:"searchText,omitempty"`
}

func (f Filter) matches(a models.Asset) bool {
	if f.Location != "" && a.Location != f.Location {
		return false
	}
	if f.Department != "" && a.Department != f.Department {
		return false
	}
	if f.Brand != "" && a.Brand != f.Brand {
		return false
	}
	if f.Status != "" && a.Status != f.Status {
		return false
	}
	if f.SearchText != "" {
		q := strings.ToLower(f.SearchText)
		if !strings.Contains(strings.ToLower(a.FullName), q) &&
			!strings.Contains(strings.ToLower(a.SerialNumber), q) &&
			!strings.Contains(strings.ToLower(a.Brand), q) {
			return false
		}
	}
	return true
}

// FilterRecords keeps the records matching f, in their original order.
func FilterRecords(records []models.Asset, f Filter) []models.Asset {
	out := []models.Asset{}
	for _, r := range records {
		if f.matches(r) {
			out = append(out, r)
		}
	}
	return out
}

type Direction string

const (
	Asc  Direction = "asc"
	Desc Direction = "desc"
)

// ParseDirection maps "desc" (any case) to Desc and everything else to Asc.
func ParseDirection(s string) Direction {
	if strings.EqualFold(strings.TrimSpace(s), string(Desc)) {
		return Desc
	}
	return Asc
}

// SortRecords returns a stably sorted copy of records. Text compares without
// case, ipAddress compares octet by octet, price numerically and dates
// chronologically with unreadable dates first. An unknown field returns the
// records in their input order.
func SortRecords(records []models.Asset, fieldName string, dir Direction) []models.Asset {
	out := make([]models.Asset, len(records))
	copy(out, records)

	f, ok := fields[fieldName]
	if !ok {
		return out
	}

	compare := comparator(f)
	slices.SortStableFunc(out, func(a, b models.Asset) int {
		c := compare(a, b)
		if dir == Desc {
			return -c
		}
		return c
	})
	return out
}

func comparator(f field) func(a, b models.Asset) int {
	switch f.kind {
	case kindIP:
		return func(a, b models.Asset) int {
			return slices.Compare(ipOctets(f.get(a)), ipOctets(f.get(b)))
		}
	case kindPrice:
		return func(a, b models.Asset) int {
			return cmp.Compare(a.Price, b.Price)
		}
	case kindDate:
		return func(a, b models.Asset) int {
			ta, _ := ParseDate(f.get(a))
			tb, _ := ParseDate(f.get(b))
			return ta.Compare(tb)
		}
	default:
		return func(a, b models.Asset) int {
			return strings.Compare(strings.ToLower(f.get(a)), strings.ToLower(f.get(b)))
		}
	}
}

// ipOctets reads a dotted quad into four numbers. Non-numeric octets become
// -1 so they sort ahead of any real address; anything that is not exactly
// four parts is entirely -1.
func ipOctets(ip string) []int {
	octets := []int{-1, -1, -1, -1}
	parts := strings.Split(strings.TrimSpace(ip), ".")
	if len(parts) != len(octets) {
		return octets
	}
	for i, part := range parts {
		if n, err := strconv.Atoi(part); err == nil {
			octets[i] = n
		}
	}
	return octets
}

// Recent returns the first n records, the "recently added" view.
func Recent(records []models.Asset, n int) []models.Asset {
	n = max(0, min(n, len(records)))
	out := make([]models.Asset, n)
	copy(out, records[:n])
	return out
}
