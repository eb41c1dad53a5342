package metrics

import (
	"slices"

	"github.com/rogerio-castellano/asset-inventory/internal/models"
)

// Count is one entry of a distribution.
type Count struct {
	Value string `json:"value"`
	Count int    `json:"count"`
}

// Total is the summed price of the records sharing a field value.
type Total struct {
	Value string  `json:"value"`
	Total float64 `json:"total"`
}

// CountByStatus counts records per recognized status. Records whose status is
// empty or not recognized are left out, so the counts may sum to less than
// len(records).
func CountByStatus(records []models.Asset) map[string]int {
	counts := make(map[string]int)
	for _, r := range records {
		if models.IsKnownStatus(r.Status) {
			counts[r.Status]++
		}
	}
	return counts
}

// TotalValue sums every record price; malformed prices already read as 0.
func TotalValue(records []models.Asset) float64 {
	var total float64
	for _, r := range records {
		total += r.Price.Float64()
	}
	return total
}

// AverageValue is TotalValue divided by the record count, 0 for no records.
func AverageValue(records []models.Asset) float64 {
	if len(records) == 0 {
		return 0
	}
	return TotalValue(records) / float64(len(records))
}

// Distribution groups every record by the value of field, empty values under
// Unspecified. The result is ordered by descending count; ties keep the order
// in which each value first appeared. Counts always sum to len(records).
func Distribution(records []models.Asset, fieldName string) []Count {
	f := mustField(fieldName)

	index := make(map[string]int)
	var out []Count
	for _, r := range records {
		v := f.get(r)
		if v == "" {
			v = Unspecified
		}
		i, ok := index[v]
		if !ok {
			i = len(out)
			index[v] = i
			out = append(out, Count{Value: v})
		}
		out[i].Count++
	}

	slices.SortStableFunc(out, func(a, b Count) int {
		return b.Count - a.Count
	})
	if out == nil {
		return []Count{}
	}
	return out
}

// TopN returns the first n entries of an already ordered distribution.
// It panics if n is negative.
func TopN(dist []Count, n int) []Count {
	if n < 0 {
		panic("metrics: negative n passed to TopN")
	}
	n = min(n, len(dist))
	out := make([]Count, n)
	copy(out, dist[:n])
	return out
}

// ValueByField sums prices per field value with the same Unspecified grouping
// as Distribution, ordered by descending total, ties by first appearance.
func ValueByField(records []models.Asset, fieldName string) []Total {
	f := mustField(fieldName)

	index := make(map[string]int)
	out := []Total{}
	for _, r := range records {
		v := f.get(r)
		if v == "" {
			v = Unspecified
		}
		i, ok := index[v]
		if !ok {
			i = len(out)
			index[v] = i
			out = append(out, Total{Value: v})
		}
		out[i].Total += r.Price.Float64()
	}

	slices.SortStableFunc(out, func(a, b Total) int {
		switch {
		case a.Total > b.Total:
			return -1
		case a.Total < b.Total:
			return 1
		}
		return 0
	})
	return out
}

// UniqueValues lists the distinct non-empty values of field in order of first
// occurrence.
func UniqueValues(records []models.Asset, fieldName string) []string {
	f := mustField(fieldName)

	seen := make(map[string]struct{})
	out := []string{}
	for _, r := range records {
		v := f.get(r)
		if v == "" {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
