package models

import (
	"encoding/json"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// Price is a monetary amount already reduced to a finite number.
type Price float64

var (
	nonNumeric    = regexp.MustCompile(`[^0-9.\-]+`)
	leadingNumber = regexp.MustCompile(`^-?(\d+\.?\d*|\.\d+)`)
)

// ParsePrice turns user-entered currency text ("$1,200.50", "MXN 300") into a
// number. Every character that is not a digit, '.' or '-' is dropped, then the
// longest leading decimal number is read. Anything unreadable is 0.
func ParsePrice(s string) float64 {
	cleaned := nonNumeric.ReplaceAllString(s, "")
	num := leadingNumber.FindString(cleaned)
	if num == "" {
		return 0
	}
	v, err := strconv.ParseFloat(num, 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

// UnmarshalJSON accepts a JSON number, a currency string or null.
func (p *Price) UnmarshalJSON(data []byte) error {
	raw := strings.TrimSpace(string(data))
	if raw == "null" || raw == "" {
		*p = 0
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*p = Price(ParsePrice(s))
		return nil
	}

	var f float64
	if err := json.Unmarshal(data, &f); err != nil {
		*p = 0
		return nil
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		f = 0
	}
	*p = Price(f)
	return nil
}

func (p Price) Float64() float64 {
	return float64(p)
}
