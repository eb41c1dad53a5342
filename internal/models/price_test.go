package models

import (
	"encoding/json"
	"testing"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		in   string
		want float64
	}{
		{"100", 100},
		{"$300.00", 300},
		{"$1,200", 1200},
		{"MXN 15,999.90", 15999.90},
		{"-50", -50},
		{".5", 0.5},
		{"12-34", 12},
		{"", 0},
		{"sin precio", 0},
		{"-", 0},
		{"...", 0},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			if got := ParsePrice(tt.in); got != tt.want {
				t.Errorf("ParsePrice(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestPriceUnmarshalJSON(t *testing.T) {
	var a struct {
		Price Price `json:"price"`
	}

	for body, want := range map[string]float64{
		`{"price": 250.75}`:     250.75,
		`{"price": "$1,000"}`:   1000,
		`{"price": null}`:       0,
		`{"price": "gratis"}`:   0,
		`{"price": true}`:       0,
		`{"price": ["nested"]}`: 0,
	} {
		a.Price = 99
		if err := json.Unmarshal([]byte(body), &a); err != nil {
			t.Fatalf("unmarshal %s: %v", body, err)
		}
		if a.Price.Float64() != want {
			t.Errorf("%s: got %v, want %v", body, a.Price, want)
		}
	}
}

func TestAssetNormalize(t *testing.T) {
	a := Asset{ID: "x", Brand: "  Dell ", SerialNumber: "\tSN1\n"}.Normalize()

	if a.Brand != "Dell" || a.SerialNumber != "SN1" {
		t.Errorf("fields not trimmed: %+v", a)
	}
	if a.IPType != IPTypeDHCP {
		t.Errorf("expected default ipType %q, got %q", IPTypeDHCP, a.IPType)
	}

	static := Asset{IPType: IPTypeStatic}.Normalize()
	if static.IPType != IPTypeStatic {
		t.Errorf("expected ipType to be kept, got %q", static.IPType)
	}
}

func TestUnderWarranty(t *testing.T) {
	for months, want := range map[string]bool{"12": true, " 6 ": true, "0": false, "-3": false, "": false, "un año": false} {
		if got := (Asset{Warranty: months}).UnderWarranty(); got != want {
			t.Errorf("UnderWarranty(%q) = %v, want %v", months, got, want)
		}
	}
}

func TestCatalogLocationKindBasic(t *testing.T) {
	c := NewCatalog()
	c.Locations.Sedes = []string{"Matriz"}
	c.Locations.Externo = []string{"Campo"}

	if got := c.LocationKind("Matriz"); got != LocationSedes {
		t.Errorf("got %q, want %q", got, LocationSedes)
	}
	if got := c.LocationKind("Campo"); got != LocationExterno {
		t.Errorf("got %q, want %q", got, LocationExterno)
	}
	if got := c.LocationKind("Luna"); got != "" {
		t.Errorf("got %q, want empty", got)
	}
}
