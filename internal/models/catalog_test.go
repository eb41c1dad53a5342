package models

import "testing"

func TestCatalogLocationKind(t *testing.T) {
	c := NewCatalog()
	c.Locations.Sedes = append(c.Locations.Sedes, "Matriz")
	c.Locations.Externo = append(c.Locations.Externo, "Obra Norte")

	tests := []struct {
		location string
		want     string
	}{
		{"Matriz", LocationSedes},
		{"Obra Norte", LocationExterno},
		{"matriz", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := c.LocationKind(tt.location); got != tt.want {
			t.Errorf("LocationKind(%q) = %q, want %q", tt.location, got, tt.want)
		}
	}
}

func TestIsKnownStatus(t *testing.T) {
	for _, s := range Statuses {
		if !IsKnownStatus(s) {
			t.Errorf("expected %q to be a known status", s)
		}
	}
	if IsKnownStatus("Prestado") || IsKnownStatus("") {
		t.Error("unexpected known status")
	}
}
