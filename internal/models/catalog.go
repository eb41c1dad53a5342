package models

import "slices"

const (
	LocationSedes   = "sedes"
	LocationExterno = "externo"
)

// Locations groups physical sites into owned sites and external/field sites.
type Locations struct {
	Sedes   []string `json:"sedes"`
	Externo []string `json:"externo"`
}

// Catalog holds the values offered in selection inputs. Assets may reference
// values that are not listed here.
type Catalog struct {
	Brands        []string            `json:"brands"`
	ModelsByBrand map[string][]string `json:"modelsByBrand"`
	Locations     Locations           `json:"locations"`
}

// NewCatalog returns an empty catalog with every collection allocated.
func NewCatalog() Catalog {
	return Catalog{
		Brands:        []string{},
		ModelsByBrand: map[string][]string{},
		Locations:     Locations{Sedes: []string{}, Externo: []string{}},
	}
}

// LocationKind returns "sedes" or "externo" for a listed location, "" otherwise.
func (c Catalog) LocationKind(location string) string {
	if slices.Contains(c.Locations.Sedes, location) {
		return LocationSedes
	}
	if slices.Contains(c.Locations.Externo, location) {
		return LocationExterno
	}
	return ""
}
