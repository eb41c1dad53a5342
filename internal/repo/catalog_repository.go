package repo

import (
	"errors"
	"slices"
	"strings"

	"github.com/rogerio-castellano/asset-inventory/internal/models"
)

// CatalogRepository manages the brand, model and location lists offered in forms.
type CatalogRepository interface {
	Get() (models.Catalog, error)
	AddBrand(brand string) error
	RemoveBrand(brand string) error
	AddModel(brand, model string) error
	RemoveModel(brand, model string) error
	AddLocation(kind, name string) error
	RemoveLocation(kind, name string) error
}

var (
	ErrInvalidLocationKind  = errors.New("location kind must be 'sedes' or 'externo'")
	ErrCatalogEntryNotFound = errors.New("catalog entry not found")
	ErrEmptyCatalogValue    = errors.New("catalog value cannot be empty")
)

// The helpers below apply one catalog edit to a value copy. Adding an entry
// that already exists is a no-op.

func cloneCatalog(c models.Catalog) models.Catalog {
	out := models.NewCatalog()
	out.Brands = append(out.Brands, c.Brands...)
	for b, ms := range c.ModelsByBrand {
		out.ModelsByBrand[b] = slices.Clone(ms)
	}
	out.Locations.Sedes = append(out.Locations.Sedes, c.Locations.Sedes...)
	out.Locations.Externo = append(out.Locations.Externo, c.Locations.Externo...)
	return out
}

func addBrand(c models.Catalog, brand string) (models.Catalog, error) {
	brand = strings.TrimSpace(brand)
	if brand == "" {
		return c, ErrEmptyCatalogValue
	}
	c = cloneCatalog(c)
	if !slices.Contains(c.Brands, brand) {
		c.Brands = append(c.Brands, brand)
	}
	return c, nil
}

func removeBrand(c models.Catalog, brand string) (models.Catalog, error) {
	i := slices.Index(c.Brands, brand)
	if i < 0 {
		return c, ErrCatalogEntryNotFound
	}
	c = cloneCatalog(c)
	c.Brands = slices.Delete(c.Brands, i, i+1)
	delete(c.ModelsByBrand, brand)
	return c, nil
}

// addModel also registers the brand when it is not listed yet.
func addModel(c models.Catalog, brand, model string) (models.Catalog, error) {
	model = strings.TrimSpace(model)
	if model == "" {
		return c, ErrEmptyCatalogValue
	}
	c, err := addBrand(c, brand)
	if err != nil {
		return c, err
	}
	brand = strings.TrimSpace(brand)
	if !slices.Contains(c.ModelsByBrand[brand], model) {
		c.ModelsByBrand[brand] = append(c.ModelsByBrand[brand], model)
	}
	return c, nil
}

func removeModel(c models.Catalog, brand, model string) (models.Catalog, error) {
	i := slices.Index(c.ModelsByBrand[brand], model)
	if i < 0 {
		return c, ErrCatalogEntryNotFound
	}
	c = cloneCatalog(c)
	c.ModelsByBrand[brand] = slices.Delete(c.ModelsByBrand[brand], i, i+1)
	return c, nil
}

func locationList(c *models.Catalog, kind string) (*[]string, error) {
	switch kind {
	case models.LocationSedes:
		return &c.Locations.Sedes, nil
	case models.LocationExterno:
		return &c.Locations.Externo, nil
	}
	return nil, ErrInvalidLocationKind
}

func addLocation(c models.Catalog, kind, name string) (models.Catalog, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return c, ErrEmptyCatalogValue
	}
	c = cloneCatalog(c)
	list, err := locationList(&c, kind)
	if err != nil {
		return c, err
	}
	if !slices.Contains(*list, name) {
		*list = append(*list, name)
	}
	return c, nil
}

func removeLocation(c models.Catalog, kind, name string) (models.Catalog, error) {
	c = cloneCatalog(c)
	list, err := locationList(&c, kind)
	if err != nil {
		return c, err
	}
	i := slices.Index(*list, name)
	if i < 0 {
		return c, ErrCatalogEntryNotFound
	}
	*list = slices.Delete(*list, i, i+1)
	return c, nil
}
