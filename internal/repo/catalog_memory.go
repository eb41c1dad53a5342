package repo

import (
	"sync"

	"github.com/rogerio-castellano/asset-inventory/internal/models"
)

type InMemoryCatalogRepository struct {
	mu      sync.RWMutex
	catalog models.Catalog
}

func NewInMemoryCatalogRepository() *InMemoryCatalogRepository {
	return &InMemoryCatalogRepository{catalog: models.NewCatalog()}
}

func (r *InMemoryCatalogRepository) Get() (models.Catalog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return cloneCatalog(r.catalog), nil
}

func (r *InMemoryCatalogRepository) apply(edit func(models.Catalog) (models.Catalog, error)) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	next, err := edit(r.catalog)
	if err != nil {
		return err
	}
	r.catalog = next
	return nil
}

func (r *InMemoryCatalogRepository) AddBrand(brand string) error {
	return r.apply(func(c models.Catalog) (models.Catalog, error) { return addBrand(c, brand) })
}

func (r *InMemoryCatalogRepository) RemoveBrand(brand string) error {
	return r.apply(func(c models.Catalog) (models.Catalog, error) { return removeBrand(c, brand) })
}

func (r *InMemoryCatalogRepository) AddModel(brand, model string) error {
	return r.apply(func(c models.Catalog) (models.Catalog, error) { return addModel(c, brand, model) })
}

func (r *InMemoryCatalogRepository) RemoveModel(brand, model string) error {
	return r.apply(func(c models.Catalog) (models.Catalog, error) { return removeModel(c, brand, model) })
}

func (r *InMemoryCatalogRepository) AddLocation(kind, name string) error {
	return r.apply(func(c models.Catalog) (models.Catalog, error) { return addLocation(c, kind, name) })
}

func (r *InMemoryCatalogRepository) RemoveLocation(kind, name string) error {
	return r.apply(func(c models.Catalog) (models.Catalog, error) { return removeLocation(c, kind, name) })
}
