package repo

import (
	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/asset-inventory/internal/models"
	"github.com/rogerio-castellano/asset-inventory/internal/redissvc"
)

// RedisCatalogRepository stores the catalog as one JSON document.
type RedisCatalogRepository struct {
	rs  *redissvc.RedisService
	key string
}

func NewRedisCatalogRepository(rs *redissvc.RedisService) *RedisCatalogRepository {
	return &RedisCatalogRepository{rs: rs, key: rs.Key("catalog")}
}

func (r *RedisCatalogRepository) load(c getter) (models.Catalog, error) {
	catalog := models.NewCatalog()
	if err := loadBlob(r.rs.Ctx(), c, r.key, &catalog); err != nil {
		return models.Catalog{}, err
	}
	return cloneCatalog(catalog), nil
}

func (r *RedisCatalogRepository) Get() (models.Catalog, error) {
	return r.load(r.rs.Rdb())
}

func (r *RedisCatalogRepository) apply(edit func(models.Catalog) (models.Catalog, error)) error {
	return updateBlob(r.rs.Ctx(), r.rs.Rdb(), r.key, func(tx *redis.Tx) (any, error) {
		current, err := r.load(tx)
		if err != nil {
			return nil, err
		}
		return edit(current)
	})
}

func (r *RedisCatalogRepository) AddBrand(brand string) error {
	return r.apply(func(c models.Catalog) (models.Catalog, error) { return addBrand(c, brand) })
}

func (r *RedisCatalogRepository) RemoveBrand(brand string) error {
	return r.apply(func(c models.Catalog) (models.Catalog, error) { return removeBrand(c, brand) })
}

func (r *RedisCatalogRepository) AddModel(brand, model string) error {
	return r.apply(func(c models.Catalog) (models.Catalog, error) { return addModel(c, brand, model) })
}

func (r *RedisCatalogRepository) RemoveModel(brand, model string) error {
	return r.apply(func(c models.Catalog) (models.Catalog, error) { return removeModel(c, brand, model) })
}

func (r *RedisCatalogRepository) AddLocation(kind, name string) error {
	return r.apply(func(c models.Catalog) (models.Catalog, error) { return addLocation(c, kind, name) })
}

func (r *RedisCatalogRepository) RemoveLocation(kind, name string) error {
	return r.apply(func(c models.Catalog) (models.Catalog, error) { return removeLocation(c, kind, name) })
}
