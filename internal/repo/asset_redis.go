package repo

import (
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/rogerio-castellano/asset-inventory/internal/models"
	"github.com/rogerio-castellano/asset-inventory/internal/redissvc"
)

// RedisAssetRepository keeps the whole ordered collection as one JSON array
// under a single key.
type RedisAssetRepository struct {
	rs  *redissvc.RedisService
	key string
}

func NewRedisAssetRepository(rs *redissvc.RedisService) *RedisAssetRepository {
	return &RedisAssetRepository{rs: rs, key: rs.Key("assets")}
}

func (r *RedisAssetRepository) load(c getter) ([]models.Asset, error) {
	assets := []models.Asset{}
	if err := loadBlob(r.rs.Ctx(), c, r.key, &assets); err != nil {
		return nil, err
	}
	return assets, nil
}

func (r *RedisAssetRepository) Create(asset models.Asset) (models.Asset, error) {
	asset.ID = uuid.NewString()
	err := updateBlob(r.rs.Ctx(), r.rs.Rdb(), r.key, func(tx *redis.Tx) (any, error) {
		assets, err := r.load(tx)
		if err != nil {
			return nil, err
		}
		if serialTaken(assets, asset) {
			return nil, ErrDuplicatedValueUnique
		}
		return append(assets, asset), nil
	})
	if err != nil {
		return models.Asset{}, err
	}
	return asset, nil
}

func (r *RedisAssetRepository) GetAll() ([]models.Asset, error) {
	return r.load(r.rs.Rdb())
}

func (r *RedisAssetRepository) GetByID(id string) (models.Asset, error) {
	assets, err := r.load(r.rs.Rdb())
	if err != nil {
		return models.Asset{}, err
	}
	for _, a := range assets {
		if a.ID == id {
			return a, nil
		}
	}
	return models.Asset{}, ErrAssetNotFound
}

func (r *RedisAssetRepository) GetBySerial(serial string) (models.Asset, error) {
	assets, err := r.load(r.rs.Rdb())
	if err != nil {
		return models.Asset{}, err
	}
	for _, a := range assets {
		if serial != "" && a.SerialNumber == serial {
			return a, nil
		}
	}
	return models.Asset{}, ErrAssetNotFound
}

func (r *RedisAssetRepository) Update(asset models.Asset) (models.Asset, error) {
	err := updateBlob(r.rs.Ctx(), r.rs.Rdb(), r.key, func(tx *redis.Tx) (any, error) {
		assets, err := r.load(tx)
		if err != nil {
			return nil, err
		}
		for i, a := range assets {
			if a.ID == asset.ID {
				if serialTaken(assets, asset) {
					return nil, ErrDuplicatedValueUnique
				}
				assets[i] = asset
				return assets, nil
			}
		}
		return nil, ErrAssetNotFound
	})
	if err != nil {
		return models.Asset{}, err
	}
	return asset, nil
}

func (r *RedisAssetRepository) Delete(id string) error {
	return updateBlob(r.rs.Ctx(), r.rs.Rdb(), r.key, func(tx *redis.Tx) (any, error) {
		assets, err := r.load(tx)
		if err != nil {
			return nil, err
		}
		for i, a := range assets {
			if a.ID == id {
				return append(assets[:i], assets[i+1:]...), nil
			}
		}
		return nil, ErrAssetNotFound
	})
}
