package repo

import (
	"sync"

	"github.com/google/uuid"
	"github.com/rogerio-castellano/asset-inventory/internal/models"
)

// InMemoryAssetRepository is an in-memory implementation of AssetRepository.
type InMemoryAssetRepository struct {
	mu     sync.RWMutex
	assets []models.Asset
}

// NewInMemoryAssetRepository creates a new instance of InMemoryAssetRepository.
func NewInMemoryAssetRepository() *InMemoryAssetRepository {
	return &InMemoryAssetRepository{
		assets: []models.Asset{},
	}
}

// Create assigns a fresh ID and appends the asset.
func (r *InMemoryAssetRepository) Create(asset models.Asset) (models.Asset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	asset.ID = uuid.NewString()
	if serialTaken(r.assets, asset) {
		return models.Asset{}, ErrDuplicatedValueUnique
	}
	r.assets = append(r.assets, asset)
	return asset, nil
}

// GetAll returns a copy of every asset in insertion order.
func (r *InMemoryAssetRepository) GetAll() ([]models.Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]models.Asset, len(r.assets))
	copy(out, r.assets)
	return out, nil
}

// GetByID retrieves an asset by its ID.
func (r *InMemoryAssetRepository) GetByID(id string) (models.Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.assets {
		if a.ID == id {
			return a, nil
		}
	}
	return models.Asset{}, ErrAssetNotFound
}

func (r *InMemoryAssetRepository) GetBySerial(serial string) (models.Asset, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, a := range r.assets {
		if serial != "" && a.SerialNumber == serial {
			return a, nil
		}
	}
	return models.Asset{}, ErrAssetNotFound
}

// Update replaces an existing asset in place, keeping its position.
func (r *InMemoryAssetRepository) Update(asset models.Asset) (models.Asset, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, a := range r.assets {
		if a.ID == asset.ID {
			if serialTaken(r.assets, asset) {
				return models.Asset{}, ErrDuplicatedValueUnique
			}
			r.assets[i] = asset
			return asset, nil
		}
	}
	return models.Asset{}, ErrAssetNotFound
}

// Delete removes an asset from the repository by its ID.
func (r *InMemoryAssetRepository) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for i, a := range r.assets {
		if a.ID == id {
			r.assets = append(r.assets[:i], r.assets[i+1:]...)
			return nil
		}
	}
	return ErrAssetNotFound
}

func (r *InMemoryAssetRepository) Clear() {
	r.mu.Lock()
	r.assets = []models.Asset{}
	r.mu.Unlock()
}
