package repo

import (
	"errors"

	"github.com/rogerio-castellano/asset-inventory/internal/models"
)

// AssetRepository stores the inventory collection. GetAll returns assets in
// insertion order.
type AssetRepository interface {
	Create(asset models.Asset) (models.Asset, error)
	GetAll() ([]models.Asset, error)
	GetByID(id string) (models.Asset, error)
	GetBySerial(serial string) (models.Asset, error)
	Update(asset models.Asset) (models.Asset, error)
	Delete(id string) error
}

var (
	// ErrAssetNotFound is returned when an asset is not found in the repository.
	ErrAssetNotFound = errors.New("asset not found")
	// ErrDuplicatedValueUnique is returned when a unique value (serial number, username) is already taken.
	ErrDuplicatedValueUnique = errors.New("duplicated value for unique field")
)

// serialTaken reports whether another asset already uses a non-empty serial number.
func serialTaken(assets []models.Asset, a models.Asset) bool {
	if a.SerialNumber == "" {
		return false
	}
	for _, existing := range assets {
		if existing.ID != a.ID && existing.SerialNumber == a.SerialNumber {
			return true
		}
	}
	return false
}
