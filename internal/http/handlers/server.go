package handlers

import (
	repo "github.com/rogerio-castellano/asset-inventory/internal/repo"
	"go.uber.org/zap"
)

var (
	assetRepo   repo.AssetRepository
	catalogRepo repo.CatalogRepository
	userRepo    repo.UserRepository

	log = zap.NewNop()
)

func SetAssetRepo(r repo.AssetRepository) {
	assetRepo = r
}

func SetCatalogRepo(r repo.CatalogRepository) {
	catalogRepo = r
}

func SetUserRepo(r repo.UserRepository) {
	userRepo = r
}

func SetLogger(l *zap.Logger) {
	log = l
}
