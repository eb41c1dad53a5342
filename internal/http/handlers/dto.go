package handlers

import (
	"github.com/rogerio-castellano/asset-inventory/internal/metrics"
	"github.com/rogerio-castellano/asset-inventory/internal/models"
)

// AssetRequest is the body of create and update calls. Any id it carries is ignored.
type AssetRequest struct {
	models.Asset
}

type Meta struct {
	TotalCount int `json:"total_count"`
}

type AssetsSearchResult struct {
	Data []models.Asset `json:"data"`
	Meta Meta           `json:"meta,omitempty"`
}

type CredentialsRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type RegisterAsAdminRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type LoginResult struct {
	Token string `json:"token"`
}

type ImportAssetsResult struct {
	ImportedAssetsCount int                    `json:"imported"`
	Errors              []AssetValidationError `json:"errors"`
}

type BrandRequest struct {
	Brand string `json:"brand"`
}

type ModelRequest struct {
	Brand string `json:"brand"`
	Model string `json:"model"`
}

type LocationRequest struct {
	Kind string `json:"kind"`
	Name string `json:"name"`
}

type StatusCountsResult struct {
	Counts map[string]int `json:"counts"`
	Total  int            `json:"total"`
}

type DistributionResult struct {
	Field  string          `json:"field"`
	Counts []metrics.Count `json:"counts"`
}

type ValueByFieldResult struct {
	Field  string          `json:"field"`
	Totals []metrics.Total `json:"totals"`
}

type UniqueValuesResult struct {
	Field  string   `json:"field"`
	Values []string `json:"values"`
}

type MaintenanceResult struct {
	Ref     string                    `json:"ref"`
	Counts  metrics.MaintenanceCounts `json:"counts"`
	Buckets metrics.MaintenanceReport `json:"buckets"`
}

type WarrantyResult struct {
	Ref     string                 `json:"ref"`
	Counts  metrics.WarrantyCounts `json:"counts"`
	Buckets metrics.WarrantyReport `json:"buckets"`
}
