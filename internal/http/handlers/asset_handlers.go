package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rogerio-castellano/asset-inventory/internal/metrics"
	"github.com/rogerio-castellano/asset-inventory/internal/models"
	repo "github.com/rogerio-castellano/asset-inventory/internal/repo"
	"go.uber.org/zap"
)

// CreateAssetHandler godoc
// @Summary Create a new asset
// @Description Adds a piece of equipment to the inventory
// @Tags assets
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param asset body AssetRequest true "Asset to add"
// @Success 201 {object} models.Asset
// @Failure 400 {array} AssetValidationError
// @Failure 409 {string} string "Serial number duplicated"
// @Router /assets [post]
func CreateAssetHandler(w http.ResponseWriter, r *http.Request) {
	var req AssetRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	asset := req.Asset.Normalize()
	asset.ID = ""
	if validationErrors := validateAsset(asset); len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	created, err := assetRepo.Create(asset)
	if err != nil {
		if errors.Is(err, repo.ErrDuplicatedValueUnique) {
			http.Error(w, "could not create asset: serial number duplicated", http.StatusConflict)
			return
		}
		log.Error("create asset", zap.Error(err))
		http.Error(w, "could not create asset", http.StatusInternalServerError)
		return
	}

	log.Info("asset created", zap.String("id", created.ID), zap.String("serial", created.SerialNumber))
	writeJSON(w, http.StatusCreated, created)
}

// GetAssetsHandler godoc
// @Summary List all assets
// @Tags assets
// @Produce json
// @Success 200 {array} models.Asset
// @Failure 500 {string} string "Internal error"
// @Router /assets [get]
func GetAssetsHandler(w http.ResponseWriter, r *http.Request) {
	assets, err := assetRepo.GetAll()
	if err != nil {
		log.Error("list assets", zap.Error(err))
		http.Error(w, "could not fetch assets", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, assets)
}

// GetAssetByIDHandler godoc
// @Summary Get asset by ID
// @Tags assets
// @Produce json
// @Param id path string true "Asset ID"
// @Success 200 {object} models.Asset
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /assets/{id} [get]
func GetAssetByIDHandler(w http.ResponseWriter, r *http.Request) {
	asset, err := assetRepo.GetByID(chi.URLParam(r, "id"))
	if err != nil {
		if errors.Is(err, repo.ErrAssetNotFound) {
			http.Error(w, "asset not found", http.StatusNotFound)
			return
		}
		http.Error(w, "could not fetch asset", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, asset)
}

// UpdateAssetHandler godoc
// @Summary Update an asset
// @Tags assets
// @Accept json
// @Produce json
// @Param id path string true "Asset ID"
// @Param asset body AssetRequest true "Updated asset"
// @Success 200 {object} models.Asset
// @Failure 400 {array} AssetValidationError
// @Failure 404 {string} string "Not found"
// @Failure 409 {string} string "Serial number duplicated"
// @Failure 500 {string} string "Internal error"
// @Router /assets/{id} [put]
// @Security BearerAuth
func UpdateAssetHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var req AssetRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}

	asset := req.Asset.Normalize()
	asset.ID = id
	if validationErrors := validateAsset(asset); len(validationErrors) > 0 {
		writeJSON(w, http.StatusBadRequest, validationErrors)
		return
	}

	updated, err := assetRepo.Update(asset)
	if err != nil {
		switch {
		case errors.Is(err, repo.ErrAssetNotFound):
			http.Error(w, "asset not found", http.StatusNotFound)
		case errors.Is(err, repo.ErrDuplicatedValueUnique):
			http.Error(w, "could not update asset: serial number duplicated", http.StatusConflict)
		default:
			log.Error("update asset", zap.String("id", id), zap.Error(err))
			http.Error(w, "could not update asset", http.StatusInternalServerError)
		}
		return
	}
	writeJSON(w, http.StatusOK, updated)
}

// DeleteAssetHandler godoc
// @Summary Delete an asset
// @Tags assets
// @Param id path string true "Asset ID"
// @Success 204 "Deleted successfully"
// @Failure 404 {string} string "Not found"
// @Failure 500 {string} string "Internal error"
// @Router /assets/{id} [delete]
// @Security BearerAuth
func DeleteAssetHandler(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := assetRepo.Delete(id); err != nil {
		if errors.Is(err, repo.ErrAssetNotFound) {
			http.Error(w, "asset not found", http.StatusNotFound)
			return
		}
		log.Error("delete asset", zap.String("id", id), zap.Error(err))
		http.Error(w, "could not delete asset", http.StatusInternalServerError)
		return
	}
	log.Info("asset deleted", zap.String("id", id))
	w.WriteHeader(http.StatusNoContent)
}

// SearchAssetsHandler godoc
// @Summary Filter, sort and paginate assets
// @Tags assets
// @Produce json
// @Param location query string false "Exact location"
// @Param department query string false "Exact department"
// @Param brand query string false "Exact brand"
// @Param status query string false "Exact status"
// @Param q query string false "Text searched in full name, serial number and brand"
// @Param sort query string false "Field to sort by"
// @Param dir query string false "Sort direction (asc|desc)"
// @Param offset query int false "Offset for pagination"
// @Param limit query int false "Limit for pagination"
// @Success 200 {object} AssetsSearchResult
// @Failure 400 {string} string "Invalid query"
// @Failure 500 {string} string "Internal error"
// @Router /assets/search [get]
func SearchAssetsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	offset, err := parseIntPtr(q.Get("offset"))
	if err != nil || (offset != nil && *offset < 0) {
		http.Error(w, "offset must be zero or positive", http.StatusBadRequest)
		return
	}
	limit, err := parseIntPtr(q.Get("limit"))
	if err != nil || (limit != nil && *limit <= 0) {
		http.Error(w, "limit must be greater than zero", http.StatusBadRequest)
		return
	}

	view, status, msg := assetView(q.Get("sort"), q.Get("dir"), filterFromQuery(q))
	if status != http.StatusOK {
		http.Error(w, msg, status)
		return
	}

	total := len(view)
	start, end := 0, total
	if offset != nil {
		start = min(*offset, total)
	}
	if limit != nil && *limit < total-start {
		end = start + *limit
	}

	writeJSON(w, http.StatusOK, AssetsSearchResult{
		Data: view[start:end],
		Meta: Meta{TotalCount: total},
	})
}

// assetView loads the collection and applies a filter and an optional sort.
// On failure it returns the HTTP status and message to report.
func assetView(sortField, dir string, filter metrics.Filter) ([]models.Asset, int, string) {
	if sortField != "" && !metrics.IsField(sortField) {
		return nil, http.StatusBadRequest, "unknown sort field"
	}

	assets, err := assetRepo.GetAll()
	if err != nil {
		log.Error("load assets", zap.Error(err))
		return nil, http.StatusInternalServerError, "could not fetch assets"
	}

	view := metrics.FilterRecords(assets, filter)
	if sortField != "" {
		view = metrics.SortRecords(view, sortField, metrics.ParseDirection(dir))
	}
	return view, http.StatusOK, ""
}
