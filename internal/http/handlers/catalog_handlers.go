package handlers

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	repo "github.com/rogerio-castellano/asset-inventory/internal/repo"
	"go.uber.org/zap"
)

func writeCatalogError(w http.ResponseWriter, action string, err error) {
	switch {
	case errors.Is(err, repo.ErrCatalogEntryNotFound):
		http.Error(w, "catalog entry not found", http.StatusNotFound)
	case errors.Is(err, repo.ErrInvalidLocationKind), errors.Is(err, repo.ErrEmptyCatalogValue):
		http.Error(w, err.Error(), http.StatusBadRequest)
	default:
		log.Error(action, zap.Error(err))
		http.Error(w, "could not update catalog", http.StatusInternalServerError)
	}
}

// writeCatalog responds with the catalog as it stands after a change.
func writeCatalog(w http.ResponseWriter, status int) {
	catalog, err := catalogRepo.Get()
	if err != nil {
		log.Error("load catalog", zap.Error(err))
		http.Error(w, "could not fetch catalog", http.StatusInternalServerError)
		return
	}
	writeJSON(w, status, catalog)
}

// GetCatalogHandler godoc
// @Summary Brands, models per brand and locations offered in forms
// @Tags catalog
// @Produce json
// @Success 200 {object} models.Catalog
// @Failure 500 {string} string "Internal error"
// @Router /catalog [get]
func GetCatalogHandler(w http.ResponseWriter, r *http.Request) {
	writeCatalog(w, http.StatusOK)
}

// AddBrandHandler godoc
// @Summary Add a brand
// @Tags catalog
// @Accept json
// @Produce json
// @Param brand body BrandRequest true "Brand to add"
// @Success 201 {object} models.Catalog
// @Failure 400 {string} string "Invalid input"
// @Router /catalog/brands [post]
// @Security BearerAuth
func AddBrandHandler(w http.ResponseWriter, r *http.Request) {
	var req BrandRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if err := catalogRepo.AddBrand(req.Brand); err != nil {
		writeCatalogError(w, "add brand", err)
		return
	}
	writeCatalog(w, http.StatusCreated)
}

// RemoveBrandHandler godoc
// @Summary Remove a brand and its models
// @Tags catalog
// @Produce json
// @Param brand path string true "Brand"
// @Success 200 {object} models.Catalog
// @Failure 404 {string} string "Not found"
// @Router /catalog/brands/{brand} [delete]
// @Security BearerAuth
func RemoveBrandHandler(w http.ResponseWriter, r *http.Request) {
	if err := catalogRepo.RemoveBrand(chi.URLParam(r, "brand")); err != nil {
		writeCatalogError(w, "remove brand", err)
		return
	}
	writeCatalog(w, http.StatusOK)
}

// AddModelHandler godoc
// @Summary Add a model under a brand
// @Description The brand is added too when it is not listed
// @Tags catalog
// @Accept json
// @Produce json
// @Param model body ModelRequest true "Brand and model"
// @Success 201 {object} models.Catalog
// @Failure 400 {string} string "Invalid input"
// @Router /catalog/models [post]
// @Security BearerAuth
func AddModelHandler(w http.ResponseWriter, r *http.Request) {
	var req ModelRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if err := catalogRepo.AddModel(req.Brand, req.Model); err != nil {
		writeCatalogError(w, "add model", err)
		return
	}
	writeCatalog(w, http.StatusCreated)
}

// RemoveModelHandler godoc
// @Summary Remove a model from a brand
// @Tags catalog
// @Produce json
// @Param brand path string true "Brand"
// @Param model path string true "Model"
// @Success 200 {object} models.Catalog
// @Failure 404 {string} string "Not found"
// @Router /catalog/models/{brand}/{model} [delete]
// @Security BearerAuth
func RemoveModelHandler(w http.ResponseWriter, r *http.Request) {
	if err := catalogRepo.RemoveModel(chi.URLParam(r, "brand"), chi.URLParam(r, "model")); err != nil {
		writeCatalogError(w, "remove model", err)
		return
	}
	writeCatalog(w, http.StatusOK)
}

// AddLocationHandler godoc
// @Summary Add a location
// @Tags catalog
// @Accept json
// @Produce json
// @Param location body LocationRequest true "Kind (sedes|externo) and name"
// @Success 201 {object} models.Catalog
// @Failure 400 {string} string "Invalid input"
// @Router /catalog/locations [post]
// @Security BearerAuth
func AddLocationHandler(w http.ResponseWriter, r *http.Request) {
	var req LocationRequest
	if err := readJSON(w, r, &req); err != nil {
		http.Error(w, "invalid input", http.StatusBadRequest)
		return
	}
	if err := catalogRepo.AddLocation(req.Kind, req.Name); err != nil {
		writeCatalogError(w, "add location", err)
		return
	}
	writeCatalog(w, http.StatusCreated)
}

// RemoveLocationHandler godoc
// @Summary Remove a location
// @Tags catalog
// @Produce json
// @Param kind path string true "Kind (sedes|externo)"
// @Param name path string true "Location name"
// @Success 200 {object} models.Catalog
// @Failure 400 {string} string "Invalid kind"
// @Failure 404 {string} string "Not found"
// @Router /catalog/locations/{kind}/{name} [delete]
// @Security BearerAuth
func RemoveLocationHandler(w http.ResponseWriter, r *http.Request) {
	if err := catalogRepo.RemoveLocation(chi.URLParam(r, "kind"), chi.URLParam(r, "name")); err != nil {
		writeCatalogError(w, "remove location", err)
		return
	}
	writeCatalog(w, http.StatusOK)
}
