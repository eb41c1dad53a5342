package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/rogerio-castellano/asset-inventory/internal/metrics"
	"github.com/rogerio-castellano/asset-inventory/internal/models"
	"go.uber.org/zap"
)

const (
	defaultTopN   = 5
	defaultRecent = 5
)

func loadAssets(w http.ResponseWriter) ([]models.Asset, bool) {
	assets, err := assetRepo.GetAll()
	if err != nil {
		log.Error("load assets", zap.Error(err))
		http.Error(w, "could not fetch assets", http.StatusInternalServerError)
		return nil, false
	}
	return assets, true
}

// countParam reads a non-negative count query parameter.
func countParam(r *http.Request, name string, def int) (int, bool) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, true
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, false
	}
	return n, true
}

// SummaryHandler godoc
// @Summary KPI cards for the dashboards
// @Tags dashboard
// @Produce json
// @Param ref query string false "Reference time (RFC3339), defaults to now"
// @Success 200 {object} metrics.Summary
// @Failure 400 {string} string "Invalid query"
// @Failure 500 {string} string "Internal error"
// @Router /dashboard/summary [get]
func SummaryHandler(w http.ResponseWriter, r *http.Request) {
	ref, err := referenceTime(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	assets, ok := loadAssets(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, metrics.Summarize(assets, ref))
}

// StatusCountsHandler godoc
// @Summary Count assets per recognized status
// @Tags dashboard
// @Produce json
// @Success 200 {object} StatusCountsResult
// @Failure 500 {string} string "Internal error"
// @Router /dashboard/status [get]
func StatusCountsHandler(w http.ResponseWriter, r *http.Request) {
	assets, ok := loadAssets(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, StatusCountsResult{
		Counts: metrics.CountByStatus(assets),
		Total:  len(assets),
	})
}

// DistributionHandler godoc
// @Summary Count assets per distinct value of a field
// @Tags dashboard
// @Produce json
// @Param field query string true "Asset field name"
// @Success 200 {object} DistributionResult
// @Failure 400 {string} string "Unknown field"
// @Failure 500 {string} string "Internal error"
// @Router /dashboard/distribution [get]
func DistributionHandler(w http.ResponseWriter, r *http.Request) {
	field, err := fieldParam(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	assets, ok := loadAssets(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, DistributionResult{Field: field, Counts: metrics.Distribution(assets, field)})
}

// TopHandler godoc
// @Summary Most frequent values of a field
// @Tags dashboard
// @Produce json
// @Param field query string true "Asset field name"
// @Param n query int false "Number of entries, defaults to 5"
// @Success 200 {object} DistributionResult
// @Failure 400 {string} string "Invalid query"
// @Failure 500 {string} string "Internal error"
// @Router /dashboard/top [get]
func TopHandler(w http.ResponseWriter, r *http.Request) {
	field, err := fieldParam(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	n, ok := countParam(r, "n", defaultTopN)
	if !ok {
		http.Error(w, "n must be zero or positive", http.StatusBadRequest)
		return
	}
	assets, ok := loadAssets(w)
	if !ok {
		return
	}
	top := metrics.TopN(metrics.Distribution(assets, field), n)
	writeJSON(w, http.StatusOK, DistributionResult{Field: field, Counts: top})
}

// ValueByFieldHandler godoc
// @Summary Summed price per distinct value of a field
// @Tags dashboard
// @Produce json
// @Param field query string true "Asset field name"
// @Success 200 {object} ValueByFieldResult
// @Failure 400 {string} string "Unknown field"
// @Failure 500 {string} string "Internal error"
// @Router /dashboard/value [get]
func ValueByFieldHandler(w http.ResponseWriter, r *http.Request) {
	field, err := fieldParam(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	assets, ok := loadAssets(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, ValueByFieldResult{Field: field, Totals: metrics.ValueByField(assets, field)})
}

// MaintenanceHandler godoc
// @Summary Assets grouped by next maintenance due date
// @Tags dashboard
// @Produce json
// @Param ref query string false "Reference time (RFC3339), defaults to now"
// @Success 200 {object} MaintenanceResult
// @Failure 400 {string} string "Invalid query"
// @Failure 500 {string} string "Internal error"
// @Router /dashboard/maintenance [get]
func MaintenanceHandler(w http.ResponseWriter, r *http.Request) {
	ref, err := referenceTime(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	assets, ok := loadAssets(w)
	if !ok {
		return
	}
	rep := metrics.MaintenanceBuckets(assets, ref)
	writeJSON(w, http.StatusOK, MaintenanceResult{Ref: ref.Format(time.RFC3339), Counts: rep.Counts(), Buckets: rep})
}

// WarrantyHandler godoc
// @Summary Assets grouped by warranty end date
// @Tags dashboard
// @Produce json
// @Param ref query string false "Reference time (RFC3339), defaults to now"
// @Success 200 {object} WarrantyResult
// @Failure 400 {string} string "Invalid query"
// @Failure 500 {string} string "Internal error"
// @Router /dashboard/warranty [get]
func WarrantyHandler(w http.ResponseWriter, r *http.Request) {
	ref, err := referenceTime(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	assets, ok := loadAssets(w)
	if !ok {
		return
	}
	rep := metrics.WarrantyBuckets(assets, ref)
	writeJSON(w, http.StatusOK, WarrantyResult{Ref: ref.Format(time.RFC3339), Counts: rep.Counts(), Buckets: rep})
}

// UniqueValuesHandler godoc
// @Summary Distinct non-empty values of a field in order of first occurrence
// @Tags dashboard
// @Produce json
// @Param field query string true "Asset field name"
// @Success 200 {object} UniqueValuesResult
// @Failure 400 {string} string "Unknown field"
// @Failure 500 {string} string "Internal error"
// @Router /dashboard/unique [get]
func UniqueValuesHandler(w http.ResponseWriter, r *http.Request) {
	field, err := fieldParam(r.URL.Query())
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	assets, ok := loadAssets(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, UniqueValuesResult{Field: field, Values: metrics.UniqueValues(assets, field)})
}

// NetworkHandler godoc
// @Summary Location kind and IP assignment breakdown
// @Tags dashboard
// @Produce json
// @Success 200 {object} metrics.Network
// @Failure 500 {string} string "Internal error"
// @Router /dashboard/network [get]
func NetworkHandler(w http.ResponseWriter, r *http.Request) {
	assets, ok := loadAssets(w)
	if !ok {
		return
	}
	catalog, err := catalogRepo.Get()
	if err != nil {
		log.Error("load catalog", zap.Error(err))
		http.Error(w, "could not fetch catalog", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, metrics.NetworkSummary(assets, catalog))
}

// RecentHandler godoc
// @Summary Recently added assets
// @Tags dashboard
// @Produce json
// @Param n query int false "Number of assets, defaults to 5"
// @Success 200 {array} models.Asset
// @Failure 400 {string} string "Invalid query"
// @Failure 500 {string} string "Internal error"
// @Router /dashboard/recent [get]
func RecentHandler(w http.ResponseWriter, r *http.Request) {
	n, ok := countParam(r, "n", defaultRecent)
	if !ok {
		http.Error(w, "n must be zero or positive", http.StatusBadRequest)
		return
	}
	assets, ok := loadAssets(w)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, metrics.Recent(assets, n))
}
