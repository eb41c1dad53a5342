package handlers

import (
	"encoding/csv"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rogerio-castellano/asset-inventory/internal/metrics"
	"go.uber.org/zap"
)

// ExportAssetsHandler godoc
// @Summary Export assets as CSV or JSON
// @Description Applies the same filter and sort keys as /assets/search, without pagination
// @Tags assets
// @Produce text/csv
// @Produce json
// @Param format query string false "Export format (csv|json)"
// @Param location query string false "Exact location"
// @Param department query string false "Exact department"
// @Param brand query string false "Exact brand"
// @Param status query string false "Exact status"
// @Param q query string false "Text searched in full name, serial number and brand"
// @Param sort query string false "Field to sort by"
// @Param dir query string false "Sort direction (asc|desc)"
// @Success 200 {file} file
// @Failure 400 {string} string "Invalid query"
// @Failure 500 {string} string "Internal error"
// @Router /assets/export [get]
func ExportAssetsHandler(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	format := strings.ToLower(q.Get("format"))
	if format == "" {
		format = "csv"
	}
	if format != "csv" && format != "json" {
		http.Error(w, "format must be csv or json", http.StatusBadRequest)
		return
	}

	view, status, msg := assetView(q.Get("sort"), q.Get("dir"), filterFromQuery(q))
	if status != http.StatusOK {
		http.Error(w, msg, status)
		return
	}

	filename := fmt.Sprintf("inventario_%s.%s", time.Now().Format("20060102"), format)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))

	if format == "json" {
		writeJSON(w, http.StatusOK, view)
		return
	}

	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.WriteHeader(http.StatusOK)

	header := metrics.Fields()
	cw := csv.NewWriter(w)
	if err := cw.Write(header); err != nil {
		log.Warn("export header", zap.Error(err))
		return
	}
	row := make([]string, len(header))
	for _, a := range view {
		for i, name := range header {
			row[i] = metrics.Value(a, name)
		}
		if err := cw.Write(row); err != nil {
			log.Warn("export row", zap.Error(err))
			return
		}
	}
	cw.Flush()
	if err := cw.Error(); err != nil {
		log.Warn("export flush", zap.Error(err))
	}
}
