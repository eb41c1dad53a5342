package handlers

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/rogerio-castellano/asset-inventory/internal/metrics"
	"github.com/rogerio-castellano/asset-inventory/internal/models"
	repo "github.com/rogerio-castellano/asset-inventory/internal/repo"
	"go.uber.org/zap"
)

const maxImportBytes = 10 << 20

// parseCSV reads an asset sheet whose header row names asset fields, in any
// order and case. Unknown columns are ignored and missing ones stay empty.
func parseCSV(r io.Reader) ([]models.Asset, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	headers, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("invalid CSV header")
	}

	known := map[string]string{}
	for _, name := range metrics.Fields() {
		known[strings.ToLower(name)] = name
	}
	columns := make([]string, len(headers))
	found := false
	for i, h := range headers {
		h = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(h, "\ufeff")))
		columns[i] = known[h]
		found = found || columns[i] != ""
	}
	if !found {
		return nil, errors.New("CSV header names no asset field")
	}

	var rows []models.Asset
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("CSV read error: %v", err)
		}

		var a models.Asset
		for i, value := range record {
			if i < len(columns) && columns[i] != "" {
				setField(&a, columns[i], value)
			}
		}
		rows = append(rows, a.Normalize())
	}
	return rows, nil
}

func setField(a *models.Asset, name, value string) {
	switch name {
	case "resguardo":
		a.Resguardo = value
	case "fullName":
		a.FullName = value
	case "department":
		a.Department = value
	case "position":
		a.Position = value
	case "email":
		a.Email = value
	case "extension":
		a.Extension = value
	case "location":
		a.Location = value
	case "deviceType":
		a.DeviceType = value
	case "brand":
		a.Brand = value
	case "model":
		a.Model = value
	case "pcName":
		a.PCName = value
	case "serialNumber":
		a.SerialNumber = value
	case "ipAddress":
		a.IPAddress = value
	case "ipType":
		a.IPType = value
	case "status":
		a.Status = value
	case "price":
		a.Price = models.Price(models.ParsePrice(value))
	case "purchaseDate":
		a.PurchaseDate = value
	case "lastMtto":
		a.LastMtto = value
	case "nextMtto":
		a.NextMtto = value
	case "warrantyEndDate":
		a.WarrantyEndDate = value
	case "warranty":
		a.Warranty = value
	}
}

// ImportAssetsHandler godoc
// @Summary Import assets via CSV
// @Description Rows are matched to existing assets by serial number
// @Tags import
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV file"
// @Param mode query string false "Import mode (skip|update)"
// @Success 200 {object} ImportAssetsResult
// @Failure 400 {string} string "Invalid file"
// @Failure 500 {string} string "Internal error"
// @Router /assets/import [post]
// @Security BearerAuth
func ImportAssetsHandler(w http.ResponseWriter, r *http.Request) {
	mode := strings.ToLower(r.URL.Query().Get("mode"))
	if mode != "update" {
		mode = "skip" // default
	}

	r.Body = http.MaxBytesReader(w, r.Body, maxImportBytes)
	file, _, err := r.FormFile("file")
	if err != nil {
		http.Error(w, "missing file", http.StatusBadRequest)
		return
	}
	defer file.Close()

	records, err := parseCSV(file)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var imported int
	errorsList := []AssetValidationError{}

	for i, rec := range records {
		rowNum := fmt.Sprintf("row %d", i+2) // header is row 1

		if errs := validateAsset(rec); len(errs) > 0 {
			for _, e := range errs {
				errorsList = append(errorsList, AssetValidationError{Field: e.Field, Description: rowNum + ": " + e.Description})
			}
			continue
		}

		if rec.SerialNumber != "" {
			existing, err := assetRepo.GetBySerial(rec.SerialNumber)
			if err == nil {
				if mode == "skip" {
					errorsList = append(errorsList, AssetValidationError{Field: "serialNumber", Description: fmt.Sprintf("%s: asset '%s' already exists", rowNum, rec.SerialNumber)})
					continue
				}
				rec.ID = existing.ID
				if _, err := assetRepo.Update(rec); err != nil {
					errorsList = append(errorsList, AssetValidationError{Description: fmt.Sprintf("%s: failed to update '%s'", rowNum, rec.SerialNumber)})
					continue
				}
				imported++
				continue
			}
			if !errors.Is(err, repo.ErrAssetNotFound) {
				log.Error("import lookup", zap.String("serial", rec.SerialNumber), zap.Error(err))
				errorsList = append(errorsList, AssetValidationError{Description: fmt.Sprintf("%s: lookup failed", rowNum)})
				continue
			}
		}

		if _, err := assetRepo.Create(rec); err != nil {
			errorsList = append(errorsList, AssetValidationError{Description: fmt.Sprintf("%s: %v", rowNum, err)})
			continue
		}
		imported++
	}

	log.Info("assets imported", zap.String("mode", mode), zap.Int("imported", imported), zap.Int("errors", len(errorsList)))
	writeJSON(w, http.StatusOK, ImportAssetsResult{
		ImportedAssetsCount: imported,
		Errors:              errorsList,
	})
}
