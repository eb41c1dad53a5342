package handlers

import (
	"strconv"
	"strings"

	"github.com/rogerio-castellano/asset-inventory/internal/metrics"
	"github.com/rogerio-castellano/asset-inventory/internal/models"
)

type AssetValidationError struct {
	Field       string `json:"field"`
	Description string `json:"description"`
}

// validateAsset checks the shape of the fields forms constrain. Statuses
// outside the recognized set are accepted and simply never counted by status.
func validateAsset(a models.Asset) []AssetValidationError {
	errs := []AssetValidationError{}
	if a.IPType != "" && a.IPType != models.IPTypeDHCP && a.IPType != models.IPTypeStatic {
		errs = append(errs, AssetValidationError{Field: "ipType", Description: "ipType must be DHCP or IP Fija"})
	}
	if a.IPAddress != "" && !isDottedQuad(a.IPAddress) {
		errs = append(errs, AssetValidationError{Field: "ipAddress", Description: "ipAddress must be a dotted quad"})
	}
	if a.Email != "" && !strings.Contains(a.Email, "@") {
		errs = append(errs, AssetValidationError{Field: "email", Description: "email is not valid"})
	}
	if a.Price < 0 {
		errs = append(errs, AssetValidationError{Field: "price", Description: "price cannot be negative"})
	}
	dates := []struct{ name, value string }{
		{"purchaseDate", a.PurchaseDate},
		{"lastMtto", a.LastMtto},
		{"nextMtto", a.NextMtto},
		{"warrantyEndDate", a.WarrantyEndDate},
	}
	for _, d := range dates {
		if d.value == "" {
			continue
		}
		if _, ok := metrics.ParseDate(d.value); !ok {
			errs = append(errs, AssetValidationError{Field: d.name, Description: d.name + " is not a valid date"})
		}
	}
	return errs
}

func isDottedQuad(ip string) bool {
	parts := strings.Split(ip, ".")
	if len(parts) != 4 {
		return false
	}
	for _, p := range parts {
		if p == "" || len(p) > 3 || strings.Trim(p, "0123456789") != "" {
			return false
		}
		n, err := strconv.Atoi(p)
		if err != nil || n > 255 {
			return false
		}
	}
	return true
}
