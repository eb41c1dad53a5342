// Package metrics derives every count, grouping, bucket and filtered or sorted
// view shown on the inventory dashboards. All functions are pure: they never
// modify the records they receive and always return freshly allocated results.
package metrics

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/rogerio-castellano/asset-inventory/internal/models"
)

// Unspecified labels the bucket for records whose grouped field is empty.
const Unspecified = "Sin especificar"

// ErrUnknownField is the panic value for a field name that is not an asset field.
var ErrUnknownField = errors.New("unknown asset field")

type fieldKind int

const (
	kindText fieldKind = iota
	kindIP
	kindPrice
	kindDate
)

type field struct {
	kind fieldKind
	get  func(models.Asset) string
}

var fieldOrder = []string{
	"id", "resguardo", "fullName", "department", "position", "email", "extension",
	"location", "deviceType", "brand", "model", "pcName", "serialNumber", "ipAddress",
	"ipType", "status", "price", "purchaseDate", "lastMtto", "nextMtto",
	"warrantyEndDate", "warranty",
}

var fields = map[string]field{
	"id":              {kindText, func(a models.Asset) string { return a.ID }},
	"resguardo":       {kindText, func(a models.Asset) string { return a.Resguardo }},
	"fullName":        {kindText, func(a models.Asset) string { return a.FullName }},
	"department":      {kindText, func(a models.Asset) string { return a.Department }},
	"position":        {kindText, func(a models.Asset) string { return a.Position }},
	"email":           {kindText, func(a models.Asset) string { return a.Email }},
	"extension":       {kindText, func(a models.Asset) string { return a.Extension }},
	"location":        {kindText, func(a models.Asset) string { return a.Location }},
	"deviceType":      {kindText, func(a models.Asset) string { return a.DeviceType }},
	"brand":           {kindText, func(a models.Asset) string { return a.Brand }},
	"model":           {kindText, func(a models.Asset) string { return a.Model }},
	"pcName":          {kindText, func(a models.Asset) string { return a.PCName }},
	"serialNumber":    {kindText, func(a models.Asset) string { return a.SerialNumber }},
	"ipAddress":       {kindIP, func(a models.Asset) string { return a.IPAddress }},
	"ipType":          {kindText, func(a models.Asset) string { return a.IPType }},
	"status":          {kindText, func(a models.Asset) string { return a.Status }},
	"price":           {kindPrice, priceText},
	"purchaseDate":    {kindDate, func(a models.Asset) string { return a.PurchaseDate }},
	"lastMtto":        {kindDate, func(a models.Asset) string { return a.LastMtto }},
	"nextMtto":        {kindDate, func(a models.Asset) string { return a.NextMtto }},
	"warrantyEndDate": {kindDate, func(a models.Asset) string { return a.WarrantyEndDate }},
	"warranty":        {kindText, func(a models.Asset) string { return a.Warranty }},
}

// A zero price reads as empty so it groups under Unspecified.
func priceText(a models.Asset) string {
	if a.Price == 0 {
		return ""
	}
	return strconv.FormatFloat(a.Price.Float64(), 'f', -1, 64)
}

// IsField reports whether name is the JSON name of an asset field.
func IsField(name string) bool {
	_, ok := fields[name]
	return ok
}

// Fields returns every asset field name in declaration order.
func Fields() []string {
	out := make([]string, len(fieldOrder))
	copy(out, fieldOrder)
	return out
}

func mustField(name string) field {
	f, ok := fields[name]
	if !ok {
		panic(fmt.Errorf("%w: %q", ErrUnknownField, name))
	}
	return f
}

// Value returns the text of the named field, "" for unknown names. A zero
// price reads as "".
func Value(a models.Asset, name string) string {
	f, ok := fields[name]
	if !ok {
		return ""
	}
	return f.get(a)
}
