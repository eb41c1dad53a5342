package models

import (
	"slices"
	"strconv"
	"strings"
)

// Recognized asset statuses. Any other value is kept as-is but never counted
// in a named status bucket.
const (
	StatusActive      = "Activo"
	StatusMaintenance = "Mantenimiento"
	StatusRetired     = "Baja"
	StatusCancelled   = "Cancelado"
	StatusForParts    = "Para piezas"
)

// Statuses lists the recognized statuses in display order.
var Statuses = []string{StatusActive, StatusMaintenance, StatusRetired, StatusCancelled, StatusForParts}

const (
	IPTypeDHCP   = "DHCP"
	IPTypeStatic = "IP Fija"
)

// Asset is one piece of IT equipment and its assignment metadata. Only ID is
// guaranteed to be set; every other field may be empty.
type Asset struct {
	ID              string `json:"id"`
	Resguardo       string `json:"resguardo,omitempty"`
	FullName        string `json:"fullName,omitempty"`
	Department      string `json:"department,omitempty"`
	Position        string `json:"position,omitempty"`
	Email           string `json:"email,omitempty"`
	Extension       string `json:"extension,omitempty"`
	Location        string `json:"location,omitempty"`
	DeviceType      string `json:"deviceType,omitempty"`
	Brand           string `json:"brand,omitempty"`
	Model           string `json:"model,omitempty"`
	PCName          string `json:"pcName,omitempty"`
	SerialNumber    string `json:"serialNumber,omitempty"`
	IPAddress       string `json:"ipAddress,omitempty"`
	IPType          string `json:"ipType,omitempty"`
	Status          string `json:"status,omitempty"`
	Price           Price  `json:"price"`
	PurchaseDate    string `json:"purchaseDate,omitempty"`
	LastMtto        string `json:"lastMtto,omitempty"`
	NextMtto        string `json:"nextMtto,omitempty"`
	WarrantyEndDate string `json:"warrantyEndDate,omitempty"`
	Warranty        string `json:"warranty,omitempty"`
}

// IsKnownStatus reports whether s is one of the recognized statuses.
func IsKnownStatus(s string) bool {
	return slices.Contains(Statuses, s)
}

// UnderWarranty reports whether the warranty field holds a positive number of months.
func (a Asset) UnderWarranty() bool {
	months, err := strconv.ParseFloat(strings.TrimSpace(a.Warranty), 64)
	return err == nil && months > 0
}

// EffectiveIPType returns the IP assignment type, DHCP when unset.
func (a Asset) EffectiveIPType() string {
	if a.IPType == "" {
		return IPTypeDHCP
	}
	return a.IPType
}

// Normalize trims every text field and fills the IP type default.
func (a Asset) Normalize() Asset {
	for _, f := range []*string{
		&a.Resguardo, &a.FullName, &a.Department, &a.Position, &a.Email, &a.Extension,
		&a.Location, &a.DeviceType, &a.Brand, &a.Model, &a.PCName, &a.SerialNumber,
		&a.IPAddress, &a.IPType, &a.Status, &a.PurchaseDate, &a.LastMtto, &a.NextMtto,
		&a.WarrantyEndDate, &a.Warranty,
	} {
		*f = strings.TrimSpace(*f)
	}
	a.IPType = a.EffectiveIPType()
	return a
}
