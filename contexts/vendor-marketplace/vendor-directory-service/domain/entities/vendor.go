package entities

import (
	"strings"
	"time"
)

const (
	VendorTypeCrafts      = "crafts"
	VendorTypeCatering    = "catering"
	VendorTypePhotography = "photography"
	VendorTypeDecoration  = "decoration"
	VendorTypeMusic       = "music"
	VendorTypeVenues      = "venues"
)

func IsValidVendorType(vendorType string) bool {
	switch vendorType {
	case VendorTypeCrafts, VendorTypeCatering, VendorTypePhotography,
		VendorTypeDecoration, VendorTypeMusic, VendorTypeVenues:
		return true
	default:
		return false
	}
}

type VendorProfile struct {
	VendorID    string
	OwnerUserID string
	Name        string
	VendorType  string
	Description string
	Location    string
	PriceRange  string
	Contact     string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

func (v VendorProfile) ValidateBasics() bool {
	return strings.TrimSpace(v.Name) != "" &&
		strings.TrimSpace(v.OwnerUserID) != "" &&
		IsValidVendorType(v.VendorType)
}

// Dashboard is a projection maintained from confirmed bookings. It is
// eventually consistent with the ledger: counters move when the
// booking.confirmed event is consumed, not when the booking is written.
type Dashboard struct {
	VendorID          string
	ConfirmedBookings int
	TotalRevenue      float64
	LastBookingAt     *time.Time
}
