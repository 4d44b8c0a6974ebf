package application

import (
	"context"
	"log/slog"
	"strings"

	"planora/contexts/vendor-marketplace/vendor-directory-service/domain/entities"
	domainerrors "planora/contexts/vendor-marketplace/vendor-directory-service/domain/errors"
	"planora/contexts/vendor-marketplace/vendor-directory-service/ports"
)

type Service struct {
	Vendors     ports.VendorRepository
	Dashboards  ports.DashboardRepository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

type RegisterVendorCommand struct {
	OwnerUserID string
	Name        string
	VendorType  string
	Description string
	Location    string
	PriceRange  string
	Contact     string
}

func (s Service) RegisterVendor(ctx context.Context, cmd RegisterVendorCommand) (entities.VendorProfile, error) {
	now := s.Clock.Now().UTC()
	vendorID, err := s.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.VendorProfile{}, err
	}

	vendor := entities.VendorProfile{
		VendorID:    vendorID,
		OwnerUserID: strings.TrimSpace(cmd.OwnerUserID),
		Name:        strings.TrimSpace(cmd.Name),
		VendorType:  strings.ToLower(strings.TrimSpace(cmd.VendorType)),
		Description: strings.TrimSpace(cmd.Description),
		Location:    strings.TrimSpace(cmd.Location),
		PriceRange:  strings.TrimSpace(cmd.PriceRange),
		Contact:     strings.TrimSpace(cmd.Contact),
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if !entities.IsValidVendorType(vendor.VendorType) {
		return entities.VendorProfile{}, domainerrors.ErrInvalidVendorType
	}
	if !vendor.ValidateBasics() {
		return entities.VendorProfile{}, domainerrors.ErrInvalidVendorInput
	}

	if err := s.Vendors.CreateVendor(ctx, vendor); err != nil {
		return entities.VendorProfile{}, err
	}

	resolveLogger(s.Logger).Info("vendor registered",
		"event", "vendor_registered",
		"module", "vendor-marketplace/vendor-directory-service",
		"layer", "application",
		"vendor_id", vendor.VendorID,
		"vendor_type", vendor.VendorType,
	)
	return vendor, nil
}

func (s Service) GetVendor(ctx context.Context, vendorID string) (entities.VendorProfile, error) {
	if strings.TrimSpace(vendorID) == "" {
		return entities.VendorProfile{}, domainerrors.ErrInvalidVendorInput
	}
	return s.Vendors.GetVendor(ctx, strings.TrimSpace(vendorID))
}

func (s Service) ListVendors(ctx context.Context, vendorType string) ([]entities.VendorProfile, error) {
	vendorType = strings.ToLower(strings.TrimSpace(vendorType))
	if vendorType != "" && !entities.IsValidVendorType(vendorType) {
		return nil, domainerrors.ErrInvalidVendorType
	}
	return s.Vendors.ListVendors(ctx, vendorType)
}

// GetDashboard verifies the vendor exists before reading the projection so
// an unknown vendor ID surfaces as not found rather than an empty dashboard.
func (s Service) GetDashboard(ctx context.Context, vendorID string) (entities.Dashboard, error) {
	vendor, err := s.GetVendor(ctx, vendorID)
	if err != nil {
		return entities.Dashboard{}, err
	}
	return s.Dashboards.GetDashboard(ctx, vendor.VendorID)
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default()
}
