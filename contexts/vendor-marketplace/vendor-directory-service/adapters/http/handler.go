package httpadapter

import (
	"context"
	"log/slog"
	"time"

	"planora/contexts/vendor-marketplace/vendor-directory-service/application"
	"planora/contexts/vendor-marketplace/vendor-directory-service/domain/entities"
	httptransport "planora/contexts/vendor-marketplace/vendor-directory-service/transport/http"
)

type Handler struct {
	Service application.Service
	Logger  *slog.Logger
}

func (h Handler) RegisterVendorHandler(
	ctx context.Context,
	ownerUserID string,
	req httptransport.RegisterVendorRequest,
) (httptransport.RegisterVendorResponse, error) {
	vendor, err := h.Service.RegisterVendor(ctx, application.RegisterVendorCommand{
		OwnerUserID: ownerUserID,
		Name:        req.Name,
		VendorType:  req.VendorType,
		Description: req.Description,
		Location:    req.Location,
		PriceRange:  req.PriceRange,
		Contact:     req.Contact,
	})
	if err != nil {
		return httptransport.RegisterVendorResponse{}, err
	}
	return httptransport.RegisterVendorResponse{Vendor: mapVendor(vendor)}, nil
}

func (h Handler) GetVendorHandler(ctx context.Context, vendorID string) (httptransport.GetVendorResponse, error) {
	vendor, err := h.Service.GetVendor(ctx, vendorID)
	if err != nil {
		return httptransport.GetVendorResponse{}, err
	}
	return httptransport.GetVendorResponse{Vendor: mapVendor(vendor)}, nil
}

func (h Handler) ListVendorsHandler(ctx context.Context, vendorType string) (httptransport.ListVendorsResponse, error) {
	items, err := h.Service.ListVendors(ctx, vendorType)
	if err != nil {
		return httptransport.ListVendorsResponse{}, err
	}
	result := make([]httptransport.VendorDTO, 0, len(items))
	for _, item := range items {
		result = append(result, mapVendor(item))
	}
	return httptransport.ListVendorsResponse{Items: result}, nil
}

func (h Handler) DashboardHandler(ctx context.Context, vendorID string) (httptransport.DashboardResponse, error) {
	dashboard, err := h.Service.GetDashboard(ctx, vendorID)
	if err != nil {
		return httptransport.DashboardResponse{}, err
	}
	resp := httptransport.DashboardResponse{
		VendorID:          dashboard.VendorID,
		ConfirmedBookings: dashboard.ConfirmedBookings,
		TotalRevenue:      dashboard.TotalRevenue,
	}
	if dashboard.LastBookingAt != nil {
		resp.LastBookingAt = dashboard.LastBookingAt.UTC().Format(time.RFC3339)
	}
	return resp, nil
}

func mapVendor(item entities.VendorProfile) httptransport.VendorDTO {
	return httptransport.VendorDTO{
		VendorID:    item.VendorID,
		OwnerUserID: item.OwnerUserID,
		Name:        item.Name,
		VendorType:  item.VendorType,
		Description: item.Description,
		Location:    item.Location,
		PriceRange:  item.PriceRange,
		Contact:     item.Contact,
		CreatedAt:   item.CreatedAt.Format(time.RFC3339),
	}
}
