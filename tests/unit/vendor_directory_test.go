package unit

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	contractsv1 "planora/contracts/gen/events/v1"
	vendordirectoryservice "planora/contexts/vendor-marketplace/vendor-directory-service"
	domainerrors "planora/contexts/vendor-marketplace/vendor-directory-service/domain/errors"
	httptransport "planora/contexts/vendor-marketplace/vendor-directory-service/transport/http"
)

func registerVendor(t *testing.T, module vendordirectoryservice.Module, owner string, name string, vendorType string) httptransport.VendorDTO {
	t.Helper()
	resp, err := module.Handler.RegisterVendorHandler(context.Background(), owner, httptransport.RegisterVendorRequest{
		Name:       name,
		VendorType: vendorType,
		Location:   "Pune",
		PriceRange: "$$",
		Contact:    "hello@example.com",
	})
	if err != nil {
		t.Fatalf("register vendor failed: %v", err)
	}
	return resp.Vendor
}

func TestListVendorsFiltersByType(t *testing.T) {
	module := vendordirectoryservice.NewInMemoryModule(nil)
	registerVendor(t, module, "user-1", "Vino Catering", "catering")
	registerVendor(t, module, "user-2", "Lakeside Hall", "venues")
	registerVendor(t, module, "user-3", "Spice Route", "catering")

	all, err := module.Handler.ListVendorsHandler(context.Background(), "")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all.Items) != 3 {
		t.Fatalf("expected three vendors, got %d", len(all.Items))
	}

	catering, err := module.Handler.ListVendorsHandler(context.Background(), "catering")
	if err != nil {
		t.Fatalf("filtered list failed: %v", err)
	}
	if len(catering.Items) != 2 {
		t.Fatalf("expected two catering vendors, got %d", len(catering.Items))
	}
	for _, item := range catering.Items {
		if item.VendorType != "catering" {
			t.Fatalf("unexpected vendor type %q in filtered listing", item.VendorType)
		}
	}
}

func TestRegisterRejectsUnknownVendorType(t *testing.T) {
	module := vendordirectoryservice.NewInMemoryModule(nil)

	_, err := module.Handler.RegisterVendorHandler(context.Background(), "user-1", httptransport.RegisterVendorRequest{
		Name:       "Fortune Tellers Inc",
		VendorType: "fortune-telling",
	})
	if !errors.Is(err, domainerrors.ErrInvalidVendorType) {
		t.Fatalf("expected vendor type rejection, got %v", err)
	}

	for _, vendorType := range []string{"crafts", "catering", "photography", "decoration", "music", "venues"} {
		if _, err := module.Handler.RegisterVendorHandler(context.Background(), "user-"+vendorType, httptransport.RegisterVendorRequest{
			Name:       "Vendor " + vendorType,
			VendorType: vendorType,
		}); err != nil {
			t.Fatalf("expected %s to be a registrable vendor type, got %v", vendorType, err)
		}
	}
}

func TestDashboardForUnknownVendor(t *testing.T) {
	module := vendordirectoryservice.NewInMemoryModule(nil)

	_, err := module.Handler.DashboardHandler(context.Background(), "ven-missing")
	if !errors.Is(err, domainerrors.ErrVendorNotFound) {
		t.Fatalf("expected vendor not found, got %v", err)
	}
}

func TestDashboardFoldsConfirmedBookings(t *testing.T) {
	module := vendordirectoryservice.NewInMemoryModule(nil)
	ctx := context.Background()
	vendor := registerVendor(t, module, "user-1", "Vino Catering", "catering")

	for i, booking := range []struct {
		eventID string
		amount  float64
	}{
		{"evt-1", 1200},
		{"evt-2", 800},
	} {
		data, err := json.Marshal(map[string]any{
			"event_id":    booking.eventID,
			"customer_id": "cust-1",
			"vendor_id":   vendor.VendorID,
			"total_cost":  booking.amount,
		})
		if err != nil {
			t.Fatalf("marshal payload failed: %v", err)
		}
		envelope := contractsv1.Envelope{
			EventID:    "env-" + booking.eventID,
			EventType:  "booking.confirmed",
			OccurredAt: time.Date(2026, 8, 1+i, 12, 0, 0, 0, time.UTC),
			Data:       data,
		}
		if err := module.Consumer.Handle(ctx, envelope); err != nil {
			t.Fatalf("consume failed: %v", err)
		}
		// Redelivery of the same envelope must not double count.
		if err := module.Consumer.Handle(ctx, envelope); err != nil {
			t.Fatalf("redelivery failed: %v", err)
		}
	}

	dashboard, err := module.Handler.DashboardHandler(ctx, vendor.VendorID)
	if err != nil {
		t.Fatalf("dashboard failed: %v", err)
	}
	if dashboard.ConfirmedBookings != 2 {
		t.Fatalf("expected two confirmed bookings, got %d", dashboard.ConfirmedBookings)
	}
	if dashboard.TotalRevenue != 2000 {
		t.Fatalf("expected revenue 2000, got %v", dashboard.TotalRevenue)
	}
	if dashboard.LastBookingAt != "2026-08-02T12:00:00Z" {
		t.Fatalf("unexpected last booking time %q", dashboard.LastBookingAt)
	}
}
