package ports

import (
	"context"
	"time"

	"planora/contexts/vendor-marketplace/vendor-directory-service/domain/entities"
	contractsv1 "planora/contracts/gen/events/v1"
)

type VendorRepository interface {
	CreateVendor(ctx context.Context, vendor entities.VendorProfile) error
	GetVendor(ctx context.Context, vendorID string) (entities.VendorProfile, error)
	ListVendors(ctx context.Context, vendorType string) ([]entities.VendorProfile, error)
}

// BookingApplication carries one confirmed booking into the dashboard
// projection.
type BookingApplication struct {
	VendorID  string
	Amount    float64
	BookedAt  time.Time
	AppliedAt time.Time
}

type DashboardRepository interface {
	GetDashboard(ctx context.Context, vendorID string) (entities.Dashboard, error)
	ApplyConfirmedBooking(ctx context.Context, booking BookingApplication) error
}

// EventDedupStore reserves consumed event IDs so a redelivered
// booking.confirmed event never double-counts into the projection.
type EventDedupStore interface {
	ReserveEvent(ctx context.Context, eventID string, payloadHash string, expiresAt time.Time) (alreadyProcessed bool, err error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

type EventEnvelope = contractsv1.Envelope

type EventSubscriber interface {
	Subscribe(ctx context.Context, topic string, consumerGroup string, handler func(context.Context, EventEnvelope) error) error
}
