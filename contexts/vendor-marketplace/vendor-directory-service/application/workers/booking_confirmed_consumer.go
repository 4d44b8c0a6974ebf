package workers

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"log/slog"
	"strings"
	"time"

	"planora/contexts/vendor-marketplace/vendor-directory-service/ports"
)

// BookingConfirmedConsumer folds booking.confirmed events from the event
// ledger into the vendor dashboard projection.
type BookingConfirmedConsumer struct {
	Dedup      ports.EventDedupStore
	Dashboards ports.DashboardRepository
	Clock      ports.Clock
	DedupTTL   time.Duration
	Logger     *slog.Logger
}

type bookingConfirmedPayload struct {
	EventID    string  `json:"event_id"`
	CustomerID string  `json:"customer_id"`
	VendorID   string  `json:"vendor_id"`
	TotalCost  float64 `json:"total_cost"`
}

func (c BookingConfirmedConsumer) Handle(ctx context.Context, event ports.EventEnvelope) error {
	now := time.Now().UTC()
	if c.Clock != nil {
		now = c.Clock.Now().UTC()
	}

	alreadyProcessed, err := c.Dedup.ReserveEvent(
		ctx,
		event.EventID,
		hashPayload(event.Data),
		now.Add(c.dedupTTL()),
	)
	if err != nil || alreadyProcessed {
		return err
	}

	var payload bookingConfirmedPayload
	if err := json.Unmarshal(event.Data, &payload); err != nil {
		return err
	}
	// Bookings confirmed without a vendor assignment carry no vendor ID and
	// have no dashboard to update.
	if strings.TrimSpace(payload.VendorID) == "" {
		return nil
	}

	if err := c.Dashboards.ApplyConfirmedBooking(ctx, ports.BookingApplication{
		VendorID:  strings.TrimSpace(payload.VendorID),
		Amount:    payload.TotalCost,
		BookedAt:  event.OccurredAt.UTC(),
		AppliedAt: now,
	}); err != nil {
		return err
	}

	if c.Logger != nil {
		c.Logger.Info("confirmed booking applied to dashboard",
			"event", "vendor_dashboard_booking_applied",
			"module", "vendor-marketplace/vendor-directory-service",
			"layer", "application",
			"vendor_id", payload.VendorID,
			"booking_event_id", payload.EventID,
		)
	}
	return nil
}

func (c BookingConfirmedConsumer) dedupTTL() time.Duration {
	if c.DedupTTL <= 0 {
		return 7 * 24 * time.Hour
	}
	return c.DedupTTL
}

func hashPayload(payload []byte) string {
	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}
