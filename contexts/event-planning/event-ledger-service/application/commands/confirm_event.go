package commands

import (
	"context"
	"log/slog"
	"strings"
	"time"

	application "planora/contexts/event-planning/event-ledger-service/application"
	"planora/contexts/event-planning/event-ledger-service/domain/entities"
	domainerrors "planora/contexts/event-planning/event-ledger-service/domain/errors"
	"planora/contexts/event-planning/event-ledger-service/ports"
)

type ConfirmEventCommand struct {
	CustomerID string
	EventID    string
	ActorID    string
	Vendor     *entities.VendorAssignment
	TotalCost  *float64
	Reason     string
}

type ConfirmEventUseCase struct {
	Ledger      ports.LedgerRepository
	History     ports.HistoryRepository
	Outbox      ports.OutboxWriter
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

// Execute moves a draft booking to confirmed, recording the vendor
// assignment agreed at confirmation time.
func (uc ConfirmEventUseCase) Execute(ctx context.Context, cmd ConfirmEventCommand) (entities.CustomerEvent, error) {
	logger := application.ResolveLogger(uc.Logger)
	event, err := uc.Ledger.GetEvent(ctx, strings.TrimSpace(cmd.CustomerID), strings.TrimSpace(cmd.EventID))
	if err != nil {
		return entities.CustomerEvent{}, err
	}
	if !event.CanConfirm() {
		return entities.CustomerEvent{}, domainerrors.RejectTransition("confirm", string(event.Status))
	}

	now := uc.Clock.Now().UTC()
	from := event.Status
	event.Status = entities.EventStatusConfirmed
	event.UpdatedAt = now
	if cmd.Vendor != nil {
		vendor := *cmd.Vendor
		event.Vendor = &vendor
	}
	if cmd.TotalCost != nil && *cmd.TotalCost >= 0 {
		event.TotalCost = *cmd.TotalCost
	}

	if err := uc.Ledger.UpdateEvent(ctx, event); err != nil {
		return entities.CustomerEvent{}, err
	}
	if err := uc.appendHistory(ctx, event, from, cmd); err != nil {
		return entities.CustomerEvent{}, err
	}
	if err := uc.appendOutbox(ctx, event, now); err != nil {
		return entities.CustomerEvent{}, err
	}

	logger.Info("customer event confirmed",
		"event", "ledger_event_confirmed",
		"module", "event-planning/event-ledger-service",
		"layer", "application",
		"event_id", event.EventID,
		"customer_id", event.CustomerID,
		"from_status", string(from),
		"to_status", string(event.Status),
	)
	return event, nil
}

func (uc ConfirmEventUseCase) appendHistory(
	ctx context.Context,
	event entities.CustomerEvent,
	from entities.EventStatus,
	cmd ConfirmEventCommand,
) error {
	historyID, err := uc.IDGenerator.NewID(ctx)
	if err != nil {
		return err
	}
	actor := strings.TrimSpace(cmd.ActorID)
	if actor == "" {
		actor = event.CustomerID
	}
	return uc.History.AppendState(ctx, entities.StateHistory{
		HistoryID:    historyID,
		EventID:      event.EventID,
		FromStatus:   from,
		ToStatus:     event.Status,
		ChangedBy:    actor,
		ChangeReason: strings.TrimSpace(cmd.Reason),
		CreatedAt:    event.UpdatedAt,
	})
}

func (uc ConfirmEventUseCase) appendOutbox(ctx context.Context, event entities.CustomerEvent, now time.Time) error {
	if uc.Outbox == nil {
		return nil
	}
	outboxEventID, err := uc.IDGenerator.NewID(ctx)
	if err != nil {
		return err
	}
	data := map[string]any{
		"event_id":    event.EventID,
		"customer_id": event.CustomerID,
		"status":      string(event.Status),
		"total_cost":  event.TotalCost,
	}
	if event.Vendor != nil {
		data["vendor_id"] = event.Vendor.VendorID
		data["vendor_name"] = event.Vendor.VendorName
	}
	envelope, err := newBookingEnvelope(outboxEventID, "booking.confirmed", event.EventID, now, data)
	if err != nil {
		return err
	}
	return uc.Outbox.AppendOutbox(ctx, envelope)
}
