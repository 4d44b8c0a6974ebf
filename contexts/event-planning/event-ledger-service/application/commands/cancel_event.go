package commands

import (
	"context"
	"log/slog"
	"strings"

	application "planora/contexts/event-planning/event-ledger-service/application"
	"planora/contexts/event-planning/event-ledger-service/domain/entities"
	domainerrors "planora/contexts/event-planning/event-ledger-service/domain/errors"
	"planora/contexts/event-planning/event-ledger-service/ports"
)

type CancelEventCommand struct {
	CustomerID string
	EventID    string
	Reason     string
}

type CancelEventUseCase struct {
	Ledger      ports.LedgerRepository
	History     ports.HistoryRepository
	Outbox      ports.OutboxWriter
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

// Execute cancels a confirmed booking. Cancel is only defined from
// confirmed: drafts are removed via delete and terminal events stay put.
func (uc CancelEventUseCase) Execute(ctx context.Context, cmd CancelEventCommand) (entities.CustomerEvent, error) {
	logger := application.ResolveLogger(uc.Logger)
	event, err := uc.Ledger.GetEvent(ctx, strings.TrimSpace(cmd.CustomerID), strings.TrimSpace(cmd.EventID))
	if err != nil {
		return entities.CustomerEvent{}, err
	}
	if !event.CanCancel() {
		return entities.CustomerEvent{}, domainerrors.RejectTransition("cancel", string(event.Status))
	}

	now := uc.Clock.Now().UTC()
	from := event.Status
	event.Status = entities.EventStatusCancelled
	event.UpdatedAt = now

	if err := uc.Ledger.UpdateEvent(ctx, event); err != nil {
		return entities.CustomerEvent{}, err
	}

	historyID, err := uc.IDGenerator.NewID(ctx)
	if err != nil {
		return entities.CustomerEvent{}, err
	}
	if err := uc.History.AppendState(ctx, entities.StateHistory{
		HistoryID:    historyID,
		EventID:      event.EventID,
		FromStatus:   from,
		ToStatus:     event.Status,
		ChangedBy:    event.CustomerID,
		ChangeReason: strings.TrimSpace(cmd.Reason),
		CreatedAt:    now,
	}); err != nil {
		return entities.CustomerEvent{}, err
	}

	if uc.Outbox != nil {
		outboxEventID, err := uc.IDGenerator.NewID(ctx)
		if err != nil {
			return entities.CustomerEvent{}, err
		}
		data := map[string]any{
			"event_id":    event.EventID,
			"customer_id": event.CustomerID,
			"status":      string(event.Status),
			"reason":      strings.TrimSpace(cmd.Reason),
		}
		if event.Vendor != nil {
			data["vendor_id"] = event.Vendor.VendorID
		}
		envelope, err := newBookingEnvelope(outboxEventID, "booking.cancelled", event.EventID, now, data)
		if err != nil {
			return entities.CustomerEvent{}, err
		}
		if err := uc.Outbox.AppendOutbox(ctx, envelope); err != nil {
			return entities.CustomerEvent{}, err
		}
	}

	logger.Info("customer event cancelled",
		"event", "ledger_event_cancelled",
		"module", "event-planning/event-ledger-service",
		"layer", "application",
		"event_id", event.EventID,
		"customer_id", event.CustomerID,
		"from_status", string(from),
		"to_status", string(event.Status),
	)
	return event, nil
}
