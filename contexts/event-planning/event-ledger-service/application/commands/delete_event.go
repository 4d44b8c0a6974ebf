package commands

import (
	"context"
	"log/slog"
	"strings"

	application "planora/contexts/event-planning/event-ledger-service/application"
	domainerrors "planora/contexts/event-planning/event-ledger-service/domain/errors"
	"planora/contexts/event-planning/event-ledger-service/ports"
)

type DeleteEventCommand struct {
	CustomerID string
	EventID    string
}

type DeleteEventUseCase struct {
	Ledger ports.LedgerRepository
	Logger *slog.Logger
}

// Execute removes a booking from the ledger. A confirmed booking is an
// active commitment and must be cancelled first; the caller is expected to
// have gathered its own user confirmation before invoking delete.
func (uc DeleteEventUseCase) Execute(ctx context.Context, cmd DeleteEventCommand) error {
	logger := application.ResolveLogger(uc.Logger)
	event, err := uc.Ledger.GetEvent(ctx, strings.TrimSpace(cmd.CustomerID), strings.TrimSpace(cmd.EventID))
	if err != nil {
		return err
	}
	if !event.CanDelete() {
		return domainerrors.RejectTransition("delete", string(event.Status))
	}

	if err := uc.Ledger.DeleteEvent(ctx, event.CustomerID, event.EventID); err != nil {
		return err
	}

	logger.Info("customer event deleted",
		"event", "ledger_event_deleted",
		"module", "event-planning/event-ledger-service",
		"layer", "application",
		"event_id", event.EventID,
		"customer_id", event.CustomerID,
		"status", string(event.Status),
	)
	return nil
}
