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

type UpdateEventCommand struct {
	CustomerID  string
	EventID     string
	EventTypeID *string
	Title       *string
	Description *string
	Date        *string
	Time        *string
	Location    *string
	GuestCount  *int
	TotalCost   *float64
}

type UpdateEventUseCase struct {
	Ledger ports.LedgerRepository
	Clock  ports.Clock
	Logger *slog.Logger
}

// Execute replaces the mutable fields of a live booking. Completed and
// cancelled events are finalized; the guard rejects the edit and leaves the
// record untouched. Status is never changed by an edit.
func (uc UpdateEventUseCase) Execute(ctx context.Context, cmd UpdateEventCommand) (entities.CustomerEvent, error) {
	logger := application.ResolveLogger(uc.Logger)
	event, err := uc.Ledger.GetEvent(ctx, strings.TrimSpace(cmd.CustomerID), strings.TrimSpace(cmd.EventID))
	if err != nil {
		return entities.CustomerEvent{}, err
	}
	if !event.CanEdit() {
		return entities.CustomerEvent{}, domainerrors.RejectTransition("edit", string(event.Status))
	}

	if cmd.EventTypeID != nil {
		event.EventTypeID = strings.TrimSpace(*cmd.EventTypeID)
	}
	if cmd.Title != nil {
		event.Title = strings.TrimSpace(*cmd.Title)
	}
	if cmd.Description != nil {
		event.Description = strings.TrimSpace(*cmd.Description)
	}
	if cmd.Date != nil {
		event.Date = strings.TrimSpace(*cmd.Date)
	}
	if cmd.Time != nil {
		event.Time = strings.TrimSpace(*cmd.Time)
	}
	if cmd.Location != nil {
		event.Location = strings.TrimSpace(*cmd.Location)
	}
	if cmd.GuestCount != nil {
		event.GuestCount = entities.CoerceGuestCount(*cmd.GuestCount)
	}
	if cmd.TotalCost != nil && *cmd.TotalCost >= 0 {
		event.TotalCost = *cmd.TotalCost
	}
	event.UpdatedAt = uc.Clock.Now().UTC()

	if !event.ValidateBasics() {
		return entities.CustomerEvent{}, domainerrors.ErrInvalidEventInput
	}
	if err := uc.Ledger.UpdateEvent(ctx, event); err != nil {
		return entities.CustomerEvent{}, err
	}

	logger.Info("customer event updated",
		"event", "ledger_event_updated",
		"module", "event-planning/event-ledger-service",
		"layer", "application",
		"event_id", event.EventID,
		"customer_id", event.CustomerID,
		"status", string(event.Status),
	)
	return event, nil
}
