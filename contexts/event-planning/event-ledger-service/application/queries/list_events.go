package queries

import (
	"context"
	"log/slog"
	"strings"

	"planora/contexts/event-planning/event-ledger-service/domain/entities"
	"planora/contexts/event-planning/event-ledger-service/ports"
)

type ListEventsUseCase struct {
	Ledger ports.LedgerRepository
	Logger *slog.Logger
}

// Execute returns the customer's bookings in insertion order; the ledger
// never re-sorts on mutation.
func (uc ListEventsUseCase) Execute(ctx context.Context, customerID string) ([]entities.CustomerEvent, error) {
	return uc.Ledger.ListEvents(ctx, strings.TrimSpace(customerID))
}

type ListHistoryUseCase struct {
	History ports.HistoryRepository
	Ledger  ports.LedgerRepository
	Logger  *slog.Logger
}

func (uc ListHistoryUseCase) Execute(ctx context.Context, customerID string, eventID string) ([]entities.StateHistory, error) {
	if _, err := uc.Ledger.GetEvent(ctx, strings.TrimSpace(customerID), strings.TrimSpace(eventID)); err != nil {
		return nil, err
	}
	return uc.History.ListHistory(ctx, strings.TrimSpace(eventID))
}
