package queries

import (
	"context"
	"log/slog"
	"strings"

	"planora/contexts/event-planning/event-ledger-service/domain/entities"
	"planora/contexts/event-planning/event-ledger-service/ports"
)

type GetEventUseCase struct {
	Ledger ports.LedgerRepository
	Logger *slog.Logger
}

func (uc GetEventUseCase) Execute(ctx context.Context, customerID string, eventID string) (entities.CustomerEvent, error) {
	return uc.Ledger.GetEvent(ctx, strings.TrimSpace(customerID), strings.TrimSpace(eventID))
}
