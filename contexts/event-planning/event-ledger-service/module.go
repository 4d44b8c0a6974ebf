package eventledgerservice

import (
	"log/slog"
	"time"

	httpadapter "planora/contexts/event-planning/event-ledger-service/adapters/http"
	"planora/contexts/event-planning/event-ledger-service/adapters/memory"
	"planora/contexts/event-planning/event-ledger-service/application/commands"
	"planora/contexts/event-planning/event-ledger-service/application/queries"
	"planora/contexts/event-planning/event-ledger-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Store   *memory.Store
}

type Dependencies struct {
	Ledger         ports.LedgerRepository
	History        ports.HistoryRepository
	Idempotency    ports.IdempotencyStore
	Outbox         ports.OutboxWriter
	Clock          ports.Clock
	IDGenerator    ports.IDGenerator
	IdempotencyTTL time.Duration
	Logger         *slog.Logger
}

func NewModule(deps Dependencies) Module {
	createEvent := commands.CreateEventUseCase{
		Ledger:         deps.Ledger,
		History:        deps.History,
		Idempotency:    deps.Idempotency,
		Outbox:         deps.Outbox,
		Clock:          deps.Clock,
		IDGenerator:    deps.IDGenerator,
		IdempotencyTTL: deps.IdempotencyTTL,
		Logger:         deps.Logger,
	}
	updateEvent := commands.UpdateEventUseCase{
		Ledger: deps.Ledger,
		Clock:  deps.Clock,
		Logger: deps.Logger,
	}
	confirmEvent := commands.ConfirmEventUseCase{
		Ledger:      deps.Ledger,
		History:     deps.History,
		Outbox:      deps.Outbox,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}
	cancelEvent := commands.CancelEventUseCase{
		Ledger:      deps.Ledger,
		History:     deps.History,
		Outbox:      deps.Outbox,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}
	deleteEvent := commands.DeleteEventUseCase{
		Ledger: deps.Ledger,
		Logger: deps.Logger,
	}

	getEvent := queries.GetEventUseCase{
		Ledger: deps.Ledger,
		Logger: deps.Logger,
	}
	listEvents := queries.ListEventsUseCase{
		Ledger: deps.Ledger,
		Logger: deps.Logger,
	}
	listHistory := queries.ListHistoryUseCase{
		History: deps.History,
		Ledger:  deps.Ledger,
		Logger:  deps.Logger,
	}

	return Module{
		Handler: httpadapter.Handler{
			CreateEvent:  createEvent,
			UpdateEvent:  updateEvent,
			ConfirmEvent: confirmEvent,
			CancelEvent:  cancelEvent,
			DeleteEvent:  deleteEvent,
			GetEvent:     getEvent,
			ListEvents:   listEvents,
			ListHistory:  listHistory,
			Logger:       deps.Logger,
		},
	}
}

func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Ledger:         store,
		History:        store,
		Idempotency:    store,
		Outbox:         store,
		Clock:          store,
		IDGenerator:    store,
		IdempotencyTTL: 24 * time.Hour,
		Logger:         logger,
	})
	module.Store = store
	return module
}
