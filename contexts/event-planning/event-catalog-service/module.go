package eventcatalogservice

import (
	"log/slog"

	httpadapter "planora/contexts/event-planning/event-catalog-service/adapters/http"
	"planora/contexts/event-planning/event-catalog-service/adapters/memory"
	"planora/contexts/event-planning/event-catalog-service/application"
	"planora/contexts/event-planning/event-catalog-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Service application.Service
	Store   *memory.Store
}

type Dependencies struct {
	Repo   ports.Repository
	Logger *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Repo:   deps.Repo,
		Logger: deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service: service,
	}
}

func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Repo:   store,
		Logger: logger,
	})
	module.Store = store
	return module
}
