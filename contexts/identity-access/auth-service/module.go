package authservice

import (
	"log/slog"

	httpadapter "planora/contexts/identity-access/auth-service/adapters/http"
	"planora/contexts/identity-access/auth-service/adapters/memory"
	"planora/contexts/identity-access/auth-service/application"
	"planora/contexts/identity-access/auth-service/ports"
)

type Module struct {
	Handler httpadapter.Handler
	Auth    ports.Authenticator
	Store   *memory.Store
}

type Dependencies struct {
	Users       ports.UserRepository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Users:       deps.Users,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Auth:   service,
			Logger: deps.Logger,
		},
		Auth: service,
	}
}

func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Users:       store,
		Clock:       store,
		IDGenerator: store,
		Logger:      logger,
	})
	module.Store = store
	return module
}
