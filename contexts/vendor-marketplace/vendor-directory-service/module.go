package vendordirectoryservice

import (
	"log/slog"
	"time"

	httpadapter "planora/contexts/vendor-marketplace/vendor-directory-service/adapters/http"
	"planora/contexts/vendor-marketplace/vendor-directory-service/adapters/memory"
	"planora/contexts/vendor-marketplace/vendor-directory-service/application"
	"planora/contexts/vendor-marketplace/vendor-directory-service/application/workers"
	"planora/contexts/vendor-marketplace/vendor-directory-service/ports"
)

type Module struct {
	Handler  httpadapter.Handler
	Service  application.Service
	Consumer workers.BookingConfirmedConsumer
	Store    *memory.Store
}

type Dependencies struct {
	Vendors     ports.VendorRepository
	Dashboards  ports.DashboardRepository
	Dedup       ports.EventDedupStore
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	DedupTTL    time.Duration
	Logger      *slog.Logger
}

func NewModule(deps Dependencies) Module {
	service := application.Service{
		Vendors:     deps.Vendors,
		Dashboards:  deps.Dashboards,
		Clock:       deps.Clock,
		IDGenerator: deps.IDGenerator,
		Logger:      deps.Logger,
	}
	consumer := workers.BookingConfirmedConsumer{
		Dedup:      deps.Dedup,
		Dashboards: deps.Dashboards,
		Clock:      deps.Clock,
		DedupTTL:   deps.DedupTTL,
		Logger:     deps.Logger,
	}
	return Module{
		Handler: httpadapter.Handler{
			Service: service,
			Logger:  deps.Logger,
		},
		Service:  service,
		Consumer: consumer,
	}
}

func NewInMemoryModule(logger *slog.Logger) Module {
	store := memory.NewStore()
	module := NewModule(Dependencies{
		Vendors:     store,
		Dashboards:  store,
		Dedup:       store,
		Clock:       store,
		IDGenerator: store,
		DedupTTL:    7 * 24 * time.Hour,
		Logger:      logger,
	})
	module.Store = store
	return module
}
