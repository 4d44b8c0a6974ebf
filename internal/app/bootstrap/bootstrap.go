package bootstrap

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	eventcatalogservice "planora/contexts/event-planning/event-catalog-service"
	catalogpostgres "planora/contexts/event-planning/event-catalog-service/adapters/postgres"
	catalogapp "planora/contexts/event-planning/event-catalog-service/application"
	eventledgerservice "planora/contexts/event-planning/event-ledger-service"
	ledgerpostgres "planora/contexts/event-planning/event-ledger-service/adapters/postgres"
	ledgerworkers "planora/contexts/event-planning/event-ledger-service/application/workers"
	authservice "planora/contexts/identity-access/auth-service"
	authpostgres "planora/contexts/identity-access/auth-service/adapters/postgres"
	vendordirectoryservice "planora/contexts/vendor-marketplace/vendor-directory-service"
	vendorpostgres "planora/contexts/vendor-marketplace/vendor-directory-service/adapters/postgres"
	"planora/internal/platform/config"
	"planora/internal/platform/db"
	"planora/internal/platform/httpserver"
	"planora/internal/platform/messaging"
)

// Package bootstrap is the composition root.
// Keep construction/wiring here so module code stays framework-agnostic.

type APIApp struct {
	server   *httpserver.Server
	postgres *db.Postgres
	catalog  eventcatalogservice.Module
	logger   *slog.Logger
}

type WorkerApp struct {
	postgres     *db.Postgres
	bus          *messaging.Kafka
	outboxRelay  ledgerworkers.OutboxRelay
	vendors      vendordirectoryservice.Module
	relayEnabled bool
	consumerOn   bool
	pollInterval time.Duration
	logger       *slog.Logger
}

func BuildAPI() (*APIApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "api")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	catalogRepo := catalogpostgres.NewRepository(pg.DB, logger)
	catalogModule := eventcatalogservice.NewModule(eventcatalogservice.Dependencies{
		Repo:   catalogRepo,
		Logger: logger,
	})

	ledgerRepo := ledgerpostgres.NewRepository(pg.DB, logger)
	ledgerModule := eventledgerservice.NewModule(eventledgerservice.Dependencies{
		Ledger:         ledgerRepo,
		History:        ledgerRepo,
		Idempotency:    ledgerRepo,
		Outbox:         ledgerRepo,
		Clock:          ledgerpostgres.SystemClock{},
		IDGenerator:    ledgerpostgres.UUIDGenerator{},
		IdempotencyTTL: 24 * time.Hour,
		Logger:         logger,
	})

	authRepo := authpostgres.NewRepository(pg.DB, logger)
	authModule := authservice.NewModule(authservice.Dependencies{
		Users:       authRepo,
		Clock:       authpostgres.SystemClock{},
		IDGenerator: authpostgres.UUIDGenerator{},
		Logger:      logger,
	})

	vendorRepo := vendorpostgres.NewRepository(pg.DB, logger)
	vendorModule := vendordirectoryservice.NewModule(vendordirectoryservice.Dependencies{
		Vendors:     vendorRepo,
		Dashboards:  vendorRepo,
		Dedup:       vendorRepo,
		Clock:       vendorpostgres.SystemClock{},
		IDGenerator: vendorpostgres.UUIDGenerator{},
		DedupTTL:    7 * 24 * time.Hour,
		Logger:      logger,
	})

	server := httpserver.New(httpserver.Options{
		Catalog:           catalogModule,
		Ledger:            ledgerModule,
		Auth:              authModule,
		Vendors:           vendorModule,
		Logger:            logger,
		Addr:              normalizeAddr(cfg.HTTPPort),
		EnableCatalogSeed: cfg.EnableCatalogSeedEndpoint,
	})
	return &APIApp{
		server:   server,
		postgres: pg,
		catalog:  catalogModule,
		logger:   logger,
	}, nil
}

func BuildWorker() (*WorkerApp, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	logger := slog.Default().With("service", cfg.ServiceName, "process", "worker")
	if strings.TrimSpace(cfg.PostgresDSN) == "" {
		return nil, errors.New("POSTGRES_DSN is required")
	}

	pg, err := db.Connect(cfg.PostgresDSN)
	if err != nil {
		return nil, err
	}

	kafka, err := messaging.NewKafka(cfg.KafkaBrokers, logger)
	if err != nil {
		return nil, err
	}

	ledgerRepo := ledgerpostgres.NewRepository(pg.DB, logger)
	vendorRepo := vendorpostgres.NewRepository(pg.DB, logger)
	vendorModule := vendordirectoryservice.NewModule(vendordirectoryservice.Dependencies{
		Vendors:     vendorRepo,
		Dashboards:  vendorRepo,
		Dedup:       vendorRepo,
		Clock:       vendorpostgres.SystemClock{},
		IDGenerator: vendorpostgres.UUIDGenerator{},
		DedupTTL:    7 * 24 * time.Hour,
		Logger:      logger,
	})

	return &WorkerApp{
		postgres: pg,
		bus:      kafka,
		outboxRelay: ledgerworkers.OutboxRelay{
			Outbox:    ledgerRepo,
			Publisher: kafka,
			Clock:     ledgerpostgres.SystemClock{},
			BatchSize: 100,
			Logger:    logger,
		},
		vendors:      vendorModule,
		relayEnabled: cfg.EnableBookingOutboxRelay,
		consumerOn:   cfg.EnableVendorDashboardConsumer,
		pollInterval: 2 * time.Second,
		logger:       logger,
	}, nil
}

func (a *APIApp) Run(ctx context.Context) error {
	// A fresh deployment seeds the catalog so the browse page has content
	// before any admin re-seed happens.
	if items, err := a.catalog.Service.List(ctx); err == nil && len(items) == 0 {
		if _, err := a.catalog.Service.Seed(ctx, catalogapp.DefaultEventTypes()); err != nil {
			return err
		}
	}

	if a.logger != nil {
		a.logger.Info("api app started",
			"event", "bootstrap_api_started",
			"module", "internal/app/bootstrap",
			"layer", "platform",
		)
	}
	return a.server.Start()
}

func (a *APIApp) Close() error {
	if a.postgres != nil {
		return a.postgres.Close()
	}
	return nil
}

func (w *WorkerApp) Run(ctx context.Context) error {
	if w.consumerOn {
		if err := w.bus.Subscribe(
			ctx,
			"booking.confirmed",
			"vendor-dashboard-cg",
			w.vendors.Consumer.Handle,
		); err != nil {
			return err
		}
	}

	ticker := time.NewTicker(w.pollInterval)
	defer ticker.Stop()

	w.logger.Info("worker app started",
		"event", "bootstrap_worker_started",
		"module", "internal/app/bootstrap",
		"layer", "platform",
		"poll_interval", w.pollInterval.String(),
	)

	for {
		if w.relayEnabled {
			if err := w.outboxRelay.RunOnce(ctx); err != nil {
				return err
			}
		}
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
		}
	}
}

func (w *WorkerApp) Close() error {
	if w.postgres != nil {
		return w.postgres.Close()
	}
	return nil
}

func normalizeAddr(port string) string {
	value := strings.TrimSpace(port)
	if value == "" {
		return ":8080"
	}
	if strings.HasPrefix(value, ":") {
		return value
	}
	return ":" + value
}
