package httpserver

import (
	"encoding/json"
	"log/slog"
	"net/http"

	eventcatalogservice "planora/contexts/event-planning/event-catalog-service"
	eventledgerservice "planora/contexts/event-planning/event-ledger-service"
	authservice "planora/contexts/identity-access/auth-service"
	vendordirectoryservice "planora/contexts/vendor-marketplace/vendor-directory-service"

	httpSwagger "github.com/swaggo/http-swagger"
	_ "planora/internal/platform/httpserver/docs"
)

type Server struct {
	mux               *http.ServeMux
	logger            *slog.Logger
	addr              string
	catalog           eventcatalogservice.Module
	ledger            eventledgerservice.Module
	auth              authservice.Module
	vendors           vendordirectoryservice.Module
	enableCatalogSeed bool
}

type Options struct {
	Catalog           eventcatalogservice.Module
	Ledger            eventledgerservice.Module
	Auth              authservice.Module
	Vendors           vendordirectoryservice.Module
	Logger            *slog.Logger
	Addr              string
	EnableCatalogSeed bool
}

func New(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = slog.Default()
	}
	addr := opts.Addr
	if addr == "" {
		addr = ":8080"
	}

	s := &Server{
		mux:               http.NewServeMux(),
		logger:            logger,
		addr:              addr,
		catalog:           opts.Catalog,
		ledger:            opts.Ledger,
		auth:              opts.Auth,
		vendors:           opts.Vendors,
		enableCatalogSeed: opts.EnableCatalogSeed,
	}
	s.registerRoutes()
	return s
}

func (s *Server) Start() error {
	s.logger.Info("http server starting",
		"event", "http_server_starting",
		"module", "internal/platform/httpserver",
		"layer", "platform",
		"addr", s.addr,
	)
	return http.ListenAndServe(s.addr, s.mux)
}

// Handler exposes the routing table for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

func (s *Server) registerRoutes() {
	s.mux.Handle("/swagger/", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	s.mux.HandleFunc("GET /api/catalog/v1/event-types", s.handleListEventTypes)
	s.mux.HandleFunc("GET /api/catalog/v1/event-types/{event_type_id}", s.handleGetEventType)
	if s.enableCatalogSeed {
		s.mux.HandleFunc("POST /api/catalog/v1/seed", s.handleSeedEventTypes)
	}

	s.mux.HandleFunc("POST /api/ledger/v1/events", s.handleCreateEvent)
	s.mux.HandleFunc("GET /api/ledger/v1/events", s.handleListEvents)
	s.mux.HandleFunc("GET /api/ledger/v1/events/{event_id}", s.handleGetEvent)
	s.mux.HandleFunc("PATCH /api/ledger/v1/events/{event_id}", s.handleUpdateEvent)
	s.mux.HandleFunc("DELETE /api/ledger/v1/events/{event_id}", s.handleDeleteEvent)
	s.mux.HandleFunc("POST /api/ledger/v1/events/{event_id}/confirm", s.handleConfirmEvent)
	s.mux.HandleFunc("POST /api/ledger/v1/events/{event_id}/cancel", s.handleCancelEvent)
	s.mux.HandleFunc("GET /api/ledger/v1/events/{event_id}/history", s.handleListEventHistory)

	s.mux.HandleFunc("POST /api/auth/v1/signup/{role}", s.handleSignup)
	s.mux.HandleFunc("POST /api/auth/v1/login", s.handleLogin)

	s.mux.HandleFunc("POST /api/vendors/v1", s.handleRegisterVendor)
	s.mux.HandleFunc("GET /api/vendors/v1", s.handleListVendors)
	s.mux.HandleFunc("GET /api/vendors/v1/{vendor_id}", s.handleGetVendor)
	s.mux.HandleFunc("GET /api/vendors/v1/{vendor_id}/dashboard", s.handleVendorDashboard)
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
