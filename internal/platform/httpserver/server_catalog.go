package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	catalogerrors "planora/contexts/event-planning/event-catalog-service/domain/errors"
	cataloghttp "planora/contexts/event-planning/event-catalog-service/transport/http"
	authports "planora/contexts/identity-access/auth-service/ports"
)

func writeCatalogError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, cataloghttp.ErrorResponse{Code: code, Message: message})
}

func writeCatalogDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, catalogerrors.ErrEventTypeNotFound):
		writeCatalogError(w, http.StatusNotFound, "event_type_not_found", err.Error())
	case errors.Is(err, catalogerrors.ErrDuplicateEventType):
		writeCatalogError(w, http.StatusConflict, "duplicate_event_type", err.Error())
	case errors.Is(err, catalogerrors.ErrInvalidRequest):
		writeCatalogError(w, http.StatusBadRequest, "invalid_request", err.Error())
	default:
		writeCatalogError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleListEventTypes(w http.ResponseWriter, r *http.Request) {
	resp, err := s.catalog.Handler.ListEventTypesHandler(r.Context())
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetEventType(w http.ResponseWriter, r *http.Request) {
	resp, err := s.catalog.Handler.GetEventTypeHandler(r.Context(), r.PathValue("event_type_id"))
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

// requireCatalogAdmin gates the destructive seed seam on the same header
// identity the ledger uses, plus an admin role tag.
func requireCatalogAdmin(w http.ResponseWriter, r *http.Request) bool {
	if strings.TrimSpace(r.Header.Get("X-User-Id")) == "" {
		writeCatalogError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return false
	}
	role := strings.ToLower(strings.TrimSpace(r.Header.Get("X-User-Role")))
	if role != authports.RoleAdmin {
		writeCatalogError(w, http.StatusForbidden, "admin_required", "seeding the catalog requires the admin role")
		return false
	}
	return true
}

func (s *Server) handleSeedEventTypes(w http.ResponseWriter, r *http.Request) {
	if !requireCatalogAdmin(w, r) {
		return
	}

	var req cataloghttp.SeedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeCatalogError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}
	resp, err := s.catalog.Handler.SeedHandler(r.Context(), req)
	if err != nil {
		writeCatalogDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
