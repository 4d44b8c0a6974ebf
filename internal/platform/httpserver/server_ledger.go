package httpserver

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"

	ledgererrors "planora/contexts/event-planning/event-ledger-service/domain/errors"
	ledgerhttp "planora/contexts/event-planning/event-ledger-service/transport/http"
)

func writeLedgerError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, ledgerhttp.ErrorResponse{Code: code, Message: message})
}

func writeLedgerDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ledgererrors.ErrEventNotFound):
		writeLedgerError(w, http.StatusNotFound, "event_not_found", err.Error())
	case errors.Is(err, ledgererrors.ErrTransitionRejected):
		writeLedgerError(w, http.StatusConflict, "transition_rejected", err.Error())
	case errors.Is(err, ledgererrors.ErrIdempotencyKeyConflict):
		writeLedgerError(w, http.StatusConflict, "idempotency_conflict", err.Error())
	case errors.Is(err, ledgererrors.ErrIdempotencyKeyRequired):
		writeLedgerError(w, http.StatusBadRequest, "idempotency_key_required", err.Error())
	case errors.Is(err, ledgererrors.ErrInvalidEventInput):
		writeLedgerError(w, http.StatusBadRequest, "invalid_event_input", err.Error())
	default:
		writeLedgerError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func requireLedgerUser(w http.ResponseWriter, r *http.Request) (string, bool) {
	userID := strings.TrimSpace(r.Header.Get("X-User-Id"))
	if userID == "" {
		writeLedgerError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return "", false
	}
	return userID, true
}

func (s *Server) handleCreateEvent(w http.ResponseWriter, r *http.Request) {
	customerID, ok := requireLedgerUser(w, r)
	if !ok {
		return
	}

	var req ledgerhttp.CreateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeLedgerError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.ledger.Handler.CreateEventHandler(
		r.Context(),
		customerID,
		r.Header.Get("Idempotency-Key"),
		req,
	)
	if err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListEvents(w http.ResponseWriter, r *http.Request) {
	customerID, ok := requireLedgerUser(w, r)
	if !ok {
		return
	}

	resp, err := s.ledger.Handler.ListEventsHandler(r.Context(), customerID)
	if err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetEvent(w http.ResponseWriter, r *http.Request) {
	customerID, ok := requireLedgerUser(w, r)
	if !ok {
		return
	}

	resp, err := s.ledger.Handler.GetEventHandler(r.Context(), customerID, r.PathValue("event_id"))
	if err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleUpdateEvent(w http.ResponseWriter, r *http.Request) {
	customerID, ok := requireLedgerUser(w, r)
	if !ok {
		return
	}

	var req ledgerhttp.UpdateEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeLedgerError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.ledger.Handler.UpdateEventHandler(r.Context(), customerID, r.PathValue("event_id"), req)
	if err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleDeleteEvent(w http.ResponseWriter, r *http.Request) {
	customerID, ok := requireLedgerUser(w, r)
	if !ok {
		return
	}

	if err := s.ledger.Handler.DeleteEventHandler(r.Context(), customerID, r.PathValue("event_id")); err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleConfirmEvent(w http.ResponseWriter, r *http.Request) {
	customerID, ok := requireLedgerUser(w, r)
	if !ok {
		return
	}

	// The body is optional: a bare confirm carries no vendor or reason.
	var req ledgerhttp.ConfirmEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeLedgerError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.ledger.Handler.ConfirmEventHandler(r.Context(), customerID, r.PathValue("event_id"), req)
	if err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleCancelEvent(w http.ResponseWriter, r *http.Request) {
	customerID, ok := requireLedgerUser(w, r)
	if !ok {
		return
	}

	// Cancellation reasons are optional, so an empty body is accepted.
	var req ledgerhttp.CancelEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeLedgerError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.ledger.Handler.CancelEventHandler(r.Context(), customerID, r.PathValue("event_id"), req)
	if err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleListEventHistory(w http.ResponseWriter, r *http.Request) {
	customerID, ok := requireLedgerUser(w, r)
	if !ok {
		return
	}

	resp, err := s.ledger.Handler.ListHistoryHandler(r.Context(), customerID, r.PathValue("event_id"))
	if err != nil {
		writeLedgerDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
