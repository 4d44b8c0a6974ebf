package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	vendorerrors "planora/contexts/vendor-marketplace/vendor-directory-service/domain/errors"
	vendorhttp "planora/contexts/vendor-marketplace/vendor-directory-service/transport/http"
)

func writeVendorError(w http.ResponseWriter, status int, code string, message string) {
	writeJSON(w, status, vendorhttp.ErrorResponse{Code: code, Message: message})
}

func writeVendorDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, vendorerrors.ErrVendorNotFound):
		writeVendorError(w, http.StatusNotFound, "vendor_not_found", err.Error())
	case errors.Is(err, vendorerrors.ErrInvalidVendorType):
		writeVendorError(w, http.StatusUnprocessableEntity, "invalid_vendor_type", err.Error())
	case errors.Is(err, vendorerrors.ErrInvalidVendorInput):
		writeVendorError(w, http.StatusBadRequest, "invalid_vendor_input", err.Error())
	default:
		writeVendorError(w, http.StatusInternalServerError, "internal_error", "internal server error")
	}
}

func (s *Server) handleRegisterVendor(w http.ResponseWriter, r *http.Request) {
	ownerUserID := strings.TrimSpace(r.Header.Get("X-User-Id"))
	if ownerUserID == "" {
		writeVendorError(w, http.StatusUnauthorized, "missing_user", "X-User-Id header is required")
		return
	}

	var req vendorhttp.RegisterVendorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeVendorError(w, http.StatusBadRequest, "invalid_json", "request body must be valid JSON")
		return
	}

	resp, err := s.vendors.Handler.RegisterVendorHandler(r.Context(), ownerUserID, req)
	if err != nil {
		writeVendorDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleListVendors(w http.ResponseWriter, r *http.Request) {
	resp, err := s.vendors.Handler.ListVendorsHandler(r.Context(), r.URL.Query().Get("vendor_type"))
	if err != nil {
		writeVendorDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleGetVendor(w http.ResponseWriter, r *http.Request) {
	resp, err := s.vendors.Handler.GetVendorHandler(r.Context(), r.PathValue("vendor_id"))
	if err != nil {
		writeVendorDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleVendorDashboard(w http.ResponseWriter, r *http.Request) {
	resp, err := s.vendors.Handler.DashboardHandler(r.Context(), r.PathValue("vendor_id"))
	if err != nil {
		writeVendorDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
