package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	autherrors "planora/contexts/identity-access/auth-service/domain/errors"
	authhttp "planora/contexts/identity-access/auth-service/transport/http"
)

// Auth failure responses carry a bare message: the login form renders the
// message directly and never inspects a machine code.
func writeAuthError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, authhttp.ErrorResponse{Message: message})
}

func writeAuthDomainError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, autherrors.ErrInvalidCredentials):
		writeAuthError(w, http.StatusUnauthorized, err.Error())
	case errors.Is(err, autherrors.ErrUnknownRole):
		writeAuthError(w, http.StatusUnprocessableEntity, err.Error())
	case errors.Is(err, autherrors.ErrEmailTaken):
		writeAuthError(w, http.StatusConflict, err.Error())
	case errors.Is(err, autherrors.ErrInvalidRequest):
		writeAuthError(w, http.StatusBadRequest, err.Error())
	case errors.Is(err, autherrors.ErrAuthUnavailable):
		writeAuthError(w, http.StatusServiceUnavailable, err.Error())
	default:
		writeAuthError(w, http.StatusInternalServerError, "internal server error")
	}
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var req authhttp.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAuthError(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	resp, err := s.auth.Handler.SignupHandler(r.Context(), r.PathValue("role"), req)
	if err != nil {
		writeAuthDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req authhttp.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeAuthError(w, http.StatusBadRequest, "request body must be valid JSON")
		return
	}

	resp, err := s.auth.Handler.LoginHandler(r.Context(), req)
	if err != nil {
		writeAuthDomainError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, resp)
}
