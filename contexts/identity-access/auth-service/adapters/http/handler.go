package httpadapter

import (
	"context"
	"log/slog"

	"planora/contexts/identity-access/auth-service/ports"
	httptransport "planora/contexts/identity-access/auth-service/transport/http"
)

type Handler struct {
	Auth   ports.Authenticator
	Logger *slog.Logger
}

func (h Handler) SignupHandler(
	ctx context.Context,
	role string,
	req httptransport.SignupRequest,
) (httptransport.AuthResponse, error) {
	identity, err := h.Auth.Signup(ctx, role, ports.SignupProfile{
		Name:       req.Name,
		VendorType: req.VendorType,
	}, ports.Credentials{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return httptransport.AuthResponse{}, err
	}
	return httptransport.AuthResponse{User: mapUser(identity)}, nil
}

func (h Handler) LoginHandler(
	ctx context.Context,
	req httptransport.LoginRequest,
) (httptransport.AuthResponse, error) {
	identity, err := h.Auth.Login(ctx, ports.Credentials{
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		return httptransport.AuthResponse{}, err
	}
	return httptransport.AuthResponse{User: mapUser(identity)}, nil
}

func mapUser(identity ports.UserIdentity) httptransport.UserDTO {
	return httptransport.UserDTO{
		UserID:     identity.UserID,
		Name:       identity.Name,
		Email:      identity.Email,
		Role:       identity.Role,
		VendorType: identity.VendorType,
	}
}
