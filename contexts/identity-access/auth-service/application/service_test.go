package application

import (
	"context"
	"errors"
	"testing"

	"planora/contexts/identity-access/auth-service/adapters/memory"
	domainerrors "planora/contexts/identity-access/auth-service/domain/errors"
	"planora/contexts/identity-access/auth-service/ports"
)

func newService() Service {
	store := memory.NewStore()
	return Service{
		Users:       store,
		Clock:       store,
		IDGenerator: store,
	}
}

func TestSignupThenLogin(t *testing.T) {
	service := newService()
	ctx := context.Background()

	created, err := service.Signup(ctx, ports.RoleCustomer, ports.SignupProfile{Name: "Priya Shah"}, ports.Credentials{
		Email:    "Priya@Example.com",
		Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if created.Role != ports.RoleCustomer {
		t.Fatalf("unexpected role %q", created.Role)
	}
	if created.Email != "priya@example.com" {
		t.Fatalf("expected normalized email, got %q", created.Email)
	}

	identity, err := service.Login(ctx, ports.Credentials{
		Email:    "priya@example.com",
		Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if identity.UserID != created.UserID {
		t.Fatalf("expected same user, got %q vs %q", identity.UserID, created.UserID)
	}
}

func TestLoginSharedAcrossRoles(t *testing.T) {
	service := newService()
	ctx := context.Background()

	if _, err := service.Signup(ctx, ports.RoleVendor, ports.SignupProfile{Name: "Vino Catering", VendorType: "catering"}, ports.Credentials{
		Email:    "vino@example.com",
		Password: "grapes99",
	}); err != nil {
		t.Fatalf("vendor signup failed: %v", err)
	}

	identity, err := service.Login(ctx, ports.Credentials{
		Email:    "vino@example.com",
		Password: "grapes99",
	})
	if err != nil {
		t.Fatalf("login failed: %v", err)
	}
	if identity.Role != ports.RoleVendor {
		t.Fatalf("expected stored role on login, got %q", identity.Role)
	}
	if identity.VendorType != "catering" {
		t.Fatalf("expected vendor type on vendor identity, got %q", identity.VendorType)
	}
}

func TestLoginRejectsRoleMismatch(t *testing.T) {
	service := newService()
	ctx := context.Background()

	if _, err := service.Signup(ctx, ports.RoleCustomer, ports.SignupProfile{Name: "Priya Shah"}, ports.Credentials{
		Email:    "priya@example.com",
		Password: "hunter22",
	}); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	_, err := service.Login(ctx, ports.Credentials{
		Email:    "priya@example.com",
		Password: "hunter22",
		Role:     ports.RoleVendor,
	})
	if !errors.Is(err, domainerrors.ErrInvalidCredentials) {
		t.Fatalf("expected role mismatch to read as invalid credentials, got %v", err)
	}

	identity, err := service.Login(ctx, ports.Credentials{
		Email:    "priya@example.com",
		Password: "hunter22",
		Role:     "Customer",
	})
	if err != nil {
		t.Fatalf("matching role tag should log in: %v", err)
	}
	if identity.Role != ports.RoleCustomer {
		t.Fatalf("unexpected role %q", identity.Role)
	}
}

func TestSignupDropsVendorTypeForNonVendors(t *testing.T) {
	service := newService()

	created, err := service.Signup(context.Background(), ports.RoleCustomer, ports.SignupProfile{
		Name:       "Priya Shah",
		VendorType: "catering",
	}, ports.Credentials{
		Email:    "priya@example.com",
		Password: "hunter22",
	})
	if err != nil {
		t.Fatalf("signup failed: %v", err)
	}
	if created.VendorType != "" {
		t.Fatalf("expected no vendor type on a customer account, got %q", created.VendorType)
	}
}

func TestSignupRejectsUnknownRole(t *testing.T) {
	service := newService()

	_, err := service.Signup(context.Background(), "superuser", ports.SignupProfile{Name: "Eve"}, ports.Credentials{
		Email:    "eve@example.com",
		Password: "password1",
	})
	if !errors.Is(err, domainerrors.ErrUnknownRole) {
		t.Fatalf("expected unknown role, got %v", err)
	}
}

func TestSignupRejectsDuplicateEmail(t *testing.T) {
	service := newService()
	ctx := context.Background()

	if _, err := service.Signup(ctx, ports.RoleCustomer, ports.SignupProfile{Name: "First"}, ports.Credentials{
		Email:    "dup@example.com",
		Password: "password1",
	}); err != nil {
		t.Fatalf("first signup failed: %v", err)
	}

	_, err := service.Signup(ctx, ports.RoleVendor, ports.SignupProfile{Name: "Second"}, ports.Credentials{
		Email:    "dup@example.com",
		Password: "password2",
	})
	if !errors.Is(err, domainerrors.ErrEmailTaken) {
		t.Fatalf("expected email taken, got %v", err)
	}
}

func TestLoginRejectsWrongPassword(t *testing.T) {
	service := newService()
	ctx := context.Background()

	if _, err := service.Signup(ctx, ports.RoleCustomer, ports.SignupProfile{Name: "Priya"}, ports.Credentials{
		Email:    "priya@example.com",
		Password: "correct-horse",
	}); err != nil {
		t.Fatalf("signup failed: %v", err)
	}

	_, err := service.Login(ctx, ports.Credentials{
		Email:    "priya@example.com",
		Password: "wrong-horse",
	})
	if !errors.Is(err, domainerrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}

	_, err = service.Login(ctx, ports.Credentials{
		Email:    "nobody@example.com",
		Password: "whatever1",
	})
	if !errors.Is(err, domainerrors.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for unknown email, got %v", err)
	}
}
