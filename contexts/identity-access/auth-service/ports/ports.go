package ports

import (
	"context"
	"time"
)

const (
	RoleCustomer = "customer"
	RoleVendor   = "vendor"
	RoleAdmin    = "admin"
)

func IsValidRole(role string) bool {
	switch role {
	case RoleCustomer, RoleVendor, RoleAdmin:
		return true
	default:
		return false
	}
}

// UserIdentity is what the rest of the platform sees after a successful
// login: a validated user with exactly one role. VendorType is set for the
// vendor role only. Password material never leaves the auth service.
type UserIdentity struct {
	UserID     string
	Name       string
	Email      string
	Role       string
	VendorType string
}

// Credentials carry the login form. Role is the tab the form was submitted
// from; when set, a mismatch with the stored role fails the login.
type Credentials struct {
	Email    string
	Password string
	Role     string
}

// SignupProfile is the non-credential part of the signup form.
type SignupProfile struct {
	Name       string
	VendorType string
}

type UserRecord struct {
	UserID       string
	Name         string
	Email        string
	Role         string
	VendorType   string
	PasswordHash string
	CreatedAt    time.Time
}

type UserRepository interface {
	CreateUser(ctx context.Context, user UserRecord) error
	GetUserByEmail(ctx context.Context, email string) (UserRecord, error)
}

type Clock interface {
	Now() time.Time
}

type IDGenerator interface {
	NewID(ctx context.Context) (string, error)
}

// Authenticator is the boundary other contexts depend on. The in-process
// implementation is the auth service itself; deployments that keep an
// external identity provider plug in the HTTP passthrough client instead.
type Authenticator interface {
	Login(ctx context.Context, creds Credentials) (UserIdentity, error)
	Signup(ctx context.Context, role string, profile SignupProfile, creds Credentials) (UserIdentity, error)
}
