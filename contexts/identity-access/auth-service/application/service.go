package application

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	domainerrors "planora/contexts/identity-access/auth-service/domain/errors"
	"planora/contexts/identity-access/auth-service/ports"

	"golang.org/x/crypto/bcrypt"
)

var _ ports.Authenticator = Service{}

type Service struct {
	Users       ports.UserRepository
	Clock       ports.Clock
	IDGenerator ports.IDGenerator
	Logger      *slog.Logger
}

func (s Service) Signup(
	ctx context.Context,
	role string,
	profile ports.SignupProfile,
	creds ports.Credentials,
) (ports.UserIdentity, error) {
	role = strings.ToLower(strings.TrimSpace(role))
	if !ports.IsValidRole(role) {
		return ports.UserIdentity{}, domainerrors.ErrUnknownRole
	}
	name := strings.TrimSpace(profile.Name)
	email := normalizeEmail(creds.Email)
	if name == "" || email == "" || len(creds.Password) < 6 {
		return ports.UserIdentity{}, domainerrors.ErrInvalidRequest
	}
	// Only vendor accounts carry a vendor type; the field is dropped for
	// every other role.
	vendorType := ""
	if role == ports.RoleVendor {
		vendorType = strings.ToLower(strings.TrimSpace(profile.VendorType))
	}

	if _, err := s.Users.GetUserByEmail(ctx, email); err == nil {
		return ports.UserIdentity{}, domainerrors.ErrEmailTaken
	} else if !errors.Is(err, domainerrors.ErrUserNotFound) {
		return ports.UserIdentity{}, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(creds.Password), bcrypt.DefaultCost)
	if err != nil {
		return ports.UserIdentity{}, err
	}
	userID, err := s.IDGenerator.NewID(ctx)
	if err != nil {
		return ports.UserIdentity{}, err
	}

	user := ports.UserRecord{
		UserID:       userID,
		Name:         name,
		Email:        email,
		Role:         role,
		VendorType:   vendorType,
		PasswordHash: string(hash),
		CreatedAt:    s.Clock.Now().UTC(),
	}
	if err := s.Users.CreateUser(ctx, user); err != nil {
		return ports.UserIdentity{}, err
	}

	resolveLogger(s.Logger).Info("user signed up",
		"event", "user_signed_up",
		"module", "identity-access/auth-service",
		"layer", "application",
		"user_id", user.UserID,
		"role", user.Role,
	)
	return identityOf(user), nil
}

// Login is shared across roles: one credential check, and the stored role
// rides along on the returned identity.
func (s Service) Login(ctx context.Context, creds ports.Credentials) (ports.UserIdentity, error) {
	email := normalizeEmail(creds.Email)
	if email == "" || creds.Password == "" {
		return ports.UserIdentity{}, domainerrors.ErrInvalidCredentials
	}

	user, err := s.Users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) {
			return ports.UserIdentity{}, domainerrors.ErrInvalidCredentials
		}
		return ports.UserIdentity{}, err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(creds.Password)); err != nil {
		return ports.UserIdentity{}, domainerrors.ErrInvalidCredentials
	}
	// The login form tags submissions with the tab's role. A mismatch reads
	// as bad credentials so the response leaks nothing about the account.
	if tag := strings.ToLower(strings.TrimSpace(creds.Role)); tag != "" && tag != user.Role {
		return ports.UserIdentity{}, domainerrors.ErrInvalidCredentials
	}

	resolveLogger(s.Logger).Info("user logged in",
		"event", "user_logged_in",
		"module", "identity-access/auth-service",
		"layer", "application",
		"user_id", user.UserID,
		"role", user.Role,
	)
	return identityOf(user), nil
}

func identityOf(user ports.UserRecord) ports.UserIdentity {
	return ports.UserIdentity{
		UserID:     user.UserID,
		Name:       user.Name,
		Email:      user.Email,
		Role:       user.Role,
		VendorType: user.VendorType,
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default()
}
