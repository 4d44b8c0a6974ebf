package httpclient

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	domainerrors "planora/contexts/identity-access/auth-service/domain/errors"
	"planora/contexts/identity-access/auth-service/ports"
)

var _ ports.Authenticator = (*Client)(nil)

// Client forwards credential checks to an external identity provider over
// HTTP. Each call is a single POST; there is no retry, so a network failure
// surfaces immediately as an auth error rather than hanging the login form.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Logger     *slog.Logger
}

type userPayload struct {
	UserID     string `json:"user_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	VendorType string `json:"vendor_type"`
}

type successResponse struct {
	User userPayload `json:"user"`
}

func (c *Client) Login(ctx context.Context, creds ports.Credentials) (ports.UserIdentity, error) {
	body := map[string]string{
		"email":    creds.Email,
		"password": creds.Password,
	}
	if role := strings.TrimSpace(creds.Role); role != "" {
		body["role"] = role
	}
	return c.post(ctx, "/api/auth/v1/login", body, domainerrors.ErrInvalidCredentials)
}

func (c *Client) Signup(
	ctx context.Context,
	role string,
	profile ports.SignupProfile,
	creds ports.Credentials,
) (ports.UserIdentity, error) {
	role = strings.ToLower(strings.TrimSpace(role))
	if !ports.IsValidRole(role) {
		return ports.UserIdentity{}, domainerrors.ErrUnknownRole
	}
	body := map[string]string{
		"name":     profile.Name,
		"email":    creds.Email,
		"password": creds.Password,
	}
	if vendorType := strings.TrimSpace(profile.VendorType); vendorType != "" {
		body["vendor_type"] = vendorType
	}
	return c.post(ctx, "/api/auth/v1/signup/"+role, body, domainerrors.ErrInvalidRequest)
}

func (c *Client) post(
	ctx context.Context,
	path string,
	body map[string]string,
	rejectErr error,
) (ports.UserIdentity, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return ports.UserIdentity{}, err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		strings.TrimRight(c.BaseURL, "/")+path,
		bytes.NewReader(payload),
	)
	if err != nil {
		return ports.UserIdentity{}, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient().Do(req)
	if err != nil {
		c.logger().Warn("auth passthrough request failed",
			"event", "auth_passthrough_request_failed",
			"module", "identity-access/auth-service",
			"layer", "adapter",
			"path", path,
			"error", err.Error(),
		)
		return ports.UserIdentity{}, domainerrors.ErrAuthUnavailable
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return ports.UserIdentity{}, rejectErr
	}

	var decoded successResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return ports.UserIdentity{}, domainerrors.ErrAuthUnavailable
	}

	// The upstream role is not trusted blindly: an identity with a role
	// outside the known set is rejected at this boundary.
	role := strings.ToLower(strings.TrimSpace(decoded.User.Role))
	if !ports.IsValidRole(role) {
		return ports.UserIdentity{}, domainerrors.ErrUnknownRole
	}
	return ports.UserIdentity{
		UserID:     decoded.User.UserID,
		Name:       decoded.User.Name,
		Email:      decoded.User.Email,
		Role:       role,
		VendorType: decoded.User.VendorType,
	}, nil
}

func (c *Client) httpClient() *http.Client {
	if c.HTTPClient != nil {
		return c.HTTPClient
	}
	return &http.Client{Timeout: 10 * time.Second}
}

func (c *Client) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}
