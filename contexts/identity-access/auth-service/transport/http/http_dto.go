package http

type ErrorResponse struct {
	Message string `json:"message"`
}

type SignupRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	VendorType string `json:"vendor_type,omitempty"`
}

// LoginRequest is role-tagged: the form sends the tab it was submitted
// from, and a tag that does not match the stored role fails the login.
type LoginRequest struct {
	Role     string `json:"role,omitempty"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserDTO struct {
	UserID     string `json:"user_id"`
	Name       string `json:"name"`
	Email      string `json:"email"`
	Role       string `json:"role"`
	VendorType string `json:"vendor_type,omitempty"`
}

type AuthResponse struct {
	User UserDTO `json:"user"`
}
