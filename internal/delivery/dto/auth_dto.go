package dto

// Request DTOs

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Response DTOs

const (
	StatusSuccess = "success"
	StatusError   = "error"
)

// AuthResponse is returned by login, logout and isSignedIn. Failed logins are reported here, not as errors.
type AuthResponse struct {
	Status  string        `json:"status"`
	Message string        `json:"message"`
	Token   *string       `json:"token,omitempty"`
	User    *UserResponse `json:"user,omitempty"`
	// ExpiresIn is the token lifetime in seconds, set on successful login.
	ExpiresIn int64 `json:"expires_in,omitempty"`
}
