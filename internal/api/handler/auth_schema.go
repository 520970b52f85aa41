package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request / Response types ---

type registerRequest struct {
	Email     string `json:"email"      validate:"required,email"`
	Password  string `json:"password"   validate:"required,min=8"`
	FirstName string `json:"first_name" validate:"required"`
	LastName  string `json:"last_name"  validate:"required"`
	Phone     string `json:"phone"      validate:"omitempty,e164"`
	Role      string `json:"role"       validate:"required,oneof=client hotelier"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// accountResponse is the transport view of an account. Intentionally
// separate from the domain type so the JSON contract is not coupled to
// internal changes; the secret hash has no field here at all.
type accountResponse struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	Phone        string     `json:"phone,omitempty"`
	Role         string     `json:"role"`
	ProfileImage string     `json:"profile_image,omitempty"`
	IsActive     bool       `json:"is_active"`
	LastLoginAt  *time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

type authResponse struct {
	User       accountResponse `json:"user"`
	Token      string          `json:"token"`
	RedirectTo string          `json:"redirect_to"`
}
