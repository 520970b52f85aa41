package domain

import (
	"errors"
	"strings"
	"time"
)

// Role classifies an account within the platform.
type Role string

const (
	RoleClient   Role = "client"
	RoleHotelier Role = "hotelier"
	RoleAdmin    Role = "admin"
)

// dashboardRoutes maps each role to its landing route after authentication.
var dashboardRoutes = map[Role]string{
	RoleClient:   "/client/account",
	RoleHotelier: "/partner/dashboard",
	RoleAdmin:    "/admin/dashboard",
}

// AnonymousRoute is where unauthenticated visitors land.
const AnonymousRoute = "/"

var ErrAccountNotFound = errors.New("account not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrAccountDisabled = errors.New("account disabled")
var ErrDuplicateEmail = errors.New("email already registered")
var ErrAdminProtected = errors.New("admin accounts cannot be modified")
var ErrSessionRevoked = errors.New("session revoked")
var ErrInvalidRole = errors.New("invalid role")

// ParseRole validates a raw role string.
func ParseRole(s string) (Role, error) {
	switch Role(s) {
	case RoleClient, RoleHotelier, RoleAdmin:
		return Role(s), nil
	}
	return "", ErrInvalidRole
}

// DashboardRoute returns the landing route for a role. Unknown roles fall
// back to the anonymous landing route.
func DashboardRoute(r Role) string {
	if route, ok := dashboardRoutes[r]; ok {
		return route
	}
	return AnonymousRoute
}

// Account models one registered identity in the directory.
type Account struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	SecretHash   string    `json:"-"`
	FirstName    string    `json:"first_name"`
	LastName     string    `json:"last_name"`
	Phone        string    `json:"phone,omitempty"`
	Role         Role      `json:"role"`
	ProfileImage string    `json:"profile_image,omitempty"`
	Active       bool      `json:"is_active"`
	LastLoginAt  time.Time `json:"last_login_at,omitempty"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// NormalizeEmail is the canonical form used for uniqueness and lookups.
// Email comparison is case-insensitive across the whole directory.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// Sanitized returns a copy safe to hand to transport layers: the secret hash
// is stripped so it can never leak into a session snapshot or response body.
func (a *Account) Sanitized() *Account {
	if a == nil {
		return nil
	}
	clone := *a
	clone.SecretHash = ""
	return &clone
}
