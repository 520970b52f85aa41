package ports

import (
	"context"

	"github.com/martialavocey05-dev/HoteliaSEM/internal/core/domain"
)

// RegisterInput carries the fields accepted at registration time.
type RegisterInput struct {
	Email     string
	Secret    string
	FirstName string
	LastName  string
	Phone     string
	Role      domain.Role
}

// AuthResult is the outcome of a successful login, registration, or resume:
// the secret-free account, the signed session token, and the dashboard route
// the caller should navigate to.
type AuthResult struct {
	Account    *domain.Account
	Token      string
	RedirectTo string
}

// AuthService mediates login, registration, and session lifecycle.
type AuthService interface {
	Register(ctx context.Context, input RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, email, secret string) (*AuthResult, error)
	// Logout revokes the session carried by token. Idempotent: unknown,
	// expired, or malformed tokens are a safe no-op.
	Logout(ctx context.Context, token string) error
	// Resume rehydrates a session from its token, revalidating the account
	// against the directory. A missing or disabled account revokes the
	// session and fails with the matching domain error.
	Resume(ctx context.Context, token string) (*AuthResult, error)
	// ForceDisconnect revokes every live session of the account. Used by
	// administrative deactivation and deletion.
	ForceDisconnect(ctx context.Context, accountID string) error
}
