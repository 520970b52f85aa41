package service

import (
	"context"
	"crypto/rand"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/martialavocey05-dev/HoteliaSEM/internal/core/domain"
	"github.com/martialavocey05-dev/HoteliaSEM/internal/core/ports"
)

// AuthService implements registration, login, and the session lifecycle.
// Sessions are revocable: the signed token is only half of the story, the
// session id must also still be present in the store.
type AuthService struct {
	accounts  ports.AccountRepository
	sessions  ports.SessionStore
	audit     ports.AuditRepository
	jwtSecret string
	tokenTTL  time.Duration
	logger    zerolog.Logger
}

func NewAuthService(accounts ports.AccountRepository, sessions ports.SessionStore, audit ports.AuditRepository, jwtSecret string, tokenTTL time.Duration, logger zerolog.Logger) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	return &AuthService{
		accounts:  accounts,
		sessions:  sessions,
		audit:     audit,
		jwtSecret: jwtSecret,
		tokenTTL:  tokenTTL,
		logger:    logger,
	}
}

// Register creates a new account and establishes a session for it, exactly
// as a successful login would.
func (s *AuthService) Register(ctx context.Context, input ports.RegisterInput) (*ports.AuthResult, error) {
	if _, err := domain.ParseRole(string(input.Role)); err != nil {
		return nil, err
	}
	// Admin accounts are seeded, never self-registered.
	if input.Role == domain.RoleAdmin {
		return nil, domain.ErrInvalidRole
	}

	email := domain.NormalizeEmail(input.Email)
	if _, err := s.accounts.FindByEmail(ctx, email); err == nil {
		return nil, domain.ErrDuplicateEmail
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Secret), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := &domain.Account{
		ID:         "user-" + randomHex(8),
		Email:      email,
		SecretHash: string(hash),
		FirstName:  input.FirstName,
		LastName:   input.LastName,
		Phone:      input.Phone,
		Role:       input.Role,
		Active:     true,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	created, err := s.accounts.Create(ctx, account)
	if err != nil {
		return nil, err
	}

	s.recordAudit(ctx, created.ID, domain.AuditActionRegister, created.ID, nil, map[string]any{
		"email": created.Email,
		"role":  string(created.Role),
	})

	s.logger.Info().Str("account_id", created.ID).Str("role", string(created.Role)).Msg("account registered")

	return s.establishSession(ctx, created)
}

// Login authenticates an account by email and secret. Failures are reported
// in the same order the front end expects: unknown email, then bad secret,
// then disabled account.
func (s *AuthService) Login(ctx context.Context, email, secret string) (*ports.AuthResult, error) {
	account, err := s.accounts.FindByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(account.SecretHash), []byte(secret)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	if !account.Active {
		return nil, domain.ErrAccountDisabled
	}

	if err := s.accounts.SetLastLogin(ctx, account.ID); err != nil {
		s.logger.Warn().Err(err).Str("account_id", account.ID).Msg("failed to record last login")
	}

	s.recordAudit(ctx, account.ID, domain.AuditActionLogin, account.ID, nil, nil)

	return s.establishSession(ctx, account)
}

// Logout revokes the session carried by token. Calling it with an unknown,
// expired, or malformed token is a safe no-op.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	session, err := s.parseSession(token)
	if err != nil {
		return nil
	}

	if err := s.sessions.Delete(ctx, session.ID); err != nil {
		return err
	}

	s.recordAudit(ctx, session.AccountID, domain.AuditActionLogout, session.AccountID, nil, nil)
	s.logger.Info().Str("account_id", session.AccountID).Msg("session revoked")
	return nil
}

// Resume rehydrates a session from its token. The account is revalidated
// against the directory: a session whose account has been deleted or
// disabled since issuance is revoked on the spot rather than trusted.
func (s *AuthService) Resume(ctx context.Context, token string) (*ports.AuthResult, error) {
	claims, err := s.parseSession(token)
	if err != nil {
		return nil, domain.ErrSessionRevoked
	}

	session, err := s.sessions.Find(ctx, claims.ID)
	if err != nil {
		if errors.Is(err, domain.ErrSessionRevoked) {
			return nil, domain.ErrSessionRevoked
		}
		return nil, err
	}

	account, err := s.accounts.FindByID(ctx, session.AccountID)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			_, _ = s.sessions.DeleteByAccount(ctx, session.AccountID)
		}
		return nil, err
	}
	if !account.Active {
		_, _ = s.sessions.DeleteByAccount(ctx, account.ID)
		return nil, domain.ErrAccountDisabled
	}

	return &ports.AuthResult{
		Account:    account.Sanitized(),
		Token:      token,
		RedirectTo: domain.DashboardRoute(account.Role),
	}, nil
}

// ForceDisconnect revokes every live session of the account. Used when an
// administrator deactivates or deletes it. No-op when no session exists.
func (s *AuthService) ForceDisconnect(ctx context.Context, accountID string) error {
	n, err := s.sessions.DeleteByAccount(ctx, accountID)
	if err != nil {
		return err
	}
	if n > 0 {
		s.logger.Info().Str("account_id", accountID).Int("sessions", n).Msg("forced disconnect")
	}
	return nil
}

// establishSession issues a signed token, stores the session, and resolves
// the role dashboard route.
func (s *AuthService) establishSession(ctx context.Context, account *domain.Account) (*ports.AuthResult, error) {
	now := time.Now().UTC()
	session := &domain.Session{
		ID:        randomHex(16),
		AccountID: account.ID,
		Email:     account.Email,
		Role:      account.Role,
		CreatedAt: now,
		ExpiresAt: now.Add(s.tokenTTL),
	}

	token, err := s.signToken(session)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Save(ctx, session); err != nil {
		return nil, err
	}

	return &ports.AuthResult{
		Account:    account.Sanitized(),
		Token:      token,
		RedirectTo: domain.DashboardRoute(account.Role),
	}, nil
}

func (s *AuthService) signToken(session *domain.Session) (string, error) {
	claims := jwt.MapClaims{
		"jti":   session.ID,
		"sub":   session.AccountID,
		"email": session.Email,
		"role":  string(session.Role),
		"iat":   session.CreatedAt.Unix(),
		"exp":   session.ExpiresAt.Unix(),
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString([]byte(s.jwtSecret))
}

// parseSession extracts the session identity from a signed token without
// consulting the store.
func (s *AuthService) parseSession(token string) (*domain.Session, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return []byte(s.jwtSecret), nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrSessionRevoked
	}

	id, _ := claims["jti"].(string)
	accountID, _ := claims["sub"].(string)
	if id == "" || accountID == "" {
		return nil, domain.ErrSessionRevoked
	}

	role, _ := claims["role"].(string)
	email, _ := claims["email"].(string)
	return &domain.Session{
		ID:        id,
		AccountID: accountID,
		Email:     email,
		Role:      domain.Role(role),
	}, nil
}

func (s *AuthService) recordAudit(ctx context.Context, actorID, action, entityID string, oldValues, newValues map[string]any) {
	if s.audit == nil {
		return
	}
	entry := &domain.AuditEntry{
		ActorID:    actorID,
		Action:     action,
		EntityType: "account",
		EntityID:   entityID,
		OldValues:  oldValues,
		NewValues:  newValues,
		CreatedAt:  time.Now().UTC(),
	}
	if err := s.audit.Insert(ctx, entry); err != nil {
		s.logger.Warn().Err(err).Str("action", action).Msg("audit write failed")
	}
}

// randomHex returns n random bytes hex-encoded, falling back to a timestamp
// when the system source is unavailable.
func randomHex(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return fmt.Sprintf("%x", time.Now().UnixNano())
	}
	return fmt.Sprintf("%x", b)
}
