package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/martialavocey05-dev/HoteliaSEM/internal/core/domain"
	"github.com/martialavocey05-dev/HoteliaSEM/internal/core/ports"
)

// DirectoryService implements the administrative account operations.
// Mutations that touch a live session (deactivate, delete) force-disconnect
// it through the AuthService, so an affected account is signed out
// immediately rather than at next token expiry.
type DirectoryService struct {
	accounts ports.AccountRepository
	auth     ports.AuthService
	audit    ports.AuditRepository
	logger   zerolog.Logger
}

func NewDirectoryService(accounts ports.AccountRepository, auth ports.AuthService, audit ports.AuditRepository, logger zerolog.Logger) *DirectoryService {
	return &DirectoryService{accounts: accounts, auth: auth, audit: audit, logger: logger}
}

// List returns accounts matching the filter in insertion order.
func (s *DirectoryService) List(ctx context.Context, filter ports.ListFilter) ([]*domain.Account, error) {
	accounts, err := s.accounts.List(ctx, filter)
	if err != nil {
		return nil, err
	}
	sanitized := make([]*domain.Account, len(accounts))
	for i, a := range accounts {
		sanitized[i] = a.Sanitized()
	}
	return sanitized, nil
}

// Deactivate flips the account's active flag off and revokes its sessions.
// Admin accounts are protected: the call fails and the record is untouched.
func (s *DirectoryService) Deactivate(ctx context.Context, actorID, accountID string) (*domain.Account, error) {
	account, err := s.guardedTarget(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if err := s.accounts.SetActive(ctx, accountID, false); err != nil {
		return nil, err
	}
	if err := s.auth.ForceDisconnect(ctx, accountID); err != nil {
		s.logger.Warn().Err(err).Str("account_id", accountID).Msg("force disconnect failed")
	}

	s.recordAudit(ctx, actorID, domain.AuditActionDeactivate, accountID,
		map[string]any{"is_active": account.Active},
		map[string]any{"is_active": false})

	s.logger.Info().Str("account_id", accountID).Str("actor_id", actorID).Msg("account deactivated")

	account.Active = false
	return account.Sanitized(), nil
}

// Reactivate flips the account's active flag back on. Same admin protection
// as Deactivate; live sessions are not touched because a disabled account
// cannot have any.
func (s *DirectoryService) Reactivate(ctx context.Context, actorID, accountID string) (*domain.Account, error) {
	account, err := s.guardedTarget(ctx, accountID)
	if err != nil {
		return nil, err
	}

	if err := s.accounts.SetActive(ctx, accountID, true); err != nil {
		return nil, err
	}

	s.recordAudit(ctx, actorID, domain.AuditActionActivate, accountID,
		map[string]any{"is_active": account.Active},
		map[string]any{"is_active": true})

	s.logger.Info().Str("account_id", accountID).Str("actor_id", actorID).Msg("account reactivated")

	account.Active = true
	return account.Sanitized(), nil
}

// Delete removes the account permanently and revokes its sessions.
func (s *DirectoryService) Delete(ctx context.Context, actorID, accountID string) error {
	account, err := s.guardedTarget(ctx, accountID)
	if err != nil {
		return err
	}

	if err := s.accounts.Delete(ctx, accountID); err != nil {
		return err
	}
	if err := s.auth.ForceDisconnect(ctx, accountID); err != nil {
		s.logger.Warn().Err(err).Str("account_id", accountID).Msg("force disconnect failed")
	}

	s.recordAudit(ctx, actorID, domain.AuditActionDelete, accountID,
		map[string]any{"email": account.Email, "role": string(account.Role)}, nil)

	s.logger.Info().Str("account_id", accountID).Str("actor_id", actorID).Msg("account deleted")
	return nil
}

// Stats aggregates directory counts for the admin dashboard.
func (s *DirectoryService) Stats(ctx context.Context) (*ports.DirectoryStats, error) {
	return s.accounts.Stats(ctx)
}

// AuditLogs returns the audit trail page described by the filter.
func (s *DirectoryService) AuditLogs(ctx context.Context, filter ports.AuditFilter) ([]*domain.AuditEntry, int64, error) {
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.PerPage < 1 || filter.PerPage > 200 {
		filter.PerPage = 50
	}
	return s.audit.List(ctx, filter)
}

// guardedTarget loads the mutation target and enforces the admin-protection
// rule shared by deactivate, reactivate, and delete.
func (s *DirectoryService) guardedTarget(ctx context.Context, accountID string) (*domain.Account, error) {
	account, err := s.accounts.FindByID(ctx, accountID)
	if err != nil {
		return nil, err
	}
	if account.Role == domain.RoleAdmin {
		return nil, domain.ErrAdminProtected
	}
	return account, nil
}

func (s *DirectoryService) recordAudit(ctx context.Context, actorID, action, entityID string, oldValues, newValues map[string]any) {
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
