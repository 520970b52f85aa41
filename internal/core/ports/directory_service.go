package ports

import (
	"context"

	"github.com/martialavocey05-dev/HoteliaSEM/internal/core/domain"
)

// DirectoryService exposes the administrative view of the account directory.
// Mutations enforce the admin-protection rule: admin accounts can never be
// deactivated, reactivated, or deleted.
type DirectoryService interface {
	List(ctx context.Context, filter ListFilter) ([]*domain.Account, error)
	Deactivate(ctx context.Context, actorID, accountID string) (*domain.Account, error)
	Reactivate(ctx context.Context, actorID, accountID string) (*domain.Account, error)
	Delete(ctx context.Context, actorID, accountID string) error
	Stats(ctx context.Context) (*DirectoryStats, error)
	AuditLogs(ctx context.Context, filter AuditFilter) ([]*domain.AuditEntry, int64, error)
}
