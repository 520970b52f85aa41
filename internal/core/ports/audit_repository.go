package ports

import (
	"context"

	"github.com/martialavocey05-dev/HoteliaSEM/internal/core/domain"
)

// AuditFilter narrows audit-log queries. Page numbering starts at 1.
type AuditFilter struct {
	ActorID    string
	Action     string
	EntityType string
	Page       int
	PerPage    int
}

// AuditRepository persists the administrative audit trail.
type AuditRepository interface {
	Insert(ctx context.Context, entry *domain.AuditEntry) error
	List(ctx context.Context, filter AuditFilter) ([]*domain.AuditEntry, int64, error)
}
