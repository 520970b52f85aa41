package ports

import (
	"context"

	"github.com/martialavocey05-dev/HoteliaSEM/internal/core/domain"
)

// ListFilter narrows directory listings. Zero values mean "no filter".
type ListFilter struct {
	Role   domain.Role
	Active *bool
}

// DirectoryStats aggregates account counts for the admin dashboard.
type DirectoryStats struct {
	Total     int64 `json:"total"`
	Clients   int64 `json:"clients"`
	Hoteliers int64 `json:"hoteliers"`
	Admins    int64 `json:"admins"`
	Active    int64 `json:"active"`
}

// AccountRepository is the single source of truth for account records.
// Listings follow insertion order (ascending creation time, then id).
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	List(ctx context.Context, filter ListFilter) ([]*domain.Account, error)
	SetActive(ctx context.Context, id string, active bool) error
	SetLastLogin(ctx context.Context, id string) error
	Delete(ctx context.Context, id string) error
	Count(ctx context.Context) (int64, error)
	Stats(ctx context.Context) (*DirectoryStats, error)
}
