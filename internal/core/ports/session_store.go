package ports

import (
	"context"

	"github.com/martialavocey05-dev/HoteliaSEM/internal/core/domain"
)

// SessionStore holds issued sessions until they expire or are revoked.
// A session absent from the store is revoked: the auth middleware rejects
// tokens whose id is no longer present.
type SessionStore interface {
	Save(ctx context.Context, session *domain.Session) error
	Find(ctx context.Context, sessionID string) (*domain.Session, error)
	Delete(ctx context.Context, sessionID string) error
	// DeleteByAccount revokes every live session owned by the account and
	// returns how many were removed. Zero removals is not an error.
	DeleteByAccount(ctx context.Context, accountID string) (int, error)
}
