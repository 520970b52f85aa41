package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/martialavocey05-dev/HoteliaSEM/internal/core/domain"
)

// SessionStore keeps issued sessions in Redis.
// Key layout:
//
//	session:<id>        → JSON session record, TTL = remaining lifetime
//	sessions:acct:<id>  → set of session ids owned by the account, used for
//	                      forced disconnect when an admin deactivates or
//	                      deletes the account
type SessionStore struct {
	client *redis.Client
}

// NewSessionStore creates a SessionStore wrapping the given Redis client.
func NewSessionStore(client *redis.Client) *SessionStore {
	return &SessionStore{client: client}
}

// Save stores the session and indexes it under its account, both expiring
// with the session's remaining lifetime.
func (s *SessionStore) Save(ctx context.Context, session *domain.Session) error {
	payload, err := json.Marshal(session)
	if err != nil {
		return fmt.Errorf("encode session: %w", err)
	}

	ttl := time.Until(session.ExpiresAt)
	if ttl <= 0 {
		return fmt.Errorf("session %s already expired", session.ID)
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, sessionKey(session.ID), payload, ttl)
	pipe.SAdd(ctx, accountKey(session.AccountID), session.ID)
	// The index outlives no session: refresh its TTL to the longest-lived
	// member so it cannot leak forever.
	pipe.Expire(ctx, accountKey(session.AccountID), ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// Find loads a session by id. Absent or unreadable records report
// ErrSessionRevoked; a payload that no longer parses is dropped rather than
// surfaced as a decode failure.
func (s *SessionStore) Find(ctx context.Context, sessionID string) (*domain.Session, error) {
	payload, err := s.client.Get(ctx, sessionKey(sessionID)).Bytes()
	if err == redis.Nil {
		return nil, domain.ErrSessionRevoked
	}
	if err != nil {
		return nil, fmt.Errorf("find session: %w", err)
	}

	var session domain.Session
	if err := json.Unmarshal(payload, &session); err != nil {
		_ = s.client.Del(ctx, sessionKey(sessionID)).Err()
		return nil, domain.ErrSessionRevoked
	}
	return &session, nil
}

// Delete revokes a single session. Deleting an absent session is a no-op.
func (s *SessionStore) Delete(ctx context.Context, sessionID string) error {
	session, err := s.Find(ctx, sessionID)
	if err != nil {
		if err == domain.ErrSessionRevoked {
			return nil
		}
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, sessionKey(sessionID))
	pipe.SRem(ctx, accountKey(session.AccountID), sessionID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("delete session: %w", err)
	}
	return nil
}

// DeleteByAccount revokes every live session of the account and returns how
// many were removed.
func (s *SessionStore) DeleteByAccount(ctx context.Context, accountID string) (int, error) {
	ids, err := s.client.SMembers(ctx, accountKey(accountID)).Result()
	if err != nil {
		return 0, fmt.Errorf("list account sessions: %w", err)
	}
	if len(ids) == 0 {
		return 0, nil
	}

	keys := make([]string, 0, len(ids)+1)
	for _, id := range ids {
		keys = append(keys, sessionKey(id))
	}
	keys = append(keys, accountKey(accountID))

	if err := s.client.Del(ctx, keys...).Err(); err != nil {
		return 0, fmt.Errorf("revoke account sessions: %w", err)
	}
	return len(ids), nil
}

func sessionKey(id string) string {
	return "session:" + id
}

func accountKey(accountID string) string {
	return "sessions:acct:" + accountID
}
