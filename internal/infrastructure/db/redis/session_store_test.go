package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"

	"github.com/martialavocey05-dev/HoteliaSEM/internal/core/domain"
)

func newTestStore(t *testing.T) (*SessionStore, *miniredis.Miniredis) {
	t.Helper()
	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })
	return NewSessionStore(client), mr
}

func testSession(id, accountID string) *domain.Session {
	now := time.Now().UTC()
	return &domain.Session{
		ID:        id,
		AccountID: accountID,
		Email:     "client@example.com",
		Role:      domain.RoleClient,
		CreatedAt: now,
		ExpiresAt: now.Add(time.Hour),
	}
}

func TestSessionStore_SaveFind(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	session := testSession("sid-1", "client-001")
	if err := store.Save(ctx, session); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	found, err := store.Find(ctx, "sid-1")
	if err != nil {
		t.Fatalf("find failed: %v", err)
	}
	if found.AccountID != "client-001" || found.Role != domain.RoleClient {
		t.Fatalf("unexpected session: %+v", found)
	}
}

func TestSessionStore_FindAbsent(t *testing.T) {
	store, _ := newTestStore(t)

	if _, err := store.Find(context.Background(), "nope"); err != domain.ErrSessionRevoked {
		t.Fatalf("expected ErrSessionRevoked, got %v", err)
	}
}

func TestSessionStore_SaveExpired(t *testing.T) {
	store, _ := newTestStore(t)

	session := testSession("sid-old", "client-001")
	session.ExpiresAt = time.Now().UTC().Add(-time.Minute)
	if err := store.Save(context.Background(), session); err == nil {
		t.Fatalf("expected error saving an already-expired session")
	}
}

func TestSessionStore_DeleteIdempotent(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, testSession("sid-1", "client-001")); err != nil {
		t.Fatalf("save failed: %v", err)
	}
	if err := store.Delete(ctx, "sid-1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if _, err := store.Find(ctx, "sid-1"); err != domain.ErrSessionRevoked {
		t.Fatalf("session still present after delete: %v", err)
	}
	// Deleting again, or deleting something that never existed, is a no-op.
	if err := store.Delete(ctx, "sid-1"); err != nil {
		t.Fatalf("second delete not a no-op: %v", err)
	}
	if err := store.Delete(ctx, "never-was"); err != nil {
		t.Fatalf("unknown delete not a no-op: %v", err)
	}
}

func TestSessionStore_DeleteByAccount(t *testing.T) {
	store, _ := newTestStore(t)
	ctx := context.Background()

	for _, id := range []string{"sid-a", "sid-b"} {
		if err := store.Save(ctx, testSession(id, "client-001")); err != nil {
			t.Fatalf("save %s failed: %v", id, err)
		}
	}
	if err := store.Save(ctx, testSession("sid-other", "client-002")); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	n, err := store.DeleteByAccount(ctx, "client-001")
	if err != nil {
		t.Fatalf("delete by account failed: %v", err)
	}
	if n != 2 {
		t.Fatalf("expected 2 revoked sessions, got %d", n)
	}
	if _, err := store.Find(ctx, "sid-a"); err != domain.ErrSessionRevoked {
		t.Fatalf("sid-a survived: %v", err)
	}
	if _, err := store.Find(ctx, "sid-other"); err != nil {
		t.Fatalf("unrelated session lost: %v", err)
	}

	// No sessions left: a repeat call removes nothing.
	n, err = store.DeleteByAccount(ctx, "client-001")
	if err != nil {
		t.Fatalf("repeat delete failed: %v", err)
	}
	if n != 0 {
		t.Fatalf("expected 0 revoked sessions, got %d", n)
	}
}

func TestSessionStore_MalformedPayload(t *testing.T) {
	store, mr := newTestStore(t)

	mr.Set("session:broken", "{not json")
	if _, err := store.Find(context.Background(), "broken"); err != domain.ErrSessionRevoked {
		t.Fatalf("malformed payload should read as revoked, got %v", err)
	}
	// The broken record is dropped, not left to fail forever.
	if mr.Exists("session:broken") {
		t.Fatalf("malformed session not cleaned up")
	}
}

func TestSessionStore_Expiry(t *testing.T) {
	store, mr := newTestStore(t)
	ctx := context.Background()

	if err := store.Save(ctx, testSession("sid-ttl", "client-001")); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	mr.FastForward(2 * time.Hour)

	if _, err := store.Find(ctx, "sid-ttl"); err != domain.ErrSessionRevoked {
		t.Fatalf("expired session should be revoked, got %v", err)
	}
}
