package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/martialavocey05-dev/HoteliaSEM/internal/core/domain"
	"github.com/martialavocey05-dev/HoteliaSEM/internal/core/ports"
)

type stubDirectoryService struct {
	listFn       func(ctx context.Context, filter ports.ListFilter) ([]*domain.Account, error)
	deactivateFn func(ctx context.Context, actorID, accountID string) (*domain.Account, error)
	reactivateFn func(ctx context.Context, actorID, accountID string) (*domain.Account, error)
	deleteFn     func(ctx context.Context, actorID, accountID string) error
}

func (s *stubDirectoryService) List(ctx context.Context, filter ports.ListFilter) ([]*domain.Account, error) {
	return s.listFn(ctx, filter)
}

func (s *stubDirectoryService) Deactivate(ctx context.Context, actorID, accountID string) (*domain.Account, error) {
	return s.deactivateFn(ctx, actorID, accountID)
}

func (s *stubDirectoryService) Reactivate(ctx context.Context, actorID, accountID string) (*domain.Account, error) {
	return s.reactivateFn(ctx, actorID, accountID)
}

func (s *stubDirectoryService) Delete(ctx context.Context, actorID, accountID string) error {
	return s.deleteFn(ctx, actorID, accountID)
}

func (s *stubDirectoryService) Stats(context.Context) (*ports.DirectoryStats, error) {
	return &ports.DirectoryStats{Total: 12, Clients: 6, Hoteliers: 4, Admins: 2, Active: 12}, nil
}

func (s *stubDirectoryService) AuditLogs(context.Context, ports.AuditFilter) ([]*domain.AuditEntry, int64, error) {
	return []*domain.AuditEntry{{Action: "deactivate", EntityID: "client-001", CreatedAt: time.Now()}}, 1, nil
}

func newAdminContext(method, target string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, target, strings.NewReader(""))
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.Set("account_id", "admin-001")
	c.Set("role", "admin")
	return c, rec
}

func TestAdminHandler_ListUsers_RoleFilter(t *testing.T) {
	stub := &stubDirectoryService{
		listFn: func(_ context.Context, filter ports.ListFilter) ([]*domain.Account, error) {
			if filter.Role != domain.RoleHotelier {
				t.Fatalf("expected hotelier filter, got %q", filter.Role)
			}
			return []*domain.Account{
				{ID: "hotelier-001", Email: "hotel.meridien@hsem.cm", Role: domain.RoleHotelier, Active: true},
			}, nil
		},
	}
	h := NewAdminHandler(stub)

	c, rec := newAdminContext(http.MethodGet, "/admin/users?role=hotelier")

	if err := h.ListUsers(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["count"] != float64(1) {
		t.Fatalf("unexpected count: %v", resp["count"])
	}
}

func TestAdminHandler_ListUsers_BadRole(t *testing.T) {
	stub := &stubDirectoryService{
		listFn: func(context.Context, ports.ListFilter) ([]*domain.Account, error) {
			t.Fatalf("service should not be called")
			return nil, nil
		},
	}
	h := NewAdminHandler(stub)

	c, _ := newAdminContext(http.MethodGet, "/admin/users?role=superuser")

	if err := h.ListUsers(c); !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAdminHandler_Deactivate(t *testing.T) {
	stub := &stubDirectoryService{
		deactivateFn: func(_ context.Context, actorID, accountID string) (*domain.Account, error) {
			if actorID != "admin-001" || accountID != "client-001" {
				t.Fatalf("unexpected args: %s %s", actorID, accountID)
			}
			return &domain.Account{ID: accountID, Role: domain.RoleClient, Active: false}, nil
		},
	}
	h := NewAdminHandler(stub)

	c, rec := newAdminContext(http.MethodPost, "/admin/users/client-001/deactivate")
	c.SetParamNames("id")
	c.SetParamValues("client-001")

	if err := h.Deactivate(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	user, _ := resp["user"].(map[string]any)
	if user["is_active"] != false {
		t.Fatalf("expected deactivated user in response: %+v", user)
	}
}

func TestAdminHandler_Deactivate_AdminProtected(t *testing.T) {
	stub := &stubDirectoryService{
		deactivateFn: func(context.Context, string, string) (*domain.Account, error) {
			return nil, domain.ErrAdminProtected
		},
	}
	h := NewAdminHandler(stub)

	c, _ := newAdminContext(http.MethodPost, "/admin/users/admin-002/deactivate")
	c.SetParamNames("id")
	c.SetParamValues("admin-002")

	if err := h.Deactivate(c); !errors.Is(err, domain.ErrAdminProtected) {
		t.Fatalf("expected ErrAdminProtected, got %v", err)
	}
}

func TestAdminHandler_Delete(t *testing.T) {
	deleted := ""
	stub := &stubDirectoryService{
		deleteFn: func(_ context.Context, _, accountID string) error {
			deleted = accountID
			return nil
		},
	}
	h := NewAdminHandler(stub)

	c, rec := newAdminContext(http.MethodDelete, "/admin/users/client-002")
	c.SetParamNames("id")
	c.SetParamValues("client-002")

	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if deleted != "client-002" {
		t.Fatalf("unexpected delete target: %s", deleted)
	}
}

func TestAdminHandler_Stats(t *testing.T) {
	h := NewAdminHandler(&stubDirectoryService{})

	c, rec := newAdminContext(http.MethodGet, "/admin/stats")

	if err := h.Stats(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var stats ports.DirectoryStats
	if err := json.Unmarshal(rec.Body.Bytes(), &stats); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if stats.Total != 12 || stats.Admins != 2 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestAdminHandler_AuditLogs(t *testing.T) {
	h := NewAdminHandler(&stubDirectoryService{})

	c, rec := newAdminContext(http.MethodGet, "/admin/audit-logs?page=2&per_page=10")

	if err := h.AuditLogs(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["page"] != float64(2) || resp["per_page"] != float64(10) {
		t.Fatalf("pagination not echoed: %+v", resp)
	}
}
