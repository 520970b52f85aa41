package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/martialavocey05-dev/HoteliaSEM/internal/api/metrics"
	"github.com/martialavocey05-dev/HoteliaSEM/internal/core/domain"
	"github.com/martialavocey05-dev/HoteliaSEM/internal/core/ports"
)

// AdminHandler exposes the user-management view: listing, the lifecycle
// mutations (deactivate/activate/delete), directory stats, and the audit
// trail. All routes sit behind the Auth + RBAC(admin) middleware.
type AdminHandler struct {
	directory ports.DirectoryService
}

func NewAdminHandler(directory ports.DirectoryService) *AdminHandler {
	return &AdminHandler{directory: directory}
}

// ListUsers returns accounts, optionally filtered by role and active flag,
// in directory insertion order.
//
// @Summary      List accounts
// @Tags         admin
// @Produce      json
// @Param        role    query  string  false  "Filter by role"    Enums(client, hotelier, admin)
// @Param        active  query  bool    false  "Filter by active flag"
// @Success      200  {object}  userListResponse
// @Router       /admin/users [get]
func (h *AdminHandler) ListUsers(c echo.Context) error {
	filter := ports.ListFilter{}

	if raw := c.QueryParam("role"); raw != "" {
		role, err := domain.ParseRole(raw)
		if err != nil {
			return err
		}
		filter.Role = role
	}
	if raw := c.QueryParam("active"); raw != "" {
		active, err := strconv.ParseBool(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "active must be true or false")
		}
		filter.Active = &active
	}

	accounts, err := h.directory.List(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, userListResponse{
		Users: toAccountListResponse(accounts),
		Count: len(accounts),
	})
}

// Deactivate disables an account and force-disconnects its sessions.
//
// @Summary      Deactivate an account
// @Tags         admin
// @Produce      json
// @Param        id  path  string  true  "Account id"
// @Success      200  {object}  mutationResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/users/{id}/deactivate [post]
func (h *AdminHandler) Deactivate(c echo.Context) error {
	actorID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	account, err := h.directory.Deactivate(c.Request().Context(), actorID, c.Param("id"))
	if err != nil {
		metrics.DirectoryMutationsTotal.WithLabelValues("deactivate", mutationResult(err)).Inc()
		return err
	}

	metrics.DirectoryMutationsTotal.WithLabelValues("deactivate", "ok").Inc()
	metrics.SessionsRevokedTotal.WithLabelValues("force_disconnect").Inc()

	return c.JSON(http.StatusOK, mutationResponse{
		Message: "account deactivated",
		User:    toAccountResponse(account),
	})
}

// Activate re-enables a previously deactivated account.
//
// @Summary      Reactivate an account
// @Tags         admin
// @Produce      json
// @Param        id  path  string  true  "Account id"
// @Success      200  {object}  mutationResponse
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/users/{id}/activate [post]
func (h *AdminHandler) Activate(c echo.Context) error {
	actorID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	account, err := h.directory.Reactivate(c.Request().Context(), actorID, c.Param("id"))
	if err != nil {
		metrics.DirectoryMutationsTotal.WithLabelValues("activate", mutationResult(err)).Inc()
		return err
	}

	metrics.DirectoryMutationsTotal.WithLabelValues("activate", "ok").Inc()

	return c.JSON(http.StatusOK, mutationResponse{
		Message: "account reactivated",
		User:    toAccountResponse(account),
	})
}

// Delete removes an account permanently and force-disconnects its sessions.
//
// @Summary      Delete an account
// @Tags         admin
// @Param        id  path  string  true  "Account id"
// @Success      204
// @Failure      403  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /admin/users/{id} [delete]
func (h *AdminHandler) Delete(c echo.Context) error {
	actorID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}

	if err := h.directory.Delete(c.Request().Context(), actorID, c.Param("id")); err != nil {
		metrics.DirectoryMutationsTotal.WithLabelValues("delete", mutationResult(err)).Inc()
		return err
	}

	metrics.DirectoryMutationsTotal.WithLabelValues("delete", "ok").Inc()
	metrics.SessionsRevokedTotal.WithLabelValues("force_disconnect").Inc()

	return c.NoContent(http.StatusNoContent)
}

// Stats returns directory-wide account counts.
//
// @Summary      Directory statistics
// @Tags         admin
// @Produce      json
// @Success      200  {object}  ports.DirectoryStats
// @Router       /admin/stats [get]
func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.directory.Stats(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, stats)
}

// AuditLogs returns one page of the audit trail, newest first.
//
// @Summary      Audit trail
// @Tags         admin
// @Produce      json
// @Param        page      query  int     false  "Page number (1-based)"
// @Param        per_page  query  int     false  "Page size"
// @Param        action    query  string  false  "Filter by action"
// @Success      200  {object}  auditListResponse
// @Router       /admin/audit-logs [get]
func (h *AdminHandler) AuditLogs(c echo.Context) error {
	page, _ := strconv.Atoi(c.QueryParam("page"))
	perPage, _ := strconv.Atoi(c.QueryParam("per_page"))
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 50
	}

	filter := ports.AuditFilter{
		ActorID:    c.QueryParam("actor_id"),
		Action:     c.QueryParam("action"),
		EntityType: c.QueryParam("entity_type"),
		Page:       page,
		PerPage:    perPage,
	}

	entries, total, err := h.directory.AuditLogs(c.Request().Context(), filter)
	if err != nil {
		return err
	}

	logs := make([]auditEntryResponse, len(entries))
	for i, e := range entries {
		logs[i] = auditEntryResponse{
			ID:         e.ID,
			ActorID:    e.ActorID,
			Action:     e.Action,
			EntityType: e.EntityType,
			EntityID:   e.EntityID,
			OldValues:  e.OldValues,
			NewValues:  e.NewValues,
			CreatedAt:  e.CreatedAt.UTC(),
		}
	}

	return c.JSON(http.StatusOK, auditListResponse{
		Logs:    logs,
		Total:   total,
		Page:    page,
		PerPage: perPage,
	})
}

func mutationResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrAdminProtected):
		return "admin_protected"
	case errors.Is(err, domain.ErrAccountNotFound):
		return "not_found"
	default:
		return "error"
	}
}
