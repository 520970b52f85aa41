package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/martialavocey05-dev/HoteliaSEM/internal/api/metrics"
	"github.com/martialavocey05-dev/HoteliaSEM/internal/core/domain"
	"github.com/martialavocey05-dev/HoteliaSEM/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new account and signs it in.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Email:     req.Email,
		Secret:    req.Password,
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Phone:     req.Phone,
		Role:      domain.Role(req.Role),
	})
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(string(result.Account.Role)).Inc()

	return c.JSON(http.StatusCreated, toAuthResponse(result))
}

// Login authenticates an account and returns a session token plus the
// role-specific dashboard route.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	// Re-login while already authenticated is an implicit logout-then-login:
	// any session the caller presents is revoked before the new one is
	// issued.
	if token := bearerToken(c); token != "" {
		_ = h.authService.Logout(c.Request().Context(), token)
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginResult(err)).Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, toAuthResponse(result))
}

// Logout revokes the caller's session. Idempotent: an absent or already
// revoked session still yields 204.
//
// @Summary      Logout
// @Tags         auth
// @Success      204
// @Router       /auth/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	token := ctxToken(c)
	if token == "" {
		token = bearerToken(c)
	}
	if token != "" {
		if err := h.authService.Logout(c.Request().Context(), token); err != nil {
			return err
		}
		metrics.SessionsRevokedTotal.WithLabelValues("logout").Inc()
	}
	return c.NoContent(http.StatusNoContent)
}

// Session rehydrates the caller's session, revalidating the account against
// the directory. The front end calls this on mount to decide between
// rendering, the login route, and the neutral default route.
//
// @Summary      Current session
// @Tags         auth
// @Produce      json
// @Success      200  {object}  authResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /auth/session [get]
func (h *AuthHandler) Session(c echo.Context) error {
	result, err := h.authService.Resume(c.Request().Context(), ctxToken(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAuthResponse(result))
}

func loginResult(err error) string {
	switch {
	case errors.Is(err, domain.ErrAccountNotFound):
		return "not_found"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "bad_credentials"
	case errors.Is(err, domain.ErrAccountDisabled):
		return "disabled"
	default:
		return "error"
	}
}
