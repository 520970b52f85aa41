package handler

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
)

// ctxIdentity extracts the session identity injected by the Auth middleware
// and performs a fast-fail check before any service call: a non-empty
// account id proves the middleware ran.
func ctxIdentity(c echo.Context) (accountID, role string, err error) {
	accountID, _ = c.Get("account_id").(string)
	if accountID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	role, _ = c.Get("role").(string)
	return accountID, role, nil
}

// ctxToken returns the raw bearer token stored by the Auth middleware, or
// the empty string when the request was unauthenticated.
func ctxToken(c echo.Context) string {
	token, _ := c.Get("token").(string)
	return token
}

// bearerToken extracts a bearer token straight from the request header,
// for endpoints that run without the Auth middleware (logout, login).
func bearerToken(c echo.Context) string {
	parts := strings.SplitN(c.Request().Header.Get("Authorization"), " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return parts[1]
	}
	return ""
}
