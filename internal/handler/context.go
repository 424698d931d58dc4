package handler

import (
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"

	"tutorhub/internal/auth"
	apperrors "tutorhub/internal/errors"
)

// currentUserID resolves the session user from the parsed JWT, or "" when
// the route is unauthenticated.
func currentUserID(c echo.Context) string {
	claims := currentClaims(c)
	if claims == nil {
		return ""
	}
	return claims.UserID
}

// currentClaims returns the verified token claims, or nil.
func currentClaims(c echo.Context) *auth.Claims {
	token, ok := c.Get("user").(*jwt.Token)
	if !ok {
		return nil
	}
	claims, ok := token.Claims.(*auth.Claims)
	if !ok {
		return nil
	}
	return claims
}

// bearerToken extracts the raw token string from the Authorization header.
func bearerToken(c echo.Context) string {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimPrefix(header, prefix)
}

// respondError translates a service error into the standard error payload.
func respondError(err error) error {
	he := apperrors.MapErrorToHTTP(err)
	return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
}
