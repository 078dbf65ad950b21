package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/devharu/snaptag/backend/internal/services"
)

// userIDKey is the echo context key under which the authenticated user id is stored.
const userIDKey = "userID"

// JWTAuthMiddleware checks for a valid access token and stores the caller's
// user id in the request context.
func JWTAuthMiddleware(issuer *services.TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Missing Authorization header")
			}

			// Expecting "Bearer <token>"
			parts := strings.Split(authHeader, " ")
			if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid Authorization header format")
			}

			claims, err := issuer.ParseAccess(parts[1])
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token")
			}

			userID, err := claims.UserID()
			if err != nil {
				return echo.NewHTTPError(http.StatusUnauthorized, "Invalid token payload")
			}

			c.Set(userIDKey, userID)

			return next(c)
		}
	}
}

// UserIDFromContext returns the authenticated user id set by JWTAuthMiddleware,
// or 0 when the request is unauthenticated.
func UserIDFromContext(c echo.Context) uint {
	if id, ok := c.Get(userIDKey).(uint); ok {
		return id
	}
	return 0
}
