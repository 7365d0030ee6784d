package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"inclusionnet/internal/domain/user"
	"inclusionnet/internal/security"
)

const actorKey = "inclusionnet.actor"

type TokenParser interface {
	Parse(token string) (*security.Claims, error)
}

// Auth requires a valid "Authorization: Bearer <jwt>" header and stores the
// caller's actor on the context.
func Auth(tp TokenParser) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := c.Request().Header.Get(echo.HeaderAuthorization)
			scheme, token, ok := strings.Cut(strings.TrimSpace(raw), " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "missing bearer token"})
			}
			claims, err := tp.Parse(strings.TrimSpace(token))
			if err != nil {
				msg := "invalid token"
				if errors.Is(err, security.ErrTokenExpired) {
					msg = "token expired"
				}
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": msg})
			}
			c.Set(actorKey, claims.Actor())
			return next(c)
		}
	}
}

// RequireRole must run after Auth.
func RequireRole(roles ...user.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			a, ok := ActorFrom(c)
			if !ok {
				return c.JSON(http.StatusUnauthorized, map[string]string{"error": "unauthenticated"})
			}
			for _, r := range roles {
				if a.Role == r {
					return next(c)
				}
			}
			return c.JSON(http.StatusForbidden, map[string]string{"error": user.ErrForbidden.Error()})
		}
	}
}

func ActorFrom(c echo.Context) (user.Actor, bool) {
	a, ok := c.Get(actorKey).(user.Actor)
	return a, ok
}

// SetActor is used by handler tests that skip the token round trip.
func SetActor(c echo.Context, a user.Actor) { c.Set(actorKey, a) }
