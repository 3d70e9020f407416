package middlewares

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/l3montree-dev/incidentguard/monitoring"
	"github.com/l3montree-dev/incidentguard/shared"
	"github.com/labstack/echo/v4"
)

func RequireAuthenticated() shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			if !shared.GetSession(ctx).IsAuthenticated() {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			return next(ctx)
		}
	}
}

// PermissionGuard rejects the request unless the role of the session holds
// all given permissions. Ownership rules are checked by the services.
func PermissionGuard(authorizer shared.Authorizer) shared.RBACMiddleware {
	return func(permissions ...shared.Permission) shared.MiddlewareFunc {
		return func(next echo.HandlerFunc) echo.HandlerFunc {
			return func(ctx shared.Context) error {
				session := shared.GetSession(ctx)
				if !session.IsAuthenticated() {
					return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
				}

				if !authorizer.HasAll(session.GetRole(), permissions...) {
					names := make([]string, len(permissions))
					for i, p := range permissions {
						names[i] = string(p)
						monitoring.AuthorizationDeniedAmount.WithLabelValues(string(p)).Inc()
					}
					slog.Warn("access denied in PermissionGuard", "user", session.GetUserID(), "role", session.GetRole(), "permissions", names)
					return echo.NewHTTPError(http.StatusForbidden, "missing permission: "+strings.Join(names, ", "))
				}
				return next(ctx)
			}
		}
	}
}

// ClaimGuard is for checks that are not a plain permission, like admin only
// routes.
func ClaimGuard(check func(claim shared.Claim) bool, message string) shared.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx shared.Context) error {
			session := shared.GetSession(ctx)
			if !session.IsAuthenticated() {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			if !check(session.GetClaim()) {
				return echo.NewHTTPError(http.StatusForbidden, message)
			}
			return next(ctx)
		}
	}
}
