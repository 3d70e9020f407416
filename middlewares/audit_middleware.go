package middlewares

import (
	"github.com/l3montree-dev/incidentguard/shared"
	"github.com/labstack/echo/v4"
)

// AuditContext stores the request metadata audit entries are enriched with
// in the request context. Services read it from there.
func AuditContext() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			req := ctx.Request()
			meta := shared.AuditMeta{
				Method:    req.Method,
				Path:      req.URL.Path,
				IPAddress: ctx.RealIP(),
				UserAgent: req.UserAgent(),
			}
			ctx.SetRequest(req.WithContext(shared.WithAuditMeta(req.Context(), meta)))
			return next(ctx)
		}
	}
}
