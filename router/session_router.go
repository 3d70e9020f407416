// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package router

import (
	"github.com/l3montree-dev/incidentguard/controllers"
	"github.com/l3montree-dev/incidentguard/middlewares"
	"github.com/l3montree-dev/incidentguard/shared"
	"github.com/labstack/echo/v4"
)

type SessionRouter struct {
	*echo.Group
	// Guard checks the role permissions of the session. Ownership rules are
	// left to the services.
	Guard shared.RBACMiddleware
	// AdminOnly rejects every role but admin.
	AdminOnly shared.MiddlewareFunc
}

func NewSessionRouter(
	apiV1Router APIV1Router,
	verifier middlewares.ClaimVerifier,
	auditLogService shared.AuditLogService,
	authorizer shared.Authorizer,
	sessionController *controllers.SessionController,
) SessionRouter {
	sessionRouter := apiV1Router.Group.Group("",
		middlewares.SessionMiddleware(verifier, auditLogService),
		middlewares.RateLimitFromEnv(),
	)

	adminOnly := middlewares.ClaimGuard(authorizer.CanViewAuditLog, "admin role required")

	authenticated := sessionRouter.Group("", middlewares.RequireAuthenticated())
	authenticated.GET("/me/permissions/", sessionController.Permissions)
	authenticated.POST("/auth/logout/", sessionController.Logout)

	sessionRouter.GET("/info/", apiV1Router.info, adminOnly)

	return SessionRouter{
		Group:     sessionRouter,
		Guard:     middlewares.PermissionGuard(authorizer),
		AdminOnly: adminOnly,
	}
}
