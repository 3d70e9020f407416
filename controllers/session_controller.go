package controllers

import (
	"net/http"

	"github.com/l3montree-dev/incidentguard/dtos"
	"github.com/l3montree-dev/incidentguard/shared"
	"github.com/l3montree-dev/incidentguard/utils"
)

type SessionController struct {
	authorizer      shared.Authorizer
	auditLogService shared.AuditLogService
}

func NewSessionController(authorizer shared.Authorizer, auditLogService shared.AuditLogService) *SessionController {
	return &SessionController{
		authorizer:      authorizer,
		auditLogService: auditLogService,
	}
}

// Permissions lists what the role of the caller may do. The frontend uses
// it to hide actions.
func (controller *SessionController) Permissions(ctx shared.Context) error {
	claim := shared.GetClaim(ctx)
	permissions := controller.authorizer.PermissionsOf(claim.Role)

	return ctx.JSON(200, dtos.PermissionsDTO{
		UserID: claim.ID,
		Role:   string(claim.Role),
		Permissions: utils.Map(permissions, func(p shared.Permission) string {
			return string(p)
		}),
	})
}

// Logout only records the event. Tokens are stateless and expire on their own.
func (controller *SessionController) Logout(ctx shared.Context) error {
	claim := shared.GetClaim(ctx)

	withStatus(ctx, http.StatusNoContent)
	err := controller.auditLogService.Record(ctx.Request().Context(), nil, &claim, shared.AuditEntry{
		Action:       dtos.AuditActionLogout,
		ResourceType: "auth",
		ResourceID:   &claim.ID,
	})
	if err != nil {
		return httpError(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
