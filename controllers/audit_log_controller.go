package controllers

import (
	"github.com/l3montree-dev/incidentguard/dtos"
	"github.com/l3montree-dev/incidentguard/shared"
	"github.com/l3montree-dev/incidentguard/transformer"
)

type AuditLogController struct {
	auditLogService shared.AuditLogService
}

func NewAuditLogController(auditLogService shared.AuditLogService) *AuditLogController {
	return &AuditLogController{
		auditLogService: auditLogService,
	}
}

// @Summary List audit log entries, newest first
// @Security BearerAuth
// @Param action query string false "Action filter"
// @Param resource_type query string false "Resource type filter"
// @Param user_id query string false "User filter"
// @Param from query string false "RFC3339 lower bound"
// @Param to query string false "RFC3339 upper bound"
// @Param before_created_at query string false "keyset cursor, from next_cursor"
// @Param before_id query string false "keyset cursor, from next_cursor"
// @Success 200 {object} dtos.AuditLogPageDTO
// @Router /audit-logs [get]
func (controller *AuditLogController) List(ctx shared.Context) error {
	var query dtos.AuditLogListQuery
	if err := bindQuery(ctx, &query); err != nil {
		return err
	}

	paged, err := controller.auditLogService.List(ctx.Request().Context(), shared.GetClaim(ctx), shared.GetPageInfoWithLimits(ctx, 50, 200), query)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(200, transformer.AuditLogPageToDTO(paged))
}

func (controller *AuditLogController) Read(ctx shared.Context) error {
	id, err := uuidParam(ctx, "id")
	if err != nil {
		return err
	}

	entry, err := controller.auditLogService.Read(ctx.Request().Context(), shared.GetClaim(ctx), id)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(200, transformer.AuditLogModelToDTO(entry))
}
