package controllers

import (
	"github.com/l3montree-dev/incidentguard/dtos"
	"github.com/l3montree-dev/incidentguard/shared"
	"github.com/l3montree-dev/incidentguard/transformer"
)

type NotificationSettingController struct {
	notificationService shared.NotificationService
}

func NewNotificationSettingController(notificationService shared.NotificationService) *NotificationSettingController {
	return &NotificationSettingController{
		notificationService: notificationService,
	}
}

// Read returns the settings of the caller, or the defaults if none are stored.
func (controller *NotificationSettingController) Read(ctx shared.Context) error {
	setting, err := controller.notificationService.GetSetting(ctx.Request().Context(), shared.GetClaim(ctx))
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(200, transformer.NotificationSettingModelToDTO(setting))
}

func (controller *NotificationSettingController) Update(ctx shared.Context) error {
	var req dtos.NotificationSettingUpdateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	withStatus(ctx, 200)
	setting, err := controller.notificationService.UpdateSetting(ctx.Request().Context(), shared.GetClaim(ctx), req)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(200, transformer.NotificationSettingModelToDTO(setting))
}
