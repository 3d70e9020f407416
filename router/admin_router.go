package router

import (
	"github.com/l3montree-dev/incidentguard/controllers"
	"github.com/l3montree-dev/incidentguard/middlewares"
	"github.com/l3montree-dev/incidentguard/shared"
	"github.com/labstack/echo/v4"
)

type AuditLogRouter struct {
	*echo.Group
}

func NewAuditLogRouter(sessionRouter SessionRouter, auditLogController *controllers.AuditLogController) AuditLogRouter {
	auditLogRouter := sessionRouter.Group.Group("/audit-logs", sessionRouter.AdminOnly)
	auditLogRouter.GET("/", auditLogController.List)
	auditLogRouter.GET("/:id/", auditLogController.Read)

	return AuditLogRouter{Group: auditLogRouter}
}

type UserSettingsRouter struct {
	*echo.Group
}

// NewUserSettingsRouter mounts the per user routes: notification settings and
// the incident statistics.
func NewUserSettingsRouter(
	sessionRouter SessionRouter,
	notificationSettingController *controllers.NotificationSettingController,
	statisticsController *controllers.StatisticsController,
) UserSettingsRouter {
	settingsRouter := sessionRouter.Group.Group("/notification-settings", middlewares.RequireAuthenticated())
	settingsRouter.GET("/", notificationSettingController.Read)
	settingsRouter.PUT("/", notificationSettingController.Update)

	sessionRouter.Group.GET("/stats/", statisticsController.GetIncidentStats, sessionRouter.Guard(shared.PermissionViewStats))

	return UserSettingsRouter{Group: settingsRouter}
}
