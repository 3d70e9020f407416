package router

import (
	"github.com/l3montree-dev/incidentguard/controllers"
	"github.com/l3montree-dev/incidentguard/shared"
	"github.com/labstack/echo/v4"
)

type IncidentRouter struct {
	*echo.Group
}

func NewIncidentRouter(
	sessionRouter SessionRouter,
	incidentController *controllers.IncidentController,
	activityController *controllers.ActivityController,
	attachmentController *controllers.AttachmentController,
	postMortemController *controllers.PostMortemController,
) IncidentRouter {
	guard := sessionRouter.Guard

	incidentRouter := sessionRouter.Group.Group("/incidents", guard(shared.PermissionViewIncidents))
	incidentRouter.GET("/", incidentController.List)
	incidentRouter.POST("/", incidentController.Create, guard(shared.PermissionCreateIncidents))

	// editing is decided per incident: admins, or the editor who created it
	incidentRouter.GET("/:id/", incidentController.Read)
	incidentRouter.PUT("/:id/", incidentController.Update)
	incidentRouter.DELETE("/:id/", incidentController.Delete, guard(shared.PermissionDeleteIncidents))
	incidentRouter.POST("/:id/assign/", incidentController.Assign)
	incidentRouter.POST("/:id/summary/", incidentController.RegenerateSummary)

	incidentRouter.GET("/:id/activities/", activityController.List)
	incidentRouter.POST("/:id/comments/", activityController.Comment)
	incidentRouter.POST("/:id/timeline/", activityController.AddTimelineEvent)

	incidentRouter.GET("/:id/attachments/", attachmentController.List)
	incidentRouter.POST("/:id/attachments/", attachmentController.Upload)
	incidentRouter.GET("/:id/attachments/:attachmentID/", attachmentController.Download)
	incidentRouter.DELETE("/:id/attachments/:attachmentID/", attachmentController.Delete)

	incidentRouter.GET("/:id/post-mortem/", postMortemController.ReadByIncident, guard(shared.PermissionViewPostMortems))

	sessionRouter.Group.GET("/activities/recent/", activityController.ListRecent, guard(shared.PermissionViewIncidents))

	return IncidentRouter{Group: incidentRouter}
}
