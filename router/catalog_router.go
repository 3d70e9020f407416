package router

import (
	"github.com/l3montree-dev/incidentguard/controllers"
	"github.com/l3montree-dev/incidentguard/shared"
	"github.com/labstack/echo/v4"
)

// CatalogRouter serves the shared building blocks of incidents: tags and
// templates.
type CatalogRouter struct {
	Tags      *echo.Group
	Templates *echo.Group
}

func NewCatalogRouter(
	sessionRouter SessionRouter,
	tagController *controllers.TagController,
	templateController *controllers.TemplateController,
) CatalogRouter {
	guard := sessionRouter.Guard

	tagRouter := sessionRouter.Group.Group("/tags", guard(shared.PermissionViewTags))
	tagRouter.GET("/", tagController.List)

	tagWriteRouter := tagRouter.Group("", guard(shared.PermissionManageTags))
	tagWriteRouter.POST("/", tagController.Create)
	tagWriteRouter.PUT("/:id/", tagController.Update)
	tagWriteRouter.DELETE("/:id/", tagController.Delete)

	templateRouter := sessionRouter.Group.Group("/templates", guard(shared.PermissionViewTemplates))
	templateRouter.GET("/", templateController.List)
	templateRouter.GET("/:id/", templateController.Read)
	templateRouter.POST("/:id/use/", templateController.Use)

	// owner checks happen in the template service
	templateWriteRouter := templateRouter.Group("", guard(shared.PermissionManageTemplates))
	templateWriteRouter.POST("/", templateController.Create)
	templateWriteRouter.PUT("/:id/", templateController.Update)
	templateWriteRouter.DELETE("/:id/", templateController.Delete)

	return CatalogRouter{Tags: tagRouter, Templates: templateRouter}
}
