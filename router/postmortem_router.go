package router

import (
	"github.com/l3montree-dev/incidentguard/controllers"
	"github.com/l3montree-dev/incidentguard/shared"
	"github.com/labstack/echo/v4"
)

type PostMortemRouter struct {
	*echo.Group
}

func NewPostMortemRouter(
	sessionRouter SessionRouter,
	postMortemController *controllers.PostMortemController,
	actionItemController *controllers.ActionItemController,
) PostMortemRouter {
	guard := sessionRouter.Guard

	postMortemRouter := sessionRouter.Group.Group("/post-mortems", guard(shared.PermissionViewPostMortems))
	postMortemRouter.GET("/", postMortemController.List)
	postMortemRouter.POST("/", postMortemController.Create, guard(shared.PermissionManagePostMortems))
	postMortemRouter.GET("/:id/", postMortemController.Read)
	postMortemRouter.PUT("/:id/", postMortemController.Update)
	postMortemRouter.DELETE("/:id/", postMortemController.Delete, sessionRouter.AdminOnly)
	postMortemRouter.POST("/:id/publish/", postMortemController.Publish)
	postMortemRouter.POST("/:id/ai-suggestion/", postMortemController.GenerateAISuggestion)

	postMortemRouter.GET("/:id/action-items/", actionItemController.ListByPostMortem)
	postMortemRouter.POST("/:id/action-items/", actionItemController.Create, guard(shared.PermissionManagePostMortems))

	actionItemRouter := sessionRouter.Group.Group("/action-items", guard(shared.PermissionViewPostMortems))
	actionItemRouter.GET("/", actionItemController.List)
	actionItemRouter.PUT("/:id/", actionItemController.Update, guard(shared.PermissionManagePostMortems))
	actionItemRouter.DELETE("/:id/", actionItemController.Delete, guard(shared.PermissionManagePostMortems))

	return PostMortemRouter{Group: postMortemRouter}
}
