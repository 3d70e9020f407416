package controllers

import (
	"net/http"
	"strconv"

	"github.com/l3montree-dev/incidentguard/dtos"
	"github.com/l3montree-dev/incidentguard/shared"
	"github.com/l3montree-dev/incidentguard/transformer"
	"github.com/labstack/echo/v4"
)

type ActivityController struct {
	activityService shared.ActivityService
}

func NewActivityController(activityService shared.ActivityService) *ActivityController {
	return &ActivityController{
		activityService: activityService,
	}
}

// @Summary List the activities of an incident, oldest first
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Success 200 {array} dtos.ActivityDTO
// @Router /incidents/{id}/activities [get]
func (controller *ActivityController) List(ctx shared.Context) error {
	incidentID, err := uuidParam(ctx, "id")
	if err != nil {
		return err
	}

	activities, err := controller.activityService.List(ctx.Request().Context(), shared.GetClaim(ctx), incidentID)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(200, transformer.ActivityModelsToDTOs(activities))
}

func (controller *ActivityController) ListRecent(ctx shared.Context) error {
	limit := 0
	if raw := ctx.QueryParam("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(400, "invalid limit").WithInternal(err)
		}
		limit = parsed
	}

	activities, err := controller.activityService.ListRecent(ctx.Request().Context(), shared.GetClaim(ctx), limit)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(200, transformer.ActivityModelsToDTOs(activities))
}

// @Summary Comment on an incident
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Param body body dtos.CommentCreateRequest true "Request body"
// @Success 201 {object} dtos.ActivityDTO
// @Router /incidents/{id}/comments [post]
func (controller *ActivityController) Comment(ctx shared.Context) error {
	incidentID, err := uuidParam(ctx, "id")
	if err != nil {
		return err
	}
	var req dtos.CommentCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	withStatus(ctx, http.StatusCreated)
	activity, err := controller.activityService.AddComment(ctx.Request().Context(), shared.GetClaim(ctx), incidentID, req.Comment)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusCreated, transformer.ActivityModelToDTO(activity))
}

func (controller *ActivityController) AddTimelineEvent(ctx shared.Context) error {
	incidentID, err := uuidParam(ctx, "id")
	if err != nil {
		return err
	}
	var req dtos.TimelineEventCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	withStatus(ctx, http.StatusCreated)
	activity, err := controller.activityService.AddTimelineEvent(ctx.Request().Context(), shared.GetClaim(ctx), incidentID, req)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusCreated, transformer.ActivityModelToDTO(activity))
}
