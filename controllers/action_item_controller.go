package controllers

import (
	"net/http"

	"github.com/l3montree-dev/incidentguard/database/models"
	"github.com/l3montree-dev/incidentguard/dtos"
	"github.com/l3montree-dev/incidentguard/shared"
	"github.com/l3montree-dev/incidentguard/transformer"
)

type ActionItemController struct {
	actionItemService shared.ActionItemService
}

func NewActionItemController(actionItemService shared.ActionItemService) *ActionItemController {
	return &ActionItemController{
		actionItemService: actionItemService,
	}
}

func (controller *ActionItemController) Create(ctx shared.Context) error {
	postMortemID, err := uuidParam(ctx, "id")
	if err != nil {
		return err
	}
	var req dtos.ActionItemCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	withStatus(ctx, http.StatusCreated)
	item, err := controller.actionItemService.Create(ctx.Request().Context(), shared.GetClaim(ctx), postMortemID, req)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusCreated, transformer.ActionItemModelToDTO(item))
}

func (controller *ActionItemController) ListByPostMortem(ctx shared.Context) error {
	postMortemID, err := uuidParam(ctx, "id")
	if err != nil {
		return err
	}

	items, err := controller.actionItemService.ListByPostMortemID(ctx.Request().Context(), shared.GetClaim(ctx), postMortemID)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(200, transformer.ActionItemModelsToDTOs(items))
}

// List returns the action items of every post-mortem, filtered and paged.
func (controller *ActionItemController) List(ctx shared.Context) error {
	var query dtos.ActionItemListQuery
	if err := bindQuery(ctx, &query); err != nil {
		return err
	}

	paged, err := controller.actionItemService.List(ctx.Request().Context(), shared.GetClaim(ctx), shared.GetPageInfo(ctx), query)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(200, paged.Envelope(func(item models.ActionItem) any {
		return transformer.ActionItemModelToDTO(item)
	}))
}

func (controller *ActionItemController) Update(ctx shared.Context) error {
	id, err := uuidParam(ctx, "id")
	if err != nil {
		return err
	}
	var req dtos.ActionItemUpdateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	withStatus(ctx, 200)
	item, err := controller.actionItemService.Update(ctx.Request().Context(), shared.GetClaim(ctx), id, req)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(200, transformer.ActionItemModelToDTO(item))
}

func (controller *ActionItemController) Delete(ctx shared.Context) error {
	id, err := uuidParam(ctx, "id")
	if err != nil {
		return err
	}

	withStatus(ctx, http.StatusNoContent)
	if err := controller.actionItemService.Delete(ctx.Request().Context(), shared.GetClaim(ctx), id); err != nil {
		return httpError(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
