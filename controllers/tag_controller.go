package controllers

import (
	"net/http"

	"github.com/l3montree-dev/incidentguard/dtos"
	"github.com/l3montree-dev/incidentguard/shared"
	"github.com/l3montree-dev/incidentguard/transformer"
)

type TagController struct {
	tagService shared.TagService
}

func NewTagController(tagService shared.TagService) *TagController {
	return &TagController{
		tagService: tagService,
	}
}

func (controller *TagController) List(ctx shared.Context) error {
	tags, err := controller.tagService.List(ctx.Request().Context(), shared.GetClaim(ctx))
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(200, transformer.TagModelsToDTOs(tags))
}

func (controller *TagController) Create(ctx shared.Context) error {
	var req dtos.TagCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	withStatus(ctx, http.StatusCreated)
	tag, err := controller.tagService.Create(ctx.Request().Context(), shared.GetClaim(ctx), req)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusCreated, transformer.TagModelToDTO(tag))
}

func (controller *TagController) Update(ctx shared.Context) error {
	id, err := uuidParam(ctx, "id")
	if err != nil {
		return err
	}
	var req dtos.TagUpdateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	withStatus(ctx, 200)
	tag, err := controller.tagService.Update(ctx.Request().Context(), shared.GetClaim(ctx), id, req)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(200, transformer.TagModelToDTO(tag))
}

func (controller *TagController) Delete(ctx shared.Context) error {
	id, err := uuidParam(ctx, "id")
	if err != nil {
		return err
	}

	withStatus(ctx, http.StatusNoContent)
	if err := controller.tagService.Delete(ctx.Request().Context(), shared.GetClaim(ctx), id); err != nil {
		return httpError(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
