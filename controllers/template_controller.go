package controllers

import (
	"net/http"

	"github.com/l3montree-dev/incidentguard/database/models"
	"github.com/l3montree-dev/incidentguard/dtos"
	"github.com/l3montree-dev/incidentguard/shared"
	"github.com/l3montree-dev/incidentguard/transformer"
)

type TemplateController struct {
	templateService shared.TemplateService
}

func NewTemplateController(templateService shared.TemplateService) *TemplateController {
	return &TemplateController{
		templateService: templateService,
	}
}

// List returns the public templates and the private ones of the caller.
func (controller *TemplateController) List(ctx shared.Context) error {
	paged, err := controller.templateService.List(ctx.Request().Context(), shared.GetClaim(ctx), shared.GetPageInfo(ctx))
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(200, paged.Envelope(func(template models.IncidentTemplate) any {
		return transformer.TemplateModelToDTO(template)
	}))
}

func (controller *TemplateController) Read(ctx shared.Context) error {
	id, err := uuidParam(ctx, "id")
	if err != nil {
		return err
	}

	template, err := controller.templateService.Read(ctx.Request().Context(), shared.GetClaim(ctx), id)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(200, transformer.TemplateModelToDTO(template))
}

func (controller *TemplateController) Create(ctx shared.Context) error {
	var req dtos.TemplateCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	withStatus(ctx, http.StatusCreated)
	template, err := controller.templateService.Create(ctx.Request().Context(), shared.GetClaim(ctx), req)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusCreated, transformer.TemplateModelToDTO(template))
}

func (controller *TemplateController) Update(ctx shared.Context) error {
	id, err := uuidParam(ctx, "id")
	if err != nil {
		return err
	}
	var req dtos.TemplateUpdateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	withStatus(ctx, 200)
	template, err := controller.templateService.Update(ctx.Request().Context(), shared.GetClaim(ctx), id, req)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(200, transformer.TemplateModelToDTO(template))
}

func (controller *TemplateController) Delete(ctx shared.Context) error {
	id, err := uuidParam(ctx, "id")
	if err != nil {
		return err
	}

	withStatus(ctx, http.StatusNoContent)
	if err := controller.templateService.Delete(ctx.Request().Context(), shared.GetClaim(ctx), id); err != nil {
		return httpError(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}

// @Summary Use a template
// @Description Counts the usage and returns a prefilled incident create request. No incident is created.
// @Security BearerAuth
// @Param id path string true "Template ID"
// @Success 200 {object} dtos.IncidentCreateRequest
// @Router /templates/{id}/use [post]
func (controller *TemplateController) Use(ctx shared.Context) error {
	id, err := uuidParam(ctx, "id")
	if err != nil {
		return err
	}

	withStatus(ctx, 200)
	req, err := controller.templateService.Use(ctx.Request().Context(), shared.GetClaim(ctx), id)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(200, req)
}
