// Copyright (C) 2026 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package controllers

import (
	"net/http"

	"github.com/l3montree-dev/incidentguard/database/models"
	"github.com/l3montree-dev/incidentguard/dtos"
	"github.com/l3montree-dev/incidentguard/shared"
	"github.com/l3montree-dev/incidentguard/transformer"
)

type PostMortemController struct {
	postMortemService shared.PostMortemService
}

func NewPostMortemController(postMortemService shared.PostMortemService) *PostMortemController {
	return &PostMortemController{
		postMortemService: postMortemService,
	}
}

// @Summary Create post-mortem
// @Security BearerAuth
// @Param body body dtos.PostMortemCreateRequest true "Request body"
// @Success 201 {object} dtos.PostMortemDTO
// @Router /post-mortems [post]
func (controller *PostMortemController) Create(ctx shared.Context) error {
	var req dtos.PostMortemCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	withStatus(ctx, http.StatusCreated)
	postMortem, err := controller.postMortemService.Create(ctx.Request().Context(), shared.GetClaim(ctx), req)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusCreated, transformer.PostMortemModelToDTO(postMortem))
}

func (controller *PostMortemController) List(ctx shared.Context) error {
	var query dtos.PostMortemListQuery
	if err := bindQuery(ctx, &query); err != nil {
		return err
	}

	paged, err := controller.postMortemService.List(ctx.Request().Context(), shared.GetClaim(ctx), shared.GetPageInfo(ctx), query)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(200, paged.Envelope(func(postMortem models.PostMortem) any {
		return transformer.PostMortemModelToDTO(postMortem)
	}))
}

func (controller *PostMortemController) Read(ctx shared.Context) error {
	id, err := uuidParam(ctx, "id")
	if err != nil {
		return err
	}

	postMortem, err := controller.postMortemService.Read(ctx.Request().Context(), shared.GetClaim(ctx), id)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(200, transformer.PostMortemModelToDTO(postMortem))
}

// ReadByIncident returns the single post-mortem of an incident.
func (controller *PostMortemController) ReadByIncident(ctx shared.Context) error {
	incidentID, err := uuidParam(ctx, "id")
	if err != nil {
		return err
	}

	postMortem, err := controller.postMortemService.ReadByIncidentID(ctx.Request().Context(), shared.GetClaim(ctx), incidentID)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(200, transformer.PostMortemModelToDTO(postMortem))
}

// @Summary Replace the narrative of a draft post-mortem
// @Security BearerAuth
// @Param id path string true "Post-mortem ID"
// @Param body body dtos.PostMortemUpdateRequest true "Request body"
// @Success 200 {object} dtos.PostMortemDTO
// @Router /post-mortems/{id} [put]
func (controller *PostMortemController) Update(ctx shared.Context) error {
	id, err := uuidParam(ctx, "id")
	if err != nil {
		return err
	}
	var req dtos.PostMortemUpdateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	withStatus(ctx, 200)
	postMortem, err := controller.postMortemService.Update(ctx.Request().Context(), shared.GetClaim(ctx), id, req)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(200, transformer.PostMortemModelToDTO(postMortem))
}

func (controller *PostMortemController) Publish(ctx shared.Context) error {
	id, err := uuidParam(ctx, "id")
	if err != nil {
		return err
	}

	withStatus(ctx, 200)
	postMortem, err := controller.postMortemService.Publish(ctx.Request().Context(), shared.GetClaim(ctx), id)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(200, transformer.PostMortemModelToDTO(postMortem))
}

// @Summary Generate a root cause suggestion
// @Description Overwrites the root cause of a draft. Rate limited per user.
// @Security BearerAuth
// @Param id path string true "Post-mortem ID"
// @Success 200 {object} dtos.AISuggestionDTO
// @Failure 429
// @Router /post-mortems/{id}/ai-suggestion [post]
func (controller *PostMortemController) GenerateAISuggestion(ctx shared.Context) error {
	id, err := uuidParam(ctx, "id")
	if err != nil {
		return err
	}

	withStatus(ctx, 200)
	postMortem, err := controller.postMortemService.GenerateAISuggestion(ctx.Request().Context(), shared.GetClaim(ctx), id)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(200, dtos.AISuggestionDTO{
		Suggestion: postMortem.AIRootCauseSuggestion,
		PostMortem: transformer.PostMortemModelToDTO(postMortem),
	})
}

func (controller *PostMortemController) Delete(ctx shared.Context) error {
	id, err := uuidParam(ctx, "id")
	if err != nil {
		return err
	}

	withStatus(ctx, http.StatusNoContent)
	if err := controller.postMortemService.Delete(ctx.Request().Context(), shared.GetClaim(ctx), id); err != nil {
		return httpError(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
