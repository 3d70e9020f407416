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

type IncidentController struct {
	incidentService shared.IncidentService
}

func NewIncidentController(incidentService shared.IncidentService) *IncidentController {
	return &IncidentController{
		incidentService: incidentService,
	}
}

// @Summary Create incident
// @Security BearerAuth
// @Param body body dtos.IncidentCreateRequest true "Request body"
// @Success 201 {object} dtos.IncidentDTO
// @Router /incidents [post]
func (controller *IncidentController) Create(ctx shared.Context) error {
	var req dtos.IncidentCreateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	withStatus(ctx, http.StatusCreated)
	incident, err := controller.incidentService.Create(ctx.Request().Context(), shared.GetClaim(ctx), req)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(http.StatusCreated, transformer.IncidentModelToDTO(incident))
}

// @Summary List incidents
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Param severity query string false "Severity filter"
// @Param search query string false "Search in the title"
// @Success 200 {object} shared.PagedResponse
// @Router /incidents [get]
func (controller *IncidentController) List(ctx shared.Context) error {
	var query dtos.IncidentListQuery
	if err := bindQuery(ctx, &query); err != nil {
		return err
	}

	paged, err := controller.incidentService.List(ctx.Request().Context(), shared.GetClaim(ctx), shared.GetPageInfo(ctx), query)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(200, paged.Envelope(func(incident models.Incident) any {
		return transformer.IncidentModelToDTO(incident)
	}))
}

// @Summary Get incident
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Success 200 {object} dtos.IncidentDTO
// @Router /incidents/{id} [get]
func (controller *IncidentController) Read(ctx shared.Context) error {
	id, err := uuidParam(ctx, "id")
	if err != nil {
		return err
	}

	incident, err := controller.incidentService.Read(ctx.Request().Context(), shared.GetClaim(ctx), id)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(200, transformer.IncidentModelToDTO(incident))
}

// @Summary Update incident
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Param body body dtos.IncidentUpdateRequest true "Request body"
// @Success 200 {object} dtos.IncidentDTO
// @Router /incidents/{id} [put]
func (controller *IncidentController) Update(ctx shared.Context) error {
	id, err := uuidParam(ctx, "id")
	if err != nil {
		return err
	}
	var req dtos.IncidentUpdateRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	withStatus(ctx, 200)
	incident, err := controller.incidentService.Update(ctx.Request().Context(), shared.GetClaim(ctx), id, req)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(200, transformer.IncidentModelToDTO(incident))
}

// Assign sets or removes the assignee. A missing or null assignee_id unassigns.
func (controller *IncidentController) Assign(ctx shared.Context) error {
	id, err := uuidParam(ctx, "id")
	if err != nil {
		return err
	}
	var req dtos.IncidentAssignRequest
	if err := bindAndValidate(ctx, &req); err != nil {
		return err
	}

	withStatus(ctx, 200)
	incident, err := controller.incidentService.Assign(ctx.Request().Context(), shared.GetClaim(ctx), id, req.AssigneeID)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(200, transformer.IncidentModelToDTO(incident))
}

func (controller *IncidentController) RegenerateSummary(ctx shared.Context) error {
	id, err := uuidParam(ctx, "id")
	if err != nil {
		return err
	}

	withStatus(ctx, 200)
	incident, err := controller.incidentService.RegenerateSummary(ctx.Request().Context(), shared.GetClaim(ctx), id)
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(200, transformer.IncidentModelToDTO(incident))
}

// @Summary Delete incident
// @Security BearerAuth
// @Param id path string true "Incident ID"
// @Success 204
// @Router /incidents/{id} [delete]
func (controller *IncidentController) Delete(ctx shared.Context) error {
	id, err := uuidParam(ctx, "id")
	if err != nil {
		return err
	}

	withStatus(ctx, http.StatusNoContent)
	if err := controller.incidentService.Delete(ctx.Request().Context(), shared.GetClaim(ctx), id); err != nil {
		return httpError(err)
	}
	return ctx.NoContent(http.StatusNoContent)
}
