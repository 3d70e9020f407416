// Copyright (C) 2024 Tim Bastin, l3montree GmbH
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
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package controllers

import (
	"github.com/l3montree-dev/incidentguard/shared"
)

type StatisticsController struct {
	statisticsService shared.StatisticsService
}

func NewStatisticsController(statisticsService shared.StatisticsService) *StatisticsController {
	return &StatisticsController{
		statisticsService: statisticsService,
	}
}

// @Summary Get incident statistics
// @Security BearerAuth
// @Success 200 {object} dtos.IncidentStatsDTO
// @Router /stats [get]
func (controller *StatisticsController) GetIncidentStats(ctx shared.Context) error {
	stats, err := controller.statisticsService.GetIncidentStats(ctx.Request().Context(), shared.GetClaim(ctx))
	if err != nil {
		return httpError(err)
	}
	return ctx.JSON(200, stats)
}
