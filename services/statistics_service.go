// Copyright (C) 2025 l3montree GmbH
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

package services

import (
	"context"
	"time"

	"github.com/l3montree-dev/incidentguard/dtos"
	"github.com/l3montree-dev/incidentguard/shared"
	"golang.org/x/sync/errgroup"
)

type StatisticsService struct {
	incidentRepository shared.IncidentRepository
	authorizer         shared.Authorizer
}

var _ shared.StatisticsService = (*StatisticsService)(nil)

func NewStatisticsService(incidentRepository shared.IncidentRepository, authorizer shared.Authorizer) *StatisticsService {
	return &StatisticsService{
		incidentRepository: incidentRepository,
		authorizer:         authorizer,
	}
}

// GetIncidentStats runs the aggregate queries concurrently.
func (s *StatisticsService) GetIncidentStats(ctx context.Context, claim shared.Claim) (dtos.IncidentStatsDTO, error) {
	if err := requirePermission(s.authorizer, claim, shared.PermissionViewStats); err != nil {
		return dtos.IncidentStatsDTO{}, err
	}

	var (
		byStatus     map[dtos.IncidentStatus]int64
		bySeverity   map[dtos.Severity]int64
		openCritical int64
		mttr         time.Duration
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		byStatus, err = s.incidentRepository.CountByStatus(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		bySeverity, err = s.incidentRepository.CountBySeverity(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		openCritical, err = s.incidentRepository.CountOpenCritical(ctx)
		return err
	})
	g.Go(func() error {
		var err error
		mttr, err = s.incidentRepository.MeanTimeToResolve(ctx)
		return err
	})
	if err := g.Wait(); err != nil {
		return dtos.IncidentStatsDTO{}, err
	}

	stats := dtos.IncidentStatsDTO{
		ByStatus:           make(map[dtos.IncidentStatus]int64, 4),
		BySeverity:         make(map[dtos.Severity]int64, 4),
		OpenCritical:       openCritical,
		MeanTimeToResolveS: mttr.Seconds(),
	}
	// every known key is present, zero counts included
	for _, status := range []dtos.IncidentStatus{dtos.IncidentStatusOpen, dtos.IncidentStatusInvestigating, dtos.IncidentStatusResolved, dtos.IncidentStatusClosed} {
		stats.ByStatus[status] = byStatus[status]
		stats.Total += byStatus[status]
	}
	for _, severity := range []dtos.Severity{dtos.SeverityCritical, dtos.SeverityHigh, dtos.SeverityMedium, dtos.SeverityLow} {
		stats.BySeverity[severity] = bySeverity[severity]
	}
	return stats, nil
}
