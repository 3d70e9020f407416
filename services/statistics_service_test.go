package services

import (
	"context"
	"testing"
	"time"

	"github.com/l3montree-dev/incidentguard/dtos"
	"github.com/l3montree-dev/incidentguard/mocks"
	"github.com/l3montree-dev/incidentguard/shared"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestStatisticsService(t *testing.T) {
	ctx := context.Background()

	t.Run("should fill every key and sum the total", func(t *testing.T) {
		repo := mocks.NewIncidentRepository(t)
		service := NewStatisticsService(repo, newAuthorizer(t))

		repo.On("CountByStatus", mock.Anything).Return(map[dtos.IncidentStatus]int64{dtos.IncidentStatusOpen: 3, dtos.IncidentStatusResolved: 2}, nil)
		repo.On("CountBySeverity", mock.Anything).Return(map[dtos.Severity]int64{dtos.SeverityCritical: 1}, nil)
		repo.On("CountOpenCritical", mock.Anything).Return(int64(1), nil)
		repo.On("MeanTimeToResolve", mock.Anything).Return(90*time.Minute, nil)

		stats, err := service.GetIncidentStats(ctx, claimOf(shared.RoleViewer))
		require.NoError(t, err)
		assert.EqualValues(t, 5, stats.Total)
		assert.Len(t, stats.ByStatus, 4)
		assert.Len(t, stats.BySeverity, 4)
		assert.EqualValues(t, 0, stats.ByStatus[dtos.IncidentStatusClosed])
		assert.EqualValues(t, 0, stats.BySeverity[dtos.SeverityLow])
		assert.EqualValues(t, 1, stats.OpenCritical)
		assert.Equal(t, 5400.0, stats.MeanTimeToResolveS)
	})

	t.Run("should fail if one of the queries fails", func(t *testing.T) {
		repo := mocks.NewIncidentRepository(t)
		service := NewStatisticsService(repo, newAuthorizer(t))

		repo.On("CountByStatus", mock.Anything).Return(nil, shared.Transient(errors.New("timeout"), "could not count incidents")).Maybe()
		repo.On("CountBySeverity", mock.Anything).Return(map[dtos.Severity]int64{}, nil).Maybe()
		repo.On("CountOpenCritical", mock.Anything).Return(int64(0), nil).Maybe()
		repo.On("MeanTimeToResolve", mock.Anything).Return(time.Duration(0), nil).Maybe()

		_, err := service.GetIncidentStats(ctx, claimOf(shared.RoleViewer))
		assert.True(t, errors.Is(err, shared.ErrTransientStorage))
	})

	t.Run("should deny a claim without a role", func(t *testing.T) {
		service := NewStatisticsService(mocks.NewIncidentRepository(t), newAuthorizer(t))

		_, err := service.GetIncidentStats(ctx, shared.Claim{})
		assert.True(t, errors.Is(err, shared.ErrAuthorizationDenied))
	})
}
