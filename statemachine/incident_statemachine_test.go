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
package statemachine

import (
	"bytes"
	"slices"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/incidentguard/database/models"
	"github.com/l3montree-dev/incidentguard/dtos"
	"github.com/l3montree-dev/incidentguard/shared"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func newIncident(status dtos.IncidentStatus) models.Incident {
	return models.Incident{
		Model:      models.Model{ID: uuid.New()},
		Title:      "database down",
		Severity:   dtos.SeverityHigh,
		Status:     status,
		DetectedAt: time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC),
		CreatorID:  uuid.New(),
	}
}

func activityTypes(activities []models.IncidentActivity) []dtos.ActivityType {
	res := make([]dtos.ActivityType, 0, len(activities))
	for _, a := range activities {
		res = append(res, a.ActivityType)
	}
	return res
}

func TestCreate(t *testing.T) {
	now := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	actor := uuid.New()

	t.Run("should default to open and emit a single created activity", func(t *testing.T) {
		m := NewIncidentStateMachine(nil).WithClock(fixedClock(now))
		incident := models.NewIncident(uuid.Nil, "api errors", "", dtos.SeverityMedium, "", nil)

		transition, err := m.Create(incident, nil, nil, actor)
		require.NoError(t, err)

		assert.Equal(t, dtos.IncidentStatusOpen, transition.Incident.Status)
		assert.Equal(t, now, transition.Incident.DetectedAt)
		assert.Nil(t, transition.Incident.ResolvedAt)
		assert.Equal(t, actor, transition.Incident.CreatorID)
		assert.Equal(t, []dtos.ActivityType{dtos.ActivityTypeCreated}, activityTypes(transition.Activities))
		assert.Equal(t, transition.Incident.ID, transition.Activities[0].IncidentID)
		assert.Equal(t, actor, transition.Activities[0].UserID)
	})

	t.Run("should set resolved_at when created in a terminal status", func(t *testing.T) {
		m := NewIncidentStateMachine(nil).WithClock(fixedClock(now))
		detected := now.Add(-time.Hour)

		transition, err := m.Create(models.NewIncident(actor, "x", "", dtos.SeverityLow, "", nil), shared.Ptr(dtos.IncidentStatusClosed), &detected, actor)
		require.NoError(t, err)

		assert.Equal(t, detected, transition.Incident.DetectedAt)
		require.NotNil(t, transition.Incident.ResolvedAt)
		assert.Equal(t, now, *transition.Incident.ResolvedAt)
	})

	t.Run("should reject an empty title", func(t *testing.T) {
		m := NewIncidentStateMachine(nil)
		_, err := m.Create(models.NewIncident(actor, "  ", "", dtos.SeverityLow, "", nil), nil, nil, actor)
		assert.True(t, errors.Is(err, shared.ErrValidation))
	})

	t.Run("should reject an unknown severity", func(t *testing.T) {
		m := NewIncidentStateMachine(nil)
		_, err := m.Create(models.NewIncident(actor, "x", "", dtos.Severity("urgent"), "", nil), nil, nil, actor)
		assert.True(t, errors.Is(err, shared.ErrValidation))
	})
}

func TestApply(t *testing.T) {
	t0 := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
	actor := uuid.New()

	t.Run("should set resolved_at on resolve, clear it on reopen and set it again on the next resolve", func(t *testing.T) {
		clock := t0
		m := NewIncidentStateMachine(nil).WithClock(func() time.Time { return clock })
		incident := newIncident(dtos.IncidentStatusOpen)

		resolved, err := m.SetStatus(incident, dtos.IncidentStatusResolved, actor)
		require.NoError(t, err)
		require.NotNil(t, resolved.Incident.ResolvedAt)
		assert.Equal(t, t0, *resolved.Incident.ResolvedAt)
		assert.Equal(t, []dtos.ActivityType{dtos.ActivityTypeStatusChange, dtos.ActivityTypeResolved}, activityTypes(resolved.Activities))

		clock = t0.Add(time.Hour)
		reopened, err := m.SetStatus(resolved.Incident, dtos.IncidentStatusOpen, actor)
		require.NoError(t, err)
		assert.Nil(t, reopened.Incident.ResolvedAt)
		assert.Equal(t, []dtos.ActivityType{dtos.ActivityTypeStatusChange, dtos.ActivityTypeReopened}, activityTypes(reopened.Activities))

		clock = t0.Add(2 * time.Hour)
		again, err := m.SetStatus(reopened.Incident, dtos.IncidentStatusResolved, actor)
		require.NoError(t, err)
		require.NotNil(t, again.Incident.ResolvedAt)
		assert.Equal(t, t0.Add(2*time.Hour), *again.Incident.ResolvedAt)
	})

	t.Run("should list status_change before resolved when sorted by created_at and id", func(t *testing.T) {
		m := NewIncidentStateMachine(nil).WithClock(fixedClock(t0))

		for range 200 {
			transition, err := m.SetStatus(newIncident(dtos.IncidentStatusOpen), dtos.IncidentStatusResolved, actor)
			require.NoError(t, err)

			stored := slices.Clone(transition.Activities)
			slices.Reverse(stored)
			slices.SortFunc(stored, func(a, b models.IncidentActivity) int {
				if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
					return c
				}
				return bytes.Compare(a.ID[:], b.ID[:])
			})
			require.Equal(t, []dtos.ActivityType{dtos.ActivityTypeStatusChange, dtos.ActivityTypeResolved}, activityTypes(stored))
		}
	})

	t.Run("should keep resolved_at when moving from resolved to closed", func(t *testing.T) {
		m := NewIncidentStateMachine(nil).WithClock(fixedClock(t0.Add(time.Hour)))
		incident := newIncident(dtos.IncidentStatusResolved)
		incident.ResolvedAt = shared.Ptr(t0)

		transition, err := m.SetStatus(incident, dtos.IncidentStatusClosed, actor)
		require.NoError(t, err)
		assert.Equal(t, t0, *transition.Incident.ResolvedAt)
		assert.Equal(t, []dtos.ActivityType{dtos.ActivityTypeStatusChange}, activityTypes(transition.Activities))
	})

	t.Run("should not emit resolved when moving from closed to resolved", func(t *testing.T) {
		m := NewIncidentStateMachine(nil).WithClock(fixedClock(t0))
		incident := newIncident(dtos.IncidentStatusClosed)
		incident.ResolvedAt = shared.Ptr(t0.Add(-time.Hour))

		transition, err := m.SetStatus(incident, dtos.IncidentStatusResolved, actor)
		require.NoError(t, err)
		assert.Equal(t, []dtos.ActivityType{dtos.ActivityTypeStatusChange}, activityTypes(transition.Activities))
		assert.Equal(t, t0.Add(-time.Hour), *transition.Incident.ResolvedAt)
	})

	t.Run("should produce no activity for a no-op status change", func(t *testing.T) {
		m := NewIncidentStateMachine(nil).WithClock(fixedClock(t0))
		incident := newIncident(dtos.IncidentStatusInvestigating)

		transition, err := m.SetStatus(incident, dtos.IncidentStatusInvestigating, actor)
		require.NoError(t, err)
		assert.Empty(t, transition.Activities)
		assert.False(t, transition.HasChanges())
	})

	t.Run("should emit exactly one activity per changed field in order", func(t *testing.T) {
		m := NewIncidentStateMachine(nil).WithClock(fixedClock(t0))
		incident := newIncident(dtos.IncidentStatusOpen)
		assignee := uuid.New()

		transition, err := m.Apply(incident, Change{
			Status:     shared.Ptr(dtos.IncidentStatusInvestigating),
			Severity:   shared.Ptr(dtos.SeverityCritical),
			AssigneeID: &assignee,
		}, actor)
		require.NoError(t, err)

		assert.Equal(t, []dtos.ActivityType{
			dtos.ActivityTypeStatusChange,
			dtos.ActivityTypeSeverityChange,
			dtos.ActivityTypeAssigneeChange,
		}, activityTypes(transition.Activities))
		assert.Equal(t, "high", *transition.Activities[1].OldValue)
		assert.Equal(t, "critical", *transition.Activities[1].NewValue)
		assert.Equal(t, dtos.SeverityHigh, transition.PreviousSeverity)
	})

	t.Run("should render a missing assignee as unassigned", func(t *testing.T) {
		m := NewIncidentStateMachine(nil).WithClock(fixedClock(t0))
		incident := newIncident(dtos.IncidentStatusOpen)
		assignee := uuid.New()

		assigned, err := m.SetAssignee(incident, &assignee, actor)
		require.NoError(t, err)
		require.Len(t, assigned.Activities, 1)
		assert.Equal(t, dtos.UnassignedValue, *assigned.Activities[0].OldValue)
		assert.Equal(t, assignee.String(), *assigned.Activities[0].NewValue)

		unassigned, err := m.SetAssignee(assigned.Incident, nil, actor)
		require.NoError(t, err)
		require.Len(t, unassigned.Activities, 1)
		assert.Equal(t, dtos.UnassignedValue, *unassigned.Activities[0].NewValue)
		assert.Nil(t, unassigned.Incident.AssigneeID)
	})

	t.Run("should not emit an activity when the assignee stays the same", func(t *testing.T) {
		m := NewIncidentStateMachine(nil).WithClock(fixedClock(t0))
		incident := newIncident(dtos.IncidentStatusOpen)
		assignee := uuid.New()
		incident.AssigneeID = &assignee
		same := assignee

		transition, err := m.SetAssignee(incident, &same, actor)
		require.NoError(t, err)
		assert.Empty(t, transition.Activities)
	})

	t.Run("should change the title without emitting an activity", func(t *testing.T) {
		m := NewIncidentStateMachine(nil).WithClock(fixedClock(t0))
		incident := newIncident(dtos.IncidentStatusOpen)

		transition, err := m.Apply(incident, Change{Title: shared.Ptr("new title"), Description: shared.Ptr("more")}, actor)
		require.NoError(t, err)
		assert.Equal(t, "new title", transition.Incident.Title)
		assert.Equal(t, "more", transition.Incident.Description)
		assert.Empty(t, transition.Activities)
	})

	t.Run("should not touch the incident when the change is invalid", func(t *testing.T) {
		m := NewIncidentStateMachine(nil).WithClock(fixedClock(t0))
		incident := newIncident(dtos.IncidentStatusOpen)

		_, err := m.Apply(incident, Change{Title: shared.Ptr("new"), Status: shared.Ptr(dtos.IncidentStatus("paused"))}, actor)
		assert.True(t, errors.Is(err, shared.ErrValidation))
		assert.Equal(t, "database down", incident.Title)
	})

	t.Run("should reject a forbidden transition", func(t *testing.T) {
		policy, err := ParseForbiddenTransitions("closed->open, closed->investigating")
		require.NoError(t, err)
		m := NewIncidentStateMachine(policy).WithClock(fixedClock(t0))

		_, err = m.SetStatus(newIncident(dtos.IncidentStatusClosed), dtos.IncidentStatusOpen, actor)
		assert.True(t, errors.Is(err, shared.ErrValidation))

		transition, err := m.SetStatus(newIncident(dtos.IncidentStatusClosed), dtos.IncidentStatusResolved, actor)
		require.NoError(t, err)
		assert.True(t, transition.StatusChanged)
	})
}

func TestParseForbiddenTransitions(t *testing.T) {
	t.Run("should ignore empty entries", func(t *testing.T) {
		policy, err := ParseForbiddenTransitions(" , open->closed,")
		require.NoError(t, err)
		assert.Len(t, policy, 1)
		assert.False(t, policy.Allowed(dtos.IncidentStatusOpen, dtos.IncidentStatusClosed))
		assert.True(t, policy.Allowed(dtos.IncidentStatusClosed, dtos.IncidentStatusOpen))
	})

	t.Run("should fail on malformed pairs", func(t *testing.T) {
		_, err := ParseForbiddenTransitions("open=>closed")
		assert.Error(t, err)
	})

	t.Run("should fail on unknown statuses", func(t *testing.T) {
		_, err := ParseForbiddenTransitions("open->paused")
		assert.Error(t, err)
	})

	t.Run("should allow everything when the env variable is unset", func(t *testing.T) {
		t.Setenv("INCIDENT_FORBIDDEN_TRANSITIONS", "")
		policy, err := PolicyFromEnv()
		require.NoError(t, err)
		assert.IsType(t, AllowAll{}, policy)
	})
}
