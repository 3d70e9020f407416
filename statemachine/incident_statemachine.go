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
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/incidentguard/database/models"
	"github.com/l3montree-dev/incidentguard/dtos"
	"github.com/l3montree-dev/incidentguard/shared"
)

// Change holds the requested modifications of an incident. Nil fields stay
// untouched.
type Change struct {
	Title       *string
	Description *string
	ImpactScope *string
	Summary     *string
	Status      *dtos.IncidentStatus
	Severity    *dtos.Severity
	AssigneeID  *uuid.UUID
	// Unassign removes the assignee and wins over AssigneeID.
	Unassign bool
}

// Transition is the outcome of applying a change. Activities are ordered
// and already carry the incident and actor ids.
type Transition struct {
	Incident   models.Incident
	Activities []models.IncidentActivity

	PreviousStatus   dtos.IncidentStatus
	PreviousSeverity dtos.Severity
	PreviousAssignee *uuid.UUID

	StatusChanged   bool
	SeverityChanged bool
	AssigneeChanged bool
}

func (t Transition) HasChanges() bool {
	return t.StatusChanged || t.SeverityChanged || t.AssigneeChanged
}

type IncidentStateMachine struct {
	policy TransitionPolicy
	now    func() time.Time
}

func NewIncidentStateMachine(policy TransitionPolicy) *IncidentStateMachine {
	if policy == nil {
		policy = AllowAll{}
	}
	return &IncidentStateMachine{policy: policy, now: time.Now}
}

// WithClock replaces the time source. Used by tests.
func (m *IncidentStateMachine) WithClock(now func() time.Time) *IncidentStateMachine {
	m.now = now
	return m
}

// Create initializes status and derived fields of a new incident and emits
// the created activity.
func (m *IncidentStateMachine) Create(incident models.Incident, status *dtos.IncidentStatus, detectedAt *time.Time, actor uuid.UUID) (Transition, error) {
	now := m.now()

	if strings.TrimSpace(incident.Title) == "" {
		return Transition{}, shared.Invalid("title is required")
	}
	if !incident.Severity.IsValid() {
		return Transition{}, shared.Invalid(fmt.Sprintf("invalid severity %q", incident.Severity))
	}

	incident.Status = dtos.IncidentStatusOpen
	if status != nil {
		if !status.IsValid() {
			return Transition{}, shared.Invalid(fmt.Sprintf("invalid status %q", *status))
		}
		incident.Status = *status
	}

	incident.DetectedAt = now
	if detectedAt != nil {
		incident.DetectedAt = *detectedAt
	}

	incident.ResolvedAt = nil
	if incident.Status.IsTerminal() {
		incident.ResolvedAt = &now
	}
	incident.CreatorID = actor
	if incident.ID == uuid.Nil {
		incident.ID = uuid.New()
	}

	return Transition{
		Incident:   incident,
		Activities: []models.IncidentActivity{models.NewCreatedActivity(incident.ID, actor, now)},
	}, nil
}

// Apply validates the whole change before touching the incident. Only
// status, severity and assignee changes produce activities.
func (m *IncidentStateMachine) Apply(incident models.Incident, change Change, actor uuid.UUID) (Transition, error) {
	if err := m.validate(incident, change); err != nil {
		return Transition{}, err
	}

	now := m.now()
	t := Transition{
		PreviousStatus:   incident.Status,
		PreviousSeverity: incident.Severity,
		PreviousAssignee: incident.AssigneeID,
	}

	if change.Title != nil {
		incident.Title = *change.Title
	}
	if change.Description != nil {
		incident.Description = *change.Description
	}
	if change.ImpactScope != nil {
		incident.ImpactScope = *change.ImpactScope
	}
	if change.Summary != nil {
		incident.Summary = *change.Summary
	}

	if change.Status != nil && *change.Status != incident.Status {
		oldStatus := incident.Status
		newStatus := *change.Status
		applyStatus(&incident, newStatus, now)
		t.StatusChanged = true
		t.Activities = append(t.Activities, models.NewStatusChangeActivity(incident.ID, actor, oldStatus, newStatus, now))

		switch {
		case newStatus == dtos.IncidentStatusResolved && !oldStatus.IsTerminal():
			t.Activities = append(t.Activities, models.NewResolvedActivity(incident.ID, actor, oldStatus, now))
		case oldStatus.IsTerminal() && !newStatus.IsTerminal():
			t.Activities = append(t.Activities, models.NewReopenedActivity(incident.ID, actor, oldStatus, newStatus, now))
		}
	}

	if change.Severity != nil && *change.Severity != incident.Severity {
		oldSeverity := incident.Severity
		incident.Severity = *change.Severity
		t.SeverityChanged = true
		t.Activities = append(t.Activities, models.NewSeverityChangeActivity(incident.ID, actor, oldSeverity, incident.Severity, now))
	}

	if newAssignee, requested := change.assignee(); requested && !sameAssignee(incident.AssigneeID, newAssignee) {
		oldAssignee := incident.AssigneeID
		incident.AssigneeID = newAssignee
		t.AssigneeChanged = true
		t.Activities = append(t.Activities, models.NewAssigneeChangeActivity(incident.ID, actor, oldAssignee, newAssignee, now))
	}

	t.Incident = incident
	return t, nil
}

func (m *IncidentStateMachine) SetStatus(incident models.Incident, status dtos.IncidentStatus, actor uuid.UUID) (Transition, error) {
	return m.Apply(incident, Change{Status: &status}, actor)
}

func (m *IncidentStateMachine) SetSeverity(incident models.Incident, severity dtos.Severity, actor uuid.UUID) (Transition, error) {
	return m.Apply(incident, Change{Severity: &severity}, actor)
}

// SetAssignee with a nil assignee unassigns the incident.
func (m *IncidentStateMachine) SetAssignee(incident models.Incident, assigneeID *uuid.UUID, actor uuid.UUID) (Transition, error) {
	if assigneeID == nil {
		return m.Apply(incident, Change{Unassign: true}, actor)
	}
	return m.Apply(incident, Change{AssigneeID: assigneeID}, actor)
}

func (m *IncidentStateMachine) validate(incident models.Incident, change Change) error {
	if change.Title != nil && strings.TrimSpace(*change.Title) == "" {
		return shared.Invalid("title must not be empty")
	}
	if change.Severity != nil && !change.Severity.IsValid() {
		return shared.Invalid(fmt.Sprintf("invalid severity %q", *change.Severity))
	}
	if change.Status != nil {
		if !change.Status.IsValid() {
			return shared.Invalid(fmt.Sprintf("invalid status %q", *change.Status))
		}
		if *change.Status != incident.Status && !m.policy.Allowed(incident.Status, *change.Status) {
			return shared.Invalid(fmt.Sprintf("transition from %s to %s is not allowed", incident.Status, *change.Status))
		}
	}
	return nil
}

// applyStatus keeps resolved_at non-null iff the status is resolved or closed.
// The first entry into that set wins.
func applyStatus(incident *models.Incident, status dtos.IncidentStatus, now time.Time) {
	switch {
	case status.IsTerminal() && incident.ResolvedAt == nil:
		incident.ResolvedAt = &now
	case !status.IsTerminal():
		incident.ResolvedAt = nil
	}
	incident.Status = status
}

func (c Change) assignee() (*uuid.UUID, bool) {
	if c.Unassign {
		return nil, true
	}
	if c.AssigneeID != nil {
		return c.AssigneeID, true
	}
	return nil, false
}

func sameAssignee(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}
