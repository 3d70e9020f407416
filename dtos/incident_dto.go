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

package dtos

import (
	"time"

	"github.com/google/uuid"
)

type IncidentStatus string

const (
	IncidentStatusOpen          IncidentStatus = "open"
	IncidentStatusInvestigating IncidentStatus = "investigating"
	IncidentStatusResolved      IncidentStatus = "resolved"
	IncidentStatusClosed        IncidentStatus = "closed"
)

// IsTerminal reports whether the status belongs to the set in which an
// incident carries a resolved_at timestamp.
func (s IncidentStatus) IsTerminal() bool {
	return s == IncidentStatusResolved || s == IncidentStatusClosed
}

func (s IncidentStatus) IsValid() bool {
	switch s {
	case IncidentStatusOpen, IncidentStatusInvestigating, IncidentStatusResolved, IncidentStatusClosed:
		return true
	}
	return false
}

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

func (s Severity) IsValid() bool {
	switch s {
	case SeverityCritical, SeverityHigh, SeverityMedium, SeverityLow:
		return true
	}
	return false
}

// Rank orders severities from low (1) to critical (4). Unknown values rank 0.
func (s Severity) Rank() int {
	switch s {
	case SeverityLow:
		return 1
	case SeverityMedium:
		return 2
	case SeverityHigh:
		return 3
	case SeverityCritical:
		return 4
	}
	return 0
}

type IncidentCreateRequest struct {
	Title       string          `json:"title" validate:"required,max=255"`
	Description string          `json:"description" validate:"max=20000"`
	Severity    Severity        `json:"severity" validate:"required,oneof=critical high medium low"`
	Status      *IncidentStatus `json:"status" validate:"omitempty,oneof=open investigating resolved closed"`
	ImpactScope string          `json:"impact_scope" validate:"max=2000"`
	DetectedAt  *time.Time      `json:"detected_at"`
	AssigneeID  *uuid.UUID      `json:"assignee_id"`
	TagIDs      []uuid.UUID     `json:"tag_ids"`
}

// IncidentUpdateRequest only touches the fields that are present.
type IncidentUpdateRequest struct {
	Title       *string         `json:"title" validate:"omitempty,min=1,max=255"`
	Description *string         `json:"description" validate:"omitempty,max=20000"`
	Severity    *Severity       `json:"severity" validate:"omitempty,oneof=critical high medium low"`
	Status      *IncidentStatus `json:"status" validate:"omitempty,oneof=open investigating resolved closed"`
	ImpactScope *string         `json:"impact_scope" validate:"omitempty,max=2000"`
	AssigneeID  *uuid.UUID      `json:"assignee_id"`
	// UnassignAssignee removes the current assignee. It wins over AssigneeID.
	UnassignAssignee bool        `json:"unassign"`
	TagIDs           []uuid.UUID `json:"tag_ids"`
}

type IncidentAssignRequest struct {
	AssigneeID *uuid.UUID `json:"assignee_id"`
}

type IncidentListQuery struct {
	Status     IncidentStatus `query:"status" validate:"omitempty,oneof=open investigating resolved closed"`
	Severity   Severity       `query:"severity" validate:"omitempty,oneof=critical high medium low"`
	AssigneeID *uuid.UUID     `query:"assignee_id"`
	TagID      *uuid.UUID     `query:"tag_id"`
	Search     string         `query:"search" validate:"max=255"`
	SortBy     string         `query:"sort_by" validate:"omitempty,oneof=created_at severity status detected_at"`
	Order      string         `query:"order" validate:"omitempty,oneof=asc desc"`
}

type IncidentDTO struct {
	ID          uuid.UUID      `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Summary     string         `json:"summary"`
	Severity    Severity       `json:"severity"`
	Status      IncidentStatus `json:"status"`
	ImpactScope string         `json:"impact_scope"`
	DetectedAt  time.Time      `json:"detected_at"`
	ResolvedAt  *time.Time     `json:"resolved_at"`
	AssigneeID  *uuid.UUID     `json:"assignee_id"`
	CreatorID   uuid.UUID      `json:"creator_id"`
	Tags        []TagDTO       `json:"tags"`
	CreatedAt   time.Time      `json:"created_at"`
	UpdatedAt   time.Time      `json:"updated_at"`
}
