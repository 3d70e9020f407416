package dtos

import (
	"time"

	"github.com/google/uuid"
)

type ActivityType string

const (
	ActivityTypeCreated        ActivityType = "created"
	ActivityTypeComment        ActivityType = "comment"
	ActivityTypeStatusChange   ActivityType = "status_change"
	ActivityTypeSeverityChange ActivityType = "severity_change"
	ActivityTypeAssigneeChange ActivityType = "assignee_change"
	ActivityTypeResolved       ActivityType = "resolved"
	ActivityTypeReopened       ActivityType = "reopened"

	// Timeline milestones. They carry an event time that can predate the record.
	ActivityTypeDetected             ActivityType = "detected"
	ActivityTypeInvestigationStarted ActivityType = "investigation_started"
	ActivityTypeRootCauseIdentified  ActivityType = "root_cause_identified"
	ActivityTypeMitigation           ActivityType = "mitigation"
	ActivityTypeTimelineResolved     ActivityType = "timeline_resolved"
	ActivityTypeOther                ActivityType = "other"
)

// IsTimelineEvent reports whether the type may be recorded through the
// timeline endpoint.
func (t ActivityType) IsTimelineEvent() bool {
	switch t {
	case ActivityTypeDetected, ActivityTypeInvestigationStarted, ActivityTypeRootCauseIdentified,
		ActivityTypeMitigation, ActivityTypeTimelineResolved, ActivityTypeOther:
		return true
	}
	return false
}

// UnassignedValue is how a missing assignee is rendered in assignee_change activities.
const UnassignedValue = "unassigned"

type CommentCreateRequest struct {
	Comment string `json:"comment" validate:"required,max=10000"`
}

type TimelineEventCreateRequest struct {
	EventType   ActivityType `json:"event_type" validate:"required,oneof=detected investigation_started root_cause_identified mitigation timeline_resolved other"`
	EventTime   time.Time    `json:"event_time" validate:"required"`
	Description string       `json:"description" validate:"required,max=10000"`
}

type ActivityDTO struct {
	ID           uuid.UUID    `json:"id"`
	IncidentID   uuid.UUID    `json:"incident_id"`
	UserID       uuid.UUID    `json:"user_id"`
	ActivityType ActivityType `json:"activity_type"`
	OldValue     *string      `json:"old_value,omitempty"`
	NewValue     *string      `json:"new_value,omitempty"`
	Comment      *string      `json:"comment,omitempty"`
	EventTime    *time.Time   `json:"event_time,omitempty"`
	Description  string       `json:"description"`
	CreatedAt    time.Time    `json:"created_at"`
}
