package models

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/incidentguard/dtos"
)

// IncidentActivity is an append-only entry of an incident's history.
// Which of the optional columns is set depends on the activity type.
type IncidentActivity struct {
	ID           uuid.UUID         `json:"id" gorm:"primarykey;type:uuid;default:gen_random_uuid()"`
	IncidentID   uuid.UUID         `json:"incident_id" gorm:"type:uuid;not null;index:idx_incident_activities_incident_created,priority:1"`
	UserID       uuid.UUID         `json:"user_id" gorm:"type:uuid;not null"`
	ActivityType dtos.ActivityType `json:"activity_type" gorm:"type:text;not null"`
	OldValue     *string           `json:"old_value" gorm:"type:text"`
	NewValue     *string           `json:"new_value" gorm:"type:text"`
	Comment      *string           `json:"comment" gorm:"type:text"`
	EventTime    *time.Time        `json:"event_time"`
	CreatedAt    time.Time         `json:"created_at" gorm:"not null;index:idx_incident_activities_incident_created,priority:2"`
}

func (IncidentActivity) TableName() string {
	return "incident_activities"
}

// newActivity uses time ordered ids. Activities of one mutation share their
// created_at, so the id keeps them in the order they were emitted.
func newActivity(incidentID, userID uuid.UUID, t dtos.ActivityType, now time.Time) IncidentActivity {
	return IncidentActivity{
		ID:           uuid.Must(uuid.NewV7()),
		IncidentID:   incidentID,
		UserID:       userID,
		ActivityType: t,
		CreatedAt:    now,
	}
}

func NewCreatedActivity(incidentID, userID uuid.UUID, now time.Time) IncidentActivity {
	return newActivity(incidentID, userID, dtos.ActivityTypeCreated, now)
}

func NewCommentActivity(incidentID, userID uuid.UUID, comment string, now time.Time) IncidentActivity {
	a := newActivity(incidentID, userID, dtos.ActivityTypeComment, now)
	a.Comment = &comment
	return a
}

func NewStatusChangeActivity(incidentID, userID uuid.UUID, oldStatus, newStatus dtos.IncidentStatus, now time.Time) IncidentActivity {
	a := newActivity(incidentID, userID, dtos.ActivityTypeStatusChange, now)
	a.setValues(string(oldStatus), string(newStatus))
	return a
}

func NewResolvedActivity(incidentID, userID uuid.UUID, oldStatus dtos.IncidentStatus, now time.Time) IncidentActivity {
	a := newActivity(incidentID, userID, dtos.ActivityTypeResolved, now)
	a.setValues(string(oldStatus), string(dtos.IncidentStatusResolved))
	return a
}

func NewReopenedActivity(incidentID, userID uuid.UUID, oldStatus, newStatus dtos.IncidentStatus, now time.Time) IncidentActivity {
	a := newActivity(incidentID, userID, dtos.ActivityTypeReopened, now)
	a.setValues(string(oldStatus), string(newStatus))
	return a
}

func NewSeverityChangeActivity(incidentID, userID uuid.UUID, oldSeverity, newSeverity dtos.Severity, now time.Time) IncidentActivity {
	a := newActivity(incidentID, userID, dtos.ActivityTypeSeverityChange, now)
	a.setValues(string(oldSeverity), string(newSeverity))
	return a
}

func NewAssigneeChangeActivity(incidentID, userID uuid.UUID, oldAssignee, newAssignee *uuid.UUID, now time.Time) IncidentActivity {
	a := newActivity(incidentID, userID, dtos.ActivityTypeAssigneeChange, now)
	a.setValues(renderAssignee(oldAssignee), renderAssignee(newAssignee))
	return a
}

func NewTimelineActivity(incidentID, userID uuid.UUID, eventType dtos.ActivityType, eventTime time.Time, description string, now time.Time) IncidentActivity {
	a := newActivity(incidentID, userID, eventType, now)
	a.Comment = &description
	a.EventTime = &eventTime
	return a
}

func renderAssignee(id *uuid.UUID) string {
	if id == nil {
		return dtos.UnassignedValue
	}
	return id.String()
}

func (a *IncidentActivity) setValues(oldValue, newValue string) {
	a.OldValue = &oldValue
	a.NewValue = &newValue
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// OccurredAt is the time the activity describes. Timeline milestones may
// describe events that happened before they were recorded.
func (a IncidentActivity) OccurredAt() time.Time {
	if a.EventTime != nil {
		return *a.EventTime
	}
	return a.CreatedAt
}

// Describe renders a one-line human readable text for the activity.
func (a IncidentActivity) Describe() string {
	switch a.ActivityType {
	case dtos.ActivityTypeCreated:
		return "incident created"
	case dtos.ActivityTypeComment:
		return fmt.Sprintf("commented: %s", deref(a.Comment))
	case dtos.ActivityTypeStatusChange:
		return fmt.Sprintf("changed status from %s to %s", deref(a.OldValue), deref(a.NewValue))
	case dtos.ActivityTypeSeverityChange:
		return fmt.Sprintf("changed severity from %s to %s", deref(a.OldValue), deref(a.NewValue))
	case dtos.ActivityTypeAssigneeChange:
		return fmt.Sprintf("changed assignee from %s to %s", deref(a.OldValue), deref(a.NewValue))
	case dtos.ActivityTypeResolved:
		return "incident resolved"
	case dtos.ActivityTypeReopened:
		return fmt.Sprintf("incident reopened as %s", deref(a.NewValue))
	case dtos.ActivityTypeDetected:
		return fmt.Sprintf("detected: %s", deref(a.Comment))
	case dtos.ActivityTypeInvestigationStarted:
		return fmt.Sprintf("investigation started: %s", deref(a.Comment))
	case dtos.ActivityTypeRootCauseIdentified:
		return fmt.Sprintf("root cause identified: %s", deref(a.Comment))
	case dtos.ActivityTypeMitigation:
		return fmt.Sprintf("mitigation: %s", deref(a.Comment))
	case dtos.ActivityTypeTimelineResolved:
		return fmt.Sprintf("resolved: %s", deref(a.Comment))
	case dtos.ActivityTypeOther:
		return deref(a.Comment)
	}
	return fmt.Sprintf("unknown activity %q", a.ActivityType)
}
