package dtos

import (
	"time"

	"github.com/google/uuid"
)

type NotificationChannel string

const (
	NotificationChannelEmail NotificationChannel = "email"
	NotificationChannelSlack NotificationChannel = "slack"
)

type NotificationEventType string

const (
	NotificationEventIncidentCreated NotificationEventType = "incident_created"
	NotificationEventAssigned        NotificationEventType = "assigned"
	NotificationEventComment         NotificationEventType = "comment"
	NotificationEventStatusChange    NotificationEventType = "status_change"
	NotificationEventSeverityChange  NotificationEventType = "severity_change"
	NotificationEventResolved        NotificationEventType = "resolved"
	NotificationEventEscalation      NotificationEventType = "escalation"
)

type NotificationSettingUpdateRequest struct {
	EmailEnabled            bool   `json:"email_enabled"`
	SlackEnabled            bool   `json:"slack_enabled"`
	SlackWebhook            string `json:"slack_webhook" validate:"omitempty,url,max=500"`
	NotifyOnIncidentCreated bool   `json:"notify_on_incident_created"`
	NotifyOnAssigned        bool   `json:"notify_on_assigned"`
	NotifyOnComment         bool   `json:"notify_on_comment"`
	NotifyOnStatusChange    bool   `json:"notify_on_status_change"`
	NotifyOnSeverityChange  bool   `json:"notify_on_severity_change"`
	NotifyOnResolved        bool   `json:"notify_on_resolved"`
	NotifyOnEscalation      bool   `json:"notify_on_escalation"`
}

type NotificationSettingDTO struct {
	UserID                  uuid.UUID `json:"user_id"`
	EmailEnabled            bool      `json:"email_enabled"`
	SlackEnabled            bool      `json:"slack_enabled"`
	SlackWebhook            string    `json:"slack_webhook"`
	NotifyOnIncidentCreated bool      `json:"notify_on_incident_created"`
	NotifyOnAssigned        bool      `json:"notify_on_assigned"`
	NotifyOnComment         bool      `json:"notify_on_comment"`
	NotifyOnStatusChange    bool      `json:"notify_on_status_change"`
	NotifyOnSeverityChange  bool      `json:"notify_on_severity_change"`
	NotifyOnResolved        bool      `json:"notify_on_resolved"`
	NotifyOnEscalation      bool      `json:"notify_on_escalation"`
}

// NotificationIntentDTO is what gets published to the delivery side.
type NotificationIntentDTO struct {
	ID         uuid.UUID             `json:"id"`
	UserID     uuid.UUID             `json:"user_id"`
	Channel    NotificationChannel   `json:"channel"`
	EventType  NotificationEventType `json:"event_type"`
	IncidentID uuid.UUID             `json:"incident_id"`
	Payload    map[string]any        `json:"payload"`
	CreatedAt  time.Time             `json:"created_at"`
}
