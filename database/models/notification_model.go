package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/incidentguard/dtos"
	"gorm.io/datatypes"
)

type NotificationSetting struct {
	UserID                  uuid.UUID `json:"user_id" gorm:"primarykey;type:uuid"`
	EmailEnabled            bool      `json:"email_enabled" gorm:"not null;default:true"`
	SlackEnabled            bool      `json:"slack_enabled" gorm:"not null;default:false"`
	SlackWebhook            string    `json:"slack_webhook" gorm:"type:text"`
	NotifyOnIncidentCreated bool      `json:"notify_on_incident_created" gorm:"not null;default:true"`
	NotifyOnAssigned        bool      `json:"notify_on_assigned" gorm:"not null;default:true"`
	NotifyOnComment         bool      `json:"notify_on_comment" gorm:"not null;default:true"`
	NotifyOnStatusChange    bool      `json:"notify_on_status_change" gorm:"not null;default:true"`
	NotifyOnSeverityChange  bool      `json:"notify_on_severity_change" gorm:"not null;default:true"`
	NotifyOnResolved        bool      `json:"notify_on_resolved" gorm:"not null;default:true"`
	NotifyOnEscalation      bool      `json:"notify_on_escalation" gorm:"not null;default:true"`
	CreatedAt               time.Time `json:"created_at"`
	UpdatedAt               time.Time `json:"updated_at"`
}

func (NotificationSetting) TableName() string {
	return "notification_settings"
}

// DefaultNotificationSetting is used for users that never stored settings.
func DefaultNotificationSetting(userID uuid.UUID) NotificationSetting {
	return NotificationSetting{
		UserID:                  userID,
		EmailEnabled:            true,
		NotifyOnIncidentCreated: true,
		NotifyOnAssigned:        true,
		NotifyOnComment:         true,
		NotifyOnStatusChange:    true,
		NotifyOnSeverityChange:  true,
		NotifyOnResolved:        true,
		NotifyOnEscalation:      true,
	}
}

// Wants reports whether the per-event toggle for the event is on.
func (s NotificationSetting) Wants(event dtos.NotificationEventType) bool {
	switch event {
	case dtos.NotificationEventIncidentCreated:
		return s.NotifyOnIncidentCreated
	case dtos.NotificationEventAssigned:
		return s.NotifyOnAssigned
	case dtos.NotificationEventComment:
		return s.NotifyOnComment
	case dtos.NotificationEventStatusChange:
		return s.NotifyOnStatusChange
	case dtos.NotificationEventSeverityChange:
		return s.NotifyOnSeverityChange
	case dtos.NotificationEventResolved:
		return s.NotifyOnResolved
	case dtos.NotificationEventEscalation:
		return s.NotifyOnEscalation
	}
	return false
}

// Channels lists the enabled delivery channels. Slack needs a webhook.
func (s NotificationSetting) Channels() []dtos.NotificationChannel {
	channels := make([]dtos.NotificationChannel, 0, 2)
	if s.EmailEnabled {
		channels = append(channels, dtos.NotificationChannelEmail)
	}
	if s.SlackEnabled && s.SlackWebhook != "" {
		channels = append(channels, dtos.NotificationChannelSlack)
	}
	return channels
}

// NotificationIntent is an outbox row. It is written in the transaction of
// the mutation that caused it and handed to delivery after commit.
type NotificationIntent struct {
	ID         uuid.UUID                  `json:"id" gorm:"primarykey;type:uuid;default:gen_random_uuid()"`
	UserID     uuid.UUID                  `json:"user_id" gorm:"type:uuid;not null;index"`
	Channel    dtos.NotificationChannel   `json:"channel" gorm:"type:text;not null"`
	EventType  dtos.NotificationEventType `json:"event_type" gorm:"type:text;not null"`
	IncidentID uuid.UUID                  `json:"incident_id" gorm:"type:uuid;not null;index"`
	Payload    datatypes.JSON             `json:"payload" gorm:"type:jsonb"`
	CreatedAt  time.Time                  `json:"created_at" gorm:"not null"`
}

func (NotificationIntent) TableName() string {
	return "notification_intents"
}
