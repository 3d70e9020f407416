package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/incidentguard/dtos"
	"gorm.io/datatypes"
)

// AuditLog rows are never updated or deleted.
type AuditLog struct {
	ID           uuid.UUID        `json:"id" gorm:"primarykey;type:uuid;default:gen_random_uuid()"`
	UserID       *uuid.UUID       `json:"user_id" gorm:"type:uuid;index"`
	UserName     string           `json:"user_name" gorm:"type:text"`
	UserEmail    string           `json:"user_email" gorm:"type:text"`
	Action       dtos.AuditAction `json:"action" gorm:"type:text;not null;index;index:idx_audit_logs_action_created,priority:1"`
	ResourceType string           `json:"resource_type" gorm:"type:text;index;index:idx_audit_logs_resource_created,priority:1"`
	ResourceID   *uuid.UUID       `json:"resource_id" gorm:"type:uuid"`
	Method       string           `json:"method" gorm:"type:text"`
	Path         string           `json:"path" gorm:"type:text"`
	StatusCode   int              `json:"status_code"`
	IPAddress    string           `json:"ip_address" gorm:"type:text"`
	UserAgent    string           `json:"user_agent" gorm:"type:text"`
	Details      datatypes.JSON   `json:"details" gorm:"type:jsonb"`
	CreatedAt    time.Time        `json:"created_at" gorm:"not null;index;index:idx_audit_logs_action_created,priority:2;index:idx_audit_logs_resource_created,priority:2"`
}

func (AuditLog) TableName() string {
	return "audit_logs"
}
