package dtos

import (
	"time"

	"github.com/google/uuid"
)

type AuditAction string

const (
	AuditActionCreate AuditAction = "create"
	AuditActionRead   AuditAction = "read"
	AuditActionUpdate AuditAction = "update"
	AuditActionDelete AuditAction = "delete"
	AuditActionLogin  AuditAction = "login"
	AuditActionLogout AuditAction = "logout"
)

type AuditLogListQuery struct {
	Action       AuditAction `query:"action" validate:"omitempty,oneof=create read update delete login logout"`
	ResourceType string      `query:"resource_type" validate:"max=64"`
	UserID       *uuid.UUID  `query:"user_id"`
	From         *time.Time  `query:"from"`
	To           *time.Time  `query:"to"`

	// keyset cursor, both or neither. When set the page parameter is ignored.
	BeforeCreatedAt *time.Time `query:"before_created_at"`
	BeforeID        *uuid.UUID `query:"before_id"`
}

func (q AuditLogListQuery) HasCursor() bool {
	return q.BeforeCreatedAt != nil && q.BeforeID != nil
}

// AuditLogCursor points at the last entry of a page. Passing it back as
// before_created_at and before_id yields the next older page, unaffected by
// entries written in the meantime.
type AuditLogCursor struct {
	BeforeCreatedAt time.Time `json:"before_created_at"`
	BeforeID        uuid.UUID `json:"before_id"`
}

type AuditLogPageDTO struct {
	Data       []AuditLogDTO   `json:"data"`
	Pagination Pagination      `json:"pagination"`
	NextCursor *AuditLogCursor `json:"next_cursor,omitempty"`
}

type AuditLogDTO struct {
	ID           uuid.UUID      `json:"id"`
	UserID       *uuid.UUID     `json:"user_id"`
	UserName     string         `json:"user_name"`
	UserEmail    string         `json:"user_email"`
	Action       AuditAction    `json:"action"`
	ResourceType string         `json:"resource_type"`
	ResourceID   *uuid.UUID     `json:"resource_id"`
	Method       string         `json:"method"`
	Path         string         `json:"path"`
	StatusCode   int            `json:"status_code"`
	IPAddress    string         `json:"ip_address"`
	UserAgent    string         `json:"user_agent"`
	Details      map[string]any `json:"details"`
	CreatedAt    time.Time      `json:"created_at"`
}
