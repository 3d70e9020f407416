package dtos

import (
	"time"

	"github.com/google/uuid"
)

type ActionItemPriority string

const (
	ActionItemPriorityHigh   ActionItemPriority = "high"
	ActionItemPriorityMedium ActionItemPriority = "medium"
	ActionItemPriorityLow    ActionItemPriority = "low"
)

type ActionItemStatus string

const (
	ActionItemStatusPending    ActionItemStatus = "pending"
	ActionItemStatusInProgress ActionItemStatus = "in_progress"
	ActionItemStatusCompleted  ActionItemStatus = "completed"
)

type ActionItemCreateRequest struct {
	Title        string             `json:"title" validate:"required,max=255"`
	Description  string             `json:"description" validate:"max=10000"`
	AssigneeID   *uuid.UUID         `json:"assignee_id"`
	Priority     ActionItemPriority `json:"priority" validate:"required,oneof=high medium low"`
	Status       ActionItemStatus   `json:"status" validate:"omitempty,oneof=pending in_progress completed"`
	DueDate      *time.Time         `json:"due_date"`
	RelatedLinks string             `json:"related_links" validate:"max=4000"`
}

// ActionItemUpdateRequest is a full replacement, absent optional fields are cleared.
type ActionItemUpdateRequest struct {
	Title        string             `json:"title" validate:"required,max=255"`
	Description  string             `json:"description" validate:"max=10000"`
	AssigneeID   *uuid.UUID         `json:"assignee_id"`
	Priority     ActionItemPriority `json:"priority" validate:"required,oneof=high medium low"`
	Status       ActionItemStatus   `json:"status" validate:"required,oneof=pending in_progress completed"`
	DueDate      *time.Time         `json:"due_date"`
	RelatedLinks string             `json:"related_links" validate:"max=4000"`
}

type ActionItemListQuery struct {
	Status     ActionItemStatus   `query:"status" validate:"omitempty,oneof=pending in_progress completed"`
	Priority   ActionItemPriority `query:"priority" validate:"omitempty,oneof=high medium low"`
	AssigneeID *uuid.UUID         `query:"assignee_id"`
	Search     string             `query:"search" validate:"max=255"`
}

type ActionItemDTO struct {
	ID           uuid.UUID          `json:"id"`
	PostMortemID uuid.UUID          `json:"post_mortem_id"`
	Title        string             `json:"title"`
	Description  string             `json:"description"`
	AssigneeID   *uuid.UUID         `json:"assignee_id"`
	Priority     ActionItemPriority `json:"priority"`
	Status       ActionItemStatus   `json:"status"`
	DueDate      *time.Time         `json:"due_date"`
	RelatedLinks string             `json:"related_links"`
	CompletedAt  *time.Time         `json:"completed_at"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}
