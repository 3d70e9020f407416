package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/incidentguard/dtos"
)

type ActionItem struct {
	Model
	PostMortemID uuid.UUID               `json:"post_mortem_id" gorm:"type:uuid;not null;index"`
	Title        string                  `json:"title" gorm:"type:text;not null"`
	Description  string                  `json:"description" gorm:"type:text"`
	AssigneeID   *uuid.UUID              `json:"assignee_id" gorm:"type:uuid;index"`
	Priority     dtos.ActionItemPriority `json:"priority" gorm:"type:text;not null;default:'medium'"`
	Status       dtos.ActionItemStatus   `json:"status" gorm:"type:text;not null;default:'pending';index"`
	DueDate      *time.Time              `json:"due_date"`
	RelatedLinks string                  `json:"related_links" gorm:"type:text"`
	CompletedAt  *time.Time              `json:"completed_at"`
}

func (ActionItem) TableName() string {
	return "action_items"
}

// SetStatus keeps completed_at in line with the status.
func (a *ActionItem) SetStatus(status dtos.ActionItemStatus, now time.Time) {
	if status == dtos.ActionItemStatusCompleted && a.Status != dtos.ActionItemStatusCompleted {
		a.CompletedAt = &now
	} else if status != dtos.ActionItemStatusCompleted {
		a.CompletedAt = nil
	}
	a.Status = status
}
