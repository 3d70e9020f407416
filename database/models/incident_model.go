package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/incidentguard/dtos"
)

type Incident struct {
	Model
	Title       string              `json:"title" gorm:"type:text;not null"`
	Description string              `json:"description" gorm:"type:text"`
	Summary     string              `json:"summary" gorm:"type:text"`
	Severity    dtos.Severity       `json:"severity" gorm:"type:text;not null;index"`
	Status      dtos.IncidentStatus `json:"status" gorm:"type:text;not null;default:'open';index"`
	ImpactScope string              `json:"impact_scope" gorm:"type:text"`
	DetectedAt  time.Time           `json:"detected_at" gorm:"not null"`
	ResolvedAt  *time.Time          `json:"resolved_at"`
	AssigneeID  *uuid.UUID          `json:"assignee_id" gorm:"type:uuid;index"`
	// CreatorID is written once on creation. Updates omit the column.
	CreatorID uuid.UUID `json:"creator_id" gorm:"type:uuid;not null;index"`

	Tags []Tag `json:"tags" gorm:"many2many:incident_tags;constraint:OnDelete:CASCADE"`
}

func (Incident) TableName() string {
	return "incidents"
}

func (i Incident) GetTagIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(i.Tags))
	for _, t := range i.Tags {
		ids = append(ids, t.ID)
	}
	return ids
}

// NewIncident builds a fresh incident. Status and derived fields are set by
// the state machine.
func NewIncident(creatorID uuid.UUID, title, description string, severity dtos.Severity, impactScope string, assigneeID *uuid.UUID) Incident {
	return Incident{
		Model:       Model{ID: uuid.New()},
		Title:       title,
		Description: description,
		Severity:    severity,
		ImpactScope: impactScope,
		AssigneeID:  assigneeID,
		CreatorID:   creatorID,
	}
}
