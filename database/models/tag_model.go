package models

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/incidentguard/dtos"
)

type Tag struct {
	Model
	Name  string `json:"name" gorm:"type:text;not null;uniqueIndex"`
	Slug  string `json:"slug" gorm:"type:text;not null;uniqueIndex"`
	Color string `json:"color" gorm:"type:text;not null;default:'#808080'"`
}

func (Tag) TableName() string {
	return "tags"
}

type IncidentTemplate struct {
	Model
	Name        string        `json:"name" gorm:"type:text;not null"`
	Description string        `json:"description" gorm:"type:text"`
	Title       string        `json:"title" gorm:"type:text"`
	Content     string        `json:"content" gorm:"type:text"`
	Severity    dtos.Severity `json:"severity" gorm:"type:text;not null;default:'medium'"`
	ImpactScope string        `json:"impact_scope" gorm:"type:text"`
	CreatorID   uuid.UUID     `json:"creator_id" gorm:"type:uuid;not null;index"`
	IsPublic    bool          `json:"is_public" gorm:"not null;default:false"`
	UsageCount  int           `json:"usage_count" gorm:"not null;default:0"`

	Tags []Tag `json:"tags" gorm:"many2many:template_tags;constraint:OnDelete:CASCADE"`
}

func (IncidentTemplate) TableName() string {
	return "incident_templates"
}

type Attachment struct {
	Model
	IncidentID uuid.UUID `json:"incident_id" gorm:"type:uuid;not null;index"`
	UploaderID uuid.UUID `json:"uploader_id" gorm:"type:uuid;not null"`
	FileName   string    `json:"file_name" gorm:"type:text;not null"`
	FileSize   int64     `json:"file_size" gorm:"not null"`
	MimeType   string    `json:"mime_type" gorm:"type:text"`
	StorageKey string    `json:"-" gorm:"type:text;not null;uniqueIndex"`
}

func (Attachment) TableName() string {
	return "attachments"
}

func (t IncidentTemplate) GetTagIDs() []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(t.Tags))
	for _, tag := range t.Tags {
		ids = append(ids, tag.ID)
	}
	return ids
}
