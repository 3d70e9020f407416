package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/incidentguard/dtos"
)

// FiveWhys is stored as five nullable columns. All columns null means the
// analysis has not been started.
type FiveWhys struct {
	Why1 *string `gorm:"column:why1;type:text"`
	Why2 *string `gorm:"column:why2;type:text"`
	Why3 *string `gorm:"column:why3;type:text"`
	Why4 *string `gorm:"column:why4;type:text"`
	Why5 *string `gorm:"column:why5;type:text"`
}

func NewFiveWhys(w *dtos.FiveWhys) FiveWhys {
	if w == nil {
		return FiveWhys{}
	}
	return FiveWhys{Why1: &w.Why1, Why2: &w.Why2, Why3: &w.Why3, Why4: &w.Why4, Why5: &w.Why5}
}

func (f FiveWhys) IsEmpty() bool {
	return f.Why1 == nil && f.Why2 == nil && f.Why3 == nil && f.Why4 == nil && f.Why5 == nil
}

func (f FiveWhys) ToDTO() *dtos.FiveWhys {
	if f.IsEmpty() {
		return nil
	}
	return &dtos.FiveWhys{Why1: deref(f.Why1), Why2: deref(f.Why2), Why3: deref(f.Why3), Why4: deref(f.Why4), Why5: deref(f.Why5)}
}

type PostMortem struct {
	Model
	IncidentID            uuid.UUID             `json:"incident_id" gorm:"type:uuid;not null;uniqueIndex"`
	AuthorID              uuid.UUID             `json:"author_id" gorm:"type:uuid;not null;index"`
	Status                dtos.PostMortemStatus `json:"status" gorm:"type:text;not null;default:'draft';index"`
	RootCause             string                `json:"root_cause" gorm:"type:text"`
	ImpactAnalysis        string                `json:"impact_analysis" gorm:"type:text"`
	WhatWentWell          string                `json:"what_went_well" gorm:"type:text"`
	WhatWentWrong         string                `json:"what_went_wrong" gorm:"type:text"`
	LessonsLearned        string                `json:"lessons_learned" gorm:"type:text"`
	FiveWhys              FiveWhys              `json:"five_whys" gorm:"embedded"`
	AIRootCauseSuggestion string                `json:"ai_root_cause_suggestion" gorm:"type:text"`
	PublishedAt           *time.Time            `json:"published_at"`

	ActionItems []ActionItem `json:"action_items" gorm:"foreignKey:PostMortemID;constraint:OnDelete:CASCADE"`
}

func (PostMortem) TableName() string {
	return "post_mortems"
}

// IsEditable reports whether narrative fields and owned action items may change.
func (p PostMortem) IsEditable() bool {
	return p.Status == dtos.PostMortemStatusDraft
}
