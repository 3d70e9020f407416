// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package dtos

import (
	"time"

	"github.com/google/uuid"
)

type PostMortemStatus string

const (
	PostMortemStatusDraft     PostMortemStatus = "draft"
	PostMortemStatusPublished PostMortemStatus = "published"
)

// FiveWhys is the root cause analysis. A nil *FiveWhys means the analysis
// was not started yet.
type FiveWhys struct {
	Why1 string `json:"why1" validate:"max=2000"`
	Why2 string `json:"why2" validate:"max=2000"`
	Why3 string `json:"why3" validate:"max=2000"`
	Why4 string `json:"why4" validate:"max=2000"`
	Why5 string `json:"why5" validate:"max=2000"`
}

type PostMortemCreateRequest struct {
	IncidentID     uuid.UUID `json:"incident_id" validate:"required"`
	RootCause      string    `json:"root_cause" validate:"max=20000"`
	ImpactAnalysis string    `json:"impact_analysis" validate:"max=20000"`
	WhatWentWell   string    `json:"what_went_well" validate:"max=20000"`
	WhatWentWrong  string    `json:"what_went_wrong" validate:"max=20000"`
	LessonsLearned string    `json:"lessons_learned" validate:"max=20000"`
	FiveWhys       *FiveWhys `json:"five_whys" validate:"omitempty"`
}

// PostMortemUpdateRequest replaces every narrative field.
type PostMortemUpdateRequest struct {
	RootCause      string    `json:"root_cause" validate:"max=20000"`
	ImpactAnalysis string    `json:"impact_analysis" validate:"max=20000"`
	WhatWentWell   string    `json:"what_went_well" validate:"max=20000"`
	WhatWentWrong  string    `json:"what_went_wrong" validate:"max=20000"`
	LessonsLearned string    `json:"lessons_learned" validate:"max=20000"`
	FiveWhys       *FiveWhys `json:"five_whys" validate:"omitempty"`
}

type PostMortemListQuery struct {
	Status   PostMortemStatus `query:"status" validate:"omitempty,oneof=draft published"`
	AuthorID *uuid.UUID       `query:"author_id"`
}

type PostMortemDTO struct {
	ID                    uuid.UUID        `json:"id"`
	IncidentID            uuid.UUID        `json:"incident_id"`
	AuthorID              uuid.UUID        `json:"author_id"`
	Status                PostMortemStatus `json:"status"`
	RootCause             string           `json:"root_cause"`
	ImpactAnalysis        string           `json:"impact_analysis"`
	WhatWentWell          string           `json:"what_went_well"`
	WhatWentWrong         string           `json:"what_went_wrong"`
	LessonsLearned        string           `json:"lessons_learned"`
	FiveWhys              *FiveWhys        `json:"five_whys"`
	AIRootCauseSuggestion string           `json:"ai_root_cause_suggestion"`
	PublishedAt           *time.Time       `json:"published_at"`
	CreatedAt             time.Time        `json:"created_at"`
	UpdatedAt             time.Time        `json:"updated_at"`
	ActionItems           []ActionItemDTO  `json:"action_items,omitempty"`
}

type AISuggestionDTO struct {
	Suggestion string        `json:"suggestion"`
	PostMortem PostMortemDTO `json:"post_mortem"`
}
