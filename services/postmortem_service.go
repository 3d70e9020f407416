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

package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/incidentguard/database/models"
	"github.com/l3montree-dev/incidentguard/dtos"
	"github.com/l3montree-dev/incidentguard/monitoring"
	"github.com/l3montree-dev/incidentguard/shared"
	"github.com/pkg/errors"
)

type PostMortemService struct {
	postMortemRepository shared.PostMortemRepository
	incidentRepository   shared.IncidentRepository
	activityRepository   shared.ActivityRepository
	authorizer           shared.Authorizer
	auditLogService      shared.AuditLogService
	suggester            shared.RootCauseSuggester
	limiter              shared.SuggestionLimiter
	now                  func() time.Time
}

var _ shared.PostMortemService = (*PostMortemService)(nil)

func NewPostMortemService(
	postMortemRepository shared.PostMortemRepository,
	incidentRepository shared.IncidentRepository,
	activityRepository shared.ActivityRepository,
	authorizer shared.Authorizer,
	auditLogService shared.AuditLogService,
	suggester shared.RootCauseSuggester,
	limiter shared.SuggestionLimiter,
) *PostMortemService {
	return &PostMortemService{
		postMortemRepository: postMortemRepository,
		incidentRepository:   incidentRepository,
		activityRepository:   activityRepository,
		authorizer:           authorizer,
		auditLogService:      auditLogService,
		suggester:            suggester,
		limiter:              limiter,
		now:                  time.Now,
	}
}

func (s *PostMortemService) Create(ctx context.Context, claim shared.Claim, req dtos.PostMortemCreateRequest) (models.PostMortem, error) {
	if err := requirePermission(s.authorizer, claim, shared.PermissionManagePostMortems); err != nil {
		return models.PostMortem{}, err
	}
	if err := validate(req); err != nil {
		return models.PostMortem{}, err
	}

	postMortem := models.PostMortem{
		Model:          models.Model{ID: uuid.New()},
		IncidentID:     req.IncidentID,
		AuthorID:       claim.ID,
		Status:         dtos.PostMortemStatusDraft,
		RootCause:      req.RootCause,
		ImpactAnalysis: req.ImpactAnalysis,
		WhatWentWell:   req.WhatWentWell,
		WhatWentWrong:  req.WhatWentWrong,
		LessonsLearned: req.LessonsLearned,
		FiveWhys:       models.NewFiveWhys(req.FiveWhys),
	}

	err := s.postMortemRepository.Transaction(func(tx shared.DB) error {
		if _, err := s.incidentRepository.Read(tx, req.IncidentID); err != nil {
			return err
		}
		_, err := s.postMortemRepository.ReadByIncidentID(tx, req.IncidentID)
		switch {
		case err == nil:
			return shared.Conflict("the incident already has a post-mortem")
		case !errors.Is(err, shared.ErrNotFound):
			return err
		}

		if err := s.postMortemRepository.Create(tx, &postMortem); err != nil {
			return err
		}
		return s.auditLogService.Record(ctx, tx, &claim, shared.AuditEntry{
			Action:       dtos.AuditActionCreate,
			ResourceType: "post_mortem",
			ResourceID:   &postMortem.ID,
			Details:      map[string]any{"incident_id": req.IncidentID.String()},
		})
	})
	if err != nil {
		return models.PostMortem{}, err
	}
	return postMortem, nil
}

func (s *PostMortemService) Read(ctx context.Context, claim shared.Claim, id uuid.UUID) (models.PostMortem, error) {
	if err := requirePermission(s.authorizer, claim, shared.PermissionViewPostMortems); err != nil {
		return models.PostMortem{}, err
	}
	return s.postMortemRepository.Read(nil, id)
}

func (s *PostMortemService) ReadByIncidentID(ctx context.Context, claim shared.Claim, incidentID uuid.UUID) (models.PostMortem, error) {
	if err := requirePermission(s.authorizer, claim, shared.PermissionViewPostMortems); err != nil {
		return models.PostMortem{}, err
	}
	return s.postMortemRepository.ReadByIncidentID(nil, incidentID)
}

func (s *PostMortemService) List(ctx context.Context, claim shared.Claim, pageInfo shared.PageInfo, query dtos.PostMortemListQuery) (shared.Paged[models.PostMortem], error) {
	if err := requirePermission(s.authorizer, claim, shared.PermissionViewPostMortems); err != nil {
		return shared.Paged[models.PostMortem]{}, err
	}
	if err := validate(query); err != nil {
		return shared.Paged[models.PostMortem]{}, err
	}
	return s.postMortemRepository.List(pageInfo, query)
}

// readDraft loads the post-mortem locked for tx, checks the edit right and
// makes sure it was not published yet.
func (s *PostMortemService) readDraft(tx shared.DB, claim shared.Claim, id uuid.UUID) (models.PostMortem, error) {
	postMortem, err := s.postMortemRepository.ReadForUpdate(tx, id)
	if err != nil {
		return models.PostMortem{}, err
	}
	if !s.authorizer.CanEditPostMortem(claim, postMortem) {
		return models.PostMortem{}, denied(shared.PermissionManagePostMortems, "not allowed to edit this post-mortem")
	}
	if !postMortem.IsEditable() {
		return models.PostMortem{}, shared.Conflict("the post-mortem is already published")
	}
	return postMortem, nil
}

func (s *PostMortemService) Update(ctx context.Context, claim shared.Claim, id uuid.UUID, req dtos.PostMortemUpdateRequest) (models.PostMortem, error) {
	if err := validate(req); err != nil {
		return models.PostMortem{}, err
	}

	var postMortem models.PostMortem
	err := s.postMortemRepository.Transaction(func(tx shared.DB) error {
		var err error
		postMortem, err = s.readDraft(tx, claim, id)
		if err != nil {
			return err
		}

		postMortem.RootCause = req.RootCause
		postMortem.ImpactAnalysis = req.ImpactAnalysis
		postMortem.WhatWentWell = req.WhatWentWell
		postMortem.WhatWentWrong = req.WhatWentWrong
		postMortem.LessonsLearned = req.LessonsLearned
		postMortem.FiveWhys = models.NewFiveWhys(req.FiveWhys)

		if err := s.postMortemRepository.Save(tx, &postMortem); err != nil {
			return err
		}
		return s.auditLogService.Record(ctx, tx, &claim, shared.AuditEntry{
			Action:       dtos.AuditActionUpdate,
			ResourceType: "post_mortem",
			ResourceID:   &postMortem.ID,
			Details:      map[string]any{"five_whys": req.FiveWhys != nil},
		})
	})
	if err != nil {
		return models.PostMortem{}, err
	}
	return postMortem, nil
}

func (s *PostMortemService) Publish(ctx context.Context, claim shared.Claim, id uuid.UUID) (models.PostMortem, error) {
	var postMortem models.PostMortem
	err := s.postMortemRepository.Transaction(func(tx shared.DB) error {
		var err error
		postMortem, err = s.readDraft(tx, claim, id)
		if err != nil {
			return err
		}

		now := s.now().UTC()
		postMortem.Status = dtos.PostMortemStatusPublished
		postMortem.PublishedAt = &now
		if err := s.postMortemRepository.Save(tx, &postMortem); err != nil {
			return err
		}
		return s.auditLogService.Record(ctx, tx, &claim, shared.AuditEntry{
			Action:       dtos.AuditActionUpdate,
			ResourceType: "post_mortem",
			ResourceID:   &postMortem.ID,
			Details:      auditDetails{}.change("status", dtos.PostMortemStatusDraft, dtos.PostMortemStatusPublished),
		})
	})
	if err != nil {
		return models.PostMortem{}, err
	}

	monitoring.PostMortemsPublishedAmount.Inc()
	return postMortem, nil
}

func (s *PostMortemService) Delete(ctx context.Context, claim shared.Claim, id uuid.UUID) error {
	if !s.authorizer.CanDeletePostMortem(claim) {
		return denied(shared.PermissionManagePostMortems, "only admins may delete post-mortems")
	}
	return s.postMortemRepository.Transaction(func(tx shared.DB) error {
		postMortem, err := s.postMortemRepository.ReadForUpdate(tx, id)
		if err != nil {
			return err
		}
		if err := s.postMortemRepository.Delete(tx, id); err != nil {
			return err
		}
		return s.auditLogService.Record(ctx, tx, &claim, shared.AuditEntry{
			Action:       dtos.AuditActionDelete,
			ResourceType: "post_mortem",
			ResourceID:   &id,
			Details:      map[string]any{"incident_id": postMortem.IncidentID.String(), "status": postMortem.Status},
		})
	})
}

// GenerateAISuggestion overwrites root_cause with a generated suggestion.
// Published post-mortems are never touched.
func (s *PostMortemService) GenerateAISuggestion(ctx context.Context, claim shared.Claim, id uuid.UUID) (models.PostMortem, error) {
	var postMortem models.PostMortem
	err := s.postMortemRepository.Transaction(func(tx shared.DB) error {
		var err error
		postMortem, err = s.readDraft(tx, claim, id)
		if err != nil {
			return err
		}
		if !s.limiter.Allow(claim.ID) {
			monitoring.RootCauseSuggestionsAmount.WithLabelValues("rate_limited").Inc()
			return shared.ErrRateLimited
		}

		incident, err := s.incidentRepository.Read(tx, postMortem.IncidentID)
		if err != nil {
			return err
		}
		activities, err := s.activityRepository.ListByIncidentID(tx, incident.ID)
		if err != nil {
			return err
		}
		suggestion, err := s.suggester.SuggestRootCause(ctx, incident, activities)
		if err != nil {
			monitoring.RootCauseSuggestionsAmount.WithLabelValues("error").Inc()
			return errors.Wrap(err, "could not generate root cause suggestion")
		}

		postMortem.AIRootCauseSuggestion = suggestion
		postMortem.RootCause = suggestion
		if err := s.postMortemRepository.Save(tx, &postMortem); err != nil {
			return err
		}
		return s.auditLogService.Record(ctx, tx, &claim, shared.AuditEntry{
			Action:       dtos.AuditActionUpdate,
			ResourceType: "post_mortem",
			ResourceID:   &postMortem.ID,
			Details:      map[string]any{"ai_root_cause_suggestion": "generated"},
		})
	})
	if err != nil {
		return models.PostMortem{}, err
	}

	monitoring.RootCauseSuggestionsAmount.WithLabelValues("success").Inc()
	return postMortem, nil
}
