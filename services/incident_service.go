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
	"log/slog"

	"github.com/google/uuid"
	"github.com/l3montree-dev/incidentguard/database/models"
	"github.com/l3montree-dev/incidentguard/dtos"
	"github.com/l3montree-dev/incidentguard/monitoring"
	"github.com/l3montree-dev/incidentguard/shared"
	"github.com/l3montree-dev/incidentguard/statemachine"
)

type IncidentService struct {
	incidentRepository   shared.IncidentRepository
	activityRepository   shared.ActivityRepository
	attachmentRepository shared.AttachmentRepository
	blobStore            shared.BlobStore
	authorizer           shared.Authorizer
	stateMachine         *statemachine.IncidentStateMachine
	auditLogService      shared.AuditLogService
	notificationService  shared.NotificationService
	suggester            shared.RootCauseSuggester
	limiter              shared.SuggestionLimiter
}

var _ shared.IncidentService = (*IncidentService)(nil)

func NewIncidentService(
	incidentRepository shared.IncidentRepository,
	activityRepository shared.ActivityRepository,
	attachmentRepository shared.AttachmentRepository,
	blobStore shared.BlobStore,
	authorizer shared.Authorizer,
	stateMachine *statemachine.IncidentStateMachine,
	auditLogService shared.AuditLogService,
	notificationService shared.NotificationService,
	suggester shared.RootCauseSuggester,
	limiter shared.SuggestionLimiter,
) *IncidentService {
	return &IncidentService{
		incidentRepository:   incidentRepository,
		activityRepository:   activityRepository,
		attachmentRepository: attachmentRepository,
		blobStore:            blobStore,
		authorizer:           authorizer,
		stateMachine:         stateMachine,
		auditLogService:      auditLogService,
		notificationService:  notificationService,
		suggester:            suggester,
		limiter:              limiter,
	}
}

func (s *IncidentService) Create(ctx context.Context, claim shared.Claim, req dtos.IncidentCreateRequest) (models.Incident, error) {
	if err := requirePermission(s.authorizer, claim, shared.PermissionCreateIncidents); err != nil {
		return models.Incident{}, err
	}
	if err := validate(req); err != nil {
		return models.Incident{}, err
	}

	incident := models.NewIncident(claim.ID, req.Title, req.Description, req.Severity, req.ImpactScope, req.AssigneeID)
	transition, err := s.stateMachine.Create(incident, req.Status, req.DetectedAt, claim.ID)
	if err != nil {
		return models.Incident{}, err
	}
	incident = transition.Incident

	var intents []models.NotificationIntent
	err = s.incidentRepository.Transaction(func(tx shared.DB) error {
		if err := s.incidentRepository.Create(tx, &incident); err != nil {
			return err
		}
		if len(req.TagIDs) > 0 {
			if err := s.incidentRepository.ReplaceTags(tx, &incident, req.TagIDs); err != nil {
				return err
			}
		}
		if err := s.activityRepository.CreateBatch(tx, transition.Activities); err != nil {
			return err
		}
		if err := s.auditLogService.Record(ctx, tx, &claim, shared.AuditEntry{
			Action:       dtos.AuditActionCreate,
			ResourceType: "incident",
			ResourceID:   &incident.ID,
			Details: map[string]any{
				"title":    incident.Title,
				"severity": incident.Severity,
				"status":   incident.Status,
			},
		}); err != nil {
			return err
		}

		intents, err = s.notificationService.Dispatch(ctx, tx, shared.NotificationEvent{
			Type:     dtos.NotificationEventIncidentCreated,
			Incident: incident,
			Actor:    claim,
		})
		return err
	})
	if err != nil {
		return models.Incident{}, err
	}

	monitoring.IncidentsCreatedAmount.WithLabelValues(string(incident.Severity)).Inc()
	s.notificationService.Publish(ctx, intents)
	return incident, nil
}

func (s *IncidentService) Read(ctx context.Context, claim shared.Claim, id uuid.UUID) (models.Incident, error) {
	if err := requirePermission(s.authorizer, claim, shared.PermissionViewIncidents); err != nil {
		return models.Incident{}, err
	}
	return s.incidentRepository.Read(nil, id)
}

func (s *IncidentService) List(ctx context.Context, claim shared.Claim, pageInfo shared.PageInfo, query dtos.IncidentListQuery) (shared.Paged[models.Incident], error) {
	if err := requirePermission(s.authorizer, claim, shared.PermissionViewIncidents); err != nil {
		return shared.Paged[models.Incident]{}, err
	}
	if err := validate(query); err != nil {
		return shared.Paged[models.Incident]{}, err
	}
	return s.incidentRepository.List(pageInfo, query)
}

// readEditable loads the incident locked for the rest of tx and checks the
// edit right of the claim.
func (s *IncidentService) readEditable(tx shared.DB, claim shared.Claim, id uuid.UUID) (models.Incident, error) {
	incident, err := s.incidentRepository.ReadForUpdate(tx, id)
	if err != nil {
		return models.Incident{}, err
	}
	if !s.authorizer.CanEditIncident(claim, incident) {
		return models.Incident{}, denied(shared.PermissionEditIncidents, "not allowed to edit this incident")
	}
	return incident, nil
}

func (s *IncidentService) Update(ctx context.Context, claim shared.Claim, id uuid.UUID, req dtos.IncidentUpdateRequest) (models.Incident, error) {
	if err := validate(req); err != nil {
		return models.Incident{}, err
	}
	if req.Title != nil {
		if err := requireText("title", *req.Title); err != nil {
			return models.Incident{}, err
		}
	}

	change := statemachine.Change{
		Title:       req.Title,
		Description: req.Description,
		ImpactScope: req.ImpactScope,
		Status:      req.Status,
		Severity:    req.Severity,
		AssigneeID:  req.AssigneeID,
		Unassign:    req.UnassignAssignee,
	}
	return s.applyChange(ctx, claim, id, change, req.TagIDs)
}

func (s *IncidentService) Assign(ctx context.Context, claim shared.Claim, id uuid.UUID, assigneeID *uuid.UUID) (models.Incident, error) {
	change := statemachine.Change{AssigneeID: assigneeID, Unassign: assigneeID == nil}
	return s.applyChange(ctx, claim, id, change, nil)
}

func (s *IncidentService) applyChange(ctx context.Context, claim shared.Claim, id uuid.UUID, change statemachine.Change, tagIDs []uuid.UUID) (models.Incident, error) {
	var (
		result     models.Incident
		transition statemachine.Transition
		intents    []models.NotificationIntent
	)

	err := s.incidentRepository.Transaction(func(tx shared.DB) error {
		incident, err := s.readEditable(tx, claim, id)
		if err != nil {
			return err
		}

		transition, err = s.stateMachine.Apply(incident, change, claim.ID)
		if err != nil {
			return err
		}
		result = transition.Incident

		if err := s.incidentRepository.Save(tx, &result); err != nil {
			return err
		}
		if tagIDs != nil {
			if err := s.incidentRepository.ReplaceTags(tx, &result, tagIDs); err != nil {
				return err
			}
		}
		if len(transition.Activities) > 0 {
			if err := s.activityRepository.CreateBatch(tx, transition.Activities); err != nil {
				return err
			}
		}

		if err := s.auditLogService.Record(ctx, tx, &claim, shared.AuditEntry{
			Action:       dtos.AuditActionUpdate,
			ResourceType: "incident",
			ResourceID:   &result.ID,
			Details:      updateDetails(incident, result, change, tagIDs),
		}); err != nil {
			return err
		}

		intents, err = s.notificationService.Dispatch(ctx, tx, transitionEvents(transition, claim)...)
		return err
	})
	if err != nil {
		return models.Incident{}, err
	}

	recordTransitionMetrics(transition)
	s.notificationService.Publish(ctx, intents)
	return result, nil
}

func updateDetails(before, after models.Incident, change statemachine.Change, tagIDs []uuid.UUID) map[string]any {
	d := auditDetails{}
	if change.Title != nil && before.Title != after.Title {
		d.change("title", before.Title, after.Title)
	}
	if change.Description != nil && before.Description != after.Description {
		d["description"] = "changed"
	}
	if change.ImpactScope != nil && before.ImpactScope != after.ImpactScope {
		d.change("impact_scope", before.ImpactScope, after.ImpactScope)
	}
	if change.Summary != nil && before.Summary != after.Summary {
		d["summary"] = "changed"
	}
	if before.Status != after.Status {
		d.change("status", before.Status, after.Status)
	}
	if before.Severity != after.Severity {
		d.change("severity", before.Severity, after.Severity)
	}
	if !sameUUIDPtr(before.AssigneeID, after.AssigneeID) {
		d.change("assignee_id", before.AssigneeID, after.AssigneeID)
	}
	if tagIDs != nil {
		d["tag_ids"] = tagIDs
	}
	return d
}

func sameUUIDPtr(a, b *uuid.UUID) bool {
	if a == nil || b == nil {
		return a == b
	}
	return *a == *b
}

// transitionEvents maps a transition to the notification events it causes.
func transitionEvents(t statemachine.Transition, actor shared.Claim) []shared.NotificationEvent {
	var events []shared.NotificationEvent
	add := func(eventType dtos.NotificationEventType, payload map[string]any) {
		events = append(events, shared.NotificationEvent{Type: eventType, Incident: t.Incident, Actor: actor, Payload: payload})
	}

	if t.StatusChanged {
		add(dtos.NotificationEventStatusChange, map[string]any{"old_status": t.PreviousStatus, "new_status": t.Incident.Status})
		for _, a := range t.Activities {
			if a.ActivityType == dtos.ActivityTypeResolved {
				add(dtos.NotificationEventResolved, nil)
				break
			}
		}
	}
	if t.SeverityChanged {
		add(dtos.NotificationEventSeverityChange, map[string]any{"old_severity": t.PreviousSeverity, "new_severity": t.Incident.Severity})
		if isEscalation(t.PreviousSeverity, t.Incident.Severity) {
			add(dtos.NotificationEventEscalation, map[string]any{"old_severity": t.PreviousSeverity})
		}
	}
	if t.AssigneeChanged && t.Incident.AssigneeID != nil {
		add(dtos.NotificationEventAssigned, map[string]any{"assignee_id": t.Incident.AssigneeID.String()})
	}
	return events
}

func isEscalation(from, to dtos.Severity) bool {
	return to == dtos.SeverityCritical && from.Rank() < to.Rank()
}

func recordTransitionMetrics(t statemachine.Transition) {
	if t.StatusChanged {
		monitoring.IncidentStatusTransitionsAmount.WithLabelValues(string(t.PreviousStatus), string(t.Incident.Status)).Inc()
	}
	if t.SeverityChanged && isEscalation(t.PreviousSeverity, t.Incident.Severity) {
		monitoring.IncidentEscalationsAmount.Inc()
	}
}

func (s *IncidentService) Delete(ctx context.Context, claim shared.Claim, id uuid.UUID) error {
	if !s.authorizer.CanDeleteIncident(claim) {
		return denied(shared.PermissionDeleteIncidents, "only admins may delete incidents")
	}

	var attachments []models.Attachment
	err := s.incidentRepository.Transaction(func(tx shared.DB) error {
		incident, err := s.incidentRepository.ReadForUpdate(tx, id)
		if err != nil {
			return err
		}
		attachments, err = s.attachmentRepository.ListByIncidentID(id)
		if err != nil {
			return err
		}
		if err := s.incidentRepository.Delete(tx, id); err != nil {
			return err
		}
		return s.auditLogService.Record(ctx, tx, &claim, shared.AuditEntry{
			Action:       dtos.AuditActionDelete,
			ResourceType: "incident",
			ResourceID:   &id,
			Details:      map[string]any{"title": incident.Title, "attachments": len(attachments)},
		})
	})
	if err != nil {
		return err
	}

	// rows are gone, leftover blobs are only wasted space
	for _, attachment := range attachments {
		if err := s.blobStore.Delete(ctx, attachment.StorageKey); err != nil {
			slog.Warn("could not delete attachment blob", "attachment", attachment.ID, "err", err)
		}
	}
	return nil
}

// RegenerateSummary overwrites the summary of the incident. The summary is
// untracked, so no activity and no notification is produced.
func (s *IncidentService) RegenerateSummary(ctx context.Context, claim shared.Claim, id uuid.UUID) (models.Incident, error) {
	var result models.Incident
	err := s.incidentRepository.Transaction(func(tx shared.DB) error {
		incident, err := s.readEditable(tx, claim, id)
		if err != nil {
			return err
		}
		if !s.limiter.Allow(claim.ID) {
			return shared.ErrRateLimited
		}

		activities, err := s.activityRepository.ListByIncidentID(tx, id)
		if err != nil {
			return err
		}
		summary, err := s.suggester.Summarize(ctx, incident, activities)
		if err != nil {
			return err
		}

		transition, err := s.stateMachine.Apply(incident, statemachine.Change{Summary: &summary}, claim.ID)
		if err != nil {
			return err
		}
		result = transition.Incident
		if err := s.incidentRepository.Save(tx, &result); err != nil {
			return err
		}
		return s.auditLogService.Record(ctx, tx, &claim, shared.AuditEntry{
			Action:       dtos.AuditActionUpdate,
			ResourceType: "incident",
			ResourceID:   &result.ID,
			Details:      map[string]any{"summary": "regenerated"},
		})
	})
	if err != nil {
		return models.Incident{}, err
	}
	return result, nil
}
