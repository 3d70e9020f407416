package services

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/incidentguard/database/models"
	"github.com/l3montree-dev/incidentguard/dtos"
	"github.com/l3montree-dev/incidentguard/shared"
)

const (
	defaultRecentActivities = 20
	maxRecentActivities     = 100
)

type ActivityService struct {
	incidentRepository  shared.IncidentRepository
	activityRepository  shared.ActivityRepository
	authorizer          shared.Authorizer
	auditLogService     shared.AuditLogService
	notificationService shared.NotificationService
	now                 func() time.Time
}

var _ shared.ActivityService = (*ActivityService)(nil)

func NewActivityService(
	incidentRepository shared.IncidentRepository,
	activityRepository shared.ActivityRepository,
	authorizer shared.Authorizer,
	auditLogService shared.AuditLogService,
	notificationService shared.NotificationService,
) *ActivityService {
	return &ActivityService{
		incidentRepository:  incidentRepository,
		activityRepository:  activityRepository,
		authorizer:          authorizer,
		auditLogService:     auditLogService,
		notificationService: notificationService,
		now:                 time.Now,
	}
}

// AddComment is open to every role that can see the incident.
func (s *ActivityService) AddComment(ctx context.Context, claim shared.Claim, incidentID uuid.UUID, comment string) (models.IncidentActivity, error) {
	if err := requirePermission(s.authorizer, claim, shared.PermissionViewIncidents); err != nil {
		return models.IncidentActivity{}, err
	}
	comment = strings.TrimSpace(comment)
	if err := validate(dtos.CommentCreateRequest{Comment: comment}); err != nil {
		return models.IncidentActivity{}, err
	}

	var activity models.IncidentActivity
	var intents []models.NotificationIntent
	err := s.incidentRepository.Transaction(func(tx shared.DB) error {
		incident, err := s.incidentRepository.Read(tx, incidentID)
		if err != nil {
			return err
		}

		activity = models.NewCommentActivity(incident.ID, claim.ID, comment, s.now().UTC())
		if err := s.activityRepository.CreateBatch(tx, []models.IncidentActivity{activity}); err != nil {
			return err
		}
		if err := s.auditLogService.Record(ctx, tx, &claim, shared.AuditEntry{
			Action:       dtos.AuditActionCreate,
			ResourceType: "comment",
			ResourceID:   &activity.ID,
			Details:      map[string]any{"incident_id": incident.ID.String()},
		}); err != nil {
			return err
		}

		intents, err = s.notificationService.Dispatch(ctx, tx, shared.NotificationEvent{
			Type:     dtos.NotificationEventComment,
			Incident: incident,
			Actor:    claim,
			Payload:  map[string]any{"comment": comment},
		})
		return err
	})
	if err != nil {
		return models.IncidentActivity{}, err
	}

	s.notificationService.Publish(ctx, intents)
	return activity, nil
}

// AddTimelineEvent records a milestone. Subscribers are notified through
// the comment toggle, there is no dedicated event type for milestones.
func (s *ActivityService) AddTimelineEvent(ctx context.Context, claim shared.Claim, incidentID uuid.UUID, req dtos.TimelineEventCreateRequest) (models.IncidentActivity, error) {
	req.Description = strings.TrimSpace(req.Description)
	if err := validate(req); err != nil {
		return models.IncidentActivity{}, err
	}
	if !req.EventType.IsTimelineEvent() {
		return models.IncidentActivity{}, shared.Invalid("event_type is not a timeline event")
	}

	var activity models.IncidentActivity
	var intents []models.NotificationIntent
	err := s.incidentRepository.Transaction(func(tx shared.DB) error {
		incident, err := s.incidentRepository.Read(tx, incidentID)
		if err != nil {
			return err
		}
		if !s.authorizer.CanEditIncident(claim, incident) {
			return denied(shared.PermissionEditIncidents, "not allowed to edit this incident")
		}

		activity = models.NewTimelineActivity(incident.ID, claim.ID, req.EventType, req.EventTime.UTC(), req.Description, s.now().UTC())
		if err := s.activityRepository.CreateBatch(tx, []models.IncidentActivity{activity}); err != nil {
			return err
		}
		if err := s.auditLogService.Record(ctx, tx, &claim, shared.AuditEntry{
			Action:       dtos.AuditActionCreate,
			ResourceType: "timeline",
			ResourceID:   &activity.ID,
			Details: map[string]any{
				"incident_id": incident.ID.String(),
				"event_type":  req.EventType,
			},
		}); err != nil {
			return err
		}

		intents, err = s.notificationService.Dispatch(ctx, tx, shared.NotificationEvent{
			Type:     dtos.NotificationEventComment,
			Incident: incident,
			Actor:    claim,
			Payload:  map[string]any{"timeline_event": req.EventType},
		})
		return err
	})
	if err != nil {
		return models.IncidentActivity{}, err
	}

	s.notificationService.Publish(ctx, intents)
	return activity, nil
}

func (s *ActivityService) List(ctx context.Context, claim shared.Claim, incidentID uuid.UUID) ([]models.IncidentActivity, error) {
	if err := requirePermission(s.authorizer, claim, shared.PermissionViewIncidents); err != nil {
		return nil, err
	}
	// an unknown incident is a not found, not an empty timeline
	if _, err := s.incidentRepository.Read(nil, incidentID); err != nil {
		return nil, err
	}
	return s.activityRepository.ListByIncidentID(nil, incidentID)
}

func (s *ActivityService) ListRecent(ctx context.Context, claim shared.Claim, limit int) ([]models.IncidentActivity, error) {
	if err := requirePermission(s.authorizer, claim, shared.PermissionViewIncidents); err != nil {
		return nil, err
	}
	switch {
	case limit <= 0:
		limit = defaultRecentActivities
	case limit > maxRecentActivities:
		limit = maxRecentActivities
	}
	return s.activityRepository.ListRecent(limit)
}
