package services

import (
	"context"
	"encoding/json"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/incidentguard/database/models"
	"github.com/l3montree-dev/incidentguard/dtos"
	"github.com/l3montree-dev/incidentguard/monitoring"
	"github.com/l3montree-dev/incidentguard/shared"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
)

type NotificationService struct {
	notificationSettingRepository shared.NotificationSettingRepository
	notificationIntentRepository  shared.NotificationIntentRepository
	auditLogService               shared.AuditLogService
	broker                        shared.PubSubBroker
	now                           func() time.Time
}

var _ shared.NotificationService = (*NotificationService)(nil)

// NewNotificationService creates the dispatcher. broker may be nil, intents
// then stay in the outbox table only.
func NewNotificationService(
	notificationSettingRepository shared.NotificationSettingRepository,
	notificationIntentRepository shared.NotificationIntentRepository,
	auditLogService shared.AuditLogService,
	broker shared.PubSubBroker,
) *NotificationService {
	return &NotificationService{
		notificationSettingRepository: notificationSettingRepository,
		notificationIntentRepository:  notificationIntentRepository,
		auditLogService:               auditLogService,
		broker:                        broker,
		now:                           time.Now,
	}
}

// recipients are the assignee and the creator of the incident without the
// actor. The order is stable: assignee first.
func recipients(event shared.NotificationEvent) []uuid.UUID {
	candidates := make([]uuid.UUID, 0, 2)
	if event.Incident.AssigneeID != nil {
		candidates = append(candidates, *event.Incident.AssigneeID)
	}
	candidates = append(candidates, event.Incident.CreatorID)

	seen := make(map[uuid.UUID]struct{}, len(candidates))
	result := make([]uuid.UUID, 0, len(candidates))
	for _, id := range candidates {
		if id == uuid.Nil || id == event.Actor.ID {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		result = append(result, id)
	}
	return result
}

func eventPayload(event shared.NotificationEvent) map[string]any {
	payload := map[string]any{
		"incident_id": event.Incident.ID.String(),
		"title":       event.Incident.Title,
		"severity":    event.Incident.Severity,
		"status":      event.Incident.Status,
		"actor_id":    event.Actor.ID.String(),
		"actor_name":  event.Actor.Name,
	}
	for k, v := range event.Payload {
		payload[k] = v
	}
	return payload
}

func (s *NotificationService) Dispatch(ctx context.Context, tx shared.DB, events ...shared.NotificationEvent) ([]models.NotificationIntent, error) {
	var intents []models.NotificationIntent
	now := s.now().UTC()

	for _, event := range events {
		users := recipients(event)
		if len(users) == 0 {
			continue
		}
		raw, err := json.Marshal(eventPayload(event))
		if err != nil {
			return nil, errors.Wrap(err, "could not marshal notification payload")
		}

		for _, userID := range users {
			setting, err := s.notificationSettingRepository.Read(tx, userID)
			if err != nil {
				return nil, err
			}
			if !setting.Wants(event.Type) {
				continue
			}
			for _, channel := range setting.Channels() {
				intents = append(intents, models.NotificationIntent{
					ID:         uuid.New(),
					UserID:     userID,
					Channel:    channel,
					EventType:  event.Type,
					IncidentID: event.Incident.ID,
					Payload:    datatypes.JSON(raw),
					CreatedAt:  now,
				})
			}
		}
	}

	if len(intents) == 0 {
		return nil, nil
	}
	if err := s.notificationIntentRepository.CreateBatch(tx, intents); err != nil {
		return nil, err
	}
	return intents, nil
}

// Publish hands committed intents to the broker. Failures are logged, the
// intents stay in the outbox.
func (s *NotificationService) Publish(ctx context.Context, intents []models.NotificationIntent) {
	for _, intent := range intents {
		monitoring.NotificationIntentsAmount.WithLabelValues(string(intent.EventType), string(intent.Channel)).Inc()
		if s.broker == nil {
			continue
		}

		var payload map[string]any
		if err := json.Unmarshal(intent.Payload, &payload); err != nil {
			slog.Warn("could not decode notification payload", "intent", intent.ID, "err", err)
			payload = map[string]any{}
		}
		message := shared.NewSimplePubSubMessage(shared.NotificationIntentChannel, map[string]any{
			"id":          intent.ID.String(),
			"user_id":     intent.UserID.String(),
			"channel":     intent.Channel,
			"event_type":  intent.EventType,
			"incident_id": intent.IncidentID.String(),
			"payload":     payload,
			"created_at":  intent.CreatedAt,
		})
		if err := s.broker.Publish(ctx, message); err != nil {
			monitoring.NotificationPublishFailedAmount.Inc()
			slog.Warn("could not publish notification intent", "intent", intent.ID, "err", err)
		}
	}
}

func (s *NotificationService) GetSetting(ctx context.Context, claim shared.Claim) (models.NotificationSetting, error) {
	if claim.ID == uuid.Nil {
		return models.NotificationSetting{}, shared.Denied("notification settings need an authenticated user")
	}
	return s.notificationSettingRepository.Read(nil, claim.ID)
}

func (s *NotificationService) UpdateSetting(ctx context.Context, claim shared.Claim, req dtos.NotificationSettingUpdateRequest) (models.NotificationSetting, error) {
	if claim.ID == uuid.Nil {
		return models.NotificationSetting{}, shared.Denied("notification settings need an authenticated user")
	}
	if err := validate(req); err != nil {
		return models.NotificationSetting{}, err
	}
	if req.SlackEnabled && req.SlackWebhook == "" {
		return models.NotificationSetting{}, shared.Invalid("slack_webhook is required when slack is enabled")
	}

	setting := models.NotificationSetting{
		UserID:                  claim.ID,
		EmailEnabled:            req.EmailEnabled,
		SlackEnabled:            req.SlackEnabled,
		SlackWebhook:            req.SlackWebhook,
		NotifyOnIncidentCreated: req.NotifyOnIncidentCreated,
		NotifyOnAssigned:        req.NotifyOnAssigned,
		NotifyOnComment:         req.NotifyOnComment,
		NotifyOnStatusChange:    req.NotifyOnStatusChange,
		NotifyOnSeverityChange:  req.NotifyOnSeverityChange,
		NotifyOnResolved:        req.NotifyOnResolved,
		NotifyOnEscalation:      req.NotifyOnEscalation,
		UpdatedAt:               s.now().UTC(),
	}

	err := s.notificationSettingRepository.Transaction(func(tx shared.DB) error {
		if err := s.notificationSettingRepository.Upsert(tx, &setting); err != nil {
			return err
		}
		// the webhook is a secret, only record that it changed
		return s.auditLogService.Record(ctx, tx, &claim, shared.AuditEntry{
			Action:       dtos.AuditActionUpdate,
			ResourceType: "notification_setting",
			ResourceID:   &claim.ID,
			Details: map[string]any{
				"email_enabled": setting.EmailEnabled,
				"slack_enabled": setting.SlackEnabled,
			},
		})
	})
	if err != nil {
		return models.NotificationSetting{}, err
	}
	return setting, nil
}
