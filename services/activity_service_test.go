package services

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/incidentguard/database/models"
	"github.com/l3montree-dev/incidentguard/dtos"
	"github.com/l3montree-dev/incidentguard/mocks"
	"github.com/l3montree-dev/incidentguard/shared"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type activityFixture struct {
	incidents     *mocks.IncidentRepository
	activities    *mocks.ActivityRepository
	audit         *mocks.AuditLogService
	notifications *mocks.NotificationService
	service       *ActivityService
}

func newActivityFixture(t *testing.T) activityFixture {
	f := activityFixture{
		incidents:     mocks.NewIncidentRepository(t),
		activities:    mocks.NewActivityRepository(t),
		audit:         mocks.NewAuditLogService(t),
		notifications: mocks.NewNotificationService(t),
	}
	f.service = NewActivityService(f.incidents, f.activities, newAuthorizer(t), f.audit, f.notifications)
	return f
}

func TestActivityServiceAddComment(t *testing.T) {
	ctx := context.Background()

	t.Run("should let viewers comment", func(t *testing.T) {
		f := newActivityFixture(t)
		claim := claimOf(shared.RoleViewer)
		incident := models.Incident{Model: models.Model{ID: uuid.New()}, CreatorID: uuid.New()}

		runTransaction(&f.incidents.Mock)
		f.incidents.On("Read", mock.Anything, incident.ID).Return(incident, nil)
		f.activities.On("CreateBatch", mock.Anything, mock.MatchedBy(func(a []models.IncidentActivity) bool {
			return len(a) == 1 && a[0].ActivityType == dtos.ActivityTypeComment && *a[0].Comment == "on it"
		})).Return(nil)
		f.audit.On("Record", mock.Anything, mock.Anything, mock.Anything, auditEntry(dtos.AuditActionCreate, "comment")).Return(nil)
		f.notifications.On("Dispatch", mock.Anything, mock.Anything, mock.MatchedBy(func(e shared.NotificationEvent) bool {
			return e.Type == dtos.NotificationEventComment
		})).Return(nil, nil)
		f.notifications.On("Publish", mock.Anything, mock.Anything).Return()

		activity, err := f.service.AddComment(ctx, claim, incident.ID, "  on it ")
		require.NoError(t, err)
		assert.Equal(t, claim.ID, activity.UserID)
	})

	t.Run("should reject an empty comment", func(t *testing.T) {
		f := newActivityFixture(t)

		_, err := f.service.AddComment(ctx, claimOf(shared.RoleViewer), uuid.New(), "   ")
		assert.True(t, errors.Is(err, shared.ErrValidation))
	})

	t.Run("should return not found for unknown incidents", func(t *testing.T) {
		f := newActivityFixture(t)
		id := uuid.New()

		runTransaction(&f.incidents.Mock)
		f.incidents.On("Read", mock.Anything, id).Return(models.Incident{}, shared.NotFound("incident not found"))

		_, err := f.service.AddComment(ctx, claimOf(shared.RoleViewer), id, "hello")
		assert.True(t, errors.Is(err, shared.ErrNotFound))
	})
}

func TestActivityServiceAddTimelineEvent(t *testing.T) {
	ctx := context.Background()
	eventTime := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("should reject activity types that are not milestones", func(t *testing.T) {
		f := newActivityFixture(t)

		_, err := f.service.AddTimelineEvent(ctx, claimOf(shared.RoleAdmin), uuid.New(), dtos.TimelineEventCreateRequest{
			EventType:   dtos.ActivityTypeStatusChange,
			EventTime:   eventTime,
			Description: "x",
		})
		assert.True(t, errors.Is(err, shared.ErrValidation))
	})

	t.Run("should deny viewers", func(t *testing.T) {
		f := newActivityFixture(t)
		incident := models.Incident{Model: models.Model{ID: uuid.New()}, CreatorID: uuid.New()}

		runTransaction(&f.incidents.Mock)
		f.incidents.On("Read", mock.Anything, incident.ID).Return(incident, nil)

		_, err := f.service.AddTimelineEvent(ctx, claimOf(shared.RoleViewer), incident.ID, dtos.TimelineEventCreateRequest{
			EventType:   dtos.ActivityTypeMitigation,
			EventTime:   eventTime,
			Description: "rolled back",
		})
		assert.True(t, errors.Is(err, shared.ErrAuthorizationDenied))
	})

	t.Run("should store the event time of the milestone", func(t *testing.T) {
		f := newActivityFixture(t)
		claim := claimOf(shared.RoleEditor)
		incident := models.Incident{Model: models.Model{ID: uuid.New()}, CreatorID: claim.ID}

		runTransaction(&f.incidents.Mock)
		f.incidents.On("Read", mock.Anything, incident.ID).Return(incident, nil)
		f.activities.On("CreateBatch", mock.Anything, mock.Anything).Return(nil)
		f.audit.On("Record", mock.Anything, mock.Anything, mock.Anything, auditEntry(dtos.AuditActionCreate, "timeline")).Return(nil)
		f.notifications.On("Dispatch", mock.Anything, mock.Anything, mock.MatchedBy(func(e shared.NotificationEvent) bool {
			return e.Type == dtos.NotificationEventComment && e.Payload["timeline_event"] == dtos.ActivityTypeMitigation
		})).Return(nil, nil)
		f.notifications.On("Publish", mock.Anything, mock.Anything).Return()

		activity, err := f.service.AddTimelineEvent(ctx, claim, incident.ID, dtos.TimelineEventCreateRequest{
			EventType:   dtos.ActivityTypeMitigation,
			EventTime:   eventTime,
			Description: "rolled back",
		})
		require.NoError(t, err)
		require.NotNil(t, activity.EventTime)
		assert.Equal(t, eventTime, *activity.EventTime)
		assert.Equal(t, eventTime, activity.OccurredAt())
	})
}

func TestActivityServiceListRecent(t *testing.T) {
	ctx := context.Background()

	cases := []struct {
		name  string
		limit int
		want  int
	}{
		{name: "should default a missing limit", limit: 0, want: defaultRecentActivities},
		{name: "should clamp a large limit", limit: 1000, want: maxRecentActivities},
		{name: "should keep a valid limit", limit: 5, want: 5},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			f := newActivityFixture(t)
			f.activities.On("ListRecent", tc.want).Return([]models.IncidentActivity{}, nil)

			_, err := f.service.ListRecent(ctx, claimOf(shared.RoleViewer), tc.limit)
			require.NoError(t, err)
		})
	}

	t.Run("should return not found when listing the activities of an unknown incident", func(t *testing.T) {
		f := newActivityFixture(t)
		id := uuid.New()
		f.incidents.On("Read", mock.Anything, id).Return(models.Incident{}, shared.NotFound("incident not found"))

		_, err := f.service.List(ctx, claimOf(shared.RoleViewer), id)
		assert.True(t, errors.Is(err, shared.ErrNotFound))
	})
}
