package services

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/incidentguard/database/models"
	"github.com/l3montree-dev/incidentguard/dtos"
	"github.com/l3montree-dev/incidentguard/mocks"
	"github.com/l3montree-dev/incidentguard/shared"
	"github.com/l3montree-dev/incidentguard/statemachine"
	"github.com/l3montree-dev/incidentguard/utils"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type incidentFixture struct {
	incidents     *mocks.IncidentRepository
	activities    *mocks.ActivityRepository
	attachments   *mocks.AttachmentRepository
	blobs         *mocks.BlobStore
	audit         *mocks.AuditLogService
	notifications *mocks.NotificationService
	suggester     *mocks.RootCauseSuggester
	limiter       *mocks.SuggestionLimiter
	service       *IncidentService
}

func newIncidentFixture(t *testing.T) incidentFixture {
	f := incidentFixture{
		incidents:     mocks.NewIncidentRepository(t),
		activities:    mocks.NewActivityRepository(t),
		attachments:   mocks.NewAttachmentRepository(t),
		blobs:         mocks.NewBlobStore(t),
		audit:         mocks.NewAuditLogService(t),
		notifications: mocks.NewNotificationService(t),
		suggester:     mocks.NewRootCauseSuggester(t),
		limiter:       mocks.NewSuggestionLimiter(t),
	}
	f.service = NewIncidentService(
		f.incidents, f.activities, f.attachments, f.blobs,
		newAuthorizer(t),
		statemachine.NewIncidentStateMachine(nil),
		f.audit, f.notifications, f.suggester, f.limiter,
	)
	return f
}

func activityTypes(activities []models.IncidentActivity) []dtos.ActivityType {
	return utils.Map(activities, func(a models.IncidentActivity) dtos.ActivityType {
		return a.ActivityType
	})
}

func TestIncidentServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("should deny viewers without touching storage", func(t *testing.T) {
		f := newIncidentFixture(t)

		_, err := f.service.Create(ctx, claimOf(shared.RoleViewer), dtos.IncidentCreateRequest{Title: "db down", Severity: dtos.SeverityHigh})
		assert.True(t, errors.Is(err, shared.ErrAuthorizationDenied))
	})

	t.Run("should reject an invalid severity", func(t *testing.T) {
		f := newIncidentFixture(t)

		_, err := f.service.Create(ctx, claimOf(shared.RoleEditor), dtos.IncidentCreateRequest{Title: "db down", Severity: "urgent"})
		assert.True(t, errors.Is(err, shared.ErrValidation))
	})

	t.Run("should persist the incident with its created activity, audit entry and notification", func(t *testing.T) {
		f := newIncidentFixture(t)
		claim := claimOf(shared.RoleEditor)
		assignee := uuid.New()
		intents := []models.NotificationIntent{{ID: uuid.New(), UserID: assignee}}

		runTransaction(&f.incidents.Mock)
		f.incidents.On("Create", mock.Anything, mock.Anything).Return(nil)
		f.activities.On("CreateBatch", mock.Anything, mock.MatchedBy(func(a []models.IncidentActivity) bool {
			return len(a) == 1 && a[0].ActivityType == dtos.ActivityTypeCreated
		})).Return(nil)
		f.audit.On("Record", mock.Anything, mock.Anything, mock.Anything, auditEntry(dtos.AuditActionCreate, "incident")).Return(nil)
		f.notifications.On("Dispatch", mock.Anything, mock.Anything, mock.MatchedBy(func(e shared.NotificationEvent) bool {
			return e.Type == dtos.NotificationEventIncidentCreated && e.Actor.ID == claim.ID
		})).Return(intents, nil)
		f.notifications.On("Publish", mock.Anything, intents).Return()

		incident, err := f.service.Create(ctx, claim, dtos.IncidentCreateRequest{
			Title:      "db down",
			Severity:   dtos.SeverityHigh,
			AssigneeID: &assignee,
		})
		require.NoError(t, err)
		assert.Equal(t, dtos.IncidentStatusOpen, incident.Status)
		assert.Equal(t, claim.ID, incident.CreatorID)
		assert.Nil(t, incident.ResolvedAt)
	})

	t.Run("should replace the tags when tag ids are given", func(t *testing.T) {
		f := newIncidentFixture(t)
		tagIDs := []uuid.UUID{uuid.New()}

		runTransaction(&f.incidents.Mock)
		f.incidents.On("Create", mock.Anything, mock.Anything).Return(nil)
		f.incidents.On("ReplaceTags", mock.Anything, mock.Anything, tagIDs).Return(nil)
		f.activities.On("CreateBatch", mock.Anything, mock.Anything).Return(nil)
		f.audit.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Return(nil)
		f.notifications.On("Dispatch", mock.Anything, mock.Anything, mock.Anything).Return(nil, nil)
		f.notifications.On("Publish", mock.Anything, mock.Anything).Return()

		_, err := f.service.Create(ctx, claimOf(shared.RoleAdmin), dtos.IncidentCreateRequest{Title: "db down", Severity: dtos.SeverityLow, TagIDs: tagIDs})
		require.NoError(t, err)
	})

	t.Run("should not publish anything if the transaction fails", func(t *testing.T) {
		f := newIncidentFixture(t)

		runTransaction(&f.incidents.Mock)
		f.incidents.On("Create", mock.Anything, mock.Anything).Return(shared.Transient(errors.New("conn reset"), "could not create incident"))

		_, err := f.service.Create(ctx, claimOf(shared.RoleEditor), dtos.IncidentCreateRequest{Title: "db down", Severity: dtos.SeverityHigh})
		assert.True(t, errors.Is(err, shared.ErrTransientStorage))
		f.notifications.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything)
	})
}

func TestIncidentServiceUpdate(t *testing.T) {
	ctx := context.Background()

	t.Run("should deny editors that did not create the incident", func(t *testing.T) {
		f := newIncidentFixture(t)
		incident := models.Incident{Model: models.Model{ID: uuid.New()}, Title: "db down", Status: dtos.IncidentStatusOpen, Severity: dtos.SeverityHigh, CreatorID: uuid.New()}
		status := dtos.IncidentStatusResolved

		runTransaction(&f.incidents.Mock)
		f.incidents.On("ReadForUpdate", mock.Anything, incident.ID).Return(incident, nil)

		_, err := f.service.Update(ctx, claimOf(shared.RoleEditor), incident.ID, dtos.IncidentUpdateRequest{Status: &status})
		assert.True(t, errors.Is(err, shared.ErrAuthorizationDenied))
		f.incidents.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("should reject an unknown status before reading the incident", func(t *testing.T) {
		f := newIncidentFixture(t)
		status := dtos.IncidentStatus("done")

		_, err := f.service.Update(ctx, claimOf(shared.RoleAdmin), uuid.New(), dtos.IncidentUpdateRequest{Status: &status})
		assert.True(t, errors.Is(err, shared.ErrValidation))
	})

	t.Run("should record status_change and resolved and notify about both", func(t *testing.T) {
		f := newIncidentFixture(t)
		claim := claimOf(shared.RoleEditor)
		incident := models.Incident{Model: models.Model{ID: uuid.New()}, Title: "db down", Status: dtos.IncidentStatusInvestigating, Severity: dtos.SeverityHigh, CreatorID: claim.ID}
		status := dtos.IncidentStatusResolved

		var written []models.IncidentActivity
		var dispatched []dtos.NotificationEventType

		runTransaction(&f.incidents.Mock)
		f.incidents.On("ReadForUpdate", mock.Anything, incident.ID).Return(incident, nil)
		f.incidents.On("Save", mock.Anything, mock.Anything).Return(nil)
		f.activities.On("CreateBatch", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			written = args.Get(1).([]models.IncidentActivity)
		}).Return(nil)
		f.audit.On("Record", mock.Anything, mock.Anything, mock.Anything, auditEntry(dtos.AuditActionUpdate, "incident")).Return(nil)
		f.notifications.On("Dispatch", mock.Anything, mock.Anything, mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
			for _, a := range args[2:] {
				dispatched = append(dispatched, a.(shared.NotificationEvent).Type)
			}
		}).Return(nil, nil)
		f.notifications.On("Publish", mock.Anything, mock.Anything).Return()

		updated, err := f.service.Update(ctx, claim, incident.ID, dtos.IncidentUpdateRequest{Status: &status})
		require.NoError(t, err)
		assert.Equal(t, dtos.IncidentStatusResolved, updated.Status)
		assert.NotNil(t, updated.ResolvedAt)
		assert.Equal(t, []dtos.ActivityType{dtos.ActivityTypeStatusChange, dtos.ActivityTypeResolved}, activityTypes(written))
		assert.Equal(t, []dtos.NotificationEventType{dtos.NotificationEventStatusChange, dtos.NotificationEventResolved}, dispatched)
	})

	t.Run("should not write activities for a title only change", func(t *testing.T) {
		f := newIncidentFixture(t)
		claim := claimOf(shared.RoleAdmin)
		incident := models.Incident{Model: models.Model{ID: uuid.New()}, Title: "db down", Status: dtos.IncidentStatusOpen, Severity: dtos.SeverityHigh, CreatorID: uuid.New()}
		title := "primary db down"

		runTransaction(&f.incidents.Mock)
		f.incidents.On("ReadForUpdate", mock.Anything, incident.ID).Return(incident, nil)
		f.incidents.On("Save", mock.Anything, mock.Anything).Return(nil)
		f.audit.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.MatchedBy(func(e shared.AuditEntry) bool {
			_, ok := e.Details["title"]
			return ok
		})).Return(nil)
		f.notifications.On("Dispatch", mock.Anything, mock.Anything).Return(nil, nil)
		f.notifications.On("Publish", mock.Anything, mock.Anything).Return()

		updated, err := f.service.Update(ctx, claim, incident.ID, dtos.IncidentUpdateRequest{Title: &title})
		require.NoError(t, err)
		assert.Equal(t, title, updated.Title)
		f.activities.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
	})
}

func TestTransitionEvents(t *testing.T) {
	actor := claimOf(shared.RoleEditor)

	t.Run("should emit an escalation when severity rises to critical", func(t *testing.T) {
		incident := models.Incident{Severity: dtos.SeverityCritical}
		events := transitionEvents(statemachine.Transition{Incident: incident, SeverityChanged: true, PreviousSeverity: dtos.SeverityHigh}, actor)

		types := utils.Map(events, func(e shared.NotificationEvent) dtos.NotificationEventType { return e.Type })
		assert.Equal(t, []dtos.NotificationEventType{dtos.NotificationEventSeverityChange, dtos.NotificationEventEscalation}, types)
	})

	t.Run("should not emit an escalation when severity drops", func(t *testing.T) {
		incident := models.Incident{Severity: dtos.SeverityLow}
		events := transitionEvents(statemachine.Transition{Incident: incident, SeverityChanged: true, PreviousSeverity: dtos.SeverityCritical}, actor)

		assert.Len(t, events, 1)
		assert.Equal(t, dtos.NotificationEventSeverityChange, events[0].Type)
	})

	t.Run("should not emit assigned when the assignee is removed", func(t *testing.T) {
		previous := uuid.New()
		events := transitionEvents(statemachine.Transition{Incident: models.Incident{}, AssigneeChanged: true, PreviousAssignee: &previous}, actor)
		assert.Empty(t, events)
	})

	t.Run("should emit assigned with the new assignee", func(t *testing.T) {
		assignee := uuid.New()
		events := transitionEvents(statemachine.Transition{Incident: models.Incident{AssigneeID: &assignee}, AssigneeChanged: true}, actor)
		require.Len(t, events, 1)
		assert.Equal(t, dtos.NotificationEventAssigned, events[0].Type)
		assert.Equal(t, assignee.String(), events[0].Payload["assignee_id"])
	})
}

func TestIncidentServiceDelete(t *testing.T) {
	ctx := context.Background()

	t.Run("should only let admins delete", func(t *testing.T) {
		f := newIncidentFixture(t)
		err := f.service.Delete(ctx, claimOf(shared.RoleEditor), uuid.New())
		assert.True(t, errors.Is(err, shared.ErrAuthorizationDenied))
	})

	t.Run("should delete the blobs after the rows are gone", func(t *testing.T) {
		f := newIncidentFixture(t)
		id := uuid.New()
		attachment := models.Attachment{Model: models.Model{ID: uuid.New()}, IncidentID: id, StorageKey: id.String() + "/a.png"}

		runTransaction(&f.incidents.Mock)
		f.incidents.On("ReadForUpdate", mock.Anything, id).Return(models.Incident{Model: models.Model{ID: id}, Title: "db down"}, nil)
		f.attachments.On("ListByIncidentID", id).Return([]models.Attachment{attachment}, nil)
		f.incidents.On("Delete", mock.Anything, id).Return(nil)
		f.audit.On("Record", mock.Anything, mock.Anything, mock.Anything, auditEntry(dtos.AuditActionDelete, "incident")).Return(nil)
		f.blobs.On("Delete", mock.Anything, attachment.StorageKey).Return(nil)

		require.NoError(t, f.service.Delete(ctx, claimOf(shared.RoleAdmin), id))
	})

	t.Run("should return not found for unknown incidents", func(t *testing.T) {
		f := newIncidentFixture(t)
		id := uuid.New()

		runTransaction(&f.incidents.Mock)
		f.incidents.On("ReadForUpdate", mock.Anything, id).Return(models.Incident{}, shared.NotFound("incident not found"))

		err := f.service.Delete(ctx, claimOf(shared.RoleAdmin), id)
		assert.True(t, errors.Is(err, shared.ErrNotFound))
	})
}

func TestIncidentServiceRegenerateSummary(t *testing.T) {
	ctx := context.Background()

	t.Run("should return rate limited without generating", func(t *testing.T) {
		f := newIncidentFixture(t)
		claim := claimOf(shared.RoleAdmin)
		incident := models.Incident{Model: models.Model{ID: uuid.New()}, Title: "db down", Status: dtos.IncidentStatusOpen, Severity: dtos.SeverityHigh}

		runTransaction(&f.incidents.Mock)
		f.incidents.On("ReadForUpdate", mock.Anything, incident.ID).Return(incident, nil)
		f.limiter.On("Allow", claim.ID).Return(false)

		_, err := f.service.RegenerateSummary(ctx, claim, incident.ID)
		assert.True(t, errors.Is(err, shared.ErrRateLimited))
	})

	t.Run("should overwrite the summary without activity or notification", func(t *testing.T) {
		f := newIncidentFixture(t)
		claim := claimOf(shared.RoleAdmin)
		incident := models.Incident{Model: models.Model{ID: uuid.New()}, Title: "db down", Status: dtos.IncidentStatusOpen, Severity: dtos.SeverityHigh}

		runTransaction(&f.incidents.Mock)
		f.incidents.On("ReadForUpdate", mock.Anything, incident.ID).Return(incident, nil)
		f.limiter.On("Allow", claim.ID).Return(true)
		f.activities.On("ListByIncidentID", mock.Anything, incident.ID).Return([]models.IncidentActivity{}, nil)
		f.suggester.On("Summarize", mock.Anything, incident, []models.IncidentActivity{}).Return("HIGH incident", nil)
		f.incidents.On("Save", mock.Anything, mock.Anything).Return(nil)
		f.audit.On("Record", mock.Anything, mock.Anything, mock.Anything, auditEntry(dtos.AuditActionUpdate, "incident")).Return(nil)

		updated, err := f.service.RegenerateSummary(ctx, claim, incident.ID)
		require.NoError(t, err)
		assert.Equal(t, "HIGH incident", updated.Summary)
		f.activities.AssertNotCalled(t, "CreateBatch", mock.Anything, mock.Anything)
	})
}
