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

type postMortemFixture struct {
	postMortems *mocks.PostMortemRepository
	incidents   *mocks.IncidentRepository
	activities  *mocks.ActivityRepository
	audit       *mocks.AuditLogService
	suggester   *mocks.RootCauseSuggester
	limiter     *mocks.SuggestionLimiter
	service     *PostMortemService
}

func newPostMortemFixture(t *testing.T) postMortemFixture {
	f := postMortemFixture{
		postMortems: mocks.NewPostMortemRepository(t),
		incidents:   mocks.NewIncidentRepository(t),
		activities:  mocks.NewActivityRepository(t),
		audit:       mocks.NewAuditLogService(t),
		suggester:   mocks.NewRootCauseSuggester(t),
		limiter:     mocks.NewSuggestionLimiter(t),
	}
	f.service = NewPostMortemService(f.postMortems, f.incidents, f.activities, newAuthorizer(t), f.audit, f.suggester, f.limiter)
	return f
}

func TestPostMortemServiceCreate(t *testing.T) {
	ctx := context.Background()
	incidentID := uuid.New()

	t.Run("should deny viewers", func(t *testing.T) {
		f := newPostMortemFixture(t)
		_, err := f.service.Create(ctx, claimOf(shared.RoleViewer), dtos.PostMortemCreateRequest{IncidentID: incidentID})
		assert.True(t, errors.Is(err, shared.ErrAuthorizationDenied))
	})

	t.Run("should return not found for an unknown incident", func(t *testing.T) {
		f := newPostMortemFixture(t)
		runTransaction(&f.postMortems.Mock)
		f.incidents.On("Read", mock.Anything, incidentID).Return(models.Incident{}, shared.NotFound("incident not found"))

		_, err := f.service.Create(ctx, claimOf(shared.RoleEditor), dtos.PostMortemCreateRequest{IncidentID: incidentID})
		assert.True(t, errors.Is(err, shared.ErrNotFound))
	})

	t.Run("should conflict if the incident already has a post-mortem", func(t *testing.T) {
		f := newPostMortemFixture(t)
		runTransaction(&f.postMortems.Mock)
		f.incidents.On("Read", mock.Anything, incidentID).Return(models.Incident{Model: models.Model{ID: incidentID}}, nil)
		f.postMortems.On("ReadByIncidentID", mock.Anything, incidentID).Return(models.PostMortem{IncidentID: incidentID}, nil)

		_, err := f.service.Create(ctx, claimOf(shared.RoleEditor), dtos.PostMortemCreateRequest{IncidentID: incidentID})
		assert.True(t, errors.Is(err, shared.ErrConflict))
	})

	t.Run("should create a draft authored by the caller", func(t *testing.T) {
		f := newPostMortemFixture(t)
		claim := claimOf(shared.RoleEditor)
		runTransaction(&f.postMortems.Mock)
		f.incidents.On("Read", mock.Anything, incidentID).Return(models.Incident{Model: models.Model{ID: incidentID}}, nil)
		f.postMortems.On("ReadByIncidentID", mock.Anything, incidentID).Return(models.PostMortem{}, shared.NotFound("post-mortem not found"))
		f.postMortems.On("Create", mock.Anything, mock.Anything).Return(nil)
		f.audit.On("Record", mock.Anything, mock.Anything, mock.Anything, auditEntry(dtos.AuditActionCreate, "post_mortem")).Return(nil)

		postMortem, err := f.service.Create(ctx, claim, dtos.PostMortemCreateRequest{
			IncidentID: incidentID,
			FiveWhys:   &dtos.FiveWhys{Why1: "disk full"},
		})
		require.NoError(t, err)
		assert.Equal(t, dtos.PostMortemStatusDraft, postMortem.Status)
		assert.Equal(t, claim.ID, postMortem.AuthorID)
		assert.Equal(t, "disk full", postMortem.FiveWhys.ToDTO().Why1)
	})
}

func TestPostMortemServiceUpdateAndPublish(t *testing.T) {
	ctx := context.Background()
	author := claimOf(shared.RoleEditor)

	t.Run("should conflict when updating a published post-mortem", func(t *testing.T) {
		f := newPostMortemFixture(t)
		pm := models.PostMortem{Model: models.Model{ID: uuid.New()}, AuthorID: author.ID, Status: dtos.PostMortemStatusPublished}
		runTransaction(&f.postMortems.Mock)
		f.postMortems.On("ReadForUpdate", mock.Anything, pm.ID).Return(pm, nil)

		_, err := f.service.Update(ctx, author, pm.ID, dtos.PostMortemUpdateRequest{RootCause: "x"})
		assert.True(t, errors.Is(err, shared.ErrConflict))
		f.postMortems.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("should deny editors that are not the author", func(t *testing.T) {
		f := newPostMortemFixture(t)
		pm := models.PostMortem{Model: models.Model{ID: uuid.New()}, AuthorID: uuid.New(), Status: dtos.PostMortemStatusDraft}
		runTransaction(&f.postMortems.Mock)
		f.postMortems.On("ReadForUpdate", mock.Anything, pm.ID).Return(pm, nil)

		_, err := f.service.Update(ctx, author, pm.ID, dtos.PostMortemUpdateRequest{RootCause: "x"})
		assert.True(t, errors.Is(err, shared.ErrAuthorizationDenied))
	})

	t.Run("should clear the five whys when none are sent", func(t *testing.T) {
		f := newPostMortemFixture(t)
		why := "disk full"
		pm := models.PostMortem{Model: models.Model{ID: uuid.New()}, AuthorID: author.ID, Status: dtos.PostMortemStatusDraft, FiveWhys: models.FiveWhys{Why1: &why}}
		runTransaction(&f.postMortems.Mock)
		f.postMortems.On("ReadForUpdate", mock.Anything, pm.ID).Return(pm, nil)
		f.postMortems.On("Save", mock.Anything, mock.Anything).Return(nil)
		f.audit.On("Record", mock.Anything, mock.Anything, mock.Anything, auditEntry(dtos.AuditActionUpdate, "post_mortem")).Return(nil)

		updated, err := f.service.Update(ctx, author, pm.ID, dtos.PostMortemUpdateRequest{RootCause: "cron job filled the disk"})
		require.NoError(t, err)
		assert.True(t, updated.FiveWhys.IsEmpty())
		assert.Equal(t, "cron job filled the disk", updated.RootCause)
	})

	t.Run("should publish a draft once", func(t *testing.T) {
		f := newPostMortemFixture(t)
		publishedAt := time.Date(2025, 4, 1, 9, 0, 0, 0, time.UTC)
		f.service.now = func() time.Time { return publishedAt }
		pm := models.PostMortem{Model: models.Model{ID: uuid.New()}, AuthorID: author.ID, Status: dtos.PostMortemStatusDraft}
		runTransaction(&f.postMortems.Mock)
		f.postMortems.On("ReadForUpdate", mock.Anything, pm.ID).Return(pm, nil).Once()
		f.postMortems.On("Save", mock.Anything, mock.Anything).Return(nil)
		f.audit.On("Record", mock.Anything, mock.Anything, mock.Anything, auditEntry(dtos.AuditActionUpdate, "post_mortem")).Return(nil)

		published, err := f.service.Publish(ctx, author, pm.ID)
		require.NoError(t, err)
		assert.Equal(t, dtos.PostMortemStatusPublished, published.Status)
		require.NotNil(t, published.PublishedAt)
		assert.Equal(t, publishedAt, *published.PublishedAt)

		f.service.now = func() time.Time { return publishedAt.Add(time.Hour) }
		f.postMortems.On("ReadForUpdate", mock.Anything, pm.ID).Return(published, nil).Once()

		_, err = f.service.Publish(ctx, author, pm.ID)
		assert.True(t, errors.Is(err, shared.ErrConflict))
		assert.Equal(t, publishedAt, *published.PublishedAt)
		f.postMortems.AssertNumberOfCalls(t, "Save", 1)
		f.audit.AssertNumberOfCalls(t, "Record", 1)
	})
}

func TestPostMortemServiceGenerateAISuggestion(t *testing.T) {
	ctx := context.Background()
	author := claimOf(shared.RoleEditor)

	t.Run("should return rate limited when the limiter denies", func(t *testing.T) {
		f := newPostMortemFixture(t)
		pm := models.PostMortem{Model: models.Model{ID: uuid.New()}, AuthorID: author.ID, Status: dtos.PostMortemStatusDraft}
		runTransaction(&f.postMortems.Mock)
		f.postMortems.On("ReadForUpdate", mock.Anything, pm.ID).Return(pm, nil)
		f.limiter.On("Allow", author.ID).Return(false)

		_, err := f.service.GenerateAISuggestion(ctx, author, pm.ID)
		assert.True(t, errors.Is(err, shared.ErrRateLimited))
	})

	t.Run("should set both the suggestion and the root cause", func(t *testing.T) {
		f := newPostMortemFixture(t)
		incident := models.Incident{Model: models.Model{ID: uuid.New()}, Title: "db down"}
		pm := models.PostMortem{Model: models.Model{ID: uuid.New()}, IncidentID: incident.ID, AuthorID: author.ID, Status: dtos.PostMortemStatusDraft, RootCause: "unknown"}
		runTransaction(&f.postMortems.Mock)
		f.postMortems.On("ReadForUpdate", mock.Anything, pm.ID).Return(pm, nil)
		f.limiter.On("Allow", author.ID).Return(true)
		f.incidents.On("Read", mock.Anything, incident.ID).Return(incident, nil)
		f.activities.On("ListByIncidentID", mock.Anything, incident.ID).Return([]models.IncidentActivity{}, nil)
		f.suggester.On("SuggestRootCause", mock.Anything, incident, []models.IncidentActivity{}).Return("disk full", nil)
		f.postMortems.On("Save", mock.Anything, mock.Anything).Return(nil)
		f.audit.On("Record", mock.Anything, mock.Anything, mock.Anything, auditEntry(dtos.AuditActionUpdate, "post_mortem")).Return(nil)

		updated, err := f.service.GenerateAISuggestion(ctx, author, pm.ID)
		require.NoError(t, err)
		assert.Equal(t, "disk full", updated.AIRootCauseSuggestion)
		assert.Equal(t, "disk full", updated.RootCause)
	})

	t.Run("should not overwrite a published post-mortem", func(t *testing.T) {
		f := newPostMortemFixture(t)
		pm := models.PostMortem{Model: models.Model{ID: uuid.New()}, AuthorID: author.ID, Status: dtos.PostMortemStatusPublished}
		runTransaction(&f.postMortems.Mock)
		f.postMortems.On("ReadForUpdate", mock.Anything, pm.ID).Return(pm, nil)

		_, err := f.service.GenerateAISuggestion(ctx, author, pm.ID)
		assert.True(t, errors.Is(err, shared.ErrConflict))
	})
}

func TestPostMortemServiceDelete(t *testing.T) {
	t.Run("should only let admins delete", func(t *testing.T) {
		f := newPostMortemFixture(t)
		err := f.service.Delete(context.Background(), claimOf(shared.RoleEditor), uuid.New())
		assert.True(t, errors.Is(err, shared.ErrAuthorizationDenied))
	})
}
