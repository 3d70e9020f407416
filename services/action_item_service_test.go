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

func TestActionItemService(t *testing.T) {
	ctx := context.Background()
	editor := claimOf(shared.RoleEditor)
	draft := models.PostMortem{Model: models.Model{ID: uuid.New()}, Status: dtos.PostMortemStatusDraft}
	published := models.PostMortem{Model: models.Model{ID: uuid.New()}, Status: dtos.PostMortemStatusPublished}

	newService := func(t *testing.T) (*ActionItemService, *mocks.ActionItemRepository, *mocks.PostMortemRepository, *mocks.AuditLogService) {
		items := mocks.NewActionItemRepository(t)
		postMortems := mocks.NewPostMortemRepository(t)
		audit := mocks.NewAuditLogService(t)
		return NewActionItemService(items, postMortems, newAuthorizer(t), audit), items, postMortems, audit
	}

	t.Run("should create a pending item on a draft", func(t *testing.T) {
		service, items, postMortems, audit := newService(t)
		runTransaction(&postMortems.Mock)
		postMortems.On("ReadForUpdate", mock.Anything, draft.ID).Return(draft, nil)
		items.On("Create", mock.Anything, mock.Anything).Return(nil)
		audit.On("Record", mock.Anything, mock.Anything, mock.Anything, auditEntry(dtos.AuditActionCreate, "action_item")).Return(nil)

		item, err := service.Create(ctx, editor, draft.ID, dtos.ActionItemCreateRequest{Title: "add disk alert", Priority: dtos.ActionItemPriorityHigh})
		require.NoError(t, err)
		assert.Equal(t, dtos.ActionItemStatusPending, item.Status)
		assert.Nil(t, item.CompletedAt)
	})

	t.Run("should conflict on a published post-mortem", func(t *testing.T) {
		service, _, postMortems, _ := newService(t)
		runTransaction(&postMortems.Mock)
		postMortems.On("ReadForUpdate", mock.Anything, published.ID).Return(published, nil)

		_, err := service.Create(ctx, editor, published.ID, dtos.ActionItemCreateRequest{Title: "add disk alert", Priority: dtos.ActionItemPriorityHigh})
		assert.True(t, errors.Is(err, shared.ErrConflict))
	})

	t.Run("should not create an item when the post-mortem does not exist", func(t *testing.T) {
		service, items, postMortems, audit := newService(t)
		missing := uuid.New()
		runTransaction(&postMortems.Mock)
		postMortems.On("ReadForUpdate", mock.Anything, missing).Return(models.PostMortem{}, shared.NotFound("post-mortem not found"))

		_, err := service.Create(ctx, editor, missing, dtos.ActionItemCreateRequest{Title: "add disk alert", Priority: dtos.ActionItemPriorityHigh})
		assert.True(t, errors.Is(err, shared.ErrNotFound))
		items.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
		audit.AssertNotCalled(t, "Record", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("should reject an unknown priority", func(t *testing.T) {
		service, _, _, _ := newService(t)
		_, err := service.Create(ctx, editor, draft.ID, dtos.ActionItemCreateRequest{Title: "add disk alert", Priority: "urgent"})
		assert.True(t, errors.Is(err, shared.ErrValidation))
	})

	t.Run("should stamp completed_at when completing and clear it when reopening", func(t *testing.T) {
		service, items, postMortems, audit := newService(t)
		item := models.ActionItem{Model: models.Model{ID: uuid.New()}, PostMortemID: draft.ID, Title: "add disk alert", Priority: dtos.ActionItemPriorityHigh, Status: dtos.ActionItemStatusInProgress}
		now := time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC)
		service.now = func() time.Time { return now }

		runTransaction(&postMortems.Mock)
		items.On("Read", mock.Anything, item.ID).Return(item, nil).Once()
		postMortems.On("ReadForUpdate", mock.Anything, draft.ID).Return(draft, nil)
		items.On("Save", mock.Anything, mock.Anything).Return(nil)
		audit.On("Record", mock.Anything, mock.Anything, mock.Anything, auditEntry(dtos.AuditActionUpdate, "action_item")).Return(nil)

		req := dtos.ActionItemUpdateRequest{Title: item.Title, Priority: item.Priority, Status: dtos.ActionItemStatusCompleted}
		completed, err := service.Update(ctx, editor, item.ID, req)
		require.NoError(t, err)
		require.NotNil(t, completed.CompletedAt)
		assert.Equal(t, now, *completed.CompletedAt)

		items.On("Read", mock.Anything, item.ID).Return(completed, nil).Once()
		req.Status = dtos.ActionItemStatusPending
		reopened, err := service.Update(ctx, editor, item.ID, req)
		require.NoError(t, err)
		assert.Nil(t, reopened.CompletedAt)
	})

	t.Run("should deny viewers to delete", func(t *testing.T) {
		service, _, _, _ := newService(t)
		err := service.Delete(ctx, claimOf(shared.RoleViewer), uuid.New())
		assert.True(t, errors.Is(err, shared.ErrAuthorizationDenied))
	})
}
