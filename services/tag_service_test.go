package services

import (
	"context"
	"testing"

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

func TestTagSlug(t *testing.T) {
	assert.Equal(t, "payment-api", tagSlug("Payment API"))
	assert.Equal(t, "tag", tagSlug("!!!"))
}

func TestTagService(t *testing.T) {
	ctx := context.Background()

	t.Run("should deny viewers to create tags", func(t *testing.T) {
		service := NewTagService(mocks.NewTagRepository(t), newAuthorizer(t), mocks.NewAuditLogService(t))

		_, err := service.Create(ctx, claimOf(shared.RoleViewer), dtos.TagCreateRequest{Name: "database"})
		assert.True(t, errors.Is(err, shared.ErrAuthorizationDenied))
	})

	t.Run("should default the color and derive the slug", func(t *testing.T) {
		repo := mocks.NewTagRepository(t)
		audit := mocks.NewAuditLogService(t)
		service := NewTagService(repo, newAuthorizer(t), audit)

		runTransaction(&repo.Mock)
		repo.On("ResolveSlug", mock.Anything, mock.Anything).Return(nil)
		repo.On("Create", mock.Anything, mock.Anything).Return(nil)
		audit.On("Record", mock.Anything, mock.Anything, mock.Anything, auditEntry(dtos.AuditActionCreate, "tag")).Return(nil)

		tag, err := service.Create(ctx, claimOf(shared.RoleAdmin), dtos.TagCreateRequest{Name: "  Payment API "})
		require.NoError(t, err)
		assert.Equal(t, "Payment API", tag.Name)
		assert.Equal(t, "payment-api", tag.Slug)
		assert.Equal(t, defaultTagColor, tag.Color)
	})

	t.Run("should reject an invalid color", func(t *testing.T) {
		service := NewTagService(mocks.NewTagRepository(t), newAuthorizer(t), mocks.NewAuditLogService(t))

		_, err := service.Create(ctx, claimOf(shared.RoleAdmin), dtos.TagCreateRequest{Name: "database", Color: "red"})
		assert.True(t, errors.Is(err, shared.ErrValidation))
	})

	t.Run("should keep the color on rename if none is sent", func(t *testing.T) {
		repo := mocks.NewTagRepository(t)
		audit := mocks.NewAuditLogService(t)
		service := NewTagService(repo, newAuthorizer(t), audit)
		existing := models.Tag{Model: models.Model{ID: uuid.New()}, Name: "db", Slug: "db", Color: "#ff0000"}

		repo.On("Read", existing.ID).Return(existing, nil)
		runTransaction(&repo.Mock)
		repo.On("ResolveSlug", mock.Anything, mock.Anything).Return(nil)
		repo.On("Save", mock.Anything, mock.Anything).Return(nil)
		audit.On("Record", mock.Anything, mock.Anything, mock.Anything, mock.MatchedBy(func(e shared.AuditEntry) bool {
			_, renamed := e.Details["name"]
			return renamed
		})).Return(nil)

		tag, err := service.Update(ctx, claimOf(shared.RoleAdmin), existing.ID, dtos.TagUpdateRequest{Name: "Database"})
		require.NoError(t, err)
		assert.Equal(t, "#ff0000", tag.Color)
		assert.Equal(t, "database", tag.Slug)
	})
}
