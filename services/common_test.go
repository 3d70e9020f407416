package services

import (
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/incidentguard/accesscontrol"
	"github.com/l3montree-dev/incidentguard/dtos"
	"github.com/l3montree-dev/incidentguard/shared"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newAuthorizer(t *testing.T) shared.Authorizer {
	a, err := accesscontrol.NewCasbinAuthorizer()
	require.NoError(t, err)
	return a
}

func claimOf(role shared.Role) shared.Claim {
	return shared.Claim{ID: uuid.New(), Name: string(role), Email: string(role) + "@example.com", Role: role}
}

// runTransaction makes the mocked Transaction execute the callback with a
// nil transaction.
func runTransaction(m *mock.Mock) {
	m.On("Transaction", mock.Anything).Return(func(f func(tx shared.DB) error) error {
		return f(nil)
	})
}

func auditEntry(action dtos.AuditAction, resourceType string) interface{} {
	return mock.MatchedBy(func(e shared.AuditEntry) bool {
		return e.Action == action && e.ResourceType == resourceType
	})
}

func TestRequirePermission(t *testing.T) {
	authorizer := newAuthorizer(t)

	t.Run("should allow a role holding the permission", func(t *testing.T) {
		assert.NoError(t, requirePermission(authorizer, claimOf(shared.RoleViewer), shared.PermissionViewIncidents))
	})

	t.Run("should deny a role missing the permission", func(t *testing.T) {
		err := requirePermission(authorizer, claimOf(shared.RoleViewer), shared.PermissionCreateIncidents)
		assert.True(t, errors.Is(err, shared.ErrAuthorizationDenied))
	})

	t.Run("should deny an empty role", func(t *testing.T) {
		err := requirePermission(authorizer, shared.Claim{ID: uuid.New()}, shared.PermissionViewIncidents)
		assert.True(t, errors.Is(err, shared.ErrAuthorizationDenied))
	})
}

func TestRequireText(t *testing.T) {
	t.Run("should reject whitespace only text", func(t *testing.T) {
		err := requireText("title", "  \n\t")
		assert.True(t, errors.Is(err, shared.ErrValidation))
	})

	t.Run("should accept text", func(t *testing.T) {
		assert.NoError(t, requireText("title", "db down"))
	})
}
