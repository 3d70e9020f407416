package accesscontrol

import (
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/incidentguard/database/models"
	"github.com/l3montree-dev/incidentguard/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var expectedMatrix = map[shared.Permission][3]bool{
	// admin, editor, viewer
	shared.PermissionViewIncidents:     {true, true, true},
	shared.PermissionCreateIncidents:   {true, true, false},
	shared.PermissionEditIncidents:     {true, true, false},
	shared.PermissionDeleteIncidents:   {true, true, false},
	shared.PermissionViewTags:          {true, true, true},
	shared.PermissionManageTags:        {true, true, false},
	shared.PermissionViewTemplates:     {true, true, true},
	shared.PermissionManageTemplates:   {true, true, false},
	shared.PermissionViewPostMortems:   {true, true, true},
	shared.PermissionManagePostMortems: {true, true, false},
	shared.PermissionViewUsers:         {true, false, false},
	shared.PermissionManageUsers:       {true, false, false},
	shared.PermissionViewStats:         {true, true, true},
	shared.PermissionExportData:        {true, true, false},
}

func newAuthorizer(t *testing.T) *casbinAuthorizer {
	a, err := NewCasbinAuthorizer()
	require.NoError(t, err)
	return a
}

func TestHasPermission(t *testing.T) {
	a := newAuthorizer(t)
	roles := []shared.Role{shared.RoleAdmin, shared.RoleEditor, shared.RoleViewer}

	t.Run("should match the static matrix for every role and permission", func(t *testing.T) {
		assert.Len(t, expectedMatrix, len(shared.AllPermissions))
		for permission, row := range expectedMatrix {
			for i, role := range roles {
				assert.Equal(t, row[i], a.HasPermission(role, permission), "role %s permission %s", role, permission)
			}
		}
	})

	t.Run("should agree with the enforcer", func(t *testing.T) {
		for _, permission := range shared.AllPermissions {
			for _, role := range roles {
				allowed, err := a.Enforce(role, permission)
				assert.NoError(t, err)
				assert.Equal(t, allowed, a.HasPermission(role, permission))
			}
		}
	})

	t.Run("should deny every permission for an unknown role", func(t *testing.T) {
		for _, permission := range shared.AllPermissions {
			assert.False(t, a.HasPermission("superuser", permission))
			assert.False(t, a.HasPermission("", permission))
		}
	})

	t.Run("should deny an unknown permission", func(t *testing.T) {
		assert.False(t, a.HasPermission(shared.RoleAdmin, "launch_rockets"))
	})
}

func TestHasAnyAndHasAll(t *testing.T) {
	a := newAuthorizer(t)

	t.Run("should be true if one permission matches", func(t *testing.T) {
		assert.True(t, a.HasAny(shared.RoleViewer, shared.PermissionManageUsers, shared.PermissionViewIncidents))
	})

	t.Run("should be false for an empty list", func(t *testing.T) {
		assert.False(t, a.HasAny(shared.RoleAdmin))
	})

	t.Run("should require every permission", func(t *testing.T) {
		assert.True(t, a.HasAll(shared.RoleEditor, shared.PermissionViewIncidents, shared.PermissionEditIncidents))
		assert.False(t, a.HasAll(shared.RoleEditor, shared.PermissionEditIncidents, shared.PermissionManageUsers))
	})

	t.Run("should be true for an empty list only for known roles", func(t *testing.T) {
		assert.True(t, a.HasAll(shared.RoleViewer))
		assert.False(t, a.HasAll("unknown"))
	})
}

func TestPermissionsOf(t *testing.T) {
	a := newAuthorizer(t)

	t.Run("should list the inherited permissions of the admin", func(t *testing.T) {
		assert.ElementsMatch(t, shared.AllPermissions, a.PermissionsOf(shared.RoleAdmin))
	})

	t.Run("should return an empty list for an unknown role", func(t *testing.T) {
		assert.Empty(t, a.PermissionsOf("unknown"))
	})
}

func TestCanEditIncident(t *testing.T) {
	a := newAuthorizer(t)
	creator := uuid.New()
	other := uuid.New()
	incident := models.Incident{CreatorID: creator}

	t.Run("should allow an admin regardless of creator", func(t *testing.T) {
		assert.True(t, a.CanEditIncident(shared.Claim{ID: other, Role: shared.RoleAdmin}, incident))
	})

	t.Run("should allow the editor who created the incident", func(t *testing.T) {
		assert.True(t, a.CanEditIncident(shared.Claim{ID: creator, Role: shared.RoleEditor}, incident))
	})

	t.Run("should deny an editor who did not create the incident", func(t *testing.T) {
		assert.False(t, a.CanEditIncident(shared.Claim{ID: other, Role: shared.RoleEditor}, incident))
	})

	t.Run("should deny a viewer even if they created the incident", func(t *testing.T) {
		assert.False(t, a.CanEditIncident(shared.Claim{ID: creator, Role: shared.RoleViewer}, incident))
	})

	t.Run("should deny an anonymous claim", func(t *testing.T) {
		assert.False(t, a.CanEditIncident(shared.Claim{Role: shared.RoleAdmin}, incident))
	})
}

func TestObjectLevelChecks(t *testing.T) {
	a := newAuthorizer(t)
	uploader := uuid.New()
	attachment := models.Attachment{UploaderID: uploader}

	t.Run("should only let admins delete incidents", func(t *testing.T) {
		assert.True(t, a.CanDeleteIncident(shared.Claim{ID: uuid.New(), Role: shared.RoleAdmin}))
		assert.False(t, a.CanDeleteIncident(shared.Claim{ID: uuid.New(), Role: shared.RoleEditor}))
		assert.False(t, a.CanDeleteIncident(shared.Claim{ID: uuid.New(), Role: shared.RoleViewer}))
	})

	t.Run("should let the uploader or an admin delete an attachment", func(t *testing.T) {
		assert.True(t, a.CanDeleteAttachment(shared.Claim{ID: uploader, Role: shared.RoleEditor}, attachment))
		assert.True(t, a.CanDeleteAttachment(shared.Claim{ID: uuid.New(), Role: shared.RoleAdmin}, attachment))
		assert.False(t, a.CanDeleteAttachment(shared.Claim{ID: uuid.New(), Role: shared.RoleEditor}, attachment))
	})

	t.Run("should only let admins read the audit log", func(t *testing.T) {
		assert.True(t, a.CanViewAuditLog(shared.Claim{ID: uuid.New(), Role: shared.RoleAdmin}))
		assert.False(t, a.CanViewAuditLog(shared.Claim{ID: uuid.New(), Role: shared.RoleEditor}))
		assert.False(t, a.CanViewAuditLog(shared.Claim{ID: uuid.New(), Role: shared.RoleViewer}))
	})

	t.Run("should let editors edit only their own post-mortems", func(t *testing.T) {
		author := uuid.New()
		pm := models.PostMortem{AuthorID: author}
		assert.True(t, a.CanEditPostMortem(shared.Claim{ID: author, Role: shared.RoleEditor}, pm))
		assert.False(t, a.CanEditPostMortem(shared.Claim{ID: uuid.New(), Role: shared.RoleEditor}, pm))
		assert.True(t, a.CanEditPostMortem(shared.Claim{ID: uuid.New(), Role: shared.RoleAdmin}, pm))
	})

	t.Run("should only let admins delete post-mortems", func(t *testing.T) {
		assert.True(t, a.CanDeletePostMortem(shared.Claim{ID: uuid.New(), Role: shared.RoleAdmin}))
		assert.False(t, a.CanDeletePostMortem(shared.Claim{ID: uuid.New(), Role: shared.RoleEditor}))
	})

	t.Run("should let the template owner or an admin manage a template", func(t *testing.T) {
		owner := uuid.New()
		tpl := models.IncidentTemplate{CreatorID: owner}
		assert.True(t, a.CanManageTemplate(shared.Claim{ID: owner, Role: shared.RoleEditor}, tpl))
		assert.True(t, a.CanManageTemplate(shared.Claim{ID: uuid.New(), Role: shared.RoleAdmin}, tpl))
		assert.False(t, a.CanManageTemplate(shared.Claim{ID: uuid.New(), Role: shared.RoleEditor}, tpl))
		assert.False(t, a.CanManageTemplate(shared.Claim{ID: owner, Role: shared.RoleViewer}, tpl))
	})
}
