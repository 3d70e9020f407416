package accesscontrol

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/incidentguard/database/models"
	"github.com/l3montree-dev/incidentguard/shared"
)

func isIdentified(claim shared.Claim) bool {
	return claim.ID != uuid.Nil && claim.Role.IsValid()
}

func (a *casbinAuthorizer) CanEditIncident(claim shared.Claim, incident models.Incident) bool {
	if !isIdentified(claim) {
		return false
	}
	switch claim.Role {
	case shared.RoleAdmin:
		return true
	case shared.RoleEditor:
		return incident.CreatorID == claim.ID
	}
	return false
}

func (a *casbinAuthorizer) CanDeleteIncident(claim shared.Claim) bool {
	return isIdentified(claim) && claim.Role == shared.RoleAdmin
}

func (a *casbinAuthorizer) CanDeleteAttachment(claim shared.Claim, attachment models.Attachment) bool {
	if !isIdentified(claim) {
		return false
	}
	return claim.Role == shared.RoleAdmin || attachment.UploaderID == claim.ID
}

// CanEditPostMortem lets editors change only the post-mortems they authored.
func (a *casbinAuthorizer) CanEditPostMortem(claim shared.Claim, postMortem models.PostMortem) bool {
	if !isIdentified(claim) {
		return false
	}
	switch claim.Role {
	case shared.RoleAdmin:
		return true
	case shared.RoleEditor:
		return postMortem.AuthorID == claim.ID
	}
	return false
}

func (a *casbinAuthorizer) CanViewAuditLog(claim shared.Claim) bool {
	return isIdentified(claim) && claim.Role == shared.RoleAdmin
}

func (a *casbinAuthorizer) CanDeletePostMortem(claim shared.Claim) bool {
	return isIdentified(claim) && claim.Role == shared.RoleAdmin
}

// CanManageTemplate requires manage_templates and either ownership or the
// admin role.
func (a *casbinAuthorizer) CanManageTemplate(claim shared.Claim, template models.IncidentTemplate) bool {
	if !isIdentified(claim) || !a.HasPermission(claim.Role, shared.PermissionManageTemplates) {
		return false
	}
	return claim.Role == shared.RoleAdmin || template.CreatorID == claim.ID
}
