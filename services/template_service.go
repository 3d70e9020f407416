package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/l3montree-dev/incidentguard/database/models"
	"github.com/l3montree-dev/incidentguard/dtos"
	"github.com/l3montree-dev/incidentguard/shared"
)

type TemplateService struct {
	templateRepository shared.TemplateRepository
	authorizer         shared.Authorizer
	auditLogService    shared.AuditLogService
}

var _ shared.TemplateService = (*TemplateService)(nil)

func NewTemplateService(templateRepository shared.TemplateRepository, authorizer shared.Authorizer, auditLogService shared.AuditLogService) *TemplateService {
	return &TemplateService{
		templateRepository: templateRepository,
		authorizer:         authorizer,
		auditLogService:    auditLogService,
	}
}

// isVisible hides private templates of other users. Admins see everything.
func isVisible(claim shared.Claim, template models.IncidentTemplate) bool {
	return template.IsPublic || template.CreatorID == claim.ID || claim.Role == shared.RoleAdmin
}

func (s *TemplateService) List(ctx context.Context, claim shared.Claim, pageInfo shared.PageInfo) (shared.Paged[models.IncidentTemplate], error) {
	if err := requirePermission(s.authorizer, claim, shared.PermissionViewTemplates); err != nil {
		return shared.Paged[models.IncidentTemplate]{}, err
	}
	return s.templateRepository.ListVisible(claim.ID, pageInfo)
}

func (s *TemplateService) readVisible(tx shared.DB, claim shared.Claim, id uuid.UUID) (models.IncidentTemplate, error) {
	template, err := s.templateRepository.Read(tx, id)
	if err != nil {
		return models.IncidentTemplate{}, err
	}
	if !isVisible(claim, template) {
		return models.IncidentTemplate{}, shared.NotFound("template not found")
	}
	return template, nil
}

func (s *TemplateService) Read(ctx context.Context, claim shared.Claim, id uuid.UUID) (models.IncidentTemplate, error) {
	if err := requirePermission(s.authorizer, claim, shared.PermissionViewTemplates); err != nil {
		return models.IncidentTemplate{}, err
	}
	return s.readVisible(nil, claim, id)
}

func applyTemplateRequest(template *models.IncidentTemplate, req dtos.TemplateCreateRequest) {
	template.Name = strings.TrimSpace(req.Name)
	template.Description = req.Description
	template.Title = req.Title
	template.Content = req.Content
	template.Severity = req.Severity
	template.ImpactScope = req.ImpactScope
	template.IsPublic = req.IsPublic
}

func (s *TemplateService) Create(ctx context.Context, claim shared.Claim, req dtos.TemplateCreateRequest) (models.IncidentTemplate, error) {
	if err := requirePermission(s.authorizer, claim, shared.PermissionManageTemplates); err != nil {
		return models.IncidentTemplate{}, err
	}
	if err := validate(req); err != nil {
		return models.IncidentTemplate{}, err
	}
	if err := requireText("name", req.Name); err != nil {
		return models.IncidentTemplate{}, err
	}

	template := models.IncidentTemplate{
		Model:     models.Model{ID: uuid.New()},
		CreatorID: claim.ID,
	}
	applyTemplateRequest(&template, req)

	err := s.templateRepository.Transaction(func(tx shared.DB) error {
		if err := s.templateRepository.Create(tx, &template); err != nil {
			return err
		}
		if len(req.TagIDs) > 0 {
			if err := s.templateRepository.ReplaceTags(tx, &template, req.TagIDs); err != nil {
				return err
			}
		}
		return s.auditLogService.Record(ctx, tx, &claim, shared.AuditEntry{
			Action:       dtos.AuditActionCreate,
			ResourceType: "template",
			ResourceID:   &template.ID,
			Details:      map[string]any{"name": template.Name, "is_public": template.IsPublic},
		})
	})
	if err != nil {
		return models.IncidentTemplate{}, err
	}
	return template, nil
}

// readManageable returns NotFound for templates the claim cannot see and
// Denied for visible templates it does not own.
func (s *TemplateService) readManageable(tx shared.DB, claim shared.Claim, id uuid.UUID) (models.IncidentTemplate, error) {
	template, err := s.readVisible(tx, claim, id)
	if err != nil {
		return models.IncidentTemplate{}, err
	}
	if !s.authorizer.CanManageTemplate(claim, template) {
		return models.IncidentTemplate{}, denied(shared.PermissionManageTemplates, "only the creator or an admin may change this template")
	}
	return template, nil
}

func (s *TemplateService) Update(ctx context.Context, claim shared.Claim, id uuid.UUID, req dtos.TemplateUpdateRequest) (models.IncidentTemplate, error) {
	if err := requirePermission(s.authorizer, claim, shared.PermissionManageTemplates); err != nil {
		return models.IncidentTemplate{}, err
	}
	if err := validate(req); err != nil {
		return models.IncidentTemplate{}, err
	}
	if err := requireText("name", req.Name); err != nil {
		return models.IncidentTemplate{}, err
	}

	var template models.IncidentTemplate
	err := s.templateRepository.Transaction(func(tx shared.DB) error {
		var err error
		template, err = s.readManageable(tx, claim, id)
		if err != nil {
			return err
		}
		applyTemplateRequest(&template, req)

		if err := s.templateRepository.Save(tx, &template); err != nil {
			return err
		}
		if req.TagIDs != nil {
			if err := s.templateRepository.ReplaceTags(tx, &template, req.TagIDs); err != nil {
				return err
			}
		}
		return s.auditLogService.Record(ctx, tx, &claim, shared.AuditEntry{
			Action:       dtos.AuditActionUpdate,
			ResourceType: "template",
			ResourceID:   &template.ID,
			Details:      map[string]any{"name": template.Name, "is_public": template.IsPublic},
		})
	})
	if err != nil {
		return models.IncidentTemplate{}, err
	}
	return template, nil
}

func (s *TemplateService) Delete(ctx context.Context, claim shared.Claim, id uuid.UUID) error {
	if err := requirePermission(s.authorizer, claim, shared.PermissionManageTemplates); err != nil {
		return err
	}
	return s.templateRepository.Transaction(func(tx shared.DB) error {
		template, err := s.readManageable(tx, claim, id)
		if err != nil {
			return err
		}
		if err := s.templateRepository.Delete(tx, id); err != nil {
			return err
		}
		return s.auditLogService.Record(ctx, tx, &claim, shared.AuditEntry{
			Action:       dtos.AuditActionDelete,
			ResourceType: "template",
			ResourceID:   &id,
			Details:      map[string]any{"name": template.Name},
		})
	})
}

// Use counts the usage and returns a create request prefilled from the
// template. The incident itself is created by a separate call.
func (s *TemplateService) Use(ctx context.Context, claim shared.Claim, id uuid.UUID) (dtos.IncidentCreateRequest, error) {
	if err := requirePermission(s.authorizer, claim, shared.PermissionViewTemplates); err != nil {
		return dtos.IncidentCreateRequest{}, err
	}

	var template models.IncidentTemplate
	err := s.templateRepository.Transaction(func(tx shared.DB) error {
		var err error
		template, err = s.readVisible(tx, claim, id)
		if err != nil {
			return err
		}
		if err := s.templateRepository.IncrementUsage(tx, id); err != nil {
			return err
		}
		return s.auditLogService.Record(ctx, tx, &claim, shared.AuditEntry{
			Action:       dtos.AuditActionUpdate,
			ResourceType: "template",
			ResourceID:   &id,
			Details:      map[string]any{"usage_count": template.UsageCount + 1},
		})
	})
	if err != nil {
		return dtos.IncidentCreateRequest{}, err
	}

	title := template.Title
	if title == "" {
		title = template.Name
	}
	return dtos.IncidentCreateRequest{
		Title:       title,
		Description: template.Content,
		Severity:    template.Severity,
		ImpactScope: template.ImpactScope,
		TagIDs:      template.GetTagIDs(),
	}, nil
}
