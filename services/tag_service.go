package services

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"github.com/l3montree-dev/incidentguard/database/models"
	"github.com/l3montree-dev/incidentguard/dtos"
	"github.com/l3montree-dev/incidentguard/shared"
)

const defaultTagColor = "#808080"

type TagService struct {
	tagRepository   shared.TagRepository
	authorizer      shared.Authorizer
	auditLogService shared.AuditLogService
}

var _ shared.TagService = (*TagService)(nil)

func NewTagService(tagRepository shared.TagRepository, authorizer shared.Authorizer, auditLogService shared.AuditLogService) *TagService {
	return &TagService{
		tagRepository:   tagRepository,
		authorizer:      authorizer,
		auditLogService: auditLogService,
	}
}

func tagSlug(name string) string {
	s := slug.Make(name)
	if s == "" {
		return "tag"
	}
	return s
}

func (s *TagService) List(ctx context.Context, claim shared.Claim) ([]models.Tag, error) {
	if err := requirePermission(s.authorizer, claim, shared.PermissionViewTags); err != nil {
		return nil, err
	}
	return s.tagRepository.All()
}

func (s *TagService) Create(ctx context.Context, claim shared.Claim, req dtos.TagCreateRequest) (models.Tag, error) {
	if err := requirePermission(s.authorizer, claim, shared.PermissionManageTags); err != nil {
		return models.Tag{}, err
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := validate(req); err != nil {
		return models.Tag{}, err
	}

	tag := models.Tag{
		Model: models.Model{ID: uuid.New()},
		Name:  req.Name,
		Slug:  tagSlug(req.Name),
		Color: req.Color,
	}
	if tag.Color == "" {
		tag.Color = defaultTagColor
	}

	err := s.tagRepository.Transaction(func(tx shared.DB) error {
		if err := s.tagRepository.ResolveSlug(tx, &tag); err != nil {
			return err
		}
		if err := s.tagRepository.Create(tx, &tag); err != nil {
			return err
		}
		return s.auditLogService.Record(ctx, tx, &claim, shared.AuditEntry{
			Action:       dtos.AuditActionCreate,
			ResourceType: "tag",
			ResourceID:   &tag.ID,
			Details:      map[string]any{"name": tag.Name, "slug": tag.Slug},
		})
	})
	if err != nil {
		return models.Tag{}, err
	}
	return tag, nil
}

func (s *TagService) Update(ctx context.Context, claim shared.Claim, id uuid.UUID, req dtos.TagUpdateRequest) (models.Tag, error) {
	if err := requirePermission(s.authorizer, claim, shared.PermissionManageTags); err != nil {
		return models.Tag{}, err
	}
	req.Name = strings.TrimSpace(req.Name)
	if err := validate(req); err != nil {
		return models.Tag{}, err
	}

	tag, err := s.tagRepository.Read(id)
	if err != nil {
		return models.Tag{}, err
	}
	details := auditDetails{}
	if tag.Name != req.Name {
		details.change("name", tag.Name, req.Name)
	}
	if req.Color != "" && tag.Color != req.Color {
		details.change("color", tag.Color, req.Color)
		tag.Color = req.Color
	}
	tag.Name = req.Name
	tag.Slug = tagSlug(req.Name)

	err = s.tagRepository.Transaction(func(tx shared.DB) error {
		if err := s.tagRepository.ResolveSlug(tx, &tag); err != nil {
			return err
		}
		if err := s.tagRepository.Save(tx, &tag); err != nil {
			return err
		}
		return s.auditLogService.Record(ctx, tx, &claim, shared.AuditEntry{
			Action:       dtos.AuditActionUpdate,
			ResourceType: "tag",
			ResourceID:   &tag.ID,
			Details:      details,
		})
	})
	if err != nil {
		return models.Tag{}, err
	}
	return tag, nil
}

func (s *TagService) Delete(ctx context.Context, claim shared.Claim, id uuid.UUID) error {
	if err := requirePermission(s.authorizer, claim, shared.PermissionManageTags); err != nil {
		return err
	}
	return s.tagRepository.Transaction(func(tx shared.DB) error {
		if err := s.tagRepository.Delete(tx, id); err != nil {
			return err
		}
		return s.auditLogService.Record(ctx, tx, &claim, shared.AuditEntry{
			Action:       dtos.AuditActionDelete,
			ResourceType: "tag",
			ResourceID:   &id,
		})
	})
}
