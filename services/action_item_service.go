package services

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/incidentguard/database/models"
	"github.com/l3montree-dev/incidentguard/dtos"
	"github.com/l3montree-dev/incidentguard/shared"
)

type ActionItemService struct {
	actionItemRepository shared.ActionItemRepository
	postMortemRepository shared.PostMortemRepository
	authorizer           shared.Authorizer
	auditLogService      shared.AuditLogService
	now                  func() time.Time
}

var _ shared.ActionItemService = (*ActionItemService)(nil)

func NewActionItemService(
	actionItemRepository shared.ActionItemRepository,
	postMortemRepository shared.PostMortemRepository,
	authorizer shared.Authorizer,
	auditLogService shared.AuditLogService,
) *ActionItemService {
	return &ActionItemService{
		actionItemRepository: actionItemRepository,
		postMortemRepository: postMortemRepository,
		authorizer:           authorizer,
		auditLogService:      auditLogService,
		now:                  time.Now,
	}
}

// readDraftPostMortem locks the owning post-mortem. Action items follow the
// editability of their post-mortem.
func (s *ActionItemService) readDraftPostMortem(tx shared.DB, id uuid.UUID) (models.PostMortem, error) {
	postMortem, err := s.postMortemRepository.ReadForUpdate(tx, id)
	if err != nil {
		return models.PostMortem{}, err
	}
	if !postMortem.IsEditable() {
		return models.PostMortem{}, shared.Conflict("action items of a published post-mortem cannot change")
	}
	return postMortem, nil
}

func (s *ActionItemService) Create(ctx context.Context, claim shared.Claim, postMortemID uuid.UUID, req dtos.ActionItemCreateRequest) (models.ActionItem, error) {
	if err := requirePermission(s.authorizer, claim, shared.PermissionManagePostMortems); err != nil {
		return models.ActionItem{}, err
	}
	if err := validate(req); err != nil {
		return models.ActionItem{}, err
	}
	if err := requireText("title", req.Title); err != nil {
		return models.ActionItem{}, err
	}

	item := models.ActionItem{
		Model:        models.Model{ID: uuid.New()},
		PostMortemID: postMortemID,
		Title:        req.Title,
		Description:  req.Description,
		AssigneeID:   req.AssigneeID,
		Priority:     req.Priority,
		Status:       dtos.ActionItemStatusPending,
		DueDate:      req.DueDate,
		RelatedLinks: req.RelatedLinks,
	}
	if req.Status != "" {
		item.SetStatus(req.Status, s.now().UTC())
	}

	err := s.postMortemRepository.Transaction(func(tx shared.DB) error {
		if _, err := s.readDraftPostMortem(tx, postMortemID); err != nil {
			return err
		}
		if err := s.actionItemRepository.Create(tx, &item); err != nil {
			return err
		}
		return s.auditLogService.Record(ctx, tx, &claim, shared.AuditEntry{
			Action:       dtos.AuditActionCreate,
			ResourceType: "action_item",
			ResourceID:   &item.ID,
			Details:      map[string]any{"post_mortem_id": postMortemID.String(), "priority": item.Priority},
		})
	})
	if err != nil {
		return models.ActionItem{}, err
	}
	return item, nil
}

func (s *ActionItemService) Update(ctx context.Context, claim shared.Claim, id uuid.UUID, req dtos.ActionItemUpdateRequest) (models.ActionItem, error) {
	if err := requirePermission(s.authorizer, claim, shared.PermissionManagePostMortems); err != nil {
		return models.ActionItem{}, err
	}
	if err := validate(req); err != nil {
		return models.ActionItem{}, err
	}
	if err := requireText("title", req.Title); err != nil {
		return models.ActionItem{}, err
	}

	var item models.ActionItem
	err := s.postMortemRepository.Transaction(func(tx shared.DB) error {
		var err error
		item, err = s.actionItemRepository.Read(tx, id)
		if err != nil {
			return err
		}
		if _, err := s.readDraftPostMortem(tx, item.PostMortemID); err != nil {
			return err
		}

		oldStatus := item.Status
		item.Title = req.Title
		item.Description = req.Description
		item.AssigneeID = req.AssigneeID
		item.Priority = req.Priority
		item.DueDate = req.DueDate
		item.RelatedLinks = req.RelatedLinks
		item.SetStatus(req.Status, s.now().UTC())

		if err := s.actionItemRepository.Save(tx, &item); err != nil {
			return err
		}
		details := auditDetails{}
		if oldStatus != item.Status {
			details.change("status", oldStatus, item.Status)
		}
		return s.auditLogService.Record(ctx, tx, &claim, shared.AuditEntry{
			Action:       dtos.AuditActionUpdate,
			ResourceType: "action_item",
			ResourceID:   &item.ID,
			Details:      details,
		})
	})
	if err != nil {
		return models.ActionItem{}, err
	}
	return item, nil
}

func (s *ActionItemService) Delete(ctx context.Context, claim shared.Claim, id uuid.UUID) error {
	if err := requirePermission(s.authorizer, claim, shared.PermissionManagePostMortems); err != nil {
		return err
	}
	return s.postMortemRepository.Transaction(func(tx shared.DB) error {
		item, err := s.actionItemRepository.Read(tx, id)
		if err != nil {
			return err
		}
		if _, err := s.readDraftPostMortem(tx, item.PostMortemID); err != nil {
			return err
		}
		if err := s.actionItemRepository.Delete(tx, id); err != nil {
			return err
		}
		return s.auditLogService.Record(ctx, tx, &claim, shared.AuditEntry{
			Action:       dtos.AuditActionDelete,
			ResourceType: "action_item",
			ResourceID:   &id,
			Details:      map[string]any{"post_mortem_id": item.PostMortemID.String(), "title": item.Title},
		})
	})
}

func (s *ActionItemService) ListByPostMortemID(ctx context.Context, claim shared.Claim, postMortemID uuid.UUID) ([]models.ActionItem, error) {
	if err := requirePermission(s.authorizer, claim, shared.PermissionViewPostMortems); err != nil {
		return nil, err
	}
	if _, err := s.postMortemRepository.Read(nil, postMortemID); err != nil {
		return nil, err
	}
	return s.actionItemRepository.ListByPostMortemID(nil, postMortemID)
}

func (s *ActionItemService) List(ctx context.Context, claim shared.Claim, pageInfo shared.PageInfo, query dtos.ActionItemListQuery) (shared.Paged[models.ActionItem], error) {
	if err := requirePermission(s.authorizer, claim, shared.PermissionViewPostMortems); err != nil {
		return shared.Paged[models.ActionItem]{}, err
	}
	if err := validate(query); err != nil {
		return shared.Paged[models.ActionItem]{}, err
	}
	return s.actionItemRepository.List(pageInfo, query)
}
