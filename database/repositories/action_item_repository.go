package repositories

import (
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/incidentguard/database/models"
	"github.com/l3montree-dev/incidentguard/dtos"
	"github.com/l3montree-dev/incidentguard/shared"
	"gorm.io/gorm"
)

type actionItemRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.ActionItem]
}

func NewActionItemRepository(db shared.DB) *actionItemRepository {
	return &actionItemRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.ActionItem](db, "action item"),
	}
}

// Save replaces every column but the owning post-mortem.
func (r *actionItemRepository) Save(tx shared.DB, item *models.ActionItem) error {
	item.UpdatedAt = time.Now()
	err := r.GetDB(tx).Model(item).Select("*").Omit("post_mortem_id", "created_at").Updates(item).Error
	return r.translate(err)
}

func (r *actionItemRepository) ListByPostMortemID(tx shared.DB, postMortemID uuid.UUID) ([]models.ActionItem, error) {
	var items []models.ActionItem
	err := r.GetDB(tx).Where("post_mortem_id = ?", postMortemID).Order("created_at ASC").Find(&items).Error
	return items, r.translate(err)
}

func (r *actionItemRepository) List(pageInfo shared.PageInfo, query dtos.ActionItemListQuery) (shared.Paged[models.ActionItem], error) {
	q := r.db.Model(&models.ActionItem{})
	if query.Status != "" {
		q = q.Where("status = ?", query.Status)
	}
	if query.Priority != "" {
		q = q.Where("priority = ?", query.Priority)
	}
	if query.AssigneeID != nil {
		q = q.Where("assignee_id = ?", *query.AssigneeID)
	}
	if search := strings.TrimSpace(query.Search); search != "" {
		like := "%" + search + "%"
		q = q.Where("title ILIKE ? OR description ILIKE ?", like, like)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return shared.Paged[models.ActionItem]{}, r.translate(err)
	}

	var items []models.ActionItem
	// overdue and soon due items first, items without a due date last
	if err := pageInfo.ApplyOnDB(q.Order("due_date ASC NULLS LAST").Order("created_at DESC")).Find(&items).Error; err != nil {
		return shared.Paged[models.ActionItem]{}, r.translate(err)
	}
	return shared.NewPaged(pageInfo, count, items), nil
}
