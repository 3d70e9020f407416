package repositories

import (
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/incidentguard/database/models"
	"github.com/l3montree-dev/incidentguard/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type templateRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.IncidentTemplate]
}

func NewTemplateRepository(db shared.DB) *templateRepository {
	return &templateRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.IncidentTemplate](db, "template"),
	}
}

func (r *templateRepository) Create(tx shared.DB, template *models.IncidentTemplate) error {
	return r.translate(r.GetDB(tx).Omit(clause.Associations).Create(template).Error)
}

func (r *templateRepository) Read(tx shared.DB, id uuid.UUID) (models.IncidentTemplate, error) {
	var template models.IncidentTemplate
	err := r.GetDB(tx).Preload("Tags").First(&template, "id = ?", id).Error
	return template, r.translate(err)
}

func (r *templateRepository) Save(tx shared.DB, template *models.IncidentTemplate) error {
	template.UpdatedAt = time.Now()
	err := r.GetDB(tx).Model(template).
		Select("*").
		Omit("creator_id", "created_at", "usage_count", "Tags").
		Updates(template).Error
	return r.translate(err)
}

func (r *templateRepository) ReplaceTags(tx shared.DB, template *models.IncidentTemplate, tagIDs []uuid.UUID) error {
	tags, err := loadTags(r.GetDB(tx), tagIDs)
	if err != nil {
		return err
	}
	if err := r.GetDB(tx).Model(template).Association("Tags").Replace(tags); err != nil {
		return r.translate(err)
	}
	template.Tags = tags
	return nil
}

// ListVisible returns public templates and the private ones of the user,
// the most used first.
func (r *templateRepository) ListVisible(userID uuid.UUID, pageInfo shared.PageInfo) (shared.Paged[models.IncidentTemplate], error) {
	q := r.db.Model(&models.IncidentTemplate{}).Where("is_public = ? OR creator_id = ?", true, userID)

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return shared.Paged[models.IncidentTemplate]{}, r.translate(err)
	}

	var templates []models.IncidentTemplate
	err := pageInfo.ApplyOnDB(q.Order("usage_count DESC").Order("name ASC")).Preload("Tags").Find(&templates).Error
	if err != nil {
		return shared.Paged[models.IncidentTemplate]{}, r.translate(err)
	}
	return shared.NewPaged(pageInfo, count, templates), nil
}

func (r *templateRepository) IncrementUsage(tx shared.DB, id uuid.UUID) error {
	res := r.GetDB(tx).Model(&models.IncidentTemplate{}).
		Where("id = ?", id).
		UpdateColumn("usage_count", gorm.Expr("usage_count + 1"))
	if res.Error != nil {
		return r.translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return r.translate(gorm.ErrRecordNotFound)
	}
	return nil
}
