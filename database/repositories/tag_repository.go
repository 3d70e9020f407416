package repositories

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/incidentguard/database/models"
	"github.com/l3montree-dev/incidentguard/shared"
	"gorm.io/gorm"
)

type tagRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Tag]
}

func NewTagRepository(db shared.DB) *tagRepository {
	return &tagRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Tag](db, "tag"),
	}
}

func (r *tagRepository) Read(id uuid.UUID) (models.Tag, error) {
	return r.GormRepository.Read(nil, id)
}

func (r *tagRepository) All() ([]models.Tag, error) {
	var tags []models.Tag
	err := r.db.Order("name ASC").Find(&tags).Error
	return tags, r.translate(err)
}
