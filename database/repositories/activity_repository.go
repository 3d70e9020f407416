package repositories

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/incidentguard/database/models"
	"github.com/l3montree-dev/incidentguard/shared"
	"gorm.io/gorm"
)

// activities are append only, there is no update or delete
type activityRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.IncidentActivity]
}

func NewActivityRepository(db shared.DB) *activityRepository {
	return &activityRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.IncidentActivity](db, "activity"),
	}
}

// ListByIncidentID returns the activities in the order they were recorded.
// Activity ids are UUIDv7, so the id orders entries sharing a created_at.
func (r *activityRepository) ListByIncidentID(tx shared.DB, incidentID uuid.UUID) ([]models.IncidentActivity, error) {
	var activities []models.IncidentActivity
	err := r.GetDB(tx).
		Where("incident_id = ?", incidentID).
		Order("created_at ASC").
		Order("id ASC").
		Find(&activities).Error
	return activities, r.translate(err)
}

func (r *activityRepository) ListRecent(limit int) ([]models.IncidentActivity, error) {
	var activities []models.IncidentActivity
	err := r.db.Order("created_at DESC").Limit(limit).Find(&activities).Error
	return activities, r.translate(err)
}
