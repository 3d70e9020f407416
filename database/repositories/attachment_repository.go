package repositories

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/incidentguard/database/models"
	"github.com/l3montree-dev/incidentguard/shared"
	"gorm.io/gorm"
)

type attachmentRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Attachment]
}

func NewAttachmentRepository(db shared.DB) *attachmentRepository {
	return &attachmentRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Attachment](db, "attachment"),
	}
}

func (r *attachmentRepository) ListByIncidentID(incidentID uuid.UUID) ([]models.Attachment, error) {
	var attachments []models.Attachment
	err := r.db.Where("incident_id = ?", incidentID).Order("created_at ASC").Find(&attachments).Error
	return attachments, r.translate(err)
}
