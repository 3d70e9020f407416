package repositories

import (
	"github.com/google/uuid"
	"github.com/l3montree-dev/incidentguard/database/models"
	"github.com/l3montree-dev/incidentguard/dtos"
	"github.com/l3montree-dev/incidentguard/shared"
	"gorm.io/gorm"
)

type auditLogRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.AuditLog]
}

func NewAuditLogRepository(db shared.DB) *auditLogRepository {
	return &auditLogRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.AuditLog](db, "audit log"),
	}
}

func (r *auditLogRepository) Read(id uuid.UUID) (models.AuditLog, error) {
	return r.GormRepository.Read(nil, id)
}

// List returns the newest entries first. The id breaks ties between entries
// written in the same instant. The total counts every entry matching the
// filter. With a cursor only entries strictly older than the cursor are
// returned, so a page never shifts when new entries are written.
func (r *auditLogRepository) List(pageInfo shared.PageInfo, query dtos.AuditLogListQuery) (shared.Paged[models.AuditLog], error) {
	q := r.db.Model(&models.AuditLog{})
	if query.Action != "" {
		q = q.Where("action = ?", query.Action)
	}
	if query.ResourceType != "" {
		q = q.Where("resource_type = ?", query.ResourceType)
	}
	if query.UserID != nil {
		q = q.Where("user_id = ?", *query.UserID)
	}
	if query.From != nil {
		q = q.Where("created_at >= ?", *query.From)
	}
	if query.To != nil {
		q = q.Where("created_at <= ?", *query.To)
	}

	var count int64
	if err := q.Session(&gorm.Session{}).Count(&count).Error; err != nil {
		return shared.Paged[models.AuditLog]{}, r.translate(err)
	}

	q = q.Order("created_at DESC").Order("id DESC")
	if query.HasCursor() {
		q = q.Where("(created_at, id) < (?, ?)", *query.BeforeCreatedAt, *query.BeforeID).Limit(pageInfo.PageSize)
	} else {
		q = pageInfo.ApplyOnDB(q)
	}

	var entries []models.AuditLog
	if err := q.Find(&entries).Error; err != nil {
		return shared.Paged[models.AuditLog]{}, r.translate(err)
	}
	return shared.NewPaged(pageInfo, count, entries), nil
}
