// Copyright (C) 2025 l3montree GmbH
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as
// published by the Free Software Foundation, either version 3 of the
// License, or (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package repositories

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/incidentguard/database/models"
	"github.com/l3montree-dev/incidentguard/dtos"
	"github.com/l3montree-dev/incidentguard/shared"
	"github.com/l3montree-dev/incidentguard/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// severityRankSQL orders severities from low to critical.
const severityRankSQL = "CASE incidents.severity WHEN 'critical' THEN 4 WHEN 'high' THEN 3 WHEN 'medium' THEN 2 WHEN 'low' THEN 1 ELSE 0 END"

type incidentRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.Incident]
}

func NewIncidentRepository(db shared.DB) *incidentRepository {
	return &incidentRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.Incident](db, "incident"),
	}
}

func (r *incidentRepository) Read(tx shared.DB, id uuid.UUID) (models.Incident, error) {
	var incident models.Incident
	err := r.GetDB(tx).Preload("Tags").First(&incident, "id = ?", id).Error
	return incident, r.translate(err)
}

// ReadForUpdate locks the incident row. Tags are loaded with a second query
// since the lock must not spread to the join table.
func (r *incidentRepository) ReadForUpdate(tx shared.DB, id uuid.UUID) (models.Incident, error) {
	var incident models.Incident
	db := r.GetDB(tx)
	if err := db.Clauses(clause.Locking{Strength: "UPDATE"}).First(&incident, "id = ?", id).Error; err != nil {
		return incident, r.translate(err)
	}
	if err := db.Model(&incident).Association("Tags").Find(&incident.Tags); err != nil {
		return incident, r.translate(err)
	}
	return incident, nil
}

// Save writes every column except the creator and the creation time, which
// are fixed after creation. Tags are changed through ReplaceTags.
func (r *incidentRepository) Save(tx shared.DB, incident *models.Incident) error {
	incident.UpdatedAt = time.Now()
	err := r.GetDB(tx).Model(incident).Select("*").Omit("creator_id", "created_at", "Tags").Updates(incident).Error
	return r.translate(err)
}

func (r *incidentRepository) Create(tx shared.DB, incident *models.Incident) error {
	return r.translate(r.GetDB(tx).Omit(clause.Associations).Create(incident).Error)
}

// ReplaceTags sets the tags of the incident to exactly the given ids.
func (r *incidentRepository) ReplaceTags(tx shared.DB, incident *models.Incident, tagIDs []uuid.UUID) error {
	tags, err := loadTags(r.GetDB(tx), tagIDs)
	if err != nil {
		return err
	}
	if err := r.GetDB(tx).Model(incident).Association("Tags").Replace(tags); err != nil {
		return r.translate(err)
	}
	incident.Tags = tags
	return nil
}

func (r *incidentRepository) List(pageInfo shared.PageInfo, query dtos.IncidentListQuery) (shared.Paged[models.Incident], error) {
	q := r.db.Model(&models.Incident{})

	if query.Status != "" {
		q = q.Where("incidents.status = ?", query.Status)
	}
	if query.Severity != "" {
		q = q.Where("incidents.severity = ?", query.Severity)
	}
	if query.AssigneeID != nil {
		q = q.Where("incidents.assignee_id = ?", *query.AssigneeID)
	}
	if query.TagID != nil {
		q = q.Where("EXISTS (SELECT 1 FROM incident_tags it WHERE it.incident_id = incidents.id AND it.tag_id = ?)", *query.TagID)
	}
	if search := strings.TrimSpace(query.Search); search != "" {
		like := "%" + search + "%"
		q = q.Where("incidents.title ILIKE ? OR incidents.description ILIKE ?", like, like)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return shared.Paged[models.Incident]{}, r.translate(err)
	}

	var incidents []models.Incident
	err := pageInfo.ApplyOnDB(q.Order(incidentOrder(query))).
		Order("incidents.id DESC").
		Preload("Tags").
		Find(&incidents).Error
	if err != nil {
		return shared.Paged[models.Incident]{}, r.translate(err)
	}

	return shared.NewPaged(pageInfo, count, incidents), nil
}

func incidentOrder(query dtos.IncidentListQuery) string {
	direction := "DESC"
	if strings.EqualFold(query.Order, "asc") {
		direction = "ASC"
	}
	switch query.SortBy {
	case "severity":
		return severityRankSQL + " " + direction
	case "status":
		return "incidents.status " + direction
	case "detected_at":
		return "incidents.detected_at " + direction
	}
	return "incidents.created_at " + direction
}

type statusCount struct {
	Key   string
	Count int64
}

func (r *incidentRepository) countBy(ctx context.Context, column string) ([]statusCount, error) {
	var rows []statusCount
	err := r.db.WithContext(ctx).Model(&models.Incident{}).
		Select(column + " AS key, COUNT(*) AS count").
		Group(column).
		Scan(&rows).Error
	return rows, r.translate(err)
}

func (r *incidentRepository) CountByStatus(ctx context.Context) (map[dtos.IncidentStatus]int64, error) {
	rows, err := r.countBy(ctx, "status")
	if err != nil {
		return nil, err
	}
	res := make(map[dtos.IncidentStatus]int64, len(rows))
	for _, row := range rows {
		res[dtos.IncidentStatus(row.Key)] = row.Count
	}
	return res, nil
}

func (r *incidentRepository) CountBySeverity(ctx context.Context) (map[dtos.Severity]int64, error) {
	rows, err := r.countBy(ctx, "severity")
	if err != nil {
		return nil, err
	}
	res := make(map[dtos.Severity]int64, len(rows))
	for _, row := range rows {
		res[dtos.Severity(row.Key)] = row.Count
	}
	return res, nil
}

func (r *incidentRepository) CountOpenCritical(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.Incident{}).
		Where("severity = ? AND status IN ?", dtos.SeverityCritical, []dtos.IncidentStatus{dtos.IncidentStatusOpen, dtos.IncidentStatusInvestigating}).
		Count(&count).Error
	return count, r.translate(err)
}

// MeanTimeToResolve averages resolved_at - detected_at over all incidents
// that carry a resolved_at.
func (r *incidentRepository) MeanTimeToResolve(ctx context.Context) (time.Duration, error) {
	var seconds float64
	err := r.db.WithContext(ctx).Model(&models.Incident{}).
		Select("COALESCE(AVG(EXTRACT(EPOCH FROM (resolved_at - detected_at))), 0)").
		Where("resolved_at IS NOT NULL").
		Scan(&seconds).Error
	if err != nil {
		return 0, r.translate(err)
	}
	return time.Duration(seconds * float64(time.Second)), nil
}

// loadTags fails with a not found error if one of the ids does not exist.
func loadTags(db *gorm.DB, tagIDs []uuid.UUID) ([]models.Tag, error) {
	ids := utils.UniqBy(tagIDs, func(id uuid.UUID) uuid.UUID { return id })
	if len(ids) == 0 {
		return []models.Tag{}, nil
	}
	var tags []models.Tag
	if err := db.Where("id IN ?", ids).Find(&tags).Error; err != nil {
		return nil, shared.Transient(err, "could not load tags")
	}
	if len(tags) != len(ids) {
		return nil, shared.NotFound("tag not found")
	}
	return tags, nil
}
