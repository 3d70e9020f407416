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
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/incidentguard/database/models"
	"github.com/l3montree-dev/incidentguard/dtos"
	"github.com/l3montree-dev/incidentguard/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type postMortemRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.PostMortem]
}

func NewPostMortemRepository(db shared.DB) *postMortemRepository {
	return &postMortemRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.PostMortem](db, "post-mortem"),
	}
}

func withActionItems(db *gorm.DB) *gorm.DB {
	return db.Preload("ActionItems", func(db *gorm.DB) *gorm.DB {
		return db.Order("action_items.created_at ASC")
	})
}

func (r *postMortemRepository) Create(tx shared.DB, postMortem *models.PostMortem) error {
	return r.translate(r.GetDB(tx).Omit(clause.Associations).Create(postMortem).Error)
}

func (r *postMortemRepository) Read(tx shared.DB, id uuid.UUID) (models.PostMortem, error) {
	var postMortem models.PostMortem
	err := withActionItems(r.GetDB(tx)).First(&postMortem, "id = ?", id).Error
	return postMortem, r.translate(err)
}

func (r *postMortemRepository) ReadByIncidentID(tx shared.DB, incidentID uuid.UUID) (models.PostMortem, error) {
	var postMortem models.PostMortem
	err := withActionItems(r.GetDB(tx)).First(&postMortem, "incident_id = ?", incidentID).Error
	return postMortem, r.translate(err)
}

// Save never touches the author, the incident or the action items.
func (r *postMortemRepository) Save(tx shared.DB, postMortem *models.PostMortem) error {
	postMortem.UpdatedAt = time.Now()
	err := r.GetDB(tx).Model(postMortem).
		Select("*").
		Omit("author_id", "incident_id", "created_at", "ActionItems").
		Updates(postMortem).Error
	return r.translate(err)
}

func (r *postMortemRepository) List(pageInfo shared.PageInfo, query dtos.PostMortemListQuery) (shared.Paged[models.PostMortem], error) {
	q := r.db.Model(&models.PostMortem{})
	if query.Status != "" {
		q = q.Where("status = ?", query.Status)
	}
	if query.AuthorID != nil {
		q = q.Where("author_id = ?", *query.AuthorID)
	}

	var count int64
	if err := q.Count(&count).Error; err != nil {
		return shared.Paged[models.PostMortem]{}, r.translate(err)
	}

	var postMortems []models.PostMortem
	if err := withActionItems(pageInfo.ApplyOnDB(q.Order("created_at DESC").Order("id DESC"))).Find(&postMortems).Error; err != nil {
		return shared.Paged[models.PostMortem]{}, r.translate(err)
	}
	return shared.NewPaged(pageInfo, count, postMortems), nil
}
