// Copyright (C) 2023 Tim Bastin, l3montree GmbH
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
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package repositories

import (
	"github.com/l3montree-dev/incidentguard/database"
	"github.com/l3montree-dev/incidentguard/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// GormRepository implements the crud operations every repository shares.
// Returned errors are already translated into the service error kinds.
type GormRepository[ID comparable, T utils.Tabler] struct {
	db       *gorm.DB
	resource string
}

func newGormRepository[ID comparable, T utils.Tabler](db *gorm.DB, resource string) *GormRepository[ID, T] {
	return &GormRepository[ID, T]{
		db:       db,
		resource: resource,
	}
}

func (g *GormRepository[ID, T]) translate(err error) error {
	return database.TranslateError(err, g.resource)
}

func (g *GormRepository[ID, T]) All() ([]T, error) {
	var ts []T
	err := g.db.Find(&ts).Error
	return ts, g.translate(err)
}

func (g *GormRepository[ID, T]) Save(tx *gorm.DB, t *T) error {
	return g.translate(g.GetDB(tx).Save(t).Error)
}

// Upsert inserts t or updates the given columns on conflict.
func (g *GormRepository[ID, T]) Upsert(tx *gorm.DB, t *T, conflictingColumns []clause.Column, updateOnly []string) error {
	if len(updateOnly) > 0 {
		return g.translate(g.GetDB(tx).Clauses(clause.OnConflict{
			DoUpdates: clause.AssignmentColumns(updateOnly),
			Columns:   conflictingColumns,
		}).Create(t).Error)
	}
	return g.translate(g.GetDB(tx).Clauses(clause.OnConflict{UpdateAll: true, Columns: conflictingColumns}).Create(t).Error)
}

// Transaction runs f in a transaction. It is rolled back if f returns an
// error or panics.
func (g *GormRepository[ID, T]) Transaction(f func(tx *gorm.DB) error) error {
	return g.db.Transaction(f)
}

func (g *GormRepository[ID, T]) GetDB(tx *gorm.DB) *gorm.DB {
	if tx != nil {
		return tx
	}
	return g.db
}

func (g *GormRepository[ID, T]) Create(tx *gorm.DB, t *T) error {
	return g.translate(g.GetDB(tx).Create(t).Error)
}

func (g *GormRepository[ID, T]) CreateBatch(tx *gorm.DB, ts []T) error {
	if len(ts) == 0 {
		return nil
	}
	return g.translate(g.GetDB(tx).Create(&ts).Error)
}

func (g *GormRepository[ID, T]) Read(tx *gorm.DB, id ID) (T, error) {
	var t T
	err := g.GetDB(tx).First(&t, "id = ?", id).Error
	return t, g.translate(err)
}

// ReadForUpdate locks the row until the surrounding transaction ends.
func (g *GormRepository[ID, T]) ReadForUpdate(tx *gorm.DB, id ID) (T, error) {
	var t T
	err := g.GetDB(tx).Clauses(clause.Locking{Strength: "UPDATE"}).First(&t, "id = ?", id).Error
	return t, g.translate(err)
}

// Delete fails with a not found error if no row was deleted.
func (g *GormRepository[ID, T]) Delete(tx *gorm.DB, id ID) error {
	var t T
	res := g.GetDB(tx).Where("id = ?", id).Delete(&t)
	if res.Error != nil {
		return g.translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return g.translate(gorm.ErrRecordNotFound)
	}
	return nil
}

func (g *GormRepository[ID, T]) List(ids []ID) ([]T, error) {
	if len(ids) == 0 {
		return []T{}, nil
	}
	var ts []T
	err := g.db.Where("id IN ?", ids).Find(&ts).Error
	return ts, g.translate(err)
}
