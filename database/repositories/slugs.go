// Copyright (C) 2024 Tim Bastin, l3montree GmbH
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
	"fmt"

	"github.com/google/uuid"
	"github.com/l3montree-dev/incidentguard/database/models"
	"github.com/l3montree-dev/incidentguard/shared"
)

// resolveUniqueSlug appends a counter to base until the slug is not used by
// another tag.
func resolveUniqueSlug(base string, self uuid.UUID, taken map[string]uuid.UUID) string {
	slug := base
	for i := 1; ; i++ {
		owner, exists := taken[slug]
		if !exists || owner == self {
			return slug
		}
		slug = fmt.Sprintf("%s-%d", base, i)
	}
}

// ResolveSlug makes tag.Slug unique among all tags. Two names like "API" and
// "api!" end up as "api" and "api-1".
func (r *tagRepository) ResolveSlug(tx shared.DB, tag *models.Tag) error {
	var existing []models.Tag
	err := r.GetDB(tx).
		Select("id", "slug").
		Where("slug = ? OR slug LIKE ?", tag.Slug, tag.Slug+"-%").
		Find(&existing).Error
	if err != nil {
		return r.translate(err)
	}

	taken := make(map[string]uuid.UUID, len(existing))
	for _, t := range existing {
		taken[t.Slug] = t.ID
	}
	tag.Slug = resolveUniqueSlug(tag.Slug, tag.ID, taken)
	return nil
}
