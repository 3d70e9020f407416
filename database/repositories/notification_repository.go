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
	"errors"
	"time"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/l3montree-dev/incidentguard/database/models"
	"github.com/l3montree-dev/incidentguard/shared"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const notificationSettingCacheSize = 1024

type notificationSettingRepository struct {
	db *gorm.DB
	*GormRepository[uuid.UUID, models.NotificationSetting]
	cache *lru.Cache[uuid.UUID, models.NotificationSetting]
}

func NewNotificationSettingRepository(db shared.DB) *notificationSettingRepository {
	cache, err := lru.New[uuid.UUID, models.NotificationSetting](notificationSettingCacheSize)
	if err != nil {
		// only fails for a non positive size
		panic(err)
	}
	return &notificationSettingRepository{
		db:             db,
		GormRepository: newGormRepository[uuid.UUID, models.NotificationSetting](db, "notification setting"),
		cache:          cache,
	}
}

// Read returns the stored settings or the defaults. Reads inside a
// transaction bypass the cache.
func (r *notificationSettingRepository) Read(tx shared.DB, userID uuid.UUID) (models.NotificationSetting, error) {
	if tx == nil {
		if setting, ok := r.cache.Get(userID); ok {
			return setting, nil
		}
	}

	var setting models.NotificationSetting
	err := r.GetDB(tx).First(&setting, "user_id = ?", userID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return models.DefaultNotificationSetting(userID), nil
	}
	if err != nil {
		return setting, r.translate(err)
	}
	if tx == nil {
		r.cache.Add(userID, setting)
	}
	return setting, nil
}

// Upsert stores the settings. The cache entry is dropped so a rolled back
// transaction cannot leave a stale value behind.
func (r *notificationSettingRepository) Upsert(tx shared.DB, setting *models.NotificationSetting) error {
	now := time.Now()
	if setting.CreatedAt.IsZero() {
		setting.CreatedAt = now
	}
	setting.UpdatedAt = now

	err := r.GormRepository.Upsert(tx, setting, []clause.Column{{Name: "user_id"}}, []string{
		"email_enabled",
		"slack_enabled",
		"slack_webhook",
		"notify_on_incident_created",
		"notify_on_assigned",
		"notify_on_comment",
		"notify_on_status_change",
		"notify_on_severity_change",
		"notify_on_resolved",
		"notify_on_escalation",
		"updated_at",
	})
	r.cache.Remove(setting.UserID)
	return err
}

type notificationIntentRepository struct {
	*GormRepository[uuid.UUID, models.NotificationIntent]
}

func NewNotificationIntentRepository(db shared.DB) *notificationIntentRepository {
	return &notificationIntentRepository{
		GormRepository: newGormRepository[uuid.UUID, models.NotificationIntent](db, "notification intent"),
	}
}
