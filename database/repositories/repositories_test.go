package repositories

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/l3montree-dev/incidentguard/database/models"
	"github.com/l3montree-dev/incidentguard/dtos"
	"github.com/l3montree-dev/incidentguard/shared"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newMockDB(t *testing.T) (*gorm.DB, sqlmock.Sqlmock) {
	t.Helper()
	sqlDB, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { sqlDB.Close() })

	db, err := gorm.Open(postgres.New(postgres.Config{
		Conn:                 sqlDB,
		PreferSimpleProtocol: true,
	}), &gorm.Config{
		SkipDefaultTransaction: true,
		Logger:                 logger.Discard,
	})
	require.NoError(t, err)
	return db, mock
}

func TestAuditLogRepositoryList(t *testing.T) {
	t.Run("should filter by action and order newest first with the id as tie breaker", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAuditLogRepository(db)

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "audit_logs" WHERE action = $1`)).
			WithArgs("create").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))

		first, second := uuid.New(), uuid.New()
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "audit_logs" WHERE action = $1 ORDER BY created_at DESC,id DESC LIMIT`)).
			WillReturnRows(sqlmock.NewRows([]string{"id", "action", "created_at"}).
				AddRow(first.String(), "create", time.Now()).
				AddRow(second.String(), "create", time.Now()))

		page, err := repo.List(shared.PageInfo{Page: 1, PageSize: 2}, dtos.AuditLogListQuery{Action: dtos.AuditActionCreate})
		require.NoError(t, err)

		assert.Equal(t, int64(3), page.Total)
		require.Len(t, page.Data, 2)
		assert.Equal(t, first, page.Data[0].ID)
		assert.Equal(t, 2, page.Pagination().TotalPages)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should page by keyset instead of offset when a cursor is given", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewAuditLogRepository(db)

		before := time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC)
		beforeID := uuid.New()

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT count(*) FROM "audit_logs" WHERE action = $1`)).
			WithArgs("create").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(10))

		older := uuid.New()
		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "audit_logs" WHERE action = $1 AND (created_at, id) < ($2, $3) ORDER BY created_at DESC,id DESC LIMIT $4`)+`$`).
			WithArgs("create", before, beforeID.String(), 2).
			WillReturnRows(sqlmock.NewRows([]string{"id", "action", "created_at"}).
				AddRow(older.String(), "create", before.Add(-time.Second)))

		page, err := repo.List(shared.PageInfo{Page: 4, PageSize: 2}, dtos.AuditLogListQuery{
			Action:          dtos.AuditActionCreate,
			BeforeCreatedAt: &before,
			BeforeID:        &beforeID,
		})
		require.NoError(t, err)

		assert.Equal(t, int64(10), page.Total)
		require.Len(t, page.Data, 1)
		assert.Equal(t, older, page.Data[0].ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestIncidentRepositoryCountByStatus(t *testing.T) {
	t.Run("should group incidents by status", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewIncidentRepository(db)

		mock.ExpectQuery(`SELECT status AS key, COUNT\(\*\) AS count FROM "incidents" GROUP BY`).
			WillReturnRows(sqlmock.NewRows([]string{"key", "count"}).
				AddRow("open", 4).
				AddRow("resolved", 2))

		counts, err := repo.CountByStatus(t.Context())
		require.NoError(t, err)
		assert.Equal(t, int64(4), counts[dtos.IncidentStatusOpen])
		assert.Equal(t, int64(2), counts[dtos.IncidentStatusResolved])
		assert.Zero(t, counts[dtos.IncidentStatusClosed])
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestNotificationSettingRepositoryRead(t *testing.T) {
	t.Run("should return the defaults if the user never stored settings", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewNotificationSettingRepository(db)
		userID := uuid.New()

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "notification_settings" WHERE user_id = $1`)).
			WillReturnRows(sqlmock.NewRows([]string{"user_id"}))

		setting, err := repo.Read(nil, userID)
		require.NoError(t, err)
		assert.Equal(t, models.DefaultNotificationSetting(userID), setting)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("should serve the second read from the cache", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewNotificationSettingRepository(db)
		userID := uuid.New()

		mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "notification_settings" WHERE user_id = $1`)).
			WillReturnRows(sqlmock.NewRows([]string{"user_id", "email_enabled", "slack_enabled", "slack_webhook"}).
				AddRow(userID.String(), false, true, "https://hooks.slack.com/x"))

		first, err := repo.Read(nil, userID)
		require.NoError(t, err)
		second, err := repo.Read(nil, userID)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.False(t, second.EmailEnabled)
		assert.Equal(t, []dtos.NotificationChannel{dtos.NotificationChannelSlack}, second.Channels())
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGormRepositoryDelete(t *testing.T) {
	t.Run("should return not found if no row was deleted", func(t *testing.T) {
		db, mock := newMockDB(t)
		repo := NewTagRepository(db)

		mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM "tags" WHERE id = $1`)).
			WillReturnResult(sqlmock.NewResult(0, 0))

		err := repo.Delete(nil, uuid.New())
		assert.True(t, errors.Is(err, shared.ErrNotFound))
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestResolveUniqueSlug(t *testing.T) {
	self := uuid.New()

	t.Run("should keep a free slug", func(t *testing.T) {
		assert.Equal(t, "database", resolveUniqueSlug("database", self, map[string]uuid.UUID{}))
	})

	t.Run("should keep the slug the tag already owns", func(t *testing.T) {
		assert.Equal(t, "database", resolveUniqueSlug("database", self, map[string]uuid.UUID{"database": self}))
	})

	t.Run("should append a counter until the slug is free", func(t *testing.T) {
		taken := map[string]uuid.UUID{
			"api":   uuid.New(),
			"api-1": uuid.New(),
		}
		assert.Equal(t, "api-2", resolveUniqueSlug("api", self, taken))
	})
}
