package database

import (
	"fmt"
	"testing"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/l3montree-dev/incidentguard/shared"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"gorm.io/gorm"
)

func TestTranslateError(t *testing.T) {
	t.Run("should keep nil", func(t *testing.T) {
		assert.NoError(t, TranslateError(nil, "incident"))
	})

	t.Run("should map a missing record to not found", func(t *testing.T) {
		err := TranslateError(gorm.ErrRecordNotFound, "incident")
		assert.True(t, errors.Is(err, shared.ErrNotFound))
		assert.Contains(t, err.Error(), "incident not found")
	})

	t.Run("should map a unique violation to conflict", func(t *testing.T) {
		err := TranslateError(fmt.Errorf("insert: %w", &pgconn.PgError{Code: "23505"}), "tag")
		assert.True(t, errors.Is(err, shared.ErrConflict))
	})

	t.Run("should map a foreign key violation to not found", func(t *testing.T) {
		err := TranslateError(&pgconn.PgError{Code: "23503"}, "activity")
		assert.True(t, errors.Is(err, shared.ErrNotFound))
	})

	t.Run("should map everything else to a transient storage error", func(t *testing.T) {
		err := TranslateError(errors.New("connection reset"), "incident")
		assert.True(t, errors.Is(err, shared.ErrTransientStorage))
	})

	t.Run("should not touch errors that already carry a kind", func(t *testing.T) {
		original := shared.NotFound("tag not found")
		assert.Equal(t, original, TranslateError(original, "incident"))
	})
}

func TestIsConstraintViolation(t *testing.T) {
	t.Run("should detect unique and foreign key violations only", func(t *testing.T) {
		assert.True(t, IsConstraintViolation(&pgconn.PgError{Code: "23505"}))
		assert.True(t, IsConstraintViolation(&pgconn.PgError{Code: "23503"}))
		assert.False(t, IsConstraintViolation(&pgconn.PgError{Code: "40001"}))
		assert.False(t, IsConstraintViolation(errors.New("boom")))
	})
}
