package database

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/l3montree-dev/incidentguard/shared"
	"gorm.io/gorm"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
)

// IsConstraintViolation reports unique and foreign key violations.
func IsConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == uniqueViolation || pgErr.Code == foreignKeyViolation
}

// TranslateError maps storage errors onto the error kinds of the services.
// Errors that already carry a kind are returned as they are.
func TranslateError(err error, resource string) error {
	if err == nil {
		return nil
	}
	switch {
	case errors.Is(err, shared.ErrNotFound),
		errors.Is(err, shared.ErrConflict),
		errors.Is(err, shared.ErrValidation),
		errors.Is(err, shared.ErrAuthorizationDenied),
		errors.Is(err, shared.ErrRateLimited),
		errors.Is(err, shared.ErrTransientStorage):
		return err
	case errors.Is(err, gorm.ErrRecordNotFound):
		return shared.NotFound(resource + " not found")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case uniqueViolation:
			return shared.Conflict(resource + " already exists")
		case foreignKeyViolation:
			return shared.NotFound("referenced resource of " + resource + " not found")
		}
	}
	return shared.Transient(err, "could not access "+resource)
}
