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

package shared

import (
	"github.com/pkg/errors"
)

// Error kinds returned by the services. They are wrapped with context
// using errors.Wrap and tested with errors.Is.
var (
	ErrAuthorizationDenied = errors.New("authorization denied")
	ErrValidation          = errors.New("validation failed")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrTransientStorage    = errors.New("storage temporarily unavailable")
	ErrRateLimited         = errors.New("rate limit exceeded")
)

func Denied(msg string) error {
	return errors.Wrap(ErrAuthorizationDenied, msg)
}

func Invalid(msg string) error {
	return errors.Wrap(ErrValidation, msg)
}

func NotFound(msg string) error {
	return errors.Wrap(ErrNotFound, msg)
}

func Conflict(msg string) error {
	return errors.Wrap(ErrConflict, msg)
}

func Transient(err error, msg string) error {
	return errors.Wrapf(ErrTransientStorage, "%s: %v", msg, err)
}
