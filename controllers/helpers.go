// Copyright (C) 2026 l3montree GmbH
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

package controllers

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
	"github.com/l3montree-dev/incidentguard/shared"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// statusOf maps the error kinds of the services to http status codes.
func statusOf(err error) int {
	switch {
	case errors.Is(err, shared.ErrAuthorizationDenied):
		return http.StatusForbidden
	case errors.Is(err, shared.ErrValidation):
		return http.StatusBadRequest
	case errors.Is(err, shared.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, shared.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, shared.ErrRateLimited):
		return http.StatusTooManyRequests
	case errors.Is(err, shared.ErrTransientStorage):
		return http.StatusServiceUnavailable
	}
	return http.StatusInternalServerError
}

// httpError converts a service error. Messages of client errors are passed
// through, server errors only expose the status text.
func httpError(err error) error {
	code := statusOf(err)
	msg := err.Error()
	if code >= http.StatusInternalServerError {
		msg = http.StatusText(code)
	}
	return echo.NewHTTPError(code, msg).WithInternal(err)
}

// withStatus stores the status code the handler answers with on success,
// so the audit entry written by the service carries it.
func withStatus(ctx shared.Context, code int) {
	ctx.SetRequest(ctx.Request().WithContext(shared.WithAuditStatus(ctx, code)))
}

func bindAndValidate(ctx shared.Context, req any) error {
	if err := ctx.Bind(req); err != nil {
		return echo.NewHTTPError(400, "unable to process request").WithInternal(err)
	}
	if err := shared.V.Struct(req); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate request: %s", err.Error()))
	}
	return nil
}

func bindQuery(ctx shared.Context, query any) error {
	if err := (&echo.DefaultBinder{}).BindQueryParams(ctx, query); err != nil {
		return echo.NewHTTPError(400, "invalid query parameters").WithInternal(err)
	}
	if err := shared.V.Struct(query); err != nil {
		return echo.NewHTTPError(400, fmt.Sprintf("could not validate query: %s", err.Error()))
	}
	return nil
}

func uuidParam(ctx shared.Context, name string) (uuid.UUID, error) {
	id, err := shared.GetUUIDParam(ctx, name)
	if err != nil {
		return uuid.Nil, echo.NewHTTPError(400, fmt.Sprintf("invalid %s", name)).WithInternal(err)
	}
	return id, nil
}
