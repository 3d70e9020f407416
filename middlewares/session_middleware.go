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

package middlewares

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/l3montree-dev/incidentguard/accesscontrol"
	"github.com/l3montree-dev/incidentguard/dtos"
	"github.com/l3montree-dev/incidentguard/shared"
	"github.com/labstack/echo/v4"
)

type ClaimVerifier interface {
	Verify(raw string) (shared.Claim, error)
}

func bearerToken(req *http.Request) (string, bool) {
	header := req.Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", false
	}
	scheme, token, found := strings.Cut(header, " ")
	if !found || !strings.EqualFold(scheme, "bearer") {
		// a header is present but unusable. Treat it as a failed login.
		return "", true
	}
	return token, true
}

// SessionMiddleware turns a verified bearer token into the session. Requests
// without a token get NoSession. A token that fails verification is answered
// with 401 and recorded as a failed login.
func SessionMiddleware(verifier ClaimVerifier, auditLogService shared.AuditLogService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(ctx echo.Context) error {
			token, present := bearerToken(ctx.Request())
			if !present {
				shared.SetSession(ctx, accesscontrol.NoSession)
				return next(ctx)
			}

			claim, err := verifier.Verify(token)
			if err != nil {
				reqCtx := shared.WithAuditStatus(ctx, http.StatusUnauthorized)
				if recordErr := auditLogService.Record(reqCtx, nil, nil, shared.AuditEntry{
					Action:       dtos.AuditActionLogin,
					ResourceType: "auth",
					Details:      map[string]any{"success": false},
				}); recordErr != nil {
					slog.Warn("could not record failed login", "err", recordErr)
				}
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token").WithInternal(err)
			}

			shared.SetSession(ctx, accesscontrol.NewSession(claim))
			return next(ctx)
		}
	}
}
