package router

import (
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l3montree-dev/incidentguard/shared"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

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

type APIV1Router struct {
	*echo.Group
	db     shared.DB
	pool   *pgxpool.Pool
	broker shared.PubSubBroker
}

func healthHandler(db shared.DB) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		sqlDB, err := db.DB()
		if err != nil {
			return ctx.JSON(http.StatusServiceUnavailable, map[string]string{
				"status": "unhealthy",
				"error":  "failed to get database instance",
			})
		}

		if err := sqlDB.PingContext(ctx.Request().Context()); err != nil {
			return ctx.JSON(http.StatusServiceUnavailable, map[string]string{
				"status": "unhealthy",
				"error":  "database ping failed",
			})
		}

		return ctx.JSON(http.StatusOK, map[string]string{
			"status": "healthy",
		})
	}
}

// info is mounted by the session router because it needs an admin session.
func (r APIV1Router) info(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, InfoResponse{
		Build:    buildInfo(),
		Process:  processInfo(),
		Runtime:  runtimeInfo(),
		Database: databaseInfo(r.db, r.pool),
		Broker:   brokerInfo(ctx.Request().Context(), r.broker),
	})
}

func NewAPIV1Router(srv *echo.Echo,
	db shared.DB,
	pool *pgxpool.Pool,
	broker shared.PubSubBroker,
) APIV1Router {
	apiV1Router := srv.Group("/api/v1")

	apiV1Router.GET("/metrics/", echo.WrapHandler(promhttp.Handler()))
	apiV1Router.GET("/health/", healthHandler(db))

	return APIV1Router{
		Group:  apiV1Router,
		db:     db,
		pool:   pool,
		broker: broker,
	}
}
