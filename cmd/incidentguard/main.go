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

package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/l3montree-dev/incidentguard/accesscontrol"
	"github.com/l3montree-dev/incidentguard/controllers"
	"github.com/l3montree-dev/incidentguard/database"
	"github.com/l3montree-dev/incidentguard/database/repositories"
	"github.com/l3montree-dev/incidentguard/middlewares"
	"github.com/l3montree-dev/incidentguard/monitoring"
	"github.com/l3montree-dev/incidentguard/router"
	"github.com/l3montree-dev/incidentguard/services"
	"github.com/l3montree-dev/incidentguard/shared"
	"github.com/l3montree-dev/incidentguard/statemachine"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

var release string // Will be filled at build time

// @title incidentguard API
// @version v1
// @description incident authorization and lifecycle API

// @license.name AGPL-3
// @license.url https://github.com/l3montree-dev/incidentguard/blob/main/LICENSE.txt

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

// @BasePath /api/v1
func main() {
	shared.LoadConfig() // nolint: errcheck
	shared.InitLogger()

	if os.Getenv("ERROR_TRACKING_DSN") != "" {
		initSentry()

		defer func() {
			if err := recover(); err != nil {
				sentry.CurrentHub().Recover(err)
				sentry.Flush(time.Second * 5)
			}
		}()
	}

	shutdownTracing, err := monitoring.InitTracing(context.Background(), "incidentguard")
	if err != nil {
		slog.Error("could not initialize tracing", "err", err)
		panic(errors.New("Failed to setup tracing"))
	}

	db, pool, err := database.DatabaseFactory()
	if err != nil {
		slog.Error(err.Error())
		panic(errors.New("Failed to setup database connection"))
	}

	if os.Getenv("DISABLE_AUTOMIGRATE") != "true" {
		slog.Info("running database migrations...")
		if err := database.RunMigrationsWithDB(db); err != nil {
			slog.Error("failed to run database migrations", "error", err)
			panic(errors.New("Failed to run database migrations"))
		}
	} else {
		slog.Info("automatic migrations disabled via DISABLE_AUTOMIGRATE=true")
	}

	fx.New(
		fx.Supply(db, pool),
		fx.Provide(newBroker),
		fx.Provide(middlewares.NewServer),
		statemachine.Module,
		repositories.Module,
		services.Module,
		accesscontrol.AccessControlModule,
		controllers.ControllerModule,
		router.RouterModule,

		// we need to invoke all routers to register their routes
		fx.Invoke(func(router.SessionRouter) {}),
		fx.Invoke(func(router.IncidentRouter) {}),
		fx.Invoke(func(router.PostMortemRouter) {}),
		fx.Invoke(func(router.CatalogRouter) {}),
		fx.Invoke(func(router.AuditLogRouter) {}),
		fx.Invoke(func(router.UserSettingsRouter) {}),
		fx.Invoke(func(server *echo.Echo) {}),
		fx.Invoke(func(lc fx.Lifecycle) {
			lc.Append(fx.Hook{OnStop: shutdownTracing})
		}),
	).Run()
}

// newBroker closes the LISTEN connections on shutdown.
func newBroker(lc fx.Lifecycle, pool *pgxpool.Pool) shared.PubSubBroker {
	broker := database.NewPostgreSQLBroker(pool)
	lc.Append(fx.Hook{
		OnStop: func(ctx context.Context) error {
			broker.Close()
			pool.Close()
			return nil
		},
	})
	return broker
}

func initSentry() {
	environment := os.Getenv("ENVIRONMENT")
	if environment == "" {
		environment = "dev"
	}

	err := sentry.Init(sentry.ClientOptions{
		Dsn:         os.Getenv("ERROR_TRACKING_DSN"),
		Environment: environment,
		Release:     release,

		// In debug mode, the debug information is printed to stdout to help you
		// understand what Sentry is doing.
		Debug: environment == "dev",

		AttachStacktrace: true,

		// incident descriptions and comments must not leave the system.
		SendDefaultPII: false,
	})
	if err != nil {
		slog.Error("Failed to init logger", "err", err)
	}
}
