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
	"context"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"github.com/l3montree-dev/incidentguard/monitoring"
	"github.com/l3montree-dev/incidentguard/shared"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"go.uber.org/fx"
)

func allowedOrigins() []string {
	origins := strings.Split(shared.GetEnvOrDefault("FRONTEND_URL", "http://localhost:3000"), ",")
	for i := range origins {
		origins[i] = strings.TrimSpace(origins[i])
	}
	return origins
}

func registerMiddlewares(e *echo.Echo) {
	e.Pre(middleware.AddTrailingSlash())
	e.Use(middleware.CORSWithConfig(
		middleware.CORSConfig{
			AllowOrigins:     allowedOrigins(),
			AllowHeaders:     append(middleware.DefaultCORSConfig.AllowHeaders, echo.HeaderAuthorization),
			AllowMethods:     middleware.DefaultCORSConfig.AllowMethods,
			AllowCredentials: true,
		},
	))

	if monitoring.TracingEnabled() {
		e.Use(otelecho.Middleware("incidentguard"))
	}

	e.Use(logger())
	e.Use(metrics())
	e.Use(recovermiddleware())
	e.Use(AuditContext())

	e.HTTPErrorHandler = errorHandler(e)
}

func errorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, ctx echo.Context) {
		// do the logging straight inside the error handler
		// this keeps controller methods clean
		he, ok := err.(*echo.HTTPError)
		if !ok {
			he = &echo.HTTPError{
				Code:     http.StatusInternalServerError,
				Message:  http.StatusText(http.StatusInternalServerError),
				Internal: err,
			}
		}

		if he.Code >= http.StatusInternalServerError {
			slog.Error(err.Error(), "method", ctx.Request().Method, "path", ctx.Request().URL)
		} else {
			slog.Warn(err.Error(), "method", ctx.Request().Method, "path", ctx.Request().URL)
		}

		if ctx.Response().Committed {
			return
		}

		message := he.Message
		if m, ok := he.Message.(string); ok {
			if e.Debug && he.Internal != nil {
				message = echo.Map{"message": m, "error": he.Internal.Error()}
			} else {
				message = echo.Map{"message": m}
			}
		}

		// Send response
		if ctx.Request().Method == http.MethodHead {
			err = ctx.NoContent(he.Code)
		} else {
			err = ctx.JSON(he.Code, message)
		}
		if err != nil {
			slog.Error("could not send error response", "error", err)
		}
	}
}

func Server() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Logger.SetLevel(99)
	e.Debug = os.Getenv("ENVIRONMENT") == "dev"
	registerMiddlewares(e)
	return e
}

// NewServer creates the echo instance and binds it to the lifecycle of the
// fx application.
func NewServer(lc fx.Lifecycle) *echo.Echo {
	e := Server()
	addr := ":" + shared.GetEnvOrDefault("PORT", "8080")

	lc.Append(fx.Hook{
		OnStart: func(ctx context.Context) error {
			go func() {
				slog.Info("starting server", "addr", addr)
				if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
					slog.Error("server stopped", "err", err)
					os.Exit(1)
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return e.Shutdown(ctx)
		},
	})
	return e
}
