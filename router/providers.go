package router

import (
	"github.com/l3montree-dev/incidentguard/accesscontrol"
	"github.com/l3montree-dev/incidentguard/middlewares"
	"go.uber.org/fx"
)

var RouterModule = fx.Options(
	fx.Provide(fx.Annotate(accesscontrol.NewTokenVerifierFromEnv, fx.As(new(middlewares.ClaimVerifier)))),
	fx.Provide(NewAPIV1Router),
	fx.Provide(NewSessionRouter),
	fx.Provide(NewIncidentRouter),
	fx.Provide(NewPostMortemRouter),
	fx.Provide(NewCatalogRouter),
	fx.Provide(NewAuditLogRouter),
	fx.Provide(NewUserSettingsRouter),
)
