package accesscontrol

import (
	"github.com/l3montree-dev/incidentguard/shared"
	"go.uber.org/fx"
)

var AccessControlModule = fx.Options(
	fx.Provide(fx.Annotate(NewCasbinAuthorizer, fx.As(new(shared.Authorizer)))),
)
