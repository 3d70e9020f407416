package statemachine

import "go.uber.org/fx"

var Module = fx.Options(
	fx.Provide(PolicyFromEnv),
	fx.Provide(NewIncidentStateMachine),
)
