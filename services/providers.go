package services

import (
	"github.com/l3montree-dev/incidentguard/shared"
	"go.uber.org/fx"
)

// Module provides all service-layer constructors
var Module = fx.Options(
	fx.Provide(AttachmentConfigFromEnv),
	fx.Provide(fx.Annotate(NewLocalBlobStore, fx.As(new(shared.BlobStore)))),
	fx.Provide(fx.Annotate(NewHeuristicSuggester, fx.As(new(shared.RootCauseSuggester)))),
	fx.Provide(fx.Annotate(NewSuggestionRateLimiterFromEnv, fx.As(new(shared.SuggestionLimiter)))),
	fx.Provide(fx.Annotate(NewAuditLogService, fx.As(new(shared.AuditLogService)))),
	fx.Provide(fx.Annotate(NewNotificationService, fx.As(new(shared.NotificationService)))),
	fx.Provide(fx.Annotate(NewIncidentService, fx.As(new(shared.IncidentService)))),
	fx.Provide(fx.Annotate(NewActivityService, fx.As(new(shared.ActivityService)))),
	fx.Provide(fx.Annotate(NewPostMortemService, fx.As(new(shared.PostMortemService)))),
	fx.Provide(fx.Annotate(NewActionItemService, fx.As(new(shared.ActionItemService)))),
	fx.Provide(fx.Annotate(NewTagService, fx.As(new(shared.TagService)))),
	fx.Provide(fx.Annotate(NewTemplateService, fx.As(new(shared.TemplateService)))),
	fx.Provide(fx.Annotate(NewAttachmentService, fx.As(new(shared.AttachmentService)))),
	fx.Provide(fx.Annotate(NewStatisticsService, fx.As(new(shared.StatisticsService)))),
)
