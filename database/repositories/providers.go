// Copyright (C) 2024 Tim Bastin, l3montree GmbH
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

package repositories

import (
	"github.com/l3montree-dev/incidentguard/shared"
	"go.uber.org/fx"
)

// Module provides all repository constructors as their interfaces
var Module = fx.Options(
	fx.Provide(fx.Annotate(NewIncidentRepository, fx.As(new(shared.IncidentRepository)))),
	fx.Provide(fx.Annotate(NewActivityRepository, fx.As(new(shared.ActivityRepository)))),
	fx.Provide(fx.Annotate(NewPostMortemRepository, fx.As(new(shared.PostMortemRepository)))),
	fx.Provide(fx.Annotate(NewActionItemRepository, fx.As(new(shared.ActionItemRepository)))),
	fx.Provide(fx.Annotate(NewAuditLogRepository, fx.As(new(shared.AuditLogRepository)))),
	fx.Provide(fx.Annotate(NewNotificationSettingRepository, fx.As(new(shared.NotificationSettingRepository)))),
	fx.Provide(fx.Annotate(NewNotificationIntentRepository, fx.As(new(shared.NotificationIntentRepository)))),
	fx.Provide(fx.Annotate(NewTagRepository, fx.As(new(shared.TagRepository)))),
	fx.Provide(fx.Annotate(NewTemplateRepository, fx.As(new(shared.TemplateRepository)))),
	fx.Provide(fx.Annotate(NewAttachmentRepository, fx.As(new(shared.AttachmentRepository)))),
)
