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

package transformer

import (
	"encoding/json"
	"log/slog"

	"github.com/l3montree-dev/incidentguard/database/models"
	"github.com/l3montree-dev/incidentguard/dtos"
	"github.com/l3montree-dev/incidentguard/shared"
)

func AuditLogModelToDTO(log models.AuditLog) dtos.AuditLogDTO {
	details := map[string]any{}
	if len(log.Details) > 0 {
		if err := json.Unmarshal(log.Details, &details); err != nil {
			slog.Warn("could not decode audit details", "id", log.ID, "err", err)
		}
	}

	return dtos.AuditLogDTO{
		ID:           log.ID,
		UserID:       log.UserID,
		UserName:     log.UserName,
		UserEmail:    log.UserEmail,
		Action:       log.Action,
		ResourceType: log.ResourceType,
		ResourceID:   log.ResourceID,
		Method:       log.Method,
		Path:         log.Path,
		StatusCode:   log.StatusCode,
		IPAddress:    log.IPAddress,
		UserAgent:    log.UserAgent,
		Details:      details,
		CreatedAt:    log.CreatedAt,
	}
}

func NotificationSettingModelToDTO(setting models.NotificationSetting) dtos.NotificationSettingDTO {
	return dtos.NotificationSettingDTO{
		UserID:                  setting.UserID,
		EmailEnabled:            setting.EmailEnabled,
		SlackEnabled:            setting.SlackEnabled,
		SlackWebhook:            setting.SlackWebhook,
		NotifyOnIncidentCreated: setting.NotifyOnIncidentCreated,
		NotifyOnAssigned:        setting.NotifyOnAssigned,
		NotifyOnComment:         setting.NotifyOnComment,
		NotifyOnStatusChange:    setting.NotifyOnStatusChange,
		NotifyOnSeverityChange:  setting.NotifyOnSeverityChange,
		NotifyOnResolved:        setting.NotifyOnResolved,
		NotifyOnEscalation:      setting.NotifyOnEscalation,
	}
}

func TemplateModelToDTO(template models.IncidentTemplate) dtos.TemplateDTO {
	return dtos.TemplateDTO{
		ID:          template.ID,
		Name:        template.Name,
		Description: template.Description,
		Title:       template.Title,
		Content:     template.Content,
		Severity:    template.Severity,
		ImpactScope: template.ImpactScope,
		CreatorID:   template.CreatorID,
		IsPublic:    template.IsPublic,
		UsageCount:  template.UsageCount,
		Tags:        TagModelsToDTOs(template.Tags),
		CreatedAt:   template.CreatedAt,
	}
}

// AuditLogPageToDTO adds the keyset cursor of the last entry when the page is
// full. A short page is the last one.
func AuditLogPageToDTO(paged shared.Paged[models.AuditLog]) dtos.AuditLogPageDTO {
	data := make([]dtos.AuditLogDTO, 0, len(paged.Data))
	for _, entry := range paged.Data {
		data = append(data, AuditLogModelToDTO(entry))
	}

	page := dtos.AuditLogPageDTO{
		Data:       data,
		Pagination: paged.Pagination(),
	}
	if n := len(paged.Data); n > 0 && n == paged.PageSize {
		last := paged.Data[n-1]
		page.NextCursor = &dtos.AuditLogCursor{
			BeforeCreatedAt: last.CreatedAt,
			BeforeID:        last.ID,
		}
	}
	return page
}
