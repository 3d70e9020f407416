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
	"github.com/l3montree-dev/incidentguard/database/models"
	"github.com/l3montree-dev/incidentguard/dtos"
)

func TagModelToDTO(tag models.Tag) dtos.TagDTO {
	return dtos.TagDTO{
		ID:    tag.ID,
		Name:  tag.Name,
		Slug:  tag.Slug,
		Color: tag.Color,
	}
}

func TagModelsToDTOs(tags []models.Tag) []dtos.TagDTO {
	tagDTOs := make([]dtos.TagDTO, len(tags))
	for i, tag := range tags {
		tagDTOs[i] = TagModelToDTO(tag)
	}
	return tagDTOs
}

func IncidentModelToDTO(incident models.Incident) dtos.IncidentDTO {
	return dtos.IncidentDTO{
		ID:          incident.ID,
		Title:       incident.Title,
		Description: incident.Description,
		Summary:     incident.Summary,
		Severity:    incident.Severity,
		Status:      incident.Status,
		ImpactScope: incident.ImpactScope,
		DetectedAt:  incident.DetectedAt,
		ResolvedAt:  incident.ResolvedAt,
		AssigneeID:  incident.AssigneeID,
		CreatorID:   incident.CreatorID,
		Tags:        TagModelsToDTOs(incident.Tags),
		CreatedAt:   incident.CreatedAt,
		UpdatedAt:   incident.UpdatedAt,
	}
}

func ActivityModelToDTO(activity models.IncidentActivity) dtos.ActivityDTO {
	return dtos.ActivityDTO{
		ID:           activity.ID,
		IncidentID:   activity.IncidentID,
		UserID:       activity.UserID,
		ActivityType: activity.ActivityType,
		OldValue:     activity.OldValue,
		NewValue:     activity.NewValue,
		Comment:      activity.Comment,
		EventTime:    activity.EventTime,
		Description:  activity.Describe(),
		CreatedAt:    activity.CreatedAt,
	}
}

func ActivityModelsToDTOs(activities []models.IncidentActivity) []dtos.ActivityDTO {
	activityDTOs := make([]dtos.ActivityDTO, len(activities))
	for i, activity := range activities {
		activityDTOs[i] = ActivityModelToDTO(activity)
	}
	return activityDTOs
}

func AttachmentModelToDTO(attachment models.Attachment) dtos.AttachmentDTO {
	return dtos.AttachmentDTO{
		ID:         attachment.ID,
		IncidentID: attachment.IncidentID,
		UploaderID: attachment.UploaderID,
		FileName:   attachment.FileName,
		FileSize:   attachment.FileSize,
		MimeType:   attachment.MimeType,
		CreatedAt:  attachment.CreatedAt,
	}
}

func AttachmentModelsToDTOs(attachments []models.Attachment) []dtos.AttachmentDTO {
	attachmentDTOs := make([]dtos.AttachmentDTO, len(attachments))
	for i, attachment := range attachments {
		attachmentDTOs[i] = AttachmentModelToDTO(attachment)
	}
	return attachmentDTOs
}
