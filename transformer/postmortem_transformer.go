package transformer

import (
	"github.com/l3montree-dev/incidentguard/database/models"
	"github.com/l3montree-dev/incidentguard/dtos"
)

func ActionItemModelToDTO(item models.ActionItem) dtos.ActionItemDTO {
	return dtos.ActionItemDTO{
		ID:           item.ID,
		PostMortemID: item.PostMortemID,
		Title:        item.Title,
		Description:  item.Description,
		AssigneeID:   item.AssigneeID,
		Priority:     item.Priority,
		Status:       item.Status,
		DueDate:      item.DueDate,
		RelatedLinks: item.RelatedLinks,
		CompletedAt:  item.CompletedAt,
		CreatedAt:    item.CreatedAt,
		UpdatedAt:    item.UpdatedAt,
	}
}

func ActionItemModelsToDTOs(items []models.ActionItem) []dtos.ActionItemDTO {
	itemDTOs := make([]dtos.ActionItemDTO, len(items))
	for i, item := range items {
		itemDTOs[i] = ActionItemModelToDTO(item)
	}
	return itemDTOs
}

// PostMortemModelToDTO only includes action items if they were preloaded.
func PostMortemModelToDTO(postMortem models.PostMortem) dtos.PostMortemDTO {
	dto := dtos.PostMortemDTO{
		ID:                    postMortem.ID,
		IncidentID:            postMortem.IncidentID,
		AuthorID:              postMortem.AuthorID,
		Status:                postMortem.Status,
		RootCause:             postMortem.RootCause,
		ImpactAnalysis:        postMortem.ImpactAnalysis,
		WhatWentWell:          postMortem.WhatWentWell,
		WhatWentWrong:         postMortem.WhatWentWrong,
		LessonsLearned:        postMortem.LessonsLearned,
		FiveWhys:              postMortem.FiveWhys.ToDTO(),
		AIRootCauseSuggestion: postMortem.AIRootCauseSuggestion,
		PublishedAt:           postMortem.PublishedAt,
		CreatedAt:             postMortem.CreatedAt,
		UpdatedAt:             postMortem.UpdatedAt,
	}
	if len(postMortem.ActionItems) > 0 {
		dto.ActionItems = ActionItemModelsToDTOs(postMortem.ActionItems)
	}
	return dto
}
