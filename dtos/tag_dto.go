package dtos

import (
	"time"

	"github.com/google/uuid"
)

type TagCreateRequest struct {
	Name  string `json:"name" validate:"required,max=64"`
	Color string `json:"color" validate:"omitempty,hexcolor"`
}

type TagUpdateRequest = TagCreateRequest

type TagDTO struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Slug  string    `json:"slug"`
	Color string    `json:"color"`
}

type TemplateCreateRequest struct {
	Name        string      `json:"name" validate:"required,max=255"`
	Description string      `json:"description" validate:"max=2000"`
	Title       string      `json:"title" validate:"max=255"`
	Content     string      `json:"content" validate:"max=20000"`
	Severity    Severity    `json:"severity" validate:"required,oneof=critical high medium low"`
	ImpactScope string      `json:"impact_scope" validate:"max=2000"`
	IsPublic    bool        `json:"is_public"`
	TagIDs      []uuid.UUID `json:"tag_ids"`
}

type TemplateUpdateRequest = TemplateCreateRequest

type TemplateDTO struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description"`
	Title       string    `json:"title"`
	Content     string    `json:"content"`
	Severity    Severity  `json:"severity"`
	ImpactScope string    `json:"impact_scope"`
	CreatorID   uuid.UUID `json:"creator_id"`
	IsPublic    bool      `json:"is_public"`
	UsageCount  int       `json:"usage_count"`
	Tags        []TagDTO  `json:"tags"`
	CreatedAt   time.Time `json:"created_at"`
}

type AttachmentDTO struct {
	ID         uuid.UUID `json:"id"`
	IncidentID uuid.UUID `json:"incident_id"`
	UploaderID uuid.UUID `json:"uploader_id"`
	FileName   string    `json:"file_name"`
	FileSize   int64     `json:"file_size"`
	MimeType   string    `json:"mime_type"`
	CreatedAt  time.Time `json:"created_at"`
}

type IncidentStatsDTO struct {
	Total              int64                    `json:"total"`
	ByStatus           map[IncidentStatus]int64 `json:"by_status"`
	BySeverity         map[Severity]int64       `json:"by_severity"`
	OpenCritical       int64                    `json:"open_critical"`
	MeanTimeToResolveS float64                  `json:"mean_time_to_resolve_seconds"`
}

// Pagination is the envelope attached to every paged response.
type Pagination struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"total_pages"`
}

type PermissionsDTO struct {
	UserID      uuid.UUID `json:"user_id"`
	Role        string    `json:"role"`
	Permissions []string  `json:"permissions"`
}
