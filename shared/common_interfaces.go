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

package shared

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/incidentguard/database/models"
	"github.com/l3montree-dev/incidentguard/dtos"
	"github.com/labstack/echo/v4"
)

type Role string

const (
	RoleAdmin  Role = "admin"
	RoleEditor Role = "editor"
	RoleViewer Role = "viewer"
)

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleEditor || r == RoleViewer
}

type Permission string

const (
	PermissionViewIncidents   Permission = "view_incidents"
	PermissionCreateIncidents Permission = "create_incidents"
	PermissionEditIncidents   Permission = "edit_incidents"
	PermissionDeleteIncidents Permission = "delete_incidents"

	PermissionViewTags          Permission = "view_tags"
	PermissionManageTags        Permission = "manage_tags"
	PermissionViewTemplates     Permission = "view_templates"
	PermissionManageTemplates   Permission = "manage_templates"
	PermissionViewPostMortems   Permission = "view_postmortems"
	PermissionManagePostMortems Permission = "manage_postmortems"

	PermissionViewUsers   Permission = "view_users"
	PermissionManageUsers Permission = "manage_users"

	PermissionViewStats  Permission = "view_stats"
	PermissionExportData Permission = "export_data"
)

// AllPermissions lists every known permission in display order.
var AllPermissions = []Permission{
	PermissionViewIncidents, PermissionCreateIncidents, PermissionEditIncidents, PermissionDeleteIncidents,
	PermissionViewTags, PermissionManageTags,
	PermissionViewTemplates, PermissionManageTemplates,
	PermissionViewPostMortems, PermissionManagePostMortems,
	PermissionViewUsers, PermissionManageUsers,
	PermissionViewStats, PermissionExportData,
}

// Claim is the verified identity handed over by the authentication boundary.
type Claim struct {
	ID    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	Email string    `json:"email"`
	Role  Role      `json:"role"`
}

type AuthSession interface {
	GetUserID() uuid.UUID
	GetRole() Role
	GetClaim() Claim
	IsAuthenticated() bool
}

// Authorizer is the single place every mutating entry point asks.
// All methods are pure and fail closed.
type Authorizer interface {
	HasPermission(role Role, permission Permission) bool
	HasAny(role Role, permissions ...Permission) bool
	HasAll(role Role, permissions ...Permission) bool
	PermissionsOf(role Role) []Permission

	CanEditIncident(claim Claim, incident models.Incident) bool
	CanDeleteIncident(claim Claim) bool
	CanDeleteAttachment(claim Claim, attachment models.Attachment) bool
	CanEditPostMortem(claim Claim, postMortem models.PostMortem) bool
	CanDeletePostMortem(claim Claim) bool
	CanManageTemplate(claim Claim, template models.IncidentTemplate) bool
	CanViewAuditLog(claim Claim) bool
}

type RBACMiddleware = func(permissions ...Permission) echo.MiddlewareFunc

// Transactor runs f inside a database transaction. The transaction is
// committed if f returns nil and rolled back otherwise.
type Transactor interface {
	Transaction(f func(tx DB) error) error
	GetDB(tx DB) DB
}

type IncidentRepository interface {
	Transactor
	Create(tx DB, incident *models.Incident) error
	Save(tx DB, incident *models.Incident) error
	Read(tx DB, id uuid.UUID) (models.Incident, error)
	ReadForUpdate(tx DB, id uuid.UUID) (models.Incident, error)
	Delete(tx DB, id uuid.UUID) error
	ReplaceTags(tx DB, incident *models.Incident, tagIDs []uuid.UUID) error
	List(pageInfo PageInfo, query dtos.IncidentListQuery) (Paged[models.Incident], error)

	CountByStatus(ctx context.Context) (map[dtos.IncidentStatus]int64, error)
	CountBySeverity(ctx context.Context) (map[dtos.Severity]int64, error)
	CountOpenCritical(ctx context.Context) (int64, error)
	MeanTimeToResolve(ctx context.Context) (time.Duration, error)
}

// ActivityRepository has no update or delete on purpose.
type ActivityRepository interface {
	CreateBatch(tx DB, activities []models.IncidentActivity) error
	ListByIncidentID(tx DB, incidentID uuid.UUID) ([]models.IncidentActivity, error)
	ListRecent(limit int) ([]models.IncidentActivity, error)
}

type PostMortemRepository interface {
	Transactor
	Create(tx DB, postMortem *models.PostMortem) error
	Save(tx DB, postMortem *models.PostMortem) error
	Read(tx DB, id uuid.UUID) (models.PostMortem, error)
	ReadForUpdate(tx DB, id uuid.UUID) (models.PostMortem, error)
	ReadByIncidentID(tx DB, incidentID uuid.UUID) (models.PostMortem, error)
	Delete(tx DB, id uuid.UUID) error
	List(pageInfo PageInfo, query dtos.PostMortemListQuery) (Paged[models.PostMortem], error)
}

type ActionItemRepository interface {
	Create(tx DB, item *models.ActionItem) error
	Save(tx DB, item *models.ActionItem) error
	Read(tx DB, id uuid.UUID) (models.ActionItem, error)
	Delete(tx DB, id uuid.UUID) error
	ListByPostMortemID(tx DB, postMortemID uuid.UUID) ([]models.ActionItem, error)
	List(pageInfo PageInfo, query dtos.ActionItemListQuery) (Paged[models.ActionItem], error)
}

type AuditLogRepository interface {
	Create(tx DB, entry *models.AuditLog) error
	Read(id uuid.UUID) (models.AuditLog, error)
	List(pageInfo PageInfo, query dtos.AuditLogListQuery) (Paged[models.AuditLog], error)
}

type NotificationSettingRepository interface {
	Transactor
	// Read returns the default settings if the user never stored any.
	Read(tx DB, userID uuid.UUID) (models.NotificationSetting, error)
	Upsert(tx DB, setting *models.NotificationSetting) error
}

type NotificationIntentRepository interface {
	CreateBatch(tx DB, intents []models.NotificationIntent) error
}

type TagRepository interface {
	Transactor
	Create(tx DB, tag *models.Tag) error
	Save(tx DB, tag *models.Tag) error
	Read(id uuid.UUID) (models.Tag, error)
	Delete(tx DB, id uuid.UUID) error
	All() ([]models.Tag, error)
	List(ids []uuid.UUID) ([]models.Tag, error)
	// ResolveSlug makes the slug of the tag unique by appending a counter.
	ResolveSlug(tx DB, tag *models.Tag) error
}

type TemplateRepository interface {
	Transactor
	Create(tx DB, template *models.IncidentTemplate) error
	Save(tx DB, template *models.IncidentTemplate) error
	Read(tx DB, id uuid.UUID) (models.IncidentTemplate, error)
	Delete(tx DB, id uuid.UUID) error
	ReplaceTags(tx DB, template *models.IncidentTemplate, tagIDs []uuid.UUID) error
	ListVisible(userID uuid.UUID, pageInfo PageInfo) (Paged[models.IncidentTemplate], error)
	IncrementUsage(tx DB, id uuid.UUID) error
}

type AttachmentRepository interface {
	Transactor
	Create(tx DB, attachment *models.Attachment) error
	Read(tx DB, id uuid.UUID) (models.Attachment, error)
	Delete(tx DB, id uuid.UUID) error
	ListByIncidentID(incidentID uuid.UUID) ([]models.Attachment, error)
}

type IncidentService interface {
	Create(ctx context.Context, claim Claim, req dtos.IncidentCreateRequest) (models.Incident, error)
	Read(ctx context.Context, claim Claim, id uuid.UUID) (models.Incident, error)
	List(ctx context.Context, claim Claim, pageInfo PageInfo, query dtos.IncidentListQuery) (Paged[models.Incident], error)
	Update(ctx context.Context, claim Claim, id uuid.UUID, req dtos.IncidentUpdateRequest) (models.Incident, error)
	Assign(ctx context.Context, claim Claim, id uuid.UUID, assigneeID *uuid.UUID) (models.Incident, error)
	Delete(ctx context.Context, claim Claim, id uuid.UUID) error
	RegenerateSummary(ctx context.Context, claim Claim, id uuid.UUID) (models.Incident, error)
}

type ActivityService interface {
	AddComment(ctx context.Context, claim Claim, incidentID uuid.UUID, comment string) (models.IncidentActivity, error)
	AddTimelineEvent(ctx context.Context, claim Claim, incidentID uuid.UUID, req dtos.TimelineEventCreateRequest) (models.IncidentActivity, error)
	List(ctx context.Context, claim Claim, incidentID uuid.UUID) ([]models.IncidentActivity, error)
	ListRecent(ctx context.Context, claim Claim, limit int) ([]models.IncidentActivity, error)
}

type PostMortemService interface {
	Create(ctx context.Context, claim Claim, req dtos.PostMortemCreateRequest) (models.PostMortem, error)
	Read(ctx context.Context, claim Claim, id uuid.UUID) (models.PostMortem, error)
	ReadByIncidentID(ctx context.Context, claim Claim, incidentID uuid.UUID) (models.PostMortem, error)
	List(ctx context.Context, claim Claim, pageInfo PageInfo, query dtos.PostMortemListQuery) (Paged[models.PostMortem], error)
	Update(ctx context.Context, claim Claim, id uuid.UUID, req dtos.PostMortemUpdateRequest) (models.PostMortem, error)
	Publish(ctx context.Context, claim Claim, id uuid.UUID) (models.PostMortem, error)
	Delete(ctx context.Context, claim Claim, id uuid.UUID) error
	GenerateAISuggestion(ctx context.Context, claim Claim, id uuid.UUID) (models.PostMortem, error)
}

type ActionItemService interface {
	Create(ctx context.Context, claim Claim, postMortemID uuid.UUID, req dtos.ActionItemCreateRequest) (models.ActionItem, error)
	Update(ctx context.Context, claim Claim, id uuid.UUID, req dtos.ActionItemUpdateRequest) (models.ActionItem, error)
	Delete(ctx context.Context, claim Claim, id uuid.UUID) error
	ListByPostMortemID(ctx context.Context, claim Claim, postMortemID uuid.UUID) ([]models.ActionItem, error)
	List(ctx context.Context, claim Claim, pageInfo PageInfo, query dtos.ActionItemListQuery) (Paged[models.ActionItem], error)
}

// AuditEntry describes a committed mutation. Request metadata is taken
// from the context.
type AuditEntry struct {
	Action       dtos.AuditAction
	ResourceType string
	ResourceID   *uuid.UUID
	Details      map[string]any
}

type AuditLogService interface {
	Record(ctx context.Context, tx DB, claim *Claim, entry AuditEntry) error
	List(ctx context.Context, claim Claim, pageInfo PageInfo, query dtos.AuditLogListQuery) (Paged[models.AuditLog], error)
	Read(ctx context.Context, claim Claim, id uuid.UUID) (models.AuditLog, error)
}

// NotificationEvent is the input of the dispatcher. Actor is excluded from
// the recipients.
type NotificationEvent struct {
	Type     dtos.NotificationEventType
	Incident models.Incident
	Actor    Claim
	Payload  map[string]any
}

type NotificationService interface {
	// Dispatch persists the intents inside tx. Publish hands them to the
	// delivery side and must only be called after tx committed.
	Dispatch(ctx context.Context, tx DB, events ...NotificationEvent) ([]models.NotificationIntent, error)
	Publish(ctx context.Context, intents []models.NotificationIntent)
	GetSetting(ctx context.Context, claim Claim) (models.NotificationSetting, error)
	UpdateSetting(ctx context.Context, claim Claim, req dtos.NotificationSettingUpdateRequest) (models.NotificationSetting, error)
}

// RootCauseSuggester produces an advisory root cause text.
type RootCauseSuggester interface {
	SuggestRootCause(ctx context.Context, incident models.Incident, activities []models.IncidentActivity) (string, error)
	Summarize(ctx context.Context, incident models.Incident, activities []models.IncidentActivity) (string, error)
}

// SuggestionLimiter bounds how often a user may trigger text generation.
type SuggestionLimiter interface {
	Allow(userID uuid.UUID) bool
}

type TagService interface {
	List(ctx context.Context, claim Claim) ([]models.Tag, error)
	Create(ctx context.Context, claim Claim, req dtos.TagCreateRequest) (models.Tag, error)
	Update(ctx context.Context, claim Claim, id uuid.UUID, req dtos.TagUpdateRequest) (models.Tag, error)
	Delete(ctx context.Context, claim Claim, id uuid.UUID) error
}

type TemplateService interface {
	List(ctx context.Context, claim Claim, pageInfo PageInfo) (Paged[models.IncidentTemplate], error)
	Read(ctx context.Context, claim Claim, id uuid.UUID) (models.IncidentTemplate, error)
	Create(ctx context.Context, claim Claim, req dtos.TemplateCreateRequest) (models.IncidentTemplate, error)
	Update(ctx context.Context, claim Claim, id uuid.UUID, req dtos.TemplateUpdateRequest) (models.IncidentTemplate, error)
	Delete(ctx context.Context, claim Claim, id uuid.UUID) error
	Use(ctx context.Context, claim Claim, id uuid.UUID) (dtos.IncidentCreateRequest, error)
}

// BlobStore keeps attachment contents. Errors are treated as transient.
type BlobStore interface {
	Put(ctx context.Context, key string, r io.Reader, maxBytes int64) (int64, error)
	Get(ctx context.Context, key string) (io.ReadCloser, error)
	Delete(ctx context.Context, key string) error
}

type AttachmentUpload struct {
	FileName string
	MimeType string
	Size     int64
	Content  io.Reader
}

type AttachmentService interface {
	Upload(ctx context.Context, claim Claim, incidentID uuid.UUID, upload AttachmentUpload) (models.Attachment, error)
	List(ctx context.Context, claim Claim, incidentID uuid.UUID) ([]models.Attachment, error)
	Open(ctx context.Context, claim Claim, incidentID, id uuid.UUID) (models.Attachment, io.ReadCloser, error)
	Delete(ctx context.Context, claim Claim, incidentID, id uuid.UUID) error
}

type StatisticsService interface {
	GetIncidentStats(ctx context.Context, claim Claim) (dtos.IncidentStatsDTO, error)
}
