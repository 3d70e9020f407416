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

package services

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/incidentguard/database/models"
	"github.com/l3montree-dev/incidentguard/dtos"
	"github.com/l3montree-dev/incidentguard/monitoring"
	"github.com/l3montree-dev/incidentguard/shared"
	"github.com/pkg/errors"
	"gorm.io/datatypes"
)

type AuditLogService struct {
	auditLogRepository shared.AuditLogRepository
	authorizer         shared.Authorizer
	now                func() time.Time
}

var _ shared.AuditLogService = (*AuditLogService)(nil)

func NewAuditLogService(auditLogRepository shared.AuditLogRepository, authorizer shared.Authorizer) *AuditLogService {
	return &AuditLogService{
		auditLogRepository: auditLogRepository,
		authorizer:         authorizer,
		now:                time.Now,
	}
}

// Record writes the entry inside tx. Callers pass the transaction of the
// mutation so that the entry only exists if the mutation committed.
// A nil claim records an anonymous entry.
func (s *AuditLogService) Record(ctx context.Context, tx shared.DB, claim *shared.Claim, entry shared.AuditEntry) error {
	details := entry.Details
	if details == nil {
		details = map[string]any{}
	}
	raw, err := json.Marshal(details)
	if err != nil {
		return errors.Wrap(err, "could not marshal audit details")
	}

	meta, _ := shared.AuditMetaFromContext(ctx)
	log := models.AuditLog{
		ID:           uuid.Must(uuid.NewV7()),
		Action:       entry.Action,
		ResourceType: entry.ResourceType,
		ResourceID:   entry.ResourceID,
		Method:       meta.Method,
		Path:         meta.Path,
		StatusCode:   meta.StatusCode,
		IPAddress:    meta.IPAddress,
		UserAgent:    meta.UserAgent,
		Details:      datatypes.JSON(raw),
		CreatedAt:    s.now().UTC(),
	}
	if claim != nil && claim.ID != uuid.Nil {
		userID := claim.ID
		log.UserID = &userID
		log.UserName = claim.Name
		log.UserEmail = claim.Email
	}

	if err := s.auditLogRepository.Create(tx, &log); err != nil {
		return err
	}
	monitoring.AuditEntriesAmount.WithLabelValues(string(entry.Action)).Inc()
	return nil
}

func (s *AuditLogService) checkAccess(claim shared.Claim) error {
	if s.authorizer.CanViewAuditLog(claim) {
		return nil
	}
	return denied(shared.PermissionManageUsers, "only admins may read the audit log")
}

func (s *AuditLogService) List(ctx context.Context, claim shared.Claim, pageInfo shared.PageInfo, query dtos.AuditLogListQuery) (shared.Paged[models.AuditLog], error) {
	if err := s.checkAccess(claim); err != nil {
		return shared.Paged[models.AuditLog]{}, err
	}
	if err := validate(query); err != nil {
		return shared.Paged[models.AuditLog]{}, err
	}
	if query.From != nil && query.To != nil && query.From.After(*query.To) {
		return shared.Paged[models.AuditLog]{}, shared.Invalid("from must not be after to")
	}
	if (query.BeforeCreatedAt == nil) != (query.BeforeID == nil) {
		return shared.Paged[models.AuditLog]{}, shared.Invalid("before_created_at and before_id must be given together")
	}
	return s.auditLogRepository.List(pageInfo, query)
}

func (s *AuditLogService) Read(ctx context.Context, claim shared.Claim, id uuid.UUID) (models.AuditLog, error) {
	if err := s.checkAccess(claim); err != nil {
		return models.AuditLog{}, err
	}
	return s.auditLogRepository.Read(id)
}

// auditDetails is a small builder for the details object of an entry.
type auditDetails map[string]any

func (d auditDetails) change(field string, oldValue, newValue any) auditDetails {
	d[field] = map[string]any{"old": oldValue, "new": newValue}
	return d
}
