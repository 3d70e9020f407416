// Copyright (C) 2023 Tim Bastin, l3montree GmbH
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

package shared

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/google/uuid"
	"github.com/l3montree-dev/incidentguard/dtos"
)

func GetSession(ctx Context) AuthSession {
	return ctx.Get("session").(AuthSession)
}

func SetSession(ctx Context, session AuthSession) {
	ctx.Set("session", session)
}

func GetClaim(ctx Context) Claim {
	return GetSession(ctx).GetClaim()
}

func GetUUIDParam(ctx Context, name string) (uuid.UUID, error) {
	raw := SanitizeParam(ctx.Param(name))
	if raw == "" {
		return uuid.Nil, fmt.Errorf("could not get %s", name)
	}
	return uuid.Parse(raw)
}

type PageInfo struct {
	PageSize int `json:"limit"`
	Page     int `json:"page"`
}

func (p PageInfo) ApplyOnDB(db DB) DB {
	return db.Offset((p.Page - 1) * p.PageSize).Limit(p.PageSize)
}

type Paged[T any] struct {
	PageInfo
	Total int64 `json:"total"`
	Data  []T   `json:"data"`
}

func (p Paged[T]) Map(f func(T) any) Paged[any] {
	data := make([]any, len(p.Data))
	for i, d := range p.Data {
		data[i] = f(d)
	}
	return Paged[any]{
		PageInfo: p.PageInfo,
		Total:    p.Total,
		Data:     data,
	}
}

func (p Paged[T]) Pagination() dtos.Pagination {
	totalPages := 0
	if p.PageSize > 0 {
		totalPages = int(math.Ceil(float64(p.Total) / float64(p.PageSize)))
	}
	return dtos.Pagination{
		Page:       p.Page,
		Limit:      p.PageSize,
		Total:      p.Total,
		TotalPages: totalPages,
	}
}

// PagedResponse is the wire shape of every paged list.
type PagedResponse struct {
	Data       any             `json:"data"`
	Pagination dtos.Pagination `json:"pagination"`
}

func (p Paged[T]) Envelope(f func(T) any) PagedResponse {
	return PagedResponse{
		Data:       p.Map(f).Data,
		Pagination: p.Pagination(),
	}
}

func NewPaged[T any](pageInfo PageInfo, total int64, data []T) Paged[T] {
	if data == nil {
		data = []T{}
	}
	return Paged[T]{
		PageInfo: pageInfo,
		Total:    total,
		Data:     data,
	}
}

func GetPageInfo(ctx Context) PageInfo {
	return GetPageInfoWithLimits(ctx, 10, 100)
}

func GetPageInfoWithLimits(ctx Context, defaultLimit, maxLimit int) PageInfo {
	page, _ := strconv.Atoi(ctx.QueryParam("page"))
	if page <= 0 {
		page = 1
	}

	pageSize, _ := strconv.Atoi(ctx.QueryParam("limit"))
	switch {
	case pageSize > maxLimit:
		pageSize = maxLimit
	case pageSize <= 0:
		pageSize = defaultLimit
	}

	return PageInfo{
		Page:     page,
		PageSize: pageSize,
	}
}

// AuditMeta is the request metadata an audit entry is enriched with.
type AuditMeta struct {
	Method     string
	Path       string
	IPAddress  string
	UserAgent  string
	StatusCode int
}

type auditMetaKey struct{}

func WithAuditMeta(ctx context.Context, meta AuditMeta) context.Context {
	return context.WithValue(ctx, auditMetaKey{}, meta)
}

func AuditMetaFromContext(ctx context.Context) (AuditMeta, bool) {
	meta, ok := ctx.Value(auditMetaKey{}).(AuditMeta)
	return meta, ok
}

// WithAuditStatus returns the request context carrying the status code the
// handler answers with on success.
func WithAuditStatus(ctx Context, statusCode int) context.Context {
	c := ctx.Request().Context()
	meta, _ := AuditMetaFromContext(c)
	meta.StatusCode = statusCode
	return WithAuditMeta(c, meta)
}
