package shared_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/incidentguard/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contextFor(target string) echo.Context {
	return echo.New().NewContext(httptest.NewRequest(http.MethodGet, target, nil), httptest.NewRecorder())
}

func TestGetPageInfoWithLimits(t *testing.T) {
	cases := []struct {
		name   string
		target string
		want   shared.PageInfo
	}{
		{"should use the defaults without query", "/", shared.PageInfo{Page: 1, PageSize: 50}},
		{"should cap the limit", "/?limit=1000&page=3", shared.PageInfo{Page: 3, PageSize: 200}},
		{"should fall back on garbage", "/?limit=abc&page=-2", shared.PageInfo{Page: 1, PageSize: 50}},
		{"should keep a valid limit", "/?limit=20&page=2", shared.PageInfo{Page: 2, PageSize: 20}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, shared.GetPageInfoWithLimits(contextFor(tc.target), 50, 200))
		})
	}
}

func TestPaged(t *testing.T) {
	t.Run("should round the total pages up", func(t *testing.T) {
		paged := shared.NewPaged(shared.PageInfo{Page: 2, PageSize: 10}, 21, []int{1, 2})
		pagination := paged.Pagination()
		assert.Equal(t, 3, pagination.TotalPages)
		assert.Equal(t, int64(21), pagination.Total)
		assert.Equal(t, 10, pagination.Limit)
	})

	t.Run("should never return nil data", func(t *testing.T) {
		paged := shared.NewPaged[string](shared.PageInfo{Page: 1, PageSize: 10}, 0, nil)
		assert.NotNil(t, paged.Data)
		assert.Equal(t, 0, paged.Pagination().TotalPages)
	})

	t.Run("should map the data into the envelope", func(t *testing.T) {
		paged := shared.NewPaged(shared.PageInfo{Page: 1, PageSize: 10}, 2, []int{1, 2})
		envelope := paged.Envelope(func(i int) any { return i * 10 })
		assert.Equal(t, []any{10, 20}, envelope.Data)
	})
}

func TestWithAuditStatus(t *testing.T) {
	t.Run("should keep the request metadata and add the status", func(t *testing.T) {
		ctx := contextFor("/api/v1/tags/")
		meta := shared.AuditMeta{Method: "POST", Path: "/api/v1/tags/", IPAddress: "10.0.0.1"}
		ctx.SetRequest(ctx.Request().WithContext(shared.WithAuditMeta(ctx.Request().Context(), meta)))

		got, ok := shared.AuditMetaFromContext(shared.WithAuditStatus(ctx, http.StatusCreated))
		require.True(t, ok)
		meta.StatusCode = http.StatusCreated
		assert.Equal(t, meta, got)
	})

	t.Run("should work without metadata", func(t *testing.T) {
		got, ok := shared.AuditMetaFromContext(shared.WithAuditStatus(contextFor("/"), http.StatusNoContent))
		require.True(t, ok)
		assert.Equal(t, shared.AuditMeta{StatusCode: http.StatusNoContent}, got)
	})
}

func TestGetUUIDParam(t *testing.T) {
	t.Run("should parse the path parameter", func(t *testing.T) {
		id := uuid.New()
		ctx := contextFor("/")
		ctx.SetParamNames("id")
		ctx.SetParamValues(id.String())

		got, err := shared.GetUUIDParam(ctx, "id")
		require.NoError(t, err)
		assert.Equal(t, id, got)
	})

	t.Run("should fail on a malformed id", func(t *testing.T) {
		ctx := contextFor("/")
		ctx.SetParamNames("id")
		ctx.SetParamValues("42")

		_, err := shared.GetUUIDParam(ctx, "id")
		assert.Error(t, err)
	})
}
