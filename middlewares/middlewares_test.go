package middlewares

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/l3montree-dev/incidentguard/accesscontrol"
	"github.com/l3montree-dev/incidentguard/shared"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func contextWithSession(session shared.AuthSession) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	rec := httptest.NewRecorder()
	c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)
	shared.SetSession(c, session)
	return c, rec
}

func ok(ctx echo.Context) error {
	return ctx.NoContent(http.StatusOK)
}

func statusOf(t *testing.T, err error) int {
	if err == nil {
		return http.StatusOK
	}
	var he *echo.HTTPError
	require.ErrorAs(t, err, &he)
	return he.Code
}

func TestPermissionGuard(t *testing.T) {
	authorizer, err := accesscontrol.NewCasbinAuthorizer()
	require.NoError(t, err)
	guard := PermissionGuard(authorizer)

	cases := []struct {
		name       string
		session    shared.AuthSession
		permission shared.Permission
		want       int
	}{
		{"should answer 401 without a session", accesscontrol.NoSession, shared.PermissionViewIncidents, http.StatusUnauthorized},
		{"should let a viewer view incidents", accesscontrol.NewSession(shared.Claim{ID: uuid.New(), Role: shared.RoleViewer}), shared.PermissionViewIncidents, http.StatusOK},
		{"should deny a viewer to create incidents", accesscontrol.NewSession(shared.Claim{ID: uuid.New(), Role: shared.RoleViewer}), shared.PermissionCreateIncidents, http.StatusForbidden},
		{"should let an editor manage post-mortems", accesscontrol.NewSession(shared.Claim{ID: uuid.New(), Role: shared.RoleEditor}), shared.PermissionManagePostMortems, http.StatusOK},
		{"should deny an editor to manage users", accesscontrol.NewSession(shared.Claim{ID: uuid.New(), Role: shared.RoleEditor}), shared.PermissionManageUsers, http.StatusForbidden},
		{"should let an admin manage users", accesscontrol.NewSession(shared.Claim{ID: uuid.New(), Role: shared.RoleAdmin}), shared.PermissionManageUsers, http.StatusOK},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			c, _ := contextWithSession(tc.session)
			assert.Equal(t, tc.want, statusOf(t, guard(tc.permission)(ok)(c)))
		})
	}
}

func TestClaimGuard(t *testing.T) {
	authorizer, err := accesscontrol.NewCasbinAuthorizer()
	require.NoError(t, err)
	adminOnly := ClaimGuard(authorizer.CanViewAuditLog, "only admins may read the audit log")

	t.Run("should deny an editor", func(t *testing.T) {
		c, _ := contextWithSession(accesscontrol.NewSession(shared.Claim{ID: uuid.New(), Role: shared.RoleEditor}))
		assert.Equal(t, http.StatusForbidden, statusOf(t, adminOnly(ok)(c)))
	})

	t.Run("should allow an admin", func(t *testing.T) {
		c, _ := contextWithSession(accesscontrol.NewSession(shared.Claim{ID: uuid.New(), Role: shared.RoleAdmin}))
		assert.Equal(t, http.StatusOK, statusOf(t, adminOnly(ok)(c)))
	})
}

func TestRateLimit(t *testing.T) {
	t.Run("should deny once the burst of a user is used up", func(t *testing.T) {
		limiter := RateLimit(1)
		session := accesscontrol.NewSession(shared.Claim{ID: uuid.New(), Role: shared.RoleViewer})

		codes := make([]int, 0, 3)
		for range 3 {
			c, _ := contextWithSession(session)
			codes = append(codes, statusOf(t, limiter(ok)(c)))
		}
		assert.Equal(t, []int{http.StatusOK, http.StatusOK, http.StatusTooManyRequests}, codes)
	})

	t.Run("should keep separate budgets per user", func(t *testing.T) {
		limiter := RateLimit(0.5)
		for range 2 {
			c, _ := contextWithSession(accesscontrol.NewSession(shared.Claim{ID: uuid.New(), Role: shared.RoleViewer}))
			assert.Equal(t, http.StatusOK, statusOf(t, limiter(ok)(c)))
		}
	})
}

func TestErrorHandler(t *testing.T) {
	e := echo.New()
	handler := errorHandler(e)

	t.Run("should write the message of an http error as json", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		handler(echo.NewHTTPError(http.StatusConflict, "post-mortem is published"), c)

		assert.Equal(t, http.StatusConflict, rec.Code)
		var body map[string]any
		require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
		assert.Equal(t, "post-mortem is published", body["message"])
	})

	t.Run("should hide plain errors behind a 500", func(t *testing.T) {
		rec := httptest.NewRecorder()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), rec)

		handler(errors.New("pq: connection refused"), c)

		assert.Equal(t, http.StatusInternalServerError, rec.Code)
		assert.NotContains(t, rec.Body.String(), "connection refused")
	})
}

func TestRecoverMiddleware(t *testing.T) {
	t.Run("should turn a panic into a 500", func(t *testing.T) {
		c, _ := contextWithSession(accesscontrol.NoSession)
		err := recovermiddleware()(func(ctx echo.Context) error {
			panic("nil map")
		})(c)
		assert.Equal(t, http.StatusInternalServerError, statusOf(t, err))
	})
}
