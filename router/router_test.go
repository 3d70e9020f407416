package router

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/incidentguard/accesscontrol"
	"github.com/l3montree-dev/incidentguard/controllers"
	"github.com/l3montree-dev/incidentguard/database/models"
	"github.com/l3montree-dev/incidentguard/mocks"
	"github.com/l3montree-dev/incidentguard/shared"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type testServer struct {
	e               *echo.Echo
	verifier        *accesscontrol.TokenVerifier
	auditLogService *mocks.AuditLogService
	tagService      *mocks.TagService
}

func newTestServer(t *testing.T) testServer {
	t.Setenv("API_RATE_LIMIT", "1000")

	verifier, err := accesscontrol.NewTokenVerifier([]byte("router-secret"))
	require.NoError(t, err)
	authorizer, err := accesscontrol.NewCasbinAuthorizer()
	require.NoError(t, err)

	auditLogService := mocks.NewAuditLogService(t)
	tagService := mocks.NewTagService(t)
	incidentService := mocks.NewIncidentService(t)
	postMortemService := mocks.NewPostMortemService(t)

	e := echo.New()
	apiV1Router := NewAPIV1Router(e, nil, nil, nil)
	sessionRouter := NewSessionRouter(apiV1Router, verifier, auditLogService, authorizer, controllers.NewSessionController(authorizer, auditLogService))
	NewIncidentRouter(sessionRouter,
		controllers.NewIncidentController(incidentService),
		controllers.NewActivityController(mocks.NewActivityService(t)),
		controllers.NewAttachmentController(mocks.NewAttachmentService(t)),
		controllers.NewPostMortemController(postMortemService),
	)
	NewPostMortemRouter(sessionRouter,
		controllers.NewPostMortemController(postMortemService),
		controllers.NewActionItemController(mocks.NewActionItemService(t)),
	)
	NewCatalogRouter(sessionRouter, controllers.NewTagController(tagService), controllers.NewTemplateController(mocks.NewTemplateService(t)))
	NewAuditLogRouter(sessionRouter, controllers.NewAuditLogController(auditLogService))
	NewUserSettingsRouter(sessionRouter,
		controllers.NewNotificationSettingController(mocks.NewNotificationService(t)),
		controllers.NewStatisticsController(mocks.NewStatisticsService(t)),
	)

	return testServer{e: e, verifier: verifier, auditLogService: auditLogService, tagService: tagService}
}

func (s testServer) do(t *testing.T, method, target string, role shared.Role) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	if role != "" {
		token, err := s.verifier.Issue(shared.Claim{ID: uuid.New(), Name: "Grace", Email: "grace@example.com", Role: role}, time.Minute)
		require.NoError(t, err)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	s.e.ServeHTTP(rec, req)
	return rec
}

func TestRouter(t *testing.T) {
	t.Run("should answer 401 on a protected route without a token", func(t *testing.T) {
		s := newTestServer(t)
		assert.Equal(t, http.StatusUnauthorized, s.do(t, http.MethodGet, "/api/v1/incidents/", "").Code)
	})

	t.Run("should deny a viewer to create incidents before reaching the service", func(t *testing.T) {
		s := newTestServer(t)
		assert.Equal(t, http.StatusForbidden, s.do(t, http.MethodPost, "/api/v1/incidents/", shared.RoleViewer).Code)
	})

	t.Run("should deny a viewer to delete tags", func(t *testing.T) {
		s := newTestServer(t)
		assert.Equal(t, http.StatusForbidden, s.do(t, http.MethodDelete, "/api/v1/tags/"+uuid.NewString()+"/", shared.RoleViewer).Code)
	})

	t.Run("should let a viewer list tags", func(t *testing.T) {
		s := newTestServer(t)
		s.tagService.On("List", mock.Anything, mock.MatchedBy(func(c shared.Claim) bool {
			return c.Role == shared.RoleViewer
		})).Return([]models.Tag{}, nil)

		rec := s.do(t, http.MethodGet, "/api/v1/tags/", shared.RoleViewer)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, "[]", rec.Body.String())
	})

	t.Run("should keep the audit log from editors", func(t *testing.T) {
		s := newTestServer(t)
		assert.Equal(t, http.StatusForbidden, s.do(t, http.MethodGet, "/api/v1/audit-logs/", shared.RoleEditor).Code)
	})

	t.Run("should serve the audit log to admins", func(t *testing.T) {
		s := newTestServer(t)
		s.auditLogService.On("List", mock.Anything, mock.Anything, shared.PageInfo{Page: 1, PageSize: 50}, mock.Anything).
			Return(shared.NewPaged(shared.PageInfo{Page: 1, PageSize: 50}, 0, []models.AuditLog{}), nil)

		rec := s.do(t, http.MethodGet, "/api/v1/audit-logs/", shared.RoleAdmin)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.JSONEq(t, `{"data":[],"pagination":{"page":1,"limit":50,"total":0,"total_pages":0}}`, rec.Body.String())
	})

	t.Run("should list the permissions of the session", func(t *testing.T) {
		s := newTestServer(t)
		rec := s.do(t, http.MethodGet, "/api/v1/me/permissions/", shared.RoleViewer)
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), string(shared.PermissionViewIncidents))
		assert.NotContains(t, rec.Body.String(), string(shared.PermissionManageUsers))
	})

	t.Run("should serve metrics without a session", func(t *testing.T) {
		s := newTestServer(t)
		assert.Equal(t, http.StatusOK, s.do(t, http.MethodGet, "/api/v1/metrics/", "").Code)
	})

	t.Run("should keep server info from non admins", func(t *testing.T) {
		s := newTestServer(t)
		assert.Equal(t, http.StatusForbidden, s.do(t, http.MethodGet, "/api/v1/info/", shared.RoleEditor).Code)
	})
}
