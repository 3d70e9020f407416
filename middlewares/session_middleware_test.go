package middlewares

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/l3montree-dev/incidentguard/accesscontrol"
	"github.com/l3montree-dev/incidentguard/dtos"
	"github.com/l3montree-dev/incidentguard/mocks"
	"github.com/l3montree-dev/incidentguard/shared"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newVerifier(t *testing.T) *accesscontrol.TokenVerifier {
	verifier, err := accesscontrol.NewTokenVerifier([]byte("test-secret"))
	require.NoError(t, err)
	return verifier
}

func TestSessionMiddleware(t *testing.T) {
	claim := shared.Claim{ID: uuid.New(), Name: "Ada", Email: "ada@example.com", Role: shared.RoleEditor}

	t.Run("should set the session of a verified token", func(t *testing.T) {
		verifier := newVerifier(t)
		token, err := verifier.Issue(claim, time.Hour)
		require.NoError(t, err)

		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
		c := e.NewContext(req, httptest.NewRecorder())

		mw := SessionMiddleware(verifier, mocks.NewAuditLogService(t))

		var called bool
		handler := mw(func(ctx echo.Context) error {
			called = true
			sess := shared.GetSession(ctx)
			assert.True(t, sess.IsAuthenticated())
			assert.Equal(t, claim, sess.GetClaim())
			return nil
		})

		require.NoError(t, handler(c))
		assert.True(t, called)
	})

	t.Run("should set no session without an authorization header", func(t *testing.T) {
		e := echo.New()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

		mw := SessionMiddleware(newVerifier(t), mocks.NewAuditLogService(t))

		var called bool
		handler := mw(func(ctx echo.Context) error {
			called = true
			assert.Equal(t, accesscontrol.NoSession, shared.GetSession(ctx))
			assert.False(t, shared.GetSession(ctx).IsAuthenticated())
			return nil
		})

		require.NoError(t, handler(c))
		assert.True(t, called)
	})

	t.Run("should answer 401 and record a failed login for an invalid token", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/incidents/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Bearer not-a-jwt")
		req = req.WithContext(shared.WithAuditMeta(req.Context(), shared.AuditMeta{Method: "GET", Path: "/api/v1/incidents/"}))
		c := e.NewContext(req, httptest.NewRecorder())

		audit := mocks.NewAuditLogService(t)
		audit.On("Record", mock.MatchedBy(func(ctx context.Context) bool {
			meta, _ := shared.AuditMetaFromContext(ctx)
			return meta.StatusCode == http.StatusUnauthorized && meta.Path == "/api/v1/incidents/"
		}), mock.Anything, (*shared.Claim)(nil), mock.MatchedBy(func(e shared.AuditEntry) bool {
			return e.Action == dtos.AuditActionLogin && e.ResourceType == "auth"
		})).Return(nil)

		mw := SessionMiddleware(newVerifier(t), audit)
		err := mw(func(ctx echo.Context) error {
			t.Fatal("handler must not be called")
			return nil
		})(c)

		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusUnauthorized, he.Code)
	})

	t.Run("should treat another scheme as a failed login", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(echo.HeaderAuthorization, "Basic dXNlcjpwYXNz")
		c := e.NewContext(req, httptest.NewRecorder())

		audit := mocks.NewAuditLogService(t)
		audit.On("Record", mock.Anything, mock.Anything, (*shared.Claim)(nil), mock.Anything).Return(errors.New("db down"))

		err := SessionMiddleware(newVerifier(t), audit)(func(ctx echo.Context) error { return nil })(c)

		var he *echo.HTTPError
		require.ErrorAs(t, err, &he)
		assert.Equal(t, http.StatusUnauthorized, he.Code)
	})
}

func TestAuditContext(t *testing.T) {
	t.Run("should store the request metadata in the request context", func(t *testing.T) {
		e := echo.New()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/tags/", nil)
		req.Header.Set("User-Agent", "curl/8.0")
		req.Header.Set(echo.HeaderXForwardedFor, "203.0.113.7")
		c := e.NewContext(req, httptest.NewRecorder())

		err := AuditContext()(func(ctx echo.Context) error {
			meta, ok := shared.AuditMetaFromContext(ctx.Request().Context())
			require.True(t, ok)
			assert.Equal(t, shared.AuditMeta{Method: "POST", Path: "/api/v1/tags/", IPAddress: "203.0.113.7", UserAgent: "curl/8.0"}, meta)
			return nil
		})(c)
		require.NoError(t, err)
	})
}
