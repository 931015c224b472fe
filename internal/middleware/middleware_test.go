package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student-portal-svc/internal/models"
	"student-portal-svc/internal/repository"
	"student-portal-svc/internal/session"
	"student-portal-svc/internal/transport"
	"student-portal-svc/internal/viewstate"
	"student-portal-svc/pkg/logger"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestSessions(t *testing.T) *session.Manager {
	t.Helper()

	log := logger.NewNopLogger()
	now := time.Now()
	store, err := repository.NewSeededStore(now)
	require.NoError(t, err)
	svc := viewstate.NewServices(store, transport.NewInstant(log), nil, "http://portal.test", log)

	m := session.NewManager(store.Students, session.Config{Secret: "test-secret", TTL: time.Hour}, func(s models.Student) *viewstate.Portal {
		return viewstate.NewPortal(svc, s, repository.CurrentSemester, log)
	}, log)
	t.Cleanup(m.Close)
	return m
}

func newAuthRouter(m *session.Manager) *gin.Engine {
	r := gin.New()
	r.Use(ErrorHandler(logger.NewNopLogger()))
	r.GET("/me", Auth(m), func(c *gin.Context) {
		s, ok := CurrentSession(c)
		if !ok {
			c.Status(http.StatusInternalServerError)
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"student_id": s.Student.StudentID,
			"token":      transport.TokenFrom(c.Request.Context()),
		})
	})
	r.GET("/panic", func(c *gin.Context) { panic("boom") })
	r.NoRoute(NoRouteHandler())
	return r
}

func TestAuthAcceptsBearerAndCookie(t *testing.T) {
	m := newTestSessions(t)
	s, err := m.Login("SV2021001", repository.DefaultPassword)
	require.NoError(t, err)
	r := newAuthRouter(m)

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer "+s.Token)
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"student_id":"SV2021001"`)
	assert.Contains(t, w.Body.String(), s.Token)

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/me", nil)
	req.AddCookie(&http.Cookie{Name: session.TokenKey, Value: s.Token})
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAuthRejectsMissingAndBadTokens(t *testing.T) {
	r := newAuthRouter(newTestSessions(t))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/me", nil))
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Vui lòng đăng nhập")

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/me", nil)
	req.Header.Set("Authorization", "Bearer not-a-token")
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Contains(t, w.Body.String(), "Phiên đăng nhập không hợp lệ")
}

func TestErrorHandlerRecoversPanics(t *testing.T) {
	r := newAuthRouter(newTestSessions(t))

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/panic", nil))
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), `"success":false`)

	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/nowhere", nil))
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCORSPreflight(t *testing.T) {
	r := gin.New()
	r.Use(CORS([]string{"http://localhost:3000"}))
	r.GET("/ping", func(c *gin.Context) { c.String(http.StatusOK, "pong") })

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodOptions, "/ping", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", http.MethodGet)
	r.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}
