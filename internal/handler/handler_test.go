package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"student-portal-svc/internal/middleware"
	"student-portal-svc/internal/models"
	"student-portal-svc/internal/repository"
	"student-portal-svc/internal/session"
	"student-portal-svc/internal/toast"
	"student-portal-svc/internal/transport"
	"student-portal-svc/internal/viewstate"
	"student-portal-svc/pkg/logger"
	"student-portal-svc/pkg/utils"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Error   string          `json:"error"`
}

type testServer struct {
	router *gin.Engine
	token  string
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	log := logger.NewNopLogger()
	store, err := repository.NewSeededStore(time.Now())
	require.NoError(t, err)
	svc := viewstate.NewServices(store, transport.NewInstant(log), nil, "http://portal.test", log)

	sessions := session.NewManager(store.Students, session.Config{Secret: "test-secret", TTL: time.Hour}, func(s models.Student) *viewstate.Portal {
		return viewstate.NewPortal(svc, s, repository.CurrentSemester, log)
	}, log)
	t.Cleanup(sessions.Close)

	router := gin.New()
	router.Use(middleware.ErrorHandler(log))
	router.NoRoute(middleware.NoRouteHandler())
	SetupRoutes(router, sessions, svc.Exports, log)

	srv := &testServer{router: router}
	w := srv.do(t, http.MethodPost, "/api/v1/auth/login", models.LoginRequest{StudentID: "SV2021001", Password: repository.DefaultPassword})
	require.Equal(t, http.StatusOK, w.Code)

	var login LoginResponse
	decode(t, w, &login)
	srv.token = login.Token
	return srv
}

func (s *testServer) do(t *testing.T, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}

	w := httptest.NewRecorder()
	s.router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, data interface{}) envelope {
	t.Helper()

	var env envelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env))
	if data != nil {
		require.NoError(t, json.Unmarshal(env.Data, data))
	}
	return env
}

func TestHealthCheck(t *testing.T) {
	srv := newTestServer(t)
	w := srv.do(t, http.MethodGet, "/api/v1/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Student Portal Service")
}

func TestLoginFailures(t *testing.T) {
	srv := newTestServer(t)
	srv.token = ""

	w := srv.do(t, http.MethodPost, "/api/v1/auth/login", models.LoginRequest{StudentID: "SV2021001", Password: "nope"})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = srv.do(t, http.MethodPost, "/api/v1/auth/login", map[string]string{"student_id": "SV2021001"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = srv.do(t, http.MethodGet, "/api/v1/debts", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestMeAndLogout(t *testing.T) {
	srv := newTestServer(t)

	var student models.Student
	decode(t, srv.do(t, http.MethodGet, "/api/v1/auth/me", nil), &student)
	assert.Equal(t, "SV2021001", student.StudentID)

	w := srv.do(t, http.MethodPost, "/api/v1/auth/logout", nil)
	assert.Equal(t, http.StatusOK, w.Code)

	w = srv.do(t, http.MethodGet, "/api/v1/auth/me", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGetDebtsWithFilter(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(t, http.MethodGet, "/api/v1/debts?status=unpaid", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var snap viewstate.DebtSnapshot
	decode(t, w, &snap)
	require.Len(t, snap.List.Items, 1)
	assert.Equal(t, "HP2023-2024-2", snap.List.Items[0].DebtCode)
	require.NotNil(t, snap.Summary.Data)

	w = srv.do(t, http.MethodGet, "/api/v1/debts?status=lost", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	env := decode(t, w, nil)
	assert.Equal(t, viewstate.InvalidFilterMessage, env.Message)
}

func TestGetDebtDetail(t *testing.T) {
	srv := newTestServer(t)

	var item models.DebtItem
	decode(t, srv.do(t, http.MethodGet, "/api/v1/debts/debt-003", nil), &item)
	assert.Equal(t, models.StatusOverdue, item.Status)

	w := srv.do(t, http.MethodGet, "/api/v1/debts/debt-404", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, viewstate.NotFoundMessage, decode(t, w, nil).Message)
}

func TestPayDebt(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(t, http.MethodPost, "/api/v1/debts/pay", models.PaymentRequest{EntityID: "debt-001", Amount: 12500000, Method: models.MethodCard})
	require.Equal(t, http.StatusOK, w.Code)
	var tx models.PaymentTransaction
	env := decode(t, w, &tx)
	assert.Equal(t, viewstate.PaySuccessMessage, env.Message)
	assert.Equal(t, "debt-001", tx.EntityID)

	w = srv.do(t, http.MethodPost, "/api/v1/debts/pay", models.PaymentRequest{EntityID: "debt-002", Amount: 680400, Method: models.MethodCard})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, viewstate.AlreadyPaidMessage, decode(t, w, nil).Message)

	w = srv.do(t, http.MethodPost, "/api/v1/debts/pay", models.PaymentRequest{EntityID: "debt-001", Amount: 1000, Method: "cash"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, viewstate.InvalidMethodMessage, decode(t, w, nil).Message)
}

func TestDepositMinimum(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(t, http.MethodPost, "/api/v1/deposits", models.DepositRequest{Amount: 5000, Method: models.MethodCard})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, viewstate.DepositMinimumMessage, decode(t, w, nil).Message)

	w = srv.do(t, http.MethodPost, "/api/v1/deposits", models.DepositRequest{Amount: 200000, Method: models.MethodBankTransfer})
	assert.Equal(t, http.StatusCreated, w.Code)

	var snap viewstate.DepositSnapshot
	decode(t, srv.do(t, http.MethodGet, "/api/v1/deposits", nil), &snap)
	require.NotNil(t, snap.Balance.Data)
	assert.Equal(t, int64(1450000), snap.Balance.Data.Balance)
}

func TestTuitionExportAndDownload(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(t, http.MethodGet, "/api/v1/tuition?semester="+url.QueryEscape(repository.CurrentSemester), nil)
	require.Equal(t, http.StatusOK, w.Code)
	var snap viewstate.TuitionSnapshot
	decode(t, w, &snap)
	assert.Len(t, snap.List.Items, 4)

	w = srv.do(t, http.MethodPost, "/api/v1/tuition/export", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var export ExportResponse
	decode(t, w, &export)

	link, err := url.Parse(export.URL)
	require.NoError(t, err)
	w = srv.do(t, http.MethodGet, link.Path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Disposition"), "attachment")

	f, err := excelize.OpenReader(bytes.NewReader(w.Body.Bytes()))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(f.GetSheetName(0))
	require.NoError(t, err)
	assert.Len(t, rows, 6)
}

func TestTuitionPayAndReceipt(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(t, http.MethodPost, "/api/v1/tuition/pay", models.PaymentRequest{EntityID: "tui-002", Amount: 1650000, Method: models.MethodEWallet})
	require.Equal(t, http.StatusOK, w.Code)
	var tx models.PaymentTransaction
	decode(t, w, &tx)

	var receipt ReceiptResponse
	decode(t, srv.do(t, http.MethodGet, "/api/v1/tuition/receipts/"+tx.ID, nil), &receipt)
	assert.Equal(t, tx.ReceiptURL, receipt.ReceiptURL)

	w = srv.do(t, http.MethodGet, "/api/v1/tuition/receipts/missing", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSemesterPlanRoutes(t *testing.T) {
	srv := newTestServer(t)
	path := "/api/v1/semester-plans/" + url.PathEscape(repository.CurrentSemester)

	w := srv.do(t, http.MethodGet, path, nil)
	require.Equal(t, http.StatusOK, w.Code)

	w = srv.do(t, http.MethodPost, path+"/courses", models.AddPlannedCourseRequest{CourseCode: "INT3507", CourseName: "Các vấn đề hiện đại", Credits: 3})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = srv.do(t, http.MethodPost, path+"/courses", models.AddPlannedCourseRequest{CourseCode: "INT3507", CourseName: "Các vấn đề hiện đại", Credits: 3})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, viewstate.PlanDuplicateMessage, decode(t, w, nil).Message)

	w = srv.do(t, http.MethodGet, "/api/v1/semester-plans/HK9", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestToastsFollowActions(t *testing.T) {
	srv := newTestServer(t)

	srv.do(t, http.MethodPost, "/api/v1/deposits", models.DepositRequest{Amount: 5000, Method: models.MethodCard})

	var toasts []struct {
		ID      string `json:"id"`
		Message string `json:"message"`
		Kind    string `json:"kind"`
	}
	decode(t, srv.do(t, http.MethodGet, "/api/v1/toasts", nil), &toasts)
	require.Len(t, toasts, 1)
	assert.Equal(t, viewstate.DepositMinimumMessage, toasts[0].Message)
	assert.Equal(t, "warning", toasts[0].Kind)

	w := srv.do(t, http.MethodDelete, "/api/v1/toasts/"+toasts[0].ID, nil)
	assert.Equal(t, http.StatusOK, w.Code)

	toasts = nil
	decode(t, srv.do(t, http.MethodGet, "/api/v1/toasts", nil), &toasts)
	assert.Empty(t, toasts)
}

func TestAcademicRoutes(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(t, http.MethodGet, "/api/v1/curriculum?course_type=elective", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var curriculum viewstate.CurriculumSnapshot
	decode(t, w, &curriculum)
	assert.Len(t, curriculum.Courses.Items, 2)

	w = srv.do(t, http.MethodGet, "/api/v1/notifications?read_state=unread", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var inbox viewstate.ListSnapshot[models.NotificationFilter, models.Notification]
	decode(t, w, &inbox)
	assert.Len(t, inbox.Items, 3)

	w = srv.do(t, http.MethodPost, "/api/v1/one-stop/requests", models.ServiceRequestInput{ServiceID: "svc-001", Reason: "Bổ sung hồ sơ"})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = srv.do(t, http.MethodPost, "/api/v1/device-reports", models.DeviceReportInput{Building: "G2", Room: "301", DeviceType: "projector", Description: "Máy chiếu không nhận tín hiệu HDMI"})
	assert.Equal(t, http.StatusCreated, w.Code)

	w = srv.do(t, http.MethodGet, "/api/v1/dashboard", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestNotificationsArePaged(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(t, http.MethodGet, "/api/v1/notifications?page=2&limit=2", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var body struct {
		Data       viewstate.ListSnapshot[models.NotificationFilter, models.Notification] `json:"data"`
		Pagination utils.PaginationMeta                                                   `json:"pagination"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Len(t, body.Data.Items, 2)
	assert.Equal(t, 5, body.Data.Fetched)
	assert.Equal(t, int64(5), body.Pagination.Total)
	assert.Equal(t, 3, body.Pagination.TotalPages)

	w = srv.do(t, http.MethodGet, "/api/v1/notifications?page=9", nil)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Empty(t, body.Data.Items)
}

func TestUnboundFilterWarnsLikeInvalidFilter(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(t, http.MethodGet, "/api/v1/curriculum?semester=abc", nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	env := decode(t, w, nil)
	assert.Equal(t, viewstate.InvalidFilterMessage, env.Message)

	var toasts []toast.Toast
	decode(t, srv.do(t, http.MethodGet, "/api/v1/toasts", nil), &toasts)
	require.Len(t, toasts, 1)
	assert.Equal(t, viewstate.InvalidFilterMessage, toasts[0].Message)
	assert.Equal(t, toast.KindWarning, toasts[0].Kind)
}

func TestRequestsKeywordNarrowsRequests(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(t, http.MethodGet, "/api/v1/one-stop/requests?q=xin+vi%E1%BB%87c", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var requests viewstate.ListSnapshot[models.ServiceRequestFilter, models.ServiceRequest]
	decode(t, w, &requests)
	require.Len(t, requests.Items, 1)
	assert.Equal(t, "req-001", requests.Items[0].ID)

	w = srv.do(t, http.MethodGet, "/api/v1/one-stop/requests?q=zzz-no-match", nil)
	decode(t, w, &requests)
	assert.Empty(t, requests.Items)
	assert.Equal(t, 1, requests.Fetched)

	var services viewstate.ListSnapshot[models.ServiceFilter, models.Service]
	decode(t, srv.do(t, http.MethodGet, "/api/v1/one-stop/services", nil), &services)
	assert.NotEmpty(t, services.Items)
	assert.Empty(t, services.Keyword)
}

func TestHugePageIsEmptyNotAnError(t *testing.T) {
	srv := newTestServer(t)

	w := srv.do(t, http.MethodGet, "/api/v1/notifications?page=100000000000000000&limit=100", nil)
	require.Equal(t, http.StatusOK, w.Code)
	var inbox viewstate.ListSnapshot[models.NotificationFilter, models.Notification]
	decode(t, w, &inbox)
	assert.Empty(t, inbox.Items)
	assert.Equal(t, 5, inbox.Fetched)
}
