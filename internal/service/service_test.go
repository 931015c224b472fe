package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student-portal-svc/internal/models"
	"student-portal-svc/internal/repository"
	"student-portal-svc/internal/transport"
	"student-portal-svc/pkg/logger"
)

var fixedNow = time.Date(2024, time.October, 1, 9, 0, 0, 0, time.UTC)

func fixedClock() time.Time { return fixedNow }

// testEnv wires every service over fresh fixtures and an instant transport
type testEnv struct {
	transport *transport.Transport
	payments  repository.PaymentRepository

	tuition       TuitionService
	debt          DebtService
	otherFees     OtherFeeService
	deposit       DepositService
	curriculum    CurriculumService
	plans         SemesterPlanService
	notifications NotificationService
	oneStop       OneStopService
	reports       DeviceReportService
	exports       ExportService
	dashboard     DashboardService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	log := logger.NewNopLogger()
	tr := transport.NewInstant(log)
	payments := repository.NewPaymentRepository()

	env := &testEnv{transport: tr, payments: payments}
	env.exports = NewExportService(repository.NewExportRepository(), fixedClock, log)
	env.tuition = NewTuitionService(repository.NewTuitionRepository(repository.DefaultTuitionItems(fixedNow)), payments, env.exports, tr, fixedClock, "http://portal.test", log)
	env.debt = NewDebtService(repository.NewDebtRepository(repository.DefaultDebts(fixedNow)), payments, tr, fixedClock, log)
	env.otherFees = NewOtherFeeService(repository.NewOtherFeeRepository(repository.DefaultOtherFees(fixedNow)), payments, tr, fixedClock, log)
	env.deposit = NewDepositService(repository.NewDepositRepository(repository.DefaultDepositTransactions(fixedNow)), tr, fixedClock, log)
	env.curriculum = NewCurriculumService(repository.NewCurriculumRepository(repository.DefaultProgram(), repository.DefaultCourses()), tr, log)
	env.plans = NewSemesterPlanService(repository.NewSemesterPlanRepository(repository.DefaultSemesters(fixedNow), repository.DefaultPlannedCourses(fixedNow)), tr, fixedClock, log)
	env.notifications = NewNotificationService(repository.NewNotificationRepository(repository.DefaultNotifications(fixedNow)), tr, fixedClock, log)
	env.oneStop = NewOneStopService(repository.NewOneStopRepository(repository.DefaultServices(), repository.DefaultServiceRequests(fixedNow)), tr, fixedClock, log)
	env.reports = NewDeviceReportService(repository.NewDeviceReportRepository(repository.DefaultDeviceReports(fixedNow)), tr, fixedClock, log)
	env.dashboard = NewDashboardService(env.tuition, env.debt, env.otherFees, env.deposit, env.notifications, repository.CurrentSemester, log)

	return env
}

func TestInjectedFailureSurfacesFromService(t *testing.T) {
	env := newTestEnv(t)
	boom := errors.New("network down")
	env.transport.Fail(PathDebtList, boom)

	_, err := env.debt.GetList(context.Background(), models.DebtFilter{})
	assert.ErrorIs(t, err, boom)

	env.transport.Heal(PathDebtList)
	items, err := env.debt.GetList(context.Background(), models.DebtFilter{})
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestCancelledContextStopsCall(t *testing.T) {
	log := logger.NewNopLogger()
	tr := transport.New(transport.Config{Scale: 1}, log)
	svc := NewDebtService(repository.NewDebtRepository(repository.DefaultDebts(fixedNow)), repository.NewPaymentRepository(), tr, fixedClock, log)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.GetSummary(ctx)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestRequestsCarryBearerToken(t *testing.T) {
	var seen []string
	log := logger.NewNopLogger()
	tr := transport.New(transport.Config{OnRequest: func(r transport.Request) {
		seen = append(seen, r.Header.Get("Authorization"))
	}}, log)
	svc := NewNotificationService(repository.NewNotificationRepository(repository.DefaultNotifications(fixedNow)), tr, fixedClock, log)

	_, err := svc.GetUnreadCount(transport.WithToken(context.Background(), "abc"))
	require.NoError(t, err)
	_, err = svc.GetUnreadCount(context.Background())
	require.NoError(t, err)

	assert.Equal(t, []string{"Bearer abc", ""}, seen)
}
