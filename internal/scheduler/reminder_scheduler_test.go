package scheduler

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student-portal-svc/internal/models"
	"student-portal-svc/internal/repository"
	"student-portal-svc/internal/service"
	"student-portal-svc/internal/transport"
	"student-portal-svc/pkg/logger"
)

var fixedNow = time.Date(2024, time.October, 1, 9, 0, 0, 0, time.UTC)

type countingSweeper struct{ calls int }

func (c *countingSweeper) Sweep() int {
	c.calls++
	return 2
}

type testEnv struct {
	transport     *transport.Transport
	notifications service.NotificationService
	logs          repository.SchedulerLogRepository
	sweeper       *countingSweeper
	scheduler     *ReminderScheduler
}

func newTestEnv(t *testing.T, windowDays int) *testEnv {
	t.Helper()

	log := logger.NewNopLogger()
	clock := func() time.Time { return fixedNow }
	tr := transport.NewInstant(log)

	env := &testEnv{
		transport:     tr,
		notifications: service.NewNotificationService(repository.NewNotificationRepository(nil), tr, clock, log),
		logs:          repository.NewSchedulerLogRepository(),
		sweeper:       &countingSweeper{},
	}
	debts := service.NewDebtService(repository.NewDebtRepository(repository.DefaultDebts(fixedNow)), repository.NewPaymentRepository(), tr, clock, log)
	env.scheduler = NewReminderScheduler(debts, env.notifications, env.sweeper, env.logs, Config{
		ReminderCronExpression:     "0 0 7 * * *",
		SessionSweepCronExpression: "0 */10 * * * *",
		ReminderWindowDays:         windowDays,
	}, clock, log)
	return env
}

func TestRemindDebtsOncePerCode(t *testing.T) {
	env := newTestEnv(t, 14)

	result, err := env.scheduler.RemindDebts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, result.Checked)
	assert.ElementsMatch(t, []string{"HP2023-2024-2", "HP2023-2024-1"}, result.Reminded)

	inbox, err := env.notifications.GetList(context.Background(), models.NotificationFilter{Category: models.NotificationFinance})
	require.NoError(t, err)
	require.Len(t, inbox, 2)
	for _, n := range inbox {
		assert.Equal(t, models.PriorityHigh, n.Priority)
		assert.False(t, n.Read)
	}

	again, err := env.scheduler.RemindDebts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, again.Checked)
	assert.Empty(t, again.Reminded)
}

func TestRemindDebtsHonoursWindow(t *testing.T) {
	env := newTestEnv(t, 5)

	result, err := env.scheduler.RemindDebts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"HP2023-2024-1"}, result.Reminded)
}

func TestReminderRunIsLogged(t *testing.T) {
	env := newTestEnv(t, 14)

	env.scheduler.runDebtReminders()

	logs := env.logs.GetSchedulerLogs(DebtReminderCode)
	require.Len(t, logs, 3)
	assert.Equal(t, models.RunStart, logs[0].Status)
	assert.Equal(t, models.RunRunning, logs[1].Status)
	assert.Equal(t, models.RunSuccess, logs[2].Status)
	assert.Contains(t, logs[2].Message, "HP2023-2024-2")
	assert.Equal(t, logs[0].DocumentID, logs[2].DocumentID)
}

func TestReminderFailureIsLogged(t *testing.T) {
	env := newTestEnv(t, 14)
	env.transport.Fail(service.PathDebtList, errors.New("offline"))

	env.scheduler.runDebtReminders()

	logs := env.logs.GetSchedulerLogs(DebtReminderCode)
	require.Len(t, logs, 3)
	assert.Equal(t, models.RunFailed, logs[2].Status)
	assert.Contains(t, logs[2].Message, "offline")
}

func TestSessionSweepIsLogged(t *testing.T) {
	env := newTestEnv(t, 14)

	env.scheduler.runSessionSweep()

	assert.Equal(t, 1, env.sweeper.calls)
	logs := env.logs.GetSchedulerLogs(SessionSweepCode)
	require.Len(t, logs, 2)
	assert.Equal(t, models.RunSuccess, logs[1].Status)
	assert.Contains(t, logs[1].Message, "2")
}

func TestStartRejectsBadExpression(t *testing.T) {
	env := newTestEnv(t, 14)
	env.scheduler.cfg.ReminderCronExpression = "every day"

	assert.Error(t, env.scheduler.Start())
}

func TestStartAndStop(t *testing.T) {
	env := newTestEnv(t, 14)

	require.NoError(t, env.scheduler.Start())
	env.scheduler.Stop()
}
