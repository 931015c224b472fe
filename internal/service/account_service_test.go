package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student-portal-svc/internal/models"
	"student-portal-svc/internal/repository"
)

func TestDepositBalanceDerived(t *testing.T) {
	env := newTestEnv(t)

	balance, err := env.deposit.GetBalance(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(1250000), balance.Balance)
	assert.Equal(t, int64(3050000), balance.TotalDeposit)
	assert.Equal(t, int64(1800000), balance.TotalSpent)
	require.NotNil(t, balance.LastUpdated)
}

func TestDepositTransactionsDateRange(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	recent, err := env.deposit.GetTransactions(ctx, models.DepositFilter{DateRange: models.Range7Days})
	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "dep-005", recent[0].ID)

	deposits, err := env.deposit.GetTransactions(ctx, models.DepositFilter{Type: models.DepositTypeDeposit})
	require.NoError(t, err)
	assert.Len(t, deposits, 2)

	_, err = env.deposit.GetTransactions(ctx, models.DepositFilter{DateRange: "1year"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCreateDepositUpdatesBalance(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	tx, err := env.deposit.CreateDeposit(ctx, 500000, models.MethodCard)
	require.NoError(t, err)
	assert.Equal(t, models.TransactionCompleted, tx.Status)
	assert.Equal(t, fixedNow, tx.CreatedAt)

	balance, err := env.deposit.GetBalance(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1750000), balance.Balance)

	_, err = env.deposit.CreateDeposit(ctx, 0, models.MethodCard)
	assert.ErrorIs(t, err, ErrValidation)
	_, err = env.deposit.CreateDeposit(ctx, 1000, "cash")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestOtherFeesSummaryAgreesWithList(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	summary, err := env.otherFees.GetSummary(ctx)
	require.NoError(t, err)
	fees, err := env.otherFees.GetList(ctx, models.OtherFeeFilter{})
	require.NoError(t, err)

	var debt int64
	for _, f := range fees {
		debt += f.Remaining()
	}
	assert.Equal(t, debt, summary.TotalDebt)
	assert.Equal(t, 3, summary.UnpaidCount)

	parking, err := env.otherFees.GetList(ctx, models.OtherFeeFilter{Category: models.FeeCategoryParking})
	require.NoError(t, err)
	require.Len(t, parking, 1)

	tx, err := env.otherFees.Pay(ctx, models.PaymentRequest{EntityID: parking[0].ID, Amount: parking[0].Amount, Method: models.MethodEWallet})
	require.NoError(t, err)
	assert.Equal(t, models.DomainOtherFee, tx.Domain)
}

func TestDashboardAggregates(t *testing.T) {
	env := newTestEnv(t)
	student := models.Student{StudentID: "SV2021001", FullName: "Nguyễn Văn An"}

	overview, err := env.dashboard.GetOverview(context.Background(), student)
	require.NoError(t, err)

	assert.Equal(t, "SV2021001", overview.Student.StudentID)
	assert.Equal(t, repository.CurrentSemester, overview.Tuition.Semester)
	assert.Equal(t, int64(1250000), overview.Deposit.Balance)
	assert.Equal(t, 3, overview.UnreadNotifications)
	assert.Len(t, overview.LatestNotifications, 3)
	assert.Equal(t, "noti-005", overview.LatestNotifications[0].ID)

	require.NotEmpty(t, overview.UpcomingDeadlines)
	for i := 1; i < len(overview.UpcomingDeadlines); i++ {
		assert.False(t, overview.UpcomingDeadlines[i].DueDate.Before(overview.UpcomingDeadlines[i-1].DueDate))
	}
}

func TestDashboardFailsWhenASectionFails(t *testing.T) {
	env := newTestEnv(t)
	env.transport.Fail(PathDepositBalance, assert.AnError)

	_, err := env.dashboard.GetOverview(context.Background(), models.Student{})
	assert.ErrorIs(t, err, assert.AnError)
}
