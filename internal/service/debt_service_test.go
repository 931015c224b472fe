package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"student-portal-svc/internal/models"
	"student-portal-svc/internal/repository"
)

func TestGetDebtListUnpaid(t *testing.T) {
	env := newTestEnv(t)

	items, err := env.debt.GetList(context.Background(), models.DebtFilter{Status: models.StatusUnpaid})
	require.NoError(t, err)
	require.Len(t, items, 1)
	assert.Equal(t, "HP2023-2024-2", items[0].DebtCode)
	assert.Equal(t, models.StatusUnpaid, items[0].Status)
}

func TestGetDebtListRejectsUnknownStatus(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.debt.GetList(context.Background(), models.DebtFilter{Status: "cancelled"})
	assert.ErrorIs(t, err, ErrValidation)
}

func TestDebtSummaryMatchesList(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	summary, err := env.debt.GetSummary(ctx)
	require.NoError(t, err)
	items, err := env.debt.GetList(ctx, models.DebtFilter{})
	require.NoError(t, err)

	var remaining int64
	for _, d := range items {
		remaining += d.Remaining()
	}
	assert.Equal(t, remaining, summary.Remaining)
	assert.Equal(t, int64(12500000+680400+11000000), summary.TotalDebt)
	assert.Equal(t, 1, summary.UnpaidCount)
	assert.Equal(t, 1, summary.OverdueCount)
	require.NotNil(t, summary.NextDueDate)
	assert.Equal(t, fixedNow.AddDate(0, 0, -30).Format("2006-01-02"), summary.NextDueDate.Format("2006-01-02"))
}

func TestDebtDetailNotFound(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.debt.GetDetail(context.Background(), "debt-999")
	assert.ErrorIs(t, err, repository.ErrRecordNotFound)
	assert.True(t, IsNotFound(err))
}

func TestPayDebt(t *testing.T) {
	env := newTestEnv(t)

	tx, err := env.debt.Pay(context.Background(), models.PaymentRequest{EntityID: "debt-001", Amount: 5000000, Method: models.MethodBankTransfer})
	require.NoError(t, err)
	assert.Equal(t, models.TransactionCompleted, tx.Status)
	assert.Equal(t, models.DomainDebt, tx.Domain)
	assert.NotEmpty(t, tx.ID)

	stored, err := env.payments.GetPaymentByID(tx.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(5000000), stored.Amount)
}

func TestPayDebtRejections(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	_, err := env.debt.Pay(ctx, models.PaymentRequest{EntityID: "debt-001", Amount: 0, Method: models.MethodCard})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = env.debt.Pay(ctx, models.PaymentRequest{EntityID: "debt-001", Amount: -5, Method: models.MethodCard})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = env.debt.Pay(ctx, models.PaymentRequest{EntityID: "debt-001", Amount: 100, Method: "cash"})
	assert.ErrorIs(t, err, ErrValidation)

	_, err = env.debt.Pay(ctx, models.PaymentRequest{EntityID: "debt-404", Amount: 100, Method: models.MethodCard})
	assert.ErrorIs(t, err, repository.ErrRecordNotFound)

	_, err = env.debt.Pay(ctx, models.PaymentRequest{EntityID: "debt-002", Amount: 100, Method: models.MethodCard})
	assert.ErrorIs(t, err, ErrAlreadyPaid)

	assert.Empty(t, env.payments.GetPayments())
}
