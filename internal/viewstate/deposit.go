package viewstate

import (
	"context"

	"student-portal-svc/internal/models"
	"student-portal-svc/internal/models/response"
	"student-portal-svc/internal/resource"
	"student-portal-svc/internal/service"
	"student-portal-svc/internal/toast"
	"student-portal-svc/pkg/logger"
)

// Deposit page messages
const (
	DepositLoadErrorMessage = "Có lỗi xảy ra khi tải thông tin tài khoản"
	DepositMinimumMessage   = "Số tiền nạp tối thiểu là 10,000 VNĐ"
	DepositSuccessMessage   = "Nạp tiền thành công"
	DepositFailureMessage   = "Nạp tiền thất bại. Vui lòng thử lại"
)

// DepositSnapshot is the deposit page
type DepositSnapshot struct {
	Balance      resource.State[response.DepositBalance]                       `json:"balance"`
	Transactions ListSnapshot[models.DepositFilter, models.DepositTransaction] `json:"transactions"`
}

// DepositView is the prepaid account page state
type DepositView struct {
	svc          service.DepositService
	notifier     toast.Notifier
	balance      *resource.Resource[struct{}, response.DepositBalance]
	transactions *list[models.DepositFilter, models.DepositTransaction]
}

// NewDepositView creates a DepositView
func NewDepositView(svc service.DepositService, notifier toast.Notifier, log *logger.Logger) *DepositView {
	opts := []resource.Option{resource.WithErrorMessage(DepositLoadErrorMessage), resource.WithLogger(log)}
	return &DepositView{
		svc:      svc,
		notifier: notifier,
		balance:  resource.New(unit(svc.GetBalance), append(opts, resource.WithName("deposit.balance"), resource.WithNotifier(notifier))...),
		transactions: newList(svc.GetTransactions, func(tx models.DepositTransaction, k string) bool {
			return containsAny(k, tx.Description, tx.ID)
		}, notifier, append(opts, resource.WithName("deposit.transactions"))...),
	}
}

// Load fetches the balance and the transactions concurrently
func (v *DepositView) Load(ctx context.Context) {
	wait(v.balance.Fetch(ctx, struct{}{}), v.transactions.fetch(ctx))
}

// SetFilter validates f and reloads the page
func (v *DepositView) SetFilter(ctx context.Context, f models.DepositFilter) error {
	if err := v.transactions.apply(f); err != nil {
		return err
	}
	v.Load(ctx)
	return nil
}

// SetKeyword narrows the fetched transactions without fetching again
func (v *DepositView) SetKeyword(keyword string) {
	v.transactions.setKeyword(keyword)
}

// CreateDeposit tops up the account. Amounts below the minimum are refused here and
// never reach the service.
func (v *DepositView) CreateDeposit(ctx context.Context, amount int64, method string) (*models.DepositTransaction, error) {
	if amount < models.MinDepositAmount {
		return nil, reject(v.notifier, DepositMinimumMessage)
	}
	switch method {
	case models.MethodCard, models.MethodBankTransfer, models.MethodEWallet:
	default:
		return nil, reject(v.notifier, InvalidMethodMessage)
	}

	return perform(ctx, v.notifier, outcome{success: DepositSuccessMessage, failure: DepositFailureMessage}, func() (*models.DepositTransaction, error) {
		return v.svc.CreateDeposit(ctx, amount, method)
	}, v.Load)
}

// Snapshot returns the current state
func (v *DepositView) Snapshot() DepositSnapshot {
	return DepositSnapshot{Balance: v.balance.State(), Transactions: v.transactions.snapshot()}
}

// Close unmounts the view
func (v *DepositView) Close() {
	v.balance.Close()
	v.transactions.close()
}
