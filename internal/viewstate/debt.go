package viewstate

import (
	"context"

	"student-portal-svc/internal/models"
	"student-portal-svc/internal/models/response"
	"student-portal-svc/internal/repository"
	"student-portal-svc/internal/resource"
	"student-portal-svc/internal/service"
	"student-portal-svc/internal/toast"
	"student-portal-svc/pkg/logger"
)

// DebtLoadErrorMessage is stored when the debt page fails to load
const DebtLoadErrorMessage = "Có lỗi xảy ra khi tải thông tin công nợ"

func payOutcome() outcome {
	return outcome{
		success: PaySuccessMessage,
		failure: PayFailureMessage,
		specific: map[error]string{
			service.ErrAlreadyPaid:       AlreadyPaidMessage,
			repository.ErrRecordNotFound: NotFoundMessage,
		},
	}
}

// DebtSnapshot is the debt page
type DebtSnapshot struct {
	Summary resource.State[response.DebtSummary]             `json:"summary"`
	List    ListSnapshot[models.DebtFilter, models.DebtItem] `json:"list"`
}

// DebtView is the debt page state
type DebtView struct {
	svc      service.DebtService
	notifier toast.Notifier
	summary  *resource.Resource[struct{}, response.DebtSummary]
	list     *list[models.DebtFilter, models.DebtItem]
}

// NewDebtView creates a DebtView
func NewDebtView(svc service.DebtService, notifier toast.Notifier, log *logger.Logger) *DebtView {
	opts := []resource.Option{resource.WithErrorMessage(DebtLoadErrorMessage), resource.WithLogger(log)}
	return &DebtView{
		svc:      svc,
		notifier: notifier,
		summary:  resource.New(unit(svc.GetSummary), append(opts, resource.WithName("debt.summary"), resource.WithNotifier(notifier))...),
		list: newList(svc.GetList, func(d models.DebtItem, k string) bool {
			return containsAny(k, d.DebtCode, d.Description, d.Semester)
		}, notifier, append(opts, resource.WithName("debt.list"))...),
	}
}

// Load fetches the summary and the list concurrently
func (v *DebtView) Load(ctx context.Context) {
	wait(v.summary.Fetch(ctx, struct{}{}), v.list.fetch(ctx))
}

// SetFilter validates f and reloads the page
func (v *DebtView) SetFilter(ctx context.Context, f models.DebtFilter) error {
	if err := v.list.apply(f); err != nil {
		return err
	}
	v.Load(ctx)
	return nil
}

// SetKeyword narrows the fetched list without fetching again
func (v *DebtView) SetKeyword(keyword string) {
	v.list.setKeyword(keyword)
}

// Pay checks the request, pays, then reloads the page
func (v *DebtView) Pay(ctx context.Context, req models.PaymentRequest) (*models.PaymentTransaction, error) {
	if err := checkPayment(v.notifier, req); err != nil {
		return nil, err
	}
	return perform(ctx, v.notifier, payOutcome(), func() (*models.PaymentTransaction, error) {
		return v.svc.Pay(ctx, req)
	}, v.Load)
}

// Detail returns one debt item
func (v *DebtView) Detail(ctx context.Context, id string) (*models.DebtItem, error) {
	return lookup(v.notifier, DebtLoadErrorMessage, func() (*models.DebtItem, error) {
		return v.svc.GetDetail(ctx, id)
	})
}

// Snapshot returns the current state
func (v *DebtView) Snapshot() DebtSnapshot {
	return DebtSnapshot{Summary: v.summary.State(), List: v.list.snapshot()}
}

// Close unmounts the view
func (v *DebtView) Close() {
	v.summary.Close()
	v.list.close()
}
