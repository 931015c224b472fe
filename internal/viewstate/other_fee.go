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

// OtherFeeLoadErrorMessage is stored when the other fees page fails to load
const OtherFeeLoadErrorMessage = "Có lỗi xảy ra khi tải các khoản phí khác"

// OtherFeeSnapshot is the other fees page
type OtherFeeSnapshot struct {
	Summary resource.State[response.OtherFeesSummary]                `json:"summary"`
	List    ListSnapshot[models.OtherFeeFilter, models.OtherFeeItem] `json:"list"`
}

// OtherFeeView is the other fees page state
type OtherFeeView struct {
	svc      service.OtherFeeService
	notifier toast.Notifier
	summary  *resource.Resource[struct{}, response.OtherFeesSummary]
	list     *list[models.OtherFeeFilter, models.OtherFeeItem]
}

// NewOtherFeeView creates an OtherFeeView
func NewOtherFeeView(svc service.OtherFeeService, notifier toast.Notifier, log *logger.Logger) *OtherFeeView {
	opts := []resource.Option{resource.WithErrorMessage(OtherFeeLoadErrorMessage), resource.WithLogger(log)}
	return &OtherFeeView{
		svc:      svc,
		notifier: notifier,
		summary:  resource.New(unit(svc.GetSummary), append(opts, resource.WithName("other_fees.summary"), resource.WithNotifier(notifier))...),
		list: newList(svc.GetList, func(f models.OtherFeeItem, k string) bool {
			return containsAny(k, f.Name)
		}, notifier, append(opts, resource.WithName("other_fees.list"))...),
	}
}

// Load fetches the summary and the list concurrently
func (v *OtherFeeView) Load(ctx context.Context) {
	wait(v.summary.Fetch(ctx, struct{}{}), v.list.fetch(ctx))
}

// SetFilter validates f and reloads the page
func (v *OtherFeeView) SetFilter(ctx context.Context, f models.OtherFeeFilter) error {
	if err := v.list.apply(f); err != nil {
		return err
	}
	v.Load(ctx)
	return nil
}

// SetKeyword narrows the fetched list without fetching again
func (v *OtherFeeView) SetKeyword(keyword string) {
	v.list.setKeyword(keyword)
}

// Pay checks the request, pays, then reloads the page
func (v *OtherFeeView) Pay(ctx context.Context, req models.PaymentRequest) (*models.PaymentTransaction, error) {
	if err := checkPayment(v.notifier, req); err != nil {
		return nil, err
	}
	return perform(ctx, v.notifier, payOutcome(), func() (*models.PaymentTransaction, error) {
		return v.svc.Pay(ctx, req)
	}, v.Load)
}

// Snapshot returns the current state
func (v *OtherFeeView) Snapshot() OtherFeeSnapshot {
	return OtherFeeSnapshot{Summary: v.summary.State(), List: v.list.snapshot()}
}

// Close unmounts the view
func (v *OtherFeeView) Close() {
	v.summary.Close()
	v.list.close()
}
