package viewstate

import (
	"context"
	"strings"

	"student-portal-svc/internal/models"
	"student-portal-svc/internal/repository"
	"student-portal-svc/internal/resource"
	"student-portal-svc/internal/service"
	"student-portal-svc/internal/toast"
	"student-portal-svc/pkg/logger"
)

// One-stop page messages
const (
	OneStopLoadErrorMessage     = "Có lỗi xảy ra khi tải danh sách dịch vụ"
	RequestSuccessMessage       = "Gửi yêu cầu thành công"
	RequestFailureMessage       = "Gửi yêu cầu thất bại. Vui lòng thử lại"
	RequestMissingReasonMessage = "Vui lòng nhập lý do"
	RequestMissingServiceMsg    = "Vui lòng chọn dịch vụ"
)

// OneStopSnapshot is the one-stop page
type OneStopSnapshot struct {
	Services ListSnapshot[models.ServiceFilter, models.Service]               `json:"services"`
	Requests ListSnapshot[models.ServiceRequestFilter, models.ServiceRequest] `json:"requests"`
}

// OneStopView is the one-stop service page state
type OneStopView struct {
	svc      service.OneStopService
	notifier toast.Notifier
	services *list[models.ServiceFilter, models.Service]
	requests *list[models.ServiceRequestFilter, models.ServiceRequest]
}

// NewOneStopView creates a OneStopView
func NewOneStopView(svc service.OneStopService, notifier toast.Notifier, log *logger.Logger) *OneStopView {
	opts := []resource.Option{resource.WithErrorMessage(OneStopLoadErrorMessage), resource.WithLogger(log)}
	return &OneStopView{
		svc:      svc,
		notifier: notifier,
		services: newList(svc.GetServices, func(s models.Service, k string) bool {
			return containsAny(k, s.Code, s.Name, s.Description)
		}, notifier, append(opts, resource.WithName("one_stop.services"))...),
		requests: newList(svc.GetRequests, func(r models.ServiceRequest, k string) bool {
			return containsAny(k, r.ServiceName, r.Reason)
		}, notifier, append(opts, resource.WithName("one_stop.requests"))...),
	}
}

// Load fetches the catalog and the submitted requests concurrently
func (v *OneStopView) Load(ctx context.Context) {
	wait(v.services.fetch(ctx), v.requests.fetch(ctx))
}

// SetServiceFilter validates f and reloads the catalog
func (v *OneStopView) SetServiceFilter(ctx context.Context, f models.ServiceFilter) error {
	return v.services.setFilter(ctx, f)
}

// SetRequestFilter validates f and reloads the submitted requests
func (v *OneStopView) SetRequestFilter(ctx context.Context, f models.ServiceRequestFilter) error {
	return v.requests.setFilter(ctx, f)
}

// SetKeyword narrows the fetched catalog without fetching again
func (v *OneStopView) SetKeyword(keyword string) {
	v.services.setKeyword(keyword)
}

// SetRequestKeyword narrows the fetched requests without fetching again
func (v *OneStopView) SetRequestKeyword(keyword string) {
	v.requests.setKeyword(keyword)
}

// SubmitRequest checks the form, submits it, then reloads the requests
func (v *OneStopView) SubmitRequest(ctx context.Context, input models.ServiceRequestInput) (*models.ServiceRequest, error) {
	if strings.TrimSpace(input.ServiceID) == "" {
		return nil, reject(v.notifier, RequestMissingServiceMsg)
	}
	if strings.TrimSpace(input.Reason) == "" {
		return nil, reject(v.notifier, RequestMissingReasonMessage)
	}

	o := outcome{
		success:  RequestSuccessMessage,
		failure:  RequestFailureMessage,
		specific: map[error]string{repository.ErrRecordNotFound: NotFoundMessage},
	}
	return perform(ctx, v.notifier, o, func() (*models.ServiceRequest, error) {
		return v.svc.SubmitRequest(ctx, input)
	}, func(ctx context.Context) {
		<-v.requests.fetch(ctx)
	})
}

// Service returns one catalog entry
func (v *OneStopView) Service(ctx context.Context, id string) (*models.Service, error) {
	return lookup(v.notifier, OneStopLoadErrorMessage, func() (*models.Service, error) {
		return v.svc.GetService(ctx, id)
	})
}

// Snapshot returns the current state
func (v *OneStopView) Snapshot() OneStopSnapshot {
	return OneStopSnapshot{Services: v.services.snapshot(), Requests: v.requests.snapshot()}
}

// Close unmounts the view
func (v *OneStopView) Close() {
	v.services.close()
	v.requests.close()
}
