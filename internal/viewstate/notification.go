package viewstate

import (
	"context"

	"student-portal-svc/internal/models"
	"student-portal-svc/internal/resource"
	"student-portal-svc/internal/service"
	"student-portal-svc/internal/toast"
	"student-portal-svc/pkg/logger"
)

// NotificationLoadErrorMessage is stored when the inbox fails to load
const NotificationLoadErrorMessage = "Có lỗi xảy ra khi tải thông báo"

// NotificationView is the inbox state
type NotificationView struct {
	svc      service.NotificationService
	notifier toast.Notifier
	list     *list[models.NotificationFilter, models.Notification]
}

// NewNotificationView creates a NotificationView
func NewNotificationView(svc service.NotificationService, notifier toast.Notifier, log *logger.Logger) *NotificationView {
	return &NotificationView{
		svc:      svc,
		notifier: notifier,
		list: newList(svc.GetList, func(n models.Notification, k string) bool {
			return containsAny(k, n.Title, n.Content, n.Sender)
		}, notifier,
			resource.WithName("notifications.list"),
			resource.WithErrorMessage(NotificationLoadErrorMessage),
			resource.WithLogger(log),
		),
	}
}

// Load fetches the inbox with the current filter
func (v *NotificationView) Load(ctx context.Context) {
	<-v.list.fetch(ctx)
}

// SetFilter validates f and reloads the inbox
func (v *NotificationView) SetFilter(ctx context.Context, f models.NotificationFilter) error {
	return v.list.setFilter(ctx, f)
}

// SetKeyword narrows the fetched inbox without fetching again
func (v *NotificationView) SetKeyword(keyword string) {
	v.list.setKeyword(keyword)
}

// Detail returns one notification
func (v *NotificationView) Detail(ctx context.Context, id string) (*models.Notification, error) {
	return lookup(v.notifier, NotificationLoadErrorMessage, func() (*models.Notification, error) {
		return v.svc.GetDetail(ctx, id)
	})
}

// Snapshot returns the current state
func (v *NotificationView) Snapshot() ListSnapshot[models.NotificationFilter, models.Notification] {
	return v.list.snapshot()
}

// Close unmounts the view
func (v *NotificationView) Close() {
	v.list.close()
}
