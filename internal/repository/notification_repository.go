package repository

import "student-portal-svc/internal/models"

// NotificationRepository defines the interface for notification data operations
type NotificationRepository interface {
	GetNotifications() []models.Notification
	GetNotificationByID(id string) (*models.Notification, error)
	CreateNotification(n models.Notification)
}

// notificationRepository implements NotificationRepository
type notificationRepository struct {
	notifications *collection[models.Notification]
}

// NewNotificationRepository creates a new instance of NotificationRepository
func NewNotificationRepository(items []models.Notification) NotificationRepository {
	return &notificationRepository{
		notifications: newCollection(items, func(n models.Notification) string { return n.ID }),
	}
}

// GetNotifications returns every notification in insertion order
func (r *notificationRepository) GetNotifications() []models.Notification {
	return r.notifications.all()
}

// GetNotificationByID retrieves a notification by ID
func (r *notificationRepository) GetNotificationByID(id string) (*models.Notification, error) {
	return r.notifications.find(id)
}

// CreateNotification appends a notification
func (r *notificationRepository) CreateNotification(n models.Notification) {
	r.notifications.add(n)
}
