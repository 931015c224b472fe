package service

import (
	"context"
	"fmt"
	"sort"

	"student-portal-svc/internal/models"
	"student-portal-svc/internal/repository"
	"student-portal-svc/internal/transport"
	"student-portal-svc/pkg/logger"
)

// NotificationService defines the interface for notification operations
type NotificationService interface {
	GetList(ctx context.Context, filter models.NotificationFilter) ([]models.Notification, error)
	GetDetail(ctx context.Context, id string) (*models.Notification, error)
	GetUnreadCount(ctx context.Context) (int, error)
	Create(ctx context.Context, n models.Notification) (*models.Notification, error)
}

// notificationService implements NotificationService
type notificationService struct {
	notificationRepo repository.NotificationRepository
	transport        *transport.Transport
	clock            Clock
	logger           *logger.Logger
}

// NewNotificationService creates a new instance of NotificationService
func NewNotificationService(notificationRepo repository.NotificationRepository, t *transport.Transport, clock Clock, logger *logger.Logger) NotificationService {
	return &notificationService{
		notificationRepo: notificationRepo,
		transport:        t,
		clock:            clockOrNow(clock),
		logger:           logger,
	}
}

// GetList returns the notifications matching filter, newest first
func (s *notificationService) GetList(ctx context.Context, filter models.NotificationFilter) ([]models.Notification, error) {
	filter = filter.Normalize()
	if err := models.Validate(filter); err != nil {
		return nil, err
	}

	return call(ctx, s.transport, transport.Get(PathNotificationList, transport.Normal), func() []models.Notification {
		out := []models.Notification{}
		for _, n := range s.notificationRepo.GetNotifications() {
			if filter.Match(n) {
				out = append(out, n)
			}
		}
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
		return out
	})
}

// GetDetail retrieves one notification
func (s *notificationService) GetDetail(ctx context.Context, id string) (*models.Notification, error) {
	return transport.Call(ctx, s.transport, transport.Get(PathNotificationItem, transport.Light), func() (*models.Notification, error) {
		n, err := s.notificationRepo.GetNotificationByID(id)
		if err != nil {
			s.logger.WithError(err).WithField("notification_id", id).Error("Failed to get notification")
			return nil, fmt.Errorf("notification %s: %w", id, err)
		}
		return n, nil
	})
}

// GetUnreadCount counts notifications not read yet
func (s *notificationService) GetUnreadCount(ctx context.Context) (int, error) {
	return call(ctx, s.transport, transport.Get(PathNotificationCount, transport.Light), func() int {
		count := 0
		for _, n := range s.notificationRepo.GetNotifications() {
			if !n.Read {
				count++
			}
		}
		return count
	})
}

// Create appends a notification with a fresh id and creation time
func (s *notificationService) Create(ctx context.Context, n models.Notification) (*models.Notification, error) {
	if n.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}

	return call(ctx, s.transport, transport.Post(PathNotificationNew, transport.Light), func() *models.Notification {
		n.ID = newID("noti")
		n.CreatedAt = s.clock()
		if n.Priority == "" {
			n.Priority = models.PriorityNormal
		}
		s.notificationRepo.CreateNotification(n)

		s.logger.WithFields(map[string]interface{}{
			"notification_id": n.ID,
			"category":        n.Category,
		}).Info("Notification created")

		return &n
	})
}
