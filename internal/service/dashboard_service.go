package service

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"student-portal-svc/internal/models"
	"student-portal-svc/internal/models/response"
	"student-portal-svc/pkg/logger"
)

const (
	latestNotificationCount = 3
	deadlineCount           = 5
)

// DashboardService interface defines dashboard service methods
type DashboardService interface {
	GetOverview(ctx context.Context, student models.Student) (*response.DashboardResponse, error)
}

// dashboardService implements DashboardService interface
type dashboardService struct {
	tuition       TuitionService
	debt          DebtService
	otherFees     OtherFeeService
	deposit       DepositService
	notifications NotificationService
	semester      string
	logger        *logger.Logger
}

// NewDashboardService creates a new dashboard service over the domain services.
// semester selects the tuition summary shown on the home page.
func NewDashboardService(tuition TuitionService, debt DebtService, otherFees OtherFeeService, deposit DepositService, notifications NotificationService, semester string, logger *logger.Logger) DashboardService {
	return &dashboardService{
		tuition:       tuition,
		debt:          debt,
		otherFees:     otherFees,
		deposit:       deposit,
		notifications: notifications,
		semester:      semester,
		logger:        logger,
	}
}

// GetOverview loads every dashboard section concurrently. Sections write to their own
// fields, so completion order does not matter; the first failure cancels the rest.
func (s *dashboardService) GetOverview(ctx context.Context, student models.Student) (*response.DashboardResponse, error) {
	out := &response.DashboardResponse{Student: student}

	var (
		debts []models.DebtItem
		fees  []models.OtherFeeItem
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		summary, err := s.tuition.GetSummary(gctx, s.semester)
		if err != nil {
			return err
		}
		out.Tuition = *summary
		return nil
	})
	g.Go(func() error {
		summary, err := s.debt.GetSummary(gctx)
		if err != nil {
			return err
		}
		out.Debt = *summary
		return nil
	})
	g.Go(func() error {
		balance, err := s.deposit.GetBalance(gctx)
		if err != nil {
			return err
		}
		out.Deposit = *balance
		return nil
	})
	g.Go(func() error {
		count, err := s.notifications.GetUnreadCount(gctx)
		if err != nil {
			return err
		}
		out.UnreadNotifications = count
		return nil
	})
	g.Go(func() error {
		list, err := s.notifications.GetList(gctx, models.NotificationFilter{})
		if err != nil {
			return err
		}
		if len(list) > latestNotificationCount {
			list = list[:latestNotificationCount]
		}
		out.LatestNotifications = list
		return nil
	})
	g.Go(func() error {
		var err error
		debts, err = s.debt.GetList(gctx, models.DebtFilter{})
		return err
	})
	g.Go(func() error {
		var err error
		fees, err = s.otherFees.GetList(gctx, models.OtherFeeFilter{})
		return err
	})

	if err := g.Wait(); err != nil {
		s.logger.WithError(err).WithField("student_id", student.StudentID).Error("Failed to load dashboard")
		return nil, err
	}

	out.UpcomingDeadlines = upcomingDeadlines(debts, fees)

	s.logger.WithFields(map[string]interface{}{
		"student_id": student.StudentID,
		"unread":     out.UnreadNotifications,
		"deadlines":  len(out.UpcomingDeadlines),
	}).Info("Dashboard loaded successfully")

	return out, nil
}

// upcomingDeadlines lists unsettled debts and fees, earliest due first
func upcomingDeadlines(debts []models.DebtItem, fees []models.OtherFeeItem) []response.Deadline {
	out := []response.Deadline{}
	for _, d := range debts {
		if d.Status != models.StatusPaid {
			out = append(out, response.Deadline{Title: d.Description, Amount: d.Remaining(), DueDate: d.DueDate, Source: models.DomainDebt})
		}
	}
	for _, f := range fees {
		if f.Status != models.StatusPaid {
			out = append(out, response.Deadline{Title: f.Name, Amount: f.Remaining(), DueDate: f.DueDate, Source: models.DomainOtherFee})
		}
	}

	sort.SliceStable(out, func(i, j int) bool { return out[i].DueDate.Before(out[j].DueDate) })
	if len(out) > deadlineCount {
		out = out[:deadlineCount]
	}
	return out
}
