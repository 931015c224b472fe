package scheduler

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/robfig/cron/v3"

	"student-portal-svc/internal/models"
	"student-portal-svc/internal/repository"
	"student-portal-svc/internal/service"
	"student-portal-svc/pkg/format"
	"student-portal-svc/pkg/logger"
)

// Job codes written to the run log
const (
	DebtReminderCode = "DEBT_REMINDER"
	SessionSweepCode = "SESSION_SWEEP"
)

// jobTimeout bounds one run including the simulated latency
const jobTimeout = 2 * time.Minute

// Sweeper closes expired sessions
type Sweeper interface {
	Sweep() int
}

// Config holds the job schedules
type Config struct {
	// Cron format: "seconds minutes hours day-of-month month day-of-week"
	ReminderCronExpression     string
	SessionSweepCronExpression string
	ReminderWindowDays         int
}

// ReminderResult is the outcome of one reminder run
type ReminderResult struct {
	Checked  int      `json:"checked"`
	Reminded []string `json:"reminded"`
}

// ReminderScheduler turns upcoming debt due dates into notifications and sweeps expired sessions
type ReminderScheduler struct {
	debtService         service.DebtService
	notificationService service.NotificationService
	sessions            Sweeper
	schedulerLogRepo    repository.SchedulerLogRepository
	logger              *logger.Logger
	cron                *cron.Cron
	cfg                 Config
	clock               service.Clock

	mu       sync.Mutex
	reminded map[string]bool
}

// NewReminderScheduler creates a new reminder scheduler
func NewReminderScheduler(
	debtService service.DebtService,
	notificationService service.NotificationService,
	sessions Sweeper,
	schedulerLogRepo repository.SchedulerLogRepository,
	cfg Config,
	clock service.Clock,
	logger *logger.Logger,
) *ReminderScheduler {
	if clock == nil {
		clock = time.Now
	}
	if cfg.ReminderWindowDays <= 0 {
		cfg.ReminderWindowDays = 14
	}

	return &ReminderScheduler{
		debtService:         debtService,
		notificationService: notificationService,
		sessions:            sessions,
		schedulerLogRepo:    schedulerLogRepo,
		logger:              logger,
		cron:                cron.New(cron.WithSeconds()),
		cfg:                 cfg,
		clock:               clock,
		reminded:            make(map[string]bool),
	}
}

// Start schedules both jobs and starts the cron runner
func (s *ReminderScheduler) Start() error {
	s.logger.Info("Starting reminder scheduler...")

	s.logger.WithField("cron_expression", s.cfg.ReminderCronExpression).Info("Scheduling debt reminder job")
	if _, err := s.cron.AddFunc(s.cfg.ReminderCronExpression, s.runDebtReminders); err != nil {
		return fmt.Errorf("failed to schedule debt reminder job: %w", err)
	}

	s.logger.WithField("cron_expression", s.cfg.SessionSweepCronExpression).Info("Scheduling session sweep job")
	if _, err := s.cron.AddFunc(s.cfg.SessionSweepCronExpression, s.runSessionSweep); err != nil {
		return fmt.Errorf("failed to schedule session sweep job: %w", err)
	}

	s.cron.Start()
	s.logger.Info("Reminder scheduler started successfully")

	return nil
}

// Stop gracefully stops the scheduler
func (s *ReminderScheduler) Stop() {
	s.logger.Info("Stopping reminder scheduler...")
	ctx := s.cron.Stop()
	<-ctx.Done()
	s.logger.Info("Reminder scheduler stopped successfully")
}

// RemindDebts creates one finance notification per open debt due within the window.
// A debt code is reminded at most once per process.
func (s *ReminderScheduler) RemindDebts(ctx context.Context) (*ReminderResult, error) {
	debts, err := s.debtService.GetList(ctx, models.DebtFilter{})
	if err != nil {
		return nil, fmt.Errorf("failed to get debts: %w", err)
	}

	now := s.clock()
	deadline := now.AddDate(0, 0, s.cfg.ReminderWindowDays)
	result := &ReminderResult{Reminded: []string{}}

	for _, d := range debts {
		if d.Status != models.StatusUnpaid && d.Status != models.StatusOverdue {
			continue
		}
		if d.DueDate.After(deadline) {
			continue
		}
		result.Checked++

		if !s.claim(d.DebtCode) {
			continue
		}

		n := models.Notification{
			Title:    fmt.Sprintf("Nhắc nhở thanh toán %s", d.DebtCode),
			Content:  reminderContent(d, now),
			Category: models.NotificationFinance,
			Priority: models.PriorityHigh,
			Sender:   "Phòng Kế hoạch - Tài chính",
		}
		if _, err := s.notificationService.Create(ctx, n); err != nil {
			s.release(d.DebtCode)
			return result, fmt.Errorf("failed to create reminder for %s: %w", d.DebtCode, err)
		}
		result.Reminded = append(result.Reminded, d.DebtCode)
	}

	return result, nil
}

func reminderContent(d models.DebtItem, now time.Time) string {
	remaining := format.FormatCurrency(d.Remaining())
	if d.DueDate.Before(now) {
		return fmt.Sprintf("Khoản %s còn %s đã quá hạn từ ngày %s. Vui lòng thanh toán sớm.", d.Description, remaining, format.FormatDate(d.DueDate))
	}
	return fmt.Sprintf("Khoản %s còn %s cần thanh toán trước ngày %s.", d.Description, remaining, format.FormatDate(d.DueDate))
}

func (s *ReminderScheduler) claim(code string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.reminded[code] {
		return false
	}
	s.reminded[code] = true
	return true
}

func (s *ReminderScheduler) release(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.reminded, code)
}

// runDebtReminders is the scheduled debt reminder job
func (s *ReminderScheduler) runDebtReminders() {
	docID := uuid.New().String()

	s.logScheduler(DebtReminderCode, docID, "Starting scheduled debt reminders", models.RunStart)

	ctx, cancel := context.WithTimeout(context.Background(), jobTimeout)
	defer cancel()

	s.logScheduler(DebtReminderCode, docID, fmt.Sprintf("Checking debts due within %d days", s.cfg.ReminderWindowDays), models.RunRunning)

	result, err := s.RemindDebts(ctx)
	if err != nil {
		s.logScheduler(DebtReminderCode, docID, fmt.Sprintf("Failed to send debt reminders: %v", err), models.RunFailed)
		s.logger.WithError(err).Error("Failed to send debt reminders")
		return
	}

	responseJSON, _ := json.Marshal(result)
	s.logScheduler(DebtReminderCode, docID, fmt.Sprintf("Debt reminders sent: %s", string(responseJSON)), models.RunSuccess)

	s.logger.WithField("reminded", len(result.Reminded)).Info("Scheduled debt reminders completed")
}

// runSessionSweep is the scheduled session sweep job
func (s *ReminderScheduler) runSessionSweep() {
	docID := uuid.New().String()

	s.logScheduler(SessionSweepCode, docID, "Starting session sweep", models.RunStart)
	swept := s.sessions.Sweep()
	s.logScheduler(SessionSweepCode, docID, fmt.Sprintf("Expired sessions closed: %d", swept), models.RunSuccess)
}

// logScheduler appends an entry to the run log
func (s *ReminderScheduler) logScheduler(schedulerCode, documentID, message, status string) {
	s.schedulerLogRepo.CreateSchedulerLog(models.SchedulerLog{
		ID:            uuid.New().String(),
		DocumentID:    documentID,
		SchedulerCode: schedulerCode,
		Message:       message,
		Status:        status,
		CreatedAt:     s.clock(),
	})
	s.logger.WithField("status", status).WithField("document_id", documentID).Debug("Scheduler log entry created")
}
