package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"student-portal-svc/internal/models"
	"student-portal-svc/internal/repository"
	"student-portal-svc/internal/transport"
)

// Simulated endpoints. They are never dialled; the transport only uses them for
// latency weights, failure injection and logging.
const (
	PathTuitionSummary    = "/api/tuition/summary"
	PathTuitionList       = "/api/tuition/list"
	PathTuitionSemesters  = "/api/tuition/semesters"
	PathTuitionPay        = "/api/tuition/pay"
	PathTuitionReceipt    = "/api/tuition/receipt"
	PathTuitionExport     = "/api/tuition/export"
	PathDebtSummary       = "/api/debt/summary"
	PathDebtList          = "/api/debt/list"
	PathDebtDetail        = "/api/debt/detail"
	PathDebtPay           = "/api/debt/pay"
	PathOtherFeesSummary  = "/api/other-fees/summary"
	PathOtherFeesList     = "/api/other-fees/list"
	PathOtherFeesPay      = "/api/other-fees/pay"
	PathDepositBalance    = "/api/deposit/balance"
	PathDepositList       = "/api/deposit/transactions"
	PathDepositCreate     = "/api/deposit/create"
	PathCurriculumSummary = "/api/curriculum/overview"
	PathCurriculumCourses = "/api/curriculum/courses"
	PathCurriculumCourse  = "/api/curriculum/course"
	PathPlanSemesters     = "/api/semester-plan/semesters"
	PathPlanDetail        = "/api/semester-plan/detail"
	PathPlanAddCourse     = "/api/semester-plan/add-course"
	PathNotificationList  = "/api/notifications/list"
	PathNotificationItem  = "/api/notifications/detail"
	PathNotificationCount = "/api/notifications/unread-count"
	PathNotificationNew   = "/api/notifications/create"
	PathServiceList       = "/api/one-stop/services"
	PathServiceDetail     = "/api/one-stop/service"
	PathServiceRequests   = "/api/one-stop/requests"
	PathServiceSubmit     = "/api/one-stop/submit"
	PathReportList        = "/api/device-reports/list"
	PathReportCreate      = "/api/device-reports/create"
)

// ErrValidation is returned for input rejected before any record is written
var ErrValidation = models.ErrValidation

// ErrAlreadyPaid is returned when paying an item that is already settled
var ErrAlreadyPaid = fmt.Errorf("%w: item already paid", ErrValidation)

// Clock returns the current time; services take one so tests can pin it
type Clock func() time.Time

func clockOrNow(c Clock) Clock {
	if c == nil {
		return time.Now
	}
	return c
}

// IsNotFound reports whether err means the requested record does not exist
func IsNotFound(err error) bool {
	return errors.Is(err, repository.ErrRecordNotFound)
}

// newID generates a record id with a domain prefix
func newID(prefix string) string {
	return prefix + "-" + uuid.New().String()
}

// payable is the projection of a tuition, debt or other fee item a payment needs
type payable struct {
	id     string
	status string
}

// recordPayment validates req against the item and stores a completed transaction
func recordPayment(repo repository.PaymentRepository, domain string, item payable, req models.PaymentRequest, receiptURL func(id string) string, now time.Time) (*models.PaymentTransaction, error) {
	if item.status == models.StatusPaid {
		return nil, ErrAlreadyPaid
	}

	tx := models.PaymentTransaction{
		ID:        uuid.New().String(),
		Domain:    domain,
		EntityID:  item.id,
		Amount:    req.Amount,
		Method:    req.Method,
		Status:    models.TransactionCompleted,
		CreatedAt: now,
	}
	if receiptURL != nil {
		tx.ReceiptURL = receiptURL(tx.ID)
	}
	repo.CreatePayment(tx)

	return &tx, nil
}

// call is transport.Call for accessors that cannot fail on their own
func call[T any](ctx context.Context, t *transport.Transport, req transport.Request, fn func() T) (T, error) {
	return transport.Call(ctx, t, req, func() (T, error) { return fn(), nil })
}
