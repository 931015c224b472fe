package viewstate

import (
	"context"
	"errors"
	"fmt"

	"student-portal-svc/internal/models"
	"student-portal-svc/internal/repository"
	"student-portal-svc/internal/toast"
)

// Messages shared by the payment actions
const (
	PaySuccessMessage    = "Thanh toán thành công"
	PayFailureMessage    = "Thanh toán thất bại. Vui lòng thử lại"
	InvalidAmountMessage = "Vui lòng nhập số tiền hợp lệ"
	InvalidMethodMessage = "Vui lòng chọn phương thức thanh toán"
	AlreadyPaidMessage   = "Khoản này đã được thanh toán"
	NotFoundMessage      = "Không tìm thấy dữ liệu"
)

// ErrRejected marks an action refused by caller-side validation; the service was not called
var ErrRejected = fmt.Errorf("%w: rejected before submission", models.ErrValidation)

// ActionError carries the message shown to the student for a failed action
type ActionError struct {
	Message string
	Err     error
}

func (e *ActionError) Error() string {
	return e.Message + ": " + e.Err.Error()
}

func (e *ActionError) Unwrap() error {
	return e.Err
}

// reject shows a warning and returns an ActionError without calling any service
func reject(n toast.Notifier, message string) error {
	n.Show(message, toast.KindWarning, toast.DefaultDuration)
	return &ActionError{Message: message, Err: ErrRejected}
}

// outcome maps well-known errors to their own message; anything else gets the fallback
type outcome struct {
	success  string
	failure  string
	specific map[error]string
}

func (o outcome) message(err error) string {
	for target, msg := range o.specific {
		if errors.Is(err, target) {
			return msg
		}
	}
	return o.failure
}

// perform runs fn and toasts its outcome. refresh runs only after a success.
func perform[T any](ctx context.Context, n toast.Notifier, o outcome, fn func() (T, error), refresh func(context.Context)) (T, error) {
	v, err := fn()
	if err != nil {
		msg := o.message(err)
		n.Show(msg, toast.KindError, toast.DefaultDuration)
		return v, &ActionError{Message: msg, Err: err}
	}

	n.Show(o.success, toast.KindSuccess, toast.DefaultDuration)
	if refresh != nil {
		refresh(ctx)
	}
	return v, nil
}

// lookup runs a single-record read. A failure toasts NotFoundMessage or failure.
func lookup[T any](n toast.Notifier, failure string, fn func() (T, error)) (T, error) {
	v, err := fn()
	if err != nil {
		msg := failure
		if errors.Is(err, repository.ErrRecordNotFound) {
			msg = NotFoundMessage
		}
		n.Show(msg, toast.KindError, toast.DefaultDuration)
		return v, &ActionError{Message: msg, Err: err}
	}
	return v, nil
}

// checkPayment validates a payment request before it leaves the page
func checkPayment(n toast.Notifier, req models.PaymentRequest) error {
	if req.Amount <= 0 {
		return reject(n, InvalidAmountMessage)
	}
	switch req.Method {
	case models.MethodCard, models.MethodBankTransfer, models.MethodEWallet:
	default:
		return reject(n, InvalidMethodMessage)
	}
	return nil
}
