package service

import (
	"context"
	"fmt"

	"student-portal-svc/internal/models"
	"student-portal-svc/internal/models/response"
	"student-portal-svc/internal/repository"
	"student-portal-svc/internal/transport"
	"student-portal-svc/pkg/logger"
)

// DebtService defines the interface for debt operations
type DebtService interface {
	GetSummary(ctx context.Context) (*response.DebtSummary, error)
	GetList(ctx context.Context, filter models.DebtFilter) ([]models.DebtItem, error)
	GetDetail(ctx context.Context, id string) (*models.DebtItem, error)
	Pay(ctx context.Context, req models.PaymentRequest) (*models.PaymentTransaction, error)
}

// debtService implements DebtService
type debtService struct {
	debtRepo    repository.DebtRepository
	paymentRepo repository.PaymentRepository
	transport   *transport.Transport
	clock       Clock
	logger      *logger.Logger
}

// NewDebtService creates a new instance of DebtService
func NewDebtService(debtRepo repository.DebtRepository, paymentRepo repository.PaymentRepository, t *transport.Transport, clock Clock, logger *logger.Logger) DebtService {
	return &debtService{
		debtRepo:    debtRepo,
		paymentRepo: paymentRepo,
		transport:   t,
		clock:       clockOrNow(clock),
		logger:      logger,
	}
}

// GetSummary recomputes the debt totals from the debt list
func (s *debtService) GetSummary(ctx context.Context) (*response.DebtSummary, error) {
	return call(ctx, s.transport, transport.Get(PathDebtSummary, transport.Light), func() *response.DebtSummary {
		return SummarizeDebts(s.debtRepo.GetDebts())
	})
}

// GetList returns the debt items matching filter
func (s *debtService) GetList(ctx context.Context, filter models.DebtFilter) ([]models.DebtItem, error) {
	filter = filter.Normalize()
	if err := models.Validate(filter); err != nil {
		return nil, err
	}

	return call(ctx, s.transport, transport.Get(PathDebtList, transport.Normal), func() []models.DebtItem {
		out := []models.DebtItem{}
		for _, d := range s.debtRepo.GetDebts() {
			if filter.Match(d) {
				out = append(out, d)
			}
		}
		return out
	})
}

// GetDetail retrieves one debt item
func (s *debtService) GetDetail(ctx context.Context, id string) (*models.DebtItem, error) {
	return transport.Call(ctx, s.transport, transport.Get(PathDebtDetail, transport.Light), func() (*models.DebtItem, error) {
		debt, err := s.debtRepo.GetDebtByID(id)
		if err != nil {
			s.logger.WithError(err).WithField("debt_id", id).Error("Failed to get debt item")
			return nil, fmt.Errorf("debt %s: %w", id, err)
		}
		return debt, nil
	})
}

// Pay records a simulated payment against a debt item
func (s *debtService) Pay(ctx context.Context, req models.PaymentRequest) (*models.PaymentTransaction, error) {
	if err := models.Validate(req); err != nil {
		return nil, err
	}

	return transport.Call(ctx, s.transport, transport.Post(PathDebtPay, transport.Heavy), func() (*models.PaymentTransaction, error) {
		debt, err := s.debtRepo.GetDebtByID(req.EntityID)
		if err != nil {
			s.logger.WithError(err).WithField("debt_id", req.EntityID).Error("Failed to get debt item")
			return nil, fmt.Errorf("debt %s: %w", req.EntityID, err)
		}

		tx, err := recordPayment(s.paymentRepo, models.DomainDebt, payable{id: debt.ID, status: debt.Status}, req, nil, s.clock())
		if err != nil {
			return nil, err
		}

		s.logger.WithFields(map[string]interface{}{
			"transaction_id": tx.ID,
			"debt_code":      debt.DebtCode,
			"amount":         tx.Amount,
			"method":         tx.Method,
		}).Info("Debt payment recorded")

		return tx, nil
	})
}

// SummarizeDebts derives a DebtSummary from debt items
func SummarizeDebts(items []models.DebtItem) *response.DebtSummary {
	summary := &response.DebtSummary{}
	for _, d := range items {
		summary.TotalDebt += d.Amount
		summary.TotalPaid += d.Paid
		switch d.Status {
		case models.StatusUnpaid:
			summary.UnpaidCount++
		case models.StatusOverdue:
			summary.OverdueCount++
		}
		if d.Status != models.StatusPaid {
			due := d.DueDate
			if summary.NextDueDate == nil || due.Before(*summary.NextDueDate) {
				summary.NextDueDate = &due
			}
		}
	}
	summary.Remaining = summary.TotalDebt - summary.TotalPaid
	return summary
}
