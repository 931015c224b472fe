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

// OtherFeeService defines the interface for non-tuition fee operations
type OtherFeeService interface {
	GetSummary(ctx context.Context) (*response.OtherFeesSummary, error)
	GetList(ctx context.Context, filter models.OtherFeeFilter) ([]models.OtherFeeItem, error)
	Pay(ctx context.Context, req models.PaymentRequest) (*models.PaymentTransaction, error)
}

// otherFeeService implements OtherFeeService
type otherFeeService struct {
	feeRepo     repository.OtherFeeRepository
	paymentRepo repository.PaymentRepository
	transport   *transport.Transport
	clock       Clock
	logger      *logger.Logger
}

// NewOtherFeeService creates a new instance of OtherFeeService
func NewOtherFeeService(feeRepo repository.OtherFeeRepository, paymentRepo repository.PaymentRepository, t *transport.Transport, clock Clock, logger *logger.Logger) OtherFeeService {
	return &otherFeeService{
		feeRepo:     feeRepo,
		paymentRepo: paymentRepo,
		transport:   t,
		clock:       clockOrNow(clock),
		logger:      logger,
	}
}

// GetSummary recomputes the fee totals from the fee list, so TotalDebt always equals the sum of remaining amounts
func (s *otherFeeService) GetSummary(ctx context.Context) (*response.OtherFeesSummary, error) {
	return call(ctx, s.transport, transport.Get(PathOtherFeesSummary, transport.Light), func() *response.OtherFeesSummary {
		summary := &response.OtherFeesSummary{}
		for _, fee := range s.feeRepo.GetOtherFees() {
			summary.TotalAmount += fee.Amount
			summary.TotalPaid += fee.Paid
			if fee.Status != models.StatusPaid {
				summary.UnpaidCount++
			}
		}
		summary.TotalDebt = summary.TotalAmount - summary.TotalPaid
		return summary
	})
}

// GetList returns the fees matching filter
func (s *otherFeeService) GetList(ctx context.Context, filter models.OtherFeeFilter) ([]models.OtherFeeItem, error) {
	filter = filter.Normalize()
	if err := models.Validate(filter); err != nil {
		return nil, err
	}

	return call(ctx, s.transport, transport.Get(PathOtherFeesList, transport.Normal), func() []models.OtherFeeItem {
		out := []models.OtherFeeItem{}
		for _, fee := range s.feeRepo.GetOtherFees() {
			if filter.Match(fee) {
				out = append(out, fee)
			}
		}
		return out
	})
}

// Pay records a simulated payment against a fee
func (s *otherFeeService) Pay(ctx context.Context, req models.PaymentRequest) (*models.PaymentTransaction, error) {
	if err := models.Validate(req); err != nil {
		return nil, err
	}

	return transport.Call(ctx, s.transport, transport.Post(PathOtherFeesPay, transport.Heavy), func() (*models.PaymentTransaction, error) {
		fee, err := s.feeRepo.GetOtherFeeByID(req.EntityID)
		if err != nil {
			s.logger.WithError(err).WithField("fee_id", req.EntityID).Error("Failed to get fee")
			return nil, fmt.Errorf("fee %s: %w", req.EntityID, err)
		}

		tx, err := recordPayment(s.paymentRepo, models.DomainOtherFee, payable{id: fee.ID, status: fee.Status}, req, nil, s.clock())
		if err != nil {
			return nil, err
		}

		s.logger.WithFields(map[string]interface{}{
			"transaction_id": tx.ID,
			"fee_id":         fee.ID,
			"amount":         tx.Amount,
		}).Info("Fee payment recorded")

		return tx, nil
	})
}
