package service

import (
	"context"
	"fmt"
	"sort"

	"student-portal-svc/internal/models"
	"student-portal-svc/internal/models/response"
	"student-portal-svc/internal/repository"
	"student-portal-svc/internal/transport"
	"student-portal-svc/pkg/logger"
)

// DepositService defines the interface for prepaid account operations
type DepositService interface {
	GetBalance(ctx context.Context) (*response.DepositBalance, error)
	GetTransactions(ctx context.Context, filter models.DepositFilter) ([]models.DepositTransaction, error)
	CreateDeposit(ctx context.Context, amount int64, method string) (*models.DepositTransaction, error)
}

// depositService implements DepositService
type depositService struct {
	depositRepo repository.DepositRepository
	transport   *transport.Transport
	clock       Clock
	logger      *logger.Logger
}

// NewDepositService creates a new instance of DepositService
func NewDepositService(depositRepo repository.DepositRepository, t *transport.Transport, clock Clock, logger *logger.Logger) DepositService {
	return &depositService{
		depositRepo: depositRepo,
		transport:   t,
		clock:       clockOrNow(clock),
		logger:      logger,
	}
}

// GetBalance derives the balance from completed transactions
func (s *depositService) GetBalance(ctx context.Context) (*response.DepositBalance, error) {
	return call(ctx, s.transport, transport.Get(PathDepositBalance, transport.Light), func() *response.DepositBalance {
		balance := &response.DepositBalance{}
		for _, tx := range s.depositRepo.GetTransactions() {
			if tx.Status != models.TransactionCompleted {
				continue
			}
			if tx.Type == models.DepositTypePayment {
				balance.TotalSpent += tx.Amount
			} else {
				balance.TotalDeposit += tx.Amount
			}
			balance.Balance += tx.Signed()
			if balance.LastUpdated == nil || tx.CreatedAt.After(*balance.LastUpdated) {
				at := tx.CreatedAt
				balance.LastUpdated = &at
			}
		}
		return balance
	})
}

// GetTransactions returns the transactions matching filter, newest first
func (s *depositService) GetTransactions(ctx context.Context, filter models.DepositFilter) ([]models.DepositTransaction, error) {
	filter = filter.Normalize()
	if err := models.Validate(filter); err != nil {
		return nil, err
	}

	return call(ctx, s.transport, transport.Get(PathDepositList, transport.Normal), func() []models.DepositTransaction {
		now := s.clock()
		out := []models.DepositTransaction{}
		for _, tx := range s.depositRepo.GetTransactions() {
			if filter.Match(tx, now) {
				out = append(out, tx)
			}
		}
		sort.SliceStable(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
		return out
	})
}

// CreateDeposit records a completed top-up. The minimum amount is enforced by callers;
// here only a positive amount and a known method are required.
func (s *depositService) CreateDeposit(ctx context.Context, amount int64, method string) (*models.DepositTransaction, error) {
	if amount <= 0 {
		return nil, fmt.Errorf("%w: amount must be positive", ErrValidation)
	}
	if err := models.Validate(models.DepositRequest{Amount: amount, Method: method}); err != nil {
		return nil, err
	}

	return call(ctx, s.transport, transport.Post(PathDepositCreate, transport.Heavy), func() *models.DepositTransaction {
		tx := models.DepositTransaction{
			ID:          newID("dep"),
			Type:        models.DepositTypeDeposit,
			Amount:      amount,
			Method:      method,
			Description: "Nạp tiền vào tài khoản",
			Status:      models.TransactionCompleted,
			CreatedAt:   s.clock(),
		}
		s.depositRepo.CreateTransaction(tx)

		s.logger.WithFields(map[string]interface{}{
			"transaction_id": tx.ID,
			"amount":         amount,
			"method":         method,
		}).Info("Deposit recorded")

		return &tx
	})
}
