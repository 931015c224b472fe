package repository

import "student-portal-svc/internal/models"

// DepositRepository defines the interface for deposit data operations
type DepositRepository interface {
	GetTransactions() []models.DepositTransaction
	CreateTransaction(tx models.DepositTransaction)
}

// depositRepository implements DepositRepository
type depositRepository struct {
	transactions *collection[models.DepositTransaction]
}

// NewDepositRepository creates a new instance of DepositRepository seeded with transactions
func NewDepositRepository(items []models.DepositTransaction) DepositRepository {
	return &depositRepository{
		transactions: newCollection(items, func(d models.DepositTransaction) string { return d.ID }),
	}
}

// GetTransactions returns every deposit transaction in insertion order
func (r *depositRepository) GetTransactions() []models.DepositTransaction {
	return r.transactions.all()
}

// CreateTransaction appends a transaction
func (r *depositRepository) CreateTransaction(tx models.DepositTransaction) {
	r.transactions.add(tx)
}
