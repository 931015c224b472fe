package repository

import "student-portal-svc/internal/models"

// DebtRepository defines the interface for debt data operations
type DebtRepository interface {
	GetDebts() []models.DebtItem
	GetDebtByID(id string) (*models.DebtItem, error)
}

// debtRepository implements DebtRepository
type debtRepository struct {
	debts *collection[models.DebtItem]
}

// NewDebtRepository creates a new instance of DebtRepository seeded with items
func NewDebtRepository(items []models.DebtItem) DebtRepository {
	return &debtRepository{
		debts: newCollection(items, func(d models.DebtItem) string { return d.ID }),
	}
}

// GetDebts returns every debt item
func (r *debtRepository) GetDebts() []models.DebtItem {
	return r.debts.all()
}

// GetDebtByID retrieves a debt item by ID
func (r *debtRepository) GetDebtByID(id string) (*models.DebtItem, error) {
	return r.debts.find(id)
}
