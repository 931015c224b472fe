package repository

import "student-portal-svc/internal/models"

// OtherFeeRepository defines the interface for other fee data operations
type OtherFeeRepository interface {
	GetOtherFees() []models.OtherFeeItem
	GetOtherFeeByID(id string) (*models.OtherFeeItem, error)
}

// otherFeeRepository implements OtherFeeRepository
type otherFeeRepository struct {
	fees *collection[models.OtherFeeItem]
}

// NewOtherFeeRepository creates a new instance of OtherFeeRepository seeded with items
func NewOtherFeeRepository(items []models.OtherFeeItem) OtherFeeRepository {
	return &otherFeeRepository{
		fees: newCollection(items, func(o models.OtherFeeItem) string { return o.ID }),
	}
}

// GetOtherFees returns every other fee item
func (r *otherFeeRepository) GetOtherFees() []models.OtherFeeItem {
	return r.fees.all()
}

// GetOtherFeeByID retrieves an other fee item by ID
func (r *otherFeeRepository) GetOtherFeeByID(id string) (*models.OtherFeeItem, error) {
	return r.fees.find(id)
}
