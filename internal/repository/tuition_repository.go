package repository

import "student-portal-svc/internal/models"

// TuitionRepository defines the interface for tuition data operations
type TuitionRepository interface {
	GetTuitionItems() []models.TuitionItem
	GetTuitionItemByID(id string) (*models.TuitionItem, error)
}

// tuitionRepository implements TuitionRepository
type tuitionRepository struct {
	items *collection[models.TuitionItem]
}

// NewTuitionRepository creates a new instance of TuitionRepository seeded with items
func NewTuitionRepository(items []models.TuitionItem) TuitionRepository {
	return &tuitionRepository{
		items: newCollection(items, func(t models.TuitionItem) string { return t.ID }),
	}
}

// GetTuitionItems returns every tuition item
func (r *tuitionRepository) GetTuitionItems() []models.TuitionItem {
	return r.items.all()
}

// GetTuitionItemByID retrieves a tuition item by ID
func (r *tuitionRepository) GetTuitionItemByID(id string) (*models.TuitionItem, error) {
	return r.items.find(id)
}
