package repository

import "student-portal-svc/internal/models"

// PaymentRepository defines the interface for payment transaction records
type PaymentRepository interface {
	CreatePayment(tx models.PaymentTransaction)
	GetPaymentByID(id string) (*models.PaymentTransaction, error)
	GetPayments() []models.PaymentTransaction
}

// paymentRepository implements PaymentRepository
type paymentRepository struct {
	payments *collection[models.PaymentTransaction]
}

// NewPaymentRepository creates an empty PaymentRepository
func NewPaymentRepository() PaymentRepository {
	return &paymentRepository{
		payments: newCollection(nil, func(p models.PaymentTransaction) string { return p.ID }),
	}
}

// CreatePayment appends a payment transaction
func (r *paymentRepository) CreatePayment(tx models.PaymentTransaction) {
	r.payments.add(tx)
}

// GetPaymentByID retrieves a payment transaction by ID
func (r *paymentRepository) GetPaymentByID(id string) (*models.PaymentTransaction, error) {
	return r.payments.find(id)
}

// GetPayments returns every payment transaction
func (r *paymentRepository) GetPayments() []models.PaymentTransaction {
	return r.payments.all()
}
