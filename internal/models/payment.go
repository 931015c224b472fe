package models

import "time"

// Status values shared by payable items (tuition, debt, other fees)
const (
	StatusPaid     = "paid"
	StatusUnpaid   = "unpaid"
	StatusOverdue  = "overdue"
	StatusUpcoming = "upcoming"
)

// Payment methods
const (
	MethodCard         = "card"
	MethodBankTransfer = "bank_transfer"
	MethodEWallet      = "e_wallet"
)

// TransactionCompleted is the only status a simulated payment ever reaches
const TransactionCompleted = "completed"

// Payment domains
const (
	DomainTuition  = "tuition"
	DomainDebt     = "debt"
	DomainOtherFee = "other_fee"
)

// PaymentRequest is the body of every pay action
type PaymentRequest struct {
	EntityID string `json:"entity_id" binding:"required" validate:"required" example:"debt-001"`
	Amount   int64  `json:"amount" binding:"required" validate:"gt=0" example:"5000000"`
	Method   string `json:"method" binding:"required" validate:"oneof=card bank_transfer e_wallet" example:"bank_transfer"`
}

// PaymentTransaction is the record returned by a pay action
type PaymentTransaction struct {
	ID         string    `json:"id" example:"9b2f3c84-0a6e-4c09-9d0f-0f1f7e0c1b2a"`
	Domain     string    `json:"domain" example:"debt"`
	EntityID   string    `json:"entity_id" example:"debt-001"`
	Amount     int64     `json:"amount" example:"5000000"`
	Method     string    `json:"method" example:"bank_transfer"`
	Status     string    `json:"status" example:"completed"`
	ReceiptURL string    `json:"receipt_url,omitempty" example:"/api/v1/tuition/receipts/9b2f3c84"`
	CreatedAt  time.Time `json:"created_at"`
}
