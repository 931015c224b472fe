package models

import "time"

// Deposit transaction types
const (
	DepositTypeDeposit = "deposit"
	DepositTypePayment = "payment"
	DepositTypeRefund  = "refund"
)

// Date ranges understood by DepositFilter
const (
	Range7Days  = "7days"
	Range30Days = "30days"
	Range90Days = "90days"
)

// MinDepositAmount is the smallest top-up the portal accepts
const MinDepositAmount int64 = 10000

// DepositTransaction is one movement on the student's prepaid account
type DepositTransaction struct {
	ID          string    `json:"id" example:"dep-001"`
	Type        string    `json:"type" example:"deposit"`
	Amount      int64     `json:"amount" example:"2000000"`
	Method      string    `json:"method" example:"bank_transfer"`
	Description string    `json:"description" example:"Nạp tiền vào tài khoản"`
	Status      string    `json:"status" example:"completed"`
	CreatedAt   time.Time `json:"created_at"`
}

// Signed returns the balance effect of the transaction
func (d DepositTransaction) Signed() int64 {
	if d.Type == DepositTypePayment {
		return -d.Amount
	}
	return d.Amount
}

// DepositRequest is the body of a top-up
type DepositRequest struct {
	Amount int64  `json:"amount" binding:"required" example:"500000"`
	Method string `json:"method" binding:"required" validate:"oneof=card bank_transfer e_wallet" example:"card"`
}

// DepositFilter selects deposit transactions
type DepositFilter struct {
	Type      string `json:"type" form:"type" validate:"oneof=all deposit payment refund"`
	DateRange string `json:"date_range" form:"date_range" validate:"oneof=all 7days 30days 90days"`
}

// Normalize fills empty fields with "all"
func (f DepositFilter) Normalize() DepositFilter {
	f.Type = orAll(f.Type)
	f.DateRange = orAll(f.DateRange)
	return f
}

// Since returns the lower time bound of the date range relative to now
func (f DepositFilter) Since(now time.Time) (time.Time, bool) {
	switch f.DateRange {
	case Range7Days:
		return now.AddDate(0, 0, -7), true
	case Range30Days:
		return now.AddDate(0, 0, -30), true
	case Range90Days:
		return now.AddDate(0, 0, -90), true
	}
	return time.Time{}, false
}

// Match reports whether tx passes the filter at the given time
func (f DepositFilter) Match(tx DepositTransaction, now time.Time) bool {
	if !matches(f.Type, tx.Type) {
		return false
	}
	if since, ok := f.Since(now); ok && tx.CreatedAt.Before(since) {
		return false
	}
	return true
}
