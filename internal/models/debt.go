package models

import "time"

// Debt types
const (
	DebtTypeTuition   = "tuition"
	DebtTypeInsurance = "insurance"
	DebtTypeService   = "service"
	DebtTypeOther     = "other"
)

// DebtItem is one outstanding or settled obligation of the student
type DebtItem struct {
	ID          string    `json:"id" example:"debt-001"`
	DebtCode    string    `json:"debt_code" example:"HP2023-2024-2"`
	Description string    `json:"description" example:"Học phí học kỳ 2 năm học 2023-2024"`
	DebtType    string    `json:"debt_type" example:"tuition"`
	Semester    string    `json:"semester" example:"HK2 2023-2024"`
	Amount      int64     `json:"amount" example:"12500000"`
	Paid        int64     `json:"paid" example:"0"`
	DueDate     time.Time `json:"due_date"`
	Status      string    `json:"status" example:"unpaid"`
}

// Remaining is computed, never stored
func (d DebtItem) Remaining() int64 {
	return d.Amount - d.Paid
}

// DebtFilter selects debt items
type DebtFilter struct {
	Status   string `json:"status" form:"status" validate:"oneof=all paid unpaid overdue upcoming"`
	DebtType string `json:"debt_type" form:"debt_type" validate:"oneof=all tuition insurance service other"`
	Semester string `json:"semester" form:"semester" validate:"max=32"`
}

// Normalize fills empty fields with "all"
func (f DebtFilter) Normalize() DebtFilter {
	f.Status = orAll(f.Status)
	f.DebtType = orAll(f.DebtType)
	f.Semester = orAll(f.Semester)
	return f
}

// Match reports whether item passes the filter
func (f DebtFilter) Match(item DebtItem) bool {
	return matches(f.Status, item.Status) &&
		matches(f.DebtType, item.DebtType) &&
		matches(f.Semester, item.Semester)
}
