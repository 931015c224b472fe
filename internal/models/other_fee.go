package models

import "time"

// Other fee categories
const (
	FeeCategoryInsurance = "insurance"
	FeeCategoryDormitory = "dormitory"
	FeeCategoryParking   = "parking"
	FeeCategoryExam      = "exam"
	FeeCategoryOther     = "other"
)

// OtherFeeItem is a non-tuition fee
type OtherFeeItem struct {
	ID       string    `json:"id" example:"fee-001"`
	Name     string    `json:"name" example:"Bảo hiểm y tế sinh viên"`
	Category string    `json:"category" example:"insurance"`
	Amount   int64     `json:"amount" example:"680400"`
	Paid     int64     `json:"paid" example:"0"`
	DueDate  time.Time `json:"due_date"`
	Status   string    `json:"status" example:"unpaid"`
}

// Remaining is computed, never stored
func (o OtherFeeItem) Remaining() int64 {
	return o.Amount - o.Paid
}

// OtherFeeFilter selects other fees
type OtherFeeFilter struct {
	Category string `json:"category" form:"category" validate:"oneof=all insurance dormitory parking exam other"`
	Status   string `json:"status" form:"status" validate:"oneof=all paid unpaid overdue upcoming"`
}

// Normalize fills empty fields with "all"
func (f OtherFeeFilter) Normalize() OtherFeeFilter {
	f.Category = orAll(f.Category)
	f.Status = orAll(f.Status)
	return f
}

// Match reports whether item passes the filter
func (f OtherFeeFilter) Match(item OtherFeeItem) bool {
	return matches(f.Category, item.Category) && matches(f.Status, item.Status)
}
