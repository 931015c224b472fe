package models

import "time"

// TuitionItem is the tuition charged for one registered course
type TuitionItem struct {
	ID         string    `json:"id" example:"tui-001"`
	Semester   string    `json:"semester" example:"HK1 2024-2025"`
	CourseCode string    `json:"course_code" example:"INT3306"`
	CourseName string    `json:"course_name" example:"Phát triển ứng dụng Web"`
	Credits    int       `json:"credits" example:"3"`
	Amount     int64     `json:"amount" example:"1650000"`
	Paid       int64     `json:"paid" example:"0"`
	DueDate    time.Time `json:"due_date"`
	Status     string    `json:"status" example:"unpaid"`
}

// Remaining is computed, never stored
func (t TuitionItem) Remaining() int64 {
	return t.Amount - t.Paid
}

// TuitionFilter selects tuition items
type TuitionFilter struct {
	Semester string `json:"semester" form:"semester" validate:"max=32"`
	Status   string `json:"status" form:"status" validate:"oneof=all paid unpaid overdue upcoming"`
}

// Normalize fills empty fields with "all"
func (f TuitionFilter) Normalize() TuitionFilter {
	f.Semester = orAll(f.Semester)
	f.Status = orAll(f.Status)
	return f
}

// Match reports whether item passes the filter
func (f TuitionFilter) Match(item TuitionItem) bool {
	return matches(f.Semester, item.Semester) && matches(f.Status, item.Status)
}
