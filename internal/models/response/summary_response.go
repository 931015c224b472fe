package response

import (
	"time"

	"student-portal-svc/internal/models"
)

// TuitionSummary is derived from the tuition items it summarises
type TuitionSummary struct {
	Semester     string `json:"semester" example:"HK1 2024-2025"`
	TotalCredits int    `json:"total_credits" example:"18"`
	TotalAmount  int64  `json:"total_amount" example:"9900000"`
	TotalPaid    int64  `json:"total_paid" example:"3300000"`
	Remaining    int64  `json:"remaining" example:"6600000"`
	ItemCount    int    `json:"item_count" example:"6"`
}

// DebtSummary is derived from the debt items it summarises
type DebtSummary struct {
	TotalDebt    int64      `json:"total_debt" example:"20500000"`
	TotalPaid    int64      `json:"total_paid" example:"11000000"`
	Remaining    int64      `json:"remaining" example:"9500000"`
	UnpaidCount  int        `json:"unpaid_count" example:"1"`
	OverdueCount int        `json:"overdue_count" example:"1"`
	NextDueDate  *time.Time `json:"next_due_date,omitempty"`
}

// OtherFeesSummary is derived from the other fee items it summarises
type OtherFeesSummary struct {
	TotalAmount int64 `json:"total_amount" example:"4180400"`
	TotalPaid   int64 `json:"total_paid" example:"1500000"`
	TotalDebt   int64 `json:"total_debt" example:"2680400"`
	UnpaidCount int   `json:"unpaid_count" example:"2"`
}

// DepositBalance is derived from completed deposit transactions
type DepositBalance struct {
	Balance      int64      `json:"balance" example:"1250000"`
	TotalDeposit int64      `json:"total_deposit" example:"3500000"`
	TotalSpent   int64      `json:"total_spent" example:"2250000"`
	LastUpdated  *time.Time `json:"last_updated,omitempty"`
}

// CurriculumOverview is derived from the program's courses
type CurriculumOverview struct {
	Program          string `json:"program" example:"Cử nhân Công nghệ thông tin"`
	TotalCredits     int    `json:"total_credits" example:"130"`
	CompletedCredits int    `json:"completed_credits" example:"68"`
	InProgress       int    `json:"in_progress_credits" example:"15"`
	RemainingCredits int    `json:"remaining_credits" example:"47"`
	CourseCount      int    `json:"course_count" example:"14"`

	// GPA is the credit-weighted mean of graded courses, on a 10-point scale
	GPA float64 `json:"gpa" example:"8.12"`
}

// SemesterPlanResponse is a plan and its credit budget
type SemesterPlanResponse struct {
	Semester     string                 `json:"semester" example:"HK1 2024-2025"`
	Name         string                 `json:"name" example:"Học kỳ 1 năm học 2024-2025"`
	Courses      []models.PlannedCourse `json:"courses"`
	TotalCredits int                    `json:"total_credits" example:"15"`
	MaxCredits   int                    `json:"max_credits" example:"24"`
	MinCredits   int                    `json:"min_credits" example:"14"`
}
