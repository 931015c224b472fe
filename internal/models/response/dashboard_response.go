package response

import (
	"time"

	"student-portal-svc/internal/models"
)

// DashboardResponse aggregates the home page of the portal
type DashboardResponse struct {
	Student             models.Student        `json:"student"`
	Tuition             TuitionSummary        `json:"tuition"`
	Debt                DebtSummary           `json:"debt"`
	Deposit             DepositBalance        `json:"deposit"`
	UnreadNotifications int                   `json:"unread_notifications" example:"3"`
	LatestNotifications []models.Notification `json:"latest_notifications"`
	UpcomingDeadlines   []Deadline            `json:"upcoming_deadlines"`
}

// Deadline is an unpaid item due soon
type Deadline struct {
	Title   string    `json:"title" example:"Học phí học kỳ 2 năm học 2023-2024"`
	Amount  int64     `json:"amount" example:"12500000"`
	DueDate time.Time `json:"due_date"`
	Source  string    `json:"source" example:"debt"`
}
