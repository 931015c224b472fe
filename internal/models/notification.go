package models

import "time"

// Notification categories
const (
	NotificationAcademic = "academic"
	NotificationFinance  = "finance"
	NotificationEvent    = "event"
	NotificationSystem   = "system"
)

// Notification priorities
const (
	PriorityHigh   = "high"
	PriorityNormal = "normal"
	PriorityLow    = "low"
)

// Read states understood by NotificationFilter
const (
	ReadStateRead   = "read"
	ReadStateUnread = "unread"
)

// Notification is a message addressed to the student
type Notification struct {
	ID        string    `json:"id" example:"noti-001"`
	Title     string    `json:"title" example:"Thông báo đóng học phí học kỳ 1"`
	Content   string    `json:"content" example:"Sinh viên hoàn thành học phí trước ngày 30/09"`
	Category  string    `json:"category" example:"finance"`
	Priority  string    `json:"priority" example:"high"`
	Sender    string    `json:"sender" example:"Phòng Kế hoạch - Tài chính"`
	Read      bool      `json:"read" example:"false"`
	CreatedAt time.Time `json:"created_at"`
}

// NotificationFilter selects notifications
type NotificationFilter struct {
	Category  string `json:"category" form:"category" validate:"oneof=all academic finance event system"`
	ReadState string `json:"read_state" form:"read_state" validate:"oneof=all read unread"`
}

// Normalize fills empty fields with "all"
func (f NotificationFilter) Normalize() NotificationFilter {
	f.Category = orAll(f.Category)
	f.ReadState = orAll(f.ReadState)
	return f
}

// Match reports whether n passes the filter
func (f NotificationFilter) Match(n Notification) bool {
	if !matches(f.Category, n.Category) {
		return false
	}
	switch f.ReadState {
	case ReadStateRead:
		return n.Read
	case ReadStateUnread:
		return !n.Read
	}
	return true
}
