package models

import "time"

// Planned course states
const (
	PlanRegistered = "registered"
	PlanPlanned    = "planned"
	PlanWaitlisted = "waitlisted"
)

// PlannedCourse is a course placed in a semester plan
type PlannedCourse struct {
	ID         string    `json:"id" example:"plan-001"`
	Semester   string    `json:"semester" example:"HK1 2024-2025"`
	CourseCode string    `json:"course_code" example:"INT3306"`
	CourseName string    `json:"course_name" example:"Phát triển ứng dụng Web"`
	Credits    int       `json:"credits" example:"3"`
	Schedule   string    `json:"schedule" example:"Thứ 2, tiết 1-3, phòng 301-G2"`
	Instructor string    `json:"instructor" example:"TS. Trần Minh Đức"`
	Status     string    `json:"status" example:"registered"`
	AddedAt    time.Time `json:"added_at"`
}

// SemesterInfo describes one semester a plan can be built for
type SemesterInfo struct {
	Code       string    `json:"code" example:"HK1 2024-2025"`
	Name       string    `json:"name" example:"Học kỳ 1 năm học 2024-2025"`
	MaxCredits int       `json:"max_credits" example:"24"`
	MinCredits int       `json:"min_credits" example:"14"`
	StartDate  time.Time `json:"start_date"`
	EndDate    time.Time `json:"end_date"`
}

// AddPlannedCourseRequest is the body of an add-to-plan action
type AddPlannedCourseRequest struct {
	CourseCode string `json:"course_code" binding:"required" validate:"required,max=16" example:"INT3306"`
	CourseName string `json:"course_name" binding:"required" validate:"required,max=128" example:"Phát triển ứng dụng Web"`
	Credits    int    `json:"credits" binding:"required" validate:"min=1,max=10" example:"3"`
	Schedule   string `json:"schedule" validate:"max=128" example:"Thứ 2, tiết 1-3"`
	Instructor string `json:"instructor" validate:"max=128" example:"TS. Trần Minh Đức"`
}
