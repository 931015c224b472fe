package models

// Student is the mock account behind a session
type Student struct {
	StudentID    string `json:"student_id" example:"SV2021001"`
	FullName     string `json:"full_name" example:"Nguyễn Văn An"`
	Email        string `json:"email" example:"an.nv@student.edu.vn"`
	ClassName    string `json:"class_name" example:"K66-CNTT1"`
	Major        string `json:"major" example:"Công nghệ thông tin"`
	Faculty      string `json:"faculty" example:"Khoa Công nghệ thông tin"`
	CohortYear   int    `json:"cohort_year" example:"2021"`
	PasswordHash []byte `json:"-"`
}

// LoginRequest is the body of a login
type LoginRequest struct {
	StudentID string `json:"student_id" binding:"required" example:"SV2021001"`
	Password  string `json:"password" binding:"required" example:"123456"`
}
