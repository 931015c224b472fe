package models

import "time"

// One-stop service categories
const (
	ServiceCertificate = "certificate"
	ServiceAcademic    = "academic"
	ServiceFinance     = "finance"
	ServiceOther       = "other"
)

// Service request states
const (
	RequestPending    = "pending"
	RequestProcessing = "processing"
	RequestCompleted  = "completed"
	RequestRejected   = "rejected"
)

// Service is an administrative procedure offered by the one-stop office
type Service struct {
	ID                string   `json:"id" example:"svc-001"`
	Code              string   `json:"code" example:"GXN-SV"`
	Name              string   `json:"name" example:"Giấy xác nhận sinh viên"`
	Category          string   `json:"category" example:"certificate"`
	Description       string   `json:"description" example:"Xác nhận đang là sinh viên của trường"`
	ProcessingDays    int      `json:"processing_days" example:"3"`
	Fee               int64    `json:"fee" example:"0"`
	RequiredDocuments []string `json:"required_documents"`
}

// ServiceRequest is a submitted one-stop application
type ServiceRequest struct {
	ID           string    `json:"id" example:"req-001"`
	ServiceID    string    `json:"service_id" example:"svc-001"`
	ServiceName  string    `json:"service_name" example:"Giấy xác nhận sinh viên"`
	Copies       int       `json:"copies" example:"2"`
	Reason       string    `json:"reason" example:"Bổ sung hồ sơ vay vốn"`
	Status       string    `json:"status" example:"pending"`
	CreatedAt    time.Time `json:"created_at"`
	ExpectedDate time.Time `json:"expected_date"`
}

// ServiceRequestInput is the body of a one-stop submission
type ServiceRequestInput struct {
	ServiceID string `json:"service_id" binding:"required" validate:"required" example:"svc-001"`
	Copies    int    `json:"copies" validate:"min=1,max=10" example:"2"`
	Reason    string `json:"reason" validate:"required,max=500" example:"Bổ sung hồ sơ vay vốn"`
}

// ServiceFilter selects catalog entries
type ServiceFilter struct {
	Category string `json:"category" form:"category" validate:"oneof=all certificate academic finance other"`
}

// Normalize fills empty fields with "all"
func (f ServiceFilter) Normalize() ServiceFilter {
	f.Category = orAll(f.Category)
	return f
}

// Match reports whether s passes the filter
func (f ServiceFilter) Match(s Service) bool {
	return matches(f.Category, s.Category)
}

// ServiceRequestFilter selects submitted requests
type ServiceRequestFilter struct {
	Status string `json:"status" form:"status" validate:"oneof=all pending processing completed rejected"`
}

// Normalize fills empty fields with "all"
func (f ServiceRequestFilter) Normalize() ServiceRequestFilter {
	f.Status = orAll(f.Status)
	return f
}

// Match reports whether r passes the filter
func (f ServiceRequestFilter) Match(r ServiceRequest) bool {
	return matches(f.Status, r.Status)
}
