package models

import "time"

// Device types
const (
	DeviceProjector      = "projector"
	DeviceComputer       = "computer"
	DeviceAirConditioner = "air_conditioner"
	DeviceLight          = "light"
	DeviceOther          = "other"
)

// Report states
const (
	ReportPending    = "pending"
	ReportProcessing = "processing"
	ReportResolved   = "resolved"
)

// DeviceReport is a fault reported in a classroom
type DeviceReport struct {
	ID          string    `json:"id" example:"rep-001"`
	Building    string    `json:"building" example:"G2"`
	Room        string    `json:"room" example:"301"`
	DeviceType  string    `json:"device_type" example:"projector"`
	Description string    `json:"description" example:"Máy chiếu không nhận tín hiệu HDMI"`
	Status      string    `json:"status" example:"pending"`
	ReportedAt  time.Time `json:"reported_at"`
}

// DeviceReportInput is the body of a new fault report
type DeviceReportInput struct {
	Building    string `json:"building" binding:"required" validate:"required,max=16" example:"G2"`
	Room        string `json:"room" binding:"required" validate:"required,max=16" example:"301"`
	DeviceType  string `json:"device_type" binding:"required" validate:"oneof=projector computer air_conditioner light other" example:"projector"`
	Description string `json:"description" binding:"required" validate:"required,min=10,max=1000" example:"Máy chiếu không nhận tín hiệu HDMI"`
}

// DeviceReportFilter selects reports
type DeviceReportFilter struct {
	Status     string `json:"status" form:"status" validate:"oneof=all pending processing resolved"`
	DeviceType string `json:"device_type" form:"device_type" validate:"oneof=all projector computer air_conditioner light other"`
}

// Normalize fills empty fields with "all"
func (f DeviceReportFilter) Normalize() DeviceReportFilter {
	f.Status = orAll(f.Status)
	f.DeviceType = orAll(f.DeviceType)
	return f
}

// Match reports whether r passes the filter
func (f DeviceReportFilter) Match(r DeviceReport) bool {
	return matches(f.Status, r.Status) && matches(f.DeviceType, r.DeviceType)
}
