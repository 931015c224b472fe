package repository

import "student-portal-svc/internal/models"

// DeviceReportRepository defines the interface for device fault reports
type DeviceReportRepository interface {
	GetReports() []models.DeviceReport
	CreateReport(report models.DeviceReport)
}

// deviceReportRepository implements DeviceReportRepository
type deviceReportRepository struct {
	reports *collection[models.DeviceReport]
}

// NewDeviceReportRepository creates a new instance of DeviceReportRepository
func NewDeviceReportRepository(items []models.DeviceReport) DeviceReportRepository {
	return &deviceReportRepository{
		reports: newCollection(items, func(d models.DeviceReport) string { return d.ID }),
	}
}

// GetReports returns every report in insertion order
func (r *deviceReportRepository) GetReports() []models.DeviceReport {
	return r.reports.all()
}

// CreateReport appends a report
func (r *deviceReportRepository) CreateReport(report models.DeviceReport) {
	r.reports.add(report)
}
