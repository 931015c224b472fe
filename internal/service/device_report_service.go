package service

import (
	"context"
	"sort"
	"strings"

	"student-portal-svc/internal/models"
	"student-portal-svc/internal/repository"
	"student-portal-svc/internal/transport"
	"student-portal-svc/pkg/logger"
)

// DeviceReportService defines the interface for classroom fault reports
type DeviceReportService interface {
	GetReports(ctx context.Context, filter models.DeviceReportFilter) ([]models.DeviceReport, error)
	CreateReport(ctx context.Context, input models.DeviceReportInput) (*models.DeviceReport, error)
}

// deviceReportService implements DeviceReportService
type deviceReportService struct {
	reportRepo repository.DeviceReportRepository
	transport  *transport.Transport
	clock      Clock
	logger     *logger.Logger
}

// NewDeviceReportService creates a new instance of DeviceReportService
func NewDeviceReportService(reportRepo repository.DeviceReportRepository, t *transport.Transport, clock Clock, logger *logger.Logger) DeviceReportService {
	return &deviceReportService{
		reportRepo: reportRepo,
		transport:  t,
		clock:      clockOrNow(clock),
		logger:     logger,
	}
}

// GetReports returns reports matching filter, newest first
func (s *deviceReportService) GetReports(ctx context.Context, filter models.DeviceReportFilter) ([]models.DeviceReport, error) {
	filter = filter.Normalize()
	if err := models.Validate(filter); err != nil {
		return nil, err
	}

	return call(ctx, s.transport, transport.Get(PathReportList, transport.Normal), func() []models.DeviceReport {
		out := []models.DeviceReport{}
		for _, r := range s.reportRepo.GetReports() {
			if filter.Match(r) {
				out = append(out, r)
			}
		}
		sort.SliceStable(out, func(i, j int) bool { return out[i].ReportedAt.After(out[j].ReportedAt) })
		return out
	})
}

// CreateReport files a new pending report
func (s *deviceReportService) CreateReport(ctx context.Context, input models.DeviceReportInput) (*models.DeviceReport, error) {
	input.Building = strings.TrimSpace(input.Building)
	input.Room = strings.TrimSpace(input.Room)
	input.Description = strings.TrimSpace(input.Description)
	if err := models.Validate(input); err != nil {
		return nil, err
	}

	return call(ctx, s.transport, transport.Post(PathReportCreate, transport.Normal), func() *models.DeviceReport {
		report := models.DeviceReport{
			ID:          newID("rep"),
			Building:    strings.ToUpper(input.Building),
			Room:        input.Room,
			DeviceType:  input.DeviceType,
			Description: input.Description,
			Status:      models.ReportPending,
			ReportedAt:  s.clock(),
		}
		s.reportRepo.CreateReport(report)

		s.logger.WithFields(map[string]interface{}{
			"report_id":   report.ID,
			"building":    report.Building,
			"room":        report.Room,
			"device_type": report.DeviceType,
		}).Info("Device report created")

		return &report
	})
}
