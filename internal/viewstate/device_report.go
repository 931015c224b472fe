package viewstate

import (
	"context"
	"strings"
	"unicode/utf8"

	"student-portal-svc/internal/models"
	"student-portal-svc/internal/resource"
	"student-portal-svc/internal/service"
	"student-portal-svc/internal/toast"
	"student-portal-svc/pkg/logger"
)

// Device report page messages
const (
	ReportLoadErrorMessage     = "Có lỗi xảy ra khi tải danh sách báo cáo"
	ReportSuccessMessage       = "Gửi báo cáo thành công"
	ReportFailureMessage       = "Gửi báo cáo thất bại. Vui lòng thử lại"
	ReportMissingRoomMessage   = "Vui lòng nhập tòa nhà và phòng"
	ReportShortDescriptionMsg  = "Mô tả phải có ít nhất 10 ký tự"
	reportMinDescriptionLength = 10
)

// DeviceReportView is the device fault report page state
type DeviceReportView struct {
	svc      service.DeviceReportService
	notifier toast.Notifier
	list     *list[models.DeviceReportFilter, models.DeviceReport]
}

// NewDeviceReportView creates a DeviceReportView
func NewDeviceReportView(svc service.DeviceReportService, notifier toast.Notifier, log *logger.Logger) *DeviceReportView {
	return &DeviceReportView{
		svc:      svc,
		notifier: notifier,
		list: newList(svc.GetReports, func(r models.DeviceReport, k string) bool {
			return containsAny(k, r.Building, r.Room, r.Description)
		}, notifier,
			resource.WithName("device_reports.list"),
			resource.WithErrorMessage(ReportLoadErrorMessage),
			resource.WithLogger(log),
		),
	}
}

// Load fetches the reports with the current filter
func (v *DeviceReportView) Load(ctx context.Context) {
	<-v.list.fetch(ctx)
}

// SetFilter validates f and reloads the reports
func (v *DeviceReportView) SetFilter(ctx context.Context, f models.DeviceReportFilter) error {
	return v.list.setFilter(ctx, f)
}

// SetKeyword narrows the fetched reports without fetching again
func (v *DeviceReportView) SetKeyword(keyword string) {
	v.list.setKeyword(keyword)
}

// CreateReport checks the form, files the report, then reloads the list
func (v *DeviceReportView) CreateReport(ctx context.Context, input models.DeviceReportInput) (*models.DeviceReport, error) {
	if strings.TrimSpace(input.Building) == "" || strings.TrimSpace(input.Room) == "" {
		return nil, reject(v.notifier, ReportMissingRoomMessage)
	}
	if utf8.RuneCountInString(strings.TrimSpace(input.Description)) < reportMinDescriptionLength {
		return nil, reject(v.notifier, ReportShortDescriptionMsg)
	}

	return perform(ctx, v.notifier, outcome{success: ReportSuccessMessage, failure: ReportFailureMessage}, func() (*models.DeviceReport, error) {
		return v.svc.CreateReport(ctx, input)
	}, v.Load)
}

// Snapshot returns the current state
func (v *DeviceReportView) Snapshot() ListSnapshot[models.DeviceReportFilter, models.DeviceReport] {
	return v.list.snapshot()
}

// Close unmounts the view
func (v *DeviceReportView) Close() {
	v.list.close()
}
