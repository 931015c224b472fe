package service

import (
	"fmt"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"student-portal-svc/internal/models"
	"student-portal-svc/internal/repository"
	"student-portal-svc/pkg/format"
	"student-portal-svc/pkg/logger"
)

// XLSXContentType is the MIME type of generated spreadsheets
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// ExportService defines the interface for spreadsheet exports
type ExportService interface {
	ExportTuition(items []models.TuitionItem) (*models.ExportFile, error)
	GetFile(id string) (*models.ExportFile, error)
}

// exportService implements ExportService
type exportService struct {
	exportRepo repository.ExportRepository
	clock      Clock
	logger     *logger.Logger
}

// NewExportService creates a new instance of ExportService
func NewExportService(exportRepo repository.ExportRepository, clock Clock, logger *logger.Logger) ExportService {
	return &exportService{
		exportRepo: exportRepo,
		clock:      clockOrNow(clock),
		logger:     logger,
	}
}

// ExportTuition writes tuition items to an xlsx file and stores it
func (s *exportService) ExportTuition(items []models.TuitionItem) (*models.ExportFile, error) {
	f := excelize.NewFile()
	defer func() {
		if err := f.Close(); err != nil {
			s.logger.WithError(err).Warn("Error closing Excel file")
		}
	}()

	sheetName := "Học phí"
	index, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)

	headers := []string{"STT", "Học kỳ", "Mã học phần", "Tên học phần", "Số tín chỉ", "Số tiền", "Đã nộp", "Còn nợ", "Hạn nộp", "Trạng thái"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetName, cell, header)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"#D3D3D3"},
			Pattern: 1,
		},
		Alignment: &excelize.Alignment{
			Horizontal: "center",
			Vertical:   "center",
		},
	})
	if err == nil {
		lastCol, _ := excelize.ColumnNumberToName(len(headers))
		f.SetCellStyle(sheetName, "A1", lastCol+"1", headerStyle)
	}

	statusNames := map[string]string{
		models.StatusPaid:     "Đã nộp",
		models.StatusUnpaid:   "Chưa nộp",
		models.StatusOverdue:  "Quá hạn",
		models.StatusUpcoming: "Sắp đến hạn",
	}

	var total, paid int64
	for i, item := range items {
		row := i + 2
		status := item.Status
		if name, ok := statusNames[item.Status]; ok {
			status = name
		}

		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), i+1)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), item.Semester)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), item.CourseCode)
		f.SetCellValue(sheetName, fmt.Sprintf("D%d", row), item.CourseName)
		f.SetCellValue(sheetName, fmt.Sprintf("E%d", row), item.Credits)
		f.SetCellValue(sheetName, fmt.Sprintf("F%d", row), item.Amount)
		f.SetCellValue(sheetName, fmt.Sprintf("G%d", row), item.Paid)
		f.SetCellValue(sheetName, fmt.Sprintf("H%d", row), item.Remaining())
		f.SetCellValue(sheetName, fmt.Sprintf("I%d", row), format.FormatDate(item.DueDate))
		f.SetCellValue(sheetName, fmt.Sprintf("J%d", row), status)

		total += item.Amount
		paid += item.Paid
	}

	totalRow := len(items) + 2
	f.SetCellValue(sheetName, fmt.Sprintf("D%d", totalRow), "Tổng cộng")
	f.SetCellValue(sheetName, fmt.Sprintf("F%d", totalRow), total)
	f.SetCellValue(sheetName, fmt.Sprintf("G%d", totalRow), paid)
	f.SetCellValue(sheetName, fmt.Sprintf("H%d", totalRow), total-paid)

	for i := 1; i <= len(headers); i++ {
		col, _ := excelize.ColumnNumberToName(i)
		f.SetColWidth(sheetName, col, col, 15)
	}
	f.SetColWidth(sheetName, "D", "D", 40)

	if f.GetSheetName(0) == "Sheet1" {
		f.DeleteSheet("Sheet1")
	}

	buffer, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write Excel file: %w", err)
	}

	now := s.clock()
	file := models.ExportFile{
		ID:          uuid.New().String(),
		FileName:    fmt.Sprintf("hoc_phi_%s.xlsx", now.Format("20060102_150405")),
		ContentType: XLSXContentType,
		Content:     buffer.Bytes(),
		CreatedAt:   now,
	}
	s.exportRepo.SaveExport(file)

	s.logger.WithFields(map[string]interface{}{
		"file_id": file.ID,
		"rows":    len(items),
		"bytes":   len(file.Content),
	}).Info("Tuition export generated")

	return &file, nil
}

// GetFile retrieves a generated file
func (s *exportService) GetFile(id string) (*models.ExportFile, error) {
	file, err := s.exportRepo.GetExportByID(id)
	if err != nil {
		return nil, fmt.Errorf("export %s: %w", id, err)
	}
	return file, nil
}
