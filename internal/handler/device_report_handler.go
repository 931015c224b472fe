package handler

import (
	"github.com/gin-gonic/gin"

	"student-portal-svc/internal/models"
	"student-portal-svc/internal/viewstate"
	"student-portal-svc/pkg/logger"
	"student-portal-svc/pkg/utils"
)

// DeviceReportHandler handles classroom device fault reports
type DeviceReportHandler struct {
	logger *logger.Logger
}

// NewDeviceReportHandler creates a new DeviceReportHandler instance
func NewDeviceReportHandler(logger *logger.Logger) *DeviceReportHandler {
	return &DeviceReportHandler{logger: logger}
}

// GetReports returns the filed reports
// @Summary Get device reports
// @Description Get the device fault reports filed by the student
// @Tags device-reports
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending, processing, resolved or all"
// @Param device_type query string false "projector, computer, air_conditioner, light, other or all"
// @Param q query string false "Keyword on building, room or description"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} utils.PaginatedResponse "Reports retrieved successfully"
// @Failure 400 {object} utils.APIResponse "Invalid filter"
// @Router /api/v1/device-reports [get]
func (h *DeviceReportHandler) GetReports(c *gin.Context) {
	f, keyword, ok := bindFilter[models.DeviceReportFilter](c, h.logger)
	if !ok {
		return
	}

	view := currentPortal(c).DeviceReports
	if err := view.SetFilter(c.Request.Context(), f); err != nil {
		respondError(c, h.logger, viewstate.InvalidFilterMessage, err)
		return
	}
	view.SetKeyword(keyword)

	respondPage(c, "Reports retrieved successfully", view.Snapshot())
}

// CreateReport files a device fault report
// @Summary Report device fault
// @Description Report a broken device in a classroom
// @Tags device-reports
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.DeviceReportInput true "Report"
// @Success 201 {object} utils.APIResponse{data=models.DeviceReport} "Report filed"
// @Failure 400 {object} utils.APIResponse "Missing room or description too short"
// @Router /api/v1/device-reports [post]
func (h *DeviceReportHandler) CreateReport(c *gin.Context) {
	var input models.DeviceReportInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.WithError(err).Error("Invalid device report body")
		utils.BadRequestResponse(c, viewstate.ReportMissingRoomMessage, err)
		return
	}

	report, err := currentPortal(c).DeviceReports.CreateReport(c.Request.Context(), input)
	if err != nil {
		respondError(c, h.logger, viewstate.ReportFailureMessage, err)
		return
	}
	utils.CreatedResponse(c, viewstate.ReportSuccessMessage, report)
}
