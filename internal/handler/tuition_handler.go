package handler

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"student-portal-svc/internal/models"
	"student-portal-svc/internal/service"
	"student-portal-svc/internal/viewstate"
	"student-portal-svc/pkg/logger"
	"student-portal-svc/pkg/utils"
)

// TuitionHandler handles the tuition page and its exported spreadsheets
type TuitionHandler struct {
	exportService service.ExportService
	logger        *logger.Logger
}

// ExportResponse carries the download link of an export
type ExportResponse struct {
	URL string `json:"url" example:"http://localhost:8080/api/v1/files/3f8a1c2e-5b7d-4e9f-a1b2-c3d4e5f60718"`
}

// NewTuitionHandler creates a new TuitionHandler instance
func NewTuitionHandler(exportService service.ExportService, logger *logger.Logger) *TuitionHandler {
	return &TuitionHandler{
		exportService: exportService,
		logger:        logger,
	}
}

// GetTuition returns the tuition page
// @Summary Get tuition page
// @Description Get the tuition summary of the selected semester, the semester list and the filtered tuition items
// @Tags tuition
// @Produce json
// @Security BearerAuth
// @Param semester query string false "Semester, or all"
// @Param status query string false "paid, unpaid, overdue, upcoming or all"
// @Param q query string false "Keyword on course code or name"
// @Success 200 {object} utils.APIResponse{data=viewstate.TuitionSnapshot} "Tuition retrieved successfully"
// @Failure 400 {object} utils.APIResponse "Invalid filter"
// @Router /api/v1/tuition [get]
func (h *TuitionHandler) GetTuition(c *gin.Context) {
	f, keyword, ok := bindFilter[models.TuitionFilter](c, h.logger)
	if !ok {
		return
	}

	view := currentPortal(c).Tuition
	if err := view.SetFilter(c.Request.Context(), f); err != nil {
		respondError(c, h.logger, viewstate.InvalidFilterMessage, err)
		return
	}
	view.SetKeyword(keyword)

	utils.SuccessResponse(c, "Tuition retrieved successfully", view.Snapshot())
}

// GetSemesters returns the semesters that have tuition
// @Summary Get tuition semesters
// @Description Get the semesters that have tuition items, newest first
// @Tags tuition
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse{data=[]string} "Semesters retrieved successfully"
// @Router /api/v1/tuition/semesters [get]
func (h *TuitionHandler) GetSemesters(c *gin.Context) {
	view := currentPortal(c).Tuition
	view.Load(c.Request.Context())

	semesters := view.Snapshot().Semesters
	if semesters.Data == nil {
		respondError(c, h.logger, semesters.Error, semesters.Cause)
		return
	}
	utils.SuccessResponse(c, "Semesters retrieved successfully", semesters.Data)
}

// Export renders the current tuition filter to a spreadsheet
// @Summary Export tuition history
// @Description Render the tuition items of the current filter to an xlsx file and return its download link
// @Tags tuition
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse{data=ExportResponse} "Export created"
// @Failure 500 {object} utils.APIResponse "Export failed"
// @Router /api/v1/tuition/export [post]
func (h *TuitionHandler) Export(c *gin.Context) {
	url, err := currentPortal(c).Tuition.Export(c.Request.Context())
	if err != nil {
		respondError(c, h.logger, viewstate.ExportFailureMessage, err)
		return
	}
	utils.SuccessResponse(c, viewstate.ExportSuccessMessage, ExportResponse{URL: url})
}

// DownloadFile streams an exported spreadsheet
// @Summary Download export
// @Description Download a spreadsheet created by an export
// @Tags files
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Security BearerAuth
// @Param id path string true "File ID"
// @Success 200 {file} file "Spreadsheet"
// @Failure 404 {object} utils.APIResponse "File not found"
// @Router /api/v1/files/{id} [get]
func (h *TuitionHandler) DownloadFile(c *gin.Context) {
	id := c.Param("id")

	file, err := h.exportService.GetFile(id)
	if err != nil {
		respondError(c, h.logger, viewstate.NotFoundMessage, err)
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", file.FileName))
	c.Data(http.StatusOK, file.ContentType, file.Content)
}
