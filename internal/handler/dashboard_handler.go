package handler

import (
	"github.com/gin-gonic/gin"

	"student-portal-svc/internal/viewstate"
	"student-portal-svc/pkg/logger"
	"student-portal-svc/pkg/utils"
)

// DashboardHandler handles dashboard-related HTTP requests
type DashboardHandler struct {
	logger *logger.Logger
}

// NewDashboardHandler creates a new dashboard handler
func NewDashboardHandler(logger *logger.Logger) *DashboardHandler {
	return &DashboardHandler{
		logger: logger,
	}
}

// GetDashboard handles GET /api/v1/dashboard
// @Summary Get home page
// @Description Get the home page of the signed-in student: tuition, debt, fees, balance, latest notifications and upcoming deadlines
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse{data=response.DashboardResponse} "Successfully retrieved dashboard"
// @Failure 401 {object} utils.APIResponse "Not signed in"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/dashboard [get]
func (h *DashboardHandler) GetDashboard(c *gin.Context) {
	portal := currentPortal(c)

	st := portal.Dashboard(c.Request.Context())
	if st.Data == nil {
		msg := st.Error
		if msg == "" {
			msg = viewstate.DashboardLoadErrorMessage
		}
		h.logger.WithError(st.Cause).WithField("student_id", portal.Student.StudentID).Error("Failed to load dashboard")
		utils.InternalServerErrorResponse(c, msg, st.Cause)
		return
	}

	utils.SuccessResponse(c, "Successfully retrieved dashboard", st.Data)
}
