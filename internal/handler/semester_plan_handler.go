package handler

import (
	"github.com/gin-gonic/gin"

	"student-portal-svc/internal/models"
	"student-portal-svc/internal/viewstate"
	"student-portal-svc/pkg/logger"
	"student-portal-svc/pkg/utils"
)

// SemesterPlanHandler handles the semester plan page
type SemesterPlanHandler struct {
	logger *logger.Logger
}

// NewSemesterPlanHandler creates a new SemesterPlanHandler instance
func NewSemesterPlanHandler(logger *logger.Logger) *SemesterPlanHandler {
	return &SemesterPlanHandler{logger: logger}
}

// GetPlans returns the plan page for the selected semester
// @Summary Get semester plan page
// @Description Get the plannable semesters and the plan of the selected one
// @Tags semester-plans
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse{data=viewstate.SemesterPlanSnapshot} "Semester plan retrieved successfully"
// @Router /api/v1/semester-plans [get]
func (h *SemesterPlanHandler) GetPlans(c *gin.Context) {
	view := currentPortal(c).SemesterPlan
	view.Load(c.Request.Context())
	utils.SuccessResponse(c, "Semester plan retrieved successfully", view.Snapshot())
}

// GetPlan selects a semester and returns its plan
// @Summary Get plan of a semester
// @Description Switch the plan page to a semester and return its courses and credit totals
// @Tags semester-plans
// @Produce json
// @Security BearerAuth
// @Param semester path string true "Semester code"
// @Success 200 {object} utils.APIResponse{data=viewstate.SemesterPlanSnapshot} "Semester plan retrieved successfully"
// @Failure 404 {object} utils.APIResponse "Semester not found"
// @Router /api/v1/semester-plans/{semester} [get]
func (h *SemesterPlanHandler) GetPlan(c *gin.Context) {
	view := currentPortal(c).SemesterPlan
	view.Select(c.Request.Context(), c.Param("semester"))

	snap := view.Snapshot()
	if snap.Plan.Data == nil && snap.Plan.Cause != nil {
		respondError(c, h.logger, snap.Plan.Error, snap.Plan.Cause)
		return
	}
	utils.SuccessResponse(c, "Semester plan retrieved successfully", snap)
}

// AddCourse places a course in a semester plan
// @Summary Add course to plan
// @Description Add a course to the plan of a semester. The semester credit cap and duplicates are checked.
// @Tags semester-plans
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param semester path string true "Semester code"
// @Param request body models.AddPlannedCourseRequest true "Course"
// @Success 201 {object} utils.APIResponse{data=models.PlannedCourse} "Course added"
// @Failure 400 {object} utils.APIResponse "Credit cap exceeded, duplicate or invalid course"
// @Failure 404 {object} utils.APIResponse "Semester not found"
// @Router /api/v1/semester-plans/{semester}/courses [post]
func (h *SemesterPlanHandler) AddCourse(c *gin.Context) {
	var req models.AddPlannedCourseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid planned course request body")
		utils.BadRequestResponse(c, viewstate.PlanMissingCourseMessage, err)
		return
	}

	view := currentPortal(c).SemesterPlan
	if semester := c.Param("semester"); view.Selected() != semester || view.Snapshot().Plan.Data == nil {
		view.Select(c.Request.Context(), semester)
	}

	course, err := view.AddCourse(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, viewstate.PlanAddFailureMessage, err)
		return
	}
	utils.CreatedResponse(c, viewstate.PlanAddSuccessMessage, course)
}
