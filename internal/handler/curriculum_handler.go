package handler

import (
	"github.com/gin-gonic/gin"

	"student-portal-svc/internal/models"
	"student-portal-svc/internal/viewstate"
	"student-portal-svc/pkg/logger"
	"student-portal-svc/pkg/utils"
)

// CurriculumHandler handles the curriculum page
type CurriculumHandler struct {
	logger *logger.Logger
}

// NewCurriculumHandler creates a new CurriculumHandler instance
func NewCurriculumHandler(logger *logger.Logger) *CurriculumHandler {
	return &CurriculumHandler{logger: logger}
}

// GetCurriculum returns the curriculum page
// @Summary Get curriculum page
// @Description Get the program overview with GPA and credit progress, and the filtered courses
// @Tags curriculum
// @Produce json
// @Security BearerAuth
// @Param semester query int false "Recommended semester, 0 for all"
// @Param course_type query string false "required, elective, general or all"
// @Param status query string false "completed, in_progress, not_started or all"
// @Param q query string false "Keyword on course code or name"
// @Success 200 {object} utils.APIResponse{data=viewstate.CurriculumSnapshot} "Curriculum retrieved successfully"
// @Failure 400 {object} utils.APIResponse "Invalid filter"
// @Router /api/v1/curriculum [get]
func (h *CurriculumHandler) GetCurriculum(c *gin.Context) {
	f, keyword, ok := bindFilter[models.CurriculumFilter](c, h.logger)
	if !ok {
		return
	}

	view := currentPortal(c).Curriculum
	if err := view.SetFilter(c.Request.Context(), f); err != nil {
		respondError(c, h.logger, viewstate.InvalidFilterMessage, err)
		return
	}
	view.SetKeyword(keyword)

	utils.SuccessResponse(c, "Curriculum retrieved successfully", view.Snapshot())
}

// GetCourse returns one course
// @Summary Get course detail
// @Description Get one course of the program by ID
// @Tags curriculum
// @Produce json
// @Security BearerAuth
// @Param id path string true "Course ID"
// @Success 200 {object} utils.APIResponse{data=models.Course} "Course retrieved successfully"
// @Failure 404 {object} utils.APIResponse "Course not found"
// @Router /api/v1/curriculum/courses/{id} [get]
func (h *CurriculumHandler) GetCourse(c *gin.Context) {
	course, err := currentPortal(c).Curriculum.Course(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, viewstate.CurriculumLoadErrorMessage, err)
		return
	}
	utils.SuccessResponse(c, "Course retrieved successfully", course)
}
