package handler

import (
	"github.com/gin-gonic/gin"

	"student-portal-svc/internal/models"
	"student-portal-svc/internal/viewstate"
	"student-portal-svc/pkg/logger"
	"student-portal-svc/pkg/utils"
)

// OneStopHandler handles the one-stop service page
type OneStopHandler struct {
	logger *logger.Logger
}

// NewOneStopHandler creates a new OneStopHandler instance
func NewOneStopHandler(logger *logger.Logger) *OneStopHandler {
	return &OneStopHandler{logger: logger}
}

// GetServices returns the service catalog
// @Summary Get one-stop services
// @Description Get the catalog of administrative services a student can request
// @Tags one-stop
// @Produce json
// @Security BearerAuth
// @Param category query string false "certificate, academic, finance, other or all"
// @Param q query string false "Keyword on code, name or description"
// @Success 200 {object} utils.APIResponse "Services retrieved successfully"
// @Failure 400 {object} utils.APIResponse "Invalid filter"
// @Router /api/v1/one-stop/services [get]
func (h *OneStopHandler) GetServices(c *gin.Context) {
	f, keyword, ok := bindFilter[models.ServiceFilter](c, h.logger)
	if !ok {
		return
	}

	view := currentPortal(c).OneStop
	if err := view.SetServiceFilter(c.Request.Context(), f); err != nil {
		respondError(c, h.logger, viewstate.InvalidFilterMessage, err)
		return
	}
	view.SetKeyword(keyword)

	utils.SuccessResponse(c, "Services retrieved successfully", view.Snapshot().Services)
}

// GetService returns one catalog entry
// @Summary Get one-stop service detail
// @Description Get one administrative service by ID
// @Tags one-stop
// @Produce json
// @Security BearerAuth
// @Param id path string true "Service ID"
// @Success 200 {object} utils.APIResponse{data=models.Service} "Service retrieved successfully"
// @Failure 404 {object} utils.APIResponse "Service not found"
// @Router /api/v1/one-stop/services/{id} [get]
func (h *OneStopHandler) GetService(c *gin.Context) {
	svc, err := currentPortal(c).OneStop.Service(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, viewstate.OneStopLoadErrorMessage, err)
		return
	}
	utils.SuccessResponse(c, "Service retrieved successfully", svc)
}

// GetRequests returns the submitted requests
// @Summary Get one-stop requests
// @Description Get the requests submitted by the student
// @Tags one-stop
// @Produce json
// @Security BearerAuth
// @Param status query string false "pending, processing, completed, rejected or all"
// @Param q query string false "Keyword on service name or reason"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} utils.PaginatedResponse "Requests retrieved successfully"
// @Failure 400 {object} utils.APIResponse "Invalid filter"
// @Router /api/v1/one-stop/requests [get]
func (h *OneStopHandler) GetRequests(c *gin.Context) {
	f, keyword, ok := bindFilter[models.ServiceRequestFilter](c, h.logger)
	if !ok {
		return
	}

	view := currentPortal(c).OneStop
	if err := view.SetRequestFilter(c.Request.Context(), f); err != nil {
		respondError(c, h.logger, viewstate.InvalidFilterMessage, err)
		return
	}
	view.SetRequestKeyword(keyword)

	respondPage(c, "Requests retrieved successfully", view.Snapshot().Requests)
}

// SubmitRequest files a new request
// @Summary Submit one-stop request
// @Description Request an administrative service such as a student certificate
// @Tags one-stop
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.ServiceRequestInput true "Request"
// @Success 201 {object} utils.APIResponse{data=models.ServiceRequest} "Request submitted"
// @Failure 400 {object} utils.APIResponse "Missing reason or invalid copies"
// @Failure 404 {object} utils.APIResponse "Service not found"
// @Router /api/v1/one-stop/requests [post]
func (h *OneStopHandler) SubmitRequest(c *gin.Context) {
	var input models.ServiceRequestInput
	if err := c.ShouldBindJSON(&input); err != nil {
		h.logger.WithError(err).Error("Invalid service request body")
		utils.BadRequestResponse(c, viewstate.RequestMissingServiceMsg, err)
		return
	}

	req, err := currentPortal(c).OneStop.SubmitRequest(c.Request.Context(), input)
	if err != nil {
		respondError(c, h.logger, viewstate.RequestFailureMessage, err)
		return
	}
	utils.CreatedResponse(c, viewstate.RequestSuccessMessage, req)
}
