package handler

import (
	"github.com/gin-gonic/gin"

	"student-portal-svc/internal/models"
	"student-portal-svc/internal/viewstate"
	"student-portal-svc/pkg/logger"
	"student-portal-svc/pkg/utils"
)

// NotificationHandler handles the inbox
type NotificationHandler struct {
	logger *logger.Logger
}

// NewNotificationHandler creates a new NotificationHandler instance
func NewNotificationHandler(logger *logger.Logger) *NotificationHandler {
	return &NotificationHandler{logger: logger}
}

// GetNotifications returns the inbox
// @Summary Get notifications
// @Description Get the filtered notifications, newest first
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param category query string false "academic, finance, event, system or all"
// @Param read_state query string false "read, unread or all"
// @Param q query string false "Keyword on title, content or sender"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(10)
// @Success 200 {object} utils.PaginatedResponse "Notifications retrieved successfully"
// @Failure 400 {object} utils.APIResponse "Invalid filter"
// @Router /api/v1/notifications [get]
func (h *NotificationHandler) GetNotifications(c *gin.Context) {
	f, keyword, ok := bindFilter[models.NotificationFilter](c, h.logger)
	if !ok {
		return
	}

	view := currentPortal(c).Notifications
	if err := view.SetFilter(c.Request.Context(), f); err != nil {
		respondError(c, h.logger, viewstate.InvalidFilterMessage, err)
		return
	}
	view.SetKeyword(keyword)

	respondPage(c, "Notifications retrieved successfully", view.Snapshot())
}

// GetNotification returns one notification
// @Summary Get notification detail
// @Description Get one notification by ID
// @Tags notifications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Notification ID"
// @Success 200 {object} utils.APIResponse{data=models.Notification} "Notification retrieved successfully"
// @Failure 404 {object} utils.APIResponse "Notification not found"
// @Router /api/v1/notifications/{id} [get]
func (h *NotificationHandler) GetNotification(c *gin.Context) {
	id, err := utils.GetIDParam(c)
	if err != nil {
		h.logger.WithError(err).Error("Invalid notification ID")
		utils.BadRequestResponse(c, "Invalid notification ID", err)
		return
	}

	n, err := currentPortal(c).Notifications.Detail(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, viewstate.NotificationLoadErrorMessage, err)
		return
	}
	utils.SuccessResponse(c, "Notification retrieved successfully", n)
}
