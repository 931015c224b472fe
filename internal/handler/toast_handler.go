package handler

import (
	"github.com/gin-gonic/gin"

	"student-portal-svc/pkg/logger"
	"student-portal-svc/pkg/utils"
)

// ToastHandler exposes the toast queue of the current session
type ToastHandler struct {
	logger *logger.Logger
}

// NewToastHandler creates a new ToastHandler instance
func NewToastHandler(logger *logger.Logger) *ToastHandler {
	return &ToastHandler{logger: logger}
}

// GetToasts returns the toasts still on screen
// @Summary Get toasts
// @Description Get the toasts of the current session that have not expired or been dismissed, oldest first
// @Tags toasts
// @Produce json
// @Security BearerAuth
// @Success 200 {object} utils.APIResponse{data=[]toast.Toast} "Toasts retrieved successfully"
// @Router /api/v1/toasts [get]
func (h *ToastHandler) GetToasts(c *gin.Context) {
	utils.SuccessResponse(c, "Toasts retrieved successfully", currentPortal(c).Toasts.List())
}

// HideToast dismisses one toast
// @Summary Dismiss toast
// @Description Dismiss a toast before it expires. Unknown ids are ignored.
// @Tags toasts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Toast ID"
// @Success 200 {object} utils.APIResponse "Toast dismissed"
// @Router /api/v1/toasts/{id} [delete]
func (h *ToastHandler) HideToast(c *gin.Context) {
	currentPortal(c).Toasts.Hide(c.Param("id"))
	utils.SuccessResponse(c, "Toast dismissed", nil)
}
