package handler

import (
	"github.com/gin-gonic/gin"

	"student-portal-svc/internal/models"
	"student-portal-svc/internal/viewstate"
	"student-portal-svc/pkg/logger"
	"student-portal-svc/pkg/utils"
)

// OtherFeeHandler handles the other fees page
type OtherFeeHandler struct {
	logger *logger.Logger
}

// NewOtherFeeHandler creates a new OtherFeeHandler instance
func NewOtherFeeHandler(logger *logger.Logger) *OtherFeeHandler {
	return &OtherFeeHandler{logger: logger}
}

// GetOtherFees returns the other fees page
// @Summary Get other fees page
// @Description Get the summary and the filtered list of non-tuition fees
// @Tags other-fees
// @Produce json
// @Security BearerAuth
// @Param category query string false "insurance, dormitory, parking, exam, other or all"
// @Param status query string false "paid, unpaid, overdue, upcoming or all"
// @Param q query string false "Keyword on fee name"
// @Success 200 {object} utils.APIResponse{data=viewstate.OtherFeeSnapshot} "Other fees retrieved successfully"
// @Failure 400 {object} utils.APIResponse "Invalid filter"
// @Router /api/v1/other-fees [get]
func (h *OtherFeeHandler) GetOtherFees(c *gin.Context) {
	f, keyword, ok := bindFilter[models.OtherFeeFilter](c, h.logger)
	if !ok {
		return
	}

	view := currentPortal(c).OtherFees
	if err := view.SetFilter(c.Request.Context(), f); err != nil {
		respondError(c, h.logger, viewstate.InvalidFilterMessage, err)
		return
	}
	view.SetKeyword(keyword)

	utils.SuccessResponse(c, "Other fees retrieved successfully", view.Snapshot())
}
