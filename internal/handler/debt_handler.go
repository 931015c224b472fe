package handler

import (
	"github.com/gin-gonic/gin"

	"student-portal-svc/internal/models"
	"student-portal-svc/internal/viewstate"
	"student-portal-svc/pkg/logger"
	"student-portal-svc/pkg/utils"
)

// DebtHandler handles the debt page
type DebtHandler struct {
	logger *logger.Logger
}

// NewDebtHandler creates a new DebtHandler instance
func NewDebtHandler(logger *logger.Logger) *DebtHandler {
	return &DebtHandler{logger: logger}
}

// GetDebts returns the debt page
// @Summary Get debt page
// @Description Get the debt summary and the filtered debt items
// @Tags debts
// @Produce json
// @Security BearerAuth
// @Param status query string false "paid, unpaid, overdue, upcoming or all"
// @Param debt_type query string false "tuition, insurance, service, other or all"
// @Param semester query string false "Semester, or all"
// @Param q query string false "Keyword on code or description"
// @Success 200 {object} utils.APIResponse{data=viewstate.DebtSnapshot} "Debts retrieved successfully"
// @Failure 400 {object} utils.APIResponse "Invalid filter"
// @Router /api/v1/debts [get]
func (h *DebtHandler) GetDebts(c *gin.Context) {
	f, keyword, ok := bindFilter[models.DebtFilter](c, h.logger)
	if !ok {
		return
	}

	view := currentPortal(c).Debt
	if err := view.SetFilter(c.Request.Context(), f); err != nil {
		respondError(c, h.logger, viewstate.InvalidFilterMessage, err)
		return
	}
	view.SetKeyword(keyword)

	utils.SuccessResponse(c, "Debts retrieved successfully", view.Snapshot())
}

// GetDebt returns one debt item
// @Summary Get debt detail
// @Description Get one debt item by ID
// @Tags debts
// @Produce json
// @Security BearerAuth
// @Param id path string true "Debt ID"
// @Success 200 {object} utils.APIResponse{data=models.DebtItem} "Debt retrieved successfully"
// @Failure 404 {object} utils.APIResponse "Debt not found"
// @Router /api/v1/debts/{id} [get]
func (h *DebtHandler) GetDebt(c *gin.Context) {
	item, err := currentPortal(c).Debt.Detail(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, h.logger, viewstate.DebtLoadErrorMessage, err)
		return
	}
	utils.SuccessResponse(c, "Debt retrieved successfully", item)
}
