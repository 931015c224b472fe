package handler

import (
	"github.com/gin-gonic/gin"

	"student-portal-svc/internal/models"
	"student-portal-svc/internal/viewstate"
	"student-portal-svc/pkg/logger"
	"student-portal-svc/pkg/utils"
)

// DepositHandler handles the prepaid account page
type DepositHandler struct {
	logger *logger.Logger
}

// NewDepositHandler creates a new DepositHandler instance
func NewDepositHandler(logger *logger.Logger) *DepositHandler {
	return &DepositHandler{logger: logger}
}

// GetDeposits returns the deposit page
// @Summary Get deposit page
// @Description Get the account balance and the filtered transaction history
// @Tags deposits
// @Produce json
// @Security BearerAuth
// @Param type query string false "deposit, payment, refund or all"
// @Param date_range query string false "7days, 30days, 90days or all"
// @Param q query string false "Keyword on description"
// @Success 200 {object} utils.APIResponse{data=viewstate.DepositSnapshot} "Deposits retrieved successfully"
// @Failure 400 {object} utils.APIResponse "Invalid filter"
// @Router /api/v1/deposits [get]
func (h *DepositHandler) GetDeposits(c *gin.Context) {
	f, keyword, ok := bindFilter[models.DepositFilter](c, h.logger)
	if !ok {
		return
	}

	view := currentPortal(c).Deposit
	if err := view.SetFilter(c.Request.Context(), f); err != nil {
		respondError(c, h.logger, viewstate.InvalidFilterMessage, err)
		return
	}
	view.SetKeyword(keyword)

	utils.SuccessResponse(c, "Deposits retrieved successfully", view.Snapshot())
}

// CreateDeposit tops up the account
// @Summary Top up account
// @Description Add money to the prepaid account. The minimum is 10,000 VND.
// @Tags deposits
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.DepositRequest true "Deposit"
// @Success 201 {object} utils.APIResponse{data=models.DepositTransaction} "Deposit completed"
// @Failure 400 {object} utils.APIResponse "Amount below minimum or invalid method"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/deposits [post]
func (h *DepositHandler) CreateDeposit(c *gin.Context) {
	var req models.DepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).Error("Invalid deposit request body")
		utils.BadRequestResponse(c, viewstate.DepositFailureMessage, err)
		return
	}

	tx, err := currentPortal(c).Deposit.CreateDeposit(c.Request.Context(), req.Amount, req.Method)
	if err != nil {
		respondError(c, h.logger, viewstate.DepositFailureMessage, err)
		return
	}
	utils.CreatedResponse(c, viewstate.DepositSuccessMessage, tx)
}
