package handler

import (
	"context"

	"github.com/gin-gonic/gin"

	"student-portal-svc/internal/models"
	"student-portal-svc/internal/viewstate"
	"student-portal-svc/pkg/logger"
	"student-portal-svc/pkg/utils"
)

// PaymentHandler handles the pay actions of tuition, debts and other fees
type PaymentHandler struct {
	logger *logger.Logger
}

// ReceiptResponse carries the link of a tuition receipt
type ReceiptResponse struct {
	TransactionID string `json:"transaction_id" example:"9b2f3c84-0a6e-4c09-9d0f-0f1f7e0c1b2a"`
	ReceiptURL    string `json:"receipt_url" example:"http://localhost:8080/api/v1/tuition/receipts/9b2f3c84-0a6e-4c09-9d0f-0f1f7e0c1b2a"`
}

type payFunc func(ctx context.Context, req models.PaymentRequest) (*models.PaymentTransaction, error)

// NewPaymentHandler creates a new PaymentHandler instance
func NewPaymentHandler(logger *logger.Logger) *PaymentHandler {
	return &PaymentHandler{
		logger: logger,
	}
}

func (h *PaymentHandler) pay(c *gin.Context, domain string, pay func(p *viewstate.Portal) payFunc) {
	var req models.PaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.WithError(err).WithField("domain", domain).Error("Invalid payment request body")
		utils.BadRequestResponse(c, "Yêu cầu thanh toán không hợp lệ", err)
		return
	}

	portal := currentPortal(c)
	tx, err := pay(portal)(c.Request.Context(), req)
	if err != nil {
		respondError(c, h.logger, viewstate.PayFailureMessage, err)
		return
	}

	h.logger.WithFields(map[string]interface{}{
		"domain":         domain,
		"entity_id":      req.EntityID,
		"amount":         req.Amount,
		"transaction_id": tx.ID,
		"student_id":     portal.Student.StudentID,
	}).Info("Payment completed")

	utils.SuccessResponse(c, viewstate.PaySuccessMessage, tx)
}

// PayTuition pays one tuition item
// @Summary Pay tuition
// @Description Pay one tuition item of the signed-in student
// @Tags tuition
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.PaymentRequest true "Payment"
// @Success 200 {object} utils.APIResponse{data=models.PaymentTransaction} "Payment completed"
// @Failure 400 {object} utils.APIResponse "Invalid payment or item already paid"
// @Failure 404 {object} utils.APIResponse "Tuition item not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/tuition/pay [post]
func (h *PaymentHandler) PayTuition(c *gin.Context) {
	h.pay(c, models.DomainTuition, func(p *viewstate.Portal) payFunc { return p.Tuition.Pay })
}

// PayDebt pays one debt item
// @Summary Pay debt
// @Description Pay one outstanding debt of the signed-in student
// @Tags debts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.PaymentRequest true "Payment"
// @Success 200 {object} utils.APIResponse{data=models.PaymentTransaction} "Payment completed"
// @Failure 400 {object} utils.APIResponse "Invalid payment or debt already paid"
// @Failure 404 {object} utils.APIResponse "Debt not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/debts/pay [post]
func (h *PaymentHandler) PayDebt(c *gin.Context) {
	h.pay(c, models.DomainDebt, func(p *viewstate.Portal) payFunc { return p.Debt.Pay })
}

// PayOtherFee pays one other fee
// @Summary Pay other fee
// @Description Pay one non-tuition fee of the signed-in student
// @Tags other-fees
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body models.PaymentRequest true "Payment"
// @Success 200 {object} utils.APIResponse{data=models.PaymentTransaction} "Payment completed"
// @Failure 400 {object} utils.APIResponse "Invalid payment or fee already paid"
// @Failure 404 {object} utils.APIResponse "Fee not found"
// @Failure 500 {object} utils.APIResponse "Internal server error"
// @Router /api/v1/other-fees/pay [post]
func (h *PaymentHandler) PayOtherFee(c *gin.Context) {
	h.pay(c, models.DomainOtherFee, func(p *viewstate.Portal) payFunc { return p.OtherFees.Pay })
}

// GetReceipt returns the receipt link of a tuition payment
// @Summary Get tuition receipt
// @Description Get the receipt link of a tuition payment transaction
// @Tags tuition
// @Produce json
// @Security BearerAuth
// @Param id path string true "Transaction ID"
// @Success 200 {object} utils.APIResponse{data=ReceiptResponse} "Receipt retrieved successfully"
// @Failure 404 {object} utils.APIResponse "Transaction not found"
// @Router /api/v1/tuition/receipts/{id} [get]
func (h *PaymentHandler) GetReceipt(c *gin.Context) {
	id := c.Param("id")

	url, err := currentPortal(c).Tuition.Receipt(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, viewstate.NotFoundMessage, err)
		return
	}

	utils.SuccessResponse(c, "Receipt retrieved successfully", ReceiptResponse{TransactionID: id, ReceiptURL: url})
}
