package http

import (
	"net/http"
	"strings"

	"crowdfund/internal/entity"
	"crowdfund/internal/usecase"
	"crowdfund/pkg/logger"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type PaymentHandler struct {
	paymentUseCase usecase.PaymentUseCase
	logger         *logger.Logger
}

func NewPaymentHandler(paymentUseCase usecase.PaymentUseCase, logger *logger.Logger) *PaymentHandler {
	return &PaymentHandler{
		paymentUseCase: paymentUseCase,
		logger:         logger,
	}
}

type CreatePaymentRequest struct {
	DonationID uint            `json:"donation_id" binding:"required"`
	Amount     decimal.Decimal `json:"amount"`
	Method     string          `json:"method" binding:"required"`
	Status     string          `json:"status" binding:"required"`
}

type UpdateMethodRequest struct {
	Method string `json:"method" binding:"required"`
}

type PaymentStatsResponse struct {
	Count       int64           `json:"count"`
	TotalAmount decimal.Decimal `json:"total_amount"`
}

// CreatePayment godoc
// @Summary      Record a payment
// @Description  Admin only. The transaction reference is generated.
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        request body CreatePaymentRequest true "Payment"
// @Success      201  {object}  entity.Payment
// @Failure      400  {object}  map[string]string
// @Router       /payments [post]
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}

	payment, err := h.paymentUseCase.CreatePayment(c.Request.Context(), usecase.CreatePaymentInput{
		DonationID: req.DonationID,
		Amount:     req.Amount,
		Method:     req.Method,
		Status:     req.Status,
	})
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// GetPayment godoc
// @Summary      Get payment by ID
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Payment ID"
// @Success      200  {object}  entity.Payment
// @Failure      404  {object}  map[string]string
// @Router       /payments/{id} [get]
func (h *PaymentHandler) GetPayment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	payment, err := h.paymentUseCase.GetPayment(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

// ListPayments godoc
// @Summary      List payments
// @Description  Optionally filtered by status or method (method wins when both are given)
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        status query string false "Status"
// @Param        method query string false "Method, case-insensitive"
// @Success      200  {array}  entity.Payment
// @Failure      404  {object}  map[string]string
// @Router       /payments [get]
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	var (
		payments []*entity.Payment
		err      error
	)
	ctx := c.Request.Context()
	switch {
	case strings.TrimSpace(c.Query("method")) != "":
		payments, err = h.paymentUseCase.FilterByMethod(ctx, c.Query("method"))
	case strings.TrimSpace(c.Query("status")) != "":
		payments, err = h.paymentUseCase.FilterByStatus(ctx, c.Query("status"))
	default:
		payments, err = h.paymentUseCase.ListPayments(ctx)
	}
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// ListByDonation godoc
// @Summary      List payments of a donation
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Donation ID"
// @Success      200  {array}  entity.Payment
// @Failure      404  {object}  map[string]string
// @Router       /donations/{id}/payments [get]
func (h *PaymentHandler) ListByDonation(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	payments, err := h.paymentUseCase.ListByDonation(c.Request.Context(), id)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, payments)
}

// Stats godoc
// @Summary      Payment count and total amount
// @Tags         payments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  PaymentStatsResponse
// @Router       /payments/stats [get]
func (h *PaymentHandler) Stats(c *gin.Context) {
	ctx := c.Request.Context()
	count, err := h.paymentUseCase.CountPayments(ctx)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	total, err := h.paymentUseCase.TotalAmount(ctx)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, PaymentStatsResponse{Count: count, TotalAmount: total})
}

// UpdateStatus godoc
// @Summary      Set payment status
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Payment ID"
// @Param        request body UpdateStatusRequest true "New status"
// @Success      200  {object}  entity.Payment
// @Router       /payments/{id}/status [put]
func (h *PaymentHandler) UpdateStatus(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	payment, err := h.paymentUseCase.UpdateStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

// UpdateMethod godoc
// @Summary      Set payment method
// @Tags         payments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id path int true "Payment ID"
// @Param        request body UpdateMethodRequest true "New method"
// @Success      200  {object}  entity.Payment
// @Router       /payments/{id}/method [put]
func (h *PaymentHandler) UpdateMethod(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	var req UpdateMethodRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err.Error())
		return
	}
	payment, err := h.paymentUseCase.UpdateMethod(c.Request.Context(), id, req.Method)
	if err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.JSON(http.StatusOK, payment)
}

// DeletePayment godoc
// @Summary      Delete a payment
// @Tags         payments
// @Security     BearerAuth
// @Param        id path int true "Payment ID"
// @Success      204
// @Failure      404  {object}  map[string]string
// @Router       /payments/{id} [delete]
func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	id, ok := pathID(c, "id")
	if !ok {
		return
	}
	if err := h.paymentUseCase.DeletePayment(c.Request.Context(), id); err != nil {
		respondError(c, h.logger, err)
		return
	}
	c.Status(http.StatusNoContent)
}
