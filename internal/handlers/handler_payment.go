package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/bizledger/biz_ledger_app/internal/core/ports/services"
	"github.com/bizledger/biz_ledger_app/internal/dto"
	"github.com/bizledger/biz_ledger_app/internal/middleware"
)

// paymentHandler handles HTTP requests for payments.
type paymentHandler struct {
	paymentService portssvc.PaymentSvcFacade
}

func newPaymentHandler(paymentService portssvc.PaymentSvcFacade) *paymentHandler {
	return &paymentHandler{paymentService: paymentService}
}

// registerPaymentRoutes registers payment specific routes
func registerPaymentRoutes(group *gin.RouterGroup, paymentService portssvc.PaymentSvcFacade) {
	h := newPaymentHandler(paymentService)

	payments := group.Group("/payments")
	{
		payments.POST("", h.createPayment)
		payments.POST("/bulk", h.bulkCreatePayments)
		payments.GET("", h.listPayments)
		payments.GET("/:paymentID", h.getPayment)
	}
}

// createPayment godoc
// @Summary Record a payment
// @Description Numbers the payment, posts it to the ledger and applies it to the referenced invoice.
// @Tags payments
// @Accept json
// @Produce json
// @Param businessID path string true "Business ID"
// @Param payment body dto.CreatePaymentRequest true "Payment details"
// @Success 201 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 409 {object} dto.Envelope
// @Router /businesses/{businessID}/payments [post]
func (h *paymentHandler) createPayment(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	payment, err := h.paymentService.CreatePayment(c.Request.Context(), c.Param("businessID"), req, userID)
	if err != nil {
		logger.Warn("Failed to create payment", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK("Payment recorded", dto.ToPaymentResponse(payment)))
}

// bulkCreatePayments godoc
// @Summary Record several payments in one call
// @Description Items succeed or fail independently; the response reports each outcome.
// @Tags payments
// @Accept json
// @Produce json
// @Param businessID path string true "Business ID"
// @Param payments body dto.BulkPaymentRequest true "Payments to apply"
// @Success 200 {object} dto.BulkPaymentResponse
// @Failure 400 {object} dto.Envelope
// @Router /businesses/{businessID}/payments/bulk [post]
func (h *paymentHandler) bulkCreatePayments(c *gin.Context) {
	var req dto.BulkPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	resp, err := h.paymentService.BulkCreatePayments(c.Request.Context(), c.Param("businessID"), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

// getPayment godoc
// @Summary Get a payment
// @Tags payments
// @Produce json
// @Param businessID path string true "Business ID"
// @Param paymentID path string true "Payment ID"
// @Success 200 {object} dto.PaymentResponse
// @Failure 404 {object} dto.Envelope
// @Router /businesses/{businessID}/payments/{paymentID} [get]
func (h *paymentHandler) getPayment(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	payment, err := h.paymentService.GetPaymentByID(c.Request.Context(), c.Param("businessID"), c.Param("paymentID"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPaymentResponse(payment))
}

// listPayments godoc
// @Summary List payments
// @Tags payments
// @Produce json
// @Param businessID path string true "Business ID"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListPaymentsResponse
// @Router /businesses/{businessID}/payments [get]
func (h *paymentHandler) listPayments(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid query parameters"))
		return
	}

	payments, err := h.paymentService.ListPayments(c.Request.Context(), c.Param("businessID"), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListPaymentsResponse{Payments: dto.ToListPaymentResponse(payments)})
}
