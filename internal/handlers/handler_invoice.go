package handlers

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	portssvc "github.com/bizledger/biz_ledger_app/internal/core/ports/services"
	"github.com/bizledger/biz_ledger_app/internal/dto"
	"github.com/bizledger/biz_ledger_app/internal/middleware"
)

// invoiceHandler handles HTTP requests for sales invoices.
type invoiceHandler struct {
	invoiceService portssvc.InvoiceSvcFacade
}

func newInvoiceHandler(invoiceService portssvc.InvoiceSvcFacade) *invoiceHandler {
	return &invoiceHandler{invoiceService: invoiceService}
}

// registerInvoiceRoutes registers invoice specific routes
func registerInvoiceRoutes(group *gin.RouterGroup, invoiceService portssvc.InvoiceSvcFacade) {
	h := newInvoiceHandler(invoiceService)

	invoices := group.Group("/invoices")
	{
		invoices.POST("", h.createInvoice)
		invoices.POST("/recurring/generate", h.generateRecurring)
		invoices.GET("", h.listInvoices)
		invoices.GET("/:invoiceID", h.getInvoice)
		invoices.PUT("/:invoiceID/status", h.updateStatus)
		invoices.PUT("/:invoiceID/recurring", h.updateRecurring)
	}
	group.GET("/customers/:customerID/invoices", h.listForCustomer)
}

// createInvoice godoc
// @Summary Create an invoice
// @Description Computes totals, numbers the invoice and posts the receivable to the ledger.
// @Tags invoices
// @Accept json
// @Produce json
// @Param businessID path string true "Business ID"
// @Param invoice body dto.CreateInvoiceRequest true "Invoice details"
// @Success 201 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Router /businesses/{businessID}/invoices [post]
func (h *invoiceHandler) createInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	invoice, err := h.invoiceService.CreateInvoice(c.Request.Context(), c.Param("businessID"), req, userID)
	if err != nil {
		logger.Warn("Failed to create invoice", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK("Invoice created", dto.ToInvoiceResponse(invoice)))
}

// updateStatus godoc
// @Summary Update an invoice's status
// @Description Transitions the invoice lifecycle. Paid invoices are immutable; overdue requires a past due date.
// @Tags invoices
// @Accept json
// @Produce json
// @Param businessID path string true "Business ID"
// @Param invoiceID path string true "Invoice ID"
// @Param status body dto.UpdateInvoiceStatusRequest true "Target status"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 409 {object} dto.Envelope
// @Router /businesses/{businessID}/invoices/{invoiceID}/status [put]
func (h *invoiceHandler) updateStatus(c *gin.Context) {
	var req dto.UpdateInvoiceStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	invoice, err := h.invoiceService.UpdateInvoiceStatus(c.Request.Context(), c.Param("businessID"), c.Param("invoiceID"), req.Status, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Invoice status updated", dto.ToInvoiceResponse(invoice)))
}

// generateRecurring godoc
// @Summary Generate due recurring invoices
// @Description Creates invoices from recurring templates due now and advances their schedules.
// @Tags invoices
// @Produce json
// @Param businessID path string true "Business ID"
// @Success 200 {object} dto.Envelope
// @Router /businesses/{businessID}/invoices/recurring/generate [post]
func (h *invoiceHandler) generateRecurring(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	generated, err := h.invoiceService.GenerateRecurringInvoices(c.Request.Context(), c.Param("businessID"), time.Now(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Recurring invoices generated", dto.ToListInvoiceResponse(generated)))
}

// updateRecurring godoc
// @Summary Update an invoice's recurring schedule
// @Description Turns the invoice into a recurring template or stops an existing schedule.
// @Tags invoices
// @Accept json
// @Produce json
// @Param businessID path string true "Business ID"
// @Param invoiceID path string true "Invoice ID"
// @Param schedule body dto.UpdateRecurringStatusRequest true "Recurring schedule"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 409 {object} dto.Envelope
// @Router /businesses/{businessID}/invoices/{invoiceID}/recurring [put]
func (h *invoiceHandler) updateRecurring(c *gin.Context) {
	var req dto.UpdateRecurringStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	invoice, err := h.invoiceService.UpdateRecurringStatus(c.Request.Context(), c.Param("businessID"), c.Param("invoiceID"), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Invoice recurring schedule updated", dto.ToInvoiceResponse(invoice)))
}

// listForCustomer godoc
// @Summary List a customer's open invoices
// @Description Returns the customer's invoices that still carry an open balance, oldest due first.
// @Tags invoices
// @Produce json
// @Param businessID path string true "Business ID"
// @Param customerID path string true "Customer ID"
// @Success 200 {object} dto.ListInvoicesResponse
// @Router /businesses/{businessID}/customers/{customerID}/invoices [get]
func (h *invoiceHandler) listForCustomer(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	invoices, err := h.invoiceService.ListInvoicesForCustomer(c.Request.Context(), c.Param("businessID"), c.Param("customerID"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListInvoicesResponse{Invoices: dto.ToListInvoiceResponse(invoices)})
}

// getInvoice godoc
// @Summary Get an invoice with its items
// @Tags invoices
// @Produce json
// @Param businessID path string true "Business ID"
// @Param invoiceID path string true "Invoice ID"
// @Success 200 {object} dto.InvoiceResponse
// @Failure 404 {object} dto.Envelope
// @Router /businesses/{businessID}/invoices/{invoiceID} [get]
func (h *invoiceHandler) getInvoice(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	invoice, err := h.invoiceService.GetInvoiceByID(c.Request.Context(), c.Param("businessID"), c.Param("invoiceID"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToInvoiceResponse(invoice))
}

// listInvoices godoc
// @Summary List invoices
// @Tags invoices
// @Produce json
// @Param businessID path string true "Business ID"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListInvoicesResponse
// @Router /businesses/{businessID}/invoices [get]
func (h *invoiceHandler) listInvoices(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid query parameters"))
		return
	}

	invoices, err := h.invoiceService.ListInvoices(c.Request.Context(), c.Param("businessID"), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListInvoicesResponse{Invoices: dto.ToListInvoiceResponse(invoices)})
}
