package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/bizledger/biz_ledger_app/internal/core/ports/services"
	"github.com/bizledger/biz_ledger_app/internal/dto"
	"github.com/bizledger/biz_ledger_app/internal/middleware"
)

// purchaseInvoiceHandler handles HTTP requests for vendor bills.
type purchaseInvoiceHandler struct {
	purchaseInvoiceService portssvc.PurchaseInvoiceSvcFacade
}

func newPurchaseInvoiceHandler(purchaseInvoiceService portssvc.PurchaseInvoiceSvcFacade) *purchaseInvoiceHandler {
	return &purchaseInvoiceHandler{purchaseInvoiceService: purchaseInvoiceService}
}

// registerPurchaseInvoiceRoutes registers purchase invoice specific routes
func registerPurchaseInvoiceRoutes(group *gin.RouterGroup, purchaseInvoiceService portssvc.PurchaseInvoiceSvcFacade) {
	h := newPurchaseInvoiceHandler(purchaseInvoiceService)

	bills := group.Group("/purchase-invoices")
	{
		bills.POST("", h.createPurchaseInvoice)
		bills.GET("", h.listPurchaseInvoices)
		bills.GET("/:purchaseInvoiceID", h.getPurchaseInvoice)
	}
}

// createPurchaseInvoice godoc
// @Summary Record a vendor bill
// @Description Computes totals, numbers the bill and posts inventory and payable to the ledger.
// @Tags purchase-invoices
// @Accept json
// @Produce json
// @Param businessID path string true "Business ID"
// @Param bill body dto.CreatePurchaseInvoiceRequest true "Bill details"
// @Success 201 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Router /businesses/{businessID}/purchase-invoices [post]
func (h *purchaseInvoiceHandler) createPurchaseInvoice(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreatePurchaseInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	bill, err := h.purchaseInvoiceService.CreatePurchaseInvoice(c.Request.Context(), c.Param("businessID"), req, userID)
	if err != nil {
		logger.Warn("Failed to create purchase invoice", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK("Purchase invoice recorded", dto.ToPurchaseInvoiceResponse(bill)))
}

// getPurchaseInvoice godoc
// @Summary Get a purchase invoice with its items
// @Tags purchase-invoices
// @Produce json
// @Param businessID path string true "Business ID"
// @Param purchaseInvoiceID path string true "Purchase Invoice ID"
// @Success 200 {object} dto.PurchaseInvoiceResponse
// @Failure 404 {object} dto.Envelope
// @Router /businesses/{businessID}/purchase-invoices/{purchaseInvoiceID} [get]
func (h *purchaseInvoiceHandler) getPurchaseInvoice(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	bill, err := h.purchaseInvoiceService.GetPurchaseInvoiceByID(c.Request.Context(), c.Param("businessID"), c.Param("purchaseInvoiceID"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToPurchaseInvoiceResponse(bill))
}

// listPurchaseInvoices godoc
// @Summary List purchase invoices
// @Tags purchase-invoices
// @Produce json
// @Param businessID path string true "Business ID"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListPurchaseInvoicesResponse
// @Router /businesses/{businessID}/purchase-invoices [get]
func (h *purchaseInvoiceHandler) listPurchaseInvoices(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid query parameters"))
		return
	}

	bills, err := h.purchaseInvoiceService.ListPurchaseInvoices(c.Request.Context(), c.Param("businessID"), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListPurchaseInvoicesResponse{PurchaseInvoices: dto.ToListPurchaseInvoiceResponse(bills)})
}
