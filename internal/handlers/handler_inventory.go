package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/bizledger/biz_ledger_app/internal/core/ports/services"
	"github.com/bizledger/biz_ledger_app/internal/dto"
	"github.com/bizledger/biz_ledger_app/internal/middleware"
)

// inventoryHandler handles HTTP requests for stock movements.
type inventoryHandler struct {
	inventoryService portssvc.InventorySvcFacade
}

func newInventoryHandler(inventoryService portssvc.InventorySvcFacade) *inventoryHandler {
	return &inventoryHandler{inventoryService: inventoryService}
}

// registerInventoryRoutes registers inventory specific routes
func registerInventoryRoutes(group *gin.RouterGroup, inventoryService portssvc.InventorySvcFacade) {
	h := newInventoryHandler(inventoryService)

	stock := group.Group("/stock")
	{
		stock.POST("/receipts", h.receiveStock)
		stock.GET("/movements/:movementID", h.getMovement)
		stock.GET("/products/:productID/movements", h.listMovements)
	}
}

// receiveStock godoc
// @Summary Receive stock
// @Description Records goods received into inventory and posts the valuation to the ledger.
// @Tags stock
// @Accept json
// @Produce json
// @Param businessID path string true "Business ID"
// @Param movement body dto.CreateStockMovementRequest true "Stock receipt details"
// @Success 201 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Router /businesses/{businessID}/stock/receipts [post]
func (h *inventoryHandler) receiveStock(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateStockMovementRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	movement, err := h.inventoryService.ReceiveStock(c.Request.Context(), c.Param("businessID"), req, userID)
	if err != nil {
		logger.Warn("Failed to receive stock", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK("Stock received", dto.ToStockMovementResponse(movement)))
}

// getMovement godoc
// @Summary Get a stock movement
// @Tags stock
// @Produce json
// @Param businessID path string true "Business ID"
// @Param movementID path string true "Movement ID"
// @Success 200 {object} dto.StockMovementResponse
// @Failure 404 {object} dto.Envelope
// @Router /businesses/{businessID}/stock/movements/{movementID} [get]
func (h *inventoryHandler) getMovement(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	movement, err := h.inventoryService.GetMovementByID(c.Request.Context(), c.Param("businessID"), c.Param("movementID"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToStockMovementResponse(movement))
}

// listMovements godoc
// @Summary List stock movements for a product
// @Tags stock
// @Produce json
// @Param businessID path string true "Business ID"
// @Param productID path string true "Product ID"
// @Param limit query int false "Page size" default(20)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {array} dto.StockMovementResponse
// @Router /businesses/{businessID}/stock/products/{productID}/movements [get]
func (h *inventoryHandler) listMovements(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	var params dto.ListParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid query parameters"))
		return
	}

	movements, err := h.inventoryService.ListMovementsByProduct(c.Request.Context(), c.Param("businessID"), c.Param("productID"), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListStockMovementResponse(movements))
}
