package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/bizledger/biz_ledger_app/internal/core/ports/services"
	"github.com/bizledger/biz_ledger_app/internal/dto"
	"github.com/bizledger/biz_ledger_app/internal/middleware"
)

// businessHandler handles HTTP requests for businesses (tenants).
type businessHandler struct {
	businessService portssvc.BusinessSvcFacade
}

func newBusinessHandler(businessService portssvc.BusinessSvcFacade) *businessHandler {
	return &businessHandler{businessService: businessService}
}

// registerBusinessRoutes registers business specific routes
func registerBusinessRoutes(group *gin.RouterGroup, businessService portssvc.BusinessSvcFacade) {
	h := newBusinessHandler(businessService)

	businesses := group.Group("/businesses")
	{
		businesses.POST("", h.createBusiness)
		businesses.GET("", h.listBusinesses)
		businesses.GET("/:businessID", h.getBusiness)
	}
}

// createBusiness godoc
// @Summary Create a business
// @Description Creates a business, links the caller as owner and seeds the default chart of accounts.
// @Tags businesses
// @Accept json
// @Produce json
// @Param business body dto.CreateBusinessRequest true "Business details"
// @Success 201 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Router /businesses [post]
func (h *businessHandler) createBusiness(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateBusinessRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	business, err := h.businessService.CreateBusiness(c.Request.Context(), req, userID)
	if err != nil {
		logger.Error("Failed to create business", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.OK("Business created", dto.ToBusinessResponse(business)))
}

// getBusiness godoc
// @Summary Get a business
// @Tags businesses
// @Produce json
// @Param businessID path string true "Business ID"
// @Success 200 {object} dto.BusinessResponse
// @Failure 403 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Router /businesses/{businessID} [get]
func (h *businessHandler) getBusiness(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	business, err := h.businessService.GetBusinessByID(c.Request.Context(), c.Param("businessID"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToBusinessResponse(business))
}

// listBusinesses godoc
// @Summary List the caller's businesses
// @Tags businesses
// @Produce json
// @Success 200 {array} dto.BusinessResponse
// @Router /businesses [get]
func (h *businessHandler) listBusinesses(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	businesses, err := h.businessService.ListBusinessesByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListBusinessResponse(businesses))
}
