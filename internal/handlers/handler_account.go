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

// accountHandler handles HTTP requests for the chart of accounts.
type accountHandler struct {
	accountService portssvc.AccountSvcFacade
}

func newAccountHandler(accountService portssvc.AccountSvcFacade) *accountHandler {
	return &accountHandler{accountService: accountService}
}

// RegisterAccountRoutes registers account specific routes
func RegisterAccountRoutes(group *gin.RouterGroup, accountService portssvc.AccountSvcFacade) {
	h := newAccountHandler(accountService)

	accounts := group.Group("/accounts")
	{
		accounts.POST("", h.createAccount)
		accounts.POST("/defaults", h.seedDefaults)
		accounts.GET("", h.listAccounts)
		accounts.GET("/:accountID", h.getAccount)
		accounts.GET("/:accountID/balance", h.getAccountBalance)
		accounts.PUT("/:accountID", h.updateAccount)
		accounts.DELETE("/:accountID", h.deleteAccount)
	}
}

// createAccount godoc
// @Summary Create an account
// @Description Creates a chart-of-accounts entry. Reusing a deleted code revives the deleted account.
// @Tags accounts
// @Accept json
// @Produce json
// @Param businessID path string true "Business ID"
// @Param account body dto.CreateAccountRequest true "Account details"
// @Success 201 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 409 {object} dto.Envelope
// @Router /businesses/{businessID}/accounts [post]
func (h *accountHandler) createAccount(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	account, err := h.accountService.CreateAccount(c.Request.Context(), c.Param("businessID"), req, userID)
	if err != nil {
		logger.Warn("Failed to create account", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK("Account created", dto.ToAccountResponse(account)))
}

// seedDefaults godoc
// @Summary Seed the default chart of accounts
// @Description Creates any missing accounts from the default chart. Idempotent.
// @Tags accounts
// @Produce json
// @Param businessID path string true "Business ID"
// @Success 200 {object} dto.Envelope
// @Router /businesses/{businessID}/accounts/defaults [post]
func (h *accountHandler) seedDefaults(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	created, err := h.accountService.SeedDefaultAccounts(c.Request.Context(), c.Param("businessID"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Default accounts seeded", dto.ToListAccountResponse(created)))
}

// getAccount godoc
// @Summary Get an account
// @Tags accounts
// @Produce json
// @Param businessID path string true "Business ID"
// @Param accountID path string true "Account ID"
// @Success 200 {object} dto.AccountResponse
// @Failure 404 {object} dto.Envelope
// @Router /businesses/{businessID}/accounts/{accountID} [get]
func (h *accountHandler) getAccount(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	account, err := h.accountService.GetAccountByID(c.Request.Context(), c.Param("businessID"), c.Param("accountID"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToAccountResponse(account))
}

// getAccountBalance godoc
// @Summary Get an account balance
// @Description Computes the balance from posted journal lines, on the account's normal side. Pass asOf (RFC3339) for a historical balance.
// @Tags accounts
// @Produce json
// @Param businessID path string true "Business ID"
// @Param accountID path string true "Account ID"
// @Param asOf query string false "Balance as of this time (RFC3339)"
// @Success 200 {object} dto.AccountBalanceResponse
// @Failure 404 {object} dto.Envelope
// @Router /businesses/{businessID}/accounts/{accountID}/balance [get]
func (h *accountHandler) getAccountBalance(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	businessID := c.Param("businessID")
	accountID := c.Param("accountID")

	var asOf *time.Time
	if raw := c.Query("asOf"); raw != "" {
		parsed, err := time.Parse(time.RFC3339, raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, dto.Fail("asOf must be an RFC3339 timestamp"))
			return
		}
		asOf = &parsed
	}

	account, err := h.accountService.GetAccountByID(c.Request.Context(), businessID, accountID, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	balance, err := h.accountService.CalculateAccountBalance(c.Request.Context(), businessID, accountID, asOf)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.AccountBalanceResponse{
		AccountID:   account.AccountID,
		AccountCode: account.AccountCode,
		Balance:     balance,
		AsOf:        asOf,
	})
}

// updateAccount godoc
// @Summary Update an account
// @Tags accounts
// @Accept json
// @Produce json
// @Param businessID path string true "Business ID"
// @Param accountID path string true "Account ID"
// @Param account body dto.UpdateAccountRequest true "Fields to update"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Router /businesses/{businessID}/accounts/{accountID} [put]
func (h *accountHandler) updateAccount(c *gin.Context) {
	var req dto.UpdateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	account, err := h.accountService.UpdateAccount(c.Request.Context(), c.Param("businessID"), c.Param("accountID"), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Account updated", dto.ToAccountResponse(account)))
}

// deleteAccount godoc
// @Summary Delete an account
// @Description Marks the account deleted. Accounts referenced by journal lines cannot be deleted.
// @Tags accounts
// @Produce json
// @Param businessID path string true "Business ID"
// @Param accountID path string true "Account ID"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Failure 409 {object} dto.Envelope
// @Router /businesses/{businessID}/accounts/{accountID} [delete]
func (h *accountHandler) deleteAccount(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if err := h.accountService.DeleteAccount(c.Request.Context(), c.Param("businessID"), c.Param("accountID"), userID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Account deleted", nil))
}

// listAccounts godoc
// @Summary List accounts
// @Tags accounts
// @Produce json
// @Param businessID path string true "Business ID"
// @Param limit query int false "Page size" default(50)
// @Param offset query int false "Page offset" default(0)
// @Success 200 {object} dto.ListAccountsResponse
// @Router /businesses/{businessID}/accounts [get]
func (h *accountHandler) listAccounts(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	var params dto.ListAccountsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid query parameters"))
		return
	}

	accounts, err := h.accountService.ListAccounts(c.Request.Context(), c.Param("businessID"), params.Limit, params.Offset)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ListAccountsResponse{Accounts: dto.ToListAccountResponse(accounts)})
}
