package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/bizledger/biz_ledger_app/internal/core/ports/services"
	"github.com/bizledger/biz_ledger_app/internal/dto"
	"github.com/bizledger/biz_ledger_app/internal/middleware"
)

// journalHandler handles HTTP requests for journal entries.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

func newJournalHandler(journalService portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{journalService: journalService}
}

// registerJournalRoutes registers journal specific routes
func registerJournalRoutes(group *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	journals := group.Group("/journal-entries")
	{
		journals.POST("", h.createEntry)
		journals.POST("/drafts", h.createDraftEntry)
		journals.PUT("/drafts/:entryID", h.updateDraftEntry)
		journals.POST("/drafts/:entryID/post", h.postDraftEntry)
		journals.POST("/:entryID/reverse", h.reverseEntry)
		journals.GET("", h.listEntries)
		journals.GET("/:entryID", h.getEntry)
	}
}

// createEntry godoc
// @Summary Create a posted journal entry
// @Description Validates, numbers and posts a balanced journal entry.
// @Tags journal-entries
// @Accept json
// @Produce json
// @Param businessID path string true "Business ID"
// @Param entry body dto.CreateJournalEntryRequest true "Journal entry"
// @Success 201 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Router /businesses/{businessID}/journal-entries [post]
func (h *journalHandler) createEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	entry, err := h.journalService.CreateEntry(c.Request.Context(), c.Param("businessID"), req, userID)
	if err != nil {
		logger.Warn("Failed to create journal entry", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK("Journal entry posted", dto.ToJournalEntryResponse(entry)))
}

// createDraftEntry godoc
// @Summary Create a draft journal entry
// @Description Saves a balanced entry in DRAFT status so it can be edited before posting.
// @Tags journal-entries
// @Accept json
// @Produce json
// @Param businessID path string true "Business ID"
// @Param entry body dto.CreateJournalEntryRequest true "Journal entry"
// @Success 201 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Router /businesses/{businessID}/journal-entries/drafts [post]
func (h *journalHandler) createDraftEntry(c *gin.Context) {
	var req dto.CreateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	entry, err := h.journalService.CreateDraftEntry(c.Request.Context(), c.Param("businessID"), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK("Draft journal entry created", dto.ToJournalEntryResponse(entry)))
}

// updateDraftEntry godoc
// @Summary Update a draft journal entry
// @Description Edits a DRAFT entry. Posted and reversed entries are immutable.
// @Tags journal-entries
// @Accept json
// @Produce json
// @Param businessID path string true "Business ID"
// @Param entryID path string true "Entry ID"
// @Param entry body dto.UpdateJournalEntryRequest true "Fields to update"
// @Success 200 {object} dto.Envelope
// @Failure 400 {object} dto.Envelope
// @Failure 409 {object} dto.Envelope
// @Router /businesses/{businessID}/journal-entries/drafts/{entryID} [put]
func (h *journalHandler) updateDraftEntry(c *gin.Context) {
	var req dto.UpdateJournalEntryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid request body"))
		return
	}
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	entry, err := h.journalService.UpdateDraftEntry(c.Request.Context(), c.Param("businessID"), c.Param("entryID"), req, userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Draft journal entry updated", dto.ToJournalEntryResponse(entry)))
}

// postDraftEntry godoc
// @Summary Post a draft journal entry
// @Tags journal-entries
// @Produce json
// @Param businessID path string true "Business ID"
// @Param entryID path string true "Entry ID"
// @Success 200 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Failure 409 {object} dto.Envelope
// @Router /businesses/{businessID}/journal-entries/drafts/{entryID}/post [post]
func (h *journalHandler) postDraftEntry(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	entry, err := h.journalService.PostDraftEntry(c.Request.Context(), c.Param("businessID"), c.Param("entryID"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.OK("Journal entry posted", dto.ToJournalEntryResponse(entry)))
}

// reverseEntry godoc
// @Summary Reverse a posted journal entry
// @Description Creates a mirror-image entry dated now and marks the original reversed.
// @Tags journal-entries
// @Produce json
// @Param businessID path string true "Business ID"
// @Param entryID path string true "Entry ID"
// @Success 201 {object} dto.Envelope
// @Failure 404 {object} dto.Envelope
// @Failure 409 {object} dto.Envelope
// @Router /businesses/{businessID}/journal-entries/{entryID}/reverse [post]
func (h *journalHandler) reverseEntry(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	reversal, err := h.journalService.ReverseEntry(c.Request.Context(), c.Param("businessID"), c.Param("entryID"), userID)
	if err != nil {
		logger.Warn("Failed to reverse journal entry", slog.String("error", err.Error()))
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.OK("Journal entry reversed", dto.ToJournalEntryResponse(reversal)))
}

// getEntry godoc
// @Summary Get a journal entry with its lines
// @Tags journal-entries
// @Produce json
// @Param businessID path string true "Business ID"
// @Param entryID path string true "Entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 404 {object} dto.Envelope
// @Router /businesses/{businessID}/journal-entries/{entryID} [get]
func (h *journalHandler) getEntry(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	entry, err := h.journalService.GetEntryByID(c.Request.Context(), c.Param("businessID"), c.Param("entryID"), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// listEntries godoc
// @Summary List journal entries
// @Description Token-paginated list ordered by transaction date descending.
// @Tags journal-entries
// @Produce json
// @Param businessID path string true "Business ID"
// @Param limit query int false "Page size" default(20)
// @Param nextToken query string false "Token from the previous page"
// @Success 200 {object} dto.ListJournalEntriesResponse
// @Router /businesses/{businessID}/journal-entries [get]
func (h *journalHandler) listEntries(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	var params dto.ListJournalEntriesParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, dto.Fail("Invalid query parameters"))
		return
	}

	resp, err := h.journalService.ListEntries(c.Request.Context(), c.Param("businessID"), userID, params)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}
