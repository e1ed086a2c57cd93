package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	portssvc "github.com/bizledger/biz_ledger_app/internal/core/ports/services"
	"github.com/bizledger/biz_ledger_app/internal/dto"
)

// auditHandler handles HTTP requests for the audit trail.
type auditHandler struct {
	auditService portssvc.AuditSvcFacade
}

func newAuditHandler(auditService portssvc.AuditSvcFacade) *auditHandler {
	return &auditHandler{auditService: auditService}
}

// registerAuditRoutes registers audit specific routes
func registerAuditRoutes(group *gin.RouterGroup, auditService portssvc.AuditSvcFacade) {
	h := newAuditHandler(auditService)

	group.GET("/audit/:entityType/:entityID", h.listAuditLogs)
}

// listAuditLogs godoc
// @Summary List audit records for an entity
// @Description Returns who changed what and when, newest first.
// @Tags audit
// @Produce json
// @Param businessID path string true "Business ID"
// @Param entityType path string true "Entity type, e.g. JOURNAL_ENTRY"
// @Param entityID path string true "Entity ID"
// @Param limit query int false "Max records" default(50)
// @Success 200 {array} dto.AuditLogResponse
// @Router /businesses/{businessID}/audit/{entityType}/{entityID} [get]
func (h *auditHandler) listAuditLogs(c *gin.Context) {
	if _, ok := requireUserID(c); !ok {
		return
	}

	limit := 50
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed <= 0 {
			c.JSON(http.StatusBadRequest, dto.Fail("limit must be a positive integer"))
			return
		}
		limit = parsed
	}

	logs, err := h.auditService.ListAuditLogs(c.Request.Context(), c.Param("businessID"), c.Param("entityType"), c.Param("entityID"), limit)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToListAuditLogResponse(logs))
}
