package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/nestapt/nest_backend/internal/core/domain"
	portssvc "github.com/nestapt/nest_backend/internal/core/ports/services"
	"github.com/nestapt/nest_backend/internal/dto"
)

// auditHandler serves the append-only audit trail.
type auditHandler struct {
	auditService portssvc.AuditSvcFacade
}

func newAuditHandler(auditService portssvc.AuditSvcFacade) *auditHandler {
	return &auditHandler{
		auditService: auditService,
	}
}

// listAuditLogs godoc
// @Summary List audit log entries
// @Description Lists audit entries newest first, optionally filtered by deal or action
// @Tags audit
// @Produce  json
// @Param   dealID query string false "Deal ID filter"
// @Param   action query string false "Action filter"
// @Param   limit query int false "Maximum entries to return"
// @Success 200 {array} dto.AuditLogResponse
// @Router /audit-logs/ [get]
func (h *auditHandler) listAuditLogs(c *gin.Context) {
	var dealID *string
	if raw := c.Query("dealID"); raw != "" {
		dealID = &raw
	}

	var action *domain.AuditAction
	if raw := c.Query("action"); raw != "" {
		a := domain.AuditAction(raw)
		action = &a
	}

	limit := 0
	if raw := c.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid limit: " + raw})
			return
		}
		limit = parsed
	}

	entries, err := h.auditService.ListAuditLogs(c.Request.Context(), dealID, action, limit)
	if err != nil {
		respondServiceError(c, err, "Failed to list audit logs")
		return
	}
	c.JSON(http.StatusOK, dto.ToAuditLogResponses(entries))
}

// registerAuditRoutes registers audit specific routes.
func registerAuditRoutes(group *gin.RouterGroup, auditService portssvc.AuditSvcFacade) {
	h := newAuditHandler(auditService)

	group.GET("/audit-logs/", h.listAuditLogs)
}
