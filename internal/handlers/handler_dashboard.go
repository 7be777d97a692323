package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/nestapt/nest_backend/internal/core/ports/services"
)

// dashboardHandler serves the aggregate dashboard view.
type dashboardHandler struct {
	dashboardService portssvc.DashboardSvcFacade
}

func newDashboardHandler(dashboardService portssvc.DashboardSvcFacade) *dashboardHandler {
	return &dashboardHandler{
		dashboardService: dashboardService,
	}
}

// getSummary godoc
// @Summary Dashboard summary
// @Description Returns deal pipeline counts and unit occupancy
// @Tags dashboard
// @Produce  json
// @Success 200 {object} dto.DashboardSummary
// @Router /dashboard/summary [get]
func (h *dashboardHandler) getSummary(c *gin.Context) {
	summary, err := h.dashboardService.GetSummary(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "Failed to build dashboard summary")
		return
	}
	c.JSON(http.StatusOK, summary)
}

// registerDashboardRoutes registers dashboard specific routes.
func registerDashboardRoutes(group *gin.RouterGroup, dashboardService portssvc.DashboardSvcFacade) {
	h := newDashboardHandler(dashboardService)

	group.GET("/dashboard/summary", h.getSummary)
}
