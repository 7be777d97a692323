package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nestapt/nest_backend/internal/core/domain"
	portssvc "github.com/nestapt/nest_backend/internal/core/ports/services"
	"github.com/nestapt/nest_backend/internal/dto"
	"github.com/nestapt/nest_backend/internal/middleware"
)

// unitHandler handles HTTP requests related to units.
type unitHandler struct {
	unitService portssvc.UnitSvcFacade
}

func newUnitHandler(unitService portssvc.UnitSvcFacade) *unitHandler {
	return &unitHandler{
		unitService: unitService,
	}
}

// createUnit godoc
// @Summary Create a unit
// @Description Registers a rentable unit with its price tiers
// @Tags units
// @Accept  json
// @Produce  json
// @Param   unit body dto.CreateUnitRequest true "Unit details"
// @Success 201 {object} dto.UnitResponse
// @Failure 400 {object} ErrorResponse "Invalid request format"
// @Failure 409 {object} ErrorResponse "Unit code already exists"
// @Router /units/ [post]
func (h *unitHandler) createUnit(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for CreateUnit", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	unit, err := h.unitService.CreateUnit(c.Request.Context(), req, middleware.GetChannelFromContext(c))
	if err != nil {
		respondServiceError(c, err, "Failed to create unit")
		return
	}

	logger.Info("Unit created", slog.String("unit_id", unit.UnitID), slog.String("unit_code", unit.UnitCode))
	c.JSON(http.StatusCreated, dto.ToUnitResponse(unit))
}

// listUnits godoc
// @Summary List units
// @Description Lists units, optionally filtered by status
// @Tags units
// @Produce  json
// @Param   status query string false "Unit status filter (AVAILABLE, RESERVED, OCCUPIED)"
// @Success 200 {array} dto.UnitResponse
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Router /units/ [get]
func (h *unitHandler) listUnits(c *gin.Context) {
	var statusFilter *domain.UnitStatus
	if raw := c.Query("status"); raw != "" {
		status := domain.UnitStatus(raw)
		if !status.IsValid() {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid unit status: " + raw})
			return
		}
		statusFilter = &status
	}

	units, err := h.unitService.ListUnits(c.Request.Context(), statusFilter)
	if err != nil {
		respondServiceError(c, err, "Failed to list units")
		return
	}
	c.JSON(http.StatusOK, dto.ToUnitResponses(units))
}

// getUnit godoc
// @Summary Get a unit
// @Tags units
// @Produce  json
// @Param   unitID path string true "Unit ID"
// @Success 200 {object} dto.UnitResponse
// @Failure 404 {object} ErrorResponse "Unit not found"
// @Router /units/{unitID} [get]
func (h *unitHandler) getUnit(c *gin.Context) {
	unit, err := h.unitService.GetUnitByID(c.Request.Context(), c.Param("unitID"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve unit")
		return
	}
	c.JSON(http.StatusOK, dto.ToUnitResponse(unit))
}

// updateUnit godoc
// @Summary Update a unit
// @Description Updates unit details and price tiers; status changes only via deal actions
// @Tags units
// @Accept  json
// @Produce  json
// @Param   unitID path string true "Unit ID"
// @Param   unit body dto.UpdateUnitRequest true "Fields to update"
// @Success 200 {object} dto.UnitResponse
// @Failure 404 {object} ErrorResponse "Unit not found"
// @Router /units/{unitID} [patch]
func (h *unitHandler) updateUnit(c *gin.Context) {
	var req dto.UpdateUnitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	unit, err := h.unitService.UpdateUnit(c.Request.Context(), c.Param("unitID"), req, middleware.GetChannelFromContext(c))
	if err != nil {
		respondServiceError(c, err, "Failed to update unit")
		return
	}
	c.JSON(http.StatusOK, dto.ToUnitResponse(unit))
}

// registerUnitRoutes registers unit specific routes.
func registerUnitRoutes(group *gin.RouterGroup, unitService portssvc.UnitSvcFacade) {
	h := newUnitHandler(unitService)

	units := group.Group("/units")
	{
		units.POST("/", h.createUnit)
		units.GET("/", h.listUnits)
		units.GET("/:unitID", h.getUnit)
		units.PATCH("/:unitID", h.updateUnit)
	}
}
