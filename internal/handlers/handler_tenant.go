package handlers

import (
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	portssvc "github.com/nestapt/nest_backend/internal/core/ports/services"
	"github.com/nestapt/nest_backend/internal/dto"
	"github.com/nestapt/nest_backend/internal/middleware"
)

// tenantHandler handles HTTP requests related to tenants.
type tenantHandler struct {
	tenantService portssvc.TenantSvcFacade
}

func newTenantHandler(tenantService portssvc.TenantSvcFacade) *tenantHandler {
	return &tenantHandler{
		tenantService: tenantService,
	}
}

// createTenant godoc
// @Summary Create a tenant
// @Tags tenants
// @Accept  json
// @Produce  json
// @Param   tenant body dto.CreateTenantRequest true "Tenant details"
// @Success 201 {object} dto.TenantResponse
// @Failure 400 {object} ErrorResponse "Invalid request format"
// @Router /tenants/ [post]
func (h *tenantHandler) createTenant(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for CreateTenant", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	tenant, err := h.tenantService.CreateTenant(c.Request.Context(), req, middleware.GetChannelFromContext(c))
	if err != nil {
		respondServiceError(c, err, "Failed to create tenant")
		return
	}

	logger.Info("Tenant created", slog.String("tenant_id", tenant.TenantID))
	c.JSON(http.StatusCreated, dto.ToTenantResponse(tenant))
}

// listTenants godoc
// @Summary List tenants
// @Description Lists active tenants; pass includeArchived=true to include archived ones
// @Tags tenants
// @Produce  json
// @Param   includeArchived query bool false "Include archived tenants"
// @Success 200 {array} dto.TenantResponse
// @Router /tenants/ [get]
func (h *tenantHandler) listTenants(c *gin.Context) {
	includeArchived := c.Query("includeArchived") == "true"

	tenants, err := h.tenantService.ListTenants(c.Request.Context(), includeArchived)
	if err != nil {
		respondServiceError(c, err, "Failed to list tenants")
		return
	}
	c.JSON(http.StatusOK, dto.ToTenantResponses(tenants))
}

// getTenant godoc
// @Summary Get a tenant
// @Tags tenants
// @Produce  json
// @Param   tenantID path string true "Tenant ID"
// @Success 200 {object} dto.TenantResponse
// @Failure 404 {object} ErrorResponse "Tenant not found"
// @Router /tenants/{tenantID} [get]
func (h *tenantHandler) getTenant(c *gin.Context) {
	tenant, err := h.tenantService.GetTenantByID(c.Request.Context(), c.Param("tenantID"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve tenant")
		return
	}
	c.JSON(http.StatusOK, dto.ToTenantResponse(tenant))
}

// updateTenant godoc
// @Summary Update a tenant
// @Tags tenants
// @Accept  json
// @Produce  json
// @Param   tenantID path string true "Tenant ID"
// @Param   tenant body dto.UpdateTenantRequest true "Fields to update"
// @Success 200 {object} dto.TenantResponse
// @Failure 404 {object} ErrorResponse "Tenant not found"
// @Router /tenants/{tenantID} [patch]
func (h *tenantHandler) updateTenant(c *gin.Context) {
	var req dto.UpdateTenantRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	tenant, err := h.tenantService.UpdateTenant(c.Request.Context(), c.Param("tenantID"), req, middleware.GetChannelFromContext(c))
	if err != nil {
		respondServiceError(c, err, "Failed to update tenant")
		return
	}
	c.JSON(http.StatusOK, dto.ToTenantResponse(tenant))
}

// registerTenantRoutes registers tenant specific routes.
func registerTenantRoutes(group *gin.RouterGroup, tenantService portssvc.TenantSvcFacade) {
	h := newTenantHandler(tenantService)

	tenants := group.Group("/tenants")
	{
		tenants.POST("/", h.createTenant)
		tenants.GET("/", h.listTenants)
		tenants.GET("/:tenantID", h.getTenant)
		tenants.PATCH("/:tenantID", h.updateTenant)
	}
}
