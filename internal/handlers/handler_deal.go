package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/nestapt/nest_backend/internal/apperrors"
	"github.com/nestapt/nest_backend/internal/core/domain"
	portssvc "github.com/nestapt/nest_backend/internal/core/ports/services"
	"github.com/nestapt/nest_backend/internal/dto"
	"github.com/nestapt/nest_backend/internal/middleware"
)

// ErrorResponse is the generic error body returned by all handlers.
type ErrorResponse struct {
	Error string `json:"error"`
}

// respondServiceError translates service-layer sentinel errors into HTTP
// status codes. Unrecognized errors are logged and hidden behind a 500.
func respondServiceError(c *gin.Context, err error, fallbackMsg string) {
	switch {
	case errors.Is(err, apperrors.ErrNotFound):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrValidation):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrConflict), errors.Is(err, apperrors.ErrDuplicate):
		c.JSON(http.StatusConflict, ErrorResponse{Error: err.Error()})
	case errors.Is(err, apperrors.ErrForbidden):
		c.JSON(http.StatusForbidden, ErrorResponse{Error: err.Error()})
	default:
		logger := middleware.GetLoggerFromCtx(c.Request.Context())
		logger.Error(fallbackMsg, slog.String("error", err.Error()))
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: fallbackMsg})
	}
}

// dealHandler handles HTTP requests related to deals and their journey.
type dealHandler struct {
	dealService portssvc.DealSvcFacade
}

// newDealHandler creates a new dealHandler.
func newDealHandler(dealService portssvc.DealSvcFacade) *dealHandler {
	return &dealHandler{
		dealService: dealService,
	}
}

// createDeal godoc
// @Summary Create a deal
// @Description Creates a deal for a tenant and unit, reserves the unit and starts the journey
// @Tags deals
// @Accept  json
// @Produce  json
// @Param   deal body dto.CreateDealRequest true "Deal details"
// @Param   channel query string false "Originating channel (WEB or WHATSAPP)"
// @Success 201 {object} dto.DealResponse
// @Failure 400 {object} ErrorResponse "Invalid request format"
// @Failure 404 {object} ErrorResponse "Tenant or unit not found"
// @Failure 409 {object} ErrorResponse "Unit not available"
// @Router /deals/ [post]
func (h *dealHandler) createDeal(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.CreateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Error("Failed to bind JSON for CreateDeal", slog.String("error", err.Error()))
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	channel := middleware.GetChannelFromContext(c)
	deal, err := h.dealService.CreateDeal(c.Request.Context(), req, channel)
	if err != nil {
		respondServiceError(c, err, "Failed to create deal")
		return
	}

	logger.Info("Deal created", slog.String("deal_id", deal.DealID), slog.String("deal_code", deal.DealCode))
	c.JSON(http.StatusCreated, dto.ToDealResponse(deal))
}

// listDeals godoc
// @Summary List deals
// @Description Lists deals, optionally filtered by status
// @Tags deals
// @Produce  json
// @Param   status query string false "Deal status filter"
// @Success 200 {array} dto.DealResponse
// @Failure 400 {object} ErrorResponse "Invalid status"
// @Router /deals/ [get]
func (h *dealHandler) listDeals(c *gin.Context) {
	var statusFilter *domain.DealStatus
	if raw := c.Query("status"); raw != "" {
		status := domain.DealStatus(raw)
		switch status {
		case domain.DealDraft, domain.DealInProgress, domain.DealInvoiceRequested,
			domain.DealInvoiceUploaded, domain.DealCompleted, domain.DealCancelled:
		default:
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid deal status: " + raw})
			return
		}
		statusFilter = &status
	}

	deals, err := h.dealService.ListDeals(c.Request.Context(), statusFilter)
	if err != nil {
		respondServiceError(c, err, "Failed to list deals")
		return
	}
	c.JSON(http.StatusOK, dto.ToDealResponses(deals))
}

// getDeal godoc
// @Summary Get a deal
// @Description Retrieves a deal with its tenant and unit
// @Tags deals
// @Produce  json
// @Param   dealID path string true "Deal ID"
// @Success 200 {object} dto.DealResponse
// @Failure 404 {object} ErrorResponse "Deal not found"
// @Router /deals/{dealID} [get]
func (h *dealHandler) getDeal(c *gin.Context) {
	deal, err := h.dealService.GetDealByID(c.Request.Context(), c.Param("dealID"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve deal")
		return
	}
	c.JSON(http.StatusOK, dto.ToDealResponse(deal))
}

// getJourney godoc
// @Summary Get a deal's journey
// @Description Returns the ordered journey steps with completion and gate state
// @Tags deals
// @Produce  json
// @Param   dealID path string true "Deal ID"
// @Success 200 {object} dto.JourneyResponse
// @Failure 404 {object} ErrorResponse "Deal not found"
// @Router /deals/{dealID}/journey [get]
func (h *dealHandler) getJourney(c *gin.Context) {
	journey, err := h.dealService.GetJourney(c.Request.Context(), c.Param("dealID"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve journey")
		return
	}
	c.JSON(http.StatusOK, journey)
}

// updateDeal godoc
// @Summary Update a deal
// @Description Updates term dates of a live deal
// @Tags deals
// @Accept  json
// @Produce  json
// @Param   dealID path string true "Deal ID"
// @Param   deal body dto.UpdateDealRequest true "Fields to update"
// @Success 200 {object} dto.DealResponse
// @Failure 404 {object} ErrorResponse "Deal not found"
// @Failure 409 {object} ErrorResponse "Deal is terminal"
// @Router /deals/{dealID} [patch]
func (h *dealHandler) updateDeal(c *gin.Context) {
	var req dto.UpdateDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	deal, err := h.dealService.UpdateDeal(c.Request.Context(), c.Param("dealID"), req, middleware.GetChannelFromContext(c))
	if err != nil {
		respondServiceError(c, err, "Failed to update deal")
		return
	}
	c.JSON(http.StatusOK, dto.ToDealResponse(deal))
}

// setDealPrice godoc
// @Summary Set the negotiated price
// @Description Sets the deal price; only allowed at a pricing journey step
// @Tags deals
// @Accept  json
// @Produce  json
// @Param   dealID path string true "Deal ID"
// @Param   price body dto.SetDealPriceRequest true "Negotiated price"
// @Success 200 {object} dto.DealResponse
// @Failure 400 {object} ErrorResponse "Not at a pricing step"
// @Failure 404 {object} ErrorResponse "Deal not found"
// @Router /deals/{dealID}/price [post]
func (h *dealHandler) setDealPrice(c *gin.Context) {
	var req dto.SetDealPriceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	deal, err := h.dealService.SetDealPrice(c.Request.Context(), c.Param("dealID"), req, middleware.GetChannelFromContext(c))
	if err != nil {
		respondServiceError(c, err, "Failed to set deal price")
		return
	}
	c.JSON(http.StatusOK, dto.ToDealResponse(deal))
}

// setMoveIn godoc
// @Summary Set move-in details
// @Description Records the move-in date and notes; only allowed at the move-in step
// @Tags deals
// @Accept  json
// @Produce  json
// @Param   dealID path string true "Deal ID"
// @Param   moveIn body dto.SetMoveInRequest true "Move-in details"
// @Success 200 {object} dto.DealResponse
// @Failure 400 {object} ErrorResponse "Not at the move-in step"
// @Failure 404 {object} ErrorResponse "Deal not found"
// @Router /deals/{dealID}/move-in [post]
func (h *dealHandler) setMoveIn(c *gin.Context) {
	var req dto.SetMoveInRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	deal, err := h.dealService.SetMoveInDetails(c.Request.Context(), c.Param("dealID"), req, middleware.GetChannelFromContext(c))
	if err != nil {
		respondServiceError(c, err, "Failed to set move-in details")
		return
	}
	c.JSON(http.StatusOK, dto.ToDealResponse(deal))
}

// generateDocument godoc
// @Summary Generate the current step's document
// @Description Renders the document for the current journey step and advances the deal
// @Tags deals
// @Produce  json
// @Param   dealID path string true "Deal ID"
// @Param   channel query string false "Originating channel (WEB or WHATSAPP)"
// @Success 200 {object} dto.DealResponse
// @Failure 400 {object} ErrorResponse "Current step has no document"
// @Failure 404 {object} ErrorResponse "Deal not found"
// @Failure 409 {object} ErrorResponse "Deal is terminal"
// @Router /deals/{dealID}/generate-document [post]
func (h *dealHandler) generateDocument(c *gin.Context) {
	deal, err := h.dealService.GenerateDocument(c.Request.Context(), c.Param("dealID"), middleware.GetChannelFromContext(c))
	if err != nil {
		respondServiceError(c, err, "Failed to generate document")
		return
	}
	c.JSON(http.StatusOK, dto.ToDealResponse(deal))
}

// requestInvoice godoc
// @Summary Request the invoice from finance
// @Description Emails finance with the deal summary and latest document, then advances the deal
// @Tags deals
// @Produce  json
// @Param   dealID path string true "Deal ID"
// @Success 200 {object} dto.DealResponse
// @Failure 404 {object} ErrorResponse "Deal not found"
// @Failure 409 {object} ErrorResponse "Not at the invoice request step"
// @Router /deals/{dealID}/request-invoice [post]
func (h *dealHandler) requestInvoice(c *gin.Context) {
	deal, err := h.dealService.RequestInvoice(c.Request.Context(), c.Param("dealID"), middleware.GetChannelFromContext(c))
	if err != nil {
		respondServiceError(c, err, "Failed to request invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToDealResponse(deal))
}

// uploadInvoice godoc
// @Summary Upload the finance invoice
// @Description Stores the uploaded invoice file and advances the deal
// @Tags deals
// @Accept  multipart/form-data
// @Produce  json
// @Param   dealID path string true "Deal ID"
// @Param   file formData file true "Invoice file"
// @Success 200 {object} dto.DealResponse
// @Failure 400 {object} ErrorResponse "Missing file"
// @Failure 404 {object} ErrorResponse "Deal not found"
// @Failure 409 {object} ErrorResponse "Not at the invoice upload step"
// @Router /deals/{dealID}/upload-invoice [post]
func (h *dealHandler) uploadInvoice(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invoice file is required"})
		return
	}

	file, err := fileHeader.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Failed to read invoice file"})
		return
	}
	defer file.Close()

	deal, err := h.dealService.UploadInvoice(c.Request.Context(), c.Param("dealID"), fileHeader.Filename, file, middleware.GetChannelFromContext(c))
	if err != nil {
		respondServiceError(c, err, "Failed to upload invoice")
		return
	}
	c.JSON(http.StatusOK, dto.ToDealResponse(deal))
}

// closeDeal godoc
// @Summary Close a deal
// @Description Completes the deal at its final step and marks the unit occupied
// @Tags deals
// @Produce  json
// @Param   dealID path string true "Deal ID"
// @Success 200 {object} dto.DealResponse
// @Failure 404 {object} ErrorResponse "Deal not found"
// @Failure 409 {object} ErrorResponse "Not at the closing step"
// @Router /deals/{dealID}/close [post]
func (h *dealHandler) closeDeal(c *gin.Context) {
	deal, err := h.dealService.CloseDeal(c.Request.Context(), c.Param("dealID"), middleware.GetChannelFromContext(c))
	if err != nil {
		respondServiceError(c, err, "Failed to close deal")
		return
	}
	c.JSON(http.StatusOK, dto.ToDealResponse(deal))
}

// cancelDeal godoc
// @Summary Cancel a deal
// @Description Cancels the deal and releases its unit
// @Tags deals
// @Accept  json
// @Produce  json
// @Param   dealID path string true "Deal ID"
// @Param   cancellation body dto.CancelDealRequest true "Cancellation reason"
// @Success 200 {object} dto.DealResponse
// @Failure 404 {object} ErrorResponse "Deal not found"
// @Failure 409 {object} ErrorResponse "Deal already cancelled"
// @Router /deals/{dealID}/cancel [post]
func (h *dealHandler) cancelDeal(c *gin.Context) {
	var req dto.CancelDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	deal, err := h.dealService.CancelDeal(c.Request.Context(), c.Param("dealID"), req, middleware.GetChannelFromContext(c))
	if err != nil {
		respondServiceError(c, err, "Failed to cancel deal")
		return
	}
	c.JSON(http.StatusOK, dto.ToDealResponse(deal))
}

// overrideDeal godoc
// @Summary Emergency journey override
// @Description Forces the deal to an arbitrary journey step; web channel only
// @Tags deals
// @Accept  json
// @Produce  json
// @Param   dealID path string true "Deal ID"
// @Param   override body dto.OverrideDealRequest true "Target step and reason"
// @Success 200 {object} dto.DealResponse
// @Failure 400 {object} ErrorResponse "Target step not in journey"
// @Failure 403 {object} ErrorResponse "Not allowed from this channel"
// @Failure 404 {object} ErrorResponse "Deal not found"
// @Router /deals/{dealID}/override [post]
func (h *dealHandler) overrideDeal(c *gin.Context) {
	var req dto.OverrideDealRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format"})
		return
	}

	deal, err := h.dealService.EmergencyOverride(c.Request.Context(), c.Param("dealID"), req, middleware.GetChannelFromContext(c))
	if err != nil {
		respondServiceError(c, err, "Failed to override deal")
		return
	}
	c.JSON(http.StatusOK, dto.ToDealResponse(deal))
}

// RegisterDealRoutes registers deal specific routes.
func RegisterDealRoutes(group *gin.RouterGroup, dealService portssvc.DealSvcFacade) {
	h := newDealHandler(dealService)

	deals := group.Group("/deals")
	{
		deals.POST("/", h.createDeal)
		deals.GET("/", h.listDeals)
		deals.GET("/:dealID", h.getDeal)
		deals.PATCH("/:dealID", h.updateDeal)
		deals.GET("/:dealID/journey", h.getJourney)
		deals.POST("/:dealID/price", h.setDealPrice)
		deals.POST("/:dealID/move-in", h.setMoveIn)
		deals.POST("/:dealID/generate-document", h.generateDocument)
		deals.POST("/:dealID/request-invoice", h.requestInvoice)
		deals.POST("/:dealID/upload-invoice", h.uploadInvoice)
		deals.POST("/:dealID/close", h.closeDeal)
		deals.POST("/:dealID/cancel", h.cancelDeal)
		deals.POST("/:dealID/override", h.overrideDeal)
	}
}
