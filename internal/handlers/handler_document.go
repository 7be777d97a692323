package handlers

import (
	"io"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	portssvc "github.com/nestapt/nest_backend/internal/core/ports/services"
	"github.com/nestapt/nest_backend/internal/dto"
	"github.com/nestapt/nest_backend/internal/middleware"
)

// documentHandler handles HTTP requests for generated documents and finance
// attachments.
type documentHandler struct {
	documentService portssvc.DocumentSvcFacade
}

func newDocumentHandler(documentService portssvc.DocumentSvcFacade) *documentHandler {
	return &documentHandler{
		documentService: documentService,
	}
}

// listDocuments godoc
// @Summary List documents
// @Description Lists document aggregates, optionally filtered by deal
// @Tags documents
// @Produce  json
// @Param   dealID query string false "Deal ID filter"
// @Success 200 {array} dto.DocumentResponse
// @Router /documents/ [get]
func (h *documentHandler) listDocuments(c *gin.Context) {
	var dealID *string
	if raw := c.Query("dealID"); raw != "" {
		dealID = &raw
	}

	documents, err := h.documentService.ListDocuments(c.Request.Context(), dealID)
	if err != nil {
		respondServiceError(c, err, "Failed to list documents")
		return
	}
	c.JSON(http.StatusOK, documents)
}

// getDocument godoc
// @Summary Get a document with its versions
// @Tags documents
// @Produce  json
// @Param   documentID path string true "Document ID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 404 {object} ErrorResponse "Document not found"
// @Router /documents/{documentID} [get]
func (h *documentHandler) getDocument(c *gin.Context) {
	document, err := h.documentService.GetDocumentByID(c.Request.Context(), c.Param("documentID"))
	if err != nil {
		respondServiceError(c, err, "Failed to retrieve document")
		return
	}
	c.JSON(http.StatusOK, document)
}

// downloadVersion godoc
// @Summary Download a document version artifact
// @Description Streams the rendered HTML, or the PDF when format=pdf
// @Tags documents
// @Produce  octet-stream
// @Param   documentID path string true "Document ID"
// @Param   versionID path string true "Version ID"
// @Param   format query string false "Artifact format (html or pdf)"
// @Success 200 {file} file
// @Failure 404 {object} ErrorResponse "Version not found"
// @Router /documents/{documentID}/versions/{versionID}/file [get]
func (h *documentHandler) downloadVersion(c *gin.Context) {
	pdf := strings.EqualFold(c.Query("format"), "pdf")

	rc, fileName, err := h.documentService.OpenVersionFile(c.Request.Context(), c.Param("documentID"), c.Param("versionID"), pdf)
	if err != nil {
		respondServiceError(c, err, "Failed to open document file")
		return
	}
	defer rc.Close()

	streamFile(c, rc, fileName, pdf)
}

// downloadLatestPDF godoc
// @Summary Download the latest PDF of a document
// @Tags documents
// @Produce  octet-stream
// @Param   documentID path string true "Document ID"
// @Success 200 {file} file
// @Failure 404 {object} ErrorResponse "Document not found"
// @Router /documents/{documentID}/latest/pdf [get]
func (h *documentHandler) downloadLatestPDF(c *gin.Context) {
	rc, fileName, err := h.documentService.OpenLatestPDF(c.Request.Context(), c.Param("documentID"))
	if err != nil {
		respondServiceError(c, err, "Failed to open document file")
		return
	}
	defer rc.Close()

	streamFile(c, rc, fileName, true)
}

// listAttachments godoc
// @Summary List a deal's finance attachments
// @Tags documents
// @Produce  json
// @Param   dealID path string true "Deal ID"
// @Success 200 {array} dto.FinanceAttachmentResponse
// @Router /deals/{dealID}/attachments [get]
func (h *documentHandler) listAttachments(c *gin.Context) {
	attachments, err := h.documentService.ListAttachments(c.Request.Context(), c.Param("dealID"))
	if err != nil {
		respondServiceError(c, err, "Failed to list attachments")
		return
	}
	c.JSON(http.StatusOK, dto.ToFinanceAttachmentResponses(attachments))
}

// streamFile writes the artifact to the response with a download disposition.
func streamFile(c *gin.Context, rc io.Reader, fileName string, pdf bool) {
	contentType := "text/html; charset=utf-8"
	if pdf {
		contentType = "application/pdf"
	}
	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)
	c.Header("Content-Type", contentType)
	c.Status(http.StatusOK)

	if _, err := io.Copy(c.Writer, rc); err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to stream document file")
	}
}

// registerDocumentRoutes registers document specific routes.
func registerDocumentRoutes(group *gin.RouterGroup, documentService portssvc.DocumentSvcFacade) {
	h := newDocumentHandler(documentService)

	documents := group.Group("/documents")
	{
		documents.GET("/", h.listDocuments)
		documents.GET("/:documentID", h.getDocument)
		documents.GET("/:documentID/versions/:versionID/file", h.downloadVersion)
		documents.GET("/:documentID/latest/pdf", h.downloadLatestPDF)
	}

	group.GET("/deals/:dealID/attachments", h.listAttachments)
}
