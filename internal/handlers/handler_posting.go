package handlers

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/contasys/contasys-backend/internal/apperrors"
	"github.com/contasys/contasys-backend/internal/core/domain"
	portssvc "github.com/contasys/contasys-backend/internal/core/ports/services"
	"github.com/contasys/contasys-backend/internal/dto"
	"github.com/contasys/contasys-backend/internal/middleware"
	"github.com/gin-gonic/gin"
)

// postingHandler handles batch posting, entry reads and document voiding.
type postingHandler struct {
	postingService portssvc.PostingSvcFacade
	accessService  portssvc.AccessSvcFacade
}

func newPostingHandler(postingService portssvc.PostingSvcFacade, accessService portssvc.AccessSvcFacade) *postingHandler {
	return &postingHandler{
		postingService: postingService,
		accessService:  accessService,
	}
}

func registerPostingRoutes(rg *gin.RouterGroup, postingService portssvc.PostingSvcFacade, accessService portssvc.AccessSvcFacade) {
	h := newPostingHandler(postingService, accessService)
	rg.POST("/postings", h.postDocuments)
	rg.GET("/entries/:entryID", h.getEntry)
	rg.POST("/documents/:documentUUID/void", h.voidDocument)
}

// postDocuments godoc
// @Summary Post a batch of documents to the journal
// @Description Posts each document in its own atomic transaction. Returns 200 when all posted, 207 on a partial result, or the common error when every document failed for the same reason.
// @Tags postings
// @Accept json
// @Produce json
// @Param tenantSlug path string true "Tenant slug"
// @Param companyID path int true "Company ID"
// @Param batch body dto.PostDocumentsRequest true "Document UUIDs to post"
// @Success 200 {object} dto.PostDocumentsResponse "All documents posted"
// @Success 207 {object} dto.PostDocumentsResponse "Partial result"
// @Failure 400 {object} map[string]string "Invalid request format"
// @Failure 409 {object} map[string]string "All documents failed with a conflict"
// @Router /tenants/{tenantSlug}/companies/{companyID}/postings [post]
func (h *postingHandler) postDocuments(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())

	var req dto.PostDocumentsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		logger.Warn("Failed to bind posting request", slog.String("error", err.Error()))
		respondError(c, apperrors.NewValidationError("invalid request format"))
		return
	}

	auth, ok := authorizeCompany(c, h.accessService, domain.RoleMember)
	if !ok {
		return
	}

	response, err := h.postingService.PostDocuments(c.Request.Context(), *auth, req.DocumentUUIDs)
	if err != nil {
		respondError(c, err)
		return
	}

	switch {
	case response.AllFailed() && uniformFailure(response.Failed):
		// Every document failed the same way; answer with that error so
		// single-document callers keep a plain error contract.
		first := response.Failed[0]
		status := statusForCode(first.Code)
		c.JSON(status, gin.H{"code": first.Code, "error": first.Message, "failed": response.Failed})
	case response.Partial() || response.AllFailed():
		c.JSON(http.StatusMultiStatus, response)
	default:
		c.JSON(http.StatusOK, response)
	}
}

// uniformFailure reports whether all failed items share one error code.
func uniformFailure(failed []dto.FailedItem) bool {
	for _, item := range failed[1:] {
		if item.Code != failed[0].Code {
			return false
		}
	}
	return true
}

// statusForCode maps taxonomy codes to their HTTP status for the uniform
// all-failed answer.
func statusForCode(code string) int {
	switch code {
	case apperrors.CodeDocumentNotFound:
		return http.StatusNotFound
	case apperrors.CodeValidation:
		return http.StatusBadRequest
	case apperrors.CodeInternal, apperrors.CodeUnbalancedEntry:
		return http.StatusInternalServerError
	default:
		return http.StatusConflict
	}
}

// getEntry godoc
// @Summary Get a journal entry with its lines
// @Tags postings
// @Produce json
// @Param tenantSlug path string true "Tenant slug"
// @Param companyID path int true "Company ID"
// @Param entryID path int true "Journal entry ID"
// @Success 200 {object} dto.JournalEntryResponse
// @Failure 404 {object} map[string]string "Entry not found"
// @Router /tenants/{tenantSlug}/companies/{companyID}/entries/{entryID} [get]
func (h *postingHandler) getEntry(c *gin.Context) {
	auth, ok := authorizeCompany(c, h.accessService, domain.RoleReadOnly)
	if !ok {
		return
	}

	entryID, err := strconv.ParseInt(c.Param("entryID"), 10, 64)
	if err != nil {
		respondError(c, apperrors.NewValidationError("entryID must be an integer"))
		return
	}

	entry, err := h.postingService.GetEntry(c.Request.Context(), *auth, entryID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToJournalEntryResponse(entry))
}

// voidDocument godoc
// @Summary Void a source document
// @Description Marks the document VOIDED. Voided documents leave the aging view and can never be posted.
// @Tags postings
// @Produce json
// @Param tenantSlug path string true "Tenant slug"
// @Param companyID path int true "Company ID"
// @Param documentUUID path string true "Document UUID"
// @Success 200 {object} dto.DocumentResponse
// @Failure 404 {object} map[string]string "Document not found"
// @Failure 409 {object} map[string]string "Document already voided"
// @Router /tenants/{tenantSlug}/companies/{companyID}/documents/{documentUUID}/void [post]
func (h *postingHandler) voidDocument(c *gin.Context) {
	auth, ok := authorizeCompany(c, h.accessService, domain.RoleMember)
	if !ok {
		return
	}

	doc, err := h.postingService.VoidDocument(c.Request.Context(), *auth, c.Param("documentUUID"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.ToDocumentResponse(doc))
}
