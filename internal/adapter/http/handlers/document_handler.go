package handlers

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	request "bathroom_quote_saver/internal/adapter/http/dto/request"
	response "bathroom_quote_saver/internal/adapter/http/dto/response"
	"bathroom_quote_saver/internal/usecase"
	"bathroom_quote_saver/internal/usecase/interfaces"
	"bathroom_quote_saver/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidDocumentPayload = pkg.NewDomainErrorSimple("INVALID_DOCUMENT_INPUT", "Invalid document payload", http.StatusBadRequest)
)

// DocumentHandler handles PDF generation and email delivery for quotes.

type DocumentHandler struct {
	usecase usecase.IDocumentUseCase
}

func NewDocumentHandler(uc usecase.IDocumentUseCase) *DocumentHandler {
	return &DocumentHandler{usecase: uc}
}

// GenerateProposal godoc
// @Summary Generate a proposal PDF for a quote
// @Tags documents
// @Accept json
// @Produce application/pdf
// @Param quote_id path string true "Quote ID"
// @Param payload body request.GenerateProposalRequest false "Branding and cost overrides"
// @Success 200 {file} binary
// @Router /api/quotes/{quote_id}/generate-proposal [post]
func (h *DocumentHandler) GenerateProposal(c *gin.Context) {
	quoteID := strings.TrimSpace(c.Param("quote_id"))
	if quoteID == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	var payload request.GenerateProposalRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidDocumentPayload.HTTPStatus, errInvalidDocumentPayload.ToHTTPError())
		return
	}

	pdfBytes, filename, err := h.usecase.GenerateProposal(c.Request.Context(), quoteID, payload.UserProfile.ToEntity(), payload.Overrides())
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	writePDF(c, filename, pdfBytes)
}

// GenerateQuoteSummary godoc
// @Summary Generate a quote summary PDF
// @Tags documents
// @Accept json
// @Produce application/pdf
// @Param quote_id path string true "Quote ID"
// @Param payload body request.GenerateSummaryRequest false "Branding, cost overrides and breakdown toggle"
// @Success 200 {file} binary
// @Router /api/quotes/{quote_id}/generate-quote-summary [post]
func (h *DocumentHandler) GenerateQuoteSummary(c *gin.Context) {
	quoteID := strings.TrimSpace(c.Param("quote_id"))
	if quoteID == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	var payload request.GenerateSummaryRequest
	if err := c.ShouldBindJSON(&payload); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(errInvalidDocumentPayload.HTTPStatus, errInvalidDocumentPayload.ToHTTPError())
		return
	}

	pdfBytes, filename, err := h.usecase.GenerateQuoteSummary(c.Request.Context(), quoteID, payload.UserProfile.ToEntity(), payload.Overrides(), payload.BreakdownEnabled())
	if err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	writePDF(c, filename, pdfBytes)
}

// SendQuoteEmail godoc
// @Summary Email a quote to a client
// @Tags documents
// @Accept json
// @Produce json
// @Param quote_id path string true "Quote ID"
// @Param payload body request.SendEmailRequest true "Recipient and content options"
// @Success 200 {object} response.MessageResponse
// @Router /api/quotes/{quote_id}/send-email [post]
func (h *DocumentHandler) SendQuoteEmail(c *gin.Context) {
	quoteID := strings.TrimSpace(c.Param("quote_id"))
	if quoteID == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	var payload request.SendEmailRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidDocumentPayload.HTTPStatus, errInvalidDocumentPayload.ToHTTPError())
		return
	}

	input := usecase.SendEmailInput{
		Recipient:  payload.RecipientEmail,
		ClientName: payload.ClientName,
		Options:    payload.Options(),
		Profile:    payload.UserProfile.ToEntity(),
	}
	if err := h.usecase.SendQuoteEmail(c.Request.Context(), quoteID, input); err != nil {
		appErr := mapDocumentError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.MessageResponse{Message: "Quote email sent successfully"})
}

func writePDF(c *gin.Context, filename string, pdfBytes []byte) {
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}

func mapDocumentError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID), errors.Is(err, usecase.ErrInvalidRecipient):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Quote request not found", http.StatusNotFound)
	case errors.Is(err, interfaces.ErrEmailNotConfigured):
		return pkg.NewDomainErrorSimple("EMAIL_NOT_CONFIGURED", "Email delivery is not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrEmailDelivery):
		return pkg.NewDomainErrorSimple("EMAIL_DELIVERY_FAILED", "Email delivery failed", http.StatusBadGateway)
	case errors.Is(err, usecase.ErrProposalGeneration):
		return pkg.NewDomainError("PROPOSAL_GENERATION_FAILED", "Failed to generate document", err, http.StatusInternalServerError)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
