package handlers

import (
	"errors"
	"net/http"
	"strings"

	request "bathroom_quote_saver/internal/adapter/http/dto/request"
	response "bathroom_quote_saver/internal/adapter/http/dto/response"
	"bathroom_quote_saver/internal/usecase"
	"bathroom_quote_saver/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote request payload", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for renovation quotes.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

// CreateQuoteRequest godoc
// @Summary Request a renovation quote
// @Description Persists the renovation request and returns an estimated quote
// @Tags quotes
// @Accept json
// @Produce json
// @Param payload body request.QuoteRequest true "Renovation request"
// @Success 200 {object} response.QuoteResponse
// @Router /api/quotes/request [post]
func (h *QuoteHandler) CreateQuoteRequest(c *gin.Context) {
	var payload request.QuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.GenerateQuote(c.Request.Context(), payload.ToEntity())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// GetQuote godoc
// @Summary Fetch a quote by id
// @Tags quotes
// @Produce json
// @Param quote_id path string true "Quote ID"
// @Success 200 {object} response.QuoteResponse
// @Router /api/quotes/{quote_id} [get]
func (h *QuoteHandler) GetQuote(c *gin.Context) {
	quoteID := strings.TrimSpace(c.Param("quote_id"))
	if quoteID == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	quote, err := h.usecase.GetQuote(c.Request.Context(), quoteID)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// ListQuotes godoc
// @Summary List all quotes
// @Tags quotes
// @Produce json
// @Success 200 {array} response.QuoteResponse
// @Router /api/quotes [get]
func (h *QuoteHandler) ListQuotes(c *gin.Context) {
	quotes, err := h.usecase.ListQuotes(c.Request.Context())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

// AdjustQuote godoc
// @Summary Record a cost adjustment
// @Description Stores the correction for learning and overwrites the quote total
// @Tags quotes
// @Accept json
// @Produce json
// @Param quote_id path string true "Quote ID"
// @Param payload body request.AdjustmentRequest true "Adjustment"
// @Success 200 {object} response.AdjustmentResponse
// @Router /api/quotes/{quote_id}/adjust [post]
func (h *QuoteHandler) AdjustQuote(c *gin.Context) {
	quoteID := strings.TrimSpace(c.Param("quote_id"))
	if quoteID == "" {
		c.JSON(http.StatusBadRequest, pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest).ToHTTPError())
		return
	}

	var payload request.AdjustmentRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	adjustment, err := h.usecase.AdjustQuote(c.Request.Context(), quoteID, payload.ToEntity())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromAdjustment(adjustment))
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidQuoteID),
		errors.Is(err, usecase.ErrInvalidDimensions),
		errors.Is(err, usecase.ErrInvalidClientInfo),
		errors.Is(err, usecase.ErrInvalidAdjustment):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrQuoteNotFound):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrRequestNotFound):
		return pkg.NewDomainErrorSimple("REQUEST_NOT_FOUND", "Quote request not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
