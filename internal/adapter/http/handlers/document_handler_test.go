package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"bathroom_quote_saver/internal/adapter/http/handlers/mocks"
	"bathroom_quote_saver/internal/domain/entities"
	"bathroom_quote_saver/internal/usecase"
	"bathroom_quote_saver/internal/usecase/interfaces"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func TestDocumentHandler_GenerateProposal(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("empty body is allowed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		h := NewDocumentHandler(uc)

		r := gin.New()
		r.POST("/api/quotes/:quote_id/generate-proposal", h.GenerateProposal)

		uc.EXPECT().GenerateProposal(gomock.Any(), "q-1", gomock.Any(), gomock.Any()).
			Return([]byte("%PDF-1.7"), "proposal-q-1.pdf", nil)

		req := httptest.NewRequest(http.MethodPost, "/api/quotes/q-1/generate-proposal", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if ct := w.Header().Get("Content-Type"); ct != "application/pdf" {
			t.Fatalf("expected application/pdf, got %q", ct)
		}
		if cd := w.Header().Get("Content-Disposition"); cd != `attachment; filename="proposal-q-1.pdf"` {
			t.Fatalf("unexpected content disposition: %q", cd)
		}
		if !strings.HasPrefix(w.Body.String(), "%PDF") {
			t.Fatalf("expected pdf bytes, got %q", w.Body.String())
		}
	})

	t.Run("invalid json body", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		h := NewDocumentHandler(uc)

		r := gin.New()
		r.POST("/api/quotes/:quote_id/generate-proposal", h.GenerateProposal)

		req := httptest.NewRequest(http.MethodPost, "/api/quotes/q-1/generate-proposal", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("overrides mapped from payload", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		h := NewDocumentHandler(uc)

		r := gin.New()
		r.POST("/api/quotes/:quote_id/generate-proposal", h.GenerateProposal)

		uc.EXPECT().GenerateProposal(gomock.Any(), "q-1", gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, _ string, profile entities.UserProfile, overrides entities.CostOverrides) ([]byte, string, error) {
				if profile.CompanyName != "Acme Renovations" {
					t.Fatalf("profile not mapped: %+v", profile)
				}
				if overrides.Costs["Tiling"] != 1500 {
					t.Fatalf("cost overrides not mapped: %+v", overrides)
				}
				if overrides.Total == nil || *overrides.Total != 6000 {
					t.Fatalf("total override not mapped: %+v", overrides)
				}
				return []byte("%PDF"), "proposal-q-1.pdf", nil
			},
		)

		payload := `{
			"user_profile": {"company_name": "Acme Renovations"},
			"adjusted_costs": {"Tiling": 1500},
			"adjusted_total": 6000
		}`
		req := httptest.NewRequest(http.MethodPost, "/api/quotes/q-1/generate-proposal", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("quote not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		h := NewDocumentHandler(uc)

		r := gin.New()
		r.POST("/api/quotes/:quote_id/generate-proposal", h.GenerateProposal)

		uc.EXPECT().GenerateProposal(gomock.Any(), "missing", gomock.Any(), gomock.Any()).
			Return(nil, "", usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodPost, "/api/quotes/missing/generate-proposal", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("render failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		h := NewDocumentHandler(uc)

		r := gin.New()
		r.POST("/api/quotes/:quote_id/generate-proposal", h.GenerateProposal)

		wrapped := fmt.Errorf("%w: font missing", usecase.ErrProposalGeneration)
		uc.EXPECT().GenerateProposal(gomock.Any(), "q-1", gomock.Any(), gomock.Any()).Return(nil, "", wrapped)

		req := httptest.NewRequest(http.MethodPost, "/api/quotes/q-1/generate-proposal", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["code"] != "PROPOSAL_GENERATION_FAILED" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}

func TestDocumentHandler_GenerateQuoteSummary(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("breakdown defaults to enabled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		h := NewDocumentHandler(uc)

		r := gin.New()
		r.POST("/api/quotes/:quote_id/generate-quote-summary", h.GenerateQuoteSummary)

		uc.EXPECT().GenerateQuoteSummary(gomock.Any(), "q-1", gomock.Any(), gomock.Any(), true).
			Return([]byte("%PDF"), "quote-summary-q-1.pdf", nil)

		req := httptest.NewRequest(http.MethodPost, "/api/quotes/q-1/generate-quote-summary", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		if cd := w.Header().Get("Content-Disposition"); cd != `attachment; filename="quote-summary-q-1.pdf"` {
			t.Fatalf("unexpected content disposition: %q", cd)
		}
	})

	t.Run("breakdown can be disabled", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		h := NewDocumentHandler(uc)

		r := gin.New()
		r.POST("/api/quotes/:quote_id/generate-quote-summary", h.GenerateQuoteSummary)

		uc.EXPECT().GenerateQuoteSummary(gomock.Any(), "q-1", gomock.Any(), gomock.Any(), false).
			Return([]byte("%PDF"), "quote-summary-q-1.pdf", nil)

		req := httptest.NewRequest(http.MethodPost, "/api/quotes/q-1/generate-quote-summary", bytes.NewBufferString(`{"include_breakdown": false}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestDocumentHandler_SendQuoteEmail(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing recipient", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		h := NewDocumentHandler(uc)

		r := gin.New()
		r.POST("/api/quotes/:quote_id/send-email", h.SendQuoteEmail)

		req := httptest.NewRequest(http.MethodPost, "/api/quotes/q-1/send-email", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success with default options", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		h := NewDocumentHandler(uc)

		r := gin.New()
		r.POST("/api/quotes/:quote_id/send-email", h.SendQuoteEmail)

		uc.EXPECT().SendQuoteEmail(gomock.Any(), "q-1", gomock.AssignableToTypeOf(usecase.SendEmailInput{})).DoAndReturn(
			func(_ context.Context, _ string, input usecase.SendEmailInput) error {
				if input.Recipient != "jane@example.com" {
					t.Fatalf("recipient not mapped: %+v", input)
				}
				if !input.Options.IncludeBreakdown || !input.Options.IncludePDF {
					t.Fatalf("options should default to true: %+v", input.Options)
				}
				return nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/api/quotes/q-1/send-email", bytes.NewBufferString(`{"recipient_email":"jane@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["message"] != "Quote email sent successfully" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})

	t.Run("email not configured", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		h := NewDocumentHandler(uc)

		r := gin.New()
		r.POST("/api/quotes/:quote_id/send-email", h.SendQuoteEmail)

		uc.EXPECT().SendQuoteEmail(gomock.Any(), "q-1", gomock.Any()).Return(interfaces.ErrEmailNotConfigured)

		req := httptest.NewRequest(http.MethodPost, "/api/quotes/q-1/send-email", bytes.NewBufferString(`{"recipient_email":"jane@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("delivery failed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIDocumentUseCase(ctrl)
		h := NewDocumentHandler(uc)

		r := gin.New()
		r.POST("/api/quotes/:quote_id/send-email", h.SendQuoteEmail)

		wrapped := fmt.Errorf("%w: smtp 550", usecase.ErrEmailDelivery)
		uc.EXPECT().SendQuoteEmail(gomock.Any(), "q-1", gomock.Any()).Return(wrapped)

		req := httptest.NewRequest(http.MethodPost, "/api/quotes/q-1/send-email", bytes.NewBufferString(`{"recipient_email":"jane@example.com"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadGateway {
			t.Fatalf("expected 502, got %d", w.Code)
		}
	})
}

func TestMapDocumentError(t *testing.T) {
	if got := mapDocumentError(usecase.ErrInvalidQuoteID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapDocumentError(usecase.ErrInvalidRecipient); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapDocumentError(usecase.ErrQuoteNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapDocumentError(usecase.ErrRequestNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapDocumentError(interfaces.ErrEmailNotConfigured); got.HTTPStatus != http.StatusServiceUnavailable {
		t.Fatalf("expected 503")
	}
	if got := mapDocumentError(usecase.ErrEmailDelivery); got.HTTPStatus != http.StatusBadGateway {
		t.Fatalf("expected 502")
	}
	if got := mapDocumentError(usecase.ErrProposalGeneration); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
	if got := mapDocumentError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
