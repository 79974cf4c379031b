package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"bathroom_quote_saver/internal/adapter/http/handlers/mocks"
	"bathroom_quote_saver/internal/domain/entities"
	"bathroom_quote_saver/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

const quoteRequestPayload = `{
	"client_info": {"name": "Jane Smith", "email": "jane@example.com"},
	"room_measurements": {"length": 2.0, "width": 1.5, "height": 2.4},
	"components": {"demolition": true, "tiling": true}
}`

func TestQuoteHandler_CreateQuoteRequest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/api/quotes/request", h.CreateQuoteRequest)

		req := httptest.NewRequest(http.MethodPost, "/api/quotes/request", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing required client info", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/api/quotes/request", h.CreateQuoteRequest)

		req := httptest.NewRequest(http.MethodPost, "/api/quotes/request", bytes.NewBufferString(`{"room_measurements": {"length": 2, "width": 1.5, "height": 2.4}}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("usecase returns mapped error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/api/quotes/request", h.CreateQuoteRequest)

		uc.EXPECT().GenerateQuote(gomock.Any(), gomock.Any()).Return(entities.Quote{}, usecase.ErrInvalidDimensions)

		req := httptest.NewRequest(http.MethodPost, "/api/quotes/request", bytes.NewBufferString(quoteRequestPayload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/api/quotes/request", h.CreateQuoteRequest)

		now := time.Now().UTC()
		uc.EXPECT().GenerateQuote(gomock.Any(), gomock.AssignableToTypeOf(entities.RenovationRequest{})).DoAndReturn(
			func(_ context.Context, req entities.RenovationRequest) (entities.Quote, error) {
				if req.ClientInfo.Name != "Jane Smith" || !req.Components.Tiling {
					t.Fatalf("payload not mapped to entity: %+v", req)
				}
				return entities.Quote{
					ID:              "q-1",
					RequestID:       "req-1",
					TotalCost:       1620,
					CostBreakdown:   []entities.CostBreakdown{{Component: "Tiling", EstimatedCost: 1080}},
					ConfidenceLevel: entities.ConfidenceMedium,
					CreatedAt:       now,
					UpdatedAt:       now,
				}, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/api/quotes/request", bytes.NewBufferString(quoteRequestPayload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["id"] != "q-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
		if body["total_cost"] != float64(1620) {
			t.Fatalf("unexpected total: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_GetQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/api/quotes/:quote_id", h.GetQuote)

		uc.EXPECT().GetQuote(gomock.Any(), "missing").Return(entities.Quote{}, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodGet, "/api/quotes/missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/api/quotes/:quote_id", h.GetQuote)

		uc.EXPECT().GetQuote(gomock.Any(), "q-1").Return(entities.Quote{ID: "q-1", TotalCost: 4320}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/quotes/q-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_ListQuotes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/api/quotes", h.ListQuotes)

		uc.EXPECT().ListQuotes(gomock.Any()).Return([]entities.Quote{{ID: "q-1"}, {ID: "q-2"}}, nil)

		req := httptest.NewRequest(http.MethodGet, "/api/quotes", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body []map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if len(body) != 2 {
			t.Fatalf("expected 2 quotes, got %s", w.Body.String())
		}
	})

	t.Run("internal error", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.GET("/api/quotes", h.ListQuotes)

		uc.EXPECT().ListQuotes(gomock.Any()).Return(nil, errors.New("db"))

		req := httptest.NewRequest(http.MethodGet, "/api/quotes", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_AdjustQuote(t *testing.T) {
	gin.SetMode(gin.TestMode)

	adjustPayload := `{"original_cost": 4320, "adjusted_cost": 5000, "adjustment_reason": "labor rates"}`

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/api/quotes/:quote_id/adjust", h.AdjustQuote)

		req := httptest.NewRequest(http.MethodPost, "/api/quotes/q-1/adjust", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("quote not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/api/quotes/:quote_id/adjust", h.AdjustQuote)

		uc.EXPECT().AdjustQuote(gomock.Any(), "missing", gomock.Any()).Return(entities.CostAdjustment{}, usecase.ErrQuoteNotFound)

		req := httptest.NewRequest(http.MethodPost, "/api/quotes/missing/adjust", bytes.NewBufferString(adjustPayload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/api/quotes/:quote_id/adjust", h.AdjustQuote)

		uc.EXPECT().AdjustQuote(gomock.Any(), "q-1", gomock.AssignableToTypeOf(entities.CostAdjustment{})).DoAndReturn(
			func(_ context.Context, _ string, adj entities.CostAdjustment) (entities.CostAdjustment, error) {
				if adj.AdjustedCost != 5000 || adj.AdjustmentReason != "labor rates" {
					t.Fatalf("payload not mapped: %+v", adj)
				}
				adj.ID = "adj-1"
				adj.QuoteID = "q-1"
				return adj, nil
			},
		)

		req := httptest.NewRequest(http.MethodPost, "/api/quotes/q-1/adjust", bytes.NewBufferString(adjustPayload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["message"] != "Quote adjusted successfully" {
			t.Fatalf("unexpected message: %s", w.Body.String())
		}
		if body["new_total"] != float64(5000) {
			t.Fatalf("unexpected new_total: %s", w.Body.String())
		}
	})
}

func TestMapQuoteError(t *testing.T) {
	if got := mapQuoteError(usecase.ErrInvalidQuoteID); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapQuoteError(usecase.ErrInvalidDimensions); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapQuoteError(usecase.ErrInvalidClientInfo); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapQuoteError(usecase.ErrInvalidAdjustment); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapQuoteError(usecase.ErrQuoteNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapQuoteError(usecase.ErrRequestNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapQuoteError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
