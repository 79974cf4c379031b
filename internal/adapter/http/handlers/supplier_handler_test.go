package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestSupplierHandler_GetSuppliers(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewSupplierHandler()
	r := gin.New()
	r.GET("/api/suppliers/:component", h.GetSuppliers)

	t.Run("known component", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/suppliers/tiling", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["component"] != "tiling" {
			t.Fatalf("unexpected component: %s", w.Body.String())
		}
		suppliers, ok := body["suppliers"].([]any)
		if !ok || len(suppliers) == 0 {
			t.Fatalf("expected suppliers list: %s", w.Body.String())
		}
	})

	t.Run("unknown component", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/api/suppliers/landscaping", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
		var body map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &body)
		if body["message"] != "Component not found" {
			t.Fatalf("unexpected body: %s", w.Body.String())
		}
	})
}
