package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestCatalogHandler_ListIndustries(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewCatalogHandler()
	r := gin.New()
	r.GET("/v1/industries", h.ListIndustries)

	req := httptest.NewRequest(http.MethodGet, "/v1/industries", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(body) != 3 {
		t.Fatalf("expected 3 industries, got %d", len(body))
	}
	if body[0]["id"] != "asphalt" {
		t.Fatalf("expected asphalt first, got %v", body[0]["id"])
	}
}

func TestCatalogHandler_GetIndustry(t *testing.T) {
	gin.SetMode(gin.TestMode)

	h := NewCatalogHandler()
	r := gin.New()
	r.GET("/v1/industries/:industry_id", h.GetIndustry)

	t.Run("known industry", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/industries/concrete", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body["id"] != "concrete" {
			t.Fatalf("expected concrete, got %v", body["id"])
		}
		templates, ok := body["templates"].([]any)
		if !ok || len(templates) == 0 {
			t.Fatalf("expected templates, got %v", body["templates"])
		}
	})

	t.Run("unknown industry maps to 404", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/v1/industries/submarine", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}
