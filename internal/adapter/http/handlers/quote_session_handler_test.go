package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/paulmach/orb"
	"go.uber.org/mock/gomock"

	"geoquote/internal/adapter/http/handlers/mocks"
	"geoquote/internal/domain/entities"
	"geoquote/internal/geometry"
	"geoquote/internal/measure"
	"geoquote/internal/usecase"
)

func sessionFixture() entities.QuoteSession {
	return entities.QuoteSession{
		ID:              "s-1",
		UnitSystem:      entities.UnitSystemImperial,
		Mode:            entities.DrawModePan,
		State:           entities.DrawStateIdle,
		ActiveServiceID: "sealcoating",
		Geometries:      []entities.Geometry{},
		CurrentBid:      entities.EmptyBid(0),
	}
}

func newRouter(h *QuoteSessionHandler) *gin.Engine {
	r := gin.New()
	r.POST("/v1/sessions", h.CreateSession)
	r.GET("/v1/sessions/:session_id", h.GetSession)
	r.DELETE("/v1/sessions/:session_id", h.DeleteSession)
	r.PATCH("/v1/sessions/:session_id/smoothing", h.SetSmoothing)
	r.PATCH("/v1/sessions/:session_id/margin", h.SetMargin)
	r.PUT("/v1/sessions/:session_id/pricing-config", h.SetPricingConfig)
	r.POST("/v1/sessions/:session_id/stroke/move", h.PointerMove)
	r.POST("/v1/sessions/:session_id/circles", h.AddCircle)
	r.POST("/v1/sessions/:session_id/vertices", h.AddVertex)
	r.GET("/v1/sessions/:session_id/export", h.Export)
	return r
}

func TestQuoteSessionHandler_CreateSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteSessionUseCase(ctrl)
		h := NewQuoteSessionHandler(uc)
		r := newRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("created with defaulted unit system", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteSessionUseCase(ctrl)
		h := NewQuoteSessionHandler(uc)
		r := newRouter(h)

		uc.EXPECT().
			CreateSession(gomock.Any(), "asphalt", entities.UnitSystemImperial).
			Return(sessionFixture(), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions", bytes.NewBufferString(`{"industry_id":"asphalt"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body["id"] != "s-1" || body["unit_system"] != "imperial" {
			t.Fatalf("unexpected body: %v", body)
		}
	})

	t.Run("invalid unit system maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteSessionUseCase(ctrl)
		h := NewQuoteSessionHandler(uc)
		r := newRouter(h)

		uc.EXPECT().
			CreateSession(gomock.Any(), "", entities.UnitSystem("nautical")).
			Return(entities.QuoteSession{}, usecase.ErrInvalidUnitSystem)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions", bytes.NewBufferString(`{"unit_system":"nautical"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestQuoteSessionHandler_GetSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found maps to 404", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteSessionUseCase(ctrl)
		h := NewQuoteSessionHandler(uc)
		r := newRouter(h)

		uc.EXPECT().GetSession(gomock.Any(), "ghost").Return(entities.QuoteSession{}, usecase.ErrSessionNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/sessions/ghost", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("unexpected errors map to 500", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteSessionUseCase(ctrl)
		h := NewQuoteSessionHandler(uc)
		r := newRouter(h)

		uc.EXPECT().GetSession(gomock.Any(), "s-1").Return(entities.QuoteSession{}, errors.New("store down"))

		req := httptest.NewRequest(http.MethodGet, "/v1/sessions/s-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Fatalf("expected 500, got %d", w.Code)
		}
	})
}

func TestQuoteSessionHandler_DeleteSession(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuoteSessionUseCase(ctrl)
	h := NewQuoteSessionHandler(uc)
	r := newRouter(h)

	uc.EXPECT().DeleteSession(gomock.Any(), "s-1").Return(nil)

	req := httptest.NewRequest(http.MethodDelete, "/v1/sessions/s-1", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", w.Code)
	}
}

func TestQuoteSessionHandler_SetSmoothing(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("explicit zero level binds", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteSessionUseCase(ctrl)
		h := NewQuoteSessionHandler(uc)
		r := newRouter(h)

		uc.EXPECT().SetSmoothing(gomock.Any(), "s-1", 0).Return(sessionFixture(), nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/sessions/s-1/smoothing", bytes.NewBufferString(`{"level":0}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("missing level is rejected before the usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteSessionUseCase(ctrl)
		h := NewQuoteSessionHandler(uc)
		r := newRouter(h)

		req := httptest.NewRequest(http.MethodPatch, "/v1/sessions/s-1/smoothing", bytes.NewBufferString(`{}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("out of range maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteSessionUseCase(ctrl)
		h := NewQuoteSessionHandler(uc)
		r := newRouter(h)

		uc.EXPECT().SetSmoothing(gomock.Any(), "s-1", 99).Return(entities.QuoteSession{}, usecase.ErrInvalidSmoothing)

		req := httptest.NewRequest(http.MethodPatch, "/v1/sessions/s-1/smoothing", bytes.NewBufferString(`{"level":99}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestQuoteSessionHandler_SetPricingConfig(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid config maps to 422", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteSessionUseCase(ctrl)
		h := NewQuoteSessionHandler(uc)
		r := newRouter(h)

		uc.EXPECT().
			SetPricingConfig(gomock.Any(), "s-1", gomock.AssignableToTypeOf(entities.PricingConfig{})).
			Return(entities.QuoteSession{}, usecase.ErrInvalidPricingConfig)

		payload := `{"labor_burden_rate":1.35,"service_types":[{"id":"sealcoating","production_rate":0}]}`
		req := httptest.NewRequest(http.MethodPut, "/v1/sessions/s-1/pricing-config", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("valid config passes through to the usecase", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteSessionUseCase(ctrl)
		h := NewQuoteSessionHandler(uc)
		r := newRouter(h)

		uc.EXPECT().
			SetPricingConfig(gomock.Any(), "s-1", gomock.AssignableToTypeOf(entities.PricingConfig{})).
			DoAndReturn(func(_ any, _ string, cfg entities.PricingConfig) (entities.QuoteSession, error) {
				if cfg.LaborBurdenRate != 1.35 || len(cfg.ServiceTypes) != 1 || cfg.ServiceTypes[0].ID != "sealcoating" {
					t.Fatalf("unexpected config: %+v", cfg)
				}
				return sessionFixture(), nil
			})

		payload := `{"labor_burden_rate":1.35,"service_types":[{"id":"sealcoating","default_hourly_rate":50,"default_crew_size":3,"production_rate":1000}]}`
		req := httptest.NewRequest(http.MethodPut, "/v1/sessions/s-1/pricing-config", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuoteSessionHandler_PointerMove(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("reports whether the live channel recomputed", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteSessionUseCase(ctrl)
		h := NewQuoteSessionHandler(uc)
		r := newRouter(h)

		uc.EXPECT().
			PointerMove(gomock.Any(), "s-1", geometry.PointerSample{Lng: -97.3, Lat: 32.75, X: 10, Y: 5}).
			Return(sessionFixture(), false, nil)

		payload := `{"lng":-97.3,"lat":32.75,"x":10,"y":5}`
		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/s-1/stroke/move", bytes.NewBufferString(payload))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var body map[string]any
		if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode: %v", err)
		}
		if body["updated"] != false {
			t.Fatalf("expected updated=false, got %v", body["updated"])
		}
		if _, ok := body["session"]; !ok {
			t.Fatal("expected session in body")
		}
	})
}

func TestQuoteSessionHandler_AddCircle(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing radius is rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteSessionUseCase(ctrl)
		h := NewQuoteSessionHandler(uc)
		r := newRouter(h)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/s-1/circles", bytes.NewBufferString(`{"lng":-97.3,"lat":32.75}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("negative radius maps to 400", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteSessionUseCase(ctrl)
		h := NewQuoteSessionHandler(uc)
		r := newRouter(h)

		uc.EXPECT().
			AddCircle(gomock.Any(), "s-1", orb.Point{-97.3, 32.75}, -10.0).
			Return(entities.QuoteSession{}, usecase.ErrInvalidRadius)

		req := httptest.NewRequest(http.MethodPost, "/v1/sessions/s-1/circles", bytes.NewBufferString(`{"lng":-97.3,"lat":32.75,"radius":-10}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestQuoteSessionHandler_AddVertex(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuoteSessionUseCase(ctrl)
	h := NewQuoteSessionHandler(uc)
	r := newRouter(h)

	uc.EXPECT().
		AddVertex(gomock.Any(), "s-1", orb.Point{-97.3, 32.75}).
		Return(sessionFixture(), nil)

	req := httptest.NewRequest(http.MethodPost, "/v1/sessions/s-1/vertices", bytes.NewBufferString(`{"lng":-97.3,"lat":32.75}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestQuoteSessionHandler_Export(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockIQuoteSessionUseCase(ctrl)
	h := NewQuoteSessionHandler(uc)
	r := newRouter(h)

	fc := measure.FeatureCollection([]entities.Geometry{{
		ID:   "g-1",
		Kind: entities.GeometryKindPolygon,
		Ring: orb.Ring{{0, 0}, {0.001, 0}, {0.001, 0.001}, {0, 0.001}, {0, 0}},
	}})
	uc.EXPECT().Export(gomock.Any(), "s-1").Return(fc, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/sessions/s-1/export", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var body map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["type"] != "FeatureCollection" {
		t.Fatalf("expected a FeatureCollection, got %v", body["type"])
	}
}
