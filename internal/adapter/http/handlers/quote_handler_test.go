package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"comercial_xpto/internal/adapter/http/handlers/mocks"
	"comercial_xpto/internal/domain/entities"
	"comercial_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

func sampleQuote() entities.Quote {
	return entities.Quote{
		ID:       "q-1",
		UserID:   "user-1",
		ClientID: "c-1",
		Status:   entities.QuoteStatusRascunho,
		Items: []entities.QuoteItem{{
			SKUCode:   "CAM-AZU-M",
			ProductID: "p-1",
			Quantity:  2,
			UnitPrice: 45.10,
			Total:     90.20,
		}},
		Values: entities.QuoteValues{Subtotal: 90.20, Total: 90.20},
	}
}

func TestQuoteHandler_Create(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := tenantRouter()
		r.POST("/v1/quotes", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing items rejected by binding", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := tenantRouter()
		r.POST("/v1/quotes", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"client_id":"c-1"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("missing tenant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := gin.New()
		r.POST("/v1/quotes", h.Create)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"client_id":"c-1","items":[{"sku_id":"s-1","quantity":1}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("client not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := tenantRouter()
		r.POST("/v1/quotes", h.Create)

		uc.EXPECT().Create(gomock.Any(), "user-1", gomock.Any()).Return(entities.Quote{}, usecase.ErrQuoteClientNotFound)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"client_id":"c-x","items":[{"sku_id":"s-1","quantity":1}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("over-stock item unprocessable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := tenantRouter()
		r.POST("/v1/quotes", h.Create)

		uc.EXPECT().Create(gomock.Any(), "user-1", gomock.Any()).Return(entities.Quote{}, usecase.ErrItemQuantityOverStock)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"client_id":"c-1","items":[{"sku_id":"s-1","quantity":999}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := tenantRouter()
		r.POST("/v1/quotes", h.Create)

		uc.EXPECT().Create(gomock.Any(), "user-1", gomock.Any()).Return(sampleQuote(), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes", bytes.NewBufferString(`{"client_id":"c-1","items":[{"sku_id":"s-1","quantity":2}]}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if resp["id"] != "q-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestQuoteHandler_Items(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("add item resolves sku", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := tenantRouter()
		r.POST("/v1/quotes/:id/items", h.AddItem)

		uc.EXPECT().AddItem(gomock.Any(), "user-1", "q-1", usecase.QuoteItemInput{SKUID: "s-2", Quantity: 1}).Return(sampleQuote(), nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/items", bytes.NewBufferString(`{"sku_id":"s-2","quantity":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})

	t.Run("add item to converted quote conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := tenantRouter()
		r.POST("/v1/quotes/:id/items", h.AddItem)

		uc.EXPECT().AddItem(gomock.Any(), "user-1", "q-1", gomock.Any()).Return(entities.Quote{}, usecase.ErrQuoteConverted)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/items", bytes.NewBufferString(`{"sku_id":"s-2","quantity":1}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("remove item bad index", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := tenantRouter()
		r.DELETE("/v1/quotes/:id/items/:index", h.RemoveItem)

		req := httptest.NewRequest(http.MethodDelete, "/v1/quotes/q-1/items/abc", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("remove item out of range", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := tenantRouter()
		r.DELETE("/v1/quotes/:id/items/:index", h.RemoveItem)

		uc.EXPECT().RemoveItem(gomock.Any(), "user-1", "q-1", 9).Return(entities.Quote{}, usecase.ErrItemIndexOutOfRange)

		req := httptest.NewRequest(http.MethodDelete, "/v1/quotes/q-1/items/9", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnprocessableEntity {
			t.Fatalf("expected 422, got %d", w.Code)
		}
	})

	t.Run("remove item success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := tenantRouter()
		r.DELETE("/v1/quotes/:id/items/:index", h.RemoveItem)

		uc.EXPECT().RemoveItem(gomock.Any(), "user-1", "q-1", 0).Return(sampleQuote(), nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/quotes/q-1/items/0", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_Status(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("unknown status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := tenantRouter()
		r.PATCH("/v1/quotes/:id/status", h.UpdateStatus)

		uc.EXPECT().UpdateStatus(gomock.Any(), "user-1", "q-1", entities.QuoteStatus("PAGO")).Return(entities.Quote{}, usecase.ErrUnknownQuoteStatus)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1/status", bytes.NewBufferString(`{"status":"PAGO"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("approve success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := tenantRouter()
		r.PATCH("/v1/quotes/:id/status", h.UpdateStatus)

		approved := sampleQuote()
		approved.Status = entities.QuoteStatusAprovado
		uc.EXPECT().UpdateStatus(gomock.Any(), "user-1", "q-1", entities.QuoteStatusAprovado).Return(approved, nil)

		req := httptest.NewRequest(http.MethodPatch, "/v1/quotes/q-1/status", bytes.NewBufferString(`{"status":"APROVADO"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestQuoteHandler_Convert(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("gateway unavailable", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := tenantRouter()
		r.POST("/v1/quotes/:id/convert", h.Convert)

		uc.EXPECT().Convert(gomock.Any(), "user-1", "q-1").Return(entities.Quote{}, usecase.ErrGatewayNotConfigured)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/convert", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusServiceUnavailable {
			t.Fatalf("expected 503, got %d", w.Code)
		}
	})

	t.Run("already converted", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := tenantRouter()
		r.POST("/v1/quotes/:id/convert", h.Convert)

		uc.EXPECT().Convert(gomock.Any(), "user-1", "q-1").Return(entities.Quote{}, usecase.ErrQuoteConverted)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/convert", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success records payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockIQuoteUseCase(ctrl)
		h := NewQuoteHandler(uc)

		r := tenantRouter()
		r.POST("/v1/quotes/:id/convert", h.Convert)

		converted := sampleQuote()
		converted.Status = entities.QuoteStatusConvertido
		converted.Payment = &entities.QuotePayment{ProviderPaymentID: "mp-123", ProviderStatus: "approved"}
		uc.EXPECT().Convert(gomock.Any(), "user-1", "q-1").Return(converted, nil)

		req := httptest.NewRequest(http.MethodPost, "/v1/quotes/q-1/convert", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		payment, _ := resp["payment"].(map[string]any)
		if payment["provider_payment_id"] != "mp-123" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestMapQuoteError(t *testing.T) {
	if got := mapQuoteError(usecase.ErrQuoteNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapQuoteError(usecase.ErrQuoteClientNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapQuoteError(usecase.ErrSKUNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapQuoteError(usecase.ErrQuoteConverted); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapQuoteError(usecase.ErrUnknownQuoteStatus); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapQuoteError(usecase.ErrGatewayNotConfigured); got.HTTPStatus != http.StatusServiceUnavailable {
		t.Fatalf("expected 503")
	}
	if got := mapQuoteError(usecase.ErrQuoteNoItems); got.HTTPStatus != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422")
	}
	if got := mapQuoteError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
