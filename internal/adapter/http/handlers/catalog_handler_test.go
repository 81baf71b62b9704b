package handlers

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"comercial_xpto/internal/adapter/http/handlers/mocks"
	"comercial_xpto/internal/adapter/http/middleware"
	"comercial_xpto/internal/domain/entities"
	"comercial_xpto/internal/domain/variants"
	"comercial_xpto/internal/usecase"

	"github.com/gin-gonic/gin"
	"go.uber.org/mock/gomock"
)

// tenantRouter builds a test engine that injects the tenant identity the
// auth middleware would normally extract from the bearer token.
func tenantRouter() *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(middleware.ContextUserID, "user-1")
		c.Next()
	})
	return r
}

func TestCatalogHandler_PreviewVariants(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("invalid json", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.POST("/v1/products/preview", h.PreviewVariants)

		req := httptest.NewRequest(http.MethodPost, "/v1/products/preview", bytes.NewBufferString("{"))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("blank product name rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.POST("/v1/products/preview", h.PreviewVariants)

		uc.EXPECT().PreviewVariants("  ", gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.VariantPreview{}, usecase.ErrInvalidProductName)

		req := httptest.NewRequest(http.MethodPost, "/v1/products/preview", bytes.NewBufferString(`{"name":"  "}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})

	t.Run("success returns drafts and validation", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.POST("/v1/products/preview", h.PreviewVariants)

		uc.EXPECT().PreviewVariants("Camiseta", gomock.Any(), 49.9, 20.0).Return(usecase.VariantPreview{
			Drafts:     []entities.SKU{{Code: "CAM-AZU", Price: 49.9}},
			Validation: variants.ValidationResult{Valid: true},
		}, nil)

		body := `{"name":"Camiseta","axes":[{"name":"Cor","values":["Azul"]}],"base_price":49.9,"base_cost":20}`
		req := httptest.NewRequest(http.MethodPost, "/v1/products/preview", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if _, ok := resp["drafts"]; !ok {
			t.Fatalf("expected drafts in response: %s", w.Body.String())
		}
	})

	t.Run("duplicate codes mapped to conflict", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.POST("/v1/products/preview", h.PreviewVariants)

		uc.EXPECT().PreviewVariants(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(usecase.VariantPreview{}, variants.ErrEmptyAxisName)

		body := `{"name":"Camiseta","axes":[{"name":"x","values":["Azul"]}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/products/preview", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusBadRequest {
			t.Fatalf("expected 400, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_CreateProduct(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("missing tenant", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := gin.New()
		r.POST("/v1/products", h.CreateProduct)

		req := httptest.NewRequest(http.MethodPost, "/v1/products", bytes.NewBufferString(`{"name":"Camiseta"}`))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusUnauthorized {
			t.Fatalf("expected 401, got %d", w.Code)
		}
	})

	t.Run("duplicate sku codes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := tenantRouter()
		r.POST("/v1/products", h.CreateProduct)

		uc.EXPECT().CreateProductWithVariants(gomock.Any(), "user-1", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.Product{}, nil, usecase.ErrDuplicateSKUCodes)

		body := `{"name":"Camiseta","axes":[{"name":"Cor","values":["Azul Claro","Azul Escuro"]}]}`
		req := httptest.NewRequest(http.MethodPost, "/v1/products", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := tenantRouter()
		r.POST("/v1/products", h.CreateProduct)

		uc.EXPECT().CreateProductWithVariants(gomock.Any(), "user-1", gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
			Return(entities.Product{ID: "p-1", Name: "Camiseta"}, []entities.SKU{{ID: "s-1", Code: "CAM-AZU"}}, nil)

		body := `{"name":"Camiseta","axes":[{"name":"Cor","values":["Azul"]}],"base_price":49.9}`
		req := httptest.NewRequest(http.MethodPost, "/v1/products", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusCreated {
			t.Fatalf("expected 201, got %d: %s", w.Code, w.Body.String())
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		product, _ := resp["product"].(map[string]any)
		if product["id"] != "p-1" {
			t.Fatalf("unexpected response body: %s", w.Body.String())
		}
	})
}

func TestCatalogHandler_GetProduct(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := tenantRouter()
		r.GET("/v1/products/:id", h.GetProduct)

		uc.EXPECT().GetProduct(gomock.Any(), "user-1", "p-missing").
			Return(entities.Product{}, nil, nil, usecase.ErrProductNotFound)

		req := httptest.NewRequest(http.MethodGet, "/v1/products/p-missing", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})

	t.Run("success with skus and axes", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := tenantRouter()
		r.GET("/v1/products/:id", h.GetProduct)

		uc.EXPECT().GetProduct(gomock.Any(), "user-1", "p-1").Return(
			entities.Product{ID: "p-1", Name: "Camiseta"},
			[]entities.SKU{{ID: "s-1", Code: "CAM-AZU"}},
			[]entities.VariationAxis{{Name: "Cor", Values: []string{"Azul"}}},
			nil,
		)

		req := httptest.NewRequest(http.MethodGet, "/v1/products/p-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
		var resp map[string]any
		_ = json.Unmarshal(w.Body.Bytes(), &resp)
		if _, ok := resp["axes"]; !ok {
			t.Fatalf("expected axes in response: %s", w.Body.String())
		}
	})
}

func TestCatalogHandler_DeleteProduct(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("cascade delete returns no content", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := tenantRouter()
		r.DELETE("/v1/products/:id", h.DeleteProduct)

		uc.EXPECT().DeleteProductCascade(gomock.Any(), "user-1", "p-1").Return(nil)

		req := httptest.NewRequest(http.MethodDelete, "/v1/products/p-1", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNoContent {
			t.Fatalf("expected 204, got %d", w.Code)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := tenantRouter()
		r.DELETE("/v1/products/:id", h.DeleteProduct)

		uc.EXPECT().DeleteProductCascade(gomock.Any(), "user-1", "p-x").Return(usecase.ErrProductNotFound)

		req := httptest.NewRequest(http.MethodDelete, "/v1/products/p-x", nil)
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusNotFound {
			t.Fatalf("expected 404, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_UpdateSKU(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("sibling collision", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := tenantRouter()
		r.PUT("/v1/skus/:id", h.UpdateSKU)

		uc.EXPECT().UpdateSKU(gomock.Any(), "user-1", gomock.Any()).Return(entities.SKU{}, usecase.ErrDuplicateSKUCodes)

		body := `{"code":"CAM-AZU","price":49.9}`
		req := httptest.NewRequest(http.MethodPut, "/v1/skus/s-1", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusConflict {
			t.Fatalf("expected 409, got %d", w.Code)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		uc := mocks.NewMockICatalogUseCase(ctrl)
		h := NewCatalogHandler(uc)

		r := tenantRouter()
		r.PUT("/v1/skus/:id", h.UpdateSKU)

		uc.EXPECT().UpdateSKU(gomock.Any(), "user-1", gomock.Any()).Return(entities.SKU{ID: "s-1", Code: "CAM-VRM"}, nil)

		body := `{"code":"CAM-VRM","price":52.0}`
		req := httptest.NewRequest(http.MethodPut, "/v1/skus/s-1", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Fatalf("expected 200, got %d", w.Code)
		}
	})
}

func TestCatalogHandler_GetProductAggregates(t *testing.T) {
	gin.SetMode(gin.TestMode)

	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	uc := mocks.NewMockICatalogUseCase(ctrl)
	h := NewCatalogHandler(uc)

	r := tenantRouter()
	r.GET("/v1/products/:id/aggregates", h.GetProductAggregates)

	uc.EXPECT().ProductAggregates(gomock.Any(), "user-1", "p-1").
		Return(entities.ProductAggregates{ProductID: "p-1", StockTotal: 12, HasSKUs: true, PriceMin: 10, PriceMax: 20}, nil)

	req := httptest.NewRequest(http.MethodGet, "/v1/products/p-1/aggregates", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
	var resp map[string]any
	_ = json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["stock_total"] != float64(12) {
		t.Fatalf("unexpected response body: %s", w.Body.String())
	}
}

func TestMapCatalogError(t *testing.T) {
	if got := mapCatalogError(usecase.ErrInvalidProductName); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapCatalogError(variants.ErrEmptyAxisValues); got.HTTPStatus != http.StatusBadRequest {
		t.Fatalf("expected 400")
	}
	if got := mapCatalogError(usecase.ErrDuplicateSKUCodes); got.HTTPStatus != http.StatusConflict {
		t.Fatalf("expected 409")
	}
	if got := mapCatalogError(usecase.ErrProductNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapCatalogError(usecase.ErrSKUNotFound); got.HTTPStatus != http.StatusNotFound {
		t.Fatalf("expected 404")
	}
	if got := mapCatalogError(errors.New("x")); got.HTTPStatus != http.StatusInternalServerError {
		t.Fatalf("expected 500")
	}
}
