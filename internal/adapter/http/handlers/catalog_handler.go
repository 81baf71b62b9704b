package handlers

import (
	"errors"
	"net/http"

	request "comercial_xpto/internal/adapter/http/dto/request"
	response "comercial_xpto/internal/adapter/http/dto/response"
	"comercial_xpto/internal/domain/variants"
	"comercial_xpto/internal/usecase"
	"comercial_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidCatalogPayload = pkg.NewDomainErrorSimple("INVALID_CATALOG_INPUT", "Invalid catalog payload", http.StatusBadRequest)

// CatalogHandler handles HTTP requests for products and their variant SKUs.

type CatalogHandler struct {
	usecase usecase.ICatalogUseCase
}

func NewCatalogHandler(uc usecase.ICatalogUseCase) *CatalogHandler {
	return &CatalogHandler{usecase: uc}
}

// PreviewVariants expands axes into SKU drafts without persisting anything,
// returning the drafts plus the duplicate-code validation.
func (h *CatalogHandler) PreviewVariants(c *gin.Context) {
	var payload request.PreviewVariantsRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	preview, err := h.usecase.PreviewVariants(payload.Name, payload.ResolveAxes(), payload.BasePrice, payload.BaseCost)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromVariantPreview(preview))
}

// CreateProduct creates the parent product and its generated SKU batch.
func (h *CatalogHandler) CreateProduct(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	var payload request.CreateProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	product, skus, err := h.usecase.CreateProductWithVariants(
		c.Request.Context(), tenant, payload.ToProduct(), payload.ResolveAxes(), payload.BasePrice, payload.BaseCost,
	)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCreatedProduct(product, skus))
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	products, err := h.usecase.ListProducts(c.Request.Context(), tenant)
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProducts(products))
}

// GetProduct returns the product with its SKUs and reconstructed axes.
func (h *CatalogHandler) GetProduct(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	product, skus, axes, err := h.usecase.GetProduct(c.Request.Context(), tenant, c.Param("id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProductDetail(product, skus, axes))
}

func (h *CatalogHandler) UpdateProduct(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	var payload request.UpdateProductRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	product, err := h.usecase.UpdateProduct(c.Request.Context(), tenant, payload.ToProduct(c.Param("id")))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProduct(product))
}

// DeleteProduct removes the product and every SKU under it.
func (h *CatalogHandler) DeleteProduct(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	if err := h.usecase.DeleteProductCascade(c.Request.Context(), tenant, c.Param("id")); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *CatalogHandler) GetProductAggregates(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	agg, err := h.usecase.ProductAggregates(c.Request.Context(), tenant, c.Param("id"))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromProductAggregates(agg))
}

func (h *CatalogHandler) UpdateSKU(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	var payload request.UpdateSKURequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidCatalogPayload.HTTPStatus, errInvalidCatalogPayload.ToHTTPError())
		return
	}

	sku, err := h.usecase.UpdateSKU(c.Request.Context(), tenant, payload.ToSKU(c.Param("id")))
	if err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromSKU(sku))
}

func (h *CatalogHandler) DeleteSKU(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	if err := h.usecase.DeleteSKU(c.Request.Context(), tenant, c.Param("id")); err != nil {
		appErr := mapCatalogError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapCatalogError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidProductName),
		errors.Is(err, usecase.ErrInvalidSKUCode),
		errors.Is(err, usecase.ErrInvalidTenant),
		errors.Is(err, variants.ErrEmptyAxisName),
		errors.Is(err, variants.ErrEmptyAxisValues),
		errors.Is(err, variants.ErrBlankAxisValue):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrDuplicateSKUCodes):
		return pkg.NewDomainErrorSimple("DUPLICATE_SKU_CODES", "Generated SKU codes collide; shorten or rename the axis values", http.StatusConflict)
	case errors.Is(err, usecase.ErrProductNotFound):
		return pkg.NewDomainErrorSimple("PRODUCT_NOT_FOUND", "Product not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSKUNotFound):
		return pkg.NewDomainErrorSimple("SKU_NOT_FOUND", "SKU not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
