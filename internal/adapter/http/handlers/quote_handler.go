package handlers

import (
	"errors"
	"net/http"
	"strconv"

	request "comercial_xpto/internal/adapter/http/dto/request"
	response "comercial_xpto/internal/adapter/http/dto/response"
	"comercial_xpto/internal/usecase"
	"comercial_xpto/pkg"
	"comercial_xpto/pkg/validation"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidQuotePayload = pkg.NewDomainErrorSimple("INVALID_QUOTE_INPUT", "Invalid quote payload", http.StatusBadRequest)
	errInvalidItemIndex    = pkg.NewDomainErrorSimple("INVALID_ITEM_INDEX", "Item index must be a non-negative integer", http.StatusBadRequest)
)

// QuoteHandler handles HTTP requests for the quote lifecycle.

type QuoteHandler struct {
	usecase usecase.IQuoteUseCase
}

func NewQuoteHandler(uc usecase.IQuoteUseCase) *QuoteHandler {
	return &QuoteHandler{usecase: uc}
}

func (h *QuoteHandler) Create(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	var payload request.CreateQuoteRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	in := payload.ToInput()
	if err := validation.ValidateStruct(in); err != nil {
		appErr := pkg.NewDomainError("INVALID_QUOTE_INPUT", "Invalid quote payload", err, http.StatusBadRequest)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	quote, err := h.usecase.Create(c.Request.Context(), tenant, in)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromQuote(quote))
}

func (h *QuoteHandler) List(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	quotes, err := h.usecase.ListByTenant(c.Request.Context(), tenant)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuotes(quotes))
}

func (h *QuoteHandler) Get(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	quote, err := h.usecase.GetByID(c.Request.Context(), tenant, c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// UpdateHeader edits header and value fields; items and their snapshots
// are untouched.
func (h *QuoteHandler) UpdateHeader(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	var payload request.UpdateQuoteHeaderRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.UpdateHeader(c.Request.Context(), tenant, c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) AddItem(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	var payload request.AddQuoteItemRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.AddItem(c.Request.Context(), tenant, c.Param("id"), payload.ToInput())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) RemoveItem(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	index, err := strconv.Atoi(c.Param("index"))
	if err != nil || index < 0 {
		c.JSON(errInvalidItemIndex.HTTPStatus, errInvalidItemIndex.ToHTTPError())
		return
	}

	quote, err := h.usecase.RemoveItem(c.Request.Context(), tenant, c.Param("id"), index)
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) UpdateStatus(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	var payload request.UpdateQuoteStatusRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidQuotePayload.HTTPStatus, errInvalidQuotePayload.ToHTTPError())
		return
	}

	quote, err := h.usecase.UpdateStatus(c.Request.Context(), tenant, c.Param("id"), payload.ResolveStatus())
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

// Convert charges the quote total through the payment gateway and seals
// the quote as CONVERTIDO.
func (h *QuoteHandler) Convert(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	quote, err := h.usecase.Convert(c.Request.Context(), tenant, c.Param("id"))
	if err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromQuote(quote))
}

func (h *QuoteHandler) Delete(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	if err := h.usecase.Delete(c.Request.Context(), tenant, c.Param("id")); err != nil {
		appErr := mapQuoteError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func mapQuoteError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrQuoteNotFound),
		errors.Is(err, usecase.ErrInvalidQuoteID):
		return pkg.NewDomainErrorSimple("QUOTE_NOT_FOUND", "Quote not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSKUNotFound):
		return pkg.NewDomainErrorSimple("SKU_NOT_FOUND", "SKU not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrQuoteConverted):
		return pkg.NewDomainErrorSimple("QUOTE_CONVERTED", "Quote is already converted and sealed", http.StatusConflict)
	case errors.Is(err, usecase.ErrUnknownQuoteStatus):
		return pkg.NewDomainError("UNKNOWN_STATUS", "Unknown quote status", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrGatewayNotConfigured):
		return pkg.NewDomainErrorSimple("GATEWAY_UNAVAILABLE", "Payment gateway not configured", http.StatusServiceUnavailable)
	case errors.Is(err, usecase.ErrItemInvalidQuantity),
		errors.Is(err, usecase.ErrItemQuantityOverStock),
		errors.Is(err, usecase.ErrItemInvalidDiscount),
		errors.Is(err, usecase.ErrItemInactiveSKU),
		errors.Is(err, usecase.ErrItemDuplicateSKU),
		errors.Is(err, usecase.ErrItemIndexOutOfRange),
		errors.Is(err, usecase.ErrNegativeValue),
		errors.Is(err, usecase.ErrQuoteNoClient),
		errors.Is(err, usecase.ErrQuoteNoItems),
		errors.Is(err, usecase.ErrQuoteNegativeTotal),
		errors.Is(err, usecase.ErrInvalidTenant):
		return pkg.NewDomainError("INVALID_QUOTE", "Invalid quote operation", err, http.StatusUnprocessableEntity)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
