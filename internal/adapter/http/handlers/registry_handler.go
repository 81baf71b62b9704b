package handlers

import (
	"errors"
	"net/http"

	request "comercial_xpto/internal/adapter/http/dto/request"
	response "comercial_xpto/internal/adapter/http/dto/response"
	"comercial_xpto/internal/usecase"
	"comercial_xpto/pkg"

	"github.com/gin-gonic/gin"
)

var errInvalidRegistryPayload = pkg.NewDomainErrorSimple("INVALID_REGISTRY_INPUT", "Invalid payload", http.StatusBadRequest)

// RegistryHandler handles HTTP requests for clients, categories, the
// company profile and the dashboard counts.

type RegistryHandler struct {
	usecase usecase.IRegistryUseCase
}

func NewRegistryHandler(uc usecase.IRegistryUseCase) *RegistryHandler {
	return &RegistryHandler{usecase: uc}
}

func (h *RegistryHandler) CreateClient(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRegistryPayload.HTTPStatus, errInvalidRegistryPayload.ToHTTPError())
		return
	}

	client, err := h.usecase.CreateClient(c.Request.Context(), tenant, payload.ToClient(""))
	if err != nil {
		appErr := mapRegistryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromClient(client))
}

func (h *RegistryHandler) GetClient(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	client, err := h.usecase.GetClient(c.Request.Context(), tenant, c.Param("id"))
	if err != nil {
		appErr := mapRegistryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClient(client))
}

func (h *RegistryHandler) ListClients(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	clients, err := h.usecase.ListClients(c.Request.Context(), tenant)
	if err != nil {
		appErr := mapRegistryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClients(clients))
}

func (h *RegistryHandler) UpdateClient(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	var payload request.ClientRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRegistryPayload.HTTPStatus, errInvalidRegistryPayload.ToHTTPError())
		return
	}

	client, err := h.usecase.UpdateClient(c.Request.Context(), tenant, payload.ToClient(c.Param("id")))
	if err != nil {
		appErr := mapRegistryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromClient(client))
}

func (h *RegistryHandler) DeleteClient(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	if err := h.usecase.DeleteClient(c.Request.Context(), tenant, c.Param("id")); err != nil {
		appErr := mapRegistryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

func (h *RegistryHandler) CreateCategory(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	var payload request.CategoryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRegistryPayload.HTTPStatus, errInvalidRegistryPayload.ToHTTPError())
		return
	}

	category, err := h.usecase.CreateCategory(c.Request.Context(), tenant, payload.ToCategory(""))
	if err != nil {
		appErr := mapRegistryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusCreated, response.FromCategory(category))
}

func (h *RegistryHandler) ListCategories(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	categories, err := h.usecase.ListCategories(c.Request.Context(), tenant)
	if err != nil {
		appErr := mapRegistryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCategories(categories))
}

func (h *RegistryHandler) UpdateCategory(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	var payload request.CategoryRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRegistryPayload.HTTPStatus, errInvalidRegistryPayload.ToHTTPError())
		return
	}

	category, err := h.usecase.UpdateCategory(c.Request.Context(), tenant, payload.ToCategory(c.Param("id")))
	if err != nil {
		appErr := mapRegistryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCategory(category))
}

func (h *RegistryHandler) DeleteCategory(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	if err := h.usecase.DeleteCategory(c.Request.Context(), tenant, c.Param("id")); err != nil {
		appErr := mapRegistryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.Status(http.StatusNoContent)
}

// GetCompany returns the tenant's single company profile.
func (h *RegistryHandler) GetCompany(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	company, err := h.usecase.GetCompany(c.Request.Context(), tenant)
	if err != nil {
		appErr := mapRegistryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCompany(company))
}

func (h *RegistryHandler) SaveCompany(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	var payload request.CompanyRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		c.JSON(errInvalidRegistryPayload.HTTPStatus, errInvalidRegistryPayload.ToHTTPError())
		return
	}

	company, err := h.usecase.SaveCompany(c.Request.Context(), tenant, payload.ToCompany())
	if err != nil {
		appErr := mapRegistryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromCompany(company))
}

func (h *RegistryHandler) Dashboard(c *gin.Context) {
	tenant, ok := tenantID(c)
	if !ok {
		return
	}

	counts, err := h.usecase.DashboardCounts(c.Request.Context(), tenant)
	if err != nil {
		appErr := mapRegistryError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusOK, response.FromDashboardCounts(counts))
}

func mapRegistryError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidName),
		errors.Is(err, usecase.ErrInvalidCompanyCNPJ),
		errors.Is(err, usecase.ErrInvalidTenant):
		return pkg.NewDomainError("INVALID_REQUEST", "Invalid request", err, http.StatusBadRequest)
	case errors.Is(err, usecase.ErrClientNotFound):
		return pkg.NewDomainErrorSimple("CLIENT_NOT_FOUND", "Client not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrCategoryNotFound):
		return pkg.NewDomainErrorSimple("CATEGORY_NOT_FOUND", "Category not found", http.StatusNotFound)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
