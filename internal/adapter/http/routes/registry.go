package routes

import (
	"comercial_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathClients    = "/clients"
	PathCategories = "/categories"
	PathCompany    = "/company"
	PathDashboard  = "/dashboard"
)

func addRegistryRoutes(rg *gin.RouterGroup, registryHandler *handlers.RegistryHandler) {
	clients := rg.Group(PathClients)
	{
		clients.POST("", registryHandler.CreateClient)
		clients.GET("", registryHandler.ListClients)
		clients.GET("/:id", registryHandler.GetClient)
		clients.PUT("/:id", registryHandler.UpdateClient)
		clients.DELETE("/:id", registryHandler.DeleteClient)
	}

	categories := rg.Group(PathCategories)
	{
		categories.POST("", registryHandler.CreateCategory)
		categories.GET("", registryHandler.ListCategories)
		categories.PUT("/:id", registryHandler.UpdateCategory)
		categories.DELETE("/:id", registryHandler.DeleteCategory)
	}

	company := rg.Group(PathCompany)
	{
		company.GET("", registryHandler.GetCompany)
		company.PUT("", registryHandler.SaveCompany)
	}

	rg.GET(PathDashboard, registryHandler.Dashboard)
}
