package routes

import (
	"comercial_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathProducts = "/products"
	PathSKUs     = "/skus"
)

func addCatalogRoutes(rg *gin.RouterGroup, catalogHandler *handlers.CatalogHandler) {
	products := rg.Group(PathProducts)
	{
		products.POST("/preview", catalogHandler.PreviewVariants)
		products.POST("", catalogHandler.CreateProduct)
		products.GET("", catalogHandler.ListProducts)
		products.GET("/:id", catalogHandler.GetProduct)
		products.PUT("/:id", catalogHandler.UpdateProduct)
		products.DELETE("/:id", catalogHandler.DeleteProduct)
		products.GET("/:id/aggregates", catalogHandler.GetProductAggregates)
	}

	skus := rg.Group(PathSKUs)
	{
		skus.PUT("/:id", catalogHandler.UpdateSKU)
		skus.DELETE("/:id", catalogHandler.DeleteSKU)
	}
}
