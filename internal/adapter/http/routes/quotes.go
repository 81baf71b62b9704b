package routes

import (
	"comercial_xpto/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathQuotes = "/quotes"
)

func addQuoteRoutes(rg *gin.RouterGroup, quoteHandler *handlers.QuoteHandler) {
	quotes := rg.Group(PathQuotes)
	{
		quotes.POST("", quoteHandler.Create)
		quotes.GET("", quoteHandler.List)
		quotes.GET("/:id", quoteHandler.Get)
		quotes.PUT("/:id", quoteHandler.UpdateHeader)
		quotes.DELETE("/:id", quoteHandler.Delete)
		quotes.POST("/:id/items", quoteHandler.AddItem)
		quotes.DELETE("/:id/items/:index", quoteHandler.RemoveItem)
		quotes.PATCH("/:id/status", quoteHandler.UpdateStatus)
		quotes.POST("/:id/convert", quoteHandler.Convert)
	}
}
