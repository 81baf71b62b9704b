package routes

import (
	_ "comercial_xpto/docs" // This will be auto-generated
	"comercial_xpto/internal/adapter/http/handlers"
	"comercial_xpto/internal/adapter/http/middleware"
	repository2 "comercial_xpto/internal/adapter/persistence/repository"
	"comercial_xpto/internal/infrastructure/auth"
	"comercial_xpto/internal/infrastructure/cache"
	"comercial_xpto/internal/infrastructure/database"
	"comercial_xpto/internal/infrastructure/payments"
	"comercial_xpto/internal/usecase"
	"comercial_xpto/internal/usecase/interfaces"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.New()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	getRoutes()

	err := router.Run(":" + strconv.Itoa(PORT))
	if err != nil {
		log.Fatalf("Failed to startup the application: %v", err.Error())
	}
}

func getRoutes() {
	ddb := database.ConnectDynamoDB()

	productRepo := repository2.NewProductDynamoRepository(ddb)
	skuRepo := repository2.NewSKUDynamoRepository(ddb)
	quoteRepo := repository2.NewQuoteDynamoRepository(ddb)
	clientRepo := repository2.NewClientDynamoRepository(ddb)
	categoryRepo := repository2.NewCategoryDynamoRepository(ddb)
	companyRepo := repository2.NewCompanyDynamoRepository(ddb)

	var aggregatesCache interfaces.ICache
	if addr := os.Getenv("REDIS_ADDR"); addr != "" {
		aggregatesCache = cache.NewRedisClient(addr)
	} else {
		log.Printf("REDIS_ADDR not set, product aggregates recompute on every call")
	}

	var paymentGateway interfaces.IPaymentGateway
	mpGateway, err := payments.NewMercadoPagoGateway(os.Getenv("MERCADOPAGO_ACCESS_TOKEN"))
	if err != nil {
		log.Printf("Mercado Pago gateway not configured: %v", err)
	} else {
		paymentGateway = mpGateway
	}

	catalogUseCase := usecase.NewCatalogUseCase(productRepo, skuRepo, aggregatesCache)
	quoteUseCase := usecase.NewQuoteUseCase(quoteRepo, skuRepo, productRepo, clientRepo, paymentGateway)
	registryUseCase := usecase.NewRegistryUseCase(clientRepo, categoryRepo, companyRepo, productRepo, skuRepo, quoteRepo)

	catalogHandler := handlers.NewCatalogHandler(catalogUseCase)
	quoteHandler := handlers.NewQuoteHandler(quoteUseCase)
	registryHandler := handlers.NewRegistryHandler(registryUseCase)

	tokens := auth.NewTokenService(os.Getenv("JWT_SECRET_KEY"), 24*time.Hour)

	// Rotas publicas
	v1 := router.Group("/v1")
	addPingRoutes(v1)

	// Todas as rotas de negócio exigem o token do tenant.
	v1.Use(middleware.RequireAuth(tokens))
	addCatalogRoutes(v1, catalogHandler)
	addQuoteRoutes(v1, quoteHandler)
	addRegistryRoutes(v1, registryHandler)
}

func setMiddlewares() {
	router.Use(middleware.RequestLogger())
	router.Use(gin.Recovery())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("Recovered from panic: %v", recovered)
		c.AbortWithStatus(500)
	}))
}
