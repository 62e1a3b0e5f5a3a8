package routes

import (
	"log/slog"
	"os"
	"strconv"

	_ "geoquote/docs" // This will be auto-generated
	"geoquote/internal/adapter/http/handlers"
	repository2 "geoquote/internal/adapter/persistence/repository"
	"geoquote/internal/usecase"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

var router = gin.Default()

const PORT = 8080

// Run will start the server
func Run() {
	setMiddlewares()

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Prometheus scrape endpoint
	router.GET("/metrics", metricsHandler())

	getRoutes()

	err := router.Run(":" + strconv.Itoa(port()))
	if err != nil {
		slog.Error("failed to startup the application", "error", err)
		os.Exit(1)
	}
}

func getRoutes() {
	sessionRepo := repository2.NewMemorySessionRepository()
	sessionUseCase := usecase.NewQuoteSessionUseCase(sessionRepo)

	sessionHandler := handlers.NewQuoteSessionHandler(sessionUseCase)
	catalogHandler := handlers.NewCatalogHandler()

	v1 := router.Group("/v1")
	addPingRoutes(v1)
	addQuoteRoutes(v1, sessionHandler, catalogHandler)
}

func setMiddlewares() {
	router.Use(gin.Logger())
	router.Use(metricsMiddleware())
	router.Use(gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		slog.Error("recovered from panic", "panic", recovered)
		c.AbortWithStatus(500)
	}))
}

func port() int {
	if v := os.Getenv("PORT"); v != "" {
		if p, err := strconv.Atoi(v); err == nil {
			return p
		}
	}
	return PORT
}
