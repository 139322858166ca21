package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"sentiment-bot/internal/api/rest/handler"
	"sentiment-bot/internal/api/rest/middleware"
)

// Dependencies сервисы, которые обслуживает HTTP API
type Dependencies struct {
	Engines interface {
		handler.EngineRegistry
		handler.TextClassifier
	}
	Images  handler.ImageAnalyzer
	Movies  handler.MovieAnalyzer
	Metrics http.Handler // nil: promhttp.Handler()
}

// Setup создаёт и настраивает gin-роутер
func Setup(deps Dependencies, logger *zap.Logger) *gin.Engine {
	router := gin.New()
	router.MaxMultipartMemory = 10 << 20

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS())

	healthHandler := handler.NewHealthHandler(deps.Engines)
	router.GET("/health", healthHandler.Health)
	router.GET("/ready", healthHandler.Ready)

	metrics := deps.Metrics
	if metrics == nil {
		metrics = promhttp.Handler()
	}
	router.GET("/metrics", gin.WrapH(metrics))

	classifyHandler := handler.NewClassifyHandler(deps.Engines, deps.Images, deps.Movies)

	v1 := router.Group("/api/v1")
	{
		v1.GET("/engines", healthHandler.Engines)

		classify := v1.Group("/classify", healthHandler.RequireEnabled())
		{
			classify.POST("/text", classifyHandler.ClassifyText)
			classify.POST("/image", classifyHandler.ClassifyImage)
		}

		v1.POST("/movies/analyze", healthHandler.RequireEnabled(), classifyHandler.AnalyzeMovie)
	}

	return router
}
