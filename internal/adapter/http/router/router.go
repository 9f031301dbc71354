package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/MuhammadAwaisRafique/MLOPs-Assignment-1/internal/adapter/http/handler"
	"github.com/MuhammadAwaisRafique/MLOPs-Assignment-1/internal/adapter/http/middleware"
	"github.com/MuhammadAwaisRafique/MLOPs-Assignment-1/internal/usecase"
)

// Setup creates and configures the Gin router
func Setup(predictUC usecase.PredictUsecase, registry handler.RegistryStatus, logger *zap.Logger) *gin.Engine {
	router := gin.New()

	// A GET (or anything but POST) on /predict must answer 405, not 404.
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	// Middleware
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(logger))
	router.Use(middleware.Recovery(logger))
	router.Use(middleware.CORS())
	router.Use(middleware.Metrics())

	// Initialize handlers
	homeHandler := handler.NewHomeHandler()
	predictHandler := handler.NewPredictHandler(predictUC)
	healthHandler := handler.NewHealthHandler(registry)

	// Routes
	router.GET("/", homeHandler.Home)
	router.POST("/predict", predictHandler.Predict)
	router.GET("/health", healthHandler.Health)

	// Prometheus metrics
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	return router
}
