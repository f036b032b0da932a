package router

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/sirupsen/logrus"

	"github.com/pageza/dapur-ai/backend/internal/api"
	"github.com/pageza/dapur-ai/backend/internal/middleware"
	"github.com/pageza/dapur-ai/backend/internal/web"
)

// SetupRouter configures the application routes
func SetupRouter(
	generateHandler *api.GenerateHandler,
	webHandler *web.Handler,
	allowedOrigins []string,
	log logrus.FieldLogger,
) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.AccessLog(log))
	router.Use(middleware.Metrics())
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS(allowedOrigins))

	// Health and metrics
	router.GET("/health", api.HealthCheck)
	router.GET("/api/health", api.HealthCheck)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Recipe generation
	generateHandler.RegisterRoutes(router)

	// Browser front end
	if webHandler != nil {
		webHandler.RegisterRoutes(router)
	}

	return router
}
