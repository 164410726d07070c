// internal/api/routes.go
package api

import (
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/plexnotify/logtail-api-server/docs"
)

// SetupRoutes defines all the API endpoints.
//
// Access control for the viewing endpoints is handled by an external layer
// (reverse proxy) in front of this server, so no authentication middleware
// is applied here.
func SetupRoutes(router *gin.Engine) {
	// Health check endpoint - intentionally outside /api/v1
	router.GET("/health", HealthCheckHandler)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	apiV1 := router.Group("/api/v1")
	{
		// System metrics
		apiV1.GET("/health/metrics", SystemMetricsHandler)

		// Log tail routes
		logs := apiV1.Group("/logs")
		{
			// List available streams (backs the viewer's file selector)
			logs.GET("", ListLogFilesHandler) // GET /api/v1/logs

			// Incremental tail of one stream
			logs.GET("/:fileID/tail", GetLogTailHandler) // GET /api/v1/logs/{fileID}/tail
		}

		// Version info routes
		version := apiV1.Group("/version")
		{
			version.GET("", GetVersionHandler)         // GET /api/v1/version
			version.GET("/check", CheckVersionHandler) // GET /api/v1/version/check
		}
	}
}
