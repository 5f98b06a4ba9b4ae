package app

import (
	"image_study_backend/docs"
	"image_study_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json")))

	router.GET("/metrics", monitoring.PrometheusHandler())

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)

		sessions := api.Group("/sessions")
		{
			sessions.POST("", c.session.StartSession)
			sessions.GET("/:id", c.session.GetSession)
			sessions.POST("/:id/next", c.session.NextQuestion)
			sessions.POST("/:id/previous", c.session.PreviousQuestion)
			sessions.POST("/:id/answers", c.session.RecordAnswer)
			sessions.GET("/:id/results", c.session.GetResults)
			sessions.GET("/:id/export", c.session.ExportResults)
		}

		api.GET("/images/:id/:folder/:file", c.image.GetImage)
	}

	// Single-page UI.
	router.StaticFile("/", "web/index.html")
	router.StaticFile("/index.html", "web/index.html")
	router.StaticFile("/app.js", "web/app.js")
}
