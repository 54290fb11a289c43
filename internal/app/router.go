package app

import (
	"net/http"

	"jobmatch_backend/docs"
	"jobmatch_backend/internal/util"
	"jobmatch_backend/pkg/monitoring"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

func (a *App) registerRoutes(router *gin.Engine, c *controllers) {
	docs.SwaggerInfo.BasePath = "/api"
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	router.GET("/metrics", monitoring.PrometheusHandler())

	// A write endpoint hit with the wrong method answers 405, not 404.
	router.HandleMethodNotAllowed = true
	router.NoMethod(func(ctx *gin.Context) {
		util.MethodNotAllowed(ctx)
	})
	router.NoRoute(func(ctx *gin.Context) {
		util.Fail(ctx, http.StatusNotFound, "Not found")
	})

	api := router.Group("/api")
	{
		api.GET("/health", c.health.HealthCheck)
		api.GET("/questions", c.question.ListQuestions)
		api.POST("/submit", c.lead.Submit)
		api.POST("/contact", c.contact.Submit)
	}
}
