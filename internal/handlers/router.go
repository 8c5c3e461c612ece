package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "aep-proxy/docs" // registers the OpenAPI document with swag

	"aep-proxy/internal/models"
)

// NewRouter builds the gin engine with middleware, docs, probes and the AEP routes.
func NewRouter(api *API) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery(), RequestID(), RequestLogger(), CORS(), ErrorHandler())

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))
	router.GET("/api-docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api.RegisterRoutes(router)

	router.NoRoute(func(c *gin.Context) {
		RespondWithError(c, http.StatusNotFound, models.ErrorNotFound, "No route for "+c.Request.Method+" "+c.Request.URL.Path)
	})
	return router
}
