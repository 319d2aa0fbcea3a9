package main

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"bookstore-catalog/internal/shared/middleware"
	"bookstore-catalog/pkg/container"
)

// SetupRouter wires the HTTP routes to the handlers in the container.
func SetupRouter(c *container.Container) *gin.Engine {
	router := gin.New()

	router.Use(middleware.RequestID())
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	v1 := router.Group("/v1")
	{
		v1.GET("/health", healthHandler(c))

		authors := v1.Group("/authors")
		{
			authors.POST("", c.AuthorHandler.Create)
			authors.GET("", c.AuthorHandler.GetAll)
			authors.GET("/:id", c.AuthorHandler.GetByID)
			authors.PUT("/:id", c.AuthorHandler.FullUpdate)
			authors.PATCH("/:id", c.AuthorHandler.PartialUpdate)
			authors.DELETE("/:id", c.AuthorHandler.Delete)
		}

		books := v1.Group("/books")
		{
			books.GET("", c.BookHandler.GetBooks)
			books.GET("/:isbn", c.BookHandler.GetBook)
			books.PUT("/:isbn", c.BookHandler.CreateUpdate)
			books.PATCH("/:isbn", c.BookHandler.PartialUpdate)
			books.DELETE("/:isbn", c.BookHandler.Delete)
		}
	}

	return router
}

func healthHandler(c *container.Container) gin.HandlerFunc {
	return func(ctx *gin.Context) {
		dbStatus := "up"
		if err := c.DB.HealthCheck(ctx.Request.Context()); err != nil {
			dbStatus = "down"
		}

		// Cache being down degrades performance, not availability.
		cacheStatus := "up"
		if err := c.Cache.Ping(ctx.Request.Context()); err != nil {
			cacheStatus = "down"
		}

		status := http.StatusOK
		if dbStatus == "down" {
			status = http.StatusServiceUnavailable
		}

		ctx.JSON(status, gin.H{
			"status":   dbStatus,
			"database": dbStatus,
			"cache":    cacheStatus,
			"version":  c.Config.App.Version,
		})
	}
}
