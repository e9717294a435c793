package service

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"bookshelf/cache"
	"bookshelf/config"
	"bookshelf/middleware"
	"bookshelf/store"
)

// SetupRoutes wires the middleware chain and the books routes:
// logger -> recovery everywhere, rate limiting on the books group only,
// auth guards on the write and delete routes.
func SetupRoutes(cfg config.Config, bookStore store.BookStore, counter middleware.WindowCounter, cacher cache.RequestCacher, logger zerolog.Logger) *gin.Engine {
	routes := gin.New()
	routes.Use(middleware.RequestLogger(logger))
	routes.Use(middleware.Recovery(logger))

	service := CreateService(bookStore, cacher, logger)

	api := routes.Group("/api")

	api.GET("/activity", service.Activity)

	books := api.Group("/books")
	{
		books.Use(middleware.RateLimit(middleware.RateLimitOptions{
			Counter: counter,
			Max:     cfg.RateLimitMax,
			Window:  cfg.RateLimitWindow,
			Logger:  logger,
		}))
		books.Use(service.CacheUserRequest)

		books.GET("", service.ListBooks)
		books.GET("/search", service.SearchBooks)
		books.GET("/:id", service.GetBookById)
		books.POST("", middleware.RequireAuth(), service.CreateBook)
		books.PUT("/:id", middleware.RequireAuth(), service.UpdateBookById)
		books.DELETE("/reset", middleware.RequireAuth(), middleware.RequireAdmin(cfg.AdminToken), service.ResetBooks)
		books.DELETE("/:id", middleware.RequireAuth(), middleware.RequireAdmin(cfg.AdminToken), service.DeleteBookById)
	}

	return routes
}
