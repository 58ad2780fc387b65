package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/jsabonet/milagre-car-site-sub000/controllers/cms/category_controller"
	"github.com/jsabonet/milagre-car-site-sub000/middleware"
)

func SetupCategoryRoutes(rg *gin.RouterGroup) {
	category := rg.Group("/categories")
	category.Use(middleware.AdminAuthMiddleware())

	category.GET("", category_controller.GetCategories)
	category.GET("/stats", category_controller.GetCategoryStats)
	category.GET("/:id", category_controller.GetCategoryByID)

	// ════════════════════════════════════════════════════════════
	// Writes (Activity Logging)
	// ════════════════════════════════════════════════════════════
	protected := category.Group("")
	protected.Use(middleware.ActivityLoggingMiddleware())
	{
		protected.POST("", category_controller.CreateCategory)
		protected.PATCH("/:id", category_controller.UpdateCategory)
		protected.PATCH("/:id/status", category_controller.UpdateCategoryStatus)
		protected.DELETE("/:id", category_controller.DeleteCategory)
	}
}
