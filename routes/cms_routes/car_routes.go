package cms_routes

import (
	"github.com/gin-gonic/gin"

	"github.com/jsabonet/milagre-car-site-sub000/controllers/cms/car_controller"
	"github.com/jsabonet/milagre-car-site-sub000/middleware"
)

func SetupCarRoutes(rg *gin.RouterGroup) {
	car := rg.Group("/cars")
	car.Use(middleware.AdminAuthMiddleware())

	car.GET("", car_controller.GetCars)
	car.GET("/stats", car_controller.GetCarStats)
	car.GET("/:id", car_controller.GetCarByID)

	// ════════════════════════════════════════════════════════════
	// Writes (Activity Logging)
	// ════════════════════════════════════════════════════════════
	protected := car.Group("")
	protected.Use(middleware.ActivityLoggingMiddleware())
	{
		protected.POST("", car_controller.CreateCar)
		protected.PATCH("/:id", car_controller.UpdateCar)
		protected.DELETE("/:id", car_controller.DeleteCar)

		// Pictures
		protected.POST("/:id/images", car_controller.UploadCarImage)
		protected.PATCH("/:id/images/:index/primary", car_controller.SetPrimaryImage)
		protected.DELETE("/:id/images/:index", car_controller.DeleteCarImage)
	}
}
