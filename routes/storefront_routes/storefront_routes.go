package storefront_routes

import (
	"github.com/gin-gonic/gin"

	store_car "github.com/jsabonet/milagre-car-site-sub000/controllers/storefront/car_controller"
	store_category "github.com/jsabonet/milagre-car-site-sub000/controllers/storefront/category_controller"
	store_financing "github.com/jsabonet/milagre-car-site-sub000/controllers/storefront/financing_controller"
	store_message "github.com/jsabonet/milagre-car-site-sub000/controllers/storefront/message_controller"
	"github.com/jsabonet/milagre-car-site-sub000/middleware"
)

func SetupStorefrontRoutes(router *gin.RouterGroup) {
	// Storefront routes (public, no auth required)
	store := router.Group("/store")

	cars := store.Group("/cars")
	{
		cars.GET("", store_car.GetStorefrontCars)
		cars.GET("/featured", store_car.GetFeaturedCars)
		cars.GET("/compare", store_car.CompareCars)
		cars.GET("/:id", store_car.GetStorefrontCarByID)
	}

	store.GET("/inventory", store_car.GetInventory)
	store.GET("/filters/metadata", store_car.GetFilterMetadata)
	store.GET("/categories", store_category.GetCategories)

	store.POST("/messages", middleware.ContactFormLimiter(), store_message.CreateContactMessage)

	financing := store.Group("/financing")
	{
		financing.POST("/simulate", store_financing.SimulateFinancing)
		financing.POST("/quote", store_financing.DownloadFinancingQuote)
	}
}
