package car_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsabonet/milagre-car-site-sub000/config"
	"github.com/jsabonet/milagre-car-site-sub000/models"
	"github.com/jsabonet/milagre-car-site-sub000/services"
)

// GetCarStats godoc
// @Summary Car statistics
// @Description Counts by status, featured cars, average asking price, total views and cars still missing pictures
// @Tags CMS - Cars
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/cars/stats [get]
func GetCarStats(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	stats, err := services.CarStats(ctx)
	if err != nil {
		log.Printf("[car.stats] %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch car stats"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Car stats fetched successfully", stats))
}
