package car_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jsabonet/milagre-car-site-sub000/catalog"
	"github.com/jsabonet/milagre-car-site-sub000/models"
)

// GetFeaturedCars godoc
// @Summary Get featured cars
// @Description Featured available cars for the home page, newest first as listed by the dealership
// @Tags store
// @Produce json
// @Param limit query int false "Maximum number of cars" default(6)
// @Success 200 {object} models.ApiResponse{data=[]catalog.Vehicle}
// @Failure 500 {object} models.ApiResponse
// @Router /store/cars/featured [get]
func GetFeaturedCars(c *gin.Context) {
	snap, err := loadInventory(c.Request.Context())
	if err != nil {
		log.Printf("[store.featured] %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load inventory"))
		return
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "6"))
	if err != nil || limit < 1 || limit > maxLimit {
		limit = 6
	}

	featured := catalog.Filter(snap.Vehicles, catalog.FilterState{Featured: catalog.Bool(true)})
	if len(featured) > limit {
		featured = featured[:limit]
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Featured cars fetched successfully", featured))
}
