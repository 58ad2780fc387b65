package car_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsabonet/milagre-car-site-sub000/catalog"
	"github.com/jsabonet/milagre-car-site-sub000/metrics"
	"github.com/jsabonet/milagre-car-site-sub000/models"
)

// GetStorefrontCars godoc
// @Summary Browse available cars
// @Description Filter, sort and paginate the available inventory. A page past the end returns an empty list.
// @Tags store
// @Produce json
// @Param q query string false "Search in brand and model"
// @Param category query string false "Category name (Todos/all for any)"
// @Param brand query string false "Brand"
// @Param transmission query string false "Transmission"
// @Param fuel query string false "Fuel type"
// @Param color query string false "Color"
// @Param location query string false "Location"
// @Param minPrice query number false "Minimum price"
// @Param maxPrice query number false "Maximum price"
// @Param minYear query int false "Minimum year"
// @Param maxYear query int false "Maximum year"
// @Param minMileage query number false "Minimum mileage"
// @Param maxMileage query number false "Maximum mileage"
// @Param featured query bool false "Only featured (true) or only non-featured (false)"
// @Param sortBy query string false "Sort key" Enums(name, model, brand, price, year, mileage) default(name)
// @Param sortOrder query string false "Sort order" Enums(asc, desc) default(asc)
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(12)
// @Success 200 {object} models.ApiResponse{data=[]catalog.Vehicle}
// @Failure 500 {object} models.ApiResponse
// @Router /store/cars [get]
func GetStorefrontCars(c *gin.Context) {
	snap, err := loadInventory(c.Request.Context())
	if err != nil {
		log.Printf("[store.cars] %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load inventory"))
		return
	}

	filter := parseFilterState(c)
	page, limit := parsePagination(c)

	visible, cached := memo.Query(snap.Version, snap.Vehicles, filter)
	if cached {
		metrics.CatalogQueries.WithLabelValues("hit").Inc()
	} else {
		metrics.CatalogQueries.WithLabelValues("miss").Inc()
	}

	result := catalog.Paginate(visible, page, limit)
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Cars fetched successfully", result.Items, models.PaginationFromPage(result)))
}
