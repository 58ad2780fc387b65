package car_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsabonet/milagre-car-site-sub000/config"
	"github.com/jsabonet/milagre-car-site-sub000/models"
)

// GetCars godoc
// @Summary List cars (back office)
// @Description Every car whatever its status, run through the same catalog filters and sorting as the storefront
// @Tags CMS - Cars
// @Produce json
// @Param status query string false "Filter by status" Enums(Available, Reserved, Sold, Draft)
// @Param q query string false "Free-text search"
// @Param category query string false "Category name"
// @Param brand query string false "Brand"
// @Param featured query bool false "Featured only"
// @Param sortBy query string false "name, price, year or mileage"
// @Param sortOrder query string false "asc or desc"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/cars [get]
func GetCars(c *gin.Context) {
	page, limit := pageParams(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.Gorm.WithContext(ctx).Preload("Category").Order("created_at DESC")
	switch status := c.Query("status"); status {
	case models.CarStatusAvailable, models.CarStatusReserved, models.CarStatusSold, models.CarStatusDraft:
		query = query.Where("status = ?", status)
	}

	cars := make([]models.Car, 0)
	if err := query.Find(&cars).Error; err != nil {
		log.Printf("[car.list] %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch cars"))
		return
	}

	items, p := runPipeline(cars, adminFilter(c), page, limit)
	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Cars fetched successfully", items, models.PaginationFromPage(p)))
}
