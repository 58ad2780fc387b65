package category_controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jsabonet/milagre-car-site-sub000/config"
	"github.com/jsabonet/milagre-car-site-sub000/models"
)

// GetCategories godoc
// @Summary List categories
// @Description Paginated list of all categories with the number of cars in each, whatever their status
// @Tags CMS - Categories
// @Produce json
// @Param q query string false "Search by name or description"
// @Param status query string false "Active or Inactive"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/categories [get]
func GetCategories(c *gin.Context) {
	page, limit, offset := pageParams(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.Gorm.WithContext(ctx).Model(&models.Category{})
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		pattern := "%" + q + "%"
		query = query.Where("(name ILIKE ? OR description ILIKE ?)", pattern, pattern)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count categories"))
		return
	}

	categories := make([]models.CategoryWithCars, 0, limit)
	if err := query.
		Select("categories.*, (SELECT COUNT(*) FROM cars WHERE cars.category_id = categories.id) AS cars").
		Order("name ASC").
		Limit(limit).
		Offset(offset).
		Scan(&categories).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Categories fetched successfully", categories, models.NewPagination(page, limit, total)))
}
