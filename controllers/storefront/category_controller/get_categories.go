package category_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsabonet/milagre-car-site-sub000/cache"
	"github.com/jsabonet/milagre-car-site-sub000/config"
	"github.com/jsabonet/milagre-car-site-sub000/models"
)

// GetCategories godoc
// @Summary Get storefront categories
// @Description Active categories with the number of available cars in each
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]models.CategoryWithCars}
// @Failure 500 {object} models.ApiResponse
// @Router /store/categories [get]
func GetCategories(c *gin.Context) {
	if cached, ok := cache.GetCategories(); ok {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", cached))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := `
		SELECT
			c.id,
			c.name,
			c.description,
			c.status,
			c.created_at,
			c.updated_at,
			COUNT(cars.id)::int AS cars
		FROM categories c
		LEFT JOIN cars ON cars.category_id = c.id AND cars.status = ?
		WHERE c.status = 'Active'
		GROUP BY c.id
		ORDER BY c.name ASC
	`

	categories := make([]models.CategoryWithCars, 0)
	if err := config.Gorm.WithContext(ctx).Raw(query, models.CarStatusAvailable).Scan(&categories).Error; err != nil {
		log.Printf("[store.categories] %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch categories"))
		return
	}

	cache.SetCategories(categories)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Categories fetched successfully", categories))
}
