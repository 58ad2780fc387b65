package category_controller

import (
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsabonet/milagre-car-site-sub000/config"
	"github.com/jsabonet/milagre-car-site-sub000/models"
)

var (
	statsCache     *models.CategoryStatsResponse
	statsCacheTime time.Time
	statsCacheMu   sync.RWMutex
	statsCacheTTL  = 5 * time.Minute
)

// GetCategoryStats godoc
// @Summary Get category statistics
// @Description Returns total, active and empty categories
// @Tags CMS - Categories
// @Produce json
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/categories/stats [get]
func GetCategoryStats(c *gin.Context) {
	// Check cache first
	statsCacheMu.RLock()
	if statsCache != nil && time.Since(statsCacheTime) < statsCacheTTL {
		cached := *statsCache
		statsCacheMu.RUnlock()
		c.JSON(http.StatusOK, models.SuccessResponse(c, "Category stats fetched successfully", cached))
		return
	}
	statsCacheMu.RUnlock()

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var response models.CategoryStatsResponse
	err := config.DB.QueryRow(ctx, `
		SELECT
			COUNT(*),
			COUNT(*) FILTER (WHERE status = 'Active'),
			COUNT(*) FILTER (WHERE NOT EXISTS (SELECT 1 FROM cars WHERE cars.category_id = categories.id))
		FROM categories
	`).Scan(&response.TotalCategories, &response.ActiveCategories, &response.EmptyCategories)
	if err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch category stats"))
		return
	}

	if response.TotalCategories > 0 {
		response.PercentageActiveCategories = float64(response.ActiveCategories) / float64(response.TotalCategories) * 100
	}

	statsCacheMu.Lock()
	statsCache = &response
	statsCacheTime = time.Now()
	statsCacheMu.Unlock()

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category stats fetched successfully", response))
}
