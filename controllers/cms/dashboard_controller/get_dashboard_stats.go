package dashboard_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsabonet/milagre-car-site-sub000/config"
	"github.com/jsabonet/milagre-car-site-sub000/models"
	"github.com/jsabonet/milagre-car-site-sub000/services"
)

const topViewedLimit = 5

// GetDashboardStats godoc
// @Summary Back-office dashboard
// @Description Car counts by status, lead counts by status and the most viewed cars
// @Tags CMS - Dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=models.DashboardStats}
// @Failure 500 {object} models.ApiResponse
// @Router /admin/dashboard/stats [get]
func GetDashboardStats(c *gin.Context) {
	log.Printf("[admin.dashboard] start")

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var stats models.DashboardStats
	var err error

	// ================================
	// Cars
	// ================================
	if stats.Cars, err = services.CarStats(ctx); err != nil {
		log.Printf("[admin.dashboard] ERROR cars err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch dashboard stats"))
		return
	}

	// ================================
	// Leads
	// ================================
	if stats.Messages, err = services.MessageStats(ctx); err != nil {
		log.Printf("[admin.dashboard] ERROR messages err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch dashboard stats"))
		return
	}

	// ================================
	// Most viewed
	// ================================
	if stats.TopViewed, err = services.TopViewedCars(ctx, topViewedLimit); err != nil {
		log.Printf("[admin.dashboard] ERROR top viewed err=%v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch dashboard stats"))
		return
	}

	log.Printf("[admin.dashboard] done cars=%d leads=%d", stats.Cars.TotalCars, stats.Messages.Total)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Dashboard stats fetched successfully", stats))
}
