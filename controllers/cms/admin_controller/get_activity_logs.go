package admin_controller

import (
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsabonet/milagre-car-site-sub000/config"
	"github.com/jsabonet/milagre-car-site-sub000/models"
)

// GetActivityLogs godoc
// @Summary List and search admin activity
// @Description Paginated activity logs, newest first, with optional filters
// @Tags Admin - Activity Logs
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page number (default: 1)"
// @Param limit query int false "Items per page (default: 20, max: 100)"
// @Param query query string false "Search resource name or admin email"
// @Param admin_id query string false "Filter by admin ID"
// @Param admin_email query string false "Filter by admin email"
// @Param action query string false "created, updated, deleted or an exact action such as updated_car"
// @Param status query string false "success or failed"
// @Param resource_type query string false "car, category, message or admin"
// @Param created_from query string false "From date (YYYY-MM-DD)"
// @Param created_to query string false "To date inclusive (YYYY-MM-DD)"
// @Success 200 {object} models.ApiResponse{data=map[string]interface{}}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/activity-logs [get]
func GetActivityLogs(c *gin.Context) {
	page, limit, offset := pageParams(c)

	ctx, cancel := config.WithTimeout()
	defer cancel()

	dbQuery := config.Gorm.WithContext(ctx).Model(&models.ActivityLog{})

	if q := strings.TrimSpace(c.Query("query")); q != "" {
		dbQuery = dbQuery.Where("resource_name ILIKE ? OR admin_email ILIKE ?", "%"+q+"%", "%"+q+"%")
	}
	if adminID := c.Query("admin_id"); adminID != "" {
		dbQuery = dbQuery.Where("admin_id = ?", adminID)
	}
	if adminEmail := c.Query("admin_email"); adminEmail != "" {
		dbQuery = dbQuery.Where("admin_email ILIKE ?", "%"+adminEmail+"%")
	}

	switch action := c.Query("action"); action {
	case "", "all":
	case "created", "updated", "deleted":
		dbQuery = dbQuery.Where("action LIKE ?", action+"%")
	default:
		dbQuery = dbQuery.Where("action = ?", action)
	}

	if status := c.Query("status"); status != "" && status != "all" {
		dbQuery = dbQuery.Where("status = ?", status)
	}
	if resourceType := c.Query("resource_type"); resourceType != "" && resourceType != "all" {
		dbQuery = dbQuery.Where("resource_type = ?", resourceType)
	}
	if from, err := time.Parse(time.DateOnly, c.Query("created_from")); err == nil {
		dbQuery = dbQuery.Where("created_at >= ?", from)
	}
	if to, err := time.Parse(time.DateOnly, c.Query("created_to")); err == nil {
		dbQuery = dbQuery.Where("created_at < ?", to.AddDate(0, 0, 1))
	}

	var total int64
	if err := dbQuery.Count(&total).Error; err != nil {
		log.Printf("[admin.activity] failed to count logs: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	activityLogs := make([]models.ActivityLog, 0)
	if err := dbQuery.
		Order("created_at DESC").
		Limit(limit).
		Offset(offset).
		Find(&activityLogs).Error; err != nil {
		log.Printf("[admin.activity] failed to fetch logs: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	responses := make([]models.ActivityLogResponse, len(activityLogs))
	for i, entry := range activityLogs {
		responses[i] = entry.ToResponse()
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Activity logs retrieved", gin.H{
		"logs": responses,
	}, models.NewPagination(page, limit, total)))
}
