package admin_controller

import (
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/jsabonet/milagre-car-site-sub000/config"
	"github.com/jsabonet/milagre-car-site-sub000/models"
)

// AdminStats summarises the back-office team
type AdminStats struct {
	TotalAdmins     int `json:"total_admins"`
	ActiveAdmins    int `json:"active_admins"`
	SuspendedAdmins int `json:"suspended_admins"`
	ActiveSessions  int `json:"active_sessions"`
	DailyActions    int `json:"daily_actions"`
	FailedToday     int `json:"failed_today"`
}

// GetAdminStats godoc
// @Summary Get team statistics
// @Description Admin accounts, live sessions and today's activity
// @Tags Admin - Stats
// @Produce json
// @Security BearerAuth
// @Success 200 {object} models.ApiResponse{data=AdminStats}
// @Failure 401 {object} models.ApiResponse "Unauthorized"
// @Failure 500 {object} models.ApiResponse "Server error"
// @Router /admin/admins/stats [get]
func GetAdminStats(c *gin.Context) {
	ctx, cancel := config.WithTimeout()
	defer cancel()

	now := time.Now()
	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())

	var stats AdminStats
	err := config.DB.QueryRow(ctx, `
		SELECT
			(SELECT COUNT(*) FROM admins),
			(SELECT COUNT(*) FROM admins WHERE status = 'active'),
			(SELECT COUNT(*) FROM admins WHERE status = 'suspended'),
			(SELECT COUNT(*) FROM admin_sessions s JOIN admins a ON a.id = s.admin_id
				WHERE s.is_active AND s.expires_at > $1 AND a.status <> 'suspended'),
			(SELECT COUNT(*) FROM activity_logs WHERE created_at >= $2),
			(SELECT COUNT(*) FROM activity_logs WHERE created_at >= $2 AND status = 'failed')
	`, now, startOfDay).Scan(
		&stats.TotalAdmins,
		&stats.ActiveAdmins,
		&stats.SuspendedAdmins,
		&stats.ActiveSessions,
		&stats.DailyActions,
		&stats.FailedToday,
	)
	if err != nil {
		log.Printf("[admin.stats] query failed: %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch stats"))
		return
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Admin stats retrieved", stats))
}
