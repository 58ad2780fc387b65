package admin_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jsabonet/milagre-car-site-sub000/config"
	"github.com/jsabonet/milagre-car-site-sub000/models"
	"github.com/jsabonet/milagre-car-site-sub000/services"
)

// GetAdmin godoc
// @Summary Get admin details
// @Description One admin with their ten most recent actions
// @Tags Admin - Management
// @Produce json
// @Security BearerAuth
// @Param id path string true "Admin ID"
// @Success 200 {object} models.ApiResponse{data=map[string]interface{}}
// @Failure 400 {object} models.ApiResponse "Invalid admin ID"
// @Failure 404 {object} models.ApiResponse "Admin not found"
// @Router /admin/admins/{id} [get]
func GetAdmin(c *gin.Context) {
	adminID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid admin ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var admin models.Admin
	if err := config.Gorm.WithContext(ctx).First(&admin, "id = ?", adminID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Admin not found"))
		} else {
			log.Printf("[admin.get] database error: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		}
		return
	}

	recent := make([]models.ActivityLog, 0)
	if err := config.Gorm.WithContext(ctx).
		Where("admin_id = ?", adminID).
		Order("created_at DESC").
		Limit(10).
		Find(&recent).Error; err != nil {
		log.Printf("[admin.get] failed to load recent activity: %v", err)
	}
	activity := make([]models.ActivityLogResponse, len(recent))
	for i, entry := range recent {
		activity[i] = entry.ToResponse()
	}

	admin.Status = services.GetCalculatedAdminStatus(admin.Status, admin.LastLoginAt)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Admin retrieved", gin.H{
		"admin":           admin.ToResponse(),
		"recent_activity": activity,
	}))
}
