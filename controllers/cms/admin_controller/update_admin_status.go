package admin_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jsabonet/milagre-car-site-sub000/config"
	"github.com/jsabonet/milagre-car-site-sub000/middleware"
	"github.com/jsabonet/milagre-car-site-sub000/models"
	"github.com/jsabonet/milagre-car-site-sub000/services"
)

// UpdateAdminStatus godoc
// @Summary Suspend or reinstate an admin (Super admin only)
// @Description Suspending also ends every session of that admin
// @Tags Admin - Management
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Admin ID"
// @Param request body models.UpdateAdminStatusRequest true "New status"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 403 {object} models.ApiResponse "Super admin access required"
// @Failure 404 {object} models.ApiResponse "Admin not found"
// @Router /admin/admins/{id}/status [patch]
func UpdateAdminStatus(c *gin.Context) {
	actorID, actorEmail, ok := middleware.GetAdminFromContext(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, models.ErrorResponse(c, "Unauthorized"))
		return
	}

	var req models.UpdateAdminStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	targetID := c.Param("id")
	if targetID == actorID.String() {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "You cannot change your own status"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var admin models.Admin
	if err := config.Gorm.WithContext(ctx).First(&admin, "id = ?", targetID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Admin not found"))
		} else {
			log.Printf("[admin.status] database error: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		}
		return
	}

	oldStatus := admin.Status
	err := config.Gorm.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&admin).Update("status", req.Status).Error; err != nil {
			return err
		}
		if req.Status == "suspended" {
			return tx.Model(&models.AdminSession{}).
				Where("admin_id = ? AND is_active = ?", admin.ID, true).
				Update("is_active", false).Error
		}
		return nil
	})
	if err != nil {
		log.Printf("[admin.status] failed to update %s: %v", targetID, err)
		_ = services.LogActivityFailed(actorID, actorEmail, models.ActionUpdateAdminStatus, models.ResourceTypeAdmin, targetID, admin.Email, err.Error(), c)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Server error"))
		return
	}

	changes := services.CreateChanges(
		map[string]interface{}{"status": oldStatus},
		map[string]interface{}{"status": req.Status},
	)
	if err := services.LogActivitySuccess(actorID, actorEmail, models.ActionUpdateAdminStatus, models.ResourceTypeAdmin, targetID, admin.Email, changes, c); err != nil {
		log.Printf("[admin.status] failed to log activity: %v", err)
	}

	log.Printf("[admin.status] %s set to %s by %s", admin.Email, req.Status, actorEmail)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Admin status updated", gin.H{
		"id":     admin.ID,
		"status": req.Status,
	}))
}
