package message_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jsabonet/milagre-car-site-sub000/config"
	"github.com/jsabonet/milagre-car-site-sub000/models"
)

// UpdateMessageStatus godoc
// @Summary Move a lead through follow-up
// @Tags CMS - Messages
// @Accept json
// @Produce json
// @Param id path string true "Message ID"
// @Param status body models.UpdateMessageStatusRequest true "New status"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/messages/{id}/status [patch]
func UpdateMessageStatus(c *gin.Context) {
	messageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid message ID"))
		return
	}

	var input models.UpdateMessageStatusRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var msg models.ContactMessage
	if err := config.Gorm.WithContext(ctx).First(&msg, "id = ?", messageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Message not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	if msg.Status != input.Status {
		if err := config.Gorm.WithContext(ctx).Model(&msg).Update("status", input.Status).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update message status"))
			return
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Message status updated successfully", msg))
}
