package message_controller

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jsabonet/milagre-car-site-sub000/config"
	"github.com/jsabonet/milagre-car-site-sub000/models"
)

// GetMessageByID godoc
// @Summary Get a lead
// @Description Opening a new message marks it as read
// @Tags CMS - Messages
// @Produce json
// @Param id path string true "Message ID"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/messages/{id} [get]
func GetMessageByID(c *gin.Context) {
	messageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid message ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var msg models.ContactMessage
	if err := config.Gorm.WithContext(ctx).Preload("Car").First(&msg, "id = ?", messageID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Message not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	if msg.Status == models.MessageStatusNew {
		if err := config.Gorm.WithContext(ctx).Model(&msg).Update("status", models.MessageStatusRead).Error; err != nil {
			log.Printf("[message.get] failed to mark %s as read: %v", messageID, err)
		}
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Message fetched successfully", msg))
}
