package message_controller

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jsabonet/milagre-car-site-sub000/config"
	"github.com/jsabonet/milagre-car-site-sub000/models"
)

// GetMessages godoc
// @Summary List leads
// @Description Paginated contact messages, newest first
// @Tags CMS - Messages
// @Produce json
// @Param status query string false "Filter by status" Enums(new, read, replied, archived)
// @Param q query string false "Search name, email, subject or message"
// @Param page query int false "Page number" default(1)
// @Param limit query int false "Items per page" default(20)
// @Success 200 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/messages [get]
func GetMessages(c *gin.Context) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	query := config.Gorm.WithContext(ctx).Model(&models.ContactMessage{})
	if status := c.Query("status"); isMessageStatus(status) {
		query = query.Where("status = ?", status)
	}
	if q := strings.TrimSpace(c.Query("q")); q != "" {
		pattern := "%" + q + "%"
		query = query.Where("(name ILIKE ? OR email ILIKE ? OR subject ILIKE ? OR message ILIKE ?)", pattern, pattern, pattern, pattern)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to count messages"))
		return
	}

	messages := make([]models.ContactMessage, 0, limit)
	if err := query.
		Preload("Car", func(db *gorm.DB) *gorm.DB {
			return db.Select("id, brand, model, year, price")
		}).
		Order("created_at DESC").
		Limit(limit).
		Offset((page - 1) * limit).
		Find(&messages).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to fetch messages"))
		return
	}

	c.JSON(http.StatusOK, models.PaginatedResponse(c, "Messages fetched successfully", messages, models.NewPagination(page, limit, total)))
}

func isMessageStatus(s string) bool {
	switch s {
	case models.MessageStatusNew, models.MessageStatusRead, models.MessageStatusReplied, models.MessageStatusArchived:
		return true
	}
	return false
}
