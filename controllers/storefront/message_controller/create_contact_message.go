package message_controller

import (
	"context"
	"errors"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jsabonet/milagre-car-site-sub000/config"
	"github.com/jsabonet/milagre-car-site-sub000/metrics"
	"github.com/jsabonet/milagre-car-site-sub000/models"
	"github.com/jsabonet/milagre-car-site-sub000/services"
)

// CreateContactMessage godoc
// @Summary Send a message to the dealership
// @Description Stores a lead from the contact form, optionally about a specific car, and notifies the sales team by email
// @Tags store
// @Accept json
// @Produce json
// @Param message body models.ContactMessageRequest true "Contact form"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 429 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/messages [post]
func CreateContactMessage(c *gin.Context) {
	var req models.ContactMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		metrics.LeadsTotal.WithLabelValues("invalid").Inc()
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var carTitle string
	if req.CarID != nil {
		var car models.Car
		if err := config.Gorm.WithContext(ctx).Select("id, brand, model").First(&car, "id = ?", *req.CarID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				metrics.LeadsTotal.WithLabelValues("invalid").Inc()
				c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid car_id"))
				return
			}
			log.Printf("[store.message] car lookup failed: %v", err)
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
			return
		}
		carTitle = car.ToVehicle().Title()
	}

	msg := models.ContactMessage{
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.ToLower(strings.TrimSpace(req.Email)),
		Phone:     strings.TrimSpace(req.Phone),
		Subject:   strings.TrimSpace(req.Subject),
		Message:   strings.TrimSpace(req.Message),
		CarID:     req.CarID,
		IPAddress: c.ClientIP(),
	}
	if err := config.Gorm.WithContext(ctx).Create(&msg).Error; err != nil {
		log.Printf("[store.message] failed to save message: %v", err)
		metrics.LeadsTotal.WithLabelValues("failed").Inc()
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to send message"))
		return
	}
	metrics.LeadsTotal.WithLabelValues("accepted").Inc()
	log.Printf("[store.message] ✅ lead %s from %s", msg.ID, msg.Email)

	// Email never blocks or fails the submission
	if mailer := services.GetResendClient(); mailer != nil {
		go func(msg models.ContactMessage, carTitle string) {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if err := mailer.SendLeadNotification(ctx, msg, carTitle); err != nil {
				log.Printf("[store.message] ❌ notification for %s failed: %v", msg.ID, err)
			}
			if err := mailer.SendLeadAcknowledgement(ctx, msg); err != nil {
				log.Printf("[store.message] ❌ acknowledgement to %s failed: %v", msg.Email, err)
			}
		}(msg, carTitle)
	}

	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Message sent successfully", gin.H{
		"id":         msg.ID,
		"status":     msg.Status,
		"created_at": msg.CreatedAt,
	}))
}
