package car_controller

import (
	"context"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jsabonet/milagre-car-site-sub000/config"
	"github.com/jsabonet/milagre-car-site-sub000/models"
	"github.com/jsabonet/milagre-car-site-sub000/services"
)

// DeleteCar godoc
// @Summary Delete a car
// @Description Delete a car by ID. Its image folder is removed from the image store in the background.
// @Tags CMS - Cars
// @Produce json
// @Param id path string true "Car ID (UUID)"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/cars/{id} [delete]
func DeleteCar(c *gin.Context) {
	// Step 1: Parse and validate car ID
	carID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid car ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 2: Find car
	var car models.Car
	if err := config.Gorm.WithContext(ctx).Select("id, images").First(&car, "id = ?", carID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Car not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	// Step 3: Delete from database; leads keep their text with car_id set to NULL
	if err := config.Gorm.WithContext(ctx).Delete(&car).Error; err != nil {
		log.Printf("[car.delete] %s: %v", carID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete car"))
		return
	}
	invalidateInventory(ctx)

	// Step 4: Delete the image folder in background (don't block response)
	if store := services.GetImageStore(); store != nil && len(car.Images) > 0 {
		go func(folder string) {
			deleteCtx, deleteCancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer deleteCancel()

			if err := store.DeleteFolder(deleteCtx, folder); err != nil {
				log.Printf("[car.delete] ⚠️  failed to delete image folder %s: %v", folder, err)
			} else {
				log.Printf("[car.delete] ✓ deleted image folder %s", folder)
			}
		}(services.CarImageFolder(carID.String()))
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Car deleted successfully", map[string]string{
		"id": carID.String(),
	}))
}
