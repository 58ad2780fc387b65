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

// DeleteCarImage godoc
// @Summary Remove a car picture
// @Description Removes the picture from the car and, in the background, from the image store. Removing the primary picture promotes the next one.
// @Tags CMS - Cars
// @Produce json
// @Param id path string true "Car ID (UUID)"
// @Param index path int true "Image position"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/cars/{id}/images/{index} [delete]
func DeleteCarImage(c *gin.Context) {
	carID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid car ID"))
		return
	}
	index, ok := imageIndex(c)
	if !ok {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid image index"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var car models.Car
	if err := config.Gorm.WithContext(ctx).Select("id, images").First(&car, "id = ?", carID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Car not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	remaining, removed, ok := car.Images.Remove(index)
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Image not found"))
		return
	}
	if err := config.Gorm.WithContext(ctx).Model(&car).Update("images", remaining).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update images"))
		return
	}
	invalidateInventory(ctx)

	if store := services.GetImageStore(); store != nil && removed.PublicID != "" {
		go func(publicID string) {
			deleteCtx, deleteCancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer deleteCancel()
			if err := store.Delete(deleteCtx, publicID); err != nil {
				log.Printf("[car.image] ⚠️  failed to delete %s: %v", publicID, err)
			}
		}(removed.PublicID)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Image deleted successfully", remaining))
}
