package car_controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jsabonet/milagre-car-site-sub000/config"
	"github.com/jsabonet/milagre-car-site-sub000/models"
)

// SetPrimaryImage godoc
// @Summary Choose a car's primary picture
// @Tags CMS - Cars
// @Produce json
// @Param id path string true "Car ID (UUID)"
// @Param index path int true "Image position"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/cars/{id}/images/{index}/primary [patch]
func SetPrimaryImage(c *gin.Context) {
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

	if !car.Images.SetPrimary(index) {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Image not found"))
		return
	}
	if err := config.Gorm.WithContext(ctx).Model(&car).Update("images", car.Images).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update images"))
		return
	}

	invalidateInventory(ctx)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Primary image updated", car.Images))
}
