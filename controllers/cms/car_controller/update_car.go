package car_controller

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

// UpdateCar godoc
// @Summary Update a car
// @Description Partial update; only the fields present in the body change
// @Tags CMS - Cars
// @Accept json
// @Produce json
// @Param id path string true "Car ID (UUID)"
// @Param car body models.UpdateCarRequest true "Fields to change"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Router /admin/cars/{id} [patch]
func UpdateCar(c *gin.Context) {
	carID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid car ID"))
		return
	}

	var input models.UpdateCarRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 1: Find existing car
	var car models.Car
	if err := config.Gorm.WithContext(ctx).First(&car, "id = ?", carID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Car not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	// Step 2: Validate a new category
	if input.CategoryID != nil && *input.CategoryID != car.CategoryID {
		var count int64
		if err := config.Gorm.WithContext(ctx).Model(&models.Category{}).
			Where("id = ?", *input.CategoryID).
			Count(&count).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
			return
		}
		if count == 0 {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category_id"))
			return
		}
	}

	// Step 3: Collect the provided fields
	updates := carUpdates(input)
	if len(updates) == 0 {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "No changes detected", car))
		return
	}

	// Step 4: Update and reload
	if err := config.Gorm.WithContext(ctx).Model(&car).Updates(updates).Error; err != nil {
		log.Printf("[car.update] %s: %v", carID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update car"))
		return
	}
	if err := config.Gorm.WithContext(ctx).Preload("Category").First(&car, "id = ?", carID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to reload car"))
		return
	}

	invalidateInventory(ctx)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Car updated successfully", car))
}

// carUpdates maps the non-nil request fields to column updates.
func carUpdates(in models.UpdateCarRequest) map[string]interface{} {
	updates := map[string]interface{}{}
	if in.Brand != nil {
		updates["brand"] = *in.Brand
	}
	if in.Model != nil {
		updates["model"] = *in.Model
	}
	if in.Description != nil {
		updates["description"] = *in.Description
	}
	if in.CategoryID != nil {
		updates["category_id"] = *in.CategoryID
	}
	if in.Year != nil {
		updates["year"] = *in.Year
	}
	if in.Color != nil {
		updates["color"] = *in.Color
	}
	if in.Transmission != nil {
		updates["transmission"] = *in.Transmission
	}
	if in.FuelType != nil {
		updates["fuel_type"] = *in.FuelType
	}
	if in.Location != nil {
		updates["location"] = *in.Location
	}
	if in.Price != nil {
		updates["price"] = *in.Price
	}
	if in.Mileage != nil {
		updates["mileage"] = *in.Mileage
	}
	if in.Featured != nil {
		updates["featured"] = *in.Featured
	}
	if in.Status != nil {
		updates["status"] = *in.Status
	}
	if in.Images != nil {
		images := models.CarImageList(*in.Images)
		images.EnsurePrimary()
		updates["images"] = images
	}
	return updates
}
