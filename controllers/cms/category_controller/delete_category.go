package category_controller

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jsabonet/milagre-car-site-sub000/config"
	"github.com/jsabonet/milagre-car-site-sub000/models"
)

// DeleteCategory godoc
// @Summary Delete a category
// @Description Delete a category by ID. Refused while any car is filed under it.
// @Tags CMS - Categories
// @Param id path string true "Category ID"
// @Success 200 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /admin/categories/{id} [delete]
func DeleteCategory(c *gin.Context) {
	// Step 1: Parse category ID
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 2: Check if category exists
	var category models.Category
	if err := config.Gorm.WithContext(ctx).First(&category, "id = ?", categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Category not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	// Step 3: Refuse while cars still reference it
	var cars int64
	if err := config.Gorm.WithContext(ctx).Model(&models.Car{}).
		Where("category_id = ?", categoryID).
		Count(&cars).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to check for cars"))
		return
	}
	if cars > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, fmt.Sprintf("Cannot delete category with %d car(s). Move them first.", cars)))
		return
	}

	// Step 4: Delete the category
	if err := config.Gorm.WithContext(ctx).Delete(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to delete category"))
		return
	}

	invalidate(ctx)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category deleted successfully", nil))
}
