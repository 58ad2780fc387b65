package category_controller

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jsabonet/milagre-car-site-sub000/config"
	"github.com/jsabonet/milagre-car-site-sub000/models"
)

// UpdateCategory godoc
// @Summary Update a category
// @Description Update category name, description or status
// @Tags CMS - Categories
// @Accept json
// @Produce json
// @Param id path string true "Category ID"
// @Param category body models.UpdateCategoryRequest true "Update category"
// @Success 200 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /admin/categories/{id} [patch]
func UpdateCategory(c *gin.Context) {
	// Step 1: Parse category ID
	categoryID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category ID"))
		return
	}

	// Step 2: Parse request body
	var input models.UpdateCategoryRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request body"))
		return
	}
	if input.Name != nil {
		trimmed := strings.TrimSpace(*input.Name)
		if trimmed == "" {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Category name cannot be empty"))
			return
		}
		input.Name = &trimmed
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 3: Find existing category
	var existing models.Category
	if err := config.Gorm.WithContext(ctx).First(&existing, "id = ?", categoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Category not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	// Step 4: Check if anything actually changed
	if !hasChanges(input, existing) {
		c.JSON(http.StatusOK, models.SuccessResponse(c, "No changes detected", existing))
		return
	}

	// Step 5: A rename must not collide with another category
	if input.Name != nil && !strings.EqualFold(*input.Name, existing.Name) {
		var clash int64
		if err := config.Gorm.WithContext(ctx).Model(&models.Category{}).
			Where("LOWER(name) = LOWER(?) AND id <> ?", *input.Name, categoryID).
			Count(&clash).Error; err != nil {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
			return
		}
		if clash > 0 {
			c.JSON(http.StatusConflict, models.ErrorResponse(c, "A category with this name already exists"))
			return
		}
	}

	// Step 6: Apply updates (only fields that were provided)
	updates := map[string]interface{}{}
	if input.Name != nil {
		updates["name"] = *input.Name
	}
	if input.Description != nil {
		updates["description"] = *input.Description
	}
	if input.Status != nil {
		updates["status"] = *input.Status
	}

	if err := config.Gorm.WithContext(ctx).Model(&existing).Updates(updates).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to update category"))
		return
	}

	// Step 7: Reload to get fresh data (with updated_at)
	if err := config.Gorm.WithContext(ctx).First(&existing, "id = ?", categoryID).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to reload category"))
		return
	}

	invalidate(ctx)
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Category updated successfully", existing))
}

// hasChanges checks if any field in the request differs from existing
func hasChanges(input models.UpdateCategoryRequest, existing models.Category) bool {
	if input.Name != nil && *input.Name != existing.Name {
		return true
	}
	if input.Description != nil && *input.Description != existing.Description {
		return true
	}
	if input.Status != nil && *input.Status != existing.Status {
		return true
	}
	return false
}
