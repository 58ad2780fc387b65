package category_controller

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jsabonet/milagre-car-site-sub000/config"
	"github.com/jsabonet/milagre-car-site-sub000/models"
)

// CreateCategory godoc
// @Summary Create a category
// @Description Create a new car category. Names are unique, case-insensitively.
// @Tags CMS - Categories
// @Accept json
// @Produce json
// @Param category body models.CategoryRequest true "Category"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 409 {object} models.ApiResponse
// @Router /admin/categories [post]
func CreateCategory(c *gin.Context) {
	var input models.CategoryRequest
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	name := strings.TrimSpace(input.Name)
	if name == "" {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Category name cannot be empty"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	var existing int64
	if err := config.Gorm.WithContext(ctx).Model(&models.Category{}).
		Where("LOWER(name) = LOWER(?)", name).
		Count(&existing).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		return
	}
	if existing > 0 {
		c.JSON(http.StatusConflict, models.ErrorResponse(c, "A category with this name already exists"))
		return
	}

	category := models.Category{
		Name:        name,
		Description: strings.TrimSpace(input.Description),
		Status:      input.Status,
	}
	if err := config.Gorm.WithContext(ctx).Create(&category).Error; err != nil {
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create category"))
		return
	}

	invalidate(ctx)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Category created successfully", category))
}
