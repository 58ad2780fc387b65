package car_controller

import (
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/jsabonet/milagre-car-site-sub000/config"
	"github.com/jsabonet/milagre-car-site-sub000/models"
)

// CreateCar godoc
// @Summary Create a car
// @Description Create a car listing. Images may be attached here as already-hosted URLs or uploaded afterwards.
// @Tags CMS - Cars
// @Accept json
// @Produce json
// @Param car body models.CarRequest true "Car details"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /admin/cars [post]
func CreateCar(c *gin.Context) {
	start := time.Now()

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 1: Parse JSON request
	var req models.CarRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid request: "+err.Error()))
		return
	}

	// Step 2: Validate category exists
	var category models.Category
	if err := config.Gorm.WithContext(ctx).First(&category, "id = ?", req.CategoryID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid category_id"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	// Step 3: Build the car (UUID v7 generated in BeforeCreate)
	images := models.CarImageList(req.Images)
	images.EnsurePrimary()
	car := models.Car{
		Brand:        req.Brand,
		Model:        req.Model,
		Description:  req.Description,
		CategoryID:   req.CategoryID,
		Year:         req.Year,
		Color:        req.Color,
		Transmission: req.Transmission,
		FuelType:     req.FuelType,
		Location:     req.Location,
		Price:        req.Price,
		Mileage:      req.Mileage,
		Featured:     req.Featured,
		Status:       req.Status,
		Images:       images,
	}

	// Step 4: Save to database
	if err := config.Gorm.WithContext(ctx).Create(&car).Error; err != nil {
		log.Printf("[car.create] %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to create car"))
		return
	}
	car.Category = &category

	invalidateInventory(ctx)
	log.Printf("[car.create] %s %s (%s) in %v", car.Brand, car.Model, car.ID, time.Since(start))
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Car created successfully", car))
}
