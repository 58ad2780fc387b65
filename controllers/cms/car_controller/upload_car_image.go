package car_controller

import (
	"errors"
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/jsabonet/milagre-car-site-sub000/config"
	"github.com/jsabonet/milagre-car-site-sub000/models"
	"github.com/jsabonet/milagre-car-site-sub000/services"
)

// UploadCarImage godoc
// @Summary Upload a car picture
// @Description Multipart upload of one picture. The type is detected from the bytes, not the file name. The first picture of a car becomes its primary image.
// @Tags CMS - Cars
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Car ID (UUID)"
// @Param image formData file true "Picture"
// @Param alt formData string false "Alt text"
// @Success 201 {object} models.ApiResponse
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 413 {object} models.ApiResponse
// @Failure 415 {object} models.ApiResponse
// @Failure 503 {object} models.ApiResponse
// @Router /admin/cars/{id}/images [post]
func UploadCarImage(c *gin.Context) {
	carID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid car ID"))
		return
	}

	store := services.GetImageStore()
	if store == nil {
		c.JSON(http.StatusServiceUnavailable, models.ErrorResponse(c, "Image uploads are not configured"))
		return
	}

	header, err := c.FormFile("image")
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Missing image file"))
		return
	}

	ctx, cancel := config.WithTimeout()
	defer cancel()

	// Step 1: Load the car and check the picture limit
	var car models.Car
	if err := config.Gorm.WithContext(ctx).First(&car, "id = ?", carID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Car not found"))
		} else {
			c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Database error"))
		}
		return
	}

	policy := config.LoadUploadPolicy()
	if policy.MaxImagesPerCar > 0 && len(car.Images) >= policy.MaxImagesPerCar {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, fmt.Sprintf("A car can have at most %d pictures", policy.MaxImagesPerCar)))
		return
	}

	// Step 2: Sniff the content type
	file, err := header.Open()
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Could not read image file"))
		return
	}
	defer file.Close()

	contentType, body, err := services.SniffImage(file, header.Size, policy)
	switch {
	case errors.Is(err, services.ErrImageTooLarge):
		c.JSON(http.StatusRequestEntityTooLarge, models.ErrorResponse(c, err.Error()))
		return
	case errors.Is(err, services.ErrUnsupportedImageType):
		c.JSON(http.StatusUnsupportedMediaType, models.ErrorResponse(c, err.Error()))
		return
	case err != nil:
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, err.Error()))
		return
	}

	// Step 3: Store it
	stored, err := store.Upload(ctx, body, header.Size, contentType, services.CarImageFolder(carID.String()), uuid.Must(uuid.NewV7()).String())
	if err != nil {
		log.Printf("[car.image] upload for %s failed: %v", carID, err)
		c.JSON(http.StatusBadGateway, models.ErrorResponse(c, "Failed to store image"))
		return
	}

	// Step 4: Attach to the car
	car.Images = append(car.Images, models.CarImage{
		URL:       stored.URL,
		Alt:       strings.TrimSpace(c.PostForm("alt")),
		IsPrimary: len(car.Images) == 0,
		PublicID:  stored.PublicID,
	})
	if err := config.Gorm.WithContext(ctx).Model(&car).Update("images", car.Images).Error; err != nil {
		log.Printf("[car.image] failed to save image list for %s: %v", carID, err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to save image"))
		return
	}

	invalidateInventory(ctx)
	c.JSON(http.StatusCreated, models.SuccessResponse(c, "Image uploaded successfully", car.Images))
}
