package car_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jsabonet/milagre-car-site-sub000/models"
)

// GetStorefrontCarByID godoc
// @Summary Get car details
// @Description Full details of one available car. Each call counts as a view.
// @Tags store
// @Produce json
// @Param id path string true "Car ID"
// @Success 200 {object} models.ApiResponse{data=models.Car}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/cars/{id} [get]
func GetStorefrontCarByID(c *gin.Context) {
	carID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Invalid car ID"))
		return
	}

	snap, err := loadInventory(c.Request.Context())
	if err != nil {
		log.Printf("[store.car] %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load inventory"))
		return
	}

	car, ok := snap.ByID(carID.String())
	if !ok {
		c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Car not found"))
		return
	}

	go recordView(carID)

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Car fetched successfully", car))
}
