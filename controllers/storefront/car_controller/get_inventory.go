package car_controller

import (
	"log"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/jsabonet/milagre-car-site-sub000/models"
)

// GetInventory godoc
// @Summary Get the full available inventory
// @Description Every available car as a catalog record, for clients that filter and paginate locally
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=[]catalog.Vehicle}
// @Failure 500 {object} models.ApiResponse
// @Router /store/inventory [get]
func GetInventory(c *gin.Context) {
	snap, err := loadInventory(c.Request.Context())
	if err != nil {
		log.Printf("[store.inventory] %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load inventory"))
		return
	}

	c.Header("X-Inventory-Version", strconv.FormatUint(snap.Version, 10))
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Inventory fetched successfully", snap.Vehicles))
}
