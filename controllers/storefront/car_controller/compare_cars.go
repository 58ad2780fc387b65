package car_controller

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/jsabonet/milagre-car-site-sub000/catalog"
	"github.com/jsabonet/milagre-car-site-sub000/models"
)

const (
	minCompare = 2
	maxCompare = 4
)

// CompareCars godoc
// @Summary Compare cars side by side
// @Description Returns 2 to 4 available cars in the order requested
// @Tags store
// @Produce json
// @Param id query []string true "Car IDs (repeatable ?id=..&id=..)"
// @Success 200 {object} models.ApiResponse{data=[]catalog.Vehicle}
// @Failure 400 {object} models.ApiResponse
// @Failure 404 {object} models.ApiResponse
// @Failure 500 {object} models.ApiResponse
// @Router /store/cars/compare [get]
func CompareCars(c *gin.Context) {
	ids := uniqueIDs(c.QueryArray("id"))
	if len(ids) < minCompare || len(ids) > maxCompare {
		c.JSON(http.StatusBadRequest, models.ErrorResponse(c, "Select between 2 and 4 different cars to compare"))
		return
	}

	snap, err := loadInventory(c.Request.Context())
	if err != nil {
		log.Printf("[store.compare] %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load inventory"))
		return
	}

	byID := make(map[catalog.ID]catalog.Vehicle, len(snap.Vehicles))
	for _, v := range snap.Vehicles {
		byID[v.ID] = v
	}

	cars := make([]catalog.Vehicle, 0, len(ids))
	for _, id := range ids {
		v, ok := byID[catalog.ID(id)]
		if !ok {
			c.JSON(http.StatusNotFound, models.ErrorResponse(c, "Car not found: "+id))
			return
		}
		cars = append(cars, v)
	}

	c.JSON(http.StatusOK, models.SuccessResponse(c, "Comparison ready", cars))
}

func uniqueIDs(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if id == "" {
			continue
		}
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
