package car_controller

import (
	"log"
	"net/http"
	"slices"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jsabonet/milagre-car-site-sub000/catalog"
	"github.com/jsabonet/milagre-car-site-sub000/models"
)

// GetFilterMetadata godoc
// @Summary Get all filter metadata
// @Description Distinct values, numeric bounds and per-category counts of the available inventory
// @Tags store
// @Produce json
// @Success 200 {object} models.ApiResponse{data=models.FilterMetadata}
// @Failure 500 {object} models.ApiResponse
// @Router /store/filters/metadata [get]
func GetFilterMetadata(c *gin.Context) {
	snap, err := loadInventory(c.Request.Context())
	if err != nil {
		log.Printf("[store.filters] %v", err)
		c.JSON(http.StatusInternalServerError, models.ErrorResponse(c, "Failed to load inventory"))
		return
	}

	metadata := models.FilterMetadata{
		FacetSet:   catalog.Facets(snap.Vehicles),
		Categories: categoryOptions(snap.Vehicles),
	}
	c.JSON(http.StatusOK, models.SuccessResponse(c, "Filter metadata fetched successfully", metadata))
}

// categoryOptions counts vehicles per category, ordered by name.
func categoryOptions(vehicles []catalog.Vehicle) []models.CategoryData {
	index := make(map[string]int)
	out := make([]models.CategoryData, 0)
	for _, v := range vehicles {
		if v.Category.Name == "" {
			continue
		}
		i, ok := index[v.Category.Name]
		if !ok {
			i = len(out)
			index[v.Category.Name] = i
			out = append(out, models.CategoryData{ID: v.Category.ID, Name: v.Category.Name})
		}
		out[i].Cars++
	}
	slices.SortFunc(out, func(a, b models.CategoryData) int {
		return strings.Compare(strings.ToLower(a.Name), strings.ToLower(b.Name))
	})
	return out
}
