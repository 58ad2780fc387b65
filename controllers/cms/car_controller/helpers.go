package car_controller

import (
	"context"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jsabonet/milagre-car-site-sub000/cache"
	"github.com/jsabonet/milagre-car-site-sub000/catalog"
	"github.com/jsabonet/milagre-car-site-sub000/models"
	"github.com/jsabonet/milagre-car-site-sub000/services"
)

// invalidateInventory is a variable so tests can observe writes without Redis.
var invalidateInventory = dropCarCaches

// dropCarCaches discards the storefront inventory snapshot and the cached
// category list, whose available-car counts change with every car write.
func dropCarCaches(ctx context.Context) {
	cache.InvalidateCategories()
	services.GetInventoryService().Invalidate(ctx)
}

func pageParams(c *gin.Context) (page, limit int) {
	page, _ = strconv.Atoi(c.DefaultQuery("page", "1"))
	limit, _ = strconv.Atoi(c.DefaultQuery("limit", "20"))
	if page < 1 {
		page = 1
	}
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}

// adminFilter reads the subset of catalog filters the back office exposes.
func adminFilter(c *gin.Context) catalog.FilterState {
	f := catalog.NewFilterState()
	f.Search = strings.TrimSpace(c.Query("q"))
	f.Category = c.Query("category")
	f.Brand = c.Query("brand")
	if raw := c.Query("featured"); raw != "" {
		if b, err := strconv.ParseBool(raw); err == nil {
			f.Featured = &b
		}
	}
	if sortBy := c.Query("sortBy"); sortBy != "" {
		f.SortBy = catalog.SortKey(strings.ToLower(sortBy))
	}
	f.SortOrder = catalog.ParseSortOrder(c.Query("sortOrder"))
	return f
}

// runPipeline filters, sorts and paginates cars through the catalog and
// maps the page back onto the stored rows.
func runPipeline(cars []models.Car, f catalog.FilterState, page, limit int) ([]models.Car, catalog.Page) {
	byID := make(map[catalog.ID]models.Car, len(cars))
	for _, car := range cars {
		byID[catalog.ID(car.ID.String())] = car
	}

	p := catalog.Paginate(catalog.ComputeVisible(models.Vehicles(cars), f), page, limit)
	out := make([]models.Car, 0, len(p.Items))
	for _, v := range p.Items {
		out = append(out, byID[v.ID])
	}
	return out, p
}

func imageIndex(c *gin.Context) (int, bool) {
	index, err := strconv.Atoi(c.Param("index"))
	return index, err == nil && index >= 0
}
